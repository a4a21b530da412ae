package monitor

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"timlib/host/serial"
)

// Config describes the serial link and the timer labels shown in logs
type Config struct {
	Device        string           `yaml:"device"`
	Baud          int              `yaml:"baud"`
	ReadTimeoutMs int              `yaml:"read_timeout_ms"`
	Timers        map[uint8]string `yaml:"timers"`
}

// DefaultConfig returns the configuration used without a config file
func DefaultConfig() *Config {
	config := &Config{}
	applyDefaults(config)
	return config
}

// ParseConfig parses a YAML configuration document
func ParseConfig(data []byte) (*Config, error) {
	var config Config

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyDefaults(&config)

	return &config, nil
}

// LoadConfig reads and parses the YAML file at path
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// applyDefaults fills in missing configuration values
func applyDefaults(config *Config) {
	if config.Device == "" {
		config.Device = "/dev/ttyACM0"
	}
	if config.Baud == 0 {
		config.Baud = serial.DefaultBaud
	}
	if config.ReadTimeoutMs == 0 {
		config.ReadTimeoutMs = 100
	}
	if config.Timers == nil {
		config.Timers = make(map[uint8]string)
	}
}

// TimerName returns the configured label for oid, or "oid<N>"
func (c *Config) TimerName(oid uint8) string {
	if name, ok := c.Timers[oid]; ok && name != "" {
		return name
	}
	return fmt.Sprintf("oid%d", oid)
}

// Serial returns the port configuration
func (c *Config) Serial() *serial.Config {
	return &serial.Config{
		Device:      c.Device,
		Baud:        c.Baud,
		ReadTimeout: c.ReadTimeoutMs,
	}
}
