package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"timlib/host/monitor"
	"timlib/host/serial"
)

var (
	device     = flag.String("device", "", "Serial device path (overrides config)")
	baud       = flag.Int("baud", 0, "Baud rate (ignored for USB CDC, overrides config)")
	configPath = flag.String("config", "", "YAML config file with device settings and timer names")
	verbose    = flag.Bool("verbose", false, "Log every timer event")
)

func main() {
	flag.Parse()

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(logger); err != nil {
		logger.Error("monitor failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(logger *zap.Logger) error {
	cfg := monitor.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = monitor.LoadConfig(*configPath); err != nil {
			return err
		}
	}
	if *device != "" {
		cfg.Device = *device
	}
	if *baud != 0 {
		cfg.Baud = *baud
	}

	port, err := serial.Open(cfg.Serial())
	if err != nil {
		return err
	}
	defer port.Close()

	if err := port.Flush(); err != nil {
		logger.Warn("flush failed", zap.Error(err))
	}

	logger.Info("monitoring timers",
		zap.String("device", cfg.Device),
		zap.Int("baud", cfg.Baud),
		zap.Int("timers", len(cfg.Timers)),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := monitor.New(cfg, logger)
	m.Follow = true
	err = m.Run(ctx, port)

	m.LogSummary()
	logger.Info("monitor stopped",
		zap.Uint32("frames", m.Frames()),
		zap.Uint32("errors", m.Errors()),
	)
	if err != nil {
		return fmt.Errorf("monitor %s: %w", cfg.Device, err)
	}
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.DisableStacktrace = true
	config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}
