package serial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig("/dev/ttyACM0")

	assert.Equal(t, "/dev/ttyACM0", cfg.Device)
	assert.Equal(t, DefaultBaud, cfg.Baud)
	assert.Equal(t, 100, cfg.ReadTimeout)
}

func TestOpenWithoutDevice(t *testing.T) {
	_, err := Open(nil)
	require.ErrorIs(t, err, ErrNoDevice)

	_, err = Open(&Config{Baud: DefaultBaud})
	require.ErrorIs(t, err, ErrNoDevice)
}

func TestOpenMissingDevice(t *testing.T) {
	_, err := Open(&Config{Device: "/dev/timlib-does-not-exist", ReadTimeout: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/dev/timlib-does-not-exist")
}
