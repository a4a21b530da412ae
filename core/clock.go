package core

// Clock supplies the current monotonic millisecond count.
// The value wraps around modulo 2^32; no epoch is assumed.
type Clock interface {
	Millis() uint32
}

// ClockFunc adapts a plain function to the Clock interface
type ClockFunc func() uint32

// Millis calls f
func (f ClockFunc) Millis() uint32 {
	return f()
}

// SystemClock reads the platform millisecond counter.
// On TinyGo targets the counter is refreshed by the target code via SetMillis.
type SystemClock struct{}

// Millis returns the current platform milliseconds
func (SystemClock) Millis() uint32 {
	return getSystemMillis()
}

// GetMillis returns the current platform milliseconds
func GetMillis() uint32 {
	return getSystemMillis()
}

// SetMillis sets the platform millisecond counter (for hardware integration)
func SetMillis(ms uint32) {
	setSystemMillis(ms)
}

// ManualClock is a clock that only moves when told to.
// Used for deterministic tests and simulations.
type ManualClock struct {
	now uint32
}

// NewManualClock creates a ManualClock reading start
func NewManualClock(start uint32) *ManualClock {
	return &ManualClock{now: start}
}

// Millis returns the current manual time
func (c *ManualClock) Millis() uint32 {
	return c.now
}

// Set jumps the clock to ms
func (c *ManualClock) Set(ms uint32) {
	c.now = ms
}

// Advance moves the clock forward by ms, wrapping at 2^32
func (c *ManualClock) Advance(ms uint32) {
	c.now += ms
}
