package core

// LapTimer returns the time passed since the previous call,
// for example to measure code execution times.
type LapTimer struct {
	base BaseTimer
}

// NewLapTimer creates a lap timer
func NewLapTimer(opts ...Option) *LapTimer {
	t := &LapTimer{}
	t.base.apply(opts)
	return t
}

// Lap returns the ms since the previous Lap and starts the next lap.
// The first call after creation or Stop returns 0.
// After an overflow it keeps returning OverflowValue until Stop.
func (t *LapTimer) Lap() uint32 {
	switch t.base.State() {
	case StateRunning:
		et := t.base.ElapsedTime()
		if t.base.State() != StateRunning {
			return et
		}
		t.base.timeRef += et
		t.base.trace(EvtLap, et)
		return et
	case StateOverflow:
		return OverflowValue
	default:
		t.base.Start()
		return 0
	}
}

// Stop discards the running lap
func (t *LapTimer) Stop() {
	t.base.Stop()
}

// CycleTimer tracks the last and longest duration of a repeating cycle,
// such as one pass of the main loop.
type CycleTimer struct {
	lap  LapTimer
	last uint32
	max  uint32
}

// NewCycleTimer creates a cycle timer
func NewCycleTimer(opts ...Option) *CycleTimer {
	t := &CycleTimer{}
	t.lap.base.apply(opts)
	return t
}

// CycleTrigger marks the start of a cycle. Call it once per cycle.
func (t *CycleTimer) CycleTrigger() {
	t.last = t.lap.Lap()
	if t.last > t.max {
		t.max = t.last
	}
}

// Reset clears the last and maximum values. The lap keeps running.
func (t *CycleTimer) Reset() {
	t.max = 0
	t.last = 0
}

// MaxTime returns the longest cycle since the last Reset
func (t *CycleTimer) MaxTime() uint32 {
	return t.max
}

// LastTime returns the most recent cycle time
func (t *CycleTimer) LastTime() uint32 {
	return t.last
}
