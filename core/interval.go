package core

// IntervalTimer returns true for one poll every interval and immediately
// starts counting the next one. The reference moves by exactly one interval
// per tick, so late polls do not accumulate drift.
type IntervalTimer struct {
	base     BaseTimer
	interval uint32 // ms
}

// NewIntervalTimer creates an interval timer with the given interval in ms
func NewIntervalTimer(interval uint32, opts ...Option) *IntervalTimer {
	t := &IntervalTimer{interval: interval}
	t.base.apply(opts)
	return t
}

// Run polls the timer and returns true when an interval has passed.
// At most one tick is reported per poll. A false trigger stops the timer.
func (t *IntervalTimer) Run(trigger bool) bool {
	if !trigger {
		t.base.Stop()
		return false
	}

	t.base.Start()
	et := t.base.ElapsedTime()
	// An overflowed timer keeps its clamped reference and stays silent
	if et >= t.interval && t.base.State() == StateRunning {
		t.base.timeRef += t.interval
		t.base.trace(EvtTick, et)
		return true
	}
	return false
}

// RunWith updates the interval and polls the timer
func (t *IntervalTimer) RunWith(trigger bool, interval uint32) bool {
	t.interval = interval
	return t.Run(trigger)
}

// Tick polls a permanently enabled timer
func (t *IntervalTimer) Tick() bool {
	return t.Run(true)
}
