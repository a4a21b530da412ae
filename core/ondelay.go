package core

// OnDelayTimer turns its output on once the trigger has been true for the
// whole delay. Any false trigger resets the delay to 0 ms.
type OnDelayTimer struct {
	base  BaseTimer
	delay uint32 // ms
}

// NewOnDelayTimer creates an on-delay timer with the given delay in ms
func NewOnDelayTimer(delay uint32, opts ...Option) *OnDelayTimer {
	t := &OnDelayTimer{delay: delay}
	t.base.apply(opts)
	return t
}

// Run polls the timer and returns true once the delay has passed
func (t *OnDelayTimer) Run(trigger bool) bool {
	if trigger {
		// Only starts an idle timer
		t.base.Start()
		if t.base.ElapsedTime() >= t.delay {
			t.base.ready()
		}
	} else {
		t.base.Stop()
	}
	return t.base.State() == StateReady
}

// RunWith updates the delay and polls the timer
func (t *OnDelayTimer) RunWith(trigger bool, delay uint32) bool {
	t.delay = delay
	return t.Run(trigger)
}

// Restart restarts the delay from 0 ms
func (t *OnDelayTimer) Restart() {
	t.base.Restart()
}
