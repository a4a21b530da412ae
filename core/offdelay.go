package core

// OffDelayTimer keeps its output on while the trigger is true and for the
// delay after the trigger falls.
type OffDelayTimer struct {
	base  BaseTimer
	delay uint32 // ms
}

// NewOffDelayTimer creates an off-delay timer with the given delay in ms.
// The timer starts out ready so a false trigger at startup does not
// produce an output.
func NewOffDelayTimer(delay uint32, opts ...Option) *OffDelayTimer {
	t := &OffDelayTimer{delay: delay}
	t.base.apply(opts)
	t.base.park()
	return t
}

// Run polls the timer. It returns true while the trigger is true and
// while the delay after a falling trigger is still counting.
func (t *OffDelayTimer) Run(trigger bool) bool {
	if !trigger {
		t.base.Start()
		if t.base.ElapsedTime() >= t.delay {
			t.base.ready()
		}
	} else {
		t.base.Stop()
	}
	return trigger || t.base.State() == StateRunning
}

// RunWith updates the delay and polls the timer
func (t *OffDelayTimer) RunWith(trigger bool, delay uint32) bool {
	t.delay = delay
	return t.Run(trigger)
}

// Stop ends a counting delay early. Unlike a plain reset to idle, the
// timer stays off and only re-arms after the trigger has been seen true
// again; a false trigger alone does not restart the delay.
func (t *OffDelayTimer) Stop() {
	t.base.park()
}
