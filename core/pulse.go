package core

// PulseTimer produces a fixed-width pulse starting when the trigger goes
// true. The trigger may be shorter or longer than the pulse; a second
// rising trigger during the pulse does not extend it.
type PulseTimer struct {
	base  BaseTimer
	width uint32 // ms
}

// NewPulseTimer creates a pulse timer with the given pulse width in ms
func NewPulseTimer(width uint32, opts ...Option) *PulseTimer {
	t := &PulseTimer{width: width}
	t.base.apply(opts)
	return t
}

// Run polls the timer and returns true while the pulse is active
func (t *PulseTimer) Run(trigger bool) bool {
	if trigger {
		t.base.Start()
	}

	if t.base.ElapsedTime() >= t.width {
		t.base.ready()
	}

	// Re-arm once the trigger has been seen low after the pulse
	if !trigger && t.base.State() == StateReady {
		t.base.Stop()
	}

	return t.base.State() == StateRunning
}

// RunWith updates the pulse width and polls the timer
func (t *PulseTimer) RunWith(trigger bool, width uint32) bool {
	t.width = width
	return t.Run(trigger)
}

// Stop ends the pulse early. Unlike a plain reset to idle, the timer only
// re-arms after the trigger has been seen false again; a trigger that is
// still true does not start a new pulse.
func (t *PulseTimer) Stop() {
	t.base.park()
}
