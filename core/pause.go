package core

// PauseTimer counts time only while the trigger is true, holding the count
// while it is false. Once the setpoint is reached the output latches on
// until Reset.
type PauseTimer struct {
	base     BaseTimer
	setpoint uint32 // ms
}

// NewPauseTimer creates a pause timer with the given setpoint in ms
func NewPauseTimer(setpoint uint32, opts ...Option) *PauseTimer {
	t := &PauseTimer{setpoint: setpoint}
	t.base.apply(opts)
	return t
}

// Run polls the timer and returns true once the setpoint was reached
func (t *PauseTimer) Run(trigger bool) bool {
	if trigger {
		t.base.Start()
		if t.base.ElapsedTime() >= t.setpoint {
			t.base.ready()
		}
	} else {
		t.base.Pause()
	}
	return t.base.State() == StateReady
}

// RunWith updates the setpoint and polls the timer
func (t *PauseTimer) RunWith(trigger bool, setpoint uint32) bool {
	t.setpoint = setpoint
	return t.Run(trigger)
}

// Reset clears the accumulated time and the latched output
func (t *PauseTimer) Reset() {
	t.base.Stop()
}
