package core

// All timers count milliseconds on a 32-bit wrapping clock.
// The counter wraps after 49 days, 17 hours, 2 minutes, 47.295 seconds.
// Overflow is declared at 49 days, well before the wrap can corrupt
// the elapsed computation.
const OverflowValue uint32 = 4233600000

// State is the state of a timer engine. The numbering, with overflow at 10,
// is kept compatible with existing TimLib sketches.
type State uint8

const (
	StateIdle     State = 0
	StatePaused   State = 1
	StateRunning  State = 2
	StateReady    State = 3
	StateOverflow State = 10
)

// String returns the lower-case state name
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePaused:
		return "paused"
	case StateRunning:
		return "running"
	case StateReady:
		return "ready"
	case StateOverflow:
		return "overflow"
	default:
		return "state(" + utoa(uint32(s)) + ")"
	}
}

// Option configures a timer engine at construction
type Option func(*BaseTimer)

// WithClock makes the timer read c instead of the platform clock
func WithClock(c Clock) Option {
	return func(t *BaseTimer) {
		t.clock = c
	}
}

// WithTraceID records the timer's state changes in the timing ring under oid.
// oid 0 disables tracing.
func WithTraceID(oid uint8) Option {
	return func(t *BaseTimer) {
		t.oid = oid
	}
}

// BaseTimer is the elapsed-time engine every other timer is built on.
// The zero value is an idle timer on the platform clock.
//
// timeRef holds a different value depending on the state:
//
//	idle:     0
//	running:  clock value the elapsed time is measured from
//	paused:   elapsed time at the moment of pausing
//	ready:    elapsed time at the moment the goal was reached
//	overflow: OverflowValue
type BaseTimer struct {
	clock   Clock
	state   State
	timeRef uint32
	oid     uint8
}

// NewBaseTimer creates an idle timer engine
func NewBaseTimer(opts ...Option) *BaseTimer {
	t := &BaseTimer{}
	t.apply(opts)
	return t
}

func (t *BaseTimer) apply(opts []Option) {
	for _, opt := range opts {
		opt(t)
	}
}

func (t *BaseTimer) now() uint32 {
	if t.clock == nil {
		return getSystemMillis()
	}
	return t.clock.Millis()
}

// trace records an event for this timer if tracing is enabled
func (t *BaseTimer) trace(evt uint8, value uint32) {
	if t.oid == 0 {
		return
	}
	RecordTiming(evt, t.oid, t.now(), value)
}

// ElapsedTime returns the milliseconds since the timer started.
// While running the value is recomputed from the clock; the unsigned
// subtraction stays correct across a clock wrap. Exceeding OverflowValue
// moves the timer to overflow. In every other state the stored timeRef
// is returned.
func (t *BaseTimer) ElapsedTime() uint32 {
	if t.state != StateRunning {
		return t.timeRef
	}

	et := t.now() - t.timeRef
	if et > OverflowValue {
		t.state = StateOverflow
		t.timeRef = OverflowValue
		t.trace(EvtOverflow, OverflowValue)
		if t.oid != 0 {
			DebugPrintln("[TMR] overflow oid=" + utoa(uint32(t.oid)))
		}
		return OverflowValue
	}
	return et
}

// Stop puts the timer in idle. This is the only way out of overflow.
func (t *BaseTimer) Stop() {
	if t.state != StateIdle {
		t.trace(EvtStop, t.timeRef)
	}
	t.state = StateIdle
	t.timeRef = 0
}

// Pause freezes a running timer, keeping the elapsed time.
// Has no effect unless running.
func (t *BaseTimer) Pause() {
	if t.state != StateRunning {
		return
	}
	et := t.ElapsedTime()
	// ElapsedTime may have moved us to overflow
	if t.state != StateRunning {
		return
	}
	t.timeRef = et
	t.state = StatePaused
	t.trace(EvtPause, et)
}

// Start starts an idle timer from 0 or resumes a paused one.
// Has no effect in any other state.
func (t *BaseTimer) Start() {
	switch t.state {
	case StateIdle:
		t.Restart()
	case StatePaused:
		// timeRef holds the elapsed time; turn it back into a clock reference
		elapsed := t.timeRef
		t.timeRef = t.now() - elapsed
		t.state = StateRunning
		t.trace(EvtStart, elapsed)
	}
}

// Restart starts the timer from 0 regardless of its state
func (t *BaseTimer) Restart() {
	t.timeRef = t.now()
	t.state = StateRunning
	t.trace(EvtStart, 0)
}

// State returns the timer state
func (t *BaseTimer) State() State {
	return t.state
}

// ready freezes a running timer at its current elapsed time
func (t *BaseTimer) ready() {
	if t.state != StateRunning {
		return
	}
	et := t.ElapsedTime()
	if t.state != StateRunning {
		return
	}
	t.timeRef = et
	t.state = StateReady
	t.trace(EvtReady, et)
}

// park puts the timer in ready at 0 ms, forcing a quiet output
// until the owning timer sees its trigger again
func (t *BaseTimer) park() {
	t.Restart()
	t.ready()
}
