package core

// StopWatch measures time from a start point. The elapsed time can be read
// any number of times without affecting the measurement.
type StopWatch struct {
	base BaseTimer
}

// NewStopWatch creates an idle stopwatch
func NewStopWatch(opts ...Option) *StopWatch {
	t := &StopWatch{}
	t.base.apply(opts)
	return t
}

// Start starts an idle stopwatch. Has no effect while running.
func (t *StopWatch) Start() {
	t.base.Start()
}

// Restart starts from 0 ms from any state
func (t *StopWatch) Restart() {
	t.base.Restart()
}

// Stop stops the stopwatch
func (t *StopWatch) Stop() {
	t.base.Stop()
}

// Watch returns the ms since start while running, 0 otherwise
func (t *StopWatch) Watch() uint32 {
	if t.base.State() != StateRunning {
		return 0
	}
	return t.base.ElapsedTime()
}
