package core

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// TimingEvent captures a timer state change for post-mortem analysis
type TimingEvent struct {
	EventType uint8  // Event type code
	OID       uint8  // Trace ID of the timer
	Clock     uint32 // Milliseconds at event
	Value     uint32 // Elapsed or measured time, depending on the event
}

// Event type codes
const (
	EvtStart    = 1 // Started or resumed; value = elapsed at start
	EvtPause    = 2 // Paused; value = accumulated elapsed
	EvtReady    = 3 // Goal reached; value = elapsed
	EvtStop     = 4 // Stopped from a non-idle state; value = previous timeRef
	EvtOverflow = 5 // Overflow detected
	EvtTick     = 6 // Interval tick; value = elapsed at tick
	EvtLap      = 7 // Lap measured; value = lap time
	EvtWatch    = 8 // Stopwatch reading recorded by the application
)

const (
	TimingRingSize = 32 // Keep last 32 events
)

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether debug output is active
	debugEnabled bool = false

	// Timing capture ring buffer (non-blocking)
	timingRing      [TimingRingSize]TimingEvent
	timingRingHead  uint8 // Next write position
	timingRingCount uint8 // Events not yet reported
	timingEnabled   bool  = true
)

// SetDebugWriter sets the platform-specific debug output function
// This allows platforms to redirect debug output to UART, USB, etc.
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// SetTimingEnabled enables or disables capture into the timing ring
func SetTimingEnabled(enabled bool) {
	timingEnabled = enabled
}

// DebugPrintln writes a debug message using the platform-specific writer
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// EventName returns the name printed for an event type
func EventName(eventType uint8) string {
	switch eventType {
	case EvtStart:
		return "START"
	case EvtPause:
		return "PAUSE"
	case EvtReady:
		return "READY"
	case EvtStop:
		return "STOP"
	case EvtOverflow:
		return "OVERFLOW!"
	case EvtTick:
		return "TICK"
	case EvtLap:
		return "LAP"
	case EvtWatch:
		return "WATCH"
	default:
		return "UNKNOWN"
	}
}

// RecordTiming captures a timing event in the ring buffer.
// When the ring is full the oldest event is overwritten.
// Safe to call from interrupt handlers.
func RecordTiming(eventType, oid uint8, clock, value uint32) {
	if !timingEnabled {
		return
	}
	state := disableInterrupts()
	defer restoreInterrupts(state)

	idx := timingRingHead
	timingRing[idx] = TimingEvent{
		EventType: eventType,
		OID:       oid,
		Clock:     clock,
		Value:     value,
	}
	timingRingHead = (idx + 1) % TimingRingSize
	if timingRingCount < TimingRingSize {
		timingRingCount++
	}
}

// PendingTimingEvents returns the number of events not yet reported
func PendingTimingEvents() int {
	return int(timingRingCount)
}

// pendingTimingEvent returns the i-th unreported event, oldest first
func pendingTimingEvent(i uint8) *TimingEvent {
	start := (timingRingHead + TimingRingSize - timingRingCount) % TimingRingSize
	return &timingRing[(start+i)%TimingRingSize]
}

// ackTimingEvents marks the n oldest unreported events as reported
func ackTimingEvents(n uint8) {
	if n > timingRingCount {
		n = timingRingCount
	}
	timingRingCount -= n
}

// DumpTimingRing outputs the whole timing ring through the debug writer,
// oldest first
func DumpTimingRing() {
	if debugPrintln == nil {
		return
	}

	debugPrintln("[TIMING] === Timing Ring Dump ===")

	start := timingRingHead
	for i := uint8(0); i < TimingRingSize; i++ {
		idx := (start + i) % TimingRingSize
		evt := &timingRing[idx]
		if evt.EventType == 0 {
			continue // Empty slot
		}

		debugPrintln("[TIMING] " + EventName(evt.EventType) +
			" oid=" + utoa(uint32(evt.OID)) +
			" clock=" + utoa(evt.Clock) +
			" value=" + utoa(evt.Value))
	}
	debugPrintln("[TIMING] === End Dump ===")
}

// ClearTimingRing clears the timing buffer
func ClearTimingRing() {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	for i := range timingRing {
		timingRing[i] = TimingEvent{}
	}
	timingRingHead = 0
	timingRingCount = 0
}
