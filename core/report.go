package core

import "timlib/protocol"

// eventsPerFrame is how many timer events always fit in one frame
const eventsPerFrame = protocol.MessagePayloadMax / protocol.TimerEventSizeMax

// ReportTimingRing encodes unreported timing events into frames, oldest
// first, for as long as output has room for a full frame. Events that do
// not fit stay pending for the next call. Returns the sequence to use for
// the next frame.
func ReportTimingRing(output *protocol.ScratchOutput, seq uint8) uint8 {
	state := disableInterrupts()
	defer restoreInterrupts(state)

	for timingRingCount > 0 && output.Free() >= protocol.MessageLengthMax {
		n := timingRingCount
		if n > eventsPerFrame {
			n = eventsPerFrame
		}

		protocol.EncodeFrame(output, seq, func(out protocol.OutputBuffer) {
			for i := uint8(0); i < n; i++ {
				evt := pendingTimingEvent(i)
				protocol.EncodeTimerEvent(out, protocol.TimerEvent{
					Type:  evt.EventType,
					OID:   evt.OID,
					Clock: evt.Clock,
					Value: evt.Value,
				})
			}
		})
		ackTimingEvents(n)
		seq = protocol.NextSequence(seq)
	}
	return seq
}
