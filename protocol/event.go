package protocol

import "errors"

var ErrUnknownMessage = errors.New("unknown message id")

// TimerEventSizeMax is the largest encoding of one timer event message
const TimerEventSizeMax = 1 + 2 + 2 + 5 + 5

// TimerEvent is a timer state change reported by a target
type TimerEvent struct {
	Type  uint8
	OID   uint8
	Clock uint32
	Value uint32
}

// EncodeTimerEvent writes a MsgTimerEvent message
func EncodeTimerEvent(output OutputBuffer, ev TimerEvent) {
	EncodeVLQUint(output, MsgTimerEvent)
	EncodeVLQUint(output, uint32(ev.Type))
	EncodeVLQUint(output, uint32(ev.OID))
	EncodeVLQUint(output, ev.Clock)
	EncodeVLQUint(output, ev.Value)
}

// DecodeTimerEvent reads one message from data and advances it
func DecodeTimerEvent(data *[]byte) (TimerEvent, error) {
	var ev TimerEvent

	id, err := DecodeVLQUint(data)
	if err != nil {
		return ev, err
	}
	if id != MsgTimerEvent {
		return ev, ErrUnknownMessage
	}

	var fields [4]uint32
	for i := range fields {
		if fields[i], err = DecodeVLQUint(data); err != nil {
			return ev, err
		}
	}
	ev.Type = uint8(fields[0])
	ev.OID = uint8(fields[1])
	ev.Clock = fields[2]
	ev.Value = fields[3]
	return ev, nil
}

// DecodeTimerEvents decodes every message in a frame payload
func DecodeTimerEvents(payload []byte, handle func(TimerEvent)) error {
	for len(payload) > 0 {
		ev, err := DecodeTimerEvent(&payload)
		if err != nil {
			return err
		}
		handle(ev)
	}
	return nil
}
