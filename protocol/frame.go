package protocol

// Frame is one decoded message block
type Frame struct {
	Length   uint8
	Sequence uint8
	Payload  []byte // Frame data without header/trailer
	CRC      uint16
}

// FrameHandler receives each valid frame. The payload is owned by the handler.
type FrameHandler func(frame *Frame)

// NextSequence returns the sequence byte following seq
func NextSequence(seq uint8) uint8 {
	return ((seq + 1) & MessageSeqMask) | MessageDest
}

// EncodeFrame writes one frame with sequence seq whose payload is produced
// by frameData. The payload must fit MessagePayloadMax bytes.
func EncodeFrame(output OutputBuffer, seq uint8, frameData func(output OutputBuffer)) {
	cursor := output.CurPosition()

	// Header: length placeholder and sequence
	output.Output([]byte{0, seq&MessageSeqMask | MessageDest})

	frameData(output)

	// Update length field
	changed := len(output.DataSince(cursor))
	output.Update(cursor, uint8(changed+MessageTrailerSize))

	crc := CRC16(output.DataSince(cursor))
	output.Output([]byte{
		uint8((crc & 0xFF00) >> 8),
		uint8(crc & 0xFF),
		MessageValueSync,
	})
}

// FrameDecoder splits a byte stream into frames, resynchronising on the
// sync byte after any framing or checksum error.
type FrameDecoder struct {
	isSynchronized bool
	errors         uint32
}

// NewFrameDecoder creates a synchronised decoder
func NewFrameDecoder() *FrameDecoder {
	return &FrameDecoder{isSynchronized: true}
}

// Errors returns how many times the decoder lost synchronisation
func (d *FrameDecoder) Errors() uint32 {
	return d.errors
}

// Receive decodes all complete frames in input, calls handler for each,
// and pops the consumed bytes. An incomplete trailing frame is left in input.
func (d *FrameDecoder) Receive(input InputBuffer, handler FrameHandler) {
	data := input.Data()

	for len(data) > 0 {
		if !d.isSynchronized {
			// Look for sync byte
			syncPos := -1
			for i, b := range data {
				if b == MessageValueSync {
					syncPos = i
					break
				}
			}

			if syncPos >= 0 {
				data = data[syncPos+1:]
				d.isSynchronized = true
			} else {
				data = nil
			}
			continue
		}

		// Skip leading sync bytes
		if data[0] == MessageValueSync {
			data = data[1:]
			continue
		}

		if len(data) < MessageLengthMin {
			break
		}

		msgLen := int(data[MessagePositionLen])
		if msgLen < MessageLengthMin || msgLen > MessageLengthMax {
			d.desync()
			continue
		}

		seq := data[MessagePositionSeq]
		if seq&^MessageSeqMask != MessageDest {
			d.desync()
			continue
		}

		// Wait for full message
		if len(data) < msgLen {
			break
		}

		if data[msgLen-MessageTrailerSync] != MessageValueSync {
			d.desync()
			continue
		}

		frameCRC := uint16(data[msgLen-MessageTrailerCRC])<<8 |
			uint16(data[msgLen-MessageTrailerCRC+1])
		actualCRC := CRC16(data[:msgLen-MessageTrailerSize])
		if frameCRC != actualCRC {
			d.desync()
			continue
		}

		payload := make([]byte, msgLen-MessageLengthMin)
		copy(payload, data[MessageHeaderSize:msgLen-MessageTrailerSize])
		frame := &Frame{
			Length:   uint8(msgLen),
			Sequence: seq,
			Payload:  payload,
			CRC:      frameCRC,
		}
		data = data[msgLen:]

		if handler != nil {
			handler(frame)
		}
	}

	consumed := input.Available() - len(data)
	if consumed > 0 {
		input.Pop(consumed)
	}
}

func (d *FrameDecoder) desync() {
	d.isSynchronized = false
	d.errors++
}
