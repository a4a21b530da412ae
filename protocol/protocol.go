// Package protocol implements the framed link used to report timer events
// from a target to a host. Framing follows the Klipper message block layout.
package protocol

// Version represents the timer event protocol version
const Version = "0.1.0"

// Protocol constants
const (
	MessageMax = 512 // Scratch output buffer size

	// Message sequence masks
	MessageSeqMask  = 0x0F
	MessageSeqShift = 4
)

// Frame layout
const (
	MessageHeaderSize  = 2
	MessageTrailerSize = 3
	MessageLengthMin   = MessageHeaderSize + MessageTrailerSize
	MessageLengthMax   = 64
	MessagePayloadMax  = MessageLengthMax - MessageLengthMin
	MessagePositionLen = 0
	MessagePositionSeq = 1
	MessageTrailerCRC  = 3
	MessageTrailerSync = 1
	MessageValueSync   = 0x7E
	MessageDest        = 0x10
)

// Message IDs carried in frame payloads
const (
	MsgTimerEvent = 1 // type=%c oid=%c clock=%u value=%u
)
