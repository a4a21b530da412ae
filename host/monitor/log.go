package monitor

import (
	"go.uber.org/zap"

	"timlib/core"
)

func lfdOID(oid uint8) zap.Field {
	return zap.Uint8("oid", oid)
}

func lfdTimer(name string) zap.Field {
	return zap.String("timer", name)
}

func lfdEvent(evt uint8) zap.Field {
	return zap.String("event", core.EventName(evt))
}

func lfdClock(clock uint32) zap.Field {
	return zap.Uint32("clock", clock)
}

func lfdValue(value uint32) zap.Field {
	return zap.Uint32("value", value)
}

func lfdSequence(seq uint8) zap.Field {
	return zap.Uint8("seq", seq)
}

func lfdError(err error) zap.Field {
	return zap.NamedError("error", err)
}
