//go:build tinygo

package core

import "sync/atomic"

var systemMillisValue uint32

// getSystemMillis returns the millisecond counter last stored by the target
func getSystemMillis() uint32 {
	return atomic.LoadUint32(&systemMillisValue)
}

// setSystemMillis stores the millisecond counter
func setSystemMillis(ms uint32) {
	atomic.StoreUint32(&systemMillisValue, ms)
}
