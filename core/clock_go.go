//go:build !tinygo

package core

import "time"

var (
	clockEpoch  = time.Now()
	clockOffset uint32
)

// getSystemMillis returns milliseconds since process start plus the offset
// installed by setSystemMillis (regular Go implementation)
func getSystemMillis() uint32 {
	return uint32(time.Since(clockEpoch).Milliseconds()) + clockOffset
}

// setSystemMillis shifts the counter so that it reads ms now and keeps counting
func setSystemMillis(ms uint32) {
	clockOffset = ms - uint32(time.Since(clockEpoch).Milliseconds())
}
