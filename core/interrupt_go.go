//go:build !tinygo

package core

// interruptState is a placeholder for the saved interrupt mask on regular Go
type interruptState uintptr

// disableInterrupts is a no-op on regular Go
func disableInterrupts() interruptState {
	return 0
}

// restoreInterrupts is a no-op on regular Go
func restoreInterrupts(state interruptState) {}
