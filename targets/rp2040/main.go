//go:build rp2040

package main

import (
	"machine"
	"time"

	"timlib/core"
	"timlib/protocol"
)

// Button from GPIO2 to GND, read through the internal pull-up
const buttonPin = machine.GPIO2

const setpoint = 5000 // ms

// Trace IDs reported to the host monitor
const (
	oidOnDelay uint8 = iota + 1
	oidOffDelay
	oidPulse
	oidInterval
	oidLap
	oidStopWatch
)

// ledSource selects which timer output drives the LED
type ledSource uint8

const (
	ledOnDelay  ledSource = iota // on after holding the button for 5 s
	ledOffDelay                  // on while pushed, stays on 5 s after release
	ledPulse                     // on for 5 s per push, however long the push
)

var ledMode = ledOnDelay

var (
	onDelay   = core.NewOnDelayTimer(setpoint, core.WithTraceID(oidOnDelay))
	offDelay  = core.NewOffDelayTimer(setpoint, core.WithTraceID(oidOffDelay))
	pulse     = core.NewPulseTimer(setpoint, core.WithTraceID(oidPulse))
	interval  = core.NewIntervalTimer(setpoint, core.WithTraceID(oidInterval))
	lap       = core.NewLapTimer(core.WithTraceID(oidLap))
	stopWatch = core.NewStopWatch(core.WithTraceID(oidStopWatch))
	loopTimer = core.NewCycleTimer() // untraced, it laps every pass

	outputBuffer = protocol.NewScratchOutput()
	reportSeq    = uint8(protocol.MessageDest)

	writeFailures uint32
)

func main() {
	InitUSB()
	InitDebugUART()

	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	buttonPin.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

	var buttonPushed, memoButtonPushed bool

	for {
		UpdateSystemTime()
		loopTimer.CycleTrigger()

		memoButtonPushed = buttonPushed
		buttonPushed = !buttonPin.Get()
		risingEdge := !memoButtonPushed && buttonPushed
		fallingEdge := memoButtonPushed && !buttonPushed

		onDelayOut := onDelay.Run(buttonPushed)
		offDelayOut := offDelay.Run(buttonPushed)
		pulseOut := pulse.Run(buttonPushed)

		switch ledMode {
		case ledOnDelay:
			led.Set(onDelayOut)
		case ledOffDelay:
			led.Set(offDelayOut)
		case ledPulse:
			led.Set(pulseOut)
		}

		if interval.Tick() {
			if core.IsDebugEnabled() {
				core.DebugPrintln("Just another print. loop max=" + utoa(loopTimer.MaxTime()) + "ms")
			}
			loopTimer.Reset()
			reportTimings()
		}

		// Time between pushes; the first push prints 0. No debouncing.
		if risingEdge {
			lapTime := lap.Lap()
			if core.IsDebugEnabled() {
				core.DebugPrintln("lap " + utoa(lapTime))
			}
		}

		// Time the button was held
		if risingEdge {
			stopWatch.Restart()
		} else if fallingEdge {
			held := stopWatch.Watch()
			core.RecordTiming(core.EvtWatch, oidStopWatch, core.GetMillis(), held)
			if core.IsDebugEnabled() {
				core.DebugPrintln("held " + utoa(held))
			}
			stopWatch.Stop()
		}

		time.Sleep(100 * time.Microsecond)
	}
}

// reportTimings sends every pending timing event to the host as frames
func reportTimings() {
	for core.PendingTimingEvents() > 0 {
		outputBuffer.Reset()
		reportSeq = core.ReportTimingRing(outputBuffer, reportSeq)
		if !writeUSB() {
			return
		}
	}
}

// writeUSB writes the output buffer to USB. On repeated failures the host
// is assumed gone and pending events are dropped.
func writeUSB() bool {
	result := outputBuffer.Result()
	written := 0
	for written < len(result) {
		n, err := USBWriteBytes(result[written:])
		if err != nil || n == 0 {
			writeFailures++
			if writeFailures > 10 {
				writeFailures = 0
				core.ClearTimingRing()
			}
			outputBuffer.Reset()
			return false
		}
		written += n
	}
	writeFailures = 0
	outputBuffer.Reset()
	return true
}
