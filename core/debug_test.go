package core

import (
	"strings"
	"testing"
)

func captureDebug(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	SetDebugWriter(func(s string) { lines = append(lines, s) })
	SetDebugEnabled(true)
	t.Cleanup(func() {
		SetDebugWriter(func(s string) {})
		SetDebugEnabled(false)
	})
	return &lines
}

func pendingEvents() []TimingEvent {
	var events []TimingEvent
	for i := uint8(0); i < uint8(PendingTimingEvents()); i++ {
		events = append(events, *pendingTimingEvent(i))
	}
	return events
}

func TestTraceOnDelay(t *testing.T) {
	ClearTimingRing()
	clk := NewManualClock(0)
	tmr := NewOnDelayTimer(100, WithClock(clk), WithTraceID(7))

	tmr.Run(true)
	clk.Set(100)
	tmr.Run(true)
	clk.Set(150)
	tmr.Run(false)
	tmr.Run(false) // already idle, nothing recorded

	expected := []TimingEvent{
		{EventType: EvtStart, OID: 7, Clock: 0, Value: 0},
		{EventType: EvtReady, OID: 7, Clock: 100, Value: 100},
		{EventType: EvtStop, OID: 7, Clock: 150, Value: 100},
	}
	events := pendingEvents()
	if len(events) != len(expected) {
		t.Fatalf("Expected %d events, got %d: %v", len(expected), len(events), events)
	}
	for i := range expected {
		if events[i] != expected[i] {
			t.Errorf("Event %d: expected %+v, got %+v", i, expected[i], events[i])
		}
	}
}

func TestTraceDisabledWithoutID(t *testing.T) {
	ClearTimingRing()
	clk := NewManualClock(0)
	tmr := NewPulseTimer(10, WithClock(clk))

	tmr.Run(true)
	clk.Set(20)
	tmr.Run(false)

	if n := PendingTimingEvents(); n != 0 {
		t.Errorf("Expected no events for an untraced timer, got %d", n)
	}
}

func TestTraceIntervalAndLap(t *testing.T) {
	ClearTimingRing()
	clk := NewManualClock(0)
	it := NewIntervalTimer(100, WithClock(clk), WithTraceID(1))
	lt := NewLapTimer(WithClock(clk), WithTraceID(2))

	it.Tick()
	lt.Lap()
	clk.Set(120)
	it.Tick()
	lt.Lap()

	var ticks, laps int
	for _, evt := range pendingEvents() {
		switch {
		case evt.EventType == EvtTick && evt.OID == 1:
			ticks++
			if evt.Value != 120 {
				t.Errorf("Expected tick at 120 ms elapsed, got %d", evt.Value)
			}
		case evt.EventType == EvtLap && evt.OID == 2:
			laps++
			if evt.Value != 120 {
				t.Errorf("Expected 120 ms lap, got %d", evt.Value)
			}
		}
	}
	if ticks != 1 || laps != 1 {
		t.Errorf("Expected one tick and one lap event, got %d and %d", ticks, laps)
	}
}

func TestOverflowAnnounced(t *testing.T) {
	ClearTimingRing()
	lines := captureDebug(t)

	clk := NewManualClock(0)
	tmr := NewStopWatch(WithClock(clk), WithTraceID(9))
	tmr.Start()
	clk.Set(OverflowValue + 1)
	tmr.Watch()
	tmr.Watch()

	if len(*lines) != 1 || (*lines)[0] != "[TMR] overflow oid=9" {
		t.Errorf("Expected one overflow message, got %q", *lines)
	}

	events := pendingEvents()
	last := events[len(events)-1]
	if last.EventType != EvtOverflow || last.Value != OverflowValue {
		t.Errorf("Expected overflow event, got %+v", last)
	}
}

func TestTimingRingKeepsNewest(t *testing.T) {
	ClearTimingRing()
	for i := uint32(0); i < TimingRingSize+8; i++ {
		RecordTiming(EvtLap, 1, i, i)
	}

	if n := PendingTimingEvents(); n != TimingRingSize {
		t.Fatalf("Expected %d pending events, got %d", TimingRingSize, n)
	}
	if oldest := pendingTimingEvent(0); oldest.Clock != 8 {
		t.Errorf("Expected oldest kept event at clock 8, got %d", oldest.Clock)
	}
	if newest := pendingTimingEvent(TimingRingSize - 1); newest.Clock != TimingRingSize+7 {
		t.Errorf("Expected newest event at clock %d, got %d", TimingRingSize+7, newest.Clock)
	}
}

func TestTimingDisabled(t *testing.T) {
	ClearTimingRing()
	SetTimingEnabled(false)
	defer SetTimingEnabled(true)

	RecordTiming(EvtWatch, 1, 0, 0)
	if n := PendingTimingEvents(); n != 0 {
		t.Errorf("Expected nothing recorded while disabled, got %d", n)
	}
}

func TestDumpTimingRing(t *testing.T) {
	ClearTimingRing()
	lines := captureDebug(t)

	RecordTiming(EvtWatch, 3, 1000, 250)
	DumpTimingRing()

	out := strings.Join(*lines, "\n")
	if !strings.Contains(out, "[TIMING] WATCH oid=3 clock=1000 value=250") {
		t.Errorf("Dump missing event line:\n%s", out)
	}
	if len(*lines) != 3 {
		t.Errorf("Expected header, one event and footer, got %d lines", len(*lines))
	}
}

func TestDebugPrintlnDisabled(t *testing.T) {
	var called bool
	SetDebugWriter(func(s string) { called = true })
	defer SetDebugWriter(func(s string) {})
	SetDebugEnabled(false)

	DebugPrintln("hidden")
	if called {
		t.Error("DebugPrintln wrote while disabled")
	}
	if IsDebugEnabled() {
		t.Error("IsDebugEnabled should report false")
	}

	SetDebugEnabled(true)
	defer SetDebugEnabled(false)
	if !IsDebugEnabled() {
		t.Error("IsDebugEnabled should report true")
	}
	DebugPrintln("shown")
	if !called {
		t.Error("DebugPrintln did not write while enabled")
	}
}

func TestUtoa(t *testing.T) {
	cases := map[uint32]string{
		0:          "0",
		7:          "7",
		1000:       "1000",
		4294967295: "4294967295",
	}
	for n, expected := range cases {
		if got := utoa(n); got != expected {
			t.Errorf("utoa(%d): expected %q, got %q", n, expected, got)
		}
	}
}
