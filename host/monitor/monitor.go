// Package monitor decodes timer event frames sent by a target and keeps
// per-timer statistics.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"go.uber.org/zap"

	"timlib/core"
	"timlib/protocol"
)

const (
	fifoSize = 1024
	readSize = 256
)

// Stats aggregates the events reported for one timer
type Stats struct {
	OID       uint8
	Name      string
	State     core.State
	LastClock uint32
	Events    map[string]uint32 // count per event name
	Overflows uint32
	LastLap   uint32
	MaxLap    uint32
	LastWatch uint32
}

// Monitor consumes a byte stream of timer event frames
type Monitor struct {
	cfg    *Config
	logger *zap.Logger

	// Follow treats io.EOF as a read timeout and keeps reading until the
	// context is cancelled. Serial ports report an idle line as EOF.
	Follow bool

	mu          sync.Mutex
	fifo        *protocol.FifoBuffer
	decoder     *protocol.FrameDecoder
	stats       map[uint8]*Stats
	frames      uint32
	badPayloads uint32
}

// New creates a monitor. A nil config uses DefaultConfig, a nil logger
// discards output.
func New(cfg *Config, logger *zap.Logger) *Monitor {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		cfg:     cfg,
		logger:  logger.Named("monitor"),
		fifo:    protocol.NewFifoBuffer(fifoSize),
		decoder: protocol.NewFrameDecoder(),
		stats:   make(map[uint8]*Stats),
	}
}

// Run reads r until EOF or until ctx is done
func (m *Monitor) Run(ctx context.Context, r io.Reader) error {
	buf := make([]byte, readSize)
	m.logger.Info("monitor started", zap.String("protocol", protocol.Version))

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		n, err := r.Read(buf)
		if n > 0 {
			m.Feed(buf[:n])
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				if m.Follow {
					continue
				}
				return nil
			}
			return fmt.Errorf("read: %w", err)
		}
	}
}

// Feed processes received bytes. Incomplete frames are kept until the
// next call.
func (m *Monitor) Feed(data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Nothing buffered: decode in place and keep only an incomplete tail
	if m.fifo.IsEmpty() {
		input := protocol.NewSliceInputBuffer(data)
		m.decoder.Receive(input, m.handleFrame)
		data = input.Data()
	}

	for len(data) > 0 {
		n := m.fifo.Write(data)
		data = data[n:]

		m.decoder.Receive(m.fifo, m.handleFrame)

		if n == 0 && m.fifo.Free() == 0 {
			m.logger.Warn("receive buffer stuck, dropping", zap.Int("bytes", m.fifo.Available()))
			m.fifo.Reset()
		}
	}
}

func (m *Monitor) handleFrame(frame *protocol.Frame) {
	m.frames++

	err := protocol.DecodeTimerEvents(frame.Payload, m.record)
	if err != nil {
		m.badPayloads++
		m.logger.Warn("bad frame payload", lfdSequence(frame.Sequence), lfdError(err))
	}
}

func (m *Monitor) record(ev protocol.TimerEvent) {
	st, ok := m.stats[ev.OID]
	if !ok {
		st = &Stats{
			OID:    ev.OID,
			Name:   m.cfg.TimerName(ev.OID),
			Events: make(map[string]uint32),
		}
		m.stats[ev.OID] = st
	}

	st.LastClock = ev.Clock
	st.Events[core.EventName(ev.Type)]++

	switch ev.Type {
	case core.EvtStart, core.EvtTick:
		st.State = core.StateRunning
	case core.EvtPause:
		st.State = core.StatePaused
	case core.EvtReady:
		st.State = core.StateReady
	case core.EvtStop:
		st.State = core.StateIdle
	case core.EvtOverflow:
		st.State = core.StateOverflow
		st.Overflows++
	case core.EvtLap:
		st.State = core.StateRunning
		st.LastLap = ev.Value
		if ev.Value > st.MaxLap {
			st.MaxLap = ev.Value
		}
	case core.EvtWatch:
		st.LastWatch = ev.Value
	}

	fields := []zap.Field{lfdOID(ev.OID), lfdTimer(st.Name), lfdEvent(ev.Type), lfdClock(ev.Clock), lfdValue(ev.Value)}
	if ev.Type == core.EvtOverflow {
		m.logger.Warn("timer overflow", fields...)
	} else {
		m.logger.Debug("timer event", fields...)
	}
}

// Frames returns the number of valid frames received
func (m *Monitor) Frames() uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.frames
}

// Errors returns the framing errors plus payloads that failed to decode
func (m *Monitor) Errors() uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.decoder.Errors() + m.badPayloads
}

// Summary returns a copy of the statistics sorted by OID
func (m *Monitor) Summary() []Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Stats, 0, len(m.stats))
	for _, st := range m.stats {
		cp := *st
		cp.Events = make(map[string]uint32, len(st.Events))
		for k, v := range st.Events {
			cp.Events[k] = v
		}
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OID < out[j].OID })
	return out
}

// LogSummary writes one info line per timer
func (m *Monitor) LogSummary() {
	for _, st := range m.Summary() {
		m.logger.Info("timer summary",
			lfdOID(st.OID),
			lfdTimer(st.Name),
			zap.Stringer("state", st.State),
			zap.Any("events", st.Events),
			zap.Uint32("overflows", st.Overflows),
			zap.Uint32("lastLap", st.LastLap),
			zap.Uint32("maxLap", st.MaxLap),
			zap.Uint32("lastWatch", st.LastWatch),
		)
	}
}
