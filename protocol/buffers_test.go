package protocol

import "testing"

func TestSliceInputBuffer(t *testing.T) {
	buf := NewSliceInputBuffer([]byte{1, 2, 3, 4, 5})

	if buf.Available() != 5 {
		t.Errorf("Expected 5 bytes available, got %d", buf.Available())
	}

	buf.Pop(2)
	if bufData := buf.Data(); len(bufData) != 3 || bufData[0] != 3 {
		t.Errorf("After popping 2, expected [3 4 5], got %v", bufData)
	}

	buf.Pop(10)
	if buf.Available() != 0 {
		t.Errorf("Expected empty buffer after over-pop, got %d", buf.Available())
	}
}

func TestScratchOutput(t *testing.T) {
	scratch := NewScratchOutput()

	scratch.Output([]byte{1, 2, 3})
	scratch.Output([]byte{4, 5})

	if scratch.CurPosition() != 5 {
		t.Errorf("Expected position 5, got %d", scratch.CurPosition())
	}
	if scratch.Free() != MessageMax-5 {
		t.Errorf("Expected %d free, got %d", MessageMax-5, scratch.Free())
	}

	scratch.Update(0, 99)
	if result := scratch.Result(); result[0] != 99 {
		t.Errorf("Expected first byte to be 99, got %d", result[0])
	}

	since := scratch.DataSince(2)
	if len(since) != 3 || since[0] != 3 {
		t.Errorf("DataSince(2) failed: expected [3 4 5], got %v", since)
	}
	if scratch.DataSince(6) != nil {
		t.Error("DataSince past the end should be nil")
	}

	scratch.Reset()
	if scratch.CurPosition() != 0 {
		t.Errorf("After reset, expected position 0, got %d", scratch.CurPosition())
	}
}

func TestScratchOutputDropsOverflow(t *testing.T) {
	scratch := NewScratchOutput()
	scratch.Output(make([]byte, MessageMax+10))

	if scratch.CurPosition() != MessageMax || scratch.Free() != 0 {
		t.Errorf("Expected a full buffer, position %d free %d", scratch.CurPosition(), scratch.Free())
	}
}

func TestFifoBuffer(t *testing.T) {
	fifo := NewFifoBuffer(10)

	if !fifo.IsEmpty() {
		t.Error("New FIFO should be empty")
	}
	if fifo.Free() != 10 {
		t.Errorf("Expected 10 free bytes, got %d", fifo.Free())
	}

	if n := fifo.Write([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}); n != 10 {
		t.Errorf("Expected 10 bytes written to a full FIFO, got %d", n)
	}
	if n := fifo.Write([]byte{12}); n != 0 {
		t.Errorf("Expected a full FIFO to refuse data, wrote %d", n)
	}

	fifo.Pop(6)
	if fifo.Available() != 4 || fifo.Free() != 6 {
		t.Errorf("Expected 4 available and 6 free, got %d and %d", fifo.Available(), fifo.Free())
	}

	// Wrap around the end of the ring
	if n := fifo.Write([]byte{20, 21, 22, 23}); n != 4 {
		t.Errorf("Expected 4 bytes written, got %d", n)
	}
	data := fifo.Data()
	expected := []byte{7, 8, 9, 10, 20, 21, 22, 23}
	if len(data) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, data)
	}
	for i := range expected {
		if data[i] != expected[i] {
			t.Errorf("Byte %d: expected %d, got %d", i, expected[i], data[i])
		}
	}

	fifo.Pop(5)
	if data := fifo.Data(); len(data) != 3 || data[0] != 21 {
		t.Errorf("Expected [21 22 23] after popping past the wrap, got %v", data)
	}

	fifo.Pop(100)
	if !fifo.IsEmpty() {
		t.Error("FIFO should be empty after popping everything")
	}

	fifo.Write([]byte{1, 2})
	fifo.Reset()
	if !fifo.IsEmpty() || fifo.Free() != 10 {
		t.Error("FIFO should be empty after reset")
	}
}
