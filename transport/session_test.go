package transport

import (
	"bytes"
	"errors"
	"testing"
)

func TestSessionReadWrite(t *testing.T) {
	port := &fakePort{readData: []byte{0x01, 0x00}}
	s := newSession(port)

	buf := make([]byte, 2)
	n, err := s.Read(buf)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if n != 2 || !bytes.Equal(buf, []byte{0x01, 0x00}) {
		t.Errorf("Read() = %d bytes % x, want 2 bytes 01 00", n, buf[:n])
	}

	if _, err := s.Write([]byte{0x02, 0x03, 0x50}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !bytes.Equal(port.written, []byte{0x02, 0x03, 0x50}) {
		t.Errorf("written = % x, want 02 03 50", port.written)
	}
}

func TestSessionFailsFastAfterClose(t *testing.T) {
	port := &fakePort{}
	s := newSession(port)

	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !port.closed {
		t.Error("Close() did not close the underlying port")
	}

	tests := []struct {
		name string
		call func() error
	}{
		{"read", func() error { _, err := s.Read(make([]byte, 1)); return err }},
		{"write", func() error { _, err := s.Write([]byte{0x00}); return err }},
		{"second close", func() error { return s.Close() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, ErrClosed) {
				t.Errorf("error = %v, want ErrClosed", err)
			}
		})
	}

	// The port must be closed exactly once.
	if port.closeCount != 1 {
		t.Errorf("underlying Close called %d times, want 1", port.closeCount)
	}
}

func TestSessionReadTimeoutPassesThrough(t *testing.T) {
	// A serial read that times out yields (0, nil); the session must not
	// reinterpret it. Classification happens in the frame decoder.
	s := newSession(&fakePort{})

	n, err := s.Read(make([]byte, 1))
	if n != 0 || err != nil {
		t.Errorf("Read() = (%d, %v), want (0, nil)", n, err)
	}
}

// fakePort is a scripted stand-in for a serial port: serves readData once,
// then zero-byte reads, and records writes.
type fakePort struct {
	readData   []byte
	written    []byte
	closed     bool
	closeCount int
}

func (p *fakePort) Read(b []byte) (int, error) {
	if len(p.readData) == 0 {
		return 0, nil
	}
	n := copy(b, p.readData)
	p.readData = p.readData[n:]
	return n, nil
}

func (p *fakePort) Write(b []byte) (int, error) {
	p.written = append(p.written, b...)
	return len(b), nil
}

func (p *fakePort) Close() error {
	p.closed = true
	p.closeCount++
	return nil
}
