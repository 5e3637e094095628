package transport

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"go.bug.st/serial"
	"go.uber.org/zap"

	"github.com/muurk/busbridge/internal/logging"
	"github.com/muurk/busbridge/internal/version"
)

const (
	// BaudRate is the fixed symbol rate of the adapter's CDC-ACM port.
	BaudRate = 115200

	// ReadTimeout is the window a read waits before yielding zero bytes.
	ReadTimeout = 10 * time.Second

	// SettleDelay is the pause between opening the port and the first
	// frame, covering microcontroller boot/bootloader time.
	SettleDelay = 600 * time.Millisecond
)

// ErrClosed is returned by every Session method after Close. Match with
// errors.Is.
var ErrClosed = errors.New("session is closed")

// Channel is the duplex byte stream the protocol layer talks over. Read
// returns up to len(p) bytes and (0, nil) once the read window expires;
// the frame decoder depends on that contract.
type Channel interface {
	io.ReadWriteCloser
}

// Session is the open serial channel to one adapter. It is single-owner:
// created by Open, destroyed by Close, and unusable afterward.
type Session struct {
	mu     sync.Mutex
	port   io.ReadWriteCloser
	closed bool
}

// Open opens the serial port at path with the adapter's fixed parameters:
// 115200 8N1, the 10 s read timeout, DTR and RTS deasserted, then the
// settle delay before returning. The order is part of the device contract.
func Open(path string) (*Session, error) {
	mode := &serial.Mode{
		BaudRate: BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := serial.Open(path, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", path, err)
	}

	if err := configurePort(port); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("failed to configure serial port %s: %w", path, err)
	}

	logging.Debug("Serial session opened",
		zap.String("port", path),
		zap.Int("baud_rate", BaudRate),
		zap.String("driver_version", version.Full()),
	)

	// The microcontroller may still be in its bootloader; no traffic until
	// the settle delay has passed.
	time.Sleep(SettleDelay)

	return newSession(port), nil
}

// configurePort applies the read timeout and deasserts both control lines.
// Boards that wire DTR or RTS to reset would otherwise see a reset pulse.
func configurePort(port serial.Port) error {
	if err := port.SetReadTimeout(ReadTimeout); err != nil {
		return fmt.Errorf("failed to set read timeout: %w", err)
	}
	if err := port.SetDTR(false); err != nil {
		return fmt.Errorf("failed to deassert DTR: %w", err)
	}
	if err := port.SetRTS(false); err != nil {
		return fmt.Errorf("failed to deassert RTS: %w", err)
	}
	return nil
}

// newSession wraps an already-configured port. Split from Open so the
// lifecycle rules are testable without hardware.
func newSession(port io.ReadWriteCloser) *Session {
	return &Session{port: port}
}

// Read reads up to len(p) bytes from the port, returning (0, nil) when
// the read window expires.
func (s *Session) Read(p []byte) (int, error) {
	port, err := s.get()
	if err != nil {
		return 0, err
	}
	return port.Read(p)
}

// Write writes p to the port.
func (s *Session) Write(p []byte) (int, error) {
	port, err := s.get()
	if err != nil {
		return 0, err
	}
	return port.Write(p)
}

// Close releases the port. The session is unusable afterward; a second
// Close returns ErrClosed like every other use.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	s.closed = true

	logging.Debug("Serial session closed")
	return s.port.Close()
}

// get returns the port, or ErrClosed once Close has run.
func (s *Session) get() (io.ReadWriteCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrClosed
	}
	return s.port, nil
}
