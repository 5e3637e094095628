package device

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/muurk/busbridge/internal/logging"
	"github.com/muurk/busbridge/protocol"
)

// Client dispatches framed commands to one bridge adapter over a duplex
// byte channel. It owns the request/response pairing: exactly one exchange
// at a time, enforced by the mutex.
type Client struct {
	mu sync.Mutex
	ch io.ReadWriteCloser
}

// NewClient wraps an open channel, typically a *transport.Session.
func NewClient(ch io.ReadWriteCloser) *Client {
	return &Client{ch: ch}
}

// Call sends one command frame and decodes one response frame. It is the
// only primitive every operation communicates through.
//
// Call propagates Timeout and ShortResponse errors from the decoder
// unchanged and does not interpret the status byte; per-operation success
// rules live with each operation.
func (c *Client) Call(cmd protocol.Command, payload []byte) (protocol.Status, []byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	frame, err := protocol.EncodeFrame(cmd, payload)
	if err != nil {
		return 0, nil, err
	}

	logging.LogRawBytes("request frame", frame)

	n, err := c.ch.Write(frame)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to write %s request: %w", cmd, err)
	}
	if n != len(frame) {
		return 0, nil, fmt.Errorf("short write on %s request: wrote %d of %d bytes", cmd, n, len(frame))
	}

	status, response, err := protocol.ReadResponse(c.ch)
	if err != nil {
		return 0, nil, err
	}

	logging.Debug("Response received",
		zap.Stringer("command", cmd),
		zap.Stringer("status", status),
		zap.Int("payload_length", len(response)),
	)
	logging.LogRawBytes("response payload", response)

	return status, response, nil
}

// Close closes the underlying channel. Never called mid-exchange; the
// mutex guarantees any in-flight Call finishes first.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ch.Close()
}
