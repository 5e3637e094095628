package protocol

import (
	"errors"
	"fmt"
	"io"
)

// MaxPayload is the largest payload a single frame can carry. The one-byte
// length field counts the command/status byte plus the payload.
const MaxPayload = 254

// ErrPayloadTooLarge is returned by EncodeFrame when a payload cannot fit in
// one frame. Match with errors.Is.
var ErrPayloadTooLarge = errors.New("payload too large for a single frame")

// EncodeFrame builds a request frame: length, command code, payload.
func EncodeFrame(cmd Command, payload []byte) ([]byte, error) {
	if len(payload) > MaxPayload {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrPayloadTooLarge, len(payload), MaxPayload)
	}

	frame := make([]byte, 0, len(payload)+2)
	frame = append(frame, byte(len(payload)+1), byte(cmd))
	frame = append(frame, payload...)
	return frame, nil
}

// DecodeFrame reads exactly one frame from r and returns its first body byte
// (status for responses, command echo otherwise) and the remaining payload.
//
// The reader is expected to follow the serial transport contract: Read
// returns up to len(p) bytes and yields zero bytes once the read window
// expires. Zero bytes on the length read is a Timeout error; zero bytes
// after the length byte arrived is a ShortResponse error carrying the
// got/expected counts. End of stream counts as a zero-byte read. Other
// reader errors are wrapped and returned unclassified.
func DecodeFrame(r io.Reader) (byte, []byte, error) {
	var length [1]byte
	n, err := r.Read(length[:])
	if err != nil && err != io.EOF {
		return 0, nil, fmt.Errorf("read frame length: %w", err)
	}
	if n == 0 {
		return 0, nil, NewTimeout()
	}

	size := int(length[0])
	if size == 0 {
		// The length byte counts the status byte, so zero can never be
		// produced by conforming firmware.
		return 0, nil, NewProtocolError("zero-length frame")
	}

	body := make([]byte, size)
	got := 0
	for got < size {
		n, err := r.Read(body[got:])
		got += n
		if err != nil && err != io.EOF {
			return 0, nil, fmt.Errorf("read frame body: %w", err)
		}
		if n == 0 {
			return 0, nil, NewShortResponse(got, size)
		}
	}

	return body[0], body[1:], nil
}

// ReadResponse decodes one response frame, typing the first body byte as a
// Status.
func ReadResponse(r io.Reader) (Status, []byte, error) {
	first, payload, err := DecodeFrame(r)
	if err != nil {
		return 0, nil, err
	}
	return Status(first), payload, nil
}
