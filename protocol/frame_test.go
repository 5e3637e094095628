package protocol

import (
	"bytes"
	"errors"
	"fmt"
	"testing"
)

func TestEncodeFrame(t *testing.T) {
	tests := []struct {
		name    string
		cmd     Command
		payload []byte
		want    []byte
		wantErr bool
	}{
		{
			name:    "no payload",
			cmd:     CmdVersion,
			payload: nil,
			want:    []byte{0x01, 0x00},
		},
		{
			name:    "write with two data bytes",
			cmd:     CmdWrite,
			payload: []byte{0x50, 0x01, 0x02},
			want:    []byte{0x04, 0x03, 0x50, 0x01, 0x02},
		},
		{
			name:    "init payload",
			cmd:     CmdInit,
			payload: []byte{0x01, 0x00, 0x90, 0x01},
			want:    []byte{0x05, 0x01, 0x01, 0x00, 0x90, 0x01},
		},
		{
			name:    "maximum payload",
			cmd:     CmdWrite,
			payload: bytes.Repeat([]byte{0xAB}, MaxPayload),
			want:    append([]byte{0xFF, 0x03}, bytes.Repeat([]byte{0xAB}, MaxPayload)...),
		},
		{
			name:    "payload one byte over the limit",
			cmd:     CmdWrite,
			payload: bytes.Repeat([]byte{0xAB}, MaxPayload+1),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeFrame(tt.cmd, tt.payload)

			if (err != nil) != tt.wantErr {
				t.Fatalf("EncodeFrame() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrPayloadTooLarge) {
					t.Errorf("error = %v, want ErrPayloadTooLarge", err)
				}
				return
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("EncodeFrame() = % x, want % x", got, tt.want)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	payloads := [][]byte{
		nil,
		{0x00},
		{0x50, 0x01, 0x02},
		bytes.Repeat([]byte{0x5A}, 100),
		bytes.Repeat([]byte{0xFF}, MaxPayload),
	}
	commands := []Command{CmdVersion, CmdInit, CmdWrite, CmdRead, CmdTransaction, CmdDebug1}

	for _, cmd := range commands {
		for _, payload := range payloads {
			name := fmt.Sprintf("%s_%d_bytes", cmd, len(payload))
			t.Run(name, func(t *testing.T) {
				frame, err := EncodeFrame(cmd, payload)
				if err != nil {
					t.Fatalf("EncodeFrame() error = %v", err)
				}

				first, got, err := DecodeFrame(bytes.NewReader(frame))
				if err != nil {
					t.Fatalf("DecodeFrame() error = %v", err)
				}
				if first != byte(cmd) {
					t.Errorf("first byte = 0x%02X, want 0x%02X", first, byte(cmd))
				}
				if !bytes.Equal(got, payload) {
					t.Errorf("payload = % x, want % x", got, payload)
				}
			})
		}
	}
}

func TestDecodeFrame_Timeout(t *testing.T) {
	t.Run("channel yields zero bytes", func(t *testing.T) {
		_, _, err := DecodeFrame(&starvingReader{})
		if !IsTimeout(err) {
			t.Fatalf("error = %v, want timeout", err)
		}
	})

	t.Run("channel at end of stream", func(t *testing.T) {
		_, _, err := DecodeFrame(bytes.NewReader(nil))
		if !IsTimeout(err) {
			t.Fatalf("error = %v, want timeout", err)
		}
	})

	t.Run("timeout is not any other kind", func(t *testing.T) {
		_, _, err := DecodeFrame(&starvingReader{})
		if IsShortResponse(err) || IsProtocolError(err) || IsBusError(err) {
			t.Errorf("timeout matched another predicate: %v", err)
		}
	})
}

func TestDecodeFrame_ShortResponse(t *testing.T) {
	tests := []struct {
		name         string
		chunks       [][]byte
		wantReceived int
		wantExpected int
	}{
		{
			name:         "starves after two of five body bytes",
			chunks:       [][]byte{{0x05}, {0x00, 0x01}},
			wantReceived: 2,
			wantExpected: 5,
		},
		{
			name:         "starves immediately after length byte",
			chunks:       [][]byte{{0x03}},
			wantReceived: 0,
			wantExpected: 3,
		},
		{
			name:         "starves one byte short",
			chunks:       [][]byte{{0x04}, {0x00}, {0x01, 0x02}},
			wantReceived: 3,
			wantExpected: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeFrame(&starvingReader{chunks: tt.chunks})
			if !IsShortResponse(err) {
				t.Fatalf("error = %v, want short response", err)
			}

			var pe *Error
			if !errors.As(err, &pe) {
				t.Fatalf("error is not *Error: %v", err)
			}
			if pe.Received != tt.wantReceived || pe.Expected != tt.wantExpected {
				t.Errorf("counts = got %d expected %d, want got %d expected %d",
					pe.Received, pe.Expected, tt.wantReceived, tt.wantExpected)
			}

			wantMsg := fmt.Sprintf("short response; got %d bytes, expected %d", tt.wantReceived, tt.wantExpected)
			if err.Error() != wantMsg {
				t.Errorf("message = %q, want %q", err.Error(), wantMsg)
			}
		})
	}

	t.Run("truncated stream counts as starvation", func(t *testing.T) {
		// Length byte declares 5, stream ends after 2 body bytes.
		_, _, err := DecodeFrame(bytes.NewReader([]byte{0x05, 0x00, 0x01}))
		if !IsShortResponse(err) {
			t.Fatalf("error = %v, want short response", err)
		}
		want := "short response; got 2 bytes, expected 5"
		if err.Error() != want {
			t.Errorf("message = %q, want %q", err.Error(), want)
		}
	})
}

func TestDecodeFrame_ZeroLengthFrame(t *testing.T) {
	_, _, err := DecodeFrame(bytes.NewReader([]byte{0x00}))
	if !IsProtocolError(err) {
		t.Fatalf("error = %v, want protocol error", err)
	}
}

func TestDecodeFrame_PartialReads(t *testing.T) {
	// A conforming decode must accumulate body bytes across as many partial
	// reads as the channel needs.
	frame := []byte{0x04, 0x00, 0x11, 0x22, 0x33}
	first, payload, err := DecodeFrame(&oneByteReader{data: frame})
	if err != nil {
		t.Fatalf("DecodeFrame() error = %v", err)
	}
	if first != 0x00 {
		t.Errorf("first byte = 0x%02X, want 0x00", first)
	}
	if !bytes.Equal(payload, []byte{0x11, 0x22, 0x33}) {
		t.Errorf("payload = % x, want 11 22 33", payload)
	}
}

func TestDecodeFrame_ReaderError(t *testing.T) {
	bang := errors.New("bang")

	t.Run("on length read", func(t *testing.T) {
		_, _, err := DecodeFrame(&errReader{err: bang})
		if !errors.Is(err, bang) {
			t.Fatalf("error = %v, want wrapped bang", err)
		}
		if IsTimeout(err) {
			t.Error("reader error must not classify as timeout")
		}
	})

	t.Run("mid body", func(t *testing.T) {
		r := &sequenceReader{readers: []readerStep{
			{data: []byte{0x05}},
			{data: []byte{0x00}},
			{err: bang},
		}}
		_, _, err := DecodeFrame(r)
		if !errors.Is(err, bang) {
			t.Fatalf("error = %v, want wrapped bang", err)
		}
		if IsShortResponse(err) {
			t.Error("reader error must not classify as short response")
		}
	})
}

func TestReadResponse(t *testing.T) {
	frame := []byte{0x03, byte(StatusNackOnAddress), 0xAA, 0xBB}
	st, payload, err := ReadResponse(bytes.NewReader(frame))
	if err != nil {
		t.Fatalf("ReadResponse() error = %v", err)
	}
	if st != StatusNackOnAddress {
		t.Errorf("status = %v, want nack on address", st)
	}
	if !bytes.Equal(payload, []byte{0xAA, 0xBB}) {
		t.Errorf("payload = % x, want aa bb", payload)
	}
}

// starvingReader yields its chunks one Read at a time, then zero bytes
// forever, mimicking a serial port whose read window keeps expiring.
type starvingReader struct {
	chunks [][]byte
}

func (r *starvingReader) Read(p []byte) (int, error) {
	if len(r.chunks) == 0 {
		return 0, nil
	}
	n := copy(p, r.chunks[0])
	if n < len(r.chunks[0]) {
		r.chunks[0] = r.chunks[0][n:]
	} else {
		r.chunks = r.chunks[1:]
	}
	return n, nil
}

// oneByteReader delivers its data a single byte per Read, then zero bytes.
type oneByteReader struct {
	data []byte
}

func (r *oneByteReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, nil
	}
	p[0] = r.data[0]
	r.data = r.data[1:]
	return 1, nil
}

// errReader fails every Read with a fixed error.
type errReader struct {
	err error
}

func (r *errReader) Read(p []byte) (int, error) {
	return 0, r.err
}

type readerStep struct {
	data []byte
	err  error
}

// sequenceReader replays a fixed sequence of Read outcomes.
type sequenceReader struct {
	readers []readerStep
}

func (r *sequenceReader) Read(p []byte) (int, error) {
	if len(r.readers) == 0 {
		return 0, nil
	}
	step := r.readers[0]
	r.readers = r.readers[1:]
	if step.err != nil {
		return 0, step.err
	}
	return copy(p, step.data), nil
}

// Benchmark tests
func BenchmarkEncodeFrame(b *testing.B) {
	payload := bytes.Repeat([]byte{0x5A}, 32)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		EncodeFrame(CmdWrite, payload)
	}
}

func BenchmarkDecodeFrame(b *testing.B) {
	frame := append([]byte{0x21, byte(StatusOK)}, bytes.Repeat([]byte{0x5A}, 32)...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		DecodeFrame(bytes.NewReader(frame))
	}
}
