package i2c

import (
	"encoding/binary"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/muurk/busbridge/device"
	"github.com/muurk/busbridge/internal/logging"
	"github.com/muurk/busbridge/protocol"
)

const (
	// modeMaster is the init mode selector for I2C master operation.
	modeMaster = 1

	// DefaultClockKHz is the fixed I2C bus clock. The wire contract pins
	// it at 400 kHz; it is not configurable.
	DefaultClockKHz = 400
)

// Master drives the adapter's I2C bus in master mode. It holds the generic
// dispatcher and exposes only the bus operations.
type Master struct {
	dev *device.Client
}

// NewMaster initializes I2C master mode on the adapter. The init exchange
// must return ok with an empty payload; any other combination means host
// and firmware disagree on the protocol and is a protocol error.
func NewMaster(dev *device.Client) (*Master, error) {
	payload := make([]byte, 4)
	payload[0] = modeMaster
	payload[1] = 0 // reserved
	binary.LittleEndian.PutUint16(payload[2:], DefaultClockKHz)

	status, response, err := dev.Call(protocol.CmdInit, payload)
	if err != nil {
		return nil, err
	}
	if status != protocol.StatusOK || len(response) != 0 {
		return nil, protocol.NewProtocolError(fmt.Sprintf(
			"init returned status %s with %d payload bytes", status, len(response)))
	}

	logging.Debug("I2C master mode initialized",
		zap.Int("clock_khz", DefaultClockKHz),
	)

	return &Master{dev: dev}, nil
}

// Write sends data to the peripheral at addr. Success is an ok status with
// an empty response payload.
func (m *Master) Write(addr uint8, data []byte) error {
	payload := make([]byte, 0, len(data)+1)
	payload = append(payload, addr)
	payload = append(payload, data...)

	status, response, err := m.dev.Call(protocol.CmdWrite, payload)
	if err != nil {
		return err
	}

	// A response payload is never defined for write, and bad-parameters
	// means the request itself was malformed; both point at the host, not
	// the bus.
	if len(response) != 0 || status == protocol.StatusBadParameters {
		return protocol.NewProtocolError(fmt.Sprintf(
			"write returned status %s with %d payload bytes", status, len(response)))
	}
	if status != protocol.StatusOK {
		return protocol.NewBusStatusError(status)
	}
	return nil
}

// Read reads exactly readSize bytes from the peripheral at addr. An ok
// response carrying fewer bytes than requested is a "short read" bus
// error.
func (m *Master) Read(addr uint8, readSize int) ([]byte, error) {
	if err := checkReadSize(readSize); err != nil {
		return nil, err
	}

	status, response, err := m.dev.Call(protocol.CmdRead, []byte{addr, byte(readSize)})
	if err != nil {
		return nil, err
	}
	if status == protocol.StatusBadParameters {
		return nil, protocol.NewProtocolError("read returned status bad parameters")
	}
	if status != protocol.StatusOK {
		return nil, protocol.NewBusStatusError(status)
	}

	if len(response) != readSize {
		return nil, protocol.NewBusError("short read")
	}
	return response, nil
}

// Transaction writes data to the peripheral at addr and reads readSize
// bytes back in one device-level exchange, without releasing the bus in
// between. At least one write byte is required; a transaction without one
// is meaningless for this command and never reaches the wire.
func (m *Master) Transaction(addr uint8, data []byte, readSize int) ([]byte, error) {
	if len(data) < 1 {
		return nil, errors.New("at least one byte of payload is required")
	}
	if err := checkReadSize(readSize); err != nil {
		return nil, err
	}

	payload := make([]byte, 0, len(data)+2)
	payload = append(payload, addr, byte(readSize))
	payload = append(payload, data...)

	status, response, err := m.dev.Call(protocol.CmdTransaction, payload)
	if err != nil {
		return nil, err
	}
	if status == protocol.StatusBadParameters {
		return nil, protocol.NewProtocolError("transaction returned status bad parameters")
	}
	if status != protocol.StatusOK {
		return nil, protocol.NewBusStatusError(status)
	}

	if len(response) != readSize {
		return nil, protocol.NewBusError(fmt.Sprintf(
			"short read; got %d bytes, expected %d", len(response), readSize))
	}
	return response, nil
}

// checkReadSize validates a read size against the one-byte wire field.
func checkReadSize(readSize int) error {
	if readSize < 0 || readSize > 255 {
		return fmt.Errorf("read size %d out of range 0..255", readSize)
	}
	return nil
}
