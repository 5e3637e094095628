package device

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/muurk/busbridge/protocol"
)

// Version returns the firmware version string. The payload is NUL-padded
// ASCII; trailing NULs are stripped.
func (c *Client) Version() (string, error) {
	status, payload, err := c.Call(protocol.CmdVersion, nil)
	if err != nil {
		return "", err
	}
	if status != protocol.StatusOK {
		return "", protocol.NewContractViolation("version", status)
	}

	text := bytes.TrimRight(payload, "\x00")
	for _, b := range text {
		if b > 0x7F {
			return "", protocol.NewProtocolError(
				fmt.Sprintf("version string contains non-ASCII byte 0x%02X", b))
		}
	}
	return string(text), nil
}

// BusType returns the raw bus-type descriptor. Its layout is
// firmware-defined and not reinterpreted here.
func (c *Client) BusType() ([]byte, error) {
	return c.rawQuery("bus type", protocol.CmdGetBusType)
}

// Debug1 returns the firmware's diagnostic counters: four little-endian
// signed 16-bit integers whose meanings are firmware-internal.
func (c *Client) Debug1() ([4]int16, error) {
	var counters [4]int16

	status, payload, err := c.Call(protocol.CmdDebug1, nil)
	if err != nil {
		return counters, err
	}
	if status != protocol.StatusOK {
		return counters, protocol.NewContractViolation("debug1", status)
	}
	if len(payload) != 8 {
		return counters, protocol.NewProtocolError(
			fmt.Sprintf("debug1 payload is %d bytes, expected 8", len(payload)))
	}

	for i := range counters {
		counters[i] = int16(binary.LittleEndian.Uint16(payload[i*2:]))
	}
	return counters, nil
}

// Debug2 returns the second firmware-defined diagnostic dump, raw.
func (c *Client) Debug2() ([]byte, error) {
	return c.rawQuery("debug2", protocol.CmdDebug2)
}

// Debug3 returns the third firmware-defined diagnostic dump, raw.
func (c *Client) Debug3() ([]byte, error) {
	return c.rawQuery("debug3", protocol.CmdDebug3)
}

// SetPinMode configures a GPIO pin. The mode is validated against the
// closed set before anything reaches the wire.
func (c *Client) SetPinMode(pin uint8, mode protocol.PinMode) error {
	if !mode.Valid() {
		return fmt.Errorf("wrong pin mode %q", mode.String())
	}

	status, _, err := c.Call(protocol.CmdSetPinMode, []byte{pin, byte(mode)})
	if err != nil {
		return err
	}
	if status != protocol.StatusOK {
		return protocol.NewContractViolation("set pin mode", status)
	}
	return nil
}

// DigitalWrite drives a GPIO pin to the given state. The state is
// validated against the closed set before anything reaches the wire.
func (c *Client) DigitalWrite(pin uint8, state protocol.PinState) error {
	if !state.Valid() {
		return fmt.Errorf("wrong pin status %q", state.String())
	}

	status, _, err := c.Call(protocol.CmdDigitalWrite, []byte{pin, byte(state)})
	if err != nil {
		return err
	}
	if status != protocol.StatusOK {
		return protocol.NewContractViolation("digital write", status)
	}
	return nil
}

// DigitalWriteLevel drives a pin from a boolean logic level: true is high,
// false is low.
func (c *Client) DigitalWriteLevel(pin uint8, high bool) error {
	return c.DigitalWrite(pin, protocol.PinStateForLevel(high))
}

// rawQuery runs a no-payload command whose only defined outcome is ok,
// returning the raw response payload.
func (c *Client) rawQuery(op string, cmd protocol.Command) ([]byte, error) {
	status, payload, err := c.Call(cmd, nil)
	if err != nil {
		return nil, err
	}
	if status != protocol.StatusOK {
		return nil, protocol.NewContractViolation(op, status)
	}
	return payload, nil
}
