// Package i2c implements the I2C master protocol on top of the device
// dispatcher.
//
// A Master is created with NewMaster, which sends the init command putting
// the adapter into I2C master mode at the fixed 400 kHz bus clock. The
// master then exposes the three bus primitives:
//
//   - Write: send bytes to a peripheral
//   - Read: read a known number of bytes from a peripheral
//   - Transaction: a write followed by a read in one device-level
//     exchange, without releasing the bus in between
//
// # Error Interpretation
//
// Each operation interprets the response status itself, because the rules
// differ per operation:
//
//   - bad-parameters, or a response payload where none is defined, means
//     host and firmware disagree on the message shape: a protocol error
//     (protocol.IsProtocolError), pointing at a software defect.
//   - Any other non-ok status is a bus error (protocol.IsBusError)
//     carrying the firmware-reported reason, e.g. "nack on address".
//   - An ok read that delivers fewer bytes than requested is a bus error
//     ("short read"): the device claimed success but under-delivered.
//
// Invalid arguments (read size out of range, empty transaction payload)
// fail before anything reaches the wire. Nothing is retried internally;
// retrying a bus write can have real-world side effects, so retry policy
// belongs to the caller.
//
// # Usage Example
//
//	dev := device.NewClient(session)
//	bus, err := i2c.NewMaster(dev)
//	if err != nil {
//	    return err
//	}
//
//	// Write register address 0x00, then read 4 bytes, in one exchange.
//	data, err := bus.Transaction(0x50, []byte{0x00}, 4)
package i2c
