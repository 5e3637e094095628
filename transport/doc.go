// Package transport owns the serial byte channel the bridge adapter is
// reached over.
//
// The adapter enumerates as a USB CDC-ACM serial port. Open configures it
// with the parameters the firmware expects and returns a Session, the
// single-owner duplex channel every protocol exchange runs over.
//
// # Open Sequence
//
// The open sequence is fixed by the adapter's boot behavior and must run in
// this order:
//
//  1. Open the port at 115200 baud, 8N1
//  2. Apply the 10 second read timeout
//  3. Deassert DTR and RTS (boards wiring them to reset would otherwise
//     see a reset pulse)
//  4. Wait the 600 ms settle delay before any traffic, so the
//     microcontroller finishes booting
//
// These are design constants, not tunables; see BaudRate, ReadTimeout and
// SettleDelay.
//
// # Read Contract
//
// Session.Read follows the serial port semantics the protocol decoder
// relies on: it returns up to len(p) bytes, and returns (0, nil) when the
// read timeout expires with nothing received. The decoder turns that
// zero-byte read into a Timeout or ShortResponse error depending on where
// in the frame it happens.
//
// # Lifecycle
//
// A Session is created by Open and destroyed by Close. Every method on a
// closed Session, including a second Close, fails with ErrClosed: using a
// session after close is a usage error, never a silent no-op.
//
// # Usage Example
//
//	session, err := transport.Open("/dev/ttyACM0")
//	if err != nil {
//	    return err
//	}
//	defer session.Close()
//
//	dev := device.NewClient(session)
package transport
