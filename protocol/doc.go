// Package protocol implements the bridge adapter's framed wire protocol.
//
// This package handles encoding of command frames, decoding of response
// frames from a byte stream, and the typed error taxonomy that turns
// transport failures and device-reported status codes into distinguishable
// outcomes.
//
// # Frame Format
//
// Every exchange is one request frame followed by exactly one response frame:
//
//   - Request:  length(1) | command(1) | payload(length-1)
//   - Response: length(1) | status(1)  | payload(length-1)
//
// The length byte counts the command/status byte plus the payload, so a
// frame carries at most MaxPayload (254) payload bytes and a length of zero
// is never well-formed.
//
// # Decoding Semantics
//
// DecodeFrame reads from a channel whose Read returns zero bytes when the
// read window expires (the serial transport contract). Zero bytes on the
// length read means the device did not respond at all and decodes to a
// Timeout error. Once the length byte arrives the body is accumulated across
// as many partial reads as needed; starving mid-body is a ShortResponse
// error carrying the got/expected byte counts.
//
// # Error Taxonomy
//
// Failures surface as *Error values categorized by ErrorType:
//
//   - ErrTypeTimeout: the device sent nothing within the read window
//   - ErrTypeShortResponse: the response died mid-frame
//   - ErrTypeProtocol: host and device disagree on message shape/parameters
//   - ErrTypeBus: the device reported an I2C-level failure
//   - ErrTypeUnknownStatus: a device status this driver has no mapping for
//   - ErrTypeContract: an always-ok operation returned non-ok
//
// Callers match with the Is* predicates (IsTimeout, IsBusError, ...), which
// see through error wrapping. Invalid caller arguments (unknown pin modes,
// out-of-range sizes) are plain errors raised before any I/O.
//
// # Usage Example
//
//	frame, err := protocol.EncodeFrame(protocol.CmdRead, []byte{0x50, 4})
//	if err != nil {
//	    return err
//	}
//	if _, err := ch.Write(frame); err != nil {
//	    return err
//	}
//	status, payload, err := protocol.ReadResponse(ch)
//	if protocol.IsTimeout(err) {
//	    // device unreachable or still booting
//	}
//
// # Thread Safety
//
// All functions are stateless and safe for concurrent use. Serializing
// request/response pairs on a shared channel is the caller's job (the
// device package holds a mutex across each exchange).
package protocol
