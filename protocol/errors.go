package protocol

import (
	"errors"
	"fmt"
)

// ErrorType categorizes a protocol-layer failure. Recovery strategy differs
// per type: a Timeout may clear on its own, a bus error reflects a real I2C
// condition, and a protocol or contract error points at a host/firmware
// mismatch that retrying will not fix.
type ErrorType int

const (
	// ErrTypeTimeout indicates the device sent nothing within the read window.
	ErrTypeTimeout ErrorType = iota
	// ErrTypeShortResponse indicates the response died mid-frame: fewer body
	// bytes arrived than the length byte declared.
	ErrTypeShortResponse
	// ErrTypeProtocol indicates host and device disagree on message shape or
	// parameters.
	ErrTypeProtocol
	// ErrTypeBus indicates the device explicitly reported an I2C-level failure.
	ErrTypeBus
	// ErrTypeUnknownStatus indicates a device status code this driver has no
	// mapping for.
	ErrTypeUnknownStatus
	// ErrTypeContract indicates an operation the firmware defines as
	// unconditionally successful returned a non-ok status.
	ErrTypeContract
)

// String returns a human-readable name for the error type.
func (t ErrorType) String() string {
	switch t {
	case ErrTypeTimeout:
		return "timeout"
	case ErrTypeShortResponse:
		return "short response"
	case ErrTypeProtocol:
		return "protocol error"
	case ErrTypeBus:
		return "bus error"
	case ErrTypeUnknownStatus:
		return "unknown status"
	case ErrTypeContract:
		return "contract violation"
	default:
		return fmt.Sprintf("ErrorType(%d)", int(t))
	}
}

// Error is a typed protocol-layer failure. Message text is rendered once at
// construction; the Type plus the Is* predicates are the machine-readable
// side.
type Error struct {
	Type    ErrorType
	Message string

	// Status is the device-reported status code, set for bus, unknown-status
	// and contract errors.
	Status Status

	// Received and Expected are the body byte counts for short responses.
	Received int
	Expected int
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// NewTimeout creates a timeout error: the device yielded zero bytes for the
// length read.
func NewTimeout() *Error {
	return &Error{
		Type:    ErrTypeTimeout,
		Message: "timeout: no response within the read window",
	}
}

// NewShortResponse creates a short-response error with the body byte counts
// observed before the channel starved.
func NewShortResponse(received, expected int) *Error {
	return &Error{
		Type:     ErrTypeShortResponse,
		Message:  fmt.Sprintf("short response; got %d bytes, expected %d", received, expected),
		Received: received,
		Expected: expected,
	}
}

// NewProtocolError creates a protocol error with the given message.
func NewProtocolError(message string) *Error {
	return &Error{
		Type:    ErrTypeProtocol,
		Message: message,
	}
}

// NewBusError creates a bus error with a host-supplied reason, used when the
// device claimed success but under-delivered ("short read").
func NewBusError(reason string) *Error {
	return &Error{
		Type:    ErrTypeBus,
		Message: reason,
	}
}

// NewBusStatusError creates a bus error from a device-reported status code.
// Codes outside the known table surface as a distinct unknown-status error
// rather than being silently stringified.
func NewBusStatusError(st Status) *Error {
	if reason, ok := busReason(st); ok {
		return &Error{
			Type:    ErrTypeBus,
			Status:  st,
			Message: reason,
		}
	}
	return &Error{
		Type:    ErrTypeUnknownStatus,
		Status:  st,
		Message: fmt.Sprintf("unknown status code 0x%02X", byte(st)),
	}
}

// NewContractViolation creates a contract error: op is the operation name,
// st the status the firmware returned where only ok is defined.
func NewContractViolation(op string, st Status) *Error {
	return &Error{
		Type:    ErrTypeContract,
		Status:  st,
		Message: fmt.Sprintf("%s: unexpected device status: %s", op, st),
	}
}

// busReason is the single mapping from device-reported status codes to bus
// failure reasons. Codes not listed here have no bus-level meaning.
func busReason(st Status) (string, bool) {
	switch st {
	case StatusShortWrite:
		return "short write", true
	case StatusNackOnAddress:
		return "nack on address", true
	case StatusNackOnData:
		return "nack on data", true
	case StatusDataTooLong:
		return "data too long for transmit buffer", true
	case StatusOtherError:
		return "other error", true
	default:
		return "", false
	}
}

// IsTimeout reports whether err is a timeout error.
func IsTimeout(err error) bool {
	return hasType(err, ErrTypeTimeout)
}

// IsShortResponse reports whether err is a short-response error.
func IsShortResponse(err error) bool {
	return hasType(err, ErrTypeShortResponse)
}

// IsProtocolError reports whether err is a protocol error.
func IsProtocolError(err error) bool {
	return hasType(err, ErrTypeProtocol)
}

// IsBusError reports whether the device rejected the operation, including
// rejections with a status code this driver has no mapping for.
func IsBusError(err error) bool {
	return hasType(err, ErrTypeBus) || hasType(err, ErrTypeUnknownStatus)
}

// IsUnknownStatus reports whether err carries a status code outside the
// known table.
func IsUnknownStatus(err error) bool {
	return hasType(err, ErrTypeUnknownStatus)
}

// IsContractViolation reports whether an always-ok operation returned
// non-ok.
func IsContractViolation(err error) bool {
	return hasType(err, ErrTypeContract)
}

func hasType(err error, t ErrorType) bool {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Type == t
	}
	return false
}
