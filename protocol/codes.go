package protocol

import "fmt"

// Command identifies a request on the wire. Codes are fixed by the adapter
// firmware and carried as the first body byte of a request frame.
type Command byte

const (
	CmdVersion      Command = 0
	CmdInit         Command = 1
	CmdGetBusType   Command = 2
	CmdWrite        Command = 3
	CmdRead         Command = 4
	CmdTransaction  Command = 5
	CmdSetPinMode   Command = 7
	CmdDigitalWrite Command = 8
	CmdDebug1       Command = 51
	CmdDebug2       Command = 52
	CmdDebug3       Command = 53
)

// String returns the human-readable command name.
func (c Command) String() string {
	switch c {
	case CmdVersion:
		return "version"
	case CmdInit:
		return "init"
	case CmdGetBusType:
		return "get bus type"
	case CmdWrite:
		return "write"
	case CmdRead:
		return "read"
	case CmdTransaction:
		return "transaction"
	case CmdSetPinMode:
		return "set pin mode"
	case CmdDigitalWrite:
		return "digital write"
	case CmdDebug1:
		return "debug1"
	case CmdDebug2:
		return "debug2"
	case CmdDebug3:
		return "debug3"
	default:
		return fmt.Sprintf("command 0x%02X", byte(c))
	}
}

// Status is the first body byte of every response frame, encoding success or
// the kind of failure the firmware observed.
type Status byte

const (
	StatusOK                 Status = 0
	StatusError              Status = 1
	StatusCommandUnavailable Status = 2
	StatusWrongCommand       Status = 3
	StatusBadParameters      Status = 4
	StatusShortWrite         Status = 5
	StatusNackOnAddress      Status = 6
	StatusNackOnData         Status = 7
	StatusDataTooLong        Status = 8
	StatusOtherError         Status = 9
)

// String returns the human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusError:
		return "error"
	case StatusCommandUnavailable:
		return "command unavailable"
	case StatusWrongCommand:
		return "wrong command"
	case StatusBadParameters:
		return "bad parameters"
	case StatusShortWrite:
		return "short write"
	case StatusNackOnAddress:
		return "nack on address"
	case StatusNackOnData:
		return "nack on data"
	case StatusDataTooLong:
		return "data too long"
	case StatusOtherError:
		return "other error"
	default:
		return fmt.Sprintf("status 0x%02X", byte(s))
	}
}
