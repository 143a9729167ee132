// Package status defines the error-kind vocabulary shared by the codec,
// socket, and chunk packages. Every function in the core returns the most
// specific Code it can rather than a generic failure.
package status

import (
	"errors"
	"fmt"
)

// Code identifies the class of failure a core operation returned.
type Code int

const (
	// OK indicates success.
	OK Code = iota
	// InvalidParameters means the caller violated a precondition: a nil
	// pointer, a non-zero destination passed to a read, a length out of
	// range.
	InvalidParameters
	// InvalidState means the operation is well-formed but the current
	// cumulative state disallows it, e.g. a nesting cap was reached.
	InvalidState
	// OutOfMemory means an allocation was refused; the partially built
	// value is always cleared before return.
	OutOfMemory
	// EncodingError means the wire bytes do not form a valid message: a
	// bad tag, a bad length, a matrix dimension-product mismatch.
	EncodingError
	// WouldBlock means non-blocking I/O could not complete; retry later.
	WouldBlock
	// Closed means the peer closed the connection cleanly.
	Closed
	// NotOK is a generic, otherwise-unclassified failure.
	NotOK
)

func (c Code) String() string {
	switch c {
	case OK:
		return "ok"
	case InvalidParameters:
		return "invalid-parameters"
	case InvalidState:
		return "invalid-state"
	case OutOfMemory:
		return "out-of-memory"
	case EncodingError:
		return "encoding-error"
	case WouldBlock:
		return "would-block"
	case Closed:
		return "closed"
	case NotOK:
		return "not-ok"
	default:
		return fmt.Sprintf("status.Code(%d)", int(c))
	}
}

// Error wraps a Code with a human-readable message. The zero value is not a
// valid error; use New.
type Error struct {
	Code Code
	Msg  string
}

func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Code.String()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Is lets errors.Is(err, status.New(code, "")) match any *Error carrying
// the same Code, whatever its message; callers should prefer the Is
// function below for clarity.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Of extracts the Code carried by err, or NotOK if err is not a *Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	var se *Error
	if errors.As(err, &se) {
		return se.Code
	}
	return NotOK
}

// Is reports whether err carries the given Code.
func Is(err error, code Code) bool {
	return Of(err) == code
}

// ToTCP implements the OPC UA TCP standard error mapping table:
// encoding-layer overflows and misuses map deterministically to OPC UA TCP
// status codes. Every Code not covered here maps to BadTcpInternalError;
// no value is passed through unchanged.
func ToTCP(code Code) uint32 {
	switch code {
	case OutOfMemory:
		return BadTcpMessageTooLarge
	case EncodingError:
		return BadTcpMessageTypeInvalid
	case InvalidState:
		return BadTcpNotEnoughResources
	default:
		return BadTcpInternalError
	}
}

// A slice of the OPC UA Binary TCP error-code namespace, just enough of it
// for the OPC UA TCP error mapping table. These are the standard numeric values
// defined by IEC 62541-6.
const (
	BadTcpMessageTooLarge    uint32 = 0x80740000
	BadTcpMessageTypeInvalid uint32 = 0x80720000
	BadTcpNotEnoughResources uint32 = 0x80770000
	BadTcpInternalError      uint32 = 0x80780000
)
