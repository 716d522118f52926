package zbus

import "fmt"

// Sentinel errors for the parameterless error kinds. Parameterized kinds
// below wrap one of these so callers can still classify with errors.Is.
var (
	// ErrEof is returned when the byte slice is exhausted mid-read.
	ErrEof = fmt.Errorf("zbus: unexpected end of input")
	// ErrUnknownFd is returned when a file-descriptor index has no matching
	// entry in the FD table, or no FD table was supplied at all.
	ErrUnknownFd = fmt.Errorf("zbus: unknown file descriptor index")
	// ErrIncorrectType is the catch-all for conversion-boundary mismatches
	// that don't carry enough context for a structured InvalidType.
	ErrIncorrectType = fmt.Errorf("zbus: incorrect type")
	// ErrInvalidSignature is returned for malformed (unbalanced, or a dict
	// entry appearing outside of "a{...}") signature strings.
	ErrInvalidSignature = fmt.Errorf("zbus: invalid signature")
	// ErrTrailingBytes is returned by Decoder.Finish when bytes remain
	// unconsumed after the top-level value. See Design Notes: the source
	// this package is derived from silently ignores trailing input; Finish
	// lets callers opt into strictness instead.
	ErrTrailingBytes = fmt.Errorf("zbus: trailing bytes after decoded value")
	// ErrDepthExceeded guards against unbounded variant-in-variant nesting.
	ErrDepthExceeded = fmt.Errorf("zbus: container nesting exceeds depth limit")
)

// MessageError is a generic, driver-originated error: the catch-all kind
// visitor callbacks use to reject a value they can't accept for reasons the
// decoder has no structured representation for.
type MessageError struct {
	Text string
}

func (e *MessageError) Error() string { return e.Text }

// Utf8Error reports invalid UTF-8 in a string-family (s/o) payload.
type Utf8Error struct {
	Text string
}

func (e *Utf8Error) Error() string {
	return fmt.Sprintf("zbus: invalid utf-8: %s", e.Text)
}

func (e *Utf8Error) Unwrap() error { return errUtf8 }

var errUtf8 = fmt.Errorf("zbus: invalid utf-8")

// PaddingNot0Error reports a non-zero padding byte encountered while in a
// dialect that requires padding to be zero (D-Bus).
type PaddingNot0Error struct {
	Byte   byte
	Offset int
}

func (e *PaddingNot0Error) Error() string {
	return fmt.Sprintf("zbus: non-zero padding byte 0x%02x at offset %d", e.Byte, e.Offset)
}

func (e *PaddingNot0Error) Unwrap() error { return errPaddingNot0 }

var errPaddingNot0 = fmt.Errorf("zbus: padding byte is not zero")

// InvalidValueError reports a value that decoded structurally fine but
// violates a type-level constraint, e.g. a bool whose backing u32 isn't 0 or 1.
type InvalidValueError struct {
	Text string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("zbus: invalid value: %s", e.Text)
}

func (e *InvalidValueError) Unwrap() error { return errInvalidValue }

var errInvalidValue = fmt.Errorf("zbus: invalid value")

// InvalidTypeError reports a signature type code that is structurally valid
// but incompatible with what the driver asked to decode into.
type InvalidTypeError struct {
	Found    byte
	Expected string
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("zbus: invalid type %q, expected %s", string(e.Found), e.Expected)
}

func (e *InvalidTypeError) Unwrap() error { return ErrIncorrectType }

// InvalidLengthError reports an array whose declared byte length disagreed
// with the bytes its elements actually consumed, or a length that would run
// past the end of the buffer.
type InvalidLengthError struct {
	Declared int
	Text     string
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("zbus: invalid length %d: %s", e.Declared, e.Text)
}

func (e *InvalidLengthError) Unwrap() error { return errInvalidLength }

var errInvalidLength = fmt.Errorf("zbus: invalid length")

// UnknownFdError reports a file-descriptor index with no corresponding
// entry in the table supplied to the Decoder.
type UnknownFdError struct {
	Index uint32
}

func (e *UnknownFdError) Error() string {
	return fmt.Sprintf("zbus: unknown file descriptor index %d", e.Index)
}

func (e *UnknownFdError) Unwrap() error { return ErrUnknownFd }
