package reaclib

import (
	"errors"
	"fmt"
)

var (
	ErrRead                 = errors.New("read failed")
	ErrLineTooShort         = errors.New("line too short")
	ErrUnexpectedEOF        = errors.New("unexpected end of input")
	ErrInvalidChapter       = errors.New("invalid chapter")
	ErrUnexpectedIdentifier = errors.New("unexpected identifier")
	ErrUnknownNuclide       = errors.New("unknown nuclide")
	ErrUnknownResonance     = errors.New("unknown resonance flag")
	ErrInvalidNumber        = errors.New("invalid number")
	ErrCoefficientCount     = errors.New("coefficient count mismatch")
	ErrUnknownFormat        = errors.New("unknown format")
)

// DecodeError ties a failure to the 1-based physical line it occurred on.
// The wrapped error is one of the package sentinels, possibly annotated
// with field detail, so callers can discriminate with errors.Is.
type DecodeError struct {
	Line int
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("reaclib: line %d: %v", e.Line, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func errAt(line int, err error) *DecodeError {
	return &DecodeError{Line: line, Err: err}
}
