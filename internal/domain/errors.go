package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for tape and engine error handling.
// A malformed header aborts the run; record-level errors are wrapped
// in a RecordError and the run continues with the next record.
var (
	ErrMalformedHeader = errors.New("malformed_header")
	ErrInvalidQuantity = errors.New("invalid_quantity")
	ErrUnknownSide     = errors.New("unknown_side")
	ErrInvalidPrice    = errors.New("invalid_price")
)

// RecordError reports a malformed order record on the tape, carrying
// the line number and raw text for diagnostics.
type RecordError struct {
	Line int
	Text string
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
