package x16r

import (
	"errors"
	"fmt"
)

var (
	ErrInputTooShort         = errors.New("x16r: input too short for algorithm order")
	ErrUnreachableIdentifier = errors.New("x16r: algorithm identifier outside variant table")
	ErrPrimitiveFailure      = errors.New("x16r: hash primitive failed")
	ErrPrimitiveUnavailable  = errors.New("x16r: hash primitive not available")
	ErrInvalidVariant        = errors.New("x16r: invalid variant")
)

// RoundError reports a primitive failure and where in the chain it happened.
// It matches both ErrPrimitiveFailure and the primitive's own error.
type RoundError struct {
	Round int
	Algo  Algo
	Step  Step
	Err   error
}

func (e *RoundError) Error() string {
	return fmt.Sprintf("x16r: round %d (algo %s, %s): %v", e.Round, e.Algo, e.Step, e.Err)
}

func (e *RoundError) Unwrap() []error {
	return []error{ErrPrimitiveFailure, e.Err}
}
