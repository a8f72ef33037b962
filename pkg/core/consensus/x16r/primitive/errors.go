package primitive

import "errors"

var (
	ErrUnknownID = errors.New("unknown primitive id")
	ErrNilFunc   = errors.New("nil primitive func")
)
