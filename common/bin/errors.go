package bin

import "errors"

// errors
var (
	ErrInvalidLength = errors.New("invalid length")
	ErrTooLongLength = errors.New("too long length")
)
