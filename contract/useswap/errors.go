package useswap

import "github.com/pkg/errors"

var (
	ErrInvalidPath   = errors.New("UseSwap: INVALID_PATH")
	ErrZeroValue     = errors.New("UseSwap: ZERO_VALUE")
	ErrReentrantCall = errors.New("UseSwap: REENTRANT_CALL")
	ErrZeroRouter    = errors.New("UseSwap: ZERO_ROUTER")
)
