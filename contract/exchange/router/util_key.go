package router

import (
	"github.com/pkg/errors"
)

var (
	tagFactory = byte(0x01)
	tagWNative = byte(0x02)
)

// router errors
var (
	ErrExpired                  = errors.New("Router: EXPIRED")
	ErrInvalidPath              = errors.New("Router: INVALID_PATH")
	ErrExcessiveInputAmount     = errors.New("Router: EXCESSIVE_INPUT_AMOUNT")
	ErrInsufficientOutputAmount = errors.New("Router: INSUFFICIENT_OUTPUT_AMOUNT")
	ErrInsufficientAAmount      = errors.New("Router: INSUFFICIENT_A_AMOUNT")
	ErrInsufficientBAmount      = errors.New("Router: INSUFFICIENT_B_AMOUNT")
	ErrInsufficientInAmount     = errors.New("Router: INSUFFICIENT_IN_AMOUNT")
	ErrInsufficientOutAmount    = errors.New("Router: INSUFFICIENT_OUT_AMOUNT")
	ErrInsufficientLiquidity    = errors.New("Router: INSUFFICIENT_LIQUIDITY")
	ErrZeroFactory              = errors.New("Router: ZERO_FACTORY")
)
