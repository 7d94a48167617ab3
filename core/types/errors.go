package types

import "errors"

// context errors
var (
	ErrNotExistContract    = errors.New("not exist contract")
	ErrExistContractType   = errors.New("exist contract type")
	ErrInvalidClassID      = errors.New("invalid class id")
	ErrExistAddress        = errors.New("exist address")
	ErrInvalidSequence     = errors.New("invalid sequence")
	ErrInvalidChainID      = errors.New("invalid chain id")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidValue        = errors.New("invalid value")
	ErrNotPayable          = errors.New("method is not payable")
	ErrMethodNotGiven      = errors.New("method not given")
	ErrMethodNotExist      = errors.New("method not exist")
	ErrCallDepthExceeded   = errors.New("call depth exceeded")
	ErrUnsupportedArgument = errors.New("unsupported argument")
	ErrDirtyContext        = errors.New("context has uncommitted snapshots")
	ErrForeignContext      = errors.New("context is not derived from the store")
)
