package token

import "github.com/pkg/errors"

// token errors
var (
	ErrTransferFromZeroAddress = errors.New("Token: TRANSFER_FROM_ZEROADDRESS")
	ErrTransferToZeroAddress   = errors.New("Token: TRANSFER_TO_ZEROADDRESS")
	ErrExceedBalance           = errors.New("Token: TRANSFER_EXCEED_BALANCE")
	ErrExceedAllowance         = errors.New("Token: TRANSFER_EXCEED_ALLOWANCE")
	ErrApproveFromZeroAddress  = errors.New("Token: APPROVE_FROM_ZEROADDRESS")
	ErrApproveToZeroAddress    = errors.New("Token: APPROVE_TO_ZEROADDRESS")
	ErrNegativeAmount          = errors.New("Token: NEGATIVE_AMOUNT")
	ErrNotMaster               = errors.New("Token: NOT_MASTER")
	ErrNotMinter               = errors.New("Token: NOT_MINTER")
	ErrPaused                  = errors.New("Token: PAUSED")
	ErrNotWrapped              = errors.New("Token: NOT_WRAPPED")
	ErrInvalidDecimals         = errors.New("Token: INVALID_DECIMALS")
)
