package types

import (
	"github.com/meverselabs/useswap/common"
)

// Contract defines chain Contract functions
type Contract interface {
	Address() common.Address
	Master() common.Address
	Init(addr common.Address, master common.Address)
	OnCreate(cc *ContractContext, Args []byte) error
	Front() interface{}
}

// PayableContract is implemented by contracts that accept native value on some methods
type PayableContract interface {
	Payable(MethodName string) bool
}
