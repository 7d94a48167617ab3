package types

import (
	"math/big"

	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
)

// ContractContext is an context for the contract
type ContractContext struct {
	cont          common.Address
	from          common.Address
	value         *amount.Amount
	ctx           *Context
	Exec          ExecFunc
	ExecWithValue ExecWithValueFunc
}

// ChainID returns the id of the chain
func (cc *ContractContext) ChainID() *big.Int {
	return cc.ctx.ChainID()
}

// TargetHeight returns the recorded target height when ContractContext generation
func (cc *ContractContext) TargetHeight() uint32 {
	return cc.ctx.TargetHeight()
}

// LastTimestamp returns the recorded timestamp in nanoseconds
func (cc *ContractContext) LastTimestamp() uint64 {
	return cc.ctx.LastTimestamp()
}

// From returns the caller address
func (cc *ContractContext) From() common.Address {
	return cc.from
}

// Address returns the address of the running contract
func (cc *ContractContext) Address() common.Address {
	return cc.cont
}

// Value returns the native value attached to the current call
func (cc *ContractContext) Value() *amount.Amount {
	if cc.value == nil {
		return amount.NewAmount(0, 0)
	}
	return cc.value.Clone()
}

// ContractData returns the contract data from the top snapshot
func (cc *ContractContext) ContractData(name []byte) []byte {
	return cc.ctx.Data(cc.cont, common.Address{}, name)
}

// SetContractData inserts the contract data to the top snapshot
func (cc *ContractContext) SetContractData(name []byte, value []byte) {
	cc.ctx.SetData(cc.cont, common.Address{}, name, value)
}

// AccountData returns the account data from the top snapshot
func (cc *ContractContext) AccountData(addr common.Address, name []byte) []byte {
	return cc.ctx.Data(cc.cont, addr, name)
}

// SetAccountData inserts the account data to the top snapshot
func (cc *ContractContext) SetAccountData(addr common.Address, name []byte, value []byte) {
	cc.ctx.SetData(cc.cont, addr, name, value)
}

// IsContract returns is the contract
func (cc *ContractContext) IsContract(addr common.Address) bool {
	return cc.ctx.IsContract(addr)
}

// Balance returns the native balance of the address
func (cc *ContractContext) Balance(addr common.Address) *amount.Amount {
	return cc.ctx.Balance(addr)
}

// TransferNative sends native value held by the running contract
func (cc *ContractContext) TransferNative(to common.Address, am *amount.Amount) error {
	return cc.ctx.transferNative(cc.cont, to, am)
}

// DeployContractWithAddress deploy contract to the chain with address
func (cc *ContractContext) DeployContractWithAddress(owner common.Address, ClassID uint64, addr common.Address, Args []byte) (Contract, error) {
	return cc.ctx.DeployContractWithAddress(owner, ClassID, addr, Args)
}
