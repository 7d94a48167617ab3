package util

import (
	"math/big"

	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
	"github.com/meverselabs/useswap/core/types"
)

// token.BalanceOf(from)
func TokenBalanceOf(cc *types.ContractContext, token, from common.Address) (*big.Int, error) {
	is, err := cc.Exec(cc, token, "BalanceOf", []interface{}{from})
	if err != nil {
		return nil, err
	}
	return is[0].(*amount.Amount).Int, nil
}

// token.Transfer(to,Amount)
func SafeTransfer(cc *types.ContractContext, token, to common.Address, am *big.Int) error {
	_, err := cc.Exec(cc, token, "Transfer", []interface{}{to, ToAmount(am)})
	return err
}

// token.TransferFrom(from, to, Amount)
func SafeTransferFrom(cc *types.ContractContext, token, from, to common.Address, am *big.Int) error {
	_, err := cc.Exec(cc, token, "TransferFrom", []interface{}{from, to, ToAmount(am)})
	return err
}

// token.Approve(to,Amount)
func TokenApprove(cc *types.ContractContext, token, to common.Address, am *big.Int) error {
	_, err := cc.Exec(cc, token, "Approve", []interface{}{to, ToAmount(am)})
	return err
}

// wrapped.Deposit{value: am}()
func TokenDeposit(cc *types.ContractContext, token common.Address, am *big.Int) error {
	_, err := cc.ExecWithValue(cc, token, ToAmount(am), "Deposit", []interface{}{})
	return err
}

// SafeTransferNative sends the native coin held by the running contract
func SafeTransferNative(cc *types.ContractContext, to common.Address, am *big.Int) error {
	if !IsPlus(am) {
		return nil
	}
	return cc.TransferNative(to, ToAmount(am))
}
