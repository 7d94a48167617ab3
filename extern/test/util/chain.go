package util

import (
	"fmt"

	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
	"github.com/meverselabs/useswap/common/key"
	"github.com/meverselabs/useswap/core/types"
)

// SendTxWithValue signs the call with the key and executes it ten seconds after the last one
func (tc *TestContext) SendTxWithValue(mkey key.Key, to common.Address, value *amount.Amount, method string, params ...interface{}) (*types.Receipt, error) {
	tx := &types.Transaction{
		ChainID: ChainID,
		Seq:     tc.Ctx.AddrSeq(mkey.Address()),
		To:      to,
		Method:  method,
		Args:    params,
		Value:   value,
	}
	sig, err := tx.Sign(mkey)
	if err != nil {
		return nil, err
	}
	tc.Sleep(10)
	return tc.Ctx.ExecuteTransaction(tx, sig)
}

// SendTx returns the call results or the reverted error
func (tc *TestContext) SendTx(mkey key.Key, to common.Address, method string, params ...interface{}) ([]interface{}, error) {
	return tc.SendValue(mkey, to, nil, method, params...)
}

func (tc *TestContext) SendValue(mkey key.Key, to common.Address, value *amount.Amount, method string, params ...interface{}) ([]interface{}, error) {
	receipt, err := tc.SendTxWithValue(mkey, to, value, method, params...)
	if err != nil {
		return nil, err
	}
	if err := receipt.Err(); err != nil {
		return nil, err
	}
	return receipt.Result, nil
}

func (tc *TestContext) MustSendTx(mkey key.Key, to common.Address, method string, params ...interface{}) []interface{} {
	res, err := tc.SendTx(mkey, to, method, params...)
	if err != nil {
		fmt.Printf("%+v\n", err)
		panic(err)
	}
	return res
}

// ReadTx runs the call as the key holder and discards the state changes
func (tc *TestContext) ReadTx(mkey key.Key, to common.Address, method string, params ...interface{}) ([]interface{}, error) {
	return tc.Ctx.Call(mkey.Address(), to, method, params)
}

// Call runs the view as the zero address
func (tc *TestContext) Call(to common.Address, method string, params ...interface{}) ([]interface{}, error) {
	return tc.Ctx.Call(common.ZeroAddr, to, method, params)
}

func (tc *TestContext) MustCall(to common.Address, method string, params ...interface{}) []interface{} {
	res, err := tc.Call(to, method, params...)
	if err != nil {
		panic(err)
	}
	return res
}
