package types

import (
	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
	"github.com/meverselabs/useswap/common/hash"
	"github.com/meverselabs/useswap/common/rlog"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ExecuteTransaction validates the signed transaction and executes it on the context.
// An invalid transaction returns an error and changes nothing, a reverted call returns a failed receipt
// and only bumps the sender sequence.
func (ctx *Context) ExecuteTransaction(tx *Transaction, sig common.Signature) (*Receipt, error) {
	TxHash, err := tx.HashSig()
	if err != nil {
		return nil, err
	}
	from, err := tx.Sender(sig)
	if err != nil {
		return nil, err
	}
	return ctx.ExecuteRecovered(tx, from, TxHash)
}

// ExecuteRecovered executes the transaction of which the sender is already recovered by the caller.
// It is used for transactions signed in a foreign format like ethereum raw transactions.
func (ctx *Context) ExecuteRecovered(tx *Transaction, from common.Address, TxHash hash.Hash256) (*Receipt, error) {
	ExecLock.Lock()
	defer ExecLock.Unlock()

	if tx.ChainID == nil || tx.ChainID.Cmp(ctx.ChainID()) != 0 {
		return nil, errors.WithStack(ErrInvalidChainID)
	}
	if seq := ctx.AddrSeq(from); tx.Seq != seq {
		return nil, errors.Wrapf(ErrInvalidSequence, "got %v want %v", tx.Seq, seq)
	}
	if !ctx.IsContract(tx.To) {
		return nil, errors.Wrap(ErrNotExistContract, tx.To.String())
	}
	ctx.AddAddrSeq(from)

	result, events, err := ctx.Execute(from, tx.To, tx.Value, tx.Method, tx.Args)
	receipt := &Receipt{
		TxHash:  TxHash,
		From:    from,
		To:      tx.To,
		Method:  tx.Method,
		Success: err == nil,
		Result:  result,
		Events:  events,
	}
	if err != nil {
		receipt.Error = err.Error()
		rlog.Named("context").Debug("transaction reverted", zap.Stringer("tx", TxHash), zap.Error(err))
	}
	return receipt, nil
}

// Execute calls the contract method as the from account without a signature.
// The state changes are kept only when the call succeeds.
func (ctx *Context) Execute(from common.Address, to common.Address, Value *amount.Amount, MethodName string, Args []interface{}) ([]interface{}, []*MethodCallEvent, error) {
	intr := NewInteractor(ctx)
	root := &ContractContext{
		cont:          from,
		from:          from,
		ctx:           ctx,
		Exec:          intr.Exec,
		ExecWithValue: intr.ExecWithValue,
	}
	result, err := intr.ExecWithValue(root, to, Value, MethodName, Args)
	return result, intr.EventList(), err
}

// Call executes the method and discards every state change
func (ctx *Context) Call(from common.Address, to common.Address, MethodName string, Args []interface{}) ([]interface{}, error) {
	sn := ctx.Snapshot()
	defer ctx.Revert(sn)
	result, _, err := ctx.Execute(from, to, nil, MethodName, Args)
	return result, err
}
