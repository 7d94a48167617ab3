package app

import (
	"math/big"

	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
	"github.com/meverselabs/useswap/common/key"
	"github.com/meverselabs/useswap/core/types"
	"github.com/meverselabs/useswap/service/apiserver"
	"github.com/pkg/errors"
)

// Client sends signed transactions of a key to the chain
type Client struct {
	chain *apiserver.Chain
	key   key.Key
}

// NewClient returns a Client
func NewClient(c *apiserver.Chain, k key.Key) *Client {
	return &Client{chain: c, key: k}
}

// Address returns the account of the client
func (cl *Client) Address() common.Address {
	return cl.key.Address()
}

// Send executes the method in a new block and returns the results, a reverted transaction is an error
func (cl *Client) Send(to common.Address, value *amount.Amount, method string, args ...interface{}) ([]interface{}, error) {
	from := cl.key.Address()
	tx := &types.Transaction{
		ChainID: new(big.Int).SetUint64(cl.chain.ChainID()),
		Seq:     cl.chain.Seq(from),
		To:      to,
		Method:  method,
		Args:    args,
		Value:   value,
	}
	sig, err := tx.Sign(cl.key)
	if err != nil {
		return nil, err
	}
	receipt, err := cl.chain.SendTransaction(tx, sig)
	if err != nil {
		return nil, err
	}
	if err := receipt.Err(); err != nil {
		return nil, errors.Wrap(err, method)
	}
	return receipt.Result, nil
}

// Call reads the method as the client
func (cl *Client) Call(to common.Address, method string, args ...interface{}) ([]interface{}, error) {
	return cl.chain.Call(cl.key.Address(), to, method, args)
}

// Deadline returns a router deadline in unix seconds
func (cl *Client) Deadline() uint64 {
	return cl.chain.Timestamp()/1000000000 + DeadlineWindow
}

// ScenarioResult is the outcome of RunScenario
type ScenarioResult struct {
	AmountIn  *amount.Amount `json:"amountIn"`
	AmountOut *amount.Amount `json:"amountOut"`
	Liquidity *amount.Amount `json:"liquidity"`
	RemovedA  *amount.Amount `json:"removedA"`
	RemovedB  *amount.Amount `json:"removedB"`
	SwapCount uint64         `json:"swapCount"`
}

// RunScenario swaps 20 TokenB out for at most 1000 TokenA of the first pool through the wrapper,
// then adds and removes liquidity of the pair through it
func RunScenario(cl *Client, env *Environment, cfg *Config) (*ScenarioResult, error) {
	if len(cfg.Pools) == 0 {
		return nil, errors.WithStack(ErrNoPool)
	}
	p := cfg.Pools[0]
	a, err := env.Token(p.TokenA)
	if err != nil {
		return nil, err
	}
	b, err := env.Token(p.TokenB)
	if err != nil {
		return nil, err
	}
	me := cl.Address()
	zero := amount.NewAmount(0, 0)

	for _, t := range []common.Address{a, b} {
		if _, err := cl.Send(t, nil, "Approve", env.UseSwap, MaxUint256); err != nil {
			return nil, err
		}
	}

	res := &ScenarioResult{}
	rs, err := cl.Send(env.UseSwap, nil, "HandleSwap", env.Units(p.TokenB, 20), env.Units(p.TokenA, 1000), []common.Address{a, b}, me, cl.Deadline())
	if err != nil {
		return nil, err
	}
	amounts := rs[0].([]*amount.Amount)
	res.AmountIn, res.AmountOut = amounts[0], amounts[len(amounts)-1]

	rs, err = cl.Send(env.UseSwap, nil, "AddLiquidity", a, b, env.Units(p.TokenA, 100), env.Units(p.TokenB, 100), zero, zero, me, cl.Deadline())
	if err != nil {
		return nil, err
	}
	res.Liquidity = rs[2].(*amount.Amount)

	rs, err = cl.Call(env.Factory, "GetPair", a, b)
	if err != nil {
		return nil, err
	}
	pair := rs[0].(common.Address)
	if _, err := cl.Send(pair, nil, "Approve", env.UseSwap, MaxUint256); err != nil {
		return nil, err
	}
	rs, err = cl.Send(env.UseSwap, nil, "RemoveLiquidity", a, b, res.Liquidity, zero, zero, me, cl.Deadline(), pair)
	if err != nil {
		return nil, err
	}
	res.RemovedA, res.RemovedB = rs[0].(*amount.Amount), rs[1].(*amount.Amount)

	rs, err = cl.Call(env.UseSwap, "SwapCount")
	if err != nil {
		return nil, err
	}
	res.SwapCount = rs[0].(uint64)
	return res, nil
}
