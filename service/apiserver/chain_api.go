package apiserver

import (
	"math/big"

	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
	"github.com/meverselabs/useswap/common/hash"
	"github.com/meverselabs/useswap/core/types"
	"github.com/pkg/errors"
)

// baseUnits writes amounts as integers of the smallest unit
func baseUnits(am *amount.Amount) string {
	if am == nil || am.Int == nil {
		return "0"
	}
	return am.Int.String()
}

func jsonResults(rs []interface{}) []interface{} {
	out := make([]interface{}, 0, len(rs))
	for _, v := range rs {
		switch tv := v.(type) {
		case *amount.Amount:
			out = append(out, baseUnits(tv))
		case []*amount.Amount:
			ss := make([]string, 0, len(tv))
			for _, am := range tv {
				ss = append(ss, baseUnits(am))
			}
			out = append(out, ss)
		default:
			out = append(out, v)
		}
	}
	return out
}

type receiptResult struct {
	TxHash  hash.Hash256   `json:"txHash"`
	From    common.Address `json:"from"`
	To      common.Address `json:"to"`
	Method  string         `json:"method"`
	Success bool           `json:"success"`
	Error   string         `json:"error,omitempty"`
	Result  []interface{}  `json:"result"`
}

func toReceiptResult(r *types.Receipt) *receiptResult {
	return &receiptResult{
		TxHash:  r.TxHash,
		From:    r.From,
		To:      r.To,
		Method:  r.Method,
		Success: r.Success,
		Error:   r.Error,
		Result:  jsonResults(r.Result),
	}
}

// parseTransaction reads {chainId, seq, to, method, args, value}.
// The args are signed as given so numbers and addresses are sent as strings.
func parseTransaction(m map[string]interface{}) (*types.Transaction, error) {
	arg := NewArgument([]interface{}{m["chainId"], m["seq"], m["to"], m["method"], m["value"]})
	chainID, err := arg.Uint64(0)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidArgument, "chainId")
	}
	seq, err := arg.Uint64(1)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidArgument, "seq")
	}
	to, err := arg.Address(2)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidArgument, "to")
	}
	method, err := arg.String(3)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidArgument, "method")
	}
	tx := &types.Transaction{
		ChainID: new(big.Int).SetUint64(chainID),
		Seq:     seq,
		To:      to,
		Method:  method,
		Args:    []interface{}{},
	}
	if m["value"] != nil {
		if tx.Value, err = arg.Amount(4); err != nil {
			return nil, errors.Wrap(ErrInvalidArgument, "value")
		}
	}
	if m["args"] != nil {
		args, ok := normalize(m["args"]).([]interface{})
		if !ok {
			return nil, errors.Wrap(ErrInvalidArgument, "args")
		}
		tx.Args = args
	}
	return tx, nil
}

// RegisterChain adds the chain, useswap and token methods of the chain
func (s *APIServer) RegisterChain(c *Chain) error {
	if err := s.registerChainSub(c); err != nil {
		return err
	}
	if err := s.registerUseSwapSub(c); err != nil {
		return err
	}
	if err := s.registerTokenSub(c); err != nil {
		return err
	}
	return s.registerEthSub(c)
}

func (s *APIServer) registerChainSub(c *Chain) error {
	sub, err := s.JRPC("chain")
	if err != nil {
		return err
	}
	sub.Set("chainID", func(ID interface{}, arg *Argument) (interface{}, error) {
		return c.ChainID(), nil
	})
	sub.Set("height", func(ID interface{}, arg *Argument) (interface{}, error) {
		return c.Height(), nil
	})
	sub.Set("timestamp", func(ID interface{}, arg *Argument) (interface{}, error) {
		return c.Timestamp(), nil
	})
	sub.Set("balance", func(ID interface{}, arg *Argument) (interface{}, error) {
		addr, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		return baseUnits(c.Balance(addr)), nil
	})
	sub.Set("seq", func(ID interface{}, arg *Argument) (interface{}, error) {
		addr, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		return c.Seq(addr), nil
	})
	sub.Set("sendTransaction", func(ID interface{}, arg *Argument) (interface{}, error) {
		m, err := arg.Map(0)
		if err != nil {
			return nil, err
		}
		tx, err := parseTransaction(m)
		if err != nil {
			return nil, err
		}
		sigStr, err := arg.String(1)
		if err != nil {
			return nil, err
		}
		sig, err := common.ParseSignature(sigStr)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidArgument, err.Error())
		}
		receipt, err := c.SendTransaction(tx, sig)
		if err != nil {
			return nil, err
		}
		return toReceiptResult(receipt), nil
	})
	sub.Set("receipt", func(ID interface{}, arg *Argument) (interface{}, error) {
		h, err := arg.String(0)
		if err != nil {
			return nil, err
		}
		receipt, err := c.Receipt(hash.HexToHash(h))
		if err != nil {
			return nil, err
		}
		return toReceiptResult(receipt), nil
	})
	sub.Set("call", func(ID interface{}, arg *Argument) (interface{}, error) {
		to, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		method, err := arg.String(1)
		if err != nil {
			return nil, err
		}
		rs, err := c.Call(common.ZeroAddr, to, method, arg.Rest(2))
		if err != nil {
			return nil, &revertError{reason: err.Error()}
		}
		return jsonResults(rs), nil
	})
	return nil
}

func (s *APIServer) registerUseSwapSub(c *Chain) error {
	sub, err := s.JRPC("useswap")
	if err != nil {
		return err
	}
	view := func(method string) Handler {
		return func(ID interface{}, arg *Argument) (interface{}, error) {
			cont, err := arg.Address(0)
			if err != nil {
				return nil, err
			}
			rs, err := c.Call(common.ZeroAddr, cont, method, nil)
			if err != nil {
				return nil, &revertError{reason: err.Error()}
			}
			return rs[0], nil
		}
	}
	sub.Set("swapCount", view("SwapCount"))
	sub.Set("uniswapRouter", view("UniswapRouter"))
	return nil
}

func (s *APIServer) registerTokenSub(c *Chain) error {
	sub, err := s.JRPC("token")
	if err != nil {
		return err
	}
	call := func(method string, addrs int) Handler {
		return func(ID interface{}, arg *Argument) (interface{}, error) {
			token, err := arg.Address(0)
			if err != nil {
				return nil, err
			}
			args := make([]interface{}, 0, addrs)
			for i := 1; i <= addrs; i++ {
				addr, err := arg.Address(i)
				if err != nil {
					return nil, err
				}
				args = append(args, addr)
			}
			rs, err := c.Call(common.ZeroAddr, token, method, args)
			if err != nil {
				return nil, &revertError{reason: err.Error()}
			}
			return jsonResults(rs)[0], nil
		}
	}
	sub.Set("name", call("Name", 0))
	sub.Set("symbol", call("Symbol", 0))
	sub.Set("decimals", call("Decimals", 0))
	sub.Set("totalSupply", call("TotalSupply", 0))
	sub.Set("balanceOf", call("BalanceOf", 1))
	sub.Set("allowance", call("Allowance", 2))
	return nil
}
