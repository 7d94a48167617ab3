package apiserver

import (
	"encoding/hex"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
	"github.com/meverselabs/useswap/common/hash"
	"github.com/meverselabs/useswap/core/types"
	"github.com/meverselabs/useswap/extern/txparser"
	"github.com/pkg/errors"
)

// registerEthSub serves the subset of the ethereum json rpc that wallets need to call the contracts
func (s *APIServer) registerEthSub(c *Chain) error {
	sub, err := s.JRPC("eth")
	if err != nil {
		return err
	}
	sub.Set("chainId", func(ID interface{}, arg *Argument) (interface{}, error) {
		return hexutil.EncodeUint64(c.ChainID()), nil
	})
	sub.Set("blockNumber", func(ID interface{}, arg *Argument) (interface{}, error) {
		return hexutil.EncodeUint64(uint64(c.Height())), nil
	})
	sub.Set("getBalance", func(ID interface{}, arg *Argument) (interface{}, error) {
		addr, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		return hexutil.EncodeBig(c.Balance(addr).Int), nil
	})
	sub.Set("getTransactionCount", func(ID interface{}, arg *Argument) (interface{}, error) {
		addr, err := arg.Address(0)
		if err != nil {
			return nil, err
		}
		return hexutil.EncodeUint64(c.Seq(addr)), nil
	})
	sub.Set("sendRawTransaction", func(ID interface{}, arg *Argument) (interface{}, error) {
		raw, err := arg.Bytes(0)
		if err != nil {
			return nil, err
		}
		etx, _, err := txparser.EthTxFromRLP(raw)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidArgument, err.Error())
		}
		if etx.To() == nil {
			return nil, errors.Wrap(ErrInvalidArgument, "contract creation is not supported")
		}
		from, err := txparser.EthTxSender(etx)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidArgument, err.Error())
		}
		m, args, err := txparser.Inputs(etx.Data())
		if err != nil {
			return nil, errors.Wrap(ErrInvalidArgument, err.Error())
		}
		tx := &types.Transaction{
			ChainID: etx.ChainId(),
			Seq:     etx.Nonce(),
			To:      *etx.To(),
			Method:  m.Name,
			Args:    args,
			Value:   amount.NewAmountFromBig(etx.Value()),
		}
		if _, err := c.SendRecovered(tx, from, etx.Hash()); err != nil {
			return nil, err
		}
		return etx.Hash().Hex(), nil
	})
	sub.Set("getTransactionReceipt", func(ID interface{}, arg *Argument) (interface{}, error) {
		h, err := arg.String(0)
		if err != nil {
			return nil, err
		}
		receipt, err := c.Receipt(hash.HexToHash(h))
		if err != nil {
			if errors.Cause(err) == ErrNotFoundReceipt {
				return nil, nil
			}
			return nil, err
		}
		status := "0x0"
		if receipt.Success {
			status = "0x1"
		}
		return map[string]interface{}{
			"transactionHash": receipt.TxHash.Hex(),
			"from":            receipt.From.Hex(),
			"to":              receipt.To.Hex(),
			"status":          status,
		}, nil
	})
	sub.Set("call", func(ID interface{}, arg *Argument) (interface{}, error) {
		m, err := arg.Map(0)
		if err != nil {
			return nil, err
		}
		callArg := NewArgument([]interface{}{m["to"], m["data"], m["from"]})
		to, err := callArg.Address(0)
		if err != nil {
			return nil, err
		}
		data, err := callArg.Bytes(1)
		if err != nil {
			return nil, err
		}
		from := common.ZeroAddr
		if m["from"] != nil {
			if from, err = callArg.Address(2); err != nil {
				return nil, err
			}
		}
		method, args, err := txparser.Inputs(data)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidArgument, err.Error())
		}
		rs, err := c.Call(from, to, method.Name, args)
		if err != nil {
			return nil, &revertError{reason: err.Error()}
		}
		bs, err := txparser.Outputs(hex.EncodeToString(method.ID), rs)
		if err != nil {
			return nil, err
		}
		return hexutil.Encode(bs), nil
	})
	return nil
}
