package types

import (
	"math/big"
	"reflect"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
	"github.com/meverselabs/useswap/common/hash"
	"github.com/meverselabs/useswap/common/key"
	"github.com/pkg/errors"
)

// Transaction is a signed request of an account to call a contract method
type Transaction struct {
	ChainID *big.Int       `json:"chainId"`
	Seq     uint64         `json:"seq"`
	To      common.Address `json:"to"`
	Method  string         `json:"method"`
	Args    []interface{}  `json:"args"`
	Value   *amount.Amount `json:"value,omitempty"`
}

type rlpTransaction struct {
	ChainID *big.Int
	Seq     uint64
	To      common.Address
	Method  string
	Value   *big.Int
	Args    []interface{}
}

// HashSig returns the hash that the sender signs
func (tx *Transaction) HashSig() (hash.Hash256, error) {
	args, err := rlpArgs(tx.Args)
	if err != nil {
		return hash.Hash256{}, err
	}
	chainID := tx.ChainID
	if chainID == nil {
		chainID = big.NewInt(0)
	}
	value := big.NewInt(0)
	if tx.Value != nil && tx.Value.Int != nil {
		value = tx.Value.Int
	}
	bs, err := rlp.EncodeToBytes(&rlpTransaction{
		ChainID: chainID,
		Seq:     tx.Seq,
		To:      tx.To,
		Method:  tx.Method,
		Value:   value,
		Args:    args,
	})
	if err != nil {
		return hash.Hash256{}, errors.WithStack(err)
	}
	return hash.Hash(bs), nil
}

// Sign returns the signature of the transaction by the key
func (tx *Transaction) Sign(k key.Key) (common.Signature, error) {
	h, err := tx.HashSig()
	if err != nil {
		return nil, err
	}
	return k.Sign(h)
}

// Sender recovers the signer of the transaction
func (tx *Transaction) Sender(sig common.Signature) (common.Address, error) {
	h, err := tx.HashSig()
	if err != nil {
		return common.ZeroAddr, err
	}
	return key.RecoverAddress(h, sig)
}

func rlpArgs(args []interface{}) ([]interface{}, error) {
	out := make([]interface{}, 0, len(args))
	for _, v := range args {
		rv, err := rlpArg(v)
		if err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, nil
}

func rlpArg(v interface{}) (interface{}, error) {
	switch pv := v.(type) {
	case nil:
		return []byte{}, nil
	case *amount.Amount:
		if pv == nil || pv.Int == nil {
			return big.NewInt(0), nil
		}
		if pv.IsMinus() {
			return nil, errors.Wrap(ErrUnsupportedArgument, "negative amount")
		}
		return pv.Int, nil
	case []*amount.Amount:
		bs := make([]*big.Int, 0, len(pv))
		for _, am := range pv {
			b, err := rlpArg(am)
			if err != nil {
				return nil, err
			}
			bs = append(bs, b.(*big.Int))
		}
		return bs, nil
	case []interface{}:
		return rlpArgs(pv)
	case *big.Int:
		if pv.Sign() < 0 {
			return nil, errors.Wrap(ErrUnsupportedArgument, "negative number")
		}
		return pv, nil
	case bool, string, []byte, common.Address, []common.Address, hash.Hash256:
		return pv, nil
	}
	rv := reflect.ValueOf(v)
	switch {
	case isSigned(rv.Kind()):
		if rv.Int() < 0 {
			return nil, errors.Wrap(ErrUnsupportedArgument, "negative number")
		}
		return uint64(rv.Int()), nil
	case isInteger(rv.Kind()):
		return rv.Uint(), nil
	}
	return nil, errors.Wrapf(ErrUnsupportedArgument, "%T", v)
}
