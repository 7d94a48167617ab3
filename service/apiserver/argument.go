package apiserver

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
	"github.com/pkg/errors"
)

// Argument parses rpc arguments
type Argument struct {
	args []interface{}
}

// NewArgument returns a Argument
func NewArgument(args []interface{}) *Argument {
	arg := &Argument{
		args: make([]interface{}, 0, len(args)),
	}
	for _, v := range args {
		arg.args = append(arg.args, normalize(v))
	}
	return arg
}

// normalize turns json.Number into strings so the runtime can read big integers without float rounding
func normalize(v interface{}) interface{} {
	switch tv := v.(type) {
	case json.Number:
		return tv.String()
	case []interface{}:
		out := make([]interface{}, 0, len(tv))
		for _, e := range tv {
			out = append(out, normalize(e))
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(tv))
		for k, e := range tv {
			out[k] = normalize(e)
		}
		return out
	}
	return v
}

// Len returns length of arguments
func (arg *Argument) Len() int {
	return len(arg.args)
}

func (arg *Argument) at(index int) (interface{}, error) {
	if index < 0 || index >= len(arg.args) {
		return nil, errors.WithStack(ErrInvalidArgumentIndex)
	}
	a := arg.args[index]
	if a == nil {
		return nil, errors.WithStack(ErrInvalidArgumentType)
	}
	return a, nil
}

// Uint64 returns a uint64 value of the index, a 0x prefix reads it as hex
func (arg *Argument) Uint64(index int) (uint64, error) {
	a, err := arg.at(index)
	if err != nil {
		return 0, err
	}
	s := fmt.Sprintf("%v", a)
	if strings.HasPrefix(s, "0x") {
		n, err := hexutil.DecodeUint64(s)
		if err != nil {
			return 0, errors.WithStack(err)
		}
		return n, nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	return n, nil
}

// String returns a string value of the index
func (arg *Argument) String(index int) (string, error) {
	a, err := arg.at(index)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%v", a), nil
}

// Address returns a hex address value of the index
func (arg *Argument) Address(index int) (common.Address, error) {
	s, err := arg.String(index)
	if err != nil {
		return common.ZeroAddr, err
	}
	return common.ParseAddress(s)
}

// Amount returns a base unit amount of the index written in decimal or 0x hex
func (arg *Argument) Amount(index int) (*amount.Amount, error) {
	s, err := arg.String(index)
	if err != nil {
		return nil, err
	}
	var bi *big.Int
	var ok bool
	if strings.HasPrefix(s, "0x") {
		bi, ok = new(big.Int).SetString(s[2:], 16)
	} else {
		bi, ok = new(big.Int).SetString(s, 10)
	}
	if !ok || bi.Sign() < 0 {
		return nil, errors.Wrap(ErrInvalidArgumentType, s)
	}
	return amount.NewAmountFromBig(bi), nil
}

// Bytes returns a hex encoded bytes value of the index
func (arg *Argument) Bytes(index int) ([]byte, error) {
	s, err := arg.String(index)
	if err != nil {
		return nil, err
	}
	bs, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return bs, nil
}

// Array returns a slice value of the index
func (arg *Argument) Array(index int) ([]interface{}, error) {
	a, err := arg.at(index)
	if err != nil {
		return nil, err
	}
	if reflect.TypeOf(a).Kind() != reflect.Slice {
		return nil, errors.WithStack(ErrInvalidArgumentType)
	}
	s := reflect.ValueOf(a)
	r := make([]interface{}, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		r = append(r, s.Index(i).Interface())
	}
	return r, nil
}

// Map returns an object value of the index
func (arg *Argument) Map(index int) (map[string]interface{}, error) {
	a, err := arg.at(index)
	if err != nil {
		return nil, err
	}
	m, ok := a.(map[string]interface{})
	if !ok {
		return nil, errors.WithStack(ErrInvalidArgumentType)
	}
	return m, nil
}

// Rest returns the arguments from the index as a slice
func (arg *Argument) Rest(index int) []interface{} {
	if index >= len(arg.args) {
		return []interface{}{}
	}
	return arg.args[index:]
}
