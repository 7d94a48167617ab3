package types

import (
	"encoding/hex"
	"math"
	"math/big"
	"reflect"
	"strings"

	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
	"github.com/pkg/errors"
)

var (
	bigIntType    = reflect.TypeOf(&big.Int{})
	amountType    = reflect.TypeOf(&amount.Amount{})
	addressType   = reflect.TypeOf(common.Address{})
	addressesType = reflect.TypeOf([]common.Address{})
	amountsType   = reflect.TypeOf([]*amount.Amount{})
	bytesType     = reflect.TypeOf([]byte{})
)

// ContractInputsConv converts loosely typed arguments to the parameter types of the method
func ContractInputsConv(Args []interface{}, rMethod reflect.Value) ([]reflect.Value, error) {
	mt := rMethod.Type()
	if mt.NumIn() < 1 {
		return nil, errors.New("not found")
	}
	if mt.NumIn() != len(Args)+1 {
		return nil, errors.Errorf("invalid inputs count got %v want %v", len(Args), mt.NumIn()-1)
	}
	in := make([]reflect.Value, len(Args))
	for i, v := range Args {
		mType := mt.In(i + 1)
		param, err := convertInput(v, mType)
		if err != nil {
			return nil, errors.Wrapf(err, "input(%v)", i)
		}
		in[i] = param
	}
	return in, nil
}

func convertInput(v interface{}, mType reflect.Type) (reflect.Value, error) {
	if v == nil {
		switch mType.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
			return reflect.Zero(mType), nil
		}
		return reflect.Value{}, errors.Errorf("nil given want %v", mType)
	}
	param := reflect.ValueOf(v)
	if param.Type() == mType {
		return param, nil
	}
	if param.Type().AssignableTo(mType) {
		return param.Convert(mType), nil
	}

	switch pv := v.(type) {
	case *big.Int:
		return convertBig(pv, mType)
	case *amount.Amount:
		if pv == nil || pv.Int == nil {
			return convertBig(big.NewInt(0), mType)
		}
		return convertBig(pv.Int, mType)
	case string:
		return convertString(pv, mType)
	case float64:
		if pv < 0 || pv != math.Trunc(pv) || pv > (1<<53) {
			return reflect.Value{}, errors.Errorf("invalid number %v want %v", pv, mType)
		}
		return convertBig(new(big.Int).SetUint64(uint64(pv)), mType)
	case []byte:
		switch mType {
		case addressType:
			return reflect.ValueOf(common.BytesToAddress(pv)), nil
		case amountType:
			return reflect.ValueOf(amount.NewAmountFromBytes(pv)), nil
		case bigIntType:
			return reflect.ValueOf(new(big.Int).SetBytes(pv)), nil
		}
	case []interface{}:
		switch mType {
		case addressesType:
			as := make([]common.Address, 0, len(pv))
			for _, t := range pv {
				av, err := convertInput(t, addressType)
				if err != nil {
					return reflect.Value{}, err
				}
				as = append(as, av.Interface().(common.Address))
			}
			return reflect.ValueOf(as), nil
		case amountsType:
			as := make([]*amount.Amount, 0, len(pv))
			for _, t := range pv {
				av, err := convertInput(t, amountType)
				if err != nil {
					return reflect.Value{}, err
				}
				as = append(as, av.Interface().(*amount.Amount))
			}
			return reflect.ValueOf(as), nil
		}
	case []*big.Int:
		if mType == amountsType {
			as := make([]*amount.Amount, 0, len(pv))
			for _, t := range pv {
				as = append(as, amount.NewAmountFromBig(t))
			}
			return reflect.ValueOf(as), nil
		}
	case []*amount.Amount:
		if mType.Kind() == reflect.Slice && mType.Elem() == bigIntType {
			bs := make([]*big.Int, 0, len(pv))
			for _, t := range pv {
				bs = append(bs, new(big.Int).Set(t.Int))
			}
			return reflect.ValueOf(bs), nil
		}
	}

	if isInteger(param.Kind()) && isInteger(mType.Kind()) {
		if isSigned(param.Kind()) && param.Int() < 0 && !isSigned(mType.Kind()) {
			return reflect.Value{}, errors.Errorf("negative value %v want %v", v, mType)
		}
		return param.Convert(mType), nil
	}
	if isInteger(param.Kind()) && (mType == bigIntType || mType == amountType) {
		bi := new(big.Int)
		if isSigned(param.Kind()) {
			bi.SetInt64(param.Int())
		} else {
			bi.SetUint64(param.Uint())
		}
		return convertBig(bi, mType)
	}
	return reflect.Value{}, errors.Wrapf(ErrUnsupportedArgument, "get %v want %v", param.Type(), mType)
}

func convertBig(pv *big.Int, mType reflect.Type) (reflect.Value, error) {
	switch mType {
	case bigIntType:
		return reflect.ValueOf(new(big.Int).Set(pv)), nil
	case amountType:
		return reflect.ValueOf(amount.NewAmountFromBig(pv)), nil
	case addressType:
		return reflect.ValueOf(common.BigToAddress(pv)), nil
	}
	switch mType.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if pv.Sign() < 0 || pv.BitLen() > mType.Bits() {
			return reflect.Value{}, errors.Errorf("value %v overflows %v", pv, mType)
		}
		return reflect.ValueOf(pv.Uint64()).Convert(mType), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if !pv.IsInt64() || pv.BitLen() >= mType.Bits() {
			return reflect.Value{}, errors.Errorf("value %v overflows %v", pv, mType)
		}
		return reflect.ValueOf(pv.Int64()).Convert(mType), nil
	}
	return reflect.Value{}, errors.Wrapf(ErrUnsupportedArgument, "get big number want %v", mType)
}

// convertString accepts hex addresses, "true"/"false", hex bytes and base unit integers in decimal or 0x hex
func convertString(pv string, mType reflect.Type) (reflect.Value, error) {
	switch mType {
	case addressType:
		addr, err := common.ParseAddress(pv)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(addr), nil
	case bytesType:
		bs, err := hex.DecodeString(strings.TrimPrefix(pv, "0x"))
		if err != nil {
			return reflect.Value{}, errors.WithStack(err)
		}
		return reflect.ValueOf(bs), nil
	}
	switch mType.Kind() {
	case reflect.Bool:
		switch strings.ToLower(pv) {
		case "true":
			return reflect.ValueOf(true), nil
		case "false":
			return reflect.ValueOf(false), nil
		}
		return reflect.Value{}, errors.Errorf("invalid bool %v", pv)
	case reflect.String:
		return reflect.ValueOf(pv).Convert(mType), nil
	}
	var bi *big.Int
	var ok bool
	if strings.HasPrefix(pv, "0x") {
		bi, ok = new(big.Int).SetString(pv[2:], 16)
	} else {
		bi, ok = new(big.Int).SetString(pv, 10)
	}
	if !ok {
		return reflect.Value{}, errors.Errorf("invalid number %v want %v", pv, mType)
	}
	return convertBig(bi, mType)
}

func isInteger(k reflect.Kind) bool {
	return isSigned(k) || (k >= reflect.Uint && k <= reflect.Uint64)
}

func isSigned(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}
