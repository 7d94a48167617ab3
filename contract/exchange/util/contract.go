package util

import (
	"math/big"

	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
	"github.com/meverselabs/useswap/core/types"
)

// pair.Reserves() in the token0, token1 order
func Reserves(cc *types.ContractContext, pair common.Address) (*big.Int, *big.Int, error) {
	is, err := cc.Exec(cc, pair, "Reserves", []interface{}{})
	if err != nil {
		return nil, nil, err
	}
	rs := is[0].([]*amount.Amount)
	return rs[0].Int, rs[1].Int, nil
}

func Fee(cc *types.ContractContext, pair common.Address) (uint64, error) {
	is, err := cc.Exec(cc, pair, "Fee", []interface{}{})
	if err != nil {
		return 0, err
	}
	return is[0].(uint64), nil
}

// factory.GetPair(tokenA, tokenB)
func GetPair(cc *types.ContractContext, factory, tokenA, tokenB common.Address) (common.Address, error) {
	is, err := cc.Exec(cc, factory, "GetPair", []interface{}{tokenA, tokenB})
	if err != nil {
		return ZeroAddress, err
	}
	return is[0].(common.Address), nil
}
