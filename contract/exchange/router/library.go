package router

import (
	"math/big"
	"time"

	"github.com/pkg/errors"

	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/contract/exchange/trade"
	"github.com/meverselabs/useswap/core/types"

	. "github.com/meverselabs/useswap/contract/exchange/util"
)

// ensure rejects a deadline (unix seconds) earlier than the block time
func ensure(cc *types.ContractContext, deadline uint64) error {
	if deadline < cc.LastTimestamp()/uint64(time.Second) {
		return errors.Wrapf(ErrExpired, "deadline %v", deadline)
	}
	return nil
}

// fetches and sorts the reserves for a pair
func uniGetReserves(cc *types.ContractContext, factory, tokenA, tokenB common.Address) (common.Address, *big.Int, *big.Int, error) {
	token0, _, err := trade.SortTokens(tokenA, tokenB)
	if err != nil {
		return ZeroAddress, nil, nil, err
	}
	pair, err := trade.PairFor(factory, tokenA, tokenB)
	if err != nil {
		return ZeroAddress, nil, nil, err
	}
	reserve0, reserve1, err := Reserves(cc, pair)
	if err != nil {
		return ZeroAddress, nil, nil, err
	}
	if tokenA == token0 {
		return pair, reserve0, reserve1, nil
	}
	return pair, reserve1, reserve0, nil
}

// fetches the fee with the sorted reserves
func uniGetFeeAndReserves(cc *types.ContractContext, factory, tokenA, tokenB common.Address) (common.Address, uint64, *big.Int, *big.Int, error) {
	pair, reserveA, reserveB, err := uniGetReserves(cc, factory, tokenA, tokenB)
	if err != nil {
		return ZeroAddress, 0, nil, nil, err
	}
	fee, err := Fee(cc, pair)
	if err != nil {
		return ZeroAddress, 0, nil, nil, err
	}
	return pair, fee, reserveA, reserveB, nil
}

// performs chained getAmountOut calculations on any number of pairs
func getAmountsOut(cc *types.ContractContext, factory common.Address, amountIn *big.Int, path []common.Address) ([]*big.Int, error) {
	if len(path) < 2 {
		return nil, errors.WithStack(ErrInvalidPath)
	}
	if amountIn.Sign() <= 0 {
		return nil, errors.WithStack(ErrInsufficientInAmount)
	}

	amounts := make([]*big.Int, len(path))
	amounts[0] = amountIn
	for i := 0; i < len(path)-1; i++ {
		_, fee, reserveIn, reserveOut, err := uniGetFeeAndReserves(cc, factory, path[i], path[i+1])
		if err != nil {
			return nil, err
		}
		am, err := trade.UniGetAmountOut(fee, amounts[i], reserveIn, reserveOut)
		if err != nil {
			return nil, err
		}
		amounts[i+1] = am
	}
	return amounts, nil
}

// performs chained getAmountIn calculations on any number of pairs
func getAmountsIn(cc *types.ContractContext, factory common.Address, amountOut *big.Int, path []common.Address) ([]*big.Int, error) {
	if len(path) < 2 {
		return nil, errors.WithStack(ErrInvalidPath)
	}
	if amountOut.Sign() <= 0 {
		return nil, errors.WithStack(ErrInsufficientOutAmount)
	}

	amounts := make([]*big.Int, len(path))
	amounts[len(amounts)-1] = amountOut
	for i := len(path) - 1; i > 0; i-- {
		_, fee, reserveIn, reserveOut, err := uniGetFeeAndReserves(cc, factory, path[i-1], path[i])
		if err != nil {
			return nil, err
		}
		am, err := trade.UniGetAmountIn(fee, amounts[i], reserveIn, reserveOut)
		if err != nil {
			return nil, err
		}
		amounts[i-1] = am
	}
	return amounts, nil
}
