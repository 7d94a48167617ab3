package useswap

import (
	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
	"github.com/meverselabs/useswap/core/types"

	. "github.com/meverselabs/useswap/contract/exchange/util"
)

func (cont *UseSwapContract) Front() interface{} {
	return &UseSwapFront{
		cont: cont,
	}
}

type UseSwapFront struct {
	cont *UseSwapContract
}

func (f *UseSwapFront) UniswapRouter(cc *types.ContractContext) common.Address {
	return f.cont.uniswapRouter(cc)
}
func (f *UseSwapFront) SwapCount(cc *types.ContractContext) uint64 {
	return f.cont.swapCount(cc)
}

func (f *UseSwapFront) HandleSwap(
	cc *types.ContractContext,
	amountOut, amountInMax *amount.Amount,
	path []common.Address,
	to common.Address, deadline uint64) ([]*amount.Amount, error) {

	amounts, err := f.cont.handleSwap(cc, amountOut.Int, amountInMax.Int, path, to, deadline)
	if err != nil {
		return nil, err
	}
	return ToAmounts(amounts), nil
}
func (f *UseSwapFront) HandleETHSwapForTokens(
	cc *types.ContractContext,
	amountOutMin *amount.Amount,
	path []common.Address,
	to common.Address, deadline uint64) ([]*amount.Amount, error) {

	amounts, err := f.cont.handleETHSwapForTokens(cc, amountOutMin.Int, path, to, deadline)
	if err != nil {
		return nil, err
	}
	return ToAmounts(amounts), nil
}

func (f *UseSwapFront) AddLiquidity(
	cc *types.ContractContext,
	tokenA, tokenB common.Address,
	amountADesired, amountBDesired, amountAMin, amountBMin *amount.Amount,
	to common.Address, deadline uint64) (*amount.Amount, *amount.Amount, *amount.Amount, error) {

	amountA, amountB, liquidity, err := f.cont.addLiquidity(cc, tokenA, tokenB, amountADesired.Int, amountBDesired.Int, amountAMin.Int, amountBMin.Int, to, deadline)
	if err != nil {
		return nil, nil, nil, err
	}
	return ToAmount(amountA), ToAmount(amountB), ToAmount(liquidity), nil
}
func (f *UseSwapFront) AddLiquidityETH(
	cc *types.ContractContext,
	token common.Address,
	amountTokenDesired, amountTokenMin, amountETHMin *amount.Amount,
	to common.Address, deadline uint64) (*amount.Amount, *amount.Amount, *amount.Amount, error) {

	amountToken, amountETH, liquidity, err := f.cont.addLiquidityETH(cc, token, amountTokenDesired.Int, amountTokenMin.Int, amountETHMin.Int, to, deadline)
	if err != nil {
		return nil, nil, nil, err
	}
	return ToAmount(amountToken), ToAmount(amountETH), ToAmount(liquidity), nil
}
func (f *UseSwapFront) RemoveLiquidity(
	cc *types.ContractContext,
	tokenA, tokenB common.Address,
	liquidity, amountAMin, amountBMin *amount.Amount,
	to common.Address, deadline uint64,
	pair common.Address) (*amount.Amount, *amount.Amount, error) {

	amountA, amountB, err := f.cont.removeLiquidity(cc, tokenA, tokenB, liquidity.Int, amountAMin.Int, amountBMin.Int, to, deadline, pair)
	if err != nil {
		return nil, nil, err
	}
	return ToAmount(amountA), ToAmount(amountB), nil
}
