package router

import (
	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
	"github.com/meverselabs/useswap/contract/exchange/trade"
	"github.com/meverselabs/useswap/core/types"

	. "github.com/meverselabs/useswap/contract/exchange/util"
)

func (cont *RouterContract) Front() interface{} {
	return &RouterFront{
		cont: cont,
	}
}

type RouterFront struct {
	cont *RouterContract
}

func (f *RouterFront) Factory(cc *types.ContractContext) common.Address {
	return f.cont.factory(cc)
}
func (f *RouterFront) WNative(cc *types.ContractContext) common.Address {
	return f.cont.wNative(cc)
}
func (f *RouterFront) GetAmountsOut(cc *types.ContractContext, amountIn *amount.Amount, path []common.Address) ([]*amount.Amount, error) {
	amounts, err := getAmountsOut(cc, f.cont.factory(cc), amountIn.Int, path)
	if err != nil {
		return nil, err
	}
	return ToAmounts(amounts), nil
}
func (f *RouterFront) GetAmountsIn(cc *types.ContractContext, amountOut *amount.Amount, path []common.Address) ([]*amount.Amount, error) {
	amounts, err := getAmountsIn(cc, f.cont.factory(cc), amountOut.Int, path)
	if err != nil {
		return nil, err
	}
	return ToAmounts(amounts), nil
}
func (f *RouterFront) Quote(cc *types.ContractContext, amountA, reserveA, reserveB *amount.Amount) (*amount.Amount, error) {
	am, err := trade.UniQuote(amountA.Int, reserveA.Int, reserveB.Int)
	if err != nil {
		return nil, err
	}
	return ToAmount(am), nil
}

func (f *RouterFront) AddLiquidity(
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
func (f *RouterFront) AddLiquidityETH(
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
func (f *RouterFront) RemoveLiquidity(
	cc *types.ContractContext,
	tokenA, tokenB common.Address,
	liquidity, amountAMin, amountBMin *amount.Amount,
	to common.Address, deadline uint64) (*amount.Amount, *amount.Amount, error) {

	amountA, amountB, err := f.cont.removeLiquidity(cc, tokenA, tokenB, liquidity.Int, amountAMin.Int, amountBMin.Int, to, deadline)
	if err != nil {
		return nil, nil, err
	}
	return ToAmount(amountA), ToAmount(amountB), nil
}
func (f *RouterFront) SwapExactTokensForTokens(
	cc *types.ContractContext,
	amountIn, amountOutMin *amount.Amount,
	path []common.Address,
	to common.Address, deadline uint64) ([]*amount.Amount, error) {

	amounts, err := f.cont.swapExactTokensForTokens(cc, amountIn.Int, amountOutMin.Int, path, to, deadline)
	if err != nil {
		return nil, err
	}
	return ToAmounts(amounts), nil
}
func (f *RouterFront) SwapTokensForExactTokens(
	cc *types.ContractContext,
	amountOut, amountInMax *amount.Amount,
	path []common.Address,
	to common.Address, deadline uint64) ([]*amount.Amount, error) {

	amounts, err := f.cont.swapTokensForExactTokens(cc, amountOut.Int, amountInMax.Int, path, to, deadline)
	if err != nil {
		return nil, err
	}
	return ToAmounts(amounts), nil
}
func (f *RouterFront) SwapExactETHForTokens(
	cc *types.ContractContext,
	amountOutMin *amount.Amount,
	path []common.Address,
	to common.Address, deadline uint64) ([]*amount.Amount, error) {

	amounts, err := f.cont.swapExactETHForTokens(cc, amountOutMin.Int, path, to, deadline)
	if err != nil {
		return nil, err
	}
	return ToAmounts(amounts), nil
}
