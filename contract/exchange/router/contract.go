package router

import (
	"bytes"
	"math/big"

	"github.com/pkg/errors"

	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
	"github.com/meverselabs/useswap/contract/exchange/trade"
	"github.com/meverselabs/useswap/core/types"

	. "github.com/meverselabs/useswap/contract/exchange/util"
)

type RouterContract struct {
	addr   common.Address
	master common.Address
}

func (cont *RouterContract) Address() common.Address {
	return cont.addr
}
func (cont *RouterContract) Master() common.Address {
	return cont.master
}
func (cont *RouterContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}
func (cont *RouterContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &RouterContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	if data.Factory == ZeroAddress {
		return errors.WithStack(ErrZeroFactory)
	}
	cc.SetContractData([]byte{tagFactory}, data.Factory[:])
	cc.SetContractData([]byte{tagWNative}, data.WNative[:])
	return nil
}

// Payable reports the methods which accept the native coin
func (cont *RouterContract) Payable(MethodName string) bool {
	switch MethodName {
	case "SwapExactETHForTokens", "AddLiquidityETH":
		return true
	}
	return false
}

func (cont *RouterContract) factory(cc *types.ContractContext) common.Address {
	bs := cc.ContractData([]byte{tagFactory})
	return common.BytesToAddress(bs)
}
func (cont *RouterContract) wNative(cc *types.ContractContext) common.Address {
	bs := cc.ContractData([]byte{tagWNative})
	return common.BytesToAddress(bs)
}

//////////////////////////////////////////////////
// Liquidity
//////////////////////////////////////////////////

// _addLiquidity creates the pair when it is missing and returns the amounts matching the current price
func (cont *RouterContract) _addLiquidity(
	cc *types.ContractContext,
	tokenA, tokenB common.Address,
	amountADesired, amountBDesired, amountAMin, amountBMin *big.Int) (common.Address, *big.Int, *big.Int, error) {

	if amountADesired.Sign() <= 0 {
		return ZeroAddress, nil, nil, errors.WithStack(ErrInsufficientAAmount)
	}
	if amountBDesired.Sign() <= 0 {
		return ZeroAddress, nil, nil, errors.WithStack(ErrInsufficientBAmount)
	}

	factory := cont.factory(cc)
	pair, err := GetPair(cc, factory, tokenA, tokenB)
	if err != nil {
		return ZeroAddress, nil, nil, err
	}
	if pair == ZeroAddress {
		if _, err := cc.Exec(cc, factory, "CreatePair", []interface{}{tokenA, tokenB}); err != nil {
			return ZeroAddress, nil, nil, err
		}
	}
	pair, reserveA, reserveB, err := uniGetReserves(cc, factory, tokenA, tokenB)
	if err != nil {
		return ZeroAddress, nil, nil, err
	}

	if reserveA.Sign() == 0 && reserveB.Sign() == 0 {
		return pair, amountADesired, amountBDesired, nil
	}
	amountBOptimal, err := trade.UniQuote(amountADesired, reserveA, reserveB)
	if err != nil {
		return ZeroAddress, nil, nil, err
	}
	if amountBOptimal.Cmp(amountBDesired) <= 0 {
		if amountBOptimal.Cmp(amountBMin) < 0 {
			return ZeroAddress, nil, nil, errors.WithStack(ErrInsufficientBAmount)
		}
		return pair, amountADesired, amountBOptimal, nil
	}
	amountAOptimal, err := trade.UniQuote(amountBDesired, reserveB, reserveA)
	if err != nil {
		return ZeroAddress, nil, nil, err
	}
	if amountAOptimal.Cmp(amountADesired) > 0 {
		return ZeroAddress, nil, nil, errors.WithStack(ErrInsufficientAAmount)
	}
	if amountAOptimal.Cmp(amountAMin) < 0 {
		return ZeroAddress, nil, nil, errors.WithStack(ErrInsufficientAAmount)
	}
	return pair, amountAOptimal, amountBDesired, nil
}

func (cont *RouterContract) mint(cc *types.ContractContext, pair, to common.Address) (*big.Int, error) {
	is, err := cc.Exec(cc, pair, "Mint", []interface{}{to})
	if err != nil {
		return nil, err
	}
	return is[0].(*amount.Amount).Int, nil
}

func (cont *RouterContract) addLiquidity(
	cc *types.ContractContext,
	tokenA, tokenB common.Address,
	amountADesired, amountBDesired, amountAMin, amountBMin *big.Int,
	to common.Address, deadline uint64) (*big.Int, *big.Int, *big.Int, error) {

	if err := ensure(cc, deadline); err != nil {
		return nil, nil, nil, err
	}
	pair, amountA, amountB, err := cont._addLiquidity(cc, tokenA, tokenB, amountADesired, amountBDesired, amountAMin, amountBMin)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := SafeTransferFrom(cc, tokenA, cc.From(), pair, amountA); err != nil {
		return nil, nil, nil, err
	}
	if err := SafeTransferFrom(cc, tokenB, cc.From(), pair, amountB); err != nil {
		return nil, nil, nil, err
	}
	liquidity, err := cont.mint(cc, pair, to)
	if err != nil {
		return nil, nil, nil, err
	}
	return amountA, amountB, liquidity, nil
}

// addLiquidityETH wraps the attached value and sends back whatever the pool did not take
func (cont *RouterContract) addLiquidityETH(
	cc *types.ContractContext,
	token common.Address,
	amountTokenDesired, amountTokenMin, amountETHMin *big.Int,
	to common.Address, deadline uint64) (*big.Int, *big.Int, *big.Int, error) {

	if err := ensure(cc, deadline); err != nil {
		return nil, nil, nil, err
	}
	wNative := cont.wNative(cc)
	value := cc.Value().Int
	pair, amountToken, amountETH, err := cont._addLiquidity(cc, token, wNative, amountTokenDesired, value, amountTokenMin, amountETHMin)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := SafeTransferFrom(cc, token, cc.From(), pair, amountToken); err != nil {
		return nil, nil, nil, err
	}
	if err := TokenDeposit(cc, wNative, amountETH); err != nil {
		return nil, nil, nil, err
	}
	if err := SafeTransfer(cc, wNative, pair, amountETH); err != nil {
		return nil, nil, nil, err
	}
	liquidity, err := cont.mint(cc, pair, to)
	if err != nil {
		return nil, nil, nil, err
	}
	if value.Cmp(amountETH) > 0 {
		if err := SafeTransferNative(cc, cc.From(), Sub(value, amountETH)); err != nil {
			return nil, nil, nil, err
		}
	}
	return amountToken, amountETH, liquidity, nil
}

// removeLiquidity burns the caller's liquidity and sends both tokens to `to`
func (cont *RouterContract) removeLiquidity(
	cc *types.ContractContext,
	tokenA, tokenB common.Address,
	liquidity, amountAMin, amountBMin *big.Int,
	to common.Address, deadline uint64) (*big.Int, *big.Int, error) {

	if err := ensure(cc, deadline); err != nil {
		return nil, nil, err
	}
	if liquidity.Sign() <= 0 {
		return nil, nil, errors.WithStack(ErrInsufficientLiquidity)
	}
	token0, _, err := trade.SortTokens(tokenA, tokenB)
	if err != nil {
		return nil, nil, err
	}
	pair, err := trade.PairFor(cont.factory(cc), tokenA, tokenB)
	if err != nil {
		return nil, nil, err
	}

	// cc.From() -> pair
	if err := SafeTransferFrom(cc, pair, cc.From(), pair, liquidity); err != nil {
		return nil, nil, err
	}
	is, err := cc.Exec(cc, pair, "Burn", []interface{}{to})
	if err != nil {
		return nil, nil, err
	}
	amount0 := is[0].(*amount.Amount).Int
	amount1 := is[1].(*amount.Amount).Int

	amountA, amountB := amount1, amount0
	if tokenA == token0 {
		amountA, amountB = amount0, amount1
	}
	if amountA.Cmp(amountAMin) < 0 {
		return nil, nil, errors.WithStack(ErrInsufficientAAmount)
	}
	if amountB.Cmp(amountBMin) < 0 {
		return nil, nil, errors.WithStack(ErrInsufficientBAmount)
	}
	return amountA, amountB, nil
}

//////////////////////////////////////////////////
// Swap
//////////////////////////////////////////////////

// requires the initial amount to have already been sent to the first pair
func (cont *RouterContract) _swap(cc *types.ContractContext, amounts []*big.Int, path []common.Address, _to common.Address) error {
	factory := cont.factory(cc)
	for i := 0; i < len(path)-1; i++ {
		input, output := path[i], path[i+1]
		to := _to
		if i < len(path)-2 {
			next, err := trade.PairFor(factory, output, path[i+2])
			if err != nil {
				return err
			}
			to = next
		}
		pair, err := trade.PairFor(factory, input, output)
		if err != nil {
			return err
		}
		token0, _, err := trade.SortTokens(input, output)
		if err != nil {
			return err
		}
		amountOut := amounts[i+1]
		amount0Out, amount1Out := amountOut, big.NewInt(0)
		if input == token0 {
			amount0Out, amount1Out = big.NewInt(0), amountOut
		}
		if _, err := cc.Exec(cc, pair, "Swap", []interface{}{amount0Out, amount1Out, to}); err != nil {
			return err
		}
	}
	return nil
}

func (cont *RouterContract) swapExactTokensForTokens(
	cc *types.ContractContext,
	amountIn, amountOutMin *big.Int,
	path []common.Address,
	to common.Address, deadline uint64) ([]*big.Int, error) {

	if err := ensure(cc, deadline); err != nil {
		return nil, err
	}
	factory := cont.factory(cc)
	amounts, err := getAmountsOut(cc, factory, amountIn, path)
	if err != nil {
		return nil, err
	}
	if amounts[len(amounts)-1].Cmp(amountOutMin) < 0 {
		return nil, errors.WithStack(ErrInsufficientOutputAmount)
	}
	pair, err := trade.PairFor(factory, path[0], path[1])
	if err != nil {
		return nil, err
	}
	if err := SafeTransferFrom(cc, path[0], cc.From(), pair, amounts[0]); err != nil {
		return nil, err
	}
	if err := cont._swap(cc, amounts, path, to); err != nil {
		return nil, err
	}
	return amounts, nil
}

func (cont *RouterContract) swapTokensForExactTokens(
	cc *types.ContractContext,
	amountOut, amountInMax *big.Int,
	path []common.Address,
	to common.Address, deadline uint64) ([]*big.Int, error) {

	if err := ensure(cc, deadline); err != nil {
		return nil, err
	}
	factory := cont.factory(cc)
	amounts, err := getAmountsIn(cc, factory, amountOut, path)
	if err != nil {
		return nil, err
	}
	if amounts[0].Cmp(amountInMax) > 0 {
		return nil, errors.Wrapf(ErrExcessiveInputAmount, "needs %v, max %v", amounts[0].String(), amountInMax.String())
	}
	pair, err := trade.PairFor(factory, path[0], path[1])
	if err != nil {
		return nil, err
	}
	if err := SafeTransferFrom(cc, path[0], cc.From(), pair, amounts[0]); err != nil {
		return nil, err
	}
	if err := cont._swap(cc, amounts, path, to); err != nil {
		return nil, err
	}
	return amounts, nil
}

// swapExactETHForTokens swaps the whole attached value, path[0] must be the wrapped native token
func (cont *RouterContract) swapExactETHForTokens(
	cc *types.ContractContext,
	amountOutMin *big.Int,
	path []common.Address,
	to common.Address, deadline uint64) ([]*big.Int, error) {

	if err := ensure(cc, deadline); err != nil {
		return nil, err
	}
	wNative := cont.wNative(cc)
	if len(path) < 2 || path[0] != wNative {
		return nil, errors.WithStack(ErrInvalidPath)
	}
	factory := cont.factory(cc)
	amounts, err := getAmountsOut(cc, factory, cc.Value().Int, path)
	if err != nil {
		return nil, err
	}
	if amounts[len(amounts)-1].Cmp(amountOutMin) < 0 {
		return nil, errors.WithStack(ErrInsufficientOutputAmount)
	}
	pair, err := trade.PairFor(factory, path[0], path[1])
	if err != nil {
		return nil, err
	}
	if err := TokenDeposit(cc, wNative, amounts[0]); err != nil {
		return nil, err
	}
	if err := SafeTransfer(cc, wNative, pair, amounts[0]); err != nil {
		return nil, err
	}
	if err := cont._swap(cc, amounts, path, to); err != nil {
		return nil, err
	}
	return amounts, nil
}
