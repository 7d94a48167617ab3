package useswap

import (
	"bytes"
	"math/big"

	"github.com/pkg/errors"

	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
	"github.com/meverselabs/useswap/common/bin"
	"github.com/meverselabs/useswap/core/types"

	. "github.com/meverselabs/useswap/contract/exchange/util"
)

// UseSwapContract trades and provides liquidity on behalf of its caller through the router
type UseSwapContract struct {
	addr   common.Address
	master common.Address
}

func (cont *UseSwapContract) Address() common.Address {
	return cont.addr
}
func (cont *UseSwapContract) Master() common.Address {
	return cont.master
}
func (cont *UseSwapContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}
func (cont *UseSwapContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &UseSwapContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	if data.Router == ZeroAddress {
		return errors.WithStack(ErrZeroRouter)
	}
	cc.SetContractData([]byte{tagRouter}, data.Router[:])
	return nil
}

// Payable reports the methods which accept the native coin
func (cont *UseSwapContract) Payable(MethodName string) bool {
	switch MethodName {
	case "HandleETHSwapForTokens", "AddLiquidityETH":
		return true
	}
	return false
}

//////////////////////////////////////////////////
// State
//////////////////////////////////////////////////

func (cont *UseSwapContract) uniswapRouter(cc *types.ContractContext) common.Address {
	return common.BytesToAddress(cc.ContractData([]byte{tagRouter}))
}

func (cont *UseSwapContract) swapCount(cc *types.ContractContext) uint64 {
	bs := cc.ContractData([]byte{tagSwapCount})
	if len(bs) == 0 {
		return 0
	}
	return bin.Uint64(bs)
}

// increaseSwapCount must be the last write of an operation
func (cont *UseSwapContract) increaseSwapCount(cc *types.ContractContext) {
	cc.SetContractData([]byte{tagSwapCount}, bin.Uint64Bytes(cont.swapCount(cc)+1))
}

func (cont *UseSwapContract) enter(cc *types.ContractContext) error {
	if len(cc.ContractData([]byte{tagEntered})) > 0 {
		return errors.WithStack(ErrReentrantCall)
	}
	cc.SetContractData([]byte{tagEntered}, []byte{1})
	return nil
}

func (cont *UseSwapContract) exit(cc *types.ContractContext) {
	cc.SetContractData([]byte{tagEntered}, nil)
}

//////////////////////////////////////////////////
// Custody
//////////////////////////////////////////////////

// pull takes am of the token from the caller and lets the router spend exactly that amount
func (cont *UseSwapContract) pull(cc *types.ContractContext, token common.Address, am *big.Int) error {
	if err := SafeTransferFrom(cc, token, cc.From(), cont.addr, am); err != nil {
		return err
	}
	return TokenApprove(cc, token, cont.uniswapRouter(cc), am)
}

// settle revokes the router allowance and refunds whatever the router left above the balance before the pull
func (cont *UseSwapContract) settle(cc *types.ContractContext, token common.Address, before *big.Int) error {
	if err := TokenApprove(cc, token, cont.uniswapRouter(cc), big.NewInt(0)); err != nil {
		return err
	}
	bal, err := TokenBalanceOf(cc, token, cont.addr)
	if err != nil {
		return err
	}
	if left := Sub(bal, before); left.Sign() > 0 {
		return SafeTransfer(cc, token, cc.From(), left)
	}
	return nil
}

func (cont *UseSwapContract) balancesOf(cc *types.ContractContext, tokens ...common.Address) ([]*big.Int, error) {
	bals := make([]*big.Int, 0, len(tokens))
	for _, token := range tokens {
		bal, err := TokenBalanceOf(cc, token, cont.addr)
		if err != nil {
			return nil, err
		}
		bals = append(bals, bal)
	}
	return bals, nil
}

//////////////////////////////////////////////////
// Swap
//////////////////////////////////////////////////

// handleSwap buys exactly amountOut of the last path token paying at most amountInMax of path[0]
func (cont *UseSwapContract) handleSwap(
	cc *types.ContractContext,
	amountOut, amountInMax *big.Int,
	path []common.Address,
	to common.Address, deadline uint64) ([]*big.Int, error) {

	if err := cont.enter(cc); err != nil {
		return nil, err
	}
	defer cont.exit(cc)

	if len(path) < 2 {
		return nil, errors.WithStack(ErrInvalidPath)
	}
	bals, err := cont.balancesOf(cc, path[0])
	if err != nil {
		return nil, err
	}
	if err := cont.pull(cc, path[0], amountInMax); err != nil {
		return nil, err
	}
	is, err := cc.Exec(cc, cont.uniswapRouter(cc), "SwapTokensForExactTokens", []interface{}{ToAmount(amountOut), ToAmount(amountInMax), path, to, deadline})
	if err != nil {
		return nil, err
	}
	if err := cont.settle(cc, path[0], bals[0]); err != nil {
		return nil, err
	}

	cont.increaseSwapCount(cc)
	return ToBigInts(is[0].([]*amount.Amount)), nil
}

// handleETHSwapForTokens swaps the whole attached value, path[0] must be the wrapped native token of the router
func (cont *UseSwapContract) handleETHSwapForTokens(
	cc *types.ContractContext,
	amountOutMin *big.Int,
	path []common.Address,
	to common.Address, deadline uint64) ([]*big.Int, error) {

	if err := cont.enter(cc); err != nil {
		return nil, err
	}
	defer cont.exit(cc)

	value := cc.Value()
	if value == nil || !value.IsPlus() {
		return nil, errors.WithStack(ErrZeroValue)
	}
	if len(path) < 2 {
		return nil, errors.WithStack(ErrInvalidPath)
	}
	is, err := cc.ExecWithValue(cc, cont.uniswapRouter(cc), value, "SwapExactETHForTokens", []interface{}{ToAmount(amountOutMin), path, to, deadline})
	if err != nil {
		return nil, err
	}

	cont.increaseSwapCount(cc)
	return ToBigInts(is[0].([]*amount.Amount)), nil
}

//////////////////////////////////////////////////
// Liquidity
//////////////////////////////////////////////////

func (cont *UseSwapContract) addLiquidity(
	cc *types.ContractContext,
	tokenA, tokenB common.Address,
	amountADesired, amountBDesired, amountAMin, amountBMin *big.Int,
	to common.Address, deadline uint64) (*big.Int, *big.Int, *big.Int, error) {

	if err := cont.enter(cc); err != nil {
		return nil, nil, nil, err
	}
	defer cont.exit(cc)

	bals, err := cont.balancesOf(cc, tokenA, tokenB)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := cont.pull(cc, tokenA, amountADesired); err != nil {
		return nil, nil, nil, err
	}
	if err := cont.pull(cc, tokenB, amountBDesired); err != nil {
		return nil, nil, nil, err
	}
	is, err := cc.Exec(cc, cont.uniswapRouter(cc), "AddLiquidity", []interface{}{
		tokenA, tokenB,
		ToAmount(amountADesired), ToAmount(amountBDesired), ToAmount(amountAMin), ToAmount(amountBMin),
		to, deadline,
	})
	if err != nil {
		return nil, nil, nil, err
	}
	if err := cont.settle(cc, tokenA, bals[0]); err != nil {
		return nil, nil, nil, err
	}
	if err := cont.settle(cc, tokenB, bals[1]); err != nil {
		return nil, nil, nil, err
	}

	cont.increaseSwapCount(cc)
	return is[0].(*amount.Amount).Int, is[1].(*amount.Amount).Int, is[2].(*amount.Amount).Int, nil
}

// addLiquidityETH pairs the token with the attached value and refunds the native coin the router sent back
func (cont *UseSwapContract) addLiquidityETH(
	cc *types.ContractContext,
	token common.Address,
	amountTokenDesired, amountTokenMin, amountETHMin *big.Int,
	to common.Address, deadline uint64) (*big.Int, *big.Int, *big.Int, error) {

	if err := cont.enter(cc); err != nil {
		return nil, nil, nil, err
	}
	defer cont.exit(cc)

	value := cc.Value()
	if value == nil || !value.IsPlus() {
		return nil, nil, nil, errors.WithStack(ErrZeroValue)
	}
	nativeBefore := Sub(cc.Balance(cont.addr).Int, value.Int)
	bals, err := cont.balancesOf(cc, token)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := cont.pull(cc, token, amountTokenDesired); err != nil {
		return nil, nil, nil, err
	}
	is, err := cc.ExecWithValue(cc, cont.uniswapRouter(cc), value, "AddLiquidityETH", []interface{}{
		token,
		ToAmount(amountTokenDesired), ToAmount(amountTokenMin), ToAmount(amountETHMin),
		to, deadline,
	})
	if err != nil {
		return nil, nil, nil, err
	}
	if err := cont.settle(cc, token, bals[0]); err != nil {
		return nil, nil, nil, err
	}
	if err := SafeTransferNative(cc, cc.From(), Sub(cc.Balance(cont.addr).Int, nativeBefore)); err != nil {
		return nil, nil, nil, err
	}

	cont.increaseSwapCount(cc)
	return is[0].(*amount.Amount).Int, is[1].(*amount.Amount).Int, is[2].(*amount.Amount).Int, nil
}

// removeLiquidity redeems liquidity units of the pair token, the underlying tokens go straight to `to`
func (cont *UseSwapContract) removeLiquidity(
	cc *types.ContractContext,
	tokenA, tokenB common.Address,
	liquidity, amountAMin, amountBMin *big.Int,
	to common.Address, deadline uint64,
	pair common.Address) (*big.Int, *big.Int, error) {

	if err := cont.enter(cc); err != nil {
		return nil, nil, err
	}
	defer cont.exit(cc)

	bals, err := cont.balancesOf(cc, pair)
	if err != nil {
		return nil, nil, err
	}
	if err := cont.pull(cc, pair, liquidity); err != nil {
		return nil, nil, err
	}
	is, err := cc.Exec(cc, cont.uniswapRouter(cc), "RemoveLiquidity", []interface{}{
		tokenA, tokenB,
		ToAmount(liquidity), ToAmount(amountAMin), ToAmount(amountBMin),
		to, deadline,
	})
	if err != nil {
		return nil, nil, err
	}
	if err := cont.settle(cc, pair, bals[0]); err != nil {
		return nil, nil, err
	}

	cont.increaseSwapCount(cc)
	return is[0].(*amount.Amount).Int, is[1].(*amount.Amount).Int, nil
}
