package trade

import (
	"math/big"

	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
	"github.com/meverselabs/useswap/core/types"

	. "github.com/meverselabs/useswap/contract/exchange/util"
)

func (cont *UniSwap) Front() interface{} {
	return &UniSwapFront{
		cont: cont,
	}
}

type UniSwapFront struct {
	cont *UniSwap
}

//////////////////////////////////////////////////
// Token
//////////////////////////////////////////////////
func (f *UniSwapFront) Name(cc *types.ContractContext) string {
	return f.cont.name(cc)
}
func (f *UniSwapFront) SetName(cc *types.ContractContext, name string) error {
	return f.cont.setName(cc, name)
}
func (f *UniSwapFront) Symbol(cc *types.ContractContext) string {
	return f.cont.symbol(cc)
}
func (f *UniSwapFront) SetSymbol(cc *types.ContractContext, symbol string) error {
	return f.cont.setSymbol(cc, symbol)
}
func (f *UniSwapFront) TotalSupply(cc *types.ContractContext) *amount.Amount {
	return ToAmount(f.cont.totalSupply(cc))
}
func (f *UniSwapFront) Decimals(cc *types.ContractContext) *big.Int {
	return f.cont.decimals(cc)
}
func (f *UniSwapFront) BalanceOf(cc *types.ContractContext, from common.Address) *amount.Amount {
	return ToAmount(f.cont.balanceOf(cc, from))
}
func (f *UniSwapFront) Transfer(cc *types.ContractContext, To common.Address, Amount *amount.Amount) error {
	return f.cont.transfer(cc, To, Amount.Int)
}
func (f *UniSwapFront) Allowance(cc *types.ContractContext, owner, spender common.Address) *amount.Amount {
	return ToAmount(f.cont.allowance(cc, owner, spender))
}
func (f *UniSwapFront) Approve(cc *types.ContractContext, To common.Address, Amount *amount.Amount) error {
	return f.cont.approve(cc, To, Amount.Int)
}
func (f *UniSwapFront) TransferFrom(cc *types.ContractContext, From common.Address, To common.Address, Amount *amount.Amount) error {
	return f.cont.transferFrom(cc, From, To, Amount.Int)
}

//////////////////////////////////////////////////
// Exchange : public reader functions
//////////////////////////////////////////////////
func (f *UniSwapFront) Factory(cc *types.ContractContext) common.Address {
	return f.cont.factory(cc)
}
func (f *UniSwapFront) Owner(cc *types.ContractContext) common.Address {
	return f.cont.owner(cc)
}
func (f *UniSwapFront) Fee(cc *types.ContractContext) uint64 {
	return f.cont.fee(cc)
}
func (f *UniSwapFront) IsKilled(cc *types.ContractContext) bool {
	return f.cont.isKilled(cc)
}
func (f *UniSwapFront) BlockTimestampLast(cc *types.ContractContext) uint64 {
	return f.cont.blockTimestampLast(cc)
}

//////////////////////////////////////////////////
// Exchange : public writer functions
//////////////////////////////////////////////////
func (f *UniSwapFront) SetOwner(cc *types.ContractContext, owner common.Address) error {
	return f.cont.setOwner(cc, owner)
}
func (f *UniSwapFront) SetFee(cc *types.ContractContext, fee uint64) error {
	return f.cont.setFee(cc, fee)
}
func (f *UniSwapFront) KillMe(cc *types.ContractContext) error {
	return f.cont.killMe(cc)
}
func (f *UniSwapFront) UnkillMe(cc *types.ContractContext) error {
	return f.cont.unkillMe(cc)
}

//////////////////////////////////////////////////
// UniSwap
//////////////////////////////////////////////////
func (f *UniSwapFront) Token0(cc *types.ContractContext) common.Address {
	return f.cont.token0(cc)
}
func (f *UniSwapFront) Token1(cc *types.ContractContext) common.Address {
	return f.cont.token1(cc)
}
func (f *UniSwapFront) Tokens(cc *types.ContractContext) []common.Address {
	return []common.Address{f.cont.token0(cc), f.cont.token1(cc)}
}

// Reserves returns reserve0, reserve1 and the last update time in seconds
func (f *UniSwapFront) Reserves(cc *types.ContractContext) ([]*amount.Amount, uint64) {
	reserve0, reserve1, _blockTimestampLast := f.cont.reserves(cc)
	return ToAmounts([]*big.Int{reserve0, reserve1}), _blockTimestampLast
}
func (f *UniSwapFront) Price0CumulativeLast(cc *types.ContractContext) *amount.Amount {
	return ToAmount(f.cont.price0CumulativeLast(cc))
}
func (f *UniSwapFront) Price1CumulativeLast(cc *types.ContractContext) *amount.Amount {
	return ToAmount(f.cont.price1CumulativeLast(cc))
}
func (f *UniSwapFront) Mint(cc *types.ContractContext, to common.Address) (*amount.Amount, error) {
	liquidity, err := f.cont.mint(cc, to)
	if err != nil {
		return nil, err
	}
	return ToAmount(liquidity), nil
}
func (f *UniSwapFront) Burn(cc *types.ContractContext, to common.Address) (*amount.Amount, *amount.Amount, error) {
	amount0, amount1, err := f.cont.burn(cc, to)
	if err != nil {
		return nil, nil, err
	}
	return ToAmount(amount0), ToAmount(amount1), nil
}
func (f *UniSwapFront) Swap(cc *types.ContractContext, amount0Out, amount1Out *amount.Amount, to common.Address) error {
	return f.cont.swap(cc, amount0Out.Int, amount1Out.Int, to)
}
func (f *UniSwapFront) Skim(cc *types.ContractContext, to common.Address) error {
	return f.cont.skim(cc, to)
}
func (f *UniSwapFront) Sync(cc *types.ContractContext) error {
	return f.cont.sync(cc)
}
