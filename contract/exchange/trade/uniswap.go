package trade

import (
	"bytes"
	"math/big"
	"time"

	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
	"github.com/meverselabs/useswap/core/types"
	"github.com/pkg/errors"

	. "github.com/meverselabs/useswap/contract/exchange/util"
)

// UniSwap is a constant product pair of two tokens
type UniSwap struct {
	LPToken
	Exchange
}

func (self *UniSwap) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &UniSwapConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	token0, token1, err := SortTokens(data.Token0, data.Token1)
	if err != nil {
		return err
	}

	self._setName(cc, data.Name)
	self._setSymbol(cc, data.Symbol)
	self._setFactory(cc, data.Factory)
	cc.SetContractData([]byte{tagUniToken0}, token0[:])
	cc.SetContractData([]byte{tagUniToken1}, token1[:])

	if err := self._setOwner(cc, data.Owner); err != nil {
		return err
	}
	return self._setFee(cc, data.Fee)
}

//////////////////////////////////////////////////
// UniSwap Contract : getter function
//////////////////////////////////////////////////
func (self *UniSwap) token0(cc *types.ContractContext) common.Address {
	bs := cc.ContractData([]byte{tagUniToken0})
	return common.BytesToAddress(bs)
}
func (self *UniSwap) token1(cc *types.ContractContext) common.Address {
	bs := cc.ContractData([]byte{tagUniToken1})
	return common.BytesToAddress(bs)
}
func (self *UniSwap) reserve0(cc *types.ContractContext) *big.Int {
	bs := cc.ContractData([]byte{tagUniReserve0})
	return big.NewInt(0).SetBytes(bs)
}
func (self *UniSwap) reserve1(cc *types.ContractContext) *big.Int {
	bs := cc.ContractData([]byte{tagUniReserve1})
	return big.NewInt(0).SetBytes(bs)
}
func (self *UniSwap) price0CumulativeLast(cc *types.ContractContext) *big.Int {
	bs := cc.ContractData([]byte{tagUniPrice0CumulativeLast})
	return big.NewInt(0).SetBytes(bs)
}
func (self *UniSwap) price1CumulativeLast(cc *types.ContractContext) *big.Int {
	bs := cc.ContractData([]byte{tagUniPrice1CumulativeLast})
	return big.NewInt(0).SetBytes(bs)
}
func (self *UniSwap) reserves(cc *types.ContractContext) (*big.Int, *big.Int, uint64) {
	return self.reserve0(cc), self.reserve1(cc), self.blockTimestampLast(cc)
}

// balances returns what the pair actually holds of token0 and token1
func (self *UniSwap) balances(cc *types.ContractContext) (*big.Int, *big.Int, error) {
	balance0, err := TokenBalanceOf(cc, self.token0(cc), self.addr)
	if err != nil {
		return nil, nil, err
	}
	balance1, err := TokenBalanceOf(cc, self.token1(cc), self.addr)
	if err != nil {
		return nil, nil, err
	}
	return balance0, balance1, nil
}

//////////////////////////////////////////////////
// UniSwap Contract : setter function
//////////////////////////////////////////////////
func (self *UniSwap) setName(cc *types.ContractContext, name string) error {
	if err := self.onlyOwner(cc); err != nil {
		return err
	}
	self._setName(cc, name)
	return nil
}
func (self *UniSwap) setSymbol(cc *types.ContractContext, symbol string) error {
	if err := self.onlyOwner(cc); err != nil {
		return err
	}
	self._setSymbol(cc, symbol)
	return nil
}
func (self *UniSwap) setReserve0(cc *types.ContractContext, reserve0 *big.Int) {
	cc.SetContractData([]byte{tagUniReserve0}, reserve0.Bytes())
}
func (self *UniSwap) setReserve1(cc *types.ContractContext, reserve1 *big.Int) {
	cc.SetContractData([]byte{tagUniReserve1}, reserve1.Bytes())
}
func (self *UniSwap) setPrice0CumulativeLast(cc *types.ContractContext, price0CumulativeLast *big.Int) {
	cc.SetContractData([]byte{tagUniPrice0CumulativeLast}, price0CumulativeLast.Bytes())
}
func (self *UniSwap) setPrice1CumulativeLast(cc *types.ContractContext, price1CumulativeLast *big.Int) {
	cc.SetContractData([]byte{tagUniPrice1CumulativeLast}, price1CumulativeLast.Bytes())
}

//////////////////////////////////////////////////
// UniSwap Contract : private function
//////////////////////////////////////////////////
func (self *UniSwap) _update(cc *types.ContractContext, balance0, balance1, _reserve0, _reserve1 *big.Int) {
	blockTimestamp := cc.LastTimestamp() / uint64(time.Second)
	last := self.blockTimestampLast(cc)
	if blockTimestamp > last && _reserve0.Sign() != 0 && _reserve1.Sign() != 0 {
		timeElapsed := big.NewInt(int64(blockTimestamp - last))
		unit := Pow10(amount.FractionalCount)
		self.setPrice0CumulativeLast(cc, Add(self.price0CumulativeLast(cc), Mul(MulDiv(_reserve1, unit, _reserve0), timeElapsed)))
		self.setPrice1CumulativeLast(cc, Add(self.price1CumulativeLast(cc), Mul(MulDiv(_reserve0, unit, _reserve1), timeElapsed)))
	}
	self.setReserve0(cc, balance0)
	self.setReserve1(cc, balance1)
	self._setBlockTimestampLast(cc, blockTimestamp)
}

// mint issues liquidity for the tokens sent to the pair since the last update
func (self *UniSwap) mint(cc *types.ContractContext, to common.Address) (*big.Int, error) {
	if err := self.lock(cc); err != nil {
		return nil, err
	}
	defer self.unlock(cc)

	if err := self.notKilled(cc); err != nil {
		return nil, err
	}

	_reserve0, _reserve1, _ := self.reserves(cc)
	balance0, balance1, err := self.balances(cc)
	if err != nil {
		return nil, err
	}
	amount0 := Sub(balance0, _reserve0)
	amount1 := Sub(balance1, _reserve1)
	if amount0.Sign() < 0 || amount1.Sign() < 0 {
		return nil, errors.WithStack(ErrInsufficientInputAmount)
	}

	_totalSupply := self.totalSupply(cc)
	var liquidity *big.Int
	if _totalSupply.Sign() == 0 {
		liquidity = SubC(Sqrt(Mul(amount0, amount1)), MINIMUM_LIQUIDITY)
		if liquidity.Sign() > 0 {
			// permanently locked
			if err := self._mint(cc, ZeroAddress, big.NewInt(MINIMUM_LIQUIDITY)); err != nil {
				return nil, err
			}
		}
	} else {
		liquidity = Min(MulDiv(amount0, _totalSupply, _reserve0), MulDiv(amount1, _totalSupply, _reserve1))
	}
	if liquidity.Sign() <= 0 {
		return nil, errors.WithStack(ErrInsufficientLiquidityMint)
	}
	if err := self._mint(cc, to, liquidity); err != nil {
		return nil, err
	}

	self._update(cc, balance0, balance1, _reserve0, _reserve1)
	return liquidity, nil
}

// burn redeems the liquidity sent to the pair and pays both tokens to `to`
func (self *UniSwap) burn(cc *types.ContractContext, to common.Address) (*big.Int, *big.Int, error) {
	if err := self.lock(cc); err != nil {
		return nil, nil, err
	}
	defer self.unlock(cc)

	_reserve0, _reserve1, _ := self.reserves(cc)
	_token0, _token1 := self.token0(cc), self.token1(cc)
	balance0, balance1, err := self.balances(cc)
	if err != nil {
		return nil, nil, err
	}

	liquidity := self.balanceOf(cc, self.addr)
	_totalSupply := self.totalSupply(cc)
	if _totalSupply.Sign() == 0 {
		return nil, nil, errors.WithStack(ErrInsufficientLiquidityBurnt)
	}
	amount0 := MulDiv(liquidity, balance0, _totalSupply)
	amount1 := MulDiv(liquidity, balance1, _totalSupply)
	if !(amount0.Sign() > 0 && amount1.Sign() > 0) {
		return nil, nil, errors.WithStack(ErrInsufficientLiquidityBurnt)
	}
	if err := self._burn(cc, self.addr, liquidity); err != nil {
		return nil, nil, err
	}
	if err := SafeTransfer(cc, _token0, to, amount0); err != nil {
		return nil, nil, err
	}
	if err := SafeTransfer(cc, _token1, to, amount1); err != nil {
		return nil, nil, err
	}

	self._update(cc, Sub(balance0, amount0), Sub(balance1, amount1), _reserve0, _reserve1)
	return amount0, amount1, nil
}

// swap sends the requested outputs and checks that the inputs already paid keep the fee adjusted product
func (self *UniSwap) swap(cc *types.ContractContext, amount0Out, amount1Out *big.Int, to common.Address) error {
	if err := self.lock(cc); err != nil {
		return err
	}
	defer self.unlock(cc)

	if err := self.notKilled(cc); err != nil {
		return err
	}
	if amount0Out.Sign() < 0 || amount1Out.Sign() < 0 {
		return errors.WithStack(ErrInsufficientOutputAmount)
	}
	if !(amount0Out.Sign() > 0 || amount1Out.Sign() > 0) {
		return errors.WithStack(ErrInsufficientOutputAmount)
	}
	_reserve0, _reserve1, _ := self.reserves(cc)
	if !(amount0Out.Cmp(_reserve0) < 0 && amount1Out.Cmp(_reserve1) < 0) {
		return errors.WithStack(ErrInsufficientLiquidity)
	}
	_token0, _token1 := self.token0(cc), self.token1(cc)
	if to == _token0 || to == _token1 {
		return errors.New("Exchange: INVALID_TO")
	}

	if amount0Out.Sign() > 0 {
		if err := SafeTransfer(cc, _token0, to, amount0Out); err != nil {
			return err
		}
	}
	if amount1Out.Sign() > 0 {
		if err := SafeTransfer(cc, _token1, to, amount1Out); err != nil {
			return err
		}
	}
	balance0, balance1, err := self.balances(cc)
	if err != nil {
		return err
	}

	amount0In := big.NewInt(0)
	if rest := Sub(_reserve0, amount0Out); balance0.Cmp(rest) > 0 {
		amount0In = Sub(balance0, rest)
	}
	amount1In := big.NewInt(0)
	if rest := Sub(_reserve1, amount1Out); balance1.Cmp(rest) > 0 {
		amount1In = Sub(balance1, rest)
	}
	if !(amount0In.Sign() > 0 || amount1In.Sign() > 0) {
		return errors.WithStack(ErrInsufficientInputAmount)
	}

	fee := int64(self.fee(cc))
	balance0Adjusted := Sub(MulC(balance0, FEE_DENOMINATOR), MulC(amount0In, fee))
	balance1Adjusted := Sub(MulC(balance1, FEE_DENOMINATOR), MulC(amount1In, fee))
	k := Mul(Mul(_reserve0, _reserve1), Mul(big.NewInt(FEE_DENOMINATOR), big.NewInt(FEE_DENOMINATOR)))
	if Mul(balance0Adjusted, balance1Adjusted).Cmp(k) < 0 {
		return errors.WithStack(ErrK)
	}

	self._update(cc, balance0, balance1, _reserve0, _reserve1)
	return nil
}

// skim sends the balances above the reserves to `to`
func (self *UniSwap) skim(cc *types.ContractContext, to common.Address) error {
	if err := self.lock(cc); err != nil {
		return err
	}
	defer self.unlock(cc)

	if err := self.onlyOwner(cc); err != nil {
		return err
	}
	balance0, balance1, err := self.balances(cc)
	if err != nil {
		return err
	}
	if amount0 := Sub(balance0, self.reserve0(cc)); amount0.Sign() > 0 {
		if err := SafeTransfer(cc, self.token0(cc), to, amount0); err != nil {
			return err
		}
	}
	if amount1 := Sub(balance1, self.reserve1(cc)); amount1.Sign() > 0 {
		if err := SafeTransfer(cc, self.token1(cc), to, amount1); err != nil {
			return err
		}
	}
	return nil
}

// sync forces the reserves to match the balances
func (self *UniSwap) sync(cc *types.ContractContext) error {
	if err := self.lock(cc); err != nil {
		return err
	}
	defer self.unlock(cc)

	balance0, balance1, err := self.balances(cc)
	if err != nil {
		return err
	}
	self._update(cc, balance0, balance1, self.reserve0(cc), self.reserve1(cc))
	return nil
}
