package trade

import (
	"math/big"

	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
	"github.com/meverselabs/useswap/core/types"
	"github.com/pkg/errors"

	. "github.com/meverselabs/useswap/contract/exchange/util"
)

// LPToken is the liquidity share ledger embedded in every pair
type LPToken struct {
}

// lp token errors
var (
	ErrLPMintNegative        = errors.New("LPToken: MINT_NEGATIVE_AMOUNT")
	ErrLPBurnNegative        = errors.New("LPToken: BURN_NEGATIVE_AMOUNT")
	ErrLPBurnExceedBalance   = errors.New("LPToken: BURN_EXCEED_BALANCE")
	ErrLPApproveFromZero     = errors.New("LPToken: APPROVE_FROM_ZEROADDRESS")
	ErrLPApproveToZero       = errors.New("LPToken: APPROVE_TO_ZEROADDRESS")
	ErrLPApproveNegative     = errors.New("LPToken: APPROVE_NEGATIVE_AMOUNT")
	ErrLPTransferFromZero    = errors.New("LPToken: TRANSFER_FROM_ZEROADDRESS")
	ErrLPTransferToZero      = errors.New("LPToken: TRANSFER_TO_ZEROADDRESS")
	ErrLPTransferNegative    = errors.New("LPToken: TRANSFER_NEGATIVE_AMOUNT")
	ErrLPTransferExceedBal   = errors.New("LPToken: TRANSFER_EXCEED_BALANCE")
	ErrLPTransferExceedAllow = errors.New("LPToken: TRANSFER_EXCEED_ALLOWANCE")
)

//////////////////////////////////////////////////
// LPToken : private reader function
//////////////////////////////////////////////////
func (self *LPToken) name(cc *types.ContractContext) string {
	return string(cc.ContractData([]byte{tagTokenName}))
}
func (self *LPToken) symbol(cc *types.ContractContext) string {
	return string(cc.ContractData([]byte{tagTokenSymbol}))
}
func (self *LPToken) decimals(cc *types.ContractContext) *big.Int {
	return big.NewInt(amount.FractionalCount)
}
func (self *LPToken) totalSupply(cc *types.ContractContext) *big.Int {
	bs := cc.ContractData([]byte{tagTokenTotalSupply})
	return big.NewInt(0).SetBytes(bs)
}

// Returns the amount of tokens owned by `owner`.
func (self *LPToken) balanceOf(cc *types.ContractContext, owner common.Address) *big.Int {
	bs := cc.AccountData(owner, []byte{tagTokenAmount})
	return big.NewInt(0).SetBytes(bs)
}

// Returns the remaining number of tokens that `spender` may move on behalf of `owner`.
func (self *LPToken) allowance(cc *types.ContractContext, owner, spender common.Address) *big.Int {
	bs := cc.AccountData(owner, makeTokenKey(spender, tagTokenApprove))
	return big.NewInt(0).SetBytes(bs)
}

//////////////////////////////////////////////////
// LPToken Contract : private writer function
//////////////////////////////////////////////////
func (self *LPToken) _setName(cc *types.ContractContext, name string) {
	cc.SetContractData([]byte{tagTokenName}, []byte(name))
}
func (self *LPToken) _setSymbol(cc *types.ContractContext, symbol string) {
	cc.SetContractData([]byte{tagTokenSymbol}, []byte(symbol))
}
func (self *LPToken) _mint(cc *types.ContractContext, to common.Address, am *big.Int) error {
	if am.Sign() < 0 {
		return errors.WithStack(ErrLPMintNegative)
	}
	balance := Add(self.balanceOf(cc, to), am)
	total := Add(self.totalSupply(cc), am)

	cc.SetAccountData(to, []byte{tagTokenAmount}, balance.Bytes())
	cc.SetContractData([]byte{tagTokenTotalSupply}, total.Bytes())
	return nil
}
func (self *LPToken) _burn(cc *types.ContractContext, from common.Address, am *big.Int) error {
	if am.Sign() < 0 {
		return errors.WithStack(ErrLPBurnNegative)
	}
	balance := self.balanceOf(cc, from)
	if balance.Cmp(am) < 0 {
		return errors.WithStack(ErrLPBurnExceedBalance)
	}
	balance = Sub(balance, am)
	total := Sub(self.totalSupply(cc), am)

	cc.SetAccountData(from, []byte{tagTokenAmount}, balance.Bytes())
	cc.SetContractData([]byte{tagTokenTotalSupply}, total.Bytes())
	return nil
}

func (self *LPToken) _approve(cc *types.ContractContext, owner, spender common.Address, am *big.Int) error {
	if owner == ZeroAddress {
		return errors.WithStack(ErrLPApproveFromZero)
	}
	if spender == ZeroAddress {
		return errors.WithStack(ErrLPApproveToZero)
	}
	if am.Sign() < 0 {
		return errors.WithStack(ErrLPApproveNegative)
	}
	if am.Sign() == 0 {
		cc.SetAccountData(owner, makeTokenKey(spender, tagTokenApprove), nil)
		return nil
	}
	cc.SetAccountData(owner, makeTokenKey(spender, tagTokenApprove), am.Bytes())
	return nil
}
func (self *LPToken) _transfer(cc *types.ContractContext, from, to common.Address, am *big.Int) error {
	if from == ZeroAddress {
		return errors.WithStack(ErrLPTransferFromZero)
	}
	if to == ZeroAddress {
		return errors.WithStack(ErrLPTransferToZero)
	}
	if am.Sign() < 0 {
		return errors.WithStack(ErrLPTransferNegative)
	}
	fromBalance := self.balanceOf(cc, from)
	if fromBalance.Cmp(am) < 0 {
		return errors.Wrapf(ErrLPTransferExceedBal, "%v has %v, needs %v", from.String(), fromBalance.String(), am.String())
	}
	cc.SetAccountData(from, []byte{tagTokenAmount}, Sub(fromBalance, am).Bytes())
	cc.SetAccountData(to, []byte{tagTokenAmount}, Add(self.balanceOf(cc, to), am).Bytes())
	return nil
}

func (self *LPToken) approve(cc *types.ContractContext, spender common.Address, am *big.Int) error {
	return self._approve(cc, cc.From(), spender, am)
}

func (self *LPToken) transfer(cc *types.ContractContext, to common.Address, am *big.Int) error {
	return self._transfer(cc, cc.From(), to, am)
}

// Moves `am` tokens from `from` to `to` using the allowance of the caller.
// An allowance of MaxUint256 is never decremented.
func (self *LPToken) transferFrom(cc *types.ContractContext, from, to common.Address, am *big.Int) error {
	spender := cc.From()
	currentAllowance := self.allowance(cc, from, spender)
	if am.Cmp(currentAllowance) > 0 {
		return errors.WithStack(ErrLPTransferExceedAllow)
	}
	if currentAllowance.Cmp(MaxUint256.Int) != 0 {
		if err := self._approve(cc, from, spender, Sub(currentAllowance, am)); err != nil {
			return err
		}
	}
	return self._transfer(cc, from, to, am)
}
