package token

import (
	"bytes"
	"math/big"

	"github.com/pkg/errors"

	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
	"github.com/meverselabs/useswap/core/types"
)

type TokenContract struct {
	addr   common.Address
	master common.Address
}

func (cont *TokenContract) Address() common.Address {
	return cont.addr
}

func (cont *TokenContract) Master() common.Address {
	return cont.master
}

func (cont *TokenContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}

func (cont *TokenContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &TokenContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	if data.Decimals > amount.MaxDecimals {
		return errors.Wrapf(ErrInvalidDecimals, "%v", data.Decimals)
	}
	cc.SetContractData([]byte{tagTokenName}, []byte(data.Name))
	cc.SetContractData([]byte{tagTokenSymbol}, []byte(data.Symbol))
	if data.Decimals > 0 {
		cc.SetContractData([]byte{tagTokenDecimals}, []byte{data.Decimals})
	}
	if data.Wrapped {
		cc.SetContractData([]byte{tagTokenWrapped}, []byte{1})
	}
	for k, v := range data.InitialSupplyMap {
		if err := cont.addBalance(cc, k, v); err != nil {
			return err
		}
	}
	return nil
}

// Payable reports the methods which accept the native coin
func (cont *TokenContract) Payable(MethodName string) bool {
	return MethodName == "Deposit"
}

//////////////////////////////////////////////////
// Private Functions
//////////////////////////////////////////////////

func (cont *TokenContract) addBalance(cc *types.ContractContext, addr common.Address, am *amount.Amount) error {
	if !am.IsPlus() {
		return errors.Errorf("invalid transfer amount %v", am.String())
	}
	if cont.isPause(cc) {
		return errors.WithStack(ErrPaused)
	}
	bal := cont.BalanceOf(cc, addr)
	cc.SetAccountData(addr, []byte{tagTokenAmount}, bal.Add(am).Bytes())

	total := cont.TotalSupply(cc).Add(am)
	cc.SetContractData([]byte{tagTokenTotalSupply}, total.Bytes())
	return nil
}

func (cont *TokenContract) subBalance(cc *types.ContractContext, addr common.Address, am *amount.Amount) error {
	if !am.IsPlus() {
		return errors.Errorf("invalid transfer amount %v", am.String())
	}
	if cont.isPause(cc) {
		return errors.WithStack(ErrPaused)
	}
	bal := cont.BalanceOf(cc, addr)
	if bal.Less(am) {
		return errors.Wrapf(ErrExceedBalance, "%v has %v, needs %v", addr.String(), bal.String(), am.String())
	}
	bal = bal.Sub(am)
	if bal.IsZero() {
		cc.SetAccountData(addr, []byte{tagTokenAmount}, nil)
	} else {
		cc.SetAccountData(addr, []byte{tagTokenAmount}, bal.Bytes())
	}

	total := cont.TotalSupply(cc).Sub(am)
	cc.SetContractData([]byte{tagTokenTotalSupply}, total.Bytes())
	return nil
}

func (cont *TokenContract) transfer(cc *types.ContractContext, From common.Address, To common.Address, Amount *amount.Amount) error {
	if To == common.ZeroAddr {
		return errors.WithStack(ErrTransferToZeroAddress)
	}
	if Amount.IsMinus() {
		return errors.WithStack(ErrNegativeAmount)
	}
	if Amount.IsZero() {
		return nil
	}
	if err := cont.subBalance(cc, From, Amount); err != nil {
		return err
	}
	return cont.addBalance(cc, To, Amount)
}

func (cont *TokenContract) isMasterOrMinter(cc *types.ContractContext) bool {
	return cc.From() == cont.Master() || cont.IsMinter(cc, cc.From())
}

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

func (cont *TokenContract) Transfer(cc *types.ContractContext, To common.Address, Amount *amount.Amount) error {
	if cc.From() == common.ZeroAddr {
		return errors.WithStack(ErrTransferFromZeroAddress)
	}
	return cont.transfer(cc, cc.From(), To, Amount)
}

func (cont *TokenContract) Approve(cc *types.ContractContext, spender common.Address, Amount *amount.Amount) error {
	if cc.From() == common.ZeroAddr {
		return errors.WithStack(ErrApproveFromZeroAddress)
	}
	if spender == common.ZeroAddr {
		return errors.WithStack(ErrApproveToZeroAddress)
	}
	if Amount.IsMinus() {
		return errors.WithStack(ErrNegativeAmount)
	}
	cont._approve(cc, cc.From(), spender, Amount)
	return nil
}

func (cont *TokenContract) _approve(cc *types.ContractContext, owner common.Address, spender common.Address, Amount *amount.Amount) {
	if Amount.IsZero() {
		cc.SetAccountData(owner, MakeAllowanceTokenKey(spender), nil)
		return
	}
	cc.SetAccountData(owner, MakeAllowanceTokenKey(spender), Amount.Bytes())
}

// TransferFrom moves the tokens of From by the allowance granted to the caller
func (cont *TokenContract) TransferFrom(cc *types.ContractContext, From common.Address, To common.Address, Amount *amount.Amount) error {
	if Amount.IsMinus() {
		return errors.WithStack(ErrNegativeAmount)
	}
	if Amount.IsZero() {
		return nil
	}
	balance := cont.BalanceOf(cc, From)
	if balance.Less(Amount) {
		return errors.Wrapf(ErrExceedBalance, "%v has %v, needs %v", From.String(), balance.String(), Amount.String())
	}
	allowed := cont.Allowance(cc, From, cc.From())
	if allowed.Less(Amount) {
		return errors.Wrapf(ErrExceedAllowance, "%v allowed %v to %v, needs %v", From.String(), cc.From().String(), allowed.String(), Amount.String())
	}
	cont._approve(cc, From, cc.From(), allowed.Sub(Amount))
	return cont.transfer(cc, From, To, Amount)
}

func (cont *TokenContract) Burn(cc *types.ContractContext, am *amount.Amount) error {
	if am.IsMinus() {
		return errors.WithStack(ErrNegativeAmount)
	}
	return cont.subBalance(cc, cc.From(), am)
}

func (cont *TokenContract) Mint(cc *types.ContractContext, To common.Address, Amount *amount.Amount) error {
	if !cont.isMasterOrMinter(cc) {
		return errors.Wrap(ErrNotMinter, cc.From().String())
	}
	if Amount.IsPlus() {
		return cont.addBalance(cc, To, Amount)
	}
	return nil
}

func (cont *TokenContract) MintBatch(cc *types.ContractContext, Tos []common.Address, Amounts []*amount.Amount) error {
	if !cont.isMasterOrMinter(cc) {
		return errors.Wrap(ErrNotMinter, cc.From().String())
	}
	if len(Tos) != len(Amounts) {
		return errors.New("not match To and Amount")
	}
	for i, To := range Tos {
		if err := cont.addBalance(cc, To, Amounts[i]); err != nil {
			return err
		}
	}
	return nil
}

func (cont *TokenContract) SetMinter(cc *types.ContractContext, To common.Address, Is bool) error {
	if cc.From() != cont.Master() {
		return errors.WithStack(ErrNotMaster)
	}
	isMinter := cont.IsMinter(cc, To)
	if Is {
		if isMinter {
			return errors.New("already token minter")
		}
		cc.SetAccountData(To, []byte{tagTokenMinter}, []byte{1})
	} else {
		if !isMinter {
			return errors.WithStack(ErrNotMinter)
		}
		cc.SetAccountData(To, []byte{tagTokenMinter}, nil)
	}
	return nil
}

// Deposit mints the attached native coin to the caller
func (cont *TokenContract) Deposit(cc *types.ContractContext) (*amount.Amount, error) {
	if !cont.IsWrapped(cc) {
		return nil, errors.WithStack(ErrNotWrapped)
	}
	am := cc.Value()
	if am.IsZero() {
		return am, nil
	}
	if err := cont.addBalance(cc, cc.From(), am); err != nil {
		return nil, err
	}
	return am, nil
}

// Withdraw burns the tokens of the caller and pays back the native coin
func (cont *TokenContract) Withdraw(cc *types.ContractContext, am *amount.Amount) error {
	if !cont.IsWrapped(cc) {
		return errors.WithStack(ErrNotWrapped)
	}
	if err := cont.Burn(cc, am); err != nil {
		return err
	}
	return cc.TransferNative(cc.From(), am)
}

func (cont *TokenContract) SetName(cc *types.ContractContext, name string) error {
	if cc.From() != cont.Master() {
		return errors.WithStack(ErrNotMaster)
	}
	cc.SetContractData([]byte{tagTokenName}, []byte(name))
	return nil
}

func (cont *TokenContract) SetSymbol(cc *types.ContractContext, symbol string) error {
	if cc.From() != cont.Master() {
		return errors.WithStack(ErrNotMaster)
	}
	cc.SetContractData([]byte{tagTokenSymbol}, []byte(symbol))
	return nil
}

func (cont *TokenContract) isPause(cc *types.ContractContext) bool {
	bs := cc.ContractData([]byte{tagPause})
	return len(bs) == 1 && bs[0] == 1
}

func (cont *TokenContract) Pause(cc *types.ContractContext) error {
	if cc.From() != cont.Master() {
		return errors.WithStack(ErrNotMaster)
	}
	cc.SetContractData([]byte{tagPause}, []byte{1})
	return nil
}

func (cont *TokenContract) Unpause(cc *types.ContractContext) error {
	if cc.From() != cont.Master() {
		return errors.WithStack(ErrNotMaster)
	}
	cc.SetContractData([]byte{tagPause}, nil)
	return nil
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (cont *TokenContract) Name(cc *types.ContractContext) string {
	return string(cc.ContractData([]byte{tagTokenName}))
}

func (cont *TokenContract) Symbol(cc *types.ContractContext) string {
	return string(cc.ContractData([]byte{tagTokenSymbol}))
}

func (cont *TokenContract) TotalSupply(cc *types.ContractContext) *amount.Amount {
	return amount.NewAmountFromBytes(cc.ContractData([]byte{tagTokenTotalSupply}))
}

func (cont *TokenContract) Decimals(cc *types.ContractContext) *big.Int {
	bs := cc.ContractData([]byte{tagTokenDecimals})
	if len(bs) == 1 {
		return big.NewInt(int64(bs[0]))
	}
	return big.NewInt(amount.FractionalCount)
}

func (cont *TokenContract) IsWrapped(cc *types.ContractContext) bool {
	bs := cc.ContractData([]byte{tagTokenWrapped})
	return len(bs) == 1 && bs[0] == 1
}

func (cont *TokenContract) BalanceOf(cc *types.ContractContext, from common.Address) *amount.Amount {
	return amount.NewAmountFromBytes(cc.AccountData(from, []byte{tagTokenAmount}))
}

func (cont *TokenContract) IsMinter(cc *types.ContractContext, addr common.Address) bool {
	bs := cc.AccountData(addr, []byte{tagTokenMinter})
	return len(bs) == 1 && bs[0] == 1
}

func (cont *TokenContract) Allowance(cc *types.ContractContext, _owner common.Address, _spender common.Address) *amount.Amount {
	return amount.NewAmountFromBytes(cc.AccountData(_owner, MakeAllowanceTokenKey(_spender)))
}
