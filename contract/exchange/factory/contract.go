package factory

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/bin"
	"github.com/meverselabs/useswap/contract/exchange/trade"
	"github.com/meverselabs/useswap/core/types"

	. "github.com/meverselabs/useswap/contract/exchange/util"
)

type FactoryContract struct {
	addr   common.Address
	master common.Address
}

func (cont *FactoryContract) Address() common.Address {
	return cont.addr
}
func (cont *FactoryContract) Master() common.Address {
	return cont.master
}
func (cont *FactoryContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}
func (cont *FactoryContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &FactoryContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	if data.Owner == ZeroAddress {
		return errors.WithStack(trade.ErrZeroAddress)
	}
	cc.SetContractData([]byte{tagOwner}, data.Owner[:])
	return cont._setFee(cc, data.Fee)
}

//////////////////////////////////////////////////
// Factory : private reader functions
//////////////////////////////////////////////////
func (cont *FactoryContract) owner(cc *types.ContractContext) common.Address {
	bs := cc.ContractData([]byte{tagOwner})
	return common.BytesToAddress(bs)
}
func (cont *FactoryContract) fee(cc *types.ContractContext) uint64 {
	bs := cc.ContractData([]byte{tagFee})
	if len(bs) == 0 {
		return uint64(0)
	}
	return bin.Uint64(bs)
}
func (cont *FactoryContract) getPair(cc *types.ContractContext, tokenA, tokenB common.Address) common.Address {
	pair := cc.ContractData(makePairKey(tokenA, tokenB))
	if len(pair) == 0 {
		return ZeroAddress
	}
	return common.BytesToAddress(pair)
}
func (cont *FactoryContract) allPairs(cc *types.ContractContext) []common.Address {
	bs := cc.ContractData([]byte{tagAllPairs})
	allPairs := []common.Address{}
	for i := 0; i+common.AddressLength <= len(bs); i += common.AddressLength {
		allPairs = append(allPairs, common.BytesToAddress(bs[i:i+common.AddressLength]))
	}
	return allPairs
}
func (cont *FactoryContract) allPairsLength(cc *types.ContractContext) uint16 {
	bs := cc.ContractData([]byte{tagAllPairs})
	return uint16(len(bs) / common.AddressLength)
}

//////////////////////////////////////////////////
// Factory : private writer functions
//////////////////////////////////////////////////
func (cont *FactoryContract) onlyOwner(cc *types.ContractContext) error {
	if cc.From() != cont.owner(cc) {
		return errors.WithStack(trade.ErrForbidden)
	}
	return nil
}
func (cont *FactoryContract) _setFee(cc *types.ContractContext, _fee uint64) error {
	if _fee > trade.MAX_FEE {
		return errors.WithStack(trade.ErrFeeRange)
	}
	cc.SetContractData([]byte{tagFee}, bin.Uint64Bytes(_fee))
	return nil
}

// stores the pair under both token orders and appends it to the pair list
func (cont *FactoryContract) _setData(cc *types.ContractContext, pair, token0, token1 common.Address) {
	cc.SetContractData(makePairKey(token0, token1), pair.Bytes())
	cc.SetContractData(makePairKey(token1, token0), pair.Bytes())

	bs := cc.ContractData([]byte{tagAllPairs})
	bs = append(append([]byte{}, bs...), pair.Bytes()...)
	cc.SetContractData([]byte{tagAllPairs}, bs)
}

func (cont *FactoryContract) _createPair(cc *types.ContractContext, tokenA, tokenB common.Address, name, symbol string, _fee uint64) (common.Address, error) {
	token0, token1, err := trade.SortTokens(tokenA, tokenB)
	if err != nil {
		return ZeroAddress, err
	}
	if cont.getPair(cc, token0, token1) != ZeroAddress {
		return ZeroAddress, errors.WithStack(ErrPairExists)
	}
	pair, err := trade.PairFor(cont.addr, token0, token1)
	if err != nil {
		return ZeroAddress, err
	}

	pairConstrunction := &trade.UniSwapConstruction{
		Name:    name,
		Symbol:  symbol,
		Factory: cont.addr,
		Token0:  token0,
		Token1:  token1,
		Owner:   cont.owner(cc),
		Fee:     _fee,
	}
	bs, _, err := bin.WriterToBytes(pairConstrunction)
	if err != nil {
		return ZeroAddress, err
	}
	if _, err = cc.DeployContractWithAddress(cont.addr, types.ClassIDOf(&trade.UniSwap{}), pair, bs); err != nil {
		return ZeroAddress, err
	}

	cont._setData(cc, pair, token0, token1)
	return pair, nil
}

// createPair is open to anyone and uses the factory fee
func (cont *FactoryContract) createPair(cc *types.ContractContext, tokenA, tokenB common.Address) (common.Address, error) {
	return cont._createPair(cc, tokenA, tokenB, lpName, lpSymbol, cont.fee(cc))
}

func (cont *FactoryContract) createPairUni(cc *types.ContractContext, tokenA, tokenB common.Address, name, symbol string, _fee uint64) (common.Address, error) {
	if err := cont.onlyOwner(cc); err != nil {
		return ZeroAddress, err
	}
	if _fee > trade.MAX_FEE {
		return ZeroAddress, errors.WithStack(trade.ErrFeeRange)
	}
	return cont._createPair(cc, tokenA, tokenB, name, symbol, _fee)
}

func (cont *FactoryContract) setOwner(cc *types.ContractContext, _owner common.Address) error {
	if err := cont.onlyOwner(cc); err != nil {
		return err
	}
	if _owner == ZeroAddress {
		return errors.WithStack(trade.ErrZeroAddress)
	}
	cc.SetContractData([]byte{tagOwner}, _owner.Bytes())
	return nil
}

func (cont *FactoryContract) setFee(cc *types.ContractContext, _fee uint64) error {
	if err := cont.onlyOwner(cc); err != nil {
		return err
	}
	return cont._setFee(cc, _fee)
}
