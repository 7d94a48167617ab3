package factory

import (
	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/core/types"
)

func (cont *FactoryContract) Front() interface{} {
	return &FactoryFront{
		cont: cont,
	}
}

type FactoryFront struct {
	cont *FactoryContract
}

func (f *FactoryFront) Owner(cc *types.ContractContext) common.Address {
	return f.cont.owner(cc)
}
func (f *FactoryFront) Fee(cc *types.ContractContext) uint64 {
	return f.cont.fee(cc)
}
func (f *FactoryFront) GetPair(cc *types.ContractContext, tokenA, tokenB common.Address) common.Address {
	return f.cont.getPair(cc, tokenA, tokenB)
}
func (f *FactoryFront) AllPairs(cc *types.ContractContext) []common.Address {
	return f.cont.allPairs(cc)
}
func (f *FactoryFront) AllPairsLength(cc *types.ContractContext) uint16 {
	return f.cont.allPairsLength(cc)
}
func (f *FactoryFront) CreatePair(cc *types.ContractContext, tokenA, tokenB common.Address) (common.Address, error) {
	return f.cont.createPair(cc, tokenA, tokenB)
}
func (f *FactoryFront) CreatePairUni(cc *types.ContractContext, tokenA, tokenB common.Address, name, symbol string, fee uint64) (common.Address, error) {
	return f.cont.createPairUni(cc, tokenA, tokenB, name, symbol, fee)
}
func (f *FactoryFront) SetOwner(cc *types.ContractContext, owner common.Address) error {
	return f.cont.setOwner(cc, owner)
}
func (f *FactoryFront) SetFee(cc *types.ContractContext, fee uint64) error {
	return f.cont.setFee(cc, fee)
}
