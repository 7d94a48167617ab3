package types

import (
	"math/big"

	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
	"github.com/meverselabs/useswap/common/hash"
)

// Loader defines functions that loads state data from the underlying state
type Loader interface {
	ChainID() *big.Int
	TargetHeight() uint32
	LastHash() hash.Hash256
	LastTimestamp() uint64
	Seq() uint32
	AddrSeq(addr common.Address) uint64
	Balance(addr common.Address) *amount.Amount
	ContractDefine(addr common.Address) *ContractDefine
	Data(cont common.Address, addr common.Address, name []byte) []byte
}

type emptyLoader struct {
	chainID   *big.Int
	timestamp uint64
}

// newEmptyLoader is used for generating genesis state
func newEmptyLoader(chainID *big.Int, timestamp uint64) Loader {
	return &emptyLoader{
		chainID:   chainID,
		timestamp: timestamp,
	}
}

func (st *emptyLoader) ChainID() *big.Int {
	return new(big.Int).Set(st.chainID)
}

func (st *emptyLoader) TargetHeight() uint32 {
	return 0
}

func (st *emptyLoader) LastHash() hash.Hash256 {
	return hash.Hash256{}
}

func (st *emptyLoader) LastTimestamp() uint64 {
	return st.timestamp
}

func (st *emptyLoader) Seq() uint32 {
	return 0
}

func (st *emptyLoader) AddrSeq(addr common.Address) uint64 {
	return 0
}

func (st *emptyLoader) Balance(addr common.Address) *amount.Amount {
	return amount.NewAmount(0, 0)
}

func (st *emptyLoader) ContractDefine(addr common.Address) *ContractDefine {
	return nil
}

func (st *emptyLoader) Data(cont common.Address, addr common.Address, name []byte) []byte {
	return nil
}
