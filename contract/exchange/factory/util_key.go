package factory

import (
	"github.com/meverselabs/useswap/common"
	"github.com/pkg/errors"
)

const (
	lpName   = "UseSwap LP"
	lpSymbol = "USLP"
)

var (
	tagOwner    = byte(0x00)
	tagAllPairs = byte(0x01)
	tagFee      = byte(0x02)
)

var (
	ErrPairExists = errors.New("Exchange: PAIR_EXISTS")
)

// makePairKey two Token Address -> bytes key
func makePairKey(token0, token1 common.Address) []byte {
	base := make([]byte, common.AddressLength*2)
	copy(base[0:], token0[:])
	copy(base[common.AddressLength:], token1[:])
	return base
}
