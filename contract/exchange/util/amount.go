package util

import (
	"math/big"

	"github.com/meverselabs/useswap/common/amount"
)

func ToAmount(b *big.Int) *amount.Amount {
	if b == nil {
		return amount.NewAmount(0, 0)
	}
	return &amount.Amount{Int: b}
}
func ToAmounts(b []*big.Int) []*amount.Amount {
	result := make([]*amount.Amount, len(b))
	for i := 0; i < len(b); i++ {
		result[i] = ToAmount(b[i])
	}
	return result
}
func ToBigInts(b []*amount.Amount) []*big.Int {
	result := make([]*big.Int, len(b))
	for i := 0; i < len(b); i++ {
		result[i] = Clone(b[i].Int)
	}
	return result
}
