package util

import (
	"math/big"

	"github.com/meverselabs/useswap/common"
)

var (
	Zero       = big.NewInt(0)
	MaxUint256 = ToAmount(Sub(Exp(big.NewInt(2), big.NewInt(256)), big.NewInt(1)))

	ZeroAddress = common.Address{}
)
