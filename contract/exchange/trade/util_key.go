package trade

import (
	"bytes"
	"math/big"

	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/bin"
	"github.com/meverselabs/useswap/common/hash"
	"github.com/meverselabs/useswap/core/types"
	"github.com/pkg/errors"

	. "github.com/meverselabs/useswap/contract/exchange/util"
)

const (
	//exchange
	FEE_DENOMINATOR = 10000000000
	MAX_FEE         = FEE_DENOMINATOR / 2 //  50%
	DEFAULT_FEE     = 30000000            // 0.3%

	//uniswap
	MINIMUM_LIQUIDITY = 1000
)

var (
	//owner
	tagOwner = byte(0x00)

	//token
	tagTokenName        = byte(0x01)
	tagTokenSymbol      = byte(0x02)
	tagTokenTotalSupply = byte(0x03)
	tagTokenAmount      = byte(0x04)
	tagTokenApprove     = byte(0x05)

	//exchange
	tagFactory            = byte(0x22)
	tagExFee              = byte(0x27)
	tagExIsKilled         = byte(0x42)
	tagBlockTimestampLast = byte(0x43)
	tagExLocked           = byte(0x44)

	//UniSwap
	tagUniToken0               = byte(0x61)
	tagUniToken1               = byte(0x62)
	tagUniReserve0             = byte(0x63)
	tagUniReserve1             = byte(0x64)
	tagUniPrice0CumulativeLast = byte(0x65)
	tagUniPrice1CumulativeLast = byte(0x66)
)

// exchange errors
var (
	ErrIdenticalAddresses         = errors.New("Exchange: IDENTICAL_ADDRESSES")
	ErrZeroAddress                = errors.New("Exchange: ZERO_ADDRESS")
	ErrForbidden                  = errors.New("Exchange: FORBIDDEN")
	ErrLocked                     = errors.New("Exchange: LOCKED")
	ErrKilled                     = errors.New("Exchange: KILLED")
	ErrInsufficientAmount         = errors.New("Exchange: INSUFFICIENT_AMOUNT")
	ErrInsufficientLiquidity      = errors.New("Exchange: INSUFFICIENT_LIQUIDITY")
	ErrInsufficientInputAmount    = errors.New("Exchange: INSUFFICIENT_INPUT_AMOUNT")
	ErrInsufficientOutputAmount   = errors.New("Exchange: INSUFFICIENT_OUTPUT_AMOUNT")
	ErrInsufficientLiquidityMint  = errors.New("Exchange: INSUFFICIENT_LIQUIDITY_MINTED")
	ErrInsufficientLiquidityBurnt = errors.New("Exchange: INSUFFICIENT_LIQUIDITY_BURNED")
	ErrK                          = errors.New("Exchange: K")
	ErrFeeRange                   = errors.New("Exchange: FEE_EXCEED_MAXIMUM")
)

/////////// key  ////////////
func makeTokenKey(sender common.Address, key byte) []byte {
	bs := make([]byte, 1+common.AddressLength)
	bs[0] = key
	copy(bs[1:], sender[:])
	return bs
}

/////////// Contract Address  ///////////
// Pair Contract Address
func pairContractAddress(ClassID uint64, factory, token0, token1 common.Address) common.Address {
	base := make([]byte, 1+common.AddressLength*3+8)
	base[0] = 0xff

	copy(base[1:], factory[:])
	copy(base[1+common.AddressLength:], token0[:])
	copy(base[1+common.AddressLength*2:], token1[:])
	copy(base[1+common.AddressLength*3:], bin.Uint64Bytes(ClassID))
	h := hash.Hash(base)
	return common.BytesToAddress(h[12:])
}

/////////// Exchange  ///////////
// Sort two Token Address
func SortTokens(tokenA, tokenB common.Address) (common.Address, common.Address, error) {
	if tokenA == tokenB {
		return ZeroAddress, ZeroAddress, errors.WithStack(ErrIdenticalAddresses)
	}

	var token0, token1 common.Address
	if bytes.Compare(tokenA[:], tokenB[:]) < 0 {
		token0, token1 = tokenA, tokenB
	} else {
		token0, token1 = tokenB, tokenA
	}

	if token0 == ZeroAddress {
		return ZeroAddress, ZeroAddress, errors.WithStack(ErrZeroAddress)
	}
	return token0, token1, nil
}

// calculates the address for a pair without making any external calls
func PairFor(factory, tokenA, tokenB common.Address) (common.Address, error) {
	token0, token1, err := SortTokens(tokenA, tokenB)
	if err != nil {
		return ZeroAddress, err
	}
	return pairContractAddress(types.ClassIDOf(&UniSwap{}), factory, token0, token1), nil
}

/////////// Uniswap  ///////////
// given some amount of an asset and pair reserves, returns an equivalent amount of the other asset
func UniQuote(amountA, reserveA, reserveB *big.Int) (*big.Int, error) {
	if !(amountA.Cmp(Zero) > 0) {
		return nil, errors.WithStack(ErrInsufficientAmount)
	}
	if !(reserveA.Cmp(Zero) > 0) || !(reserveB.Cmp(Zero) > 0) {
		return nil, errors.WithStack(ErrInsufficientLiquidity)
	}
	return MulDiv(amountA, reserveB, reserveA), nil
}

// given an input amount of an asset and pair reserves, returns the maximum output amount of the other asset
func UniGetAmountOut(fee uint64, amountIn, reserveIn, reserveOut *big.Int) (*big.Int, error) {
	if !(amountIn.Cmp(Zero) > 0) {
		return nil, errors.WithStack(ErrInsufficientInputAmount)
	}
	if !(reserveIn.Cmp(Zero) > 0) || !(reserveOut.Cmp(Zero) > 0) {
		return nil, errors.WithStack(ErrInsufficientLiquidity)
	}
	amountInWithFee := Mul(amountIn, big.NewInt(FEE_DENOMINATOR-int64(fee)))
	numerator := Mul(amountInWithFee, reserveOut)
	denominator := Add(Mul(reserveIn, big.NewInt(FEE_DENOMINATOR)), amountInWithFee)
	return Div(numerator, denominator), nil
}

// given an output amount of an asset and pair reserves, returns a required input amount of the other asset
func UniGetAmountIn(fee uint64, amountOut, reserveIn, reserveOut *big.Int) (*big.Int, error) {
	if !(amountOut.Cmp(Zero) > 0) {
		return nil, errors.WithStack(ErrInsufficientOutputAmount)
	}
	if !(reserveIn.Cmp(Zero) > 0) || !(reserveOut.Cmp(amountOut) > 0) {
		return nil, errors.WithStack(ErrInsufficientLiquidity)
	}
	numerator := Mul(Mul(reserveIn, amountOut), big.NewInt(FEE_DENOMINATOR))
	denominator := Mul(Sub(reserveOut, amountOut), big.NewInt(FEE_DENOMINATOR-int64(fee)))
	return Add(Div(numerator, denominator), big.NewInt(1)), nil
}
