package token

import (
	"github.com/meverselabs/useswap/common"
)

var (
	tagTokenName        = byte(0x01)
	tagTokenSymbol      = byte(0x02)
	tagTokenMinter      = byte(0x03)
	tagTokenTotalSupply = byte(0x04)
	tagTokenDecimals    = byte(0x06)
	tagTokenWrapped     = byte(0x07)
	tagTokenAmount      = byte(0x10)
	tagTokenApprove     = byte(0x12)
	tagPause            = byte(0x15)
)

// MakeAllowanceTokenKey returns the account data key of the allowance granted to the spender
func MakeAllowanceTokenKey(spender common.Address) []byte {
	return makeTokenKey(spender, tagTokenApprove)
}

func makeTokenKey(addr common.Address, key byte) []byte {
	bs := make([]byte, 1+common.AddressLength)
	bs[0] = key
	copy(bs[1:], addr[:])
	return bs
}
