package bin

import (
	"encoding/binary"

	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
)

// Uint32Bytes returns a byte array of the uint32 number
func Uint32Bytes(v uint32) []byte {
	BNum := make([]byte, 4)
	binary.LittleEndian.PutUint32(BNum, v)
	return BNum
}

// Uint64Bytes returns a byte array of the uint64 number
func Uint64Bytes(v uint64) []byte {
	BNum := make([]byte, 8)
	binary.LittleEndian.PutUint64(BNum, v)
	return BNum
}

// Uint32 returns a uint32 number of the byte array
func Uint32(v []byte) uint32 {
	return binary.LittleEndian.Uint32(v)
}

// Uint64 returns a uint64 number of the byte array, a short array is treated as zero
func Uint64(v []byte) uint64 {
	if len(v) < 8 {
		return 0
	}
	return binary.LittleEndian.Uint64(v)
}

// Amount returns a Amount of the byte array
func Amount(v []byte) *amount.Amount {
	return amount.NewAmountFromBytes(v)
}

// Address returns the address stored in the byte array
func Address(v []byte) common.Address {
	return common.BytesToAddress(v)
}
