package common

import (
	"encoding/hex"
	"math/big"
	"strings"

	ecommon "github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
)

type Address = ecommon.Address

var ZeroAddr = Address{}

// AddressLength is the expected length of the address
const AddressLength = ecommon.AddressLength

// BytesToAddress returns Address with value b.
// If b is larger than len(h), b will be cropped from the left.
func BytesToAddress(b []byte) Address {
	return ecommon.BytesToAddress(b)
}

// BigToAddress returns Address with byte values of b.
func BigToAddress(b *big.Int) Address {
	return ecommon.BigToAddress(b)
}

// HexToAddress returns Address with byte values of s.
func HexToAddress(s string) Address {
	return ecommon.HexToAddress(s)
}

// IsHexAddress verifies whether a string can represent a valid hex-encoded address or not.
func IsHexAddress(s string) bool {
	return ecommon.IsHexAddress(s)
}

// ParseAddress parses a strict 20 byte hex address with or without the 0x prefix
func ParseAddress(s string) (Address, error) {
	s = strings.TrimPrefix(s, "0x")
	h, err := hex.DecodeString(s)
	if err != nil {
		return ZeroAddr, errors.WithStack(err)
	}
	if len(h) != AddressLength {
		return ZeroAddr, errors.WithStack(ErrInvalidAddressFormat)
	}
	return BytesToAddress(h), nil
}

// MustParseAddress panics when the address is invalid
func MustParseAddress(s string) Address {
	addr, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return addr
}
