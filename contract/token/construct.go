package token

import (
	"bytes"
	"io"
	"sort"

	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
	"github.com/meverselabs/useswap/common/bin"
)

// TokenContractConstruction is the deploy argument of the token.
// Decimals 0 means the default of amount.FractionalCount.
// A Wrapped token mints on Deposit of the native coin and pays it back on Withdraw.
type TokenContractConstruction struct {
	Name             string
	Symbol           string
	Decimals         uint8
	Wrapped          bool
	InitialSupplyMap map[common.Address]*amount.Amount
}

func (s *TokenContractConstruction) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.String(w, s.Name); err != nil {
		return sum, err
	}
	if sum, err := sw.String(w, s.Symbol); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint8(w, s.Decimals); err != nil {
		return sum, err
	}
	if sum, err := sw.Bool(w, s.Wrapped); err != nil {
		return sum, err
	}
	addrs := make([]common.Address, 0, len(s.InitialSupplyMap))
	for k := range s.InitialSupplyMap {
		addrs = append(addrs, k)
	}
	sort.Slice(addrs, func(i, j int) bool {
		return bytes.Compare(addrs[i][:], addrs[j][:]) < 0
	})
	if sum, err := sw.Uint32(w, uint32(len(addrs))); err != nil {
		return sum, err
	}
	for _, k := range addrs {
		if sum, err := sw.Address(w, k); err != nil {
			return sum, err
		}
		if sum, err := sw.Amount(w, s.InitialSupplyMap[k]); err != nil {
			return sum, err
		}
	}
	return sw.Sum(), nil
}

func (s *TokenContractConstruction) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.String(r, &s.Name); err != nil {
		return sum, err
	}
	if sum, err := sr.String(r, &s.Symbol); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint8(r, &s.Decimals); err != nil {
		return sum, err
	}
	if sum, err := sr.Bool(r, &s.Wrapped); err != nil {
		return sum, err
	}
	if Len, sum, err := sr.GetUint32(r); err != nil {
		return sum, err
	} else {
		s.InitialSupplyMap = map[common.Address]*amount.Amount{}
		for i := uint32(0); i < Len; i++ {
			var addr common.Address
			if sum, err := sr.Address(r, &addr); err != nil {
				return sum, err
			}
			var am *amount.Amount
			if sum, err := sr.Amount(r, &am); err != nil {
				return sum, err
			}
			s.InitialSupplyMap[addr] = am
		}
	}
	return sr.Sum(), nil
}
