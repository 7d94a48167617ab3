package factory

import (
	"io"

	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/bin"
)

type FactoryContractConstruction struct {
	Owner common.Address
	Fee   uint64
}

func (s *FactoryContractConstruction) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Address(w, s.Owner); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint64(w, s.Fee); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *FactoryContractConstruction) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.Address(r, &s.Owner); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint64(r, &s.Fee); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}
