package useswap

import (
	"io"

	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/bin"
)

type UseSwapContractConstruction struct {
	Router common.Address
}

func (s *UseSwapContractConstruction) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Address(w, s.Router); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *UseSwapContractConstruction) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.Address(r, &s.Router); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}
