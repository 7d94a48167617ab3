package useswap_test

import (
	"bytes"
	"math"

	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
	"github.com/meverselabs/useswap/core/types"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// callbackToken calls HandleSwap of the target again when the wrapper pulls it
type callbackToken struct {
	addr   common.Address
	master common.Address
}

func (cont *callbackToken) Address() common.Address {
	return cont.addr
}
func (cont *callbackToken) Master() common.Address {
	return cont.master
}
func (cont *callbackToken) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}
func (cont *callbackToken) OnCreate(cc *types.ContractContext, Args []byte) error {
	cc.SetContractData([]byte{0x01}, Args)
	return nil
}
func (cont *callbackToken) Front() interface{} {
	return &callbackTokenFront{cont: cont}
}

type callbackTokenFront struct {
	cont *callbackToken
}

func (f *callbackTokenFront) BalanceOf(cc *types.ContractContext, owner common.Address) *amount.Amount {
	return amount.NewAmount(0, 0)
}
func (f *callbackTokenFront) TransferFrom(cc *types.ContractContext, from, to common.Address, am *amount.Amount) error {
	target := common.BytesToAddress(cc.ContractData([]byte{0x01}))
	_, err := cc.Exec(cc, target, "HandleSwap", []interface{}{am, am, []common.Address{f.cont.addr, from}, from, uint64(math.MaxUint32)})
	return err
}

var _ = Describe("Reentrancy", func() {
	BeforeEach(func() {
		_, err := types.RegisterContractType(&callbackToken{})
		Expect(err).To(Succeed())
	})

	It("rejects a call back into the wrapper", func() {
		hook := tc.DeployContract(&callbackToken{}, bytes.NewReader(use.Bytes()))

		_, err := tc.SendTx(aliceKey, use, "HandleSwap", amount.NewAmount(1, 0), amount.NewAmount(1, 0), []common.Address{hook, tokenY}, alice, deadline())
		expectRevert(err, "UseSwap: REENTRANT_CALL")
		Expect(swapCount()).To(Equal(uint64(0)))
	})

	It("is released after an operation", func() {
		approve(tokenX, aliceKey, use, MaxUint256)
		for i := 0; i < 2; i++ {
			_, err := tc.SendTx(aliceKey, use, "HandleSwap", amount.NewAmount(1, 0), amount.NewAmountFromUnits(10, 6), []common.Address{tokenX, tokenY}, alice, deadline())
			Expect(err).To(Succeed())
		}
		Expect(swapCount()).To(Equal(uint64(2)))
	})
})
