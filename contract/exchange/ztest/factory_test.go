package test

import (
	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/contract/exchange/trade"
	. "github.com/meverselabs/useswap/extern/test/util"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Factory", func() {

	It("Owner, Fee", func() {
		Expect(tc.MustCall(ex.Factory, "Owner")[0]).To(Equal(Admin))
		Expect(tc.MustCall(ex.Factory, "Fee")[0]).To(Equal(uint64(trade.DEFAULT_FEE)))
	})

	It("CreatePair", func() {
		pair := createPair(tokenA, tokenB)

		Expect(tc.MustCall(ex.Factory, "GetPair", tokenA, tokenB)[0]).To(Equal(pair))
		Expect(tc.MustCall(ex.Factory, "GetPair", tokenB, tokenA)[0]).To(Equal(pair))
		Expect(tc.MustCall(ex.Factory, "AllPairs")[0]).To(Equal([]common.Address{pair}))
		Expect(tc.MustCall(ex.Factory, "AllPairsLength")[0]).To(Equal(uint16(1)))

		expected, err := trade.PairFor(ex.Factory, tokenA, tokenB)
		Expect(err).To(Succeed())
		Expect(pair).To(Equal(expected))

		t0, t1, err := trade.SortTokens(tokenA, tokenB)
		Expect(err).To(Succeed())
		Expect(tc.MustCall(pair, "Factory")[0]).To(Equal(ex.Factory))
		Expect(tc.MustCall(pair, "Token0")[0]).To(Equal(t0))
		Expect(tc.MustCall(pair, "Token1")[0]).To(Equal(t1))
		Expect(tc.MustCall(pair, "Owner")[0]).To(Equal(Admin))
		Expect(tc.MustCall(pair, "Symbol")[0]).To(Equal("USLP"))
	})

	It("CreatePair : twice", func() {
		createPair(tokenA, tokenB)

		_, err := tc.SendTx(bobKey, ex.Factory, "CreatePair", tokenB, tokenA)
		expectRevert(err, "Exchange: PAIR_EXISTS")
	})

	It("CreatePair : identical, zero address", func() {
		_, err := tc.SendTx(aliceKey, ex.Factory, "CreatePair", tokenA, tokenA)
		expectRevert(err, "Exchange: IDENTICAL_ADDRESSES")

		_, err = tc.SendTx(aliceKey, ex.Factory, "CreatePair", tokenA, common.ZeroAddr)
		expectRevert(err, "Exchange: ZERO_ADDRESS")
	})

	It("CreatePairUni : onlyOwner", func() {
		_, err := tc.SendTx(aliceKey, ex.Factory, "CreatePairUni", tokenA, tokenB, "Custom LP", "CLP", uint64(1000000))
		expectRevert(err, "Exchange: FORBIDDEN")

		is, err := tc.SendTx(AdminKey, ex.Factory, "CreatePairUni", tokenA, tokenB, "Custom LP", "CLP", uint64(1000000))
		Expect(err).To(Succeed())
		pair := is[0].(common.Address)
		Expect(tc.MustCall(pair, "Name")[0]).To(Equal("Custom LP"))
		Expect(tc.MustCall(pair, "Fee")[0]).To(Equal(uint64(1000000)))
	})

	It("SetFee, SetOwner", func() {
		_, err := tc.SendTx(aliceKey, ex.Factory, "SetFee", uint64(1000))
		expectRevert(err, "Exchange: FORBIDDEN")

		_, err = tc.SendTx(AdminKey, ex.Factory, "SetFee", uint64(trade.MAX_FEE+1))
		expectRevert(err, "Exchange: FEE_EXCEED_MAXIMUM")

		_, err = tc.SendTx(AdminKey, ex.Factory, "SetFee", uint64(1000))
		Expect(err).To(Succeed())
		Expect(tc.MustCall(ex.Factory, "Fee")[0]).To(Equal(uint64(1000)))

		_, err = tc.SendTx(AdminKey, ex.Factory, "SetOwner", alice)
		Expect(err).To(Succeed())
		Expect(tc.MustCall(ex.Factory, "Owner")[0]).To(Equal(alice))
	})
})
