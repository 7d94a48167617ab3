package test

import (
	"math/big"

	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
	. "github.com/meverselabs/useswap/extern/test/util"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Router", func() {

	routerAddLiquidity := func(amA, amB *amount.Amount) []interface{} {
		is, err := tc.SendTx(aliceKey, ex.Router, "AddLiquidity", tokenA, tokenB, amA, amB, amount.NewAmount(0, 0), amount.NewAmount(0, 0), alice, deadline())
		Expect(err).To(Succeed())
		return is
	}

	BeforeEach(func() {
		tokenApprove(tokenA, aliceKey, ex.Router)
		tokenApprove(tokenB, aliceKey, ex.Router)
	})

	It("Factory, WNative", func() {
		Expect(tc.MustCall(ex.Router, "Factory")[0]).To(Equal(ex.Factory))
		Expect(tc.MustCall(ex.Router, "WNative")[0]).To(Equal(ex.WNative))
	})

	It("AddLiquidity : creates the pair", func() {
		is := routerAddLiquidity(amount.NewAmount(10, 0), amount.NewAmount(40, 0))
		Expect(is[0]).To(Equal(amount.NewAmount(10, 0)))
		Expect(is[1]).To(Equal(amount.NewAmount(40, 0)))
		Expect(is[2]).To(Equal(amount.NewAmount(20, 0).Sub(amount.NewAmountFromBig(big.NewInt(1000)))))

		pair := tc.MustCall(ex.Factory, "GetPair", tokenA, tokenB)[0].(common.Address)
		Expect(pair).NotTo(Equal(common.ZeroAddr))
		Expect(tokenBalanceOf(pair, alice)).To(Equal(is[2]))
		Expect(tokenBalanceOf(tokenA, alice)).To(Equal(amount.NewAmount(9990, 0)))
		Expect(tokenBalanceOf(tokenB, alice)).To(Equal(amount.NewAmount(9960, 0)))
	})

	It("AddLiquidity : keeps the price", func() {
		routerAddLiquidity(amount.NewAmount(10, 0), amount.NewAmount(40, 0))
		is := routerAddLiquidity(amount.NewAmount(10, 0), amount.NewAmount(50, 0))
		Expect(is[0]).To(Equal(amount.NewAmount(10, 0)))
		Expect(is[1]).To(Equal(amount.NewAmount(40, 0)))
		Expect(is[2]).To(Equal(amount.NewAmount(20, 0)))
	})

	It("AddLiquidity : minimum", func() {
		routerAddLiquidity(amount.NewAmount(10, 0), amount.NewAmount(40, 0))
		_, err := tc.SendTx(aliceKey, ex.Router, "AddLiquidity", tokenA, tokenB, amount.NewAmount(10, 0), amount.NewAmount(50, 0), amount.NewAmount(0, 0), amount.NewAmount(45, 0), alice, deadline())
		expectRevert(err, "Router: INSUFFICIENT_B_AMOUNT")
	})

	It("RemoveLiquidity", func() {
		is := routerAddLiquidity(amount.NewAmount(10, 0), amount.NewAmount(40, 0))
		liquidity := is[2].(*amount.Amount)
		pair := tc.MustCall(ex.Factory, "GetPair", tokenA, tokenB)[0].(common.Address)

		_, err := tc.SendTx(aliceKey, pair, "Approve", ex.Router, liquidity)
		Expect(err).To(Succeed())
		is, err = tc.SendTx(aliceKey, ex.Router, "RemoveLiquidity", tokenA, tokenB, liquidity, amount.NewAmount(0, 0), amount.NewAmount(0, 0), alice, deadline())
		Expect(err).To(Succeed())

		Expect(is[0]).To(Equal(amount.NewAmount(10, 0).Sub(amount.NewAmountFromBig(big.NewInt(500)))))
		Expect(is[1]).To(Equal(amount.NewAmount(40, 0).Sub(amount.NewAmountFromBig(big.NewInt(2000)))))
		Expect(tokenBalanceOf(pair, alice).IsZero()).To(BeTrue())
	})

	It("RemoveLiquidity : minimum", func() {
		is := routerAddLiquidity(amount.NewAmount(10, 0), amount.NewAmount(40, 0))
		liquidity := is[2].(*amount.Amount)
		pair := tc.MustCall(ex.Factory, "GetPair", tokenA, tokenB)[0].(common.Address)
		tokenApprove(pair, aliceKey, ex.Router)

		_, err := tc.SendTx(aliceKey, ex.Router, "RemoveLiquidity", tokenA, tokenB, liquidity, amount.NewAmount(10, 0), amount.NewAmount(0, 0), alice, deadline())
		expectRevert(err, "Router: INSUFFICIENT_A_AMOUNT")
		Expect(tokenBalanceOf(pair, alice)).To(Equal(liquidity))
	})

	It("SwapExactTokensForTokens", func() {
		routerAddLiquidity(amount.NewAmount(10, 0), amount.NewAmount(40, 0))
		path := []common.Address{tokenA, tokenB}
		amountIn := amount.NewAmount(1, 0)

		expected := tc.MustCall(ex.Router, "GetAmountsOut", amountIn, path)[0].([]*amount.Amount)
		before := tokenBalanceOf(tokenB, bob)
		is, err := tc.SendTx(aliceKey, ex.Router, "SwapExactTokensForTokens", amountIn, amount.NewAmount(0, 0), path, bob, deadline())
		Expect(err).To(Succeed())
		Expect(is[0]).To(Equal(expected))
		Expect(tokenBalanceOf(tokenB, bob).Sub(before)).To(Equal(expected[1]))

		_, err = tc.SendTx(aliceKey, ex.Router, "SwapExactTokensForTokens", amountIn, amount.NewAmount(4, 0), path, bob, deadline())
		expectRevert(err, "Router: INSUFFICIENT_OUTPUT_AMOUNT")
	})

	It("SwapTokensForExactTokens", func() {
		routerAddLiquidity(amount.NewAmount(10, 0), amount.NewAmount(40, 0))
		path := []common.Address{tokenA, tokenB}
		amountOut := amount.NewAmount(2, 0)

		expected := tc.MustCall(ex.Router, "GetAmountsIn", amountOut, path)[0].([]*amount.Amount)
		_, err := tc.SendTx(aliceKey, ex.Router, "SwapTokensForExactTokens", amountOut, expected[0].Sub(amount.NewAmountFromBig(big.NewInt(1))), path, bob, deadline())
		expectRevert(err, "Router: EXCESSIVE_INPUT_AMOUNT")

		beforeA := tokenBalanceOf(tokenA, alice)
		beforeB := tokenBalanceOf(tokenB, bob)
		is, err := tc.SendTx(aliceKey, ex.Router, "SwapTokensForExactTokens", amountOut, expected[0], path, bob, deadline())
		Expect(err).To(Succeed())
		Expect(is[0]).To(Equal(expected))
		Expect(beforeA.Sub(tokenBalanceOf(tokenA, alice))).To(Equal(expected[0]))
		Expect(tokenBalanceOf(tokenB, bob).Sub(beforeB)).To(Equal(amountOut))
	})

	It("Swap : multi hop", func() {
		tokenC := tc.MakeToken("Token C", "TKC", 18, _SupplyTokens)
		tokenTransfer(tokenC, AdminKey, alice, amount.NewAmount(10000, 0))
		tokenApprove(tokenC, aliceKey, ex.Router)
		routerAddLiquidity(amount.NewAmount(10, 0), amount.NewAmount(40, 0))
		_, err := tc.SendTx(aliceKey, ex.Router, "AddLiquidity", tokenB, tokenC, amount.NewAmount(40, 0), amount.NewAmount(40, 0), amount.NewAmount(0, 0), amount.NewAmount(0, 0), alice, deadline())
		Expect(err).To(Succeed())

		path := []common.Address{tokenA, tokenB, tokenC}
		expected := tc.MustCall(ex.Router, "GetAmountsOut", amount.NewAmount(1, 0), path)[0].([]*amount.Amount)
		Expect(expected).To(HaveLen(3))

		is, err := tc.SendTx(aliceKey, ex.Router, "SwapExactTokensForTokens", amount.NewAmount(1, 0), amount.NewAmount(0, 0), path, bob, deadline())
		Expect(err).To(Succeed())
		Expect(is[0]).To(Equal(expected))
		Expect(tokenBalanceOf(tokenC, bob)).To(Equal(expected[2]))
	})

	It("Swap : invalid path", func() {
		routerAddLiquidity(amount.NewAmount(10, 0), amount.NewAmount(40, 0))
		_, err := tc.SendTx(aliceKey, ex.Router, "SwapExactTokensForTokens", amount.NewAmount(1, 0), amount.NewAmount(0, 0), []common.Address{tokenA}, bob, deadline())
		expectRevert(err, "Router: INVALID_PATH")
	})

	It("Expired", func() {
		routerAddLiquidity(amount.NewAmount(10, 0), amount.NewAmount(40, 0))
		_, err := tc.SendTx(aliceKey, ex.Router, "SwapExactTokensForTokens", amount.NewAmount(1, 0), amount.NewAmount(0, 0), []common.Address{tokenA, tokenB}, bob, tc.Now())
		expectRevert(err, "Router: EXPIRED")
	})

	It("AddLiquidityETH, SwapExactETHForTokens", func() {
		is, err := tc.SendValue(aliceKey, ex.Router, amount.NewAmount(10, 0), "AddLiquidityETH", tokenA, amount.NewAmount(40, 0), amount.NewAmount(0, 0), amount.NewAmount(0, 0), alice, deadline())
		Expect(err).To(Succeed())
		Expect(is[1]).To(Equal(amount.NewAmount(10, 0)))
		pair := tc.MustCall(ex.Factory, "GetPair", tokenA, ex.WNative)[0].(common.Address)
		Expect(tokenBalanceOf(ex.WNative, pair)).To(Equal(amount.NewAmount(10, 0)))

		// the surplus value comes back
		native := tc.Balance(alice)
		is, err = tc.SendValue(aliceKey, ex.Router, amount.NewAmount(20, 0), "AddLiquidityETH", tokenA, amount.NewAmount(40, 0), amount.NewAmount(0, 0), amount.NewAmount(0, 0), alice, deadline())
		Expect(err).To(Succeed())
		Expect(is[1]).To(Equal(amount.NewAmount(10, 0)))
		Expect(native.Sub(tc.Balance(alice))).To(Equal(amount.NewAmount(10, 0)))

		path := []common.Address{ex.WNative, tokenA}
		expected := tc.MustCall(ex.Router, "GetAmountsOut", amount.NewAmount(1, 0), path)[0].([]*amount.Amount)
		before := tokenBalanceOf(tokenA, bob)
		is, err = tc.SendValue(bobKey, ex.Router, amount.NewAmount(1, 0), "SwapExactETHForTokens", amount.NewAmount(0, 0), path, bob, deadline())
		Expect(err).To(Succeed())
		Expect(is[0]).To(Equal(expected))
		Expect(tokenBalanceOf(tokenA, bob).Sub(before)).To(Equal(expected[1]))

		_, err = tc.SendValue(bobKey, ex.Router, amount.NewAmount(1, 0), "SwapExactETHForTokens", amount.NewAmount(0, 0), []common.Address{tokenA, ex.WNative}, bob, deadline())
		expectRevert(err, "Router: INVALID_PATH")
	})

	It("Payable", func() {
		routerAddLiquidity(amount.NewAmount(10, 0), amount.NewAmount(40, 0))
		_, err := tc.SendValue(aliceKey, ex.Router, amount.NewAmount(1, 0), "SwapExactTokensForTokens", amount.NewAmount(1, 0), amount.NewAmount(0, 0), []common.Address{tokenA, tokenB}, bob, deadline())
		Expect(err).To(HaveOccurred())
	})
})
