package useswap_test

import (
	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
	"github.com/meverselabs/useswap/common/bin"
	exutil "github.com/meverselabs/useswap/contract/exchange/util"
	"github.com/meverselabs/useswap/contract/useswap"
	"github.com/meverselabs/useswap/core/types"
	. "github.com/meverselabs/useswap/extern/test/util"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("UseSwap", func() {

	Describe("Deployment", func() {
		It("UniswapRouter, SwapCount", func() {
			Expect(tc.MustCall(use, "UniswapRouter")[0]).To(Equal(ex.Router))
			Expect(tc.MustCall(use, "uniswapRouter")[0]).To(Equal(ex.Router))
			Expect(swapCount()).To(Equal(uint64(0)))
		})

		It("zero router", func() {
			bs := bin.MustWriterToBytes(&useswap.UseSwapContractConstruction{Router: common.ZeroAddr})
			_, err := tc.Ctx.DeployContract(Admin, types.ClassIDOf(&useswap.UseSwapContract{}), bs)
			expectRevert(err, "UseSwap: ZERO_ROUTER")
		})
	})

	Describe("HandleSwap", func() {
		amountOut := amount.NewAmount(20, 0)
		amountInMax := amount.NewAmountFromUnits(1000, 6)

		It("swaps the exact output and refunds the unspent input", func() {
			approve(tokenX, aliceKey, use, amountInMax)
			beforeX := tc.BalanceOf(tokenX, alice)
			beforeY := tc.BalanceOf(tokenY, alice)
			expected := tc.MustCall(ex.Router, "GetAmountsIn", amountOut, []common.Address{tokenX, tokenY})[0].([]*amount.Amount)

			is, err := tc.SendTx(aliceKey, use, "HandleSwap", amountOut, amountInMax, []common.Address{tokenX, tokenY}, alice, deadline())
			Expect(err).To(Succeed())
			Expect(is[0]).To(Equal(expected))

			Expect(swapCount()).To(Equal(uint64(1)))
			Expect(tc.BalanceOf(tokenY, alice).Sub(beforeY)).To(Equal(amountOut))
			Expect(beforeX.Sub(tc.BalanceOf(tokenX, alice))).To(Equal(expected[0]))
			Expect(expected[0].Less(amountInMax)).To(BeTrue())
			Expect(tc.Allowance(tokenX, alice, use).IsZero()).To(BeTrue())
			expectNoCustody(tokenX, tokenY)
		})

		It("sends the output to the recipient", func() {
			bob := Users[1]
			approve(tokenX, aliceKey, use, amountInMax)
			_, err := tc.SendTx(aliceKey, use, "handleSwap", amountOut, amountInMax, []common.Address{tokenX, tokenY}, bob, deadline())
			Expect(err).To(Succeed())
			Expect(tc.BalanceOf(tokenY, bob)).To(Equal(amountOut))
		})

		It("excessive input keeps the balances", func() {
			approve(tokenX, aliceKey, use, amountInMax)
			before := tc.BalanceOf(tokenX, alice)

			_, err := tc.SendTx(aliceKey, use, "HandleSwap", amountOut, amount.NewAmountFromUnits(10, 6), []common.Address{tokenX, tokenY}, alice, deadline())
			expectRevert(err, "Router: EXCESSIVE_INPUT_AMOUNT")

			Expect(tc.BalanceOf(tokenX, alice)).To(Equal(before))
			Expect(swapCount()).To(Equal(uint64(0)))
			expectNoCustody(tokenX)
		})

		It("expired deadline", func() {
			approve(tokenX, aliceKey, use, amountInMax)
			_, err := tc.SendTx(aliceKey, use, "HandleSwap", amountOut, amountInMax, []common.Address{tokenX, tokenY}, alice, tc.Now())
			expectRevert(err, "Router: EXPIRED")
			Expect(swapCount()).To(Equal(uint64(0)))
		})

		It("without allowance", func() {
			_, err := tc.SendTx(aliceKey, use, "HandleSwap", amountOut, amountInMax, []common.Address{tokenX, tokenY}, alice, deadline())
			expectRevert(err, "Token: TRANSFER_EXCEED_ALLOWANCE")
			Expect(swapCount()).To(Equal(uint64(0)))
		})

		It("invalid path", func() {
			approve(tokenX, aliceKey, use, amountInMax)
			_, err := tc.SendTx(aliceKey, use, "HandleSwap", amountOut, amountInMax, []common.Address{tokenX}, alice, deadline())
			expectRevert(err, "UseSwap: INVALID_PATH")
		})

		It("pool without liquidity", func() {
			tokenZ := tc.MakeToken("Uniswap", "UNI", 18, amount.NewAmount(1000, 0))
			approve(tokenX, aliceKey, use, amountInMax)
			_, err := tc.SendTx(aliceKey, use, "HandleSwap", amountOut, amountInMax, []common.Address{tokenX, tokenZ}, alice, deadline())
			Expect(err).To(HaveOccurred())
			Expect(swapCount()).To(Equal(uint64(0)))
		})

		It("not payable", func() {
			approve(tokenX, aliceKey, use, amountInMax)
			_, err := tc.SendValue(aliceKey, use, amount.NewAmount(1, 0), "HandleSwap", amountOut, amountInMax, []common.Address{tokenX, tokenY}, alice, deadline())
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Liquidity", func() {
		BeforeEach(func() {
			approve(tokenX, aliceKey, use, MaxUint256)
			approve(tokenY, aliceKey, use, MaxUint256)
		})

		It("AddLiquidity refunds the unused amount", func() {
			beforeY := tc.BalanceOf(tokenY, alice)
			is, err := tc.SendTx(aliceKey, use, "AddLiquidity", tokenX, tokenY,
				amount.NewAmountFromUnits(1000, 6), amount.NewAmount(2000, 0), zero, zero, alice, deadline())
			Expect(err).To(Succeed())

			Expect(is[0]).To(Equal(amount.NewAmountFromUnits(1000, 6)))
			Expect(is[1]).To(Equal(amount.NewAmount(1000, 0)))
			Expect(beforeY.Sub(tc.BalanceOf(tokenY, alice))).To(Equal(amount.NewAmount(1000, 0)))
			Expect(tc.BalanceOf(pairOf(tokenX, tokenY), alice)).To(Equal(is[2]))
			Expect(swapCount()).To(Equal(uint64(1)))
			expectNoCustody(tokenX, tokenY)
		})

		It("AddLiquidity minimum", func() {
			_, err := tc.SendTx(aliceKey, use, "AddLiquidity", tokenX, tokenY,
				amount.NewAmountFromUnits(1000, 6), amount.NewAmount(2000, 0), zero, amount.NewAmount(1500, 0), alice, deadline())
			expectRevert(err, "Router: INSUFFICIENT_B_AMOUNT")
			Expect(swapCount()).To(Equal(uint64(0)))
		})

		It("RemoveLiquidity", func() {
			is, err := tc.SendTx(aliceKey, use, "AddLiquidity", tokenX, tokenY,
				amount.NewAmountFromUnits(1000, 6), amount.NewAmount(1000, 0), zero, zero, alice, deadline())
			Expect(err).To(Succeed())
			liquidity := is[2].(*amount.Amount)
			pair := pairOf(tokenX, tokenY)
			approve(pair, aliceKey, use, liquidity)

			beforeX := tc.BalanceOf(tokenX, alice)
			is, err = tc.SendTx(aliceKey, use, "RemoveLiquidity", tokenX, tokenY, liquidity, zero, zero, alice, deadline(), pair)
			Expect(err).To(Succeed())

			Expect(tc.BalanceOf(tokenX, alice).Sub(beforeX)).To(Equal(is[0]))
			Expect(tc.BalanceOf(pair, alice).IsZero()).To(BeTrue())
			Expect(swapCount()).To(Equal(uint64(2)))
			expectNoCustody(tokenX, tokenY, pair)
		})

		It("RemoveLiquidity more than owned", func() {
			is, err := tc.SendTx(aliceKey, use, "AddLiquidity", tokenX, tokenY,
				amount.NewAmountFromUnits(1000, 6), amount.NewAmount(1000, 0), zero, zero, alice, deadline())
			Expect(err).To(Succeed())
			liquidity := is[2].(*amount.Amount)
			pair := pairOf(tokenX, tokenY)
			approve(pair, aliceKey, use, MaxUint256)

			_, err = tc.SendTx(aliceKey, use, "RemoveLiquidity", tokenX, tokenY, liquidity.MulC(2), zero, zero, alice, deadline(), pair)
			expectRevert(err, "LPToken: TRANSFER_EXCEED_BALANCE")
			Expect(tc.BalanceOf(pair, alice)).To(Equal(liquidity))
			Expect(swapCount()).To(Equal(uint64(1)))
		})
	})

	Describe("Native", func() {
		BeforeEach(func() {
			_, err := tc.SendValue(AdminKey, ex.Router, amount.NewAmount(100, 0), "AddLiquidityETH", tokenY,
				amount.NewAmount(100, 0), zero, zero, Admin, deadline())
			Expect(err).To(Succeed())
		})

		It("HandleETHSwapForTokens", func() {
			path := []common.Address{ex.WNative, tokenY}
			value := amount.NewAmount(1, 0)
			expected := tc.MustCall(ex.Router, "GetAmountsOut", value, path)[0].([]*amount.Amount)
			beforeY := tc.BalanceOf(tokenY, alice)
			beforeNative := tc.Balance(alice)

			is, err := tc.SendValue(aliceKey, use, value, "HandleETHSwapForTokens", zero, path, alice, deadline())
			Expect(err).To(Succeed())
			Expect(is[0]).To(Equal(expected))

			Expect(tc.BalanceOf(tokenY, alice).Sub(beforeY)).To(Equal(expected[1]))
			Expect(beforeNative.Sub(tc.Balance(alice))).To(Equal(value))
			Expect(swapCount()).To(Equal(uint64(1)))
			expectNoCustody(ex.WNative, tokenY)
		})

		It("HandleETHSwapForTokens without value", func() {
			_, err := tc.SendTx(aliceKey, use, "HandleETHSwapForTokens", zero, []common.Address{ex.WNative, tokenY}, alice, deadline())
			expectRevert(err, "UseSwap: ZERO_VALUE")
			Expect(swapCount()).To(Equal(uint64(0)))
		})

		It("HandleETHSwapForTokens minimum output", func() {
			before := tc.Balance(alice)
			_, err := tc.SendValue(aliceKey, use, amount.NewAmount(1, 0), "HandleETHSwapForTokens", amount.NewAmount(1, 0), []common.Address{ex.WNative, tokenY}, alice, deadline())
			expectRevert(err, "Router: INSUFFICIENT_OUTPUT_AMOUNT")
			Expect(tc.Balance(alice)).To(Equal(before))
		})

		It("AddLiquidityETH refunds the native surplus", func() {
			approve(tokenY, aliceKey, use, MaxUint256)
			before := tc.Balance(alice)

			is, err := tc.SendValue(aliceKey, use, amount.NewAmount(20, 0), "AddLiquidityETH", tokenY, amount.NewAmount(10, 0), zero, zero, alice, deadline())
			Expect(err).To(Succeed())
			Expect(is[0]).To(Equal(amount.NewAmount(10, 0)))
			Expect(is[1]).To(Equal(amount.NewAmount(10, 0)))

			Expect(before.Sub(tc.Balance(alice))).To(Equal(amount.NewAmount(10, 0)))
			Expect(tc.BalanceOf(pairOf(tokenY, ex.WNative), alice)).To(Equal(is[2]))
			Expect(swapCount()).To(Equal(uint64(1)))
			expectNoCustody(tokenY, ex.WNative)
		})
	})

	Describe("Scenario", func() {
		It("swap, add and remove liquidity", func() {
			approve(tokenX, aliceKey, use, amount.NewAmountFromUnits(1000, 6))
			is, err := tc.SendTx(aliceKey, use, "handleSwap", amount.NewAmount(20, 0), amount.NewAmountFromUnits(1000, 6), []common.Address{tokenX, tokenY}, alice, deadline())
			Expect(err).To(Succeed())
			Expect(swapCount()).To(Equal(uint64(1)))
			exutil.GPrintlnT("swap amounts", is[0])

			approve(tokenX, aliceKey, use, amount.NewAmountFromUnits(1000, 6))
			approve(tokenY, aliceKey, use, amount.NewAmount(1000, 0))
			is, err = tc.SendTx(aliceKey, use, "addLiquidity", tokenX, tokenY,
				amount.NewAmountFromUnits(1000, 6), amount.NewAmount(1000, 0), zero, zero, alice, deadline())
			Expect(err).To(Succeed())
			Expect(swapCount()).To(Equal(uint64(2)))
			expectNoCustody(tokenX, tokenY)

			liquidity := is[2].(*amount.Amount)
			exutil.GPrintlnT("liquidity", liquidity)
			pair := pairOf(tokenX, tokenY)
			approve(pair, aliceKey, use, liquidity)
			_, err = tc.SendTx(aliceKey, use, "removeLiquidity", tokenX, tokenY, liquidity, zero, zero, alice, deadline(), pair)
			Expect(err).To(Succeed())
			Expect(swapCount()).To(Equal(uint64(3)))
			expectNoCustody(tokenX, tokenY, pair)
		})
	})
})
