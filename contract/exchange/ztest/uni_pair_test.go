package test

import (
	"math/big"

	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
	"github.com/meverselabs/useswap/contract/exchange/trade"
	. "github.com/meverselabs/useswap/extern/test/util"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("UniSwap Pair", func() {
	var pair, token0, token1 common.Address

	BeforeEach(func() {
		pair = createPair(tokenA, tokenB)
		token0, token1 = pairTokens(pair)
	})

	It("Mint", func() {
		am0 := amount.NewAmount(1, 0)
		am1 := amount.NewAmount(4, 0)
		liquidity := addLiquidity(pair, aliceKey, am0, am1)

		expected := amount.NewAmount(2, 0).Sub(amount.NewAmountFromBig(big.NewInt(trade.MINIMUM_LIQUIDITY)))
		Expect(liquidity).To(Equal(expected))
		Expect(tc.MustCall(pair, "TotalSupply")[0]).To(Equal(amount.NewAmount(2, 0)))
		Expect(tokenBalanceOf(pair, alice)).To(Equal(expected))
		Expect(tokenBalanceOf(pair, common.ZeroAddr)).To(Equal(amount.NewAmountFromBig(big.NewInt(trade.MINIMUM_LIQUIDITY))))

		r0, r1 := pairReserves(pair)
		Expect(r0).To(Equal(am0))
		Expect(r1).To(Equal(am1))
		Expect(tokenBalanceOf(token0, pair)).To(Equal(am0))
		Expect(tokenBalanceOf(token1, pair)).To(Equal(am1))
	})

	It("Mint : insufficient liquidity minted", func() {
		tokenTransfer(token0, aliceKey, pair, amount.NewAmountFromBig(big.NewInt(1000)))
		tokenTransfer(token1, aliceKey, pair, amount.NewAmountFromBig(big.NewInt(1000)))
		_, err := tc.SendTx(aliceKey, pair, "Mint", alice)
		expectRevert(err, "Exchange: INSUFFICIENT_LIQUIDITY_MINTED")
	})

	It("Swap : token0 in", func() {
		addLiquidity(pair, aliceKey, amount.NewAmount(5, 0), amount.NewAmount(10, 0))

		in := amount.NewAmount(1, 0)
		out, err := trade.UniGetAmountOut(trade.DEFAULT_FEE, in.Int, amount.NewAmount(5, 0).Int, amount.NewAmount(10, 0).Int)
		Expect(err).To(Succeed())
		tokenTransfer(token0, aliceKey, pair, in)

		_, err = tc.SendTx(aliceKey, pair, "Swap", amount.NewAmount(0, 0), amount.NewAmountFromBig(new(big.Int).Add(out, big.NewInt(1))), alice)
		expectRevert(err, "Exchange: K")

		before := tokenBalanceOf(token1, alice)
		_, err = tc.SendTx(aliceKey, pair, "Swap", amount.NewAmount(0, 0), amount.NewAmountFromBig(out), alice)
		Expect(err).To(Succeed())
		Expect(tokenBalanceOf(token1, alice).Sub(before)).To(Equal(amount.NewAmountFromBig(out)))

		r0, r1 := pairReserves(pair)
		Expect(r0).To(Equal(amount.NewAmount(6, 0)))
		Expect(r1).To(Equal(amount.NewAmount(10, 0).Sub(amount.NewAmountFromBig(out))))
	})

	It("Swap : errors", func() {
		addLiquidity(pair, aliceKey, amount.NewAmount(5, 0), amount.NewAmount(10, 0))

		_, err := tc.SendTx(aliceKey, pair, "Swap", amount.NewAmount(0, 0), amount.NewAmount(0, 0), alice)
		expectRevert(err, "Exchange: INSUFFICIENT_OUTPUT_AMOUNT")

		_, err = tc.SendTx(aliceKey, pair, "Swap", amount.NewAmount(0, 0), amount.NewAmount(10, 0), alice)
		expectRevert(err, "Exchange: INSUFFICIENT_LIQUIDITY")

		_, err = tc.SendTx(aliceKey, pair, "Swap", amount.NewAmount(0, 0), amount.NewAmount(1, 0), token1)
		expectRevert(err, "Exchange: INVALID_TO")

		_, err = tc.SendTx(aliceKey, pair, "Swap", amount.NewAmount(0, 0), amount.NewAmount(1, 0), alice)
		expectRevert(err, "Exchange: INSUFFICIENT_INPUT_AMOUNT")
	})

	It("Burn", func() {
		am := amount.NewAmount(3, 0)
		liquidity := addLiquidity(pair, aliceKey, am, am)

		_, err := tc.SendTx(aliceKey, pair, "Transfer", pair, liquidity)
		Expect(err).To(Succeed())
		is, err := tc.SendTx(aliceKey, pair, "Burn", alice)
		Expect(err).To(Succeed())

		Expect(is[0]).To(Equal(liquidity))
		Expect(is[1]).To(Equal(liquidity))
		Expect(tokenBalanceOf(pair, alice).IsZero()).To(BeTrue())
		Expect(tc.MustCall(pair, "TotalSupply")[0]).To(Equal(amount.NewAmountFromBig(big.NewInt(trade.MINIMUM_LIQUIDITY))))
		Expect(tokenBalanceOf(token0, pair)).To(Equal(amount.NewAmountFromBig(big.NewInt(trade.MINIMUM_LIQUIDITY))))
		Expect(tokenBalanceOf(token1, pair)).To(Equal(amount.NewAmountFromBig(big.NewInt(trade.MINIMUM_LIQUIDITY))))
	})

	It("Burn : nothing sent", func() {
		addLiquidity(pair, aliceKey, amount.NewAmount(3, 0), amount.NewAmount(3, 0))
		_, err := tc.SendTx(aliceKey, pair, "Burn", alice)
		expectRevert(err, "Exchange: INSUFFICIENT_LIQUIDITY_BURNED")
	})

	It("Price0CumulativeLast, Price1CumulativeLast", func() {
		addLiquidity(pair, aliceKey, amount.NewAmount(3, 0), amount.NewAmount(3, 0))
		ts := tc.MustCall(pair, "BlockTimestampLast")[0].(uint64)

		_, err := tc.SendTx(aliceKey, pair, "Sync")
		Expect(err).To(Succeed())

		elapsed := tc.MustCall(pair, "BlockTimestampLast")[0].(uint64) - ts
		Expect(elapsed).To(BeNumerically(">", 0))
		expected := new(big.Int).Mul(big.NewInt(int64(elapsed)), amount.NewAmount(1, 0).Int)
		Expect(tc.MustCall(pair, "Price0CumulativeLast")[0]).To(Equal(amount.NewAmountFromBig(expected)))
		Expect(tc.MustCall(pair, "Price1CumulativeLast")[0]).To(Equal(amount.NewAmountFromBig(expected)))
	})

	It("Skim : onlyOwner", func() {
		addLiquidity(pair, aliceKey, amount.NewAmount(3, 0), amount.NewAmount(3, 0))
		tokenTransfer(token0, aliceKey, pair, amount.NewAmount(1, 0))

		_, err := tc.SendTx(aliceKey, pair, "Skim", alice)
		expectRevert(err, "Exchange: FORBIDDEN")

		_, err = tc.SendTx(AdminKey, pair, "Skim", bob)
		Expect(err).To(Succeed())
		Expect(tokenBalanceOf(token0, bob)).To(Equal(amount.NewAmount(10001, 0)))
	})

	It("KillMe", func() {
		_, err := tc.SendTx(AdminKey, pair, "KillMe")
		Expect(err).To(Succeed())
		Expect(tc.MustCall(pair, "IsKilled")[0]).To(BeTrue())

		tokenTransfer(token0, aliceKey, pair, amount.NewAmount(1, 0))
		tokenTransfer(token1, aliceKey, pair, amount.NewAmount(1, 0))
		_, err = tc.SendTx(aliceKey, pair, "Mint", alice)
		expectRevert(err, "Exchange: KILLED")

		_, err = tc.SendTx(AdminKey, pair, "UnkillMe")
		Expect(err).To(Succeed())
		_, err = tc.SendTx(aliceKey, pair, "Mint", alice)
		Expect(err).To(Succeed())
	})
})
