package useswap_test

import (
	"math/big"

	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
	"github.com/meverselabs/useswap/contract/useswap"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ABI", func() {

	It("decodes handleSwap calldata into a callable method", func() {
		amountOut := amount.NewAmount(20, 0)
		amountInMax := amount.NewAmountFromUnits(1000, 6)
		path := []common.Address{tokenX, tokenY}
		dl := deadline()

		data, err := useswap.EncodeCall("handleSwap", amountOut.Int, amountInMax.Int, path, alice, new(big.Int).SetUint64(dl))
		Expect(err).To(Succeed())
		Expect(data[:4]).To(Equal(useswap.ABI.Methods["handleSwap"].ID))

		method, args, err := useswap.DecodeCall(data)
		Expect(err).To(Succeed())
		Expect(method).To(Equal("handleSwap"))
		Expect(args).To(HaveLen(5))
		Expect(args[0].(*big.Int).Cmp(amountOut.Int)).To(Equal(0))
		Expect(args[2]).To(Equal(path))
		Expect(args[3]).To(Equal(alice))

		approve(tokenX, aliceKey, use, amountInMax)
		_, err = tc.SendTx(aliceKey, use, method, args...)
		Expect(err).To(Succeed())
		Expect(swapCount()).To(Equal(uint64(1)))
	})

	It("rejects unknown selectors", func() {
		_, _, err := useswap.DecodeCall([]byte{0xde, 0xad, 0xbe, 0xef})
		Expect(err).To(HaveOccurred())

		_, _, err = useswap.DecodeCall([]byte{0x01})
		Expect(err).To(HaveOccurred())
	})

	It("describes every operation", func() {
		for _, name := range []string{"handleSwap", "handleETHSwapForTokens", "addLiquidity", "addLiquidityETH", "removeLiquidity", "swapCount", "uniswapRouter"} {
			_, has := useswap.ABI.Methods[name]
			Expect(has).To(BeTrue(), name)
		}
		Expect(useswap.ABI.Methods["handleETHSwapForTokens"].IsPayable()).To(BeTrue())
	})
})
