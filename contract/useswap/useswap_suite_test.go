package useswap_test

import (
	"math/big"
	"strings"
	"testing"

	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
	"github.com/meverselabs/useswap/common/key"
	. "github.com/meverselabs/useswap/extern/test/util"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestUseSwap(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "UseSwap Suite")
}

var (
	tc  *TestContext
	ex  *Exchange
	use common.Address

	aliceKey key.Key
	alice    common.Address

	// 6 decimals
	tokenX common.Address
	// 18 decimals
	tokenY common.Address

	MaxUint256 = amount.NewAmountFromBig(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1)))
	zero       = amount.NewAmount(0, 0)
)

var _ = BeforeEach(func() {
	tc = NewTestContext()
	ex = tc.MakeExchange()
	use = tc.MakeUseSwap(ex.Router)

	aliceKey, alice = UserKeys[0], Users[0]

	tokenX = tc.MakeToken("USD Coin", "USDC", 6, amount.NewAmountFromUnits(10000000, 6))
	tokenY = tc.MakeToken("Dai Stablecoin", "DAI", 18, amount.NewAmount(10000000, 0))

	approve(tokenX, AdminKey, ex.Router, MaxUint256)
	approve(tokenY, AdminKey, ex.Router, MaxUint256)
	_, err := tc.SendTx(AdminKey, ex.Router, "AddLiquidity", tokenX, tokenY,
		amount.NewAmountFromUnits(100000, 6), amount.NewAmount(100000, 0), zero, zero, Admin, deadline())
	Expect(err).To(Succeed())

	transfer(tokenX, AdminKey, alice, amount.NewAmountFromUnits(10000, 6))
	transfer(tokenY, AdminKey, alice, amount.NewAmount(10000, 0))
})

func transfer(token common.Address, from key.Key, to common.Address, am *amount.Amount) {
	_, err := tc.SendTx(from, token, "Transfer", to, am)
	Expect(err).To(Succeed())
}

func approve(token common.Address, owner key.Key, spender common.Address, am *amount.Amount) {
	_, err := tc.SendTx(owner, token, "Approve", spender, am)
	Expect(err).To(Succeed())
}

func swapCount() uint64 {
	return tc.MustCall(use, "SwapCount")[0].(uint64)
}

func pairOf(tkA, tkB common.Address) common.Address {
	return tc.MustCall(ex.Factory, "GetPair", tkA, tkB)[0].(common.Address)
}

func deadline() uint64 {
	return tc.Now() + 600
}

func expectRevert(err error, msg string) {
	Expect(err).To(HaveOccurred())
	Expect(strings.Contains(err.Error(), msg)).To(BeTrue(), err.Error())
}

// expectNoCustody checks the wrapper holds nothing and grants the router nothing after an operation
func expectNoCustody(tokens ...common.Address) {
	for _, tk := range tokens {
		Expect(tc.BalanceOf(tk, use).IsZero()).To(BeTrue())
		Expect(tc.Allowance(tk, use, ex.Router).IsZero()).To(BeTrue())
	}
	Expect(tc.Balance(use).IsZero()).To(BeTrue())
}
