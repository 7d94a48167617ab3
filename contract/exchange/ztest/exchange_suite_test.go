package test

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

func TestExchange(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Exchange Suite")
}

var (
	tc *TestContext
	ex *Exchange

	aliceKey, bobKey key.Key
	alice, bob       common.Address

	tokenA, tokenB common.Address

	_SupplyTokens = amount.NewAmount(1000000, 0)
	MaxUint256    = amount.NewAmountFromBig(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1)))
)

var _ = BeforeEach(func() {
	tc = NewTestContext()
	ex = tc.MakeExchange()

	aliceKey, bobKey = UserKeys[0], UserKeys[1]
	alice, bob = Users[0], Users[1]

	tokenA = tc.MakeToken("Token A", "TKA", 18, _SupplyTokens)
	tokenB = tc.MakeToken("Token B", "TKB", 18, _SupplyTokens)
	for _, tk := range []common.Address{tokenA, tokenB} {
		tokenTransfer(tk, AdminKey, alice, amount.NewAmount(10000, 0))
		tokenTransfer(tk, AdminKey, bob, amount.NewAmount(10000, 0))
	}
})

func tokenTransfer(token common.Address, from key.Key, to common.Address, am *amount.Amount) {
	_, err := tc.SendTx(from, token, "Transfer", to, am)
	Expect(err).To(Succeed())
}

func tokenApprove(token common.Address, owner key.Key, spender common.Address) {
	_, err := tc.SendTx(owner, token, "Approve", spender, MaxUint256)
	Expect(err).To(Succeed())
}

func tokenBalanceOf(token, owner common.Address) *amount.Amount {
	return tc.BalanceOf(token, owner)
}

func createPair(tkA, tkB common.Address) common.Address {
	is, err := tc.SendTx(aliceKey, ex.Factory, "CreatePair", tkA, tkB)
	Expect(err).To(Succeed())
	return is[0].(common.Address)
}

func pairTokens(pair common.Address) (common.Address, common.Address) {
	t0 := tc.MustCall(pair, "Token0")[0].(common.Address)
	t1 := tc.MustCall(pair, "Token1")[0].(common.Address)
	return t0, t1
}

func pairReserves(pair common.Address) (*amount.Amount, *amount.Amount) {
	rs := tc.MustCall(pair, "Reserves")[0].([]*amount.Amount)
	return rs[0], rs[1]
}

// addLiquidity sends the amounts to the pair directly and mints the liquidity to the owner
func addLiquidity(pair common.Address, owner key.Key, am0, am1 *amount.Amount) *amount.Amount {
	t0, t1 := pairTokens(pair)
	tokenTransfer(t0, owner, pair, am0)
	tokenTransfer(t1, owner, pair, am1)
	is, err := tc.SendTx(owner, pair, "Mint", owner.Address())
	Expect(err).To(Succeed())
	return is[0].(*amount.Amount)
}

func deadline() uint64 {
	return tc.Now() + 600
}

func expectRevert(err error, msg string) {
	Expect(err).To(HaveOccurred())
	Expect(strings.Contains(err.Error(), msg)).To(BeTrue(), err.Error())
}
