package util

import (
	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
	"github.com/meverselabs/useswap/core/types"
)

// NativeSupply is the native coin balance every test account starts with
var NativeSupply = amount.NewAmount(1000000, 0)

type TestContext struct {
	Ctx *types.Context
}

func NewTestContext() *TestContext {
	tc := &TestContext{
		Ctx: types.NewEmptyContext(ChainID, GenesisTimestamp),
	}
	tc.Ctx.SetBalance(Admin, NativeSupply.Clone())
	for _, u := range Users {
		tc.Ctx.SetBalance(u, NativeSupply.Clone())
	}
	tc.Sleep(60)
	return tc
}

/////////// context ///////////

// Now returns the block time in unix seconds
func (tc *TestContext) Now() uint64 {
	return tc.Ctx.LastTimestamp() / 1000000000
}

// Sleep moves the chain to a new context the seconds later
func (tc *TestContext) Sleep(seconds uint64) {
	tc.Ctx = tc.Ctx.NextContext(tc.Ctx.LastTimestamp() + seconds*1000000000)
}

func (tc *TestContext) Balance(addr common.Address) *amount.Amount {
	return tc.Ctx.Balance(addr)
}
