package util

import (
	"io"

	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
	"github.com/meverselabs/useswap/common/bin"
	"github.com/meverselabs/useswap/contract/exchange/factory"
	"github.com/meverselabs/useswap/contract/exchange/router"
	"github.com/meverselabs/useswap/contract/exchange/trade"
	"github.com/meverselabs/useswap/contract/token"
	"github.com/meverselabs/useswap/contract/useswap"
	"github.com/meverselabs/useswap/core/types"
)

func (tc *TestContext) DeployContract(contType types.Contract, contArgs io.WriterTo) common.Address {
	bs, _, err := bin.WriterToBytes(contArgs)
	if err != nil {
		panic(err)
	}
	cont, err := tc.Ctx.DeployContract(Admin, types.ClassIDOf(contType), bs)
	if err != nil {
		panic(err)
	}
	return cont.Address()
}

// MakeToken deploys a token whose whole supply belongs to the admin
func (tc *TestContext) MakeToken(name string, symbol string, decimals uint8, amt *amount.Amount) common.Address {
	return tc.DeployContract(&token.TokenContract{}, &token.TokenContractConstruction{
		Name:     name,
		Symbol:   symbol,
		Decimals: decimals,
		InitialSupplyMap: map[common.Address]*amount.Amount{
			Admin: amt,
		},
	})
}

func (tc *TestContext) MakeWrappedNative() common.Address {
	return tc.DeployContract(&token.TokenContract{}, &token.TokenContractConstruction{
		Name:    "Wrapped Native",
		Symbol:  "WNATIVE",
		Wrapped: true,
	})
}

// Exchange is a deployed factory and router pair
type Exchange struct {
	Factory common.Address
	Router  common.Address
	WNative common.Address
}

func (tc *TestContext) MakeExchange() *Exchange {
	ex := &Exchange{}
	ex.WNative = tc.MakeWrappedNative()
	ex.Factory = tc.DeployContract(&factory.FactoryContract{}, &factory.FactoryContractConstruction{
		Owner: Admin,
		Fee:   trade.DEFAULT_FEE,
	})
	ex.Router = tc.DeployContract(&router.RouterContract{}, &router.RouterContractConstruction{
		Factory: ex.Factory,
		WNative: ex.WNative,
	})
	return ex
}

func (tc *TestContext) MakeUseSwap(routerAddr common.Address) common.Address {
	return tc.DeployContract(&useswap.UseSwapContract{}, &useswap.UseSwapContractConstruction{
		Router: routerAddr,
	})
}

func (tc *TestContext) BalanceOf(token, owner common.Address) *amount.Amount {
	return tc.MustCall(token, "BalanceOf", owner)[0].(*amount.Amount)
}

func (tc *TestContext) Allowance(token, owner, spender common.Address) *amount.Amount {
	return tc.MustCall(token, "Allowance", owner, spender)[0].(*amount.Amount)
}
