package util

import (
	"fmt"
	"math/big"

	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/key"
	"github.com/meverselabs/useswap/contract/exchange/factory"
	"github.com/meverselabs/useswap/contract/exchange/router"
	"github.com/meverselabs/useswap/contract/exchange/trade"
	"github.com/meverselabs/useswap/contract/token"
	"github.com/meverselabs/useswap/contract/useswap"
	"github.com/meverselabs/useswap/core/types"
)

var (
	ChainID = big.NewInt(1)

	// 2026-01-01T00:00:00Z
	GenesisTimestamp = uint64(1767225600) * 1000000000

	AdminKey, _ = key.NewMemoryKeyFromString("a000000000000000000000000000000000000000000000000000000000000999")
	Admin       = AdminKey.Address()
	Users       []common.Address
	UserKeys    []key.Key
)

var ClassMap map[string]uint64

func init() {
	ClassMap = map[string]uint64{}
	RegisterContractClass(&token.TokenContract{}, "Token")
	RegisterContractClass(&factory.FactoryContract{}, "Factory")
	RegisterContractClass(&router.RouterContract{}, "Router")
	RegisterContractClass(&trade.UniSwap{}, "UniSwap")
	RegisterContractClass(&useswap.UseSwapContract{}, "UseSwap")

	UserKeys = []key.Key{}
	for i := 998; i > 988; i-- {
		k, err := key.NewMemoryKeyFromString(fmt.Sprintf("a000000000000000000000000000000000000000000000000000000000000%3v", i))
		if err != nil {
			panic(err)
		}
		UserKeys = append(UserKeys, k)
	}
	Users = []common.Address{}
	for _, k := range UserKeys {
		Users = append(Users, k.Address())
	}
}

func RegisterContractClass(cont types.Contract, className string) uint64 {
	ClassID, err := types.RegisterContractType(cont)
	if err != nil {
		panic(err)
	}
	ClassMap[className] = ClassID
	return ClassID
}
