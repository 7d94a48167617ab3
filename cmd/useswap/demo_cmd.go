package main

import (
	"math/big"
	"time"

	"github.com/meverselabs/useswap/cmd/app"
	"github.com/meverselabs/useswap/core/types"
	"github.com/meverselabs/useswap/service/apiserver"
	"github.com/spf13/cobra"
)

func demoCommand(pConfigPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "deploys the environment in memory, runs a swap, an add and a remove through the wrapper and prints the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*pConfigPath)
			if err != nil {
				return err
			}
			k, err := cfg.Key()
			if err != nil {
				return err
			}
			genesis := uint64(time.Now().Add(-time.Minute).UnixNano())
			c := apiserver.NewMemoryChain(types.NewEmptyContext(new(big.Int).SetUint64(cfg.ChainID), genesis))

			var env *app.Environment
			if err := c.Update(func(ctx *types.Context) error {
				env, err = app.Deploy(ctx, cfg, k.Address())
				return err
			}); err != nil {
				return err
			}
			res, err := app.RunScenario(app.NewClient(c, k), env, cfg)
			if err != nil {
				return err
			}
			return printJSON(res)
		},
	}
}
