package main

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/meverselabs/useswap/cmd/app"
	"github.com/meverselabs/useswap/common/rlog"
	"github.com/meverselabs/useswap/core/backend"
	_ "github.com/meverselabs/useswap/core/backend/leveldb_driver"
	"github.com/meverselabs/useswap/core/types"
	"github.com/meverselabs/useswap/service/apiserver"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func serveCommand(pConfigPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "opens the store, deploys the environment on the first run and serves json rpc",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*pConfigPath)
			if err != nil {
				return err
			}
			return serve(cfg)
		},
	}
}

func serve(cfg *app.Config) error {
	if _, err := rlog.Init(cfg.Debug); err != nil {
		return err
	}
	defer rlog.Sync()
	log := rlog.Named("serve")

	if err := app.RegisterContracts(); err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.StorePath, 0o755); err != nil {
		return errors.WithStack(err)
	}
	back, err := backend.Create(cfg.StoreDriver, filepath.Join(cfg.StorePath, "state"))
	if err != nil {
		return err
	}
	defer back.Close()

	st, err := types.OpenStore(back, new(big.Int).SetUint64(cfg.ChainID), uint64(time.Now().UnixNano()))
	if err != nil {
		return err
	}
	c := apiserver.NewChain(st)

	envPath := filepath.Join(cfg.StorePath, "environment.json")
	var env *app.Environment
	if c.Height() == 0 {
		k, err := cfg.Key()
		if err != nil {
			return err
		}
		if err := c.Update(func(ctx *types.Context) error {
			env, err = app.Deploy(ctx, cfg, k.Address())
			return err
		}); err != nil {
			return err
		}
		if err := app.SaveEnvironment(envPath, env); err != nil {
			return err
		}
		log.Info("environment deployed", zap.String("path", envPath))
	} else if env, err = app.LoadEnvironment(envPath); err != nil {
		return err
	}
	log.Info("environment",
		zap.Uint32("height", c.Height()),
		zap.Stringer("router", env.Router),
		zap.Stringer("useswap", env.UseSwap),
	)

	s := apiserver.NewAPIServer(apiserver.DefaultWorkers)
	if err := s.RegisterChain(c); err != nil {
		return err
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigc
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(ctx); err != nil {
			log.Warn("shutdown", zap.Error(err))
		}
	}()

	if err := s.Run(fmt.Sprintf(":%v", cfg.RPCPort)); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
