package main

import (
	"github.com/meverselabs/useswap/cmd/app"
	"github.com/meverselabs/useswap/cmd/config"
)

// EnvPrefix is the prefix of the environment variables overriding the config
const EnvPrefix = "USESWAP"

func loadConfig(path string) (*app.Config, error) {
	cfg := app.DefaultConfig()
	if path != "" {
		if err := config.LoadFile(path, cfg); err != nil {
			return nil, err
		}
	}
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}
	if err := config.ApplyEnv(EnvPrefix, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
