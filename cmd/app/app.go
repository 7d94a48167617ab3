package app

import (
	"encoding/json"
	"io"
	"os"

	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
	"github.com/meverselabs/useswap/common/bin"
	"github.com/meverselabs/useswap/common/key"
	"github.com/meverselabs/useswap/contract/exchange/factory"
	"github.com/meverselabs/useswap/contract/exchange/router"
	"github.com/meverselabs/useswap/contract/exchange/trade"
	exutil "github.com/meverselabs/useswap/contract/exchange/util"
	"github.com/meverselabs/useswap/contract/token"
	"github.com/meverselabs/useswap/contract/useswap"
	"github.com/meverselabs/useswap/core/types"
	"github.com/pkg/errors"
)

// errors
var (
	ErrUnknownToken = errors.New("unknown token symbol")
	ErrNoPool       = errors.New("no pool configured")
)

// MaxUint256 is the unlimited allowance
var MaxUint256 = exutil.MaxUint256

// DeadlineWindow is the seconds added to the block time for router deadlines
const DeadlineWindow = 600

// TokenConfig describes a token deployed to the admin
type TokenConfig struct {
	Name     string `toml:"name" yaml:"name"`
	Symbol   string `toml:"symbol" yaml:"symbol"`
	Decimals uint8  `toml:"decimals" yaml:"decimals"`
	Supply   uint64 `toml:"supply" yaml:"supply"`
}

// PoolConfig is the initial liquidity of a pair in whole token units
type PoolConfig struct {
	TokenA  string `toml:"token_a" yaml:"token_a"`
	TokenB  string `toml:"token_b" yaml:"token_b"`
	AmountA uint64 `toml:"amount_a" yaml:"amount_a"`
	AmountB uint64 `toml:"amount_b" yaml:"amount_b"`
}

// NativePoolConfig is the initial liquidity of a token and wrapped native pair
type NativePoolConfig struct {
	Token        string `toml:"token" yaml:"token"`
	AmountToken  uint64 `toml:"amount_token" yaml:"amount_token"`
	AmountNative uint64 `toml:"amount_native" yaml:"amount_native"`
}

// Config is the local environment of the node
type Config struct {
	ChainID      uint64             `toml:"chain_id" yaml:"chain_id"`
	StoreDriver  string             `toml:"store_driver" yaml:"store_driver"`
	StorePath    string             `toml:"store_path" yaml:"store_path"`
	RPCPort      int                `toml:"rpc_port" yaml:"rpc_port"`
	Debug        bool               `toml:"debug" yaml:"debug"`
	AdminKey     string             `toml:"admin_key" yaml:"admin_key"`
	AdminBalance uint64             `toml:"admin_balance" yaml:"admin_balance"`
	Tokens       []TokenConfig      `toml:"tokens" yaml:"tokens"`
	Pools        []PoolConfig       `toml:"pools" yaml:"pools"`
	NativePools  []NativePoolConfig `toml:"native_pools" yaml:"native_pools"`
}

// DefaultConfig returns a development environment with a USDC/DAI pool
func DefaultConfig() *Config {
	return &Config{
		ChainID:      0x1297,
		StoreDriver:  "leveldb",
		StorePath:    "./_data",
		RPCPort:      8541,
		AdminKey:     "b000000000000000000000000000000000000000000000000000000000000001",
		AdminBalance: 1000000,
		Tokens: []TokenConfig{
			{Name: "USD Coin", Symbol: "USDC", Decimals: 6, Supply: 10000000},
			{Name: "Dai Stablecoin", Symbol: "DAI", Decimals: 18, Supply: 10000000},
		},
		Pools: []PoolConfig{
			{TokenA: "USDC", TokenB: "DAI", AmountA: 100000, AmountB: 100000},
		},
		NativePools: []NativePoolConfig{
			{Token: "DAI", AmountToken: 1000, AmountNative: 1000},
		},
	}
}

// Key returns the admin key of the config
func (cfg *Config) Key() (key.Key, error) {
	return key.NewMemoryKeyFromString(cfg.AdminKey)
}

// Environment is the set of deployed contracts
type Environment struct {
	Admin    common.Address            `json:"admin"`
	Tokens   map[string]common.Address `json:"tokens"`
	Decimals map[string]uint8          `json:"decimals"`
	WNative  common.Address            `json:"wnative"`
	Factory  common.Address            `json:"factory"`
	Router   common.Address            `json:"router"`
	UseSwap  common.Address            `json:"useswap"`
}

// Token returns the address of the token symbol
func (env *Environment) Token(symbol string) (common.Address, error) {
	addr, has := env.Tokens[symbol]
	if !has {
		return common.ZeroAddr, errors.Wrap(ErrUnknownToken, symbol)
	}
	return addr, nil
}

// Units returns the base unit amount of whole tokens of the symbol
func (env *Environment) Units(symbol string, n uint64) *amount.Amount {
	return amount.NewAmountFromUnits(n, int(env.Decimals[symbol]))
}

// SaveEnvironment writes the environment as json
func SaveEnvironment(path string, env *Environment) error {
	bs, err := json.MarshalIndent(env, "", "\t")
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(os.WriteFile(path, bs, 0o644))
}

// LoadEnvironment reads the environment written by SaveEnvironment
func LoadEnvironment(path string) (*Environment, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	env := &Environment{}
	if err := json.Unmarshal(bs, env); err != nil {
		return nil, errors.WithStack(err)
	}
	return env, nil
}

// RegisterContracts registers the contract classes of the environment
func RegisterContracts() error {
	for _, cont := range []types.Contract{
		&token.TokenContract{},
		&factory.FactoryContract{},
		&router.RouterContract{},
		&trade.UniSwap{},
		&useswap.UseSwapContract{},
	} {
		if _, err := types.RegisterContractType(cont); err != nil {
			return err
		}
	}
	return nil
}

type deployer struct {
	ctx   *types.Context
	admin common.Address
}

func (d *deployer) deploy(cont types.Contract, args io.WriterTo) (common.Address, error) {
	bs, _, err := bin.WriterToBytes(args)
	if err != nil {
		return common.ZeroAddr, err
	}
	c, err := d.ctx.DeployContract(d.admin, types.ClassIDOf(cont), bs)
	if err != nil {
		return common.ZeroAddr, err
	}
	return c.Address(), nil
}

func (d *deployer) exec(to common.Address, value *amount.Amount, method string, args ...interface{}) ([]interface{}, error) {
	types.ExecLock.Lock()
	defer types.ExecLock.Unlock()

	rs, _, err := d.ctx.Execute(d.admin, to, value, method, args)
	if err != nil {
		return nil, errors.Wrap(err, method)
	}
	return rs, nil
}

// Deploy funds the admin and deploys the tokens, the exchange, the wrapper and the pools of the config on the context
func Deploy(ctx *types.Context, cfg *Config, admin common.Address) (*Environment, error) {
	if err := RegisterContracts(); err != nil {
		return nil, err
	}
	ctx.SetBalance(admin, amount.NewAmount(cfg.AdminBalance, 0))

	d := &deployer{ctx: ctx, admin: admin}
	env := &Environment{
		Admin:    admin,
		Tokens:   map[string]common.Address{},
		Decimals: map[string]uint8{},
	}
	for _, tc := range cfg.Tokens {
		addr, err := d.deploy(&token.TokenContract{}, &token.TokenContractConstruction{
			Name:     tc.Name,
			Symbol:   tc.Symbol,
			Decimals: tc.Decimals,
			InitialSupplyMap: map[common.Address]*amount.Amount{
				admin: amount.NewAmountFromUnits(tc.Supply, int(tc.Decimals)),
			},
		})
		if err != nil {
			return nil, errors.Wrap(err, tc.Symbol)
		}
		env.Tokens[tc.Symbol] = addr
		env.Decimals[tc.Symbol] = tc.Decimals
	}

	var err error
	if env.WNative, err = d.deploy(&token.TokenContract{}, &token.TokenContractConstruction{
		Name:     "Wrapped Native",
		Symbol:   "WNATIVE",
		Decimals: amount.FractionalCount,
		Wrapped:  true,
	}); err != nil {
		return nil, err
	}
	if env.Factory, err = d.deploy(&factory.FactoryContract{}, &factory.FactoryContractConstruction{
		Owner: admin,
		Fee:   trade.DEFAULT_FEE,
	}); err != nil {
		return nil, err
	}
	if env.Router, err = d.deploy(&router.RouterContract{}, &router.RouterContractConstruction{
		Factory: env.Factory,
		WNative: env.WNative,
	}); err != nil {
		return nil, err
	}
	if env.UseSwap, err = d.deploy(&useswap.UseSwapContract{}, &useswap.UseSwapContractConstruction{
		Router: env.Router,
	}); err != nil {
		return nil, err
	}

	deadline := ctx.LastTimestamp()/1000000000 + DeadlineWindow
	approved := map[string]bool{}
	approve := func(symbol string) (common.Address, error) {
		addr, err := env.Token(symbol)
		if err != nil {
			return common.ZeroAddr, err
		}
		if !approved[symbol] {
			if _, err := d.exec(addr, nil, "Approve", env.Router, MaxUint256); err != nil {
				return common.ZeroAddr, err
			}
			approved[symbol] = true
		}
		return addr, nil
	}
	for _, p := range cfg.Pools {
		a, err := approve(p.TokenA)
		if err != nil {
			return nil, err
		}
		b, err := approve(p.TokenB)
		if err != nil {
			return nil, err
		}
		if _, err := d.exec(env.Router, nil, "AddLiquidity", a, b,
			env.Units(p.TokenA, p.AmountA), env.Units(p.TokenB, p.AmountB),
			amount.NewAmount(0, 0), amount.NewAmount(0, 0), admin, deadline); err != nil {
			return nil, err
		}
	}
	for _, p := range cfg.NativePools {
		t, err := approve(p.Token)
		if err != nil {
			return nil, err
		}
		if _, err := d.exec(env.Router, amount.NewAmount(p.AmountNative, 0), "AddLiquidityETH", t,
			env.Units(p.Token, p.AmountToken), amount.NewAmount(0, 0), amount.NewAmount(0, 0), admin, deadline); err != nil {
			return nil, err
		}
	}
	return env, nil
}
