package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPool struct {
	TokenA string `toml:"token_a" yaml:"token_a"`
	TokenB string `toml:"token_b" yaml:"token_b"`
}

type testConfig struct {
	ChainID uint64     `toml:"chain_id" yaml:"chain_id"`
	Store   string     `toml:"store" yaml:"store"`
	Port    int        `toml:"port" yaml:"port"`
	Debug   bool       `toml:"debug" yaml:"debug"`
	Pools   []testPool `toml:"pools" yaml:"pools"`
}

func TestLoadString(t *testing.T) {
	var cfg testConfig
	require.NoError(t, LoadString(`
chain_id = 7
store = "./data"
port = 8545

[[pools]]
token_a = "USDC"
token_b = "DAI"
`, &cfg))
	assert.Equal(t, uint64(7), cfg.ChainID)
	assert.Equal(t, "./data", cfg.Store)
	assert.Equal(t, 8545, cfg.Port)
	require.Len(t, cfg.Pools, 1)
	assert.Equal(t, "DAI", cfg.Pools[0].TokenB)

	assert.Error(t, LoadString(`chain_id = `, &cfg))
}

func TestLoadFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("chain_id: 9\ndebug: true\npools:\n  - token_a: A\n    token_b: B\n"), 0o600))

	var cfg testConfig
	require.NoError(t, LoadFile(path, &cfg))
	assert.Equal(t, uint64(9), cfg.ChainID)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "A", cfg.Pools[0].TokenA)

	assert.Equal(t, YAML, FormatOf("x.YML"))
	assert.Equal(t, TOML, FormatOf("x.toml"))
	assert.Equal(t, TOML, FormatOf("x"))

	assert.Error(t, LoadFile(filepath.Join(t.TempDir(), "missing.toml"), &cfg))
}

func TestApplyEnv(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("CFGTEST_STORE=/var/lib/useswap\nCFGTEST_PORT=9000\n"), 0o600))
	t.Setenv("CFGTEST_DEBUG", "true")
	t.Setenv("CFGTEST_CHAIN_ID", "42")
	defer os.Unsetenv("CFGTEST_STORE")
	defer os.Unsetenv("CFGTEST_PORT")

	require.NoError(t, LoadDotEnv(envPath, filepath.Join(dir, "missing.env")))

	cfg := testConfig{Port: 1}
	require.NoError(t, ApplyEnv("CFGTEST", &cfg))
	assert.Equal(t, uint64(42), cfg.ChainID)
	assert.Equal(t, "/var/lib/useswap", cfg.Store)
	assert.Equal(t, 9000, cfg.Port)
	assert.True(t, cfg.Debug)

	t.Setenv("CFGTEST_PORT", "x")
	err := ApplyEnv("CFGTEST", &cfg)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "Port"))

	t.Setenv("CFGTEST_PORT", "1")
	t.Setenv("CFGTEST_POOLS", "x")
	assert.ErrorIs(t, ApplyEnv("CFGTEST", &cfg), ErrUnsupportedField)

	assert.Error(t, ApplyEnv("CFGTEST", cfg))
}
