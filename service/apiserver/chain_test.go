package apiserver

import (
	"bytes"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	etypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
	"github.com/meverselabs/useswap/core/backend"
	_ "github.com/meverselabs/useswap/core/backend/leveldb_driver"
	"github.com/meverselabs/useswap/core/types"
	"github.com/meverselabs/useswap/extern/test/util"
	"github.com/meverselabs/useswap/extern/txparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChainFixture(t *testing.T, prepare func(tc *util.TestContext)) (*Chain, *APIServer) {
	tc := util.NewTestContext()
	if prepare != nil {
		prepare(tc)
	}
	c := NewMemoryChain(tc.Ctx)
	ts := tc.Ctx.LastTimestamp()
	c.SetClock(func() uint64 {
		ts += 1000000000
		return ts
	})
	s := NewAPIServer(4)
	require.NoError(t, s.RegisterChain(c))
	return c, s
}

func TestChainViews(t *testing.T) {
	var token, use string
	c, s := newChainFixture(t, func(tc *util.TestContext) {
		token = tc.MakeToken("USD Coin", "USDC", 6, amount.NewAmountFromUnits(1000, 6)).Hex()
		ex := tc.MakeExchange()
		use = tc.MakeUseSwap(ex.Router).Hex()
	})
	h := s.Handler()

	res := rpc(t, h, "chain.chainID")
	require.Nil(t, res.Error)
	assert.EqualValues(t, 1, res.Result)

	res = rpc(t, h, "token.balanceOf", token, util.Admin.Hex())
	require.Nil(t, res.Error)
	assert.Equal(t, "1000000000", res.Result)

	res = rpc(t, h, "token.symbol", token)
	require.Nil(t, res.Error)
	assert.Equal(t, "USDC", res.Result)

	res = rpc(t, h, "useswap.swapCount", use)
	require.Nil(t, res.Error)
	assert.EqualValues(t, 0, res.Result)

	res = rpc(t, h, "chain.balance", util.Admin.Hex())
	require.Nil(t, res.Error)
	assert.Equal(t, util.NativeSupply.Int.String(), res.Result)

	res = rpc(t, h, "chain.call", token, "Transfer", util.Users[0].Hex(), "1")
	require.NotNil(t, res.Error)
	assert.Equal(t, CodeReverted, res.Error.Code)

	assert.Equal(t, uint64(0), c.Seq(util.Users[0]))
}

func TestChainSendTransaction(t *testing.T) {
	var token string
	c, s := newChainFixture(t, func(tc *util.TestContext) {
		token = tc.MakeToken("Dai Stablecoin", "DAI", 18, amount.NewAmount(1000, 0)).Hex()
	})
	h := s.Handler()
	height := c.Height()

	send := func(method string, args ...interface{}) *JRPCResponse {
		seq := c.Seq(util.Admin)
		tx := &types.Transaction{
			ChainID: util.ChainID,
			Seq:     seq,
			To:      common.MustParseAddress(token),
			Method:  method,
			Args:    args,
		}
		sig, err := tx.Sign(util.AdminKey)
		require.NoError(t, err)
		return rpc(t, h, "chain.sendTransaction", map[string]interface{}{
			"chainId": 1,
			"seq":     seq,
			"to":      token,
			"method":  method,
			"args":    args,
		}, sig.String())
	}

	res := send("Transfer", util.Users[0].Hex(), "1000")
	require.Nil(t, res.Error)
	receipt := res.Result.(map[string]interface{})
	assert.Equal(t, true, receipt["success"])
	assert.True(t, strings.EqualFold(util.Admin.Hex(), receipt["from"].(string)))
	assert.Equal(t, height+1, c.Height())
	assert.Equal(t, uint64(1), c.Seq(util.Admin))

	res = rpc(t, h, "token.balanceOf", token, util.Users[0].Hex())
	require.Nil(t, res.Error)
	assert.Equal(t, "1000", res.Result)

	res = rpc(t, h, "chain.receipt", receipt["txHash"])
	require.Nil(t, res.Error)
	assert.Equal(t, true, res.Result.(map[string]interface{})["success"])

	res = send("Transfer", util.Users[0].Hex(), "1000000000000000000000000")
	require.Nil(t, res.Error)
	receipt = res.Result.(map[string]interface{})
	assert.Equal(t, false, receipt["success"])
	assert.NotEmpty(t, receipt["error"])
	assert.Equal(t, uint64(2), c.Seq(util.Admin))

	res = rpc(t, h, "chain.sendTransaction", map[string]interface{}{
		"chainId": 1,
		"seq":     0,
		"to":      token,
		"method":  "Transfer",
		"args":    []interface{}{util.Users[0].Hex(), "1"},
	}, "0x00")
	require.NotNil(t, res.Error)
	assert.Equal(t, CodeInvalidParams, res.Error.Code)

	assert.Equal(t, uint64(2), c.Seq(util.Admin))
}

func TestEthRawTransaction(t *testing.T) {
	pk, err := crypto.GenerateKey()
	require.NoError(t, err)
	from := crypto.PubkeyToAddress(pk.PublicKey)

	var token string
	c, s := newChainFixture(t, func(tc *util.TestContext) {
		addr := tc.MakeToken("USD Coin", "USDC", 6, amount.NewAmountFromUnits(1000, 6))
		tc.MustSendTx(util.AdminKey, addr, "Transfer", from, amount.NewAmountFromUnits(10, 6))
		token = addr.Hex()
	})
	h := s.Handler()

	erc20, err := abi.JSON(bytes.NewReader(txparser.IERC20))
	require.NoError(t, err)
	data, err := erc20.Pack("transfer", util.Users[1], big.NewInt(100))
	require.NoError(t, err)

	to := common.MustParseAddress(token)
	signed, err := etypes.SignTx(etypes.NewTx(&etypes.LegacyTx{
		Nonce:    0,
		To:       &to,
		Value:    big.NewInt(0),
		Gas:      100000,
		GasPrice: big.NewInt(1),
		Data:     data,
	}), etypes.NewEIP155Signer(util.ChainID), pk)
	require.NoError(t, err)
	raw, err := signed.MarshalBinary()
	require.NoError(t, err)

	res := rpc(t, h, "eth_sendRawTransaction", hexutil.Encode(raw))
	require.Nil(t, res.Error)
	assert.Equal(t, signed.Hash().Hex(), res.Result)
	assert.Equal(t, uint64(1), c.Seq(from))

	res = rpc(t, h, "eth_getTransactionReceipt", signed.Hash().Hex())
	require.Nil(t, res.Error)
	assert.Equal(t, "0x1", res.Result.(map[string]interface{})["status"])

	res = rpc(t, h, "eth_getTransactionCount", from.Hex(), "latest")
	require.Nil(t, res.Error)
	assert.Equal(t, "0x1", res.Result)

	call, err := erc20.Pack("balanceOf", util.Users[1])
	require.NoError(t, err)
	res = rpc(t, h, "eth_call", map[string]interface{}{
		"to":   token,
		"data": hexutil.Encode(call),
	}, "latest")
	require.Nil(t, res.Error)
	out, err := erc20.Methods["balanceOf"].Outputs.Pack(big.NewInt(100))
	require.NoError(t, err)
	assert.Equal(t, hexutil.Encode(out), res.Result)

	res = rpc(t, h, "eth_chainId")
	require.Nil(t, res.Error)
	assert.Equal(t, "0x1", res.Result)

	// replay
	res = rpc(t, h, "eth_sendRawTransaction", hexutil.Encode(raw))
	require.NotNil(t, res.Error)
}

func TestChainPersistence(t *testing.T) {
	dir := t.TempDir()

	back, err := backend.Create("leveldb", dir)
	require.NoError(t, err)
	st, err := types.OpenStore(back, util.ChainID, util.GenesisTimestamp)
	require.NoError(t, err)

	c := NewChain(st)
	require.NoError(t, c.Update(func(ctx *types.Context) error {
		ctx.SetBalance(util.Admin, amount.NewAmount(7, 0))
		return nil
	}))
	assert.Equal(t, uint32(1), c.Height())
	back.Close()

	back, err = backend.Create("leveldb", dir)
	require.NoError(t, err)
	defer back.Close()
	st, err = types.OpenStore(back, util.ChainID, util.GenesisTimestamp)
	require.NoError(t, err)

	c = NewChain(st)
	assert.Equal(t, uint32(1), c.Height())
	assert.Equal(t, amount.NewAmount(7, 0).Int.String(), c.Balance(util.Admin).Int.String())

	_, err = types.OpenStore(back, big.NewInt(2), util.GenesisTimestamp)
	assert.ErrorIs(t, err, types.ErrInvalidChainID)
}
