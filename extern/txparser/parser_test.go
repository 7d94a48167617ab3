package txparser

import (
	"bytes"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	etypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func erc20() abi.ABI {
	a, err := abi.JSON(bytes.NewReader(IERC20))
	if err != nil {
		panic(err)
	}
	return a
}

func TestERCFuncSignature(t *testing.T) {
	assert.Equal(t, "a9059cbb", TRANSFER)
	assert.Equal(t, "70a08231", BALANCEOF)
}

func TestInputs(t *testing.T) {
	to := common.HexToAddress("0xba17b965f8c7caadf289877d07e973f6aa36b093")
	data, err := erc20().Pack("transfer", to, big.NewInt(100))
	require.NoError(t, err)

	m, args, err := Inputs(data)
	require.NoError(t, err)
	assert.Equal(t, "transfer", m.Name)
	assert.Equal(t, to, args[0])
	assert.Equal(t, 0, args[1].(*big.Int).Cmp(big.NewInt(100)))

	_, _, err = Inputs([]byte{0x01, 0x02})
	assert.ErrorIs(t, err, ErrNotFoundFuncSig)
	_, _, err = Inputs([]byte{0x01, 0x02, 0x03, 0x04})
	assert.ErrorIs(t, err, ErrNotFoundFuncSig)
}

func TestInputsUseSwap(t *testing.T) {
	m, has := Abi("handleSwap(uint256,uint256,address[],address,uint256)")
	require.True(t, has)

	path := []common.Address{common.HexToAddress("0x01"), common.HexToAddress("0x02")}
	data, err := m.Inputs.Pack(big.NewInt(20), big.NewInt(1000), path, common.HexToAddress("0x03"), big.NewInt(600))
	require.NoError(t, err)

	dm, args, err := Inputs(append(append([]byte{}, m.ID...), data...))
	require.NoError(t, err)
	assert.Equal(t, "handleSwap", dm.Name)
	assert.Equal(t, path, args[2])
}

func TestOutputs(t *testing.T) {
	bs, err := Outputs(BALANCEOF, []interface{}{amount.NewAmount(1, 0)})
	require.NoError(t, err)
	assert.Equal(t, "0000000000000000000000000000000000000000000000000de0b6b3a7640000", hex.EncodeToString(bs))

	bs, err = Outputs("decimals()", []interface{}{"0x12"})
	require.NoError(t, err)
	assert.Equal(t, byte(18), bs[31])

	_, err = Outputs(BALANCEOF, []interface{}{})
	assert.ErrorIs(t, err, ErrOutputCount)
}

func TestEthTxFromRLP(t *testing.T) {
	pk, err := crypto.GenerateKey()
	require.NoError(t, err)
	chainID := big.NewInt(0x1297)
	to := common.HexToAddress("0xba1611d325f7c85d089a86be0e3e70da69679e93")

	data, err := erc20().Pack("transfer", to, big.NewInt(100))
	require.NoError(t, err)
	tx := etypes.NewTx(&etypes.LegacyTx{
		Nonce:    3,
		To:       &to,
		Value:    big.NewInt(0),
		Gas:      150000,
		GasPrice: big.NewInt(1),
		Data:     data,
	})
	signed, err := etypes.SignTx(tx, etypes.NewEIP155Signer(chainID), pk)
	require.NoError(t, err)
	raw, err := signed.MarshalBinary()
	require.NoError(t, err)

	etx, sig, err := EthTxFromRLP(raw)
	require.NoError(t, err)
	require.Len(t, sig, 65)
	assert.LessOrEqual(t, sig[64], byte(1))
	assert.Equal(t, uint64(3), etx.Nonce())
	assert.Equal(t, data, etx.Data())

	from, err := EthTxSender(etx)
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(pk.PublicKey), from)

	_, _, err = EthTxFromRLP(nil)
	assert.ErrorIs(t, err, ErrInvalidTx)
}
