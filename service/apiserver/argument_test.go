package apiserver

import (
	"encoding/json"
	"testing"

	"github.com/meverselabs/useswap/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgument(t *testing.T) {
	addr := "0x5AAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	arg := NewArgument([]interface{}{
		json.Number("12345678901234567890123"),
		"0x10",
		addr,
		[]interface{}{json.Number("1"), "a"},
		map[string]interface{}{"k": json.Number("2")},
		nil,
		"0x0102",
	})
	assert.Equal(t, 7, arg.Len())

	am, err := arg.Amount(0)
	require.NoError(t, err)
	assert.Equal(t, "12345678901234567890123", am.Int.String())

	n, err := arg.Uint64(1)
	require.NoError(t, err)
	assert.Equal(t, uint64(16), n)

	a, err := arg.Address(2)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(addr), a)

	arr, err := arg.Array(3)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"1", "a"}, arr)

	m, err := arg.Map(4)
	require.NoError(t, err)
	assert.Equal(t, "2", m["k"])

	_, err = arg.String(5)
	assert.ErrorIs(t, err, ErrInvalidArgumentType)
	_, err = arg.String(7)
	assert.ErrorIs(t, err, ErrInvalidArgumentIndex)

	bs, err := arg.Bytes(6)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2}, bs)

	_, err = arg.Address(1)
	assert.Error(t, err)
	_, err = arg.Map(3)
	assert.ErrorIs(t, err, ErrInvalidArgumentType)

	assert.Len(t, arg.Rest(5), 2)
	assert.Empty(t, arg.Rest(9))
}

func TestArgumentNegativeAmount(t *testing.T) {
	_, err := NewArgument([]interface{}{"-1"}).Amount(0)
	assert.ErrorIs(t, err, ErrInvalidArgumentType)
}
