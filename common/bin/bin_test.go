package bin

import (
	"bytes"
	"strings"
	"testing"

	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteBytesLengthPrefix(t *testing.T) {
	for _, size := range []int{0, 253, 254, 65535, 65536} {
		var buf bytes.Buffer
		src := []byte(strings.Repeat("a", size))
		n, err := WriteBytes(&buf, src)
		require.NoError(t, err)
		assert.Equal(t, int64(buf.Len()), n)

		got, m, err := ReadBytes(&buf)
		require.NoError(t, err)
		assert.Equal(t, n, m)
		assert.Equal(t, size, len(got))
	}
}

func TestSumWriterReader(t *testing.T) {
	addrs := []common.Address{common.HexToAddress("0x01"), common.HexToAddress("0x02")}
	am := amount.NewAmount(3, 0)

	var buf bytes.Buffer
	sw := NewSumWriter()
	_, err := sw.String(&buf, "name")
	require.NoError(t, err)
	_, err = sw.Uint8(&buf, 6)
	require.NoError(t, err)
	_, err = sw.Addresses(&buf, addrs)
	require.NoError(t, err)
	_, err = sw.Amount(&buf, am)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), sw.Sum())

	sr := NewSumReader()
	var (
		name string
		dec  uint8
		out  []common.Address
		oam  *amount.Amount
	)
	_, err = sr.String(&buf, &name)
	require.NoError(t, err)
	_, err = sr.Uint8(&buf, &dec)
	require.NoError(t, err)
	_, err = sr.Addresses(&buf, &out)
	require.NoError(t, err)
	_, err = sr.Amount(&buf, &oam)
	require.NoError(t, err)

	assert.Equal(t, "name", name)
	assert.Equal(t, uint8(6), dec)
	assert.Equal(t, addrs, out)
	assert.True(t, am.Equal(oam))
	assert.Equal(t, sw.Sum(), sr.Sum())
}

func TestReadTruncated(t *testing.T) {
	_, _, err := ReadBytes(bytes.NewReader([]byte{5, 1, 2}))
	assert.ErrorIs(t, err, ErrInvalidLength)
}

func TestUint64ShortInput(t *testing.T) {
	assert.Equal(t, uint64(0), Uint64(nil))
	assert.Equal(t, uint64(7), Uint64(Uint64Bytes(7)))
}
