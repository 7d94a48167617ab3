package leveldb_driver

import (
	"errors"
	"testing"

	"github.com/meverselabs/useswap/core/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateAndView(t *testing.T) {
	back, err := backend.Create("leveldb", t.TempDir())
	require.NoError(t, err)
	defer back.Close()

	err = back.Update(func(txn backend.StoreWriter) error {
		if err := txn.Set([]byte("d1"), []byte("a")); err != nil {
			return err
		}
		if err := txn.Set([]byte("d2"), []byte("b")); err != nil {
			return err
		}
		return txn.Set([]byte("x1"), []byte("c"))
	})
	require.NoError(t, err)

	err = back.View(func(txn backend.StoreReader) error {
		v, err := txn.Get([]byte("d1"))
		require.NoError(t, err)
		assert.Equal(t, []byte("a"), v)

		_, err = txn.Get([]byte("nope"))
		assert.ErrorIs(t, err, backend.ErrNotExistKey)

		keys := []string{}
		err = txn.Iterate([]byte("d"), func(key []byte, value []byte) error {
			keys = append(keys, string(key))
			return nil
		})
		assert.Equal(t, []string{"d1", "d2"}, keys)
		return err
	})
	require.NoError(t, err)
}

func TestUpdateDiscardsOnError(t *testing.T) {
	back, err := backend.Create("memory", "")
	require.NoError(t, err)
	defer back.Close()

	fail := errors.New("fail")
	err = back.Update(func(txn backend.StoreWriter) error {
		if err := txn.Set([]byte("k"), []byte("v")); err != nil {
			return err
		}
		return fail
	})
	assert.ErrorIs(t, err, fail)

	err = back.View(func(txn backend.StoreReader) error {
		_, err := txn.Get([]byte("k"))
		return err
	})
	assert.ErrorIs(t, err, backend.ErrNotExistKey)
}

func TestUnknownDriver(t *testing.T) {
	_, err := backend.Create("nope", "")
	assert.ErrorIs(t, err, backend.ErrNotExistDriver)
}
