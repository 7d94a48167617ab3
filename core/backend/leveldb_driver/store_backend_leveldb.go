package leveldb_driver

import (
	"time"

	"github.com/meverselabs/useswap/common/rlog"
	"github.com/meverselabs/useswap/core/backend"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/iterator"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
	"github.com/syndtr/goleveldb/leveldb/util"
	"go.uber.org/zap"
)

func init() {
	backend.RegisterDriver("leveldb", NewStoreBackendLevelDB)
	backend.RegisterDriver("memory", NewStoreBackendMemory)
}

type StoreBackendLevelDB struct {
	db *leveldb.DB
}

// NewStoreBackendLevelDB opens a leveldb database in the path
func NewStoreBackendLevelDB(path string) (backend.StoreBackend, error) {
	start := time.Now()
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	rlog.Named("leveldb").Info("opened", zap.String("path", path), zap.Duration("elapsed", time.Since(start)))
	return &StoreBackendLevelDB{db: db}, nil
}

// NewStoreBackendMemory opens a leveldb database on the in-memory storage, the path is ignored
func NewStoreBackendMemory(path string) (backend.StoreBackend, error) {
	db, err := leveldb.Open(storage.NewMemStorage(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &StoreBackendLevelDB{db: db}, nil
}

func (st *StoreBackendLevelDB) Close() {
	if err := st.db.Close(); err != nil {
		rlog.Named("leveldb").Warn("close", zap.Error(err))
	}
}

func (st *StoreBackendLevelDB) View(fn func(txn backend.StoreReader) error) error {
	snap, err := st.db.GetSnapshot()
	if err != nil {
		return errors.WithStack(err)
	}
	defer snap.Release()
	return fn(&storeBackendLevelDBReader{
		get:  snap.Get,
		iter: snap.NewIterator,
	})
}

func (st *StoreBackendLevelDB) Update(fn func(txn backend.StoreWriter) error) error {
	txn, err := st.db.OpenTransaction()
	if err != nil {
		return errors.WithStack(err)
	}
	w := &storeBackendLevelDBTx{
		storeBackendLevelDBReader: storeBackendLevelDBReader{
			get:  txn.Get,
			iter: txn.NewIterator,
		},
		txn: txn,
	}
	if err := fn(w); err != nil {
		txn.Discard()
		return err
	}
	if err := txn.Commit(); err != nil {
		txn.Discard()
		return errors.WithStack(err)
	}
	return nil
}

type storeBackendLevelDBReader struct {
	get  func(key []byte, ro *opt.ReadOptions) ([]byte, error)
	iter func(slice *util.Range, ro *opt.ReadOptions) iterator.Iterator
}

func (r *storeBackendLevelDBReader) Get(key []byte) ([]byte, error) {
	value, err := r.get(key, nil)
	if err != nil {
		if err == leveldb.ErrNotFound {
			return nil, backend.ErrNotExistKey
		}
		return nil, errors.WithStack(err)
	}
	return value, nil
}

func (r *storeBackendLevelDBReader) Iterate(prefix []byte, fn func(key []byte, value []byte) error) error {
	var rg *util.Range
	if len(prefix) > 0 {
		rg = util.BytesPrefix(prefix)
	}
	it := r.iter(rg, nil)
	defer it.Release()
	for it.Next() {
		if err := fn(it.Key(), it.Value()); err != nil {
			return err
		}
	}
	return errors.WithStack(it.Error())
}

type storeBackendLevelDBTx struct {
	storeBackendLevelDBReader
	txn *leveldb.Transaction
}

func (w *storeBackendLevelDBTx) Set(key []byte, value []byte) error {
	return errors.WithStack(w.txn.Put(key, value, nil))
}

func (w *storeBackendLevelDBTx) Delete(key []byte) error {
	return errors.WithStack(w.txn.Delete(key, nil))
}
