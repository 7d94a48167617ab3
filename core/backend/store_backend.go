package backend

import "github.com/pkg/errors"

// StoreBackend is a transactional key value store
type StoreBackend interface {
	Close()
	View(fn func(txn StoreReader) error) error
	Update(fn func(txn StoreWriter) error) error
}

// StoreReader reads keys, Iterate passes buffers that are only valid during the callback
type StoreReader interface {
	Get(key []byte) ([]byte, error)
	Iterate(prefix []byte, fn func(key []byte, value []byte) error) error
}

type StoreWriter interface {
	StoreReader
	Set(key []byte, value []byte) error
	Delete(key []byte) error
}

type CreateBackend func(Path string) (StoreBackend, error)

var gDriverMap = map[string]CreateBackend{}

// RegisterDriver must be called only at initialization time
func RegisterDriver(Name string, fn CreateBackend) {
	gDriverMap[Name] = fn
}

func Create(Name string, Path string) (StoreBackend, error) {
	fn, has := gDriverMap[Name]
	if !has {
		return nil, errors.Wrap(ErrNotExistDriver, Name)
	}
	return fn(Path)
}
