package types

import (
	"bytes"
	"math/big"
	"sync"

	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
	"github.com/meverselabs/useswap/common/bin"
	"github.com/meverselabs/useswap/common/hash"
	"github.com/meverselabs/useswap/common/rlog"
	"github.com/meverselabs/useswap/core/backend"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type storeHeader struct {
	ChainID   *big.Int
	Height    uint32
	LastHash  hash.Hash256
	Timestamp uint64
}

func (h *storeHeader) bytes() []byte {
	var buffer bytes.Buffer
	sw := bin.NewSumWriter()
	sw.Bytes(&buffer, h.ChainID.Bytes())
	sw.Uint32(&buffer, h.Height)
	sw.Hash256(&buffer, h.LastHash)
	sw.Uint64(&buffer, h.Timestamp)
	return buffer.Bytes()
}

func (h *storeHeader) parse(bs []byte) error {
	r := bytes.NewReader(bs)
	sr := bin.NewSumReader()
	var cid []byte
	if _, err := sr.Bytes(r, &cid); err != nil {
		return err
	}
	h.ChainID = new(big.Int).SetBytes(cid)
	if _, err := sr.Uint32(r, &h.Height); err != nil {
		return err
	}
	if _, err := sr.Hash256(r, &h.LastHash); err != nil {
		return err
	}
	if _, err := sr.Uint64(r, &h.Timestamp); err != nil {
		return err
	}
	return nil
}

// Store persists committed contexts to a backend and loads state for new contexts
type Store struct {
	sync.RWMutex
	back   backend.StoreBackend
	header storeHeader
}

// OpenStore loads the header of the backend or initializes it for the chain
func OpenStore(back backend.StoreBackend, chainID *big.Int, genesisTimestamp uint64) (*Store, error) {
	st := &Store{
		back: back,
		header: storeHeader{
			ChainID:   new(big.Int).Set(chainID),
			Timestamp: genesisTimestamp,
		},
	}
	err := back.View(func(txn backend.StoreReader) error {
		bs, err := txn.Get([]byte{tagHeader})
		if err != nil {
			if errors.Is(err, backend.ErrNotExistKey) {
				return nil
			}
			return err
		}
		var h storeHeader
		if err := h.parse(bs); err != nil {
			return err
		}
		if h.ChainID.Cmp(chainID) != 0 {
			return errors.Wrapf(ErrInvalidChainID, "store has %v", h.ChainID)
		}
		st.header = h
		return nil
	})
	if err != nil {
		return nil, err
	}
	return st, nil
}

func (st *Store) get(key []byte) []byte {
	var value []byte
	err := st.back.View(func(txn backend.StoreReader) error {
		bs, err := txn.Get(key)
		if err != nil {
			return err
		}
		value = bs
		return nil
	})
	if err != nil && !errors.Is(err, backend.ErrNotExistKey) {
		rlog.Named("store").Error("read", zap.Binary("key", key), zap.Error(err))
	}
	return value
}

func (st *Store) ChainID() *big.Int {
	st.RLock()
	defer st.RUnlock()
	return new(big.Int).Set(st.header.ChainID)
}

func (st *Store) TargetHeight() uint32 {
	st.RLock()
	defer st.RUnlock()
	return st.header.Height
}

func (st *Store) LastHash() hash.Hash256 {
	st.RLock()
	defer st.RUnlock()
	return st.header.LastHash
}

func (st *Store) LastTimestamp() uint64 {
	st.RLock()
	defer st.RUnlock()
	return st.header.Timestamp
}

func (st *Store) Seq() uint32 {
	bs := st.get([]byte{tagSeq})
	if len(bs) != 4 {
		return 0
	}
	return bin.Uint32(bs)
}

func (st *Store) AddrSeq(addr common.Address) uint64 {
	return bin.Uint64(st.get(append([]byte{tagAddrSeq}, addr[:]...)))
}

func (st *Store) Balance(addr common.Address) *amount.Amount {
	return amount.NewAmountFromBytes(st.get(append([]byte{tagBalance}, addr[:]...)))
}

func (st *Store) ContractDefine(addr common.Address) *ContractDefine {
	bs := st.get(append([]byte{tagContractDefine}, addr[:]...))
	if len(bs) == 0 {
		return nil
	}
	cd := &ContractDefine{}
	if _, err := bin.ReadFromBytes(cd, bs); err != nil {
		rlog.Named("store").Error("contract define", zap.Stringer("addr", addr), zap.Error(err))
		return nil
	}
	return cd
}

func (st *Store) Data(cont common.Address, addr common.Address, name []byte) []byte {
	return st.get(append([]byte{tagData}, dataKey(cont, addr, name)...))
}

// Apply writes the committed context and every context it was derived from down to the store
func (st *Store) Apply(ctx *Context) error {
	chain := []*Context{}
	for c := ctx; ; {
		if c.StackSize() != 1 {
			return errors.WithStack(ErrDirtyContext)
		}
		chain = append(chain, c)
		if next, ok := c.loader.(*Context); ok {
			c = next
			continue
		}
		if c.loader != Loader(st) {
			return errors.WithStack(ErrForeignContext)
		}
		break
	}

	header := storeHeader{
		ChainID:   ctx.ChainID(),
		Height:    ctx.TargetHeight(),
		LastHash:  ctx.Hash(),
		Timestamp: ctx.LastTimestamp(),
	}

	st.Lock()
	defer st.Unlock()
	err := st.back.Update(func(txn backend.StoreWriter) error {
		for k := len(chain) - 1; k >= 0; k-- {
			var err error
			chain[k].Top().entries().Scan(func(key string, e stateEntry) bool {
				if e.deleted {
					err = txn.Delete([]byte(key))
				} else {
					err = txn.Set([]byte(key), e.value)
				}
				return err == nil
			})
			if err != nil {
				return err
			}
		}
		return txn.Set([]byte{tagHeader}, header.bytes())
	})
	if err != nil {
		return err
	}
	st.header = header
	return nil
}
