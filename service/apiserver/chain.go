package apiserver

import (
	"sync"
	"time"

	"github.com/bluele/gcache"
	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
	"github.com/meverselabs/useswap/common/hash"
	"github.com/meverselabs/useswap/common/rlog"
	"github.com/meverselabs/useswap/core/types"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ReceiptCacheSize is the number of receipts kept for lookups
const ReceiptCacheSize = 4096

// Chain serializes access to the committed context of the local chain.
// Every accepted transaction is executed in its own next context and written to the store when there is one.
type Chain struct {
	sync.Mutex
	st       *types.Store
	ctx      *types.Context
	receipts gcache.Cache
	now      func() uint64
	log      *zap.Logger
}

// NewChain returns a Chain which persists to the store
func NewChain(st *types.Store) *Chain {
	return newChain(st, types.NewContext(st))
}

// NewMemoryChain returns a Chain which keeps the state on the context only
func NewMemoryChain(ctx *types.Context) *Chain {
	return newChain(nil, ctx)
}

func newChain(st *types.Store, ctx *types.Context) *Chain {
	return &Chain{
		st:       st,
		ctx:      ctx,
		receipts: gcache.New(ReceiptCacheSize).LRU().Build(),
		now: func() uint64 {
			return uint64(time.Now().UnixNano())
		},
		log: rlog.Named("chain"),
	}
}

// SetClock replaces the nanosecond clock used for the timestamps of next contexts
func (c *Chain) SetClock(now func() uint64) {
	c.Lock()
	defer c.Unlock()

	c.now = now
}

func (c *Chain) nextTimestamp() uint64 {
	ts := c.now()
	if last := c.ctx.LastTimestamp(); ts <= last {
		ts = last + 1
	}
	return ts
}

// commit must be called with the lock held
func (c *Chain) commit(next *types.Context) error {
	if c.st == nil {
		c.ctx = next
		chainHeight.Set(float64(next.TargetHeight()))
		return nil
	}
	if err := c.st.Apply(next); err != nil {
		return err
	}
	c.ctx = types.NewContext(c.st)
	chainHeight.Set(float64(c.st.TargetHeight()))
	return nil
}

// Update runs fn on a next context and commits it when fn succeeds
func (c *Chain) Update(fn func(ctx *types.Context) error) error {
	c.Lock()
	defer c.Unlock()

	next := c.ctx.NextContext(c.nextTimestamp())
	if err := fn(next); err != nil {
		return err
	}
	return c.commit(next)
}

// SendTransaction executes the signed transaction in a new block
func (c *Chain) SendTransaction(tx *types.Transaction, sig common.Signature) (*types.Receipt, error) {
	TxHash, err := tx.HashSig()
	if err != nil {
		return nil, err
	}
	from, err := tx.Sender(sig)
	if err != nil {
		return nil, err
	}
	return c.SendRecovered(tx, from, TxHash)
}

// SendRecovered executes the transaction of the already recovered sender in a new block
func (c *Chain) SendRecovered(tx *types.Transaction, from common.Address, TxHash hash.Hash256) (*types.Receipt, error) {
	var receipt *types.Receipt
	err := c.Update(func(ctx *types.Context) error {
		r, err := ctx.ExecuteRecovered(tx, from, TxHash)
		if err != nil {
			return err
		}
		receipt = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	status := "success"
	if !receipt.Success {
		status = "reverted"
	}
	txExecuted.WithLabelValues(tx.Method, status).Inc()
	c.log.Info("transaction", zap.Stringer("hash", TxHash), zap.Stringer("from", from), zap.String("method", tx.Method), zap.String("status", status))

	if err := c.receipts.Set(TxHash, receipt); err != nil {
		return nil, errors.WithStack(err)
	}
	return receipt, nil
}

// Receipt returns a receipt of the recent transaction
func (c *Chain) Receipt(TxHash hash.Hash256) (*types.Receipt, error) {
	v, err := c.receipts.Get(TxHash)
	if err != nil {
		if err == gcache.KeyNotFoundError {
			return nil, errors.WithStack(ErrNotFoundReceipt)
		}
		return nil, errors.WithStack(err)
	}
	return v.(*types.Receipt), nil
}

// Call executes the method as the from account without changing the state
func (c *Chain) Call(from common.Address, to common.Address, method string, args []interface{}) ([]interface{}, error) {
	c.Lock()
	defer c.Unlock()

	types.ExecLock.Lock()
	defer types.ExecLock.Unlock()

	return c.ctx.Call(from, to, method, args)
}

// ChainID returns the id of the chain
func (c *Chain) ChainID() uint64 {
	c.Lock()
	defer c.Unlock()

	return c.ctx.ChainID().Uint64()
}

// Height returns the height of the committed context
func (c *Chain) Height() uint32 {
	c.Lock()
	defer c.Unlock()

	return c.ctx.TargetHeight()
}

// Timestamp returns the timestamp of the committed context in nanoseconds
func (c *Chain) Timestamp() uint64 {
	c.Lock()
	defer c.Unlock()

	return c.ctx.LastTimestamp()
}

// Balance returns the native balance of the address
func (c *Chain) Balance(addr common.Address) *amount.Amount {
	c.Lock()
	defer c.Unlock()

	return c.ctx.Balance(addr)
}

// Seq returns the next transaction sequence of the address
func (c *Chain) Seq(addr common.Address) uint64 {
	c.Lock()
	defer c.Unlock()

	return c.ctx.AddrSeq(addr)
}
