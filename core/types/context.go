package types

import (
	"math/big"
	"sync"

	"github.com/bluele/gcache"
	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
	"github.com/meverselabs/useswap/common/bin"
	"github.com/meverselabs/useswap/common/hash"
	"github.com/pkg/errors"
)

// ExecLock serializes transaction execution on contexts
var ExecLock sync.Mutex

// ContractCacheSize is the number of contract instances kept per context
const ContractCacheSize = 256

// Context is an intermediate in-memory state using the context data stack between blocks
type Context struct {
	loader          Loader
	genTargetHeight uint32
	genLastHash     hash.Hash256
	genTimestamp    uint64
	stack           []*ContextData
	conCache        gcache.Cache
	isLatestHash    bool
	dataHash        hash.Hash256
}

// NewContext returns a Context
func NewContext(loader Loader) *Context {
	ctx := &Context{
		loader:          loader,
		genTargetHeight: loader.TargetHeight(),
		genLastHash:     loader.LastHash(),
		genTimestamp:    loader.LastTimestamp(),
		conCache:        gcache.New(ContractCacheSize).LRU().Build(),
	}
	ctx.stack = []*ContextData{NewContextData(loader, nil)}
	return ctx
}

// NewEmptyContext returns a genesis context of the chain at the timestamp in nanoseconds
func NewEmptyContext(chainID *big.Int, Timestamp uint64) *Context {
	return NewContext(newEmptyLoader(chainID, Timestamp))
}

// NextContext returns the next Context of the Context
func (ctx *Context) NextContext(Timestamp uint64) *Context {
	nctx := NewContext(ctx)
	nctx.genTargetHeight = ctx.genTargetHeight + 1
	nctx.genLastHash = ctx.Hash()
	nctx.genTimestamp = Timestamp
	return nctx
}

// ChainID returns the id of the chain
func (ctx *Context) ChainID() *big.Int {
	return ctx.loader.ChainID()
}

// Hash returns the hash value of it
func (ctx *Context) Hash() hash.Hash256 {
	if !ctx.isLatestHash {
		ctx.dataHash = hash.Hashes(ctx.genLastHash, ctx.Top().Hash())
		ctx.isLatestHash = true
	}
	return ctx.dataHash
}

// TargetHeight returns the recorded target height when context generation
func (ctx *Context) TargetHeight() uint32 {
	return ctx.genTargetHeight
}

// LastHash returns the recorded prev hash when context generation
func (ctx *Context) LastHash() hash.Hash256 {
	return ctx.genLastHash
}

// LastTimestamp returns the timestamp of the context in nanoseconds
func (ctx *Context) LastTimestamp() uint64 {
	return ctx.genTimestamp
}

// Top returns the top snapshot
func (ctx *Context) Top() *ContextData {
	return ctx.stack[len(ctx.stack)-1]
}

// Seq returns the deploy sequence
func (ctx *Context) Seq() uint32 {
	return ctx.Top().Seq()
}

// AddrSeq returns the sequence of the target account
func (ctx *Context) AddrSeq(addr common.Address) uint64 {
	return ctx.Top().AddrSeq(addr)
}

// AddAddrSeq update the sequence of the target account
func (ctx *Context) AddAddrSeq(addr common.Address) {
	ctx.isLatestHash = false
	ctx.Top().AddAddrSeq(addr)
}

// Balance returns the native balance of the address
func (ctx *Context) Balance(addr common.Address) *amount.Amount {
	return ctx.Top().Balance(addr)
}

// SetBalance overrides the native balance of the address, it is used for genesis funding
func (ctx *Context) SetBalance(addr common.Address, bal *amount.Amount) {
	ctx.isLatestHash = false
	ctx.Top().SetBalance(addr, bal)
}

func (ctx *Context) transferNative(from common.Address, to common.Address, am *amount.Amount) error {
	if am == nil || am.IsZero() {
		return nil
	}
	if am.IsMinus() {
		return errors.WithStack(ErrInvalidValue)
	}
	if from == to {
		return nil
	}
	bal := ctx.Balance(from)
	if bal.Less(am) {
		return errors.Wrapf(ErrInsufficientBalance, "%v has %v, needs %v", from.String(), bal.String(), am.String())
	}
	ctx.isLatestHash = false
	ctx.Top().SetBalance(from, bal.Sub(am))
	ctx.Top().SetBalance(to, ctx.Balance(to).Add(am))
	return nil
}

// Data returns the contract data from the top snapshot
func (ctx *Context) Data(cont common.Address, addr common.Address, name []byte) []byte {
	return ctx.Top().Data(cont, addr, name)
}

// SetData inserts the contract data to the top snapshot
func (ctx *Context) SetData(cont common.Address, addr common.Address, name []byte, value []byte) {
	ctx.isLatestHash = false
	ctx.Top().SetData(cont, addr, name, value)
}

// ContractDefine returns the define of the contract or nil
func (ctx *Context) ContractDefine(addr common.Address) *ContractDefine {
	return ctx.Top().ContractDefine(addr)
}

// IsContract returns is the contract
func (ctx *Context) IsContract(addr common.Address) bool {
	return ctx.Top().IsContract(addr)
}

// Contract returns the contract instance of the address
func (ctx *Context) Contract(addr common.Address) (Contract, error) {
	cd := ctx.ContractDefine(addr)
	if cd == nil {
		return nil, errors.Wrap(ErrNotExistContract, addr.String())
	}
	key := string(addr[:]) + string(bin.Uint64Bytes(cd.ClassID))
	if v, err := ctx.conCache.Get(key); err == nil {
		return v.(Contract), nil
	}
	cont, err := CreateContract(cd)
	if err != nil {
		return nil, err
	}
	_ = ctx.conCache.Set(key, cont)
	return cont, nil
}

// ContractAddress returns the address the next deploy of the sender will use
func ContractAddress(sender common.Address, ClassID uint64, seq uint32) common.Address {
	base := make([]byte, 1+common.AddressLength+8+4)
	base[0] = 0xff
	copy(base[1:], sender[:])
	copy(base[1+common.AddressLength:], bin.Uint64Bytes(ClassID))
	copy(base[1+common.AddressLength+8:], bin.Uint32Bytes(seq))
	h := hash.Hash(base)
	return common.BytesToAddress(h[12:])
}

// DeployContract deploy contract to the chain
func (ctx *Context) DeployContract(sender common.Address, ClassID uint64, Args []byte) (Contract, error) {
	if !IsValidClassID(ClassID) {
		return nil, errors.WithStack(ErrInvalidClassID)
	}
	sn := ctx.Snapshot()
	addr := ContractAddress(sender, ClassID, ctx.Top().NextSeq())
	cont, err := ctx.DeployContractWithAddress(sender, ClassID, addr, Args)
	if err != nil {
		ctx.Revert(sn)
		return nil, err
	}
	ctx.Commit(sn)
	return cont, nil
}

// DeployContractWithAddress deploy contract to the chain with address
func (ctx *Context) DeployContractWithAddress(sender common.Address, ClassID uint64, addr common.Address, Args []byte) (Contract, error) {
	if ctx.IsContract(addr) {
		return nil, errors.Wrap(ErrExistAddress, addr.String())
	}
	cd := &ContractDefine{
		Address: addr,
		Owner:   sender,
		ClassID: ClassID,
	}
	cont, err := CreateContract(cd)
	if err != nil {
		return nil, err
	}
	sn := ctx.Snapshot()
	ctx.Top().ContractDefineMap[addr] = cd
	if err := cont.OnCreate(ctx.ContractContext(cont, sender), Args); err != nil {
		ctx.Revert(sn)
		return nil, err
	}
	ctx.Commit(sn)
	return cont, nil
}

// ContractContext returns a ContractContext of the contract called by the from address
func (ctx *Context) ContractContext(cont Contract, from common.Address) *ContractContext {
	intr := NewInteractor(ctx)
	return &ContractContext{
		cont:          cont.Address(),
		from:          from,
		ctx:           ctx,
		Exec:          intr.Exec,
		ExecWithValue: intr.ExecWithValue,
	}
}

// Dump prints the top context data of the context
func (ctx *Context) Dump() string {
	return ctx.Top().Dump()
}

// Snapshot push a snapshot and returns the snapshot number of it
func (ctx *Context) Snapshot() int {
	ctx.isLatestHash = false
	ctx.stack = append(ctx.stack, NewContextData(ctx.loader, ctx.Top()))
	return len(ctx.stack)
}

// Revert removes snapshots after the snapshot number
func (ctx *Context) Revert(sn int) {
	ctx.isLatestHash = false
	if sn < 2 {
		sn = 2
	}
	if len(ctx.stack) >= sn {
		ctx.stack = ctx.stack[:sn-1]
	}
}

// Commit apply snapshots to the top after the snapshot number
func (ctx *Context) Commit(sn int) {
	ctx.isLatestHash = false
	if sn < 2 {
		sn = 2
	}
	for len(ctx.stack) >= sn {
		ctd := ctx.Top()
		ctx.stack = ctx.stack[:len(ctx.stack)-1]
		ctd.mergeInto(ctx.Top())
	}
}

// StackSize returns the size of the context data stack
func (ctx *Context) StackSize() int {
	return len(ctx.stack)
}
