package types

import (
	"bytes"
	"encoding/hex"

	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
	"github.com/meverselabs/useswap/common/bin"
	"github.com/meverselabs/useswap/common/hash"
	"github.com/tidwall/btree"
)

// state key prefixes, shared by the context hash and the store
const (
	tagData           = byte('d')
	tagBalance        = byte('b')
	tagContractDefine = byte('c')
	tagAddrSeq        = byte('s')
	tagSeq            = byte('n')
	tagHeader         = byte('h')
)

// ContextData is a state data of the context
type ContextData struct {
	loader            Loader
	Parent            *ContextData
	ContractDefineMap map[common.Address]*ContractDefine
	DataMap           map[string][]byte
	DeletedDataMap    map[string]bool
	BalanceMap        map[common.Address]*amount.Amount
	AddrSeqMap        map[common.Address]uint64
	seq               uint32
	hasSeq            bool
}

// NewContextData returns a ContextData
func NewContextData(loader Loader, Parent *ContextData) *ContextData {
	return &ContextData{
		loader:            loader,
		Parent:            Parent,
		ContractDefineMap: map[common.Address]*ContractDefine{},
		DataMap:           map[string][]byte{},
		DeletedDataMap:    map[string]bool{},
		BalanceMap:        map[common.Address]*amount.Amount{},
		AddrSeqMap:        map[common.Address]uint64{},
	}
}

func dataKey(cont common.Address, addr common.Address, name []byte) string {
	return string(cont[:]) + string(addr[:]) + string(name)
}

// IsContract returns is the contract
func (ctd *ContextData) IsContract(addr common.Address) bool {
	return ctd.ContractDefine(addr) != nil
}

// ContractDefine returns the define of the contract or nil
func (ctd *ContextData) ContractDefine(addr common.Address) *ContractDefine {
	if cd, has := ctd.ContractDefineMap[addr]; has {
		return cd
	} else if ctd.Parent != nil {
		return ctd.Parent.ContractDefine(addr)
	}
	return ctd.loader.ContractDefine(addr)
}

// Seq returns the current deploy sequence
func (ctd *ContextData) Seq() uint32 {
	if ctd.hasSeq {
		return ctd.seq
	} else if ctd.Parent != nil {
		return ctd.Parent.Seq()
	}
	return ctd.loader.Seq()
}

// NextSeq returns the next squence number
func (ctd *ContextData) NextSeq() uint32 {
	ctd.seq = ctd.Seq() + 1
	ctd.hasSeq = true
	return ctd.seq
}

// AddrSeq returns the sequence of the target account
func (ctd *ContextData) AddrSeq(addr common.Address) uint64 {
	if seq, has := ctd.AddrSeqMap[addr]; has {
		return seq
	} else if ctd.Parent != nil {
		return ctd.Parent.AddrSeq(addr)
	}
	return ctd.loader.AddrSeq(addr)
}

// AddAddrSeq update the sequence of the target account
func (ctd *ContextData) AddAddrSeq(addr common.Address) {
	ctd.AddrSeqMap[addr] = ctd.AddrSeq(addr) + 1
}

// Balance returns the native balance of the address
func (ctd *ContextData) Balance(addr common.Address) *amount.Amount {
	if bal, has := ctd.BalanceMap[addr]; has {
		return bal.Clone()
	} else if ctd.Parent != nil {
		return ctd.Parent.Balance(addr)
	}
	return ctd.loader.Balance(addr)
}

// SetBalance updates the native balance of the address
func (ctd *ContextData) SetBalance(addr common.Address, bal *amount.Amount) {
	ctd.BalanceMap[addr] = bal.Clone()
}

// Data returns a copy of the data
func (ctd *ContextData) Data(cont common.Address, addr common.Address, name []byte) []byte {
	key := dataKey(cont, addr, name)
	if _, has := ctd.DeletedDataMap[key]; has {
		return nil
	}
	var value []byte
	if v, has := ctd.DataMap[key]; has {
		value = v
	} else if ctd.Parent != nil {
		return ctd.Parent.Data(cont, addr, name)
	} else {
		value = ctd.loader.Data(cont, addr, name)
	}
	if len(value) == 0 {
		return nil
	}
	nvalue := make([]byte, len(value))
	copy(nvalue, value)
	return nvalue
}

// SetData inserts the data, an empty value deletes it
func (ctd *ContextData) SetData(cont common.Address, addr common.Address, name []byte, value []byte) {
	key := dataKey(cont, addr, name)
	if len(value) == 0 {
		delete(ctd.DataMap, key)
		ctd.DeletedDataMap[key] = true
	} else {
		delete(ctd.DeletedDataMap, key)
		nvalue := make([]byte, len(value))
		copy(nvalue, value)
		ctd.DataMap[key] = nvalue
	}
}

// mergeInto applies the changes of the context data to the target
func (ctd *ContextData) mergeInto(top *ContextData) {
	for addr, cd := range ctd.ContractDefineMap {
		top.ContractDefineMap[addr] = cd
	}
	for key, value := range ctd.DataMap {
		delete(top.DeletedDataMap, key)
		top.DataMap[key] = value
	}
	for key := range ctd.DeletedDataMap {
		delete(top.DataMap, key)
		top.DeletedDataMap[key] = true
	}
	for addr, bal := range ctd.BalanceMap {
		top.BalanceMap[addr] = bal
	}
	for addr, seq := range ctd.AddrSeqMap {
		top.AddrSeqMap[addr] = seq
	}
	if ctd.hasSeq {
		top.seq = ctd.seq
		top.hasSeq = true
	}
}

type stateEntry struct {
	value   []byte
	deleted bool
}

// entries returns the changes of it ordered by the store key
func (ctd *ContextData) entries() *btree.Map[string, stateEntry] {
	m := &btree.Map[string, stateEntry]{}
	for addr, cd := range ctd.ContractDefineMap {
		m.Set(string(append([]byte{tagContractDefine}, addr[:]...)), stateEntry{value: bin.MustWriterToBytes(cd)})
	}
	for key, value := range ctd.DataMap {
		m.Set(string(tagData)+key, stateEntry{value: value})
	}
	for key := range ctd.DeletedDataMap {
		m.Set(string(tagData)+key, stateEntry{deleted: true})
	}
	for addr, bal := range ctd.BalanceMap {
		m.Set(string(append([]byte{tagBalance}, addr[:]...)), stateEntry{value: bal.Bytes()})
	}
	for addr, seq := range ctd.AddrSeqMap {
		m.Set(string(append([]byte{tagAddrSeq}, addr[:]...)), stateEntry{value: bin.Uint64Bytes(seq)})
	}
	if ctd.hasSeq {
		m.Set(string(tagSeq), stateEntry{value: bin.Uint32Bytes(ctd.seq)})
	}
	return m
}

// Hash returns the hash value of the changes
func (ctd *ContextData) Hash() hash.Hash256 {
	var buffer bytes.Buffer
	ctd.entries().Scan(func(key string, e stateEntry) bool {
		buffer.WriteString(key)
		if e.deleted {
			buffer.WriteByte(0)
		} else {
			buffer.WriteByte(1)
			buffer.Write(bin.Uint32Bytes(uint32(len(e.value))))
			buffer.Write(e.value)
		}
		return true
	})
	return hash.Hash(buffer.Bytes())
}

// Dump prints the changes of the context data
func (ctd *ContextData) Dump() string {
	var buffer bytes.Buffer
	ctd.entries().Scan(func(key string, e stateEntry) bool {
		buffer.WriteString(hex.EncodeToString([]byte(key)))
		if e.deleted {
			buffer.WriteString(" deleted")
		} else {
			buffer.WriteString(" ")
			buffer.WriteString(hex.EncodeToString(e.value))
		}
		buffer.WriteString("\n")
		return true
	})
	return buffer.String()
}
