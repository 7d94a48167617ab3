package trade

import (
	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/bin"
	"github.com/meverselabs/useswap/core/types"
	"github.com/pkg/errors"

	. "github.com/meverselabs/useswap/contract/exchange/util"
)

// Exchange holds the state shared by pool contracts. It is not deployed alone.
type Exchange struct {
	addr   common.Address
	master common.Address
}

//////////////////////////////////////////////////
// Exchange : contract function
//////////////////////////////////////////////////
func (self *Exchange) Address() common.Address {
	return self.addr
}
func (self *Exchange) Master() common.Address {
	return self.master
}
func (self *Exchange) Init(addr common.Address, master common.Address) {
	self.addr = addr
	self.master = master
}

//////////////////////////////////////////////////
// Exchange Contract : modifier
//////////////////////////////////////////////////
func (self *Exchange) onlyOwner(cc *types.ContractContext) error {
	if cc.From() != self.owner(cc) {
		return errors.WithStack(ErrForbidden)
	}
	return nil
}

// lock is kept in contract data so that a reverted call releases it with its snapshot
func (self *Exchange) lock(cc *types.ContractContext) error {
	if len(cc.ContractData([]byte{tagExLocked})) > 0 {
		return errors.WithStack(ErrLocked)
	}
	cc.SetContractData([]byte{tagExLocked}, []byte{1})
	return nil
}
func (self *Exchange) unlock(cc *types.ContractContext) {
	cc.SetContractData([]byte{tagExLocked}, nil)
}

func (self *Exchange) notKilled(cc *types.ContractContext) error {
	if self.isKilled(cc) {
		return errors.WithStack(ErrKilled)
	}
	return nil
}

//////////////////////////////////////////////////
// Exchange : private reader functions
//////////////////////////////////////////////////
func (self *Exchange) factory(cc *types.ContractContext) common.Address {
	bs := cc.ContractData([]byte{tagFactory})
	return common.BytesToAddress(bs)
}
func (self *Exchange) owner(cc *types.ContractContext) common.Address {
	bs := cc.ContractData([]byte{tagOwner})
	return common.BytesToAddress(bs)
}
func (self *Exchange) fee(cc *types.ContractContext) uint64 {
	bs := cc.ContractData([]byte{tagExFee})
	if len(bs) == 0 {
		return uint64(0)
	}
	return bin.Uint64(bs)
}
func (self *Exchange) isKilled(cc *types.ContractContext) bool {
	bs := cc.ContractData([]byte{tagExIsKilled})
	return len(bs) > 0 && bs[0] != 0
}
func (self *Exchange) blockTimestampLast(cc *types.ContractContext) uint64 {
	bs := cc.ContractData([]byte{tagBlockTimestampLast})
	if len(bs) == 0 {
		return uint64(0)
	}
	return bin.Uint64(bs)
}

//////////////////////////////////////////////////
// Exchange : private writer Functions
//////////////////////////////////////////////////
func (self *Exchange) _setFactory(cc *types.ContractContext, _factory common.Address) {
	cc.SetContractData([]byte{tagFactory}, _factory.Bytes())
}
func (self *Exchange) _setOwner(cc *types.ContractContext, _owner common.Address) error {
	if _owner == ZeroAddress {
		return errors.WithStack(ErrZeroAddress)
	}
	cc.SetContractData([]byte{tagOwner}, _owner.Bytes())
	return nil
}
func (self *Exchange) _setFee(cc *types.ContractContext, _fee uint64) error {
	if _fee > MAX_FEE {
		return errors.Wrapf(ErrFeeRange, "%v > %v", _fee, uint64(MAX_FEE))
	}
	cc.SetContractData([]byte{tagExFee}, bin.Uint64Bytes(_fee))
	return nil
}
func (self *Exchange) _setBlockTimestampLast(cc *types.ContractContext, ts uint64) {
	cc.SetContractData([]byte{tagBlockTimestampLast}, bin.Uint64Bytes(ts))
}

func (self *Exchange) setOwner(cc *types.ContractContext, _owner common.Address) error {
	if err := self.onlyOwner(cc); err != nil {
		return err
	}
	return self._setOwner(cc, _owner)
}
func (self *Exchange) setFee(cc *types.ContractContext, _fee uint64) error {
	if err := self.onlyOwner(cc); err != nil {
		return err
	}
	return self._setFee(cc, _fee)
}
func (self *Exchange) killMe(cc *types.ContractContext) error {
	if err := self.onlyOwner(cc); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagExIsKilled}, []byte{1})
	return nil
}
func (self *Exchange) unkillMe(cc *types.ContractContext) error {
	if err := self.onlyOwner(cc); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagExIsKilled}, nil)
	return nil
}
