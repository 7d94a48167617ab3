package types

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
	"github.com/pkg/errors"
)

// MaxCallDepth bounds nested contract calls
const MaxCallDepth = 64

var errType = reflect.TypeOf((*error)(nil)).Elem()

type IInteractor interface {
	Exec(Cc *ContractContext, Addr common.Address, MethodName string, Args []interface{}) ([]interface{}, error)
	ExecWithValue(Cc *ContractContext, Addr common.Address, Value *amount.Amount, MethodName string, Args []interface{}) ([]interface{}, error)
	EventList() []*MethodCallEvent
}

type ExecFunc = func(Cc *ContractContext, Addr common.Address, MethodName string, Args []interface{}) ([]interface{}, error)

type ExecWithValueFunc = func(Cc *ContractContext, Addr common.Address, Value *amount.Amount, MethodName string, Args []interface{}) ([]interface{}, error)

type interactor struct {
	ctx       *Context
	eventList []*MethodCallEvent
	depth     int
}

func NewInteractor(ctx *Context) IInteractor {
	return &interactor{
		ctx:       ctx,
		eventList: []*MethodCallEvent{},
	}
}

func (i *interactor) Exec(Cc *ContractContext, ContAddr common.Address, MethodName string, Args []interface{}) ([]interface{}, error) {
	return i.ExecWithValue(Cc, ContAddr, nil, MethodName, Args)
}

// ExecWithValue calls the method of the contract in its own snapshot, moving the value from the caller first
func (i *interactor) ExecWithValue(Cc *ContractContext, ContAddr common.Address, Value *amount.Amount, MethodName string, Args []interface{}) ([]interface{}, error) {
	if MethodName == "" {
		return nil, errors.WithStack(ErrMethodNotGiven)
	}
	if i.depth >= MaxCallDepth {
		return nil, errors.WithStack(ErrCallDepthExceeded)
	}
	if Value != nil && Value.IsMinus() {
		return nil, errors.WithStack(ErrInvalidValue)
	}
	cont, err := i.ctx.Contract(ContAddr)
	if err != nil {
		return nil, err
	}
	MethodName = strings.ToUpper(MethodName[:1]) + MethodName[1:]
	rMethod, err := methodByName(cont, ContAddr, MethodName)
	if err != nil {
		return nil, err
	}
	if Value != nil && Value.IsPlus() && !isPayable(cont, MethodName) {
		return nil, errors.Wrapf(ErrNotPayable, "%v of contract(%v)", MethodName, ContAddr.String())
	}
	in, err := ContractInputsConv(Args, rMethod)
	if err != nil {
		return nil, err
	}

	ecc := &ContractContext{
		cont:          ContAddr,
		from:          Cc.cont,
		value:         Value,
		ctx:           i.ctx,
		Exec:          i.Exec,
		ExecWithValue: i.ExecWithValue,
	}
	en := i.addCallEvent(ecc, MethodName, Args)

	sn := i.ctx.Snapshot()
	result, err := i._exec(ecc, rMethod, in, MethodName)
	if err != nil {
		i.ctx.Revert(sn)
		en.Error = err.Error()
		return nil, err
	}
	i.ctx.Commit(sn)
	en.Result = result
	return result, nil
}

func (i *interactor) _exec(ecc *ContractContext, rMethod reflect.Value, in []reflect.Value, MethodName string) (result []interface{}, err error) {
	if err := i.ctx.transferNative(ecc.from, ecc.cont, ecc.value); err != nil {
		return nil, err
	}
	in = append([]reflect.Value{reflect.ValueOf(ecc)}, in...)

	i.depth++
	defer func() {
		i.depth--
	}()
	vs, err := func() (vs []reflect.Value, err error) {
		defer func() {
			if v := recover(); v != nil {
				err = fmt.Errorf("occur error call method(%v) of contract(%v) message: %v", MethodName, ecc.cont.String(), v)
			}
		}()
		return rMethod.Call(in), nil
	}()
	if err != nil {
		return nil, err
	}
	return getResults(rMethod.Type(), vs)
}

func (i *interactor) EventList() []*MethodCallEvent {
	return i.eventList
}

func (i *interactor) addCallEvent(ecc *ContractContext, MethodName string, Args []interface{}) *MethodCallEvent {
	mc := &MethodCallEvent{
		Depth:  i.depth,
		From:   ecc.from,
		To:     ecc.cont,
		Method: MethodName,
		Args:   Args,
	}
	if ecc.value != nil && ecc.value.IsPlus() {
		mc.Value = ecc.value.Clone()
	}
	i.eventList = append(i.eventList, mc)
	return mc
}

func getResults(mType reflect.Type, vs []reflect.Value) (result []interface{}, err error) {
	result = []interface{}{}
	for i, v := range vs {
		vi := v.Interface()
		if mType.Out(i).Kind() == reflect.Interface && mType.Out(i).Implements(errType) {
			if _err, ok := vi.(error); ok {
				err = _err
			}
			continue
		}
		result = append(result, vi)
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func isPayable(cont Contract, MethodName string) bool {
	if p, ok := cont.(PayableContract); ok {
		return p.Payable(MethodName)
	}
	return false
}

func methodByName(cont Contract, Addr common.Address, MethodName string) (reflect.Value, error) {
	vo := reflect.ValueOf(cont.Front())
	if !vo.IsValid() {
		return reflect.Value{}, errors.New("wrong contract")
	}
	method := vo.MethodByName(MethodName)
	if !method.IsValid() {
		return reflect.Value{}, errors.Wrapf(ErrMethodNotExist, "%v of contract(%v)", MethodName, Addr.String())
	}
	mt := method.Type()
	if mt.NumIn() < 1 || mt.In(0) != reflect.TypeOf(&ContractContext{}) {
		return reflect.Value{}, errors.Wrapf(ErrMethodNotExist, "%v of contract(%v) is not callable", MethodName, Addr.String())
	}
	return method, nil
}
