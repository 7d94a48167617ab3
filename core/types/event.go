package types

import (
	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
)

// MethodCallEvent records a contract call made while executing a transaction
type MethodCallEvent struct {
	Depth  int            `json:"depth"`
	From   common.Address `json:"from"`
	To     common.Address `json:"to"`
	Method string         `json:"method"`
	Args   []interface{}  `json:"args"`
	Value  *amount.Amount `json:"value,omitempty"`
	Result []interface{}  `json:"result,omitempty"`
	Error  string         `json:"error,omitempty"`
}
