package types

import (
	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/hash"
)

// Receipt is the outcome of an executed transaction
type Receipt struct {
	TxHash  hash.Hash256       `json:"txHash"`
	From    common.Address     `json:"from"`
	To      common.Address     `json:"to"`
	Method  string             `json:"method"`
	Success bool               `json:"success"`
	Error   string             `json:"error,omitempty"`
	Result  []interface{}      `json:"result,omitempty"`
	Events  []*MethodCallEvent `json:"events"`
}

// Err returns the failure of the call as an error or nil
func (r *Receipt) Err() error {
	if r.Success {
		return nil
	}
	return &CallError{Message: r.Error}
}

// CallError is a reverted call
type CallError struct {
	Message string
}

func (e *CallError) Error() string {
	return e.Message
}
