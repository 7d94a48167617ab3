package apiserver

import "github.com/pkg/errors"

// errors
var (
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrInvalidArgumentIndex = errors.New("invalid argument index")
	ErrInvalidArgumentType  = errors.New("invalid argument type")
	ErrInvalidMethod        = errors.New("invalid method")
	ErrExistSubName         = errors.New("exist sub name")
	ErrNotFoundReceipt      = errors.New("not found receipt")
)

// json rpc error codes
const (
	CodeParseError     = -32700
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeServerError    = -32000
	// CodeReverted is the code ethereum clients read as a reverted execution
	CodeReverted = 3
)

func errorCode(err error) int {
	switch errors.Cause(err) {
	case ErrInvalidArgument, ErrInvalidArgumentIndex, ErrInvalidArgumentType:
		return CodeInvalidParams
	case ErrInvalidMethod:
		return CodeMethodNotFound
	}
	if _, ok := errors.Cause(err).(*revertError); ok {
		return CodeReverted
	}
	return CodeServerError
}

// revertError is a contract call which returned an error
type revertError struct {
	reason string
}

func (e *revertError) Error() string {
	return "execution reverted: " + e.reason
}
