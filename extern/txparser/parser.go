package txparser

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
	etypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/amount"
	"github.com/meverselabs/useswap/contract/useswap"
	"github.com/pkg/errors"
)

// errors
var (
	ErrNotFoundFuncSig = errors.New("not found func sig")
	ErrInvalidTx       = errors.New("invalid tx")
	ErrOutputCount     = errors.New("invalid output count")
)

var (
	sigLock sync.RWMutex
	// signature or hex selector -> output types -> method
	funcSigs map[string]map[string]abi.Method

	TRANSFER  = ERCFuncSignature("transfer(address,uint256)")
	BALANCEOF = ERCFuncSignature("balanceOf(address)")
)

func init() {
	funcSigs = map[string]map[string]abi.Method{}
	for _, v := range [][]byte{
		IERC20,
		[]byte(useswap.ABIJSON),
	} {
		if err := AddABI(v); err != nil {
			panic(err)
		}
	}
}

// AddABI registers every method of the json abi
func AddABI(rawABI []byte) error {
	a, err := abi.JSON(bytes.NewReader(rawABI))
	if err != nil {
		return errors.WithStack(err)
	}
	for _, m := range a.Methods {
		AddAbi(m)
	}
	return nil
}

func AddAbi(m abi.Method) {
	outputArr := make([]string, len(m.Outputs))
	for i, o := range m.Outputs {
		outputArr[i] = o.Type.String()
	}
	output := strings.Join(outputArr, ",")

	sigLock.Lock()
	defer sigLock.Unlock()

	outMap := funcSigs[m.Sig]
	if outMap == nil {
		outMap = map[string]abi.Method{}
	}
	outMap[output] = m

	funcSigs[m.Sig] = outMap
	funcSigs[hex.EncodeToString(m.ID)] = outMap
}

// Abi returns a method registered by the signature or the hex selector
func Abi(method string) (abi.Method, bool) {
	sigLock.RLock()
	defer sigLock.RUnlock()

	for _, m := range funcSigs[method] {
		return m, true
	}
	return abi.Method{}, false
}

// Inputs finds the method of the calldata selector and unpacks its arguments
func Inputs(data []byte) (abi.Method, []interface{}, error) {
	if len(data) < 4 {
		return abi.Method{}, nil, errors.WithStack(ErrNotFoundFuncSig)
	}
	m, has := Abi(hex.EncodeToString(data[:4]))
	if !has {
		return abi.Method{}, nil, errors.Wrap(ErrNotFoundFuncSig, hex.EncodeToString(data[:4]))
	}
	obj, err := m.Inputs.Unpack(data[4:])
	if err != nil {
		return abi.Method{}, nil, errors.Wrap(err, m.Sig)
	}
	return m, obj, nil
}

// Outputs packs the results of a call as the abi outputs of the method
func Outputs(method string, data []interface{}) ([]byte, error) {
	sigLock.RLock()
	ms := funcSigs[method]
	sigLock.RUnlock()
	if len(ms) == 0 {
		return nil, errors.Wrap(ErrNotFoundFuncSig, method)
	}

	for i, v := range data {
		switch tv := v.(type) {
		case *amount.Amount:
			data[i] = tv.Int
		case []*amount.Amount:
			bis := make([]*big.Int, 0, len(tv))
			for _, a := range tv {
				bis = append(bis, a.Int)
			}
			data[i] = bis
		}
	}

	var err error
	for _, m := range ms {
		bs, _err := getOutput(m, data)
		if _err == nil {
			return bs, nil
		}
		err = _err
	}
	return nil, err
}

func getOutput(m abi.Method, data []interface{}) ([]byte, error) {
	if len(m.Outputs) != len(data) {
		return nil, errors.WithStack(ErrOutputCount)
	}
	vs := make([]interface{}, len(data))
	copy(vs, data)
	for i, ot := range m.Outputs {
		var err error
		switch ot.Type.T {
		case abi.UintTy, abi.IntTy:
			vs[i], err = toBigInt(vs[i])
		case abi.AddressTy:
			if s, ok := vs[i].(string); ok {
				vs[i] = common.HexToAddress(s)
			}
		case abi.StringTy:
			if s, ok := vs[i].(fmt.Stringer); ok {
				vs[i] = s.String()
			}
		}
		if err != nil {
			return nil, err
		}
	}
	bs, err := m.Outputs.Pack(vs...)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return bs, nil
}

// toBigInt accepts go integers and decimal or 0x hex strings
func toBigInt(v interface{}) (*big.Int, error) {
	switch tv := v.(type) {
	case *big.Int:
		return tv, nil
	case uint64:
		return new(big.Int).SetUint64(tv), nil
	case uint32, uint16, uint8, uint:
		n, _ := strconv.ParseUint(fmt.Sprintf("%v", tv), 10, 64)
		return new(big.Int).SetUint64(n), nil
	case int64, int32, int16, int8, int:
		n, _ := strconv.ParseInt(fmt.Sprintf("%v", tv), 10, 64)
		return big.NewInt(n), nil
	}
	s := fmt.Sprintf("%v", v)
	base := 10
	if strings.HasPrefix(s, "0x") {
		base = 16
		s = s[2:]
	}
	bi, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, errors.Errorf("invalid bigInt value %v", v)
	}
	return bi, nil
}

// ERCFuncSignature returns the hex selector of the function signature like "transfer(address,uint256)"
func ERCFuncSignature(fn string) string {
	return hex.EncodeToString(crypto.Keccak256([]byte(fn))[:4])
}

// EthTxFromRLP decodes a signed ethereum transaction and returns it with its 65 byte r|s|recovery id signature
func EthTxFromRLP(rlpBytes []byte) (*etypes.Transaction, []byte, error) {
	if len(rlpBytes) == 0 {
		return nil, nil, errors.WithStack(ErrInvalidTx)
	}

	etx := &etypes.Transaction{}
	if err := etx.UnmarshalBinary(rlpBytes); err != nil {
		return nil, nil, errors.WithStack(err)
	}
	v, r, s := etx.RawSignatureValues()

	recID := new(big.Int).Set(v)
	if etx.Type() == etypes.LegacyTxType {
		if etx.Protected() {
			// v = chainID*2 + 35 + recID
			recID.Sub(recID, new(big.Int).Add(new(big.Int).Lsh(etx.ChainId(), 1), big.NewInt(35)))
		} else {
			recID.Sub(recID, big.NewInt(27))
		}
	}
	if recID.Sign() < 0 || recID.Cmp(big.NewInt(1)) > 0 {
		return nil, nil, errors.Wrap(ErrInvalidTx, "recovery id")
	}

	sig := make([]byte, 0, 65)
	sig = appendLeftZeroPad(sig, 32, r.Bytes()...)
	sig = appendLeftZeroPad(sig, 32, s.Bytes()...)
	sig = append(sig, byte(recID.Uint64()))

	return etx, sig, nil
}

// EthTxSender recovers the signer of the transaction
func EthTxSender(etx *etypes.Transaction) (common.Address, error) {
	from, err := etypes.Sender(etypes.LatestSignerForChainID(etx.ChainId()), etx)
	if err != nil {
		return common.ZeroAddr, errors.WithStack(err)
	}
	return from, nil
}

func appendLeftZeroPad(app []byte, size int, padd ...byte) []byte {
	if len(padd) < size {
		bs := make([]byte, size)
		copy(bs[size-len(padd):], padd)
		padd = bs
	}
	return append(app, padd...)
}
