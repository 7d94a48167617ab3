package useswap

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/pkg/errors"
)

// ABIJSON is the ethereum abi of the contract surface
const ABIJSON = `[
	{"type":"constructor","inputs":[{"name":"_router","type":"address"}],"stateMutability":"nonpayable"},
	{"type":"function","name":"uniswapRouter","inputs":[],"outputs":[{"name":"","type":"address"}],"stateMutability":"view"},
	{"type":"function","name":"swapCount","inputs":[],"outputs":[{"name":"","type":"uint256"}],"stateMutability":"view"},
	{"type":"function","name":"handleSwap","inputs":[
		{"name":"amountOut","type":"uint256"},
		{"name":"amountInMax","type":"uint256"},
		{"name":"path","type":"address[]"},
		{"name":"to","type":"address"},
		{"name":"deadline","type":"uint256"}
	],"outputs":[{"name":"amounts","type":"uint256[]"}],"stateMutability":"nonpayable"},
	{"type":"function","name":"handleETHSwapForTokens","inputs":[
		{"name":"amountOutMin","type":"uint256"},
		{"name":"path","type":"address[]"},
		{"name":"to","type":"address"},
		{"name":"deadline","type":"uint256"}
	],"outputs":[{"name":"amounts","type":"uint256[]"}],"stateMutability":"payable"},
	{"type":"function","name":"addLiquidity","inputs":[
		{"name":"tokenA","type":"address"},
		{"name":"tokenB","type":"address"},
		{"name":"amountADesired","type":"uint256"},
		{"name":"amountBDesired","type":"uint256"},
		{"name":"amountAMin","type":"uint256"},
		{"name":"amountBMin","type":"uint256"},
		{"name":"to","type":"address"},
		{"name":"deadline","type":"uint256"}
	],"outputs":[
		{"name":"amountA","type":"uint256"},
		{"name":"amountB","type":"uint256"},
		{"name":"liquidity","type":"uint256"}
	],"stateMutability":"nonpayable"},
	{"type":"function","name":"addLiquidityETH","inputs":[
		{"name":"token","type":"address"},
		{"name":"amountTokenDesired","type":"uint256"},
		{"name":"amountTokenMin","type":"uint256"},
		{"name":"amountETHMin","type":"uint256"},
		{"name":"to","type":"address"},
		{"name":"deadline","type":"uint256"}
	],"outputs":[
		{"name":"amountToken","type":"uint256"},
		{"name":"amountETH","type":"uint256"},
		{"name":"liquidity","type":"uint256"}
	],"stateMutability":"payable"},
	{"type":"function","name":"removeLiquidity","inputs":[
		{"name":"tokenA","type":"address"},
		{"name":"tokenB","type":"address"},
		{"name":"liquidity","type":"uint256"},
		{"name":"amountAMin","type":"uint256"},
		{"name":"amountBMin","type":"uint256"},
		{"name":"to","type":"address"},
		{"name":"deadline","type":"uint256"},
		{"name":"pair","type":"address"}
	],"outputs":[
		{"name":"amountA","type":"uint256"},
		{"name":"amountB","type":"uint256"}
	],"stateMutability":"nonpayable"}
]`

var ABI abi.ABI

func init() {
	var err error
	ABI, err = abi.JSON(strings.NewReader(ABIJSON))
	if err != nil {
		panic(err)
	}
}

// DecodeCall splits abi encoded calldata into the method name and its arguments.
// The arguments keep the abi types (*big.Int, common.Address, []common.Address) which the runtime converts on call.
func DecodeCall(data []byte) (string, []interface{}, error) {
	if len(data) < 4 {
		return "", nil, errors.Errorf("calldata too short %v", len(data))
	}
	m, err := ABI.MethodById(data[:4])
	if err != nil {
		return "", nil, errors.WithStack(err)
	}
	args, err := m.Inputs.Unpack(data[4:])
	if err != nil {
		return "", nil, errors.Wrap(err, m.Name)
	}
	return m.Name, args, nil
}

// EncodeCall packs the method call into abi calldata
func EncodeCall(method string, args ...interface{}) ([]byte, error) {
	bs, err := ABI.Pack(method, args...)
	if err != nil {
		return nil, errors.Wrap(err, method)
	}
	return bs, nil
}
