package amount

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// FractionalCount is the number of decimals of a whole coin
const FractionalCount = 18

// MaxDecimals bounds the decimals a token may declare
const MaxDecimals = 77

// COIN is 1 coin
var COIN = NewAmount(1, 0)

var zeroInt = big.NewInt(0)

// Amount is an unsigned fixed point value based on the big.Int
type Amount struct {
	*big.Int
}

func newAmount(value int64) *Amount {
	return &Amount{
		Int: big.NewInt(value),
	}
}

// NewAmount returns i whole coins plus f base units with 18 decimals
func NewAmount(i uint64, f uint64) *Amount {
	am := newAmount(0)
	am.Int.SetUint64(i)
	am.Int.Mul(am.Int, pow10(FractionalCount))
	am.Int.Add(am.Int, new(big.Int).SetUint64(f))
	return am
}

// NewAmountFromBytes parse the amount from the big endian byte array
func NewAmountFromBytes(bs []byte) *Amount {
	b := newAmount(0)
	b.Int.SetBytes(bs)
	return b
}

// NewAmountFromBig copies the big.Int into a new amount
func NewAmountFromBig(bi *big.Int) *Amount {
	if bi == nil {
		return newAmount(0)
	}
	return &Amount{Int: new(big.Int).Set(bi)}
}

// NewAmountFromUnits returns the base unit amount of a token which has the decimals
func NewAmountFromUnits(i uint64, decimals int) *Amount {
	am := newAmount(0)
	am.Int.SetUint64(i)
	am.Int.Mul(am.Int, pow10(decimals))
	return am
}

// MarshalJSON is a marshaler function
func (am *Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + am.String() + `"`), nil
}

// UnmarshalJSON is a unmarshaler function
func (am *Amount) UnmarshalJSON(bs []byte) error {
	if len(bs) < 3 {
		return errors.WithStack(ErrInvalidAmountFormat)
	}
	if bs[0] != '"' || bs[len(bs)-1] != '"' {
		return errors.WithStack(ErrInvalidAmountFormat)
	}
	v, err := ParseAmount(string(bs[1 : len(bs)-1]))
	if err != nil {
		return err
	}
	am.Int = v.Int
	return nil
}

// Clone returns the clonend value of it
func (am *Amount) Clone() *Amount {
	return &Amount{Int: new(big.Int).Set(am.Int)}
}

// Add returns a + b (*immutable)
func (am *Amount) Add(b *Amount) *Amount {
	c := newAmount(0)
	c.Int.Add(am.Int, b.Int)
	return c
}

// Sub returns a - b (*immutable)
func (am *Amount) Sub(b *Amount) *Amount {
	c := newAmount(0)
	c.Int.Sub(am.Int, b.Int)
	return c
}

// Div returns a / b (*immutable)
func (am *Amount) Div(b *Amount) *Amount {
	c := newAmount(0)
	c.Int.Div(am.Int, b.Int)
	return c
}

// DivC returns a / b (*immutable)
func (am *Amount) DivC(b int64) *Amount {
	c := newAmount(0)
	c.Int.Div(am.Int, big.NewInt(b))
	return c
}

// Mul returns a * b (*immutable)
func (am *Amount) Mul(b *Amount) *Amount {
	c := newAmount(0)
	c.Int.Mul(am.Int, b.Int)
	return c
}

// MulC returns a * b (*immutable)
func (am *Amount) MulC(b int64) *Amount {
	c := newAmount(0)
	c.Int.Mul(am.Int, big.NewInt(b))
	return c
}

// IsZero returns a == 0
func (am *Amount) IsZero() bool {
	return am.Int.Cmp(zeroInt) == 0
}

// IsPlus returns a > 0
func (am *Amount) IsPlus() bool {
	return am.Int.Cmp(zeroInt) > 0
}

// IsMinus returns a < 0
func (am *Amount) IsMinus() bool {
	return am.Int.Cmp(zeroInt) < 0
}

// Less returns a < b
func (am *Amount) Less(b *Amount) bool {
	return am.Int.Cmp(b.Int) < 0
}

// Equal checks that two values is same or not
func (am *Amount) Equal(b *Amount) bool {
	return am.Int.Cmp(b.Int) == 0
}

// String returns the float string of the amount with 18 decimals
func (am *Amount) String() string {
	return am.Format(FractionalCount)
}

// Format returns the float string of the amount with the decimals
func (am *Amount) Format(decimals int) string {
	if am.IsZero() {
		return "0"
	}
	sign := ""
	str := am.Int.String()
	if str[0] == '-' {
		sign = "-"
		str = str[1:]
	}
	if decimals <= 0 {
		return sign + str
	}
	if len(str) <= decimals {
		str = strings.Repeat("0", decimals-len(str)+1) + str
	}
	si := str[:len(str)-decimals]
	sf := strings.TrimRight(str[len(str)-decimals:], "0")
	if len(sf) > 0 {
		return sign + si + "." + sf
	}
	return sign + si
}

// ParseAmount parse the amount from the float string with 18 decimals
func ParseAmount(str string) (*Amount, error) {
	return ParseUnits(str, FractionalCount)
}

// ParseUnits parse the float string into base units of a token which has the decimals
func ParseUnits(str string, decimals int) (*Amount, error) {
	if decimals < 0 || decimals > MaxDecimals {
		return nil, errors.WithStack(ErrInvalidDecimals)
	}
	str = strings.TrimSpace(str)
	if len(str) == 0 {
		return nil, errors.WithStack(ErrInvalidAmountFormat)
	}
	ls := strings.SplitN(str, ".", 2)
	si := ls[0]
	sf := ""
	if len(ls) == 2 {
		sf = ls[1]
	}
	if len(si) == 0 && len(sf) == 0 {
		return nil, errors.WithStack(ErrInvalidAmountFormat)
	}
	if len(sf) > decimals {
		if strings.TrimRight(sf[decimals:], "0") != "" {
			return nil, errors.Wrapf(ErrInvalidAmountFormat, "%v has more than %v decimals", str, decimals)
		}
		sf = sf[:decimals]
	}
	digits := si + sf + strings.Repeat("0", decimals-len(sf))
	for _, c := range digits {
		if c < '0' || c > '9' {
			return nil, errors.WithStack(ErrInvalidAmountFormat)
		}
	}
	bi, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, errors.WithStack(ErrInvalidAmountFormat)
	}
	return &Amount{Int: bi}, nil
}

// MustParseAmount parse the amount from the float string
func MustParseAmount(str string) *Amount {
	am, err := ParseAmount(str)
	if err != nil {
		panic(err)
	}
	return am
}

// MustParseUnits panics when the string is not a valid amount of the decimals
func MustParseUnits(str string, decimals int) *Amount {
	am, err := ParseUnits(str, decimals)
	if err != nil {
		panic(err)
	}
	return am
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}
