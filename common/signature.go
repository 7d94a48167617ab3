package common

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

// SignatureSize is r 32 s 32 v 1
const SignatureSize = 65

// Signature is a recoverable secp256k1 signature
type Signature []byte

// MarshalJSON is a marshaler function
func (sig Signature) MarshalJSON() ([]byte, error) {
	return []byte(`"` + sig.String() + `"`), nil
}

// UnmarshalJSON is a unmarshaler function
func (sig *Signature) UnmarshalJSON(bs []byte) error {
	if len(bs) < 3 {
		return errors.WithStack(ErrInvalidSignatureFormat)
	}
	if bs[0] != '"' || bs[len(bs)-1] != '"' {
		return errors.WithStack(ErrInvalidSignatureFormat)
	}
	v, err := ParseSignature(string(bs[1 : len(bs)-1]))
	if err != nil {
		return err
	}
	*sig = v
	return nil
}

// String returns the hex string of the signature
func (sig Signature) String() string {
	return "0x" + hex.EncodeToString(sig[:])
}

// Clone returns the clonend value of it
func (sig Signature) Clone() Signature {
	bs := make([]byte, len(sig))
	copy(bs, sig[:])
	return bs
}

// ParseSignature parse the signature from the hex string
func ParseSignature(str string) (Signature, error) {
	str = strings.TrimPrefix(str, "0x")
	if len(str) != SignatureSize*2 {
		return nil, errors.WithStack(ErrInvalidSignatureFormat)
	}
	bs, err := hex.DecodeString(str)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return bs, nil
}
