package key

import (
	"crypto/ecdsa"

	ecrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/meverselabs/useswap/common"
	"github.com/meverselabs/useswap/common/hash"
	"github.com/pkg/errors"
)

// Key defines crypto key functions
type Key interface {
	Sign(h hash.Hash256) (common.Signature, error)
	Verify(h hash.Hash256, sig common.Signature) bool
	PublicKey() *ecdsa.PublicKey
	Address() common.Address
	Bytes() []byte
}

// MemoryKey is a secp256k1 private key held in memory
type MemoryKey struct {
	privKey *ecdsa.PrivateKey
	addr    common.Address
}

// NewMemoryKey returns a random MemoryKey
func NewMemoryKey() (*MemoryKey, error) {
	privKey, err := ecrypto.GenerateKey()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return newMemoryKey(privKey), nil
}

// NewMemoryKeyFromBytes parses a 32 byte private key
func NewMemoryKeyFromBytes(bs []byte) (*MemoryKey, error) {
	privKey, err := ecrypto.ToECDSA(bs)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return newMemoryKey(privKey), nil
}

// NewMemoryKeyFromString parses a hex private key with or without the 0x prefix
func NewMemoryKeyFromString(str string) (*MemoryKey, error) {
	if len(str) > 2 && str[:2] == "0x" {
		str = str[2:]
	}
	privKey, err := ecrypto.HexToECDSA(str)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return newMemoryKey(privKey), nil
}

func newMemoryKey(privKey *ecdsa.PrivateKey) *MemoryKey {
	return &MemoryKey{
		privKey: privKey,
		addr:    ecrypto.PubkeyToAddress(privKey.PublicKey),
	}
}

// Sign returns the recoverable signature of the hash
func (ac *MemoryKey) Sign(h hash.Hash256) (common.Signature, error) {
	sig, err := ecrypto.Sign(h[:], ac.privKey)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return common.Signature(sig), nil
}

// Verify checks the signature was made by this key
func (ac *MemoryKey) Verify(h hash.Hash256, sig common.Signature) bool {
	addr, err := RecoverAddress(h, sig)
	if err != nil {
		return false
	}
	return addr == ac.addr
}

// PublicKey returns the public key of the private key
func (ac *MemoryKey) PublicKey() *ecdsa.PublicKey {
	return &ac.privKey.PublicKey
}

// Address returns the account address of the key
func (ac *MemoryKey) Address() common.Address {
	return ac.addr
}

// Bytes returns the raw private key
func (ac *MemoryKey) Bytes() []byte {
	return ecrypto.FromECDSA(ac.privKey)
}

// RecoverAddress returns the signer address of the signature
func RecoverAddress(h hash.Hash256, sig common.Signature) (common.Address, error) {
	if len(sig) != common.SignatureSize {
		return common.ZeroAddr, errors.WithStack(common.ErrInvalidSignatureFormat)
	}
	pub, err := ecrypto.SigToPub(h[:], sig)
	if err != nil {
		return common.ZeroAddr, errors.Wrap(common.ErrInvalidSignature, err.Error())
	}
	return ecrypto.PubkeyToAddress(*pub), nil
}
