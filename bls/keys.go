// Package bls implements the BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_POP_
// signature ciphersuite on top of packages field, curve and pairing:
// public keys in G1, signatures in G2, with the EIP-2333 HKDF-based key
// derivation tree.
package bls

import (
	"errors"
	"math/big"

	"github.com/kysee/bls12-381/curve"
)

var (
	ErrZeroScalar     = errors.New("bls: scalar must be nonzero")
	ErrInvalidKeySize = errors.New("bls: secret key must be 32 bytes")
)

// frOrder is r, the BLS12-381 subgroup order, used to reduce and
// validate scalars at the key-management boundary.
var frOrder, _ = new(big.Int).SetString("73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001", 16)

// SecretKey is a nonzero scalar in [1, r).
type SecretKey struct {
	limbs [4]uint64
}

// PublicKey is a G1 point: sk * G1_generator.
type PublicKey struct {
	point curve.G1
}

// Signature is a G2 point.
type Signature struct {
	point curve.G2
}

func limbsFromBigInt(v *big.Int) [4]uint64 {
	var limbs [4]uint64
	bz := v.Bytes()
	padded := make([]byte, 32)
	copy(padded[32-len(bz):], bz)
	for i := 0; i < 4; i++ {
		for b := 0; b < 8; b++ {
			limbs[3-i] = limbs[3-i]<<8 | uint64(padded[i*8+b])
		}
	}
	return limbs
}

func bigIntFromLimbs(limbs [4]uint64) *big.Int {
	out := new(big.Int)
	for i := 3; i >= 0; i-- {
		out.Lsh(out, 64)
		out.Or(out, new(big.Int).SetUint64(limbs[i]))
	}
	return out
}

// SecretKeyFromBytes decodes a 32-byte big-endian scalar, reducing
// values >= r modulo r and rejecting a scalar that is zero before or
// after that reduction.
func SecretKeyFromBytes(b []byte) (*SecretKey, error) {
	if len(b) != 32 {
		return nil, ErrInvalidKeySize
	}
	v := new(big.Int).SetBytes(b)
	if v.Sign() == 0 {
		return nil, ErrZeroScalar
	}
	if v.Cmp(frOrder) >= 0 {
		v.Mod(v, frOrder)
		if v.Sign() == 0 {
			return nil, ErrZeroScalar
		}
	}
	return &SecretKey{limbs: limbsFromBigInt(v)}, nil
}

func secretKeyFromBigInt(v *big.Int) *SecretKey {
	return &SecretKey{limbs: limbsFromBigInt(v)}
}

func (sk *SecretKey) ToBytes() []byte {
	out := make([]byte, 32)
	v := bigIntFromLimbs(sk.limbs)
	v.FillBytes(out)
	return out
}

// PublicKey returns sk * G1_generator in affine form.
func (sk *SecretKey) PublicKey() *PublicKey {
	var p curve.G1
	p.MulScalar(curve.G1Generator(), &sk.limbs)
	x, y := p.ToAffine()
	return &PublicKey{point: *curve.FromAffine(&x, &y)}
}

func (pk *PublicKey) Point() *curve.G1 { return &pk.point }

func PublicKeyFromCompressed(b []byte) (*PublicKey, error) {
	p, err := curve.FromCompressed(b)
	if err != nil {
		return nil, err
	}
	if !p.IsZero() && !p.InCorrectSubgroup() {
		return nil, curve.ErrNotInSubgroup
	}
	return &PublicKey{point: *p}, nil
}

func (pk *PublicKey) ToCompressed() []byte { return pk.point.ToCompressed() }

func (sig *Signature) Point() *curve.G2 { return &sig.point }

func SignatureFromCompressed(b []byte) (*Signature, error) {
	p, err := curve.FromCompressed2(b)
	if err != nil {
		return nil, err
	}
	if !p.IsZero() && !p.InCorrectSubgroup() {
		return nil, curve.ErrNotInSubgroup
	}
	return &Signature{point: *p}, nil
}

func (sig *Signature) ToCompressed() []byte { return sig.point.ToCompressed() }
