package bls

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
	"math/big"

	"golang.org/x/crypto/hkdf"
)

// lamportSK holds the 255 32-byte words EIP-2333's lamport derivation
// step produces.
type lamportSK [255][32]byte

func flipBits(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[i] = ^v
	}
	return out
}

func sha256Sum(b []byte) []byte {
	h := sha256.New()
	h.Write(b)
	return h.Sum(nil)
}

// ikmToLamportSK implements IKM_to_lamport_SK (EIP-2333 §ikm_to_lamport_sk).
func ikmToLamportSK(ikm, salt []byte) (*lamportSK, error) {
	prk := hkdf.Extract(sha256.New, ikm, salt)
	okm := hkdf.Expand(sha256.New, prk, nil)
	var out lamportSK
	for i := range out {
		if _, err := io.ReadFull(okm, out[i][:]); err != nil {
			return nil, fmt.Errorf("bls: reading lamport OKM chunk %d: %w", i, err)
		}
	}
	return &out, nil
}

// parentSKToLamportPK implements parent_SK_to_lamport_PK.
func parentSKToLamportPK(parentSK *SecretKey, index uint32) ([32]byte, error) {
	var salt [4]byte
	binary.BigEndian.PutUint32(salt[:], index)
	ikm := parentSK.ToBytes()

	lamport0, err := ikmToLamportSK(ikm, salt[:])
	if err != nil {
		return [32]byte{}, err
	}
	lamport1, err := ikmToLamportSK(flipBits(ikm), salt[:])
	if err != nil {
		return [32]byte{}, err
	}

	pk := make([]byte, 0, 255*32*2)
	for i := range lamport0 {
		pk = append(pk, sha256Sum(lamport0[i][:])...)
	}
	for i := range lamport1 {
		pk = append(pk, sha256Sum(lamport1[i][:])...)
	}
	return [32]byte(sha256Sum(pk)), nil
}

// hkdfModR implements HKDF_mod_r, rehashing the salt until the
// candidate scalar is nonzero mod r.
func hkdfModR(ikm []byte, keyInfo string) (*SecretKey, error) {
	salt := []byte("BLS-SIG-KEYGEN-SALT-")
	sk := new(big.Int)
	for {
		salt = sha256Sum(salt)
		secret := append(append([]byte{}, ikm...), 0)
		prk := hkdf.Extract(sha256.New, secret, salt)
		info := append(append([]byte{}, []byte(keyInfo)...), 0, 48)
		okmReader := hkdf.Expand(sha256.New, prk, info)
		var okm [48]byte
		if _, err := io.ReadFull(okmReader, okm[:]); err != nil {
			return nil, fmt.Errorf("bls: reading HKDF_mod_r OKM: %w", err)
		}
		sk.Mod(new(big.Int).SetBytes(okm[:]), frOrder)
		if sk.Sign() != 0 {
			return secretKeyFromBigInt(sk), nil
		}
	}
}

// DeriveMasterSK implements derive_master_SK: the root secret key of
// an EIP-2333 tree from a >= 256-bit seed.
func DeriveMasterSK(seed []byte) (*SecretKey, error) {
	return hkdfModR(seed, "")
}

// KeyGen implements secret_key(ikm): HKDF_mod_r applied directly to
// keying material, with no EIP-2333 tree structure. Equivalent to
// DeriveMasterSK; kept as a separate name since callers outside an HD
// wallet context reach for "KeyGen", not "DeriveMasterSK".
func KeyGen(ikm []byte) (*SecretKey, error) {
	return hkdfModR(ikm, "")
}

// DeriveChildSK implements derive_child_SK (hardened derivation): the
// child key depends only on the parent's secret key and the index.
func DeriveChildSK(parentSK *SecretKey, index uint32) (*SecretKey, error) {
	compressedLamportPK, err := parentSKToLamportPK(parentSK, index)
	if err != nil {
		return nil, err
	}
	return hkdfModR(compressedLamportPK[:], "")
}

// DeriveChildSKUnhardened derives a child secret key as parentSK plus
// an HKDF-derived offset mod r, the offset keyed only on the parent's
// public key material so DeriveChildPKUnhardened can reproduce the
// same point (offset*G1 + parentPK) without the parent secret key.
func DeriveChildSKUnhardened(parentSK *SecretKey, index uint32) (*SecretKey, error) {
	pk := parentSK.PublicKey()
	info := unhardenedInfo(pk, index)
	offset, err := hkdfModR(pk.ToCompressed(), info)
	if err != nil {
		return nil, err
	}
	sum := new(big.Int).Add(bigIntFromLimbs(parentSK.limbs), bigIntFromLimbs(offset.limbs))
	sum.Mod(sum, frOrder)
	return secretKeyFromBigInt(sum), nil
}

// DeriveChildPKUnhardened computes the public key matching
// DeriveChildSKUnhardened's output without access to the parent secret
// key: it derives an offset scalar from (parentPK, index) and adds
// offset*G1_generator to parentPK.
func DeriveChildPKUnhardened(parentPK *PublicKey, index uint32) (*PublicKey, error) {
	info := unhardenedInfo(parentPK, index)
	offset, err := hkdfModR(parentPK.ToCompressed(), info)
	if err != nil {
		return nil, err
	}
	child := offset.PublicKey()
	child.point.Add(&child.point, &parentPK.point)
	return child, nil
}

func unhardenedInfo(pk *PublicKey, index uint32) string {
	var idx [4]byte
	binary.BigEndian.PutUint32(idx[:], index)
	return "BLS-UNHARDENED-CHILD-" + string(idx[:])
}
