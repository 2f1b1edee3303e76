package curve

import (
	"crypto/sha256"
	"errors"
	"math/big"

	"github.com/kysee/bls12-381/field"
)

const sha256BlockSize = 64
const sha256OutputSize = 32

// expandMessageXMD implements expand_message_xmd from the IETF
// hash-to-curve draft (RFC 9380 §5.3.1), instantiated with SHA-256.
func expandMessageXMD(msg, dst []byte, lenInBytes int) ([]byte, error) {
	if len(dst) > 255 {
		h := sha256.New()
		h.Write([]byte("H2C-OVERSIZE-DST-"))
		h.Write(dst)
		dst = h.Sum(nil)
	}
	ell := (lenInBytes + sha256OutputSize - 1) / sha256OutputSize
	if ell > 255 {
		return nil, errors.New("curve: expand_message_xmd output too long")
	}
	dstPrime := append(append([]byte{}, dst...), byte(len(dst)))

	zPad := make([]byte, sha256BlockSize)
	libStr := []byte{byte(lenInBytes >> 8), byte(lenInBytes)}

	h0 := sha256.New()
	h0.Write(zPad)
	h0.Write(msg)
	h0.Write(libStr)
	h0.Write([]byte{0})
	h0.Write(dstPrime)
	b0 := h0.Sum(nil)

	h1 := sha256.New()
	h1.Write(b0)
	h1.Write([]byte{1})
	h1.Write(dstPrime)
	bi := h1.Sum(nil)

	out := make([]byte, 0, ell*sha256OutputSize)
	out = append(out, bi...)

	prev := bi
	for i := 2; i <= ell; i++ {
		xored := make([]byte, sha256OutputSize)
		for j := range xored {
			xored[j] = b0[j] ^ prev[j]
		}
		hi := sha256.New()
		hi.Write(xored)
		hi.Write([]byte{byte(i)})
		hi.Write(dstPrime)
		prev = hi.Sum(nil)
		out = append(out, prev...)
	}
	return out[:lenInBytes], nil
}

// fpL is the number of bytes hash_to_field pulls per Fp coordinate:
// ceil((ceil(log2(q)) + 128) / 8) = 64 for BLS12-381's q.
const fpL = 64

// hashToFieldFp implements hash_to_field for the base field, returning
// count independent pseudo-random elements.
func hashToFieldFp(msg, dst []byte, count int) ([]field.Fp, error) {
	bytes, err := expandMessageXMD(msg, dst, count*fpL)
	if err != nil {
		return nil, err
	}
	out := make([]field.Fp, count)
	q := fieldModulusBig()
	for i := 0; i < count; i++ {
		chunk := bytes[i*fpL : (i+1)*fpL]
		v := new(big.Int).SetBytes(chunk)
		v.Mod(v, q)
		b := make([]byte, field.FpByteSize)
		v.FillBytes(b)
		e, err := field.FromBytes(b)
		if err != nil {
			return nil, err
		}
		out[i] = *e
	}
	return out, nil
}

// hashToFieldFp2 is hash_to_field for Fp2 (extension degree m=2): each
// output element consumes two consecutive Fp pulls.
func hashToFieldFp2(msg, dst []byte, count int) ([]field.Fp2, error) {
	elems, err := hashToFieldFp(msg, dst, count*2)
	if err != nil {
		return nil, err
	}
	out := make([]field.Fp2, count)
	for i := 0; i < count; i++ {
		out[i] = field.Fp2{elems[2*i], elems[2*i+1]}
	}
	return out, nil
}

// fieldModulusHex is q, BLS12-381's base prime, used only here to
// reduce hash_to_field's wide pseudo-random output mod q via big.Int;
// the field package's own arithmetic never goes through big.Int.
const fieldModulusHex = "1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaab"

func fieldModulusBig() *big.Int {
	q, _ := new(big.Int).SetString(fieldModulusHex, 16)
	return q
}
