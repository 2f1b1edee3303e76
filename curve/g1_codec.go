package curve

import "github.com/kysee/bls12-381/field"

// G1 points are serialized per the IETF "ZCash-style" convention: the
// top three bits of the first byte carry the compression (C), point-
// at-infinity (I) and sign (S) flags, the remaining 381 bits (48 bytes
// total, compressed) hold the x-coordinate; uncompressed encodings are
// 96 bytes (x || y) with the same flag byte layout.
const (
	flagCompressed = 0x80
	flagInfinity   = 0x40
	flagSign       = 0x20
)

// ToCompressed encodes p as a 48-byte compressed point.
func (p *G1) ToCompressed() []byte {
	out := make([]byte, field.FpByteSize)
	if p.IsZero() {
		out[0] = flagCompressed | flagInfinity
		return out
	}
	x, y := p.ToAffine()
	copy(out, x.ToBytes())
	out[0] |= flagCompressed
	if y.IsOdd() {
		out[0] |= flagSign
	}
	return out
}

// isAllZero reports whether every byte of b is zero, used to enforce
// that an infinity-flagged encoding carries no stray coordinate data.
func isAllZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

// FromCompressed decodes a 48-byte compressed point.
func FromCompressed(in []byte) (*G1, error) {
	if len(in) != field.FpByteSize {
		return nil, ErrInvalidEncoding
	}
	b0 := in[0]
	if b0&flagCompressed == 0 {
		return nil, ErrInvalidEncoding
	}
	if b0&flagInfinity != 0 {
		if b0&^(flagCompressed|flagInfinity) != 0 || !isAllZero(in[1:]) {
			return nil, ErrInvalidEncoding
		}
		return NewG1().Zero(), nil
	}
	signSet := b0&flagSign != 0
	xb := make([]byte, field.FpByteSize)
	copy(xb, in)
	xb[0] &^= flagCompressed | flagInfinity | flagSign
	x, err := field.FromBytes(xb)
	if err != nil {
		return nil, err
	}
	var x3, rhs field.Fp
	x3.Square(x)
	x3.Mul(&x3, x)
	rhs.Add(&x3, &g1B)
	var y field.Fp
	if !y.Sqrt(&rhs) {
		return nil, ErrNotOnCurve
	}
	if y.IsOdd() != signSet {
		y.Neg(&y)
	}
	return FromAffine(x, &y), nil
}

// ToUncompressed encodes p as a 96-byte uncompressed point.
func (p *G1) ToUncompressed() []byte {
	out := make([]byte, 2*field.FpByteSize)
	if p.IsZero() {
		out[0] = flagInfinity
		return out
	}
	x, y := p.ToAffine()
	copy(out[:field.FpByteSize], x.ToBytes())
	copy(out[field.FpByteSize:], y.ToBytes())
	return out
}

// FromUncompressed decodes a 96-byte uncompressed point.
func FromUncompressed(in []byte) (*G1, error) {
	if len(in) != 2*field.FpByteSize {
		return nil, ErrInvalidEncoding
	}
	if in[0]&flagCompressed != 0 {
		return nil, ErrInvalidEncoding
	}
	if in[0]&flagInfinity != 0 {
		if in[0]&^flagInfinity != 0 || !isAllZero(in[1:]) {
			return nil, ErrInvalidEncoding
		}
		return NewG1().Zero(), nil
	}
	xb := make([]byte, field.FpByteSize)
	copy(xb, in[:field.FpByteSize])
	xb[0] &^= flagCompressed | flagInfinity | flagSign
	x, err := field.FromBytes(xb)
	if err != nil {
		return nil, err
	}
	y, err := field.FromBytes(in[field.FpByteSize:])
	if err != nil {
		return nil, err
	}
	q := FromAffine(x, y)
	if !q.IsOnCurve() {
		return nil, ErrNotOnCurve
	}
	return q, nil
}

// ToJacobian encodes the three raw Jacobian coordinates back to back,
// a non-wire convenience format used internally and in tests.
func (p *G1) ToJacobian() []byte {
	out := make([]byte, 3*field.FpByteSize)
	copy(out[0:], p.X.ToBytes())
	copy(out[field.FpByteSize:], p.Y.ToBytes())
	copy(out[2*field.FpByteSize:], p.Z.ToBytes())
	return out
}

// FromJacobian decodes the format produced by ToJacobian.
func FromJacobian(in []byte) (*G1, error) {
	if len(in) != 3*field.FpByteSize {
		return nil, ErrInvalidEncoding
	}
	x, err := field.FromBytes(in[0:field.FpByteSize])
	if err != nil {
		return nil, err
	}
	y, err := field.FromBytes(in[field.FpByteSize : 2*field.FpByteSize])
	if err != nil {
		return nil, err
	}
	z, err := field.FromBytes(in[2*field.FpByteSize:])
	if err != nil {
		return nil, err
	}
	return &G1{X: *x, Y: *y, Z: *z}, nil
}
