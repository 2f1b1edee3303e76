package curve

import "github.com/kysee/bls12-381/field"

// ToCompressed encodes p as a 96-byte compressed point (flag bits in
// the top of the c1 half of x, matching G1's flag convention).
func (p *G2) ToCompressed() []byte {
	out := make([]byte, 2*field.FpByteSize)
	if p.IsZero() {
		out[0] = flagCompressed | flagInfinity
		return out
	}
	x, y := p.ToAffine()
	xb := x.ToBytes()
	copy(out, xb)
	out[0] |= flagCompressed
	if y[0].IsOdd() {
		out[0] |= flagSign
	}
	return out
}

// FromCompressed2 decodes a 96-byte compressed G2 point.
func FromCompressed2(in []byte) (*G2, error) {
	if len(in) != 2*field.FpByteSize {
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
		return NewG2().Zero(), nil
	}
	signSet := b0&flagSign != 0
	xb := make([]byte, 2*field.FpByteSize)
	copy(xb, in)
	xb[0] &^= flagCompressed | flagInfinity | flagSign
	x, err := field.Fp2FromBytes(xb)
	if err != nil {
		return nil, err
	}
	var x3, rhs field.Fp2
	x3.Square(x)
	x3.Mul(&x3, x)
	rhs.Add(&x3, &g2B)
	var y field.Fp2
	if !y.Sqrt(&rhs) {
		return nil, ErrNotOnCurve
	}
	if y[0].IsOdd() != signSet {
		y.Neg(&y)
	}
	return FromAffineG2(x, &y), nil
}

// ToUncompressed encodes p as a 192-byte uncompressed point.
func (p *G2) ToUncompressed() []byte {
	out := make([]byte, 4*field.FpByteSize)
	if p.IsZero() {
		out[0] = flagInfinity
		return out
	}
	x, y := p.ToAffine()
	copy(out[:2*field.FpByteSize], x.ToBytes())
	copy(out[2*field.FpByteSize:], y.ToBytes())
	return out
}

// FromUncompressed2 decodes a 192-byte uncompressed G2 point.
func FromUncompressed2(in []byte) (*G2, error) {
	if len(in) != 4*field.FpByteSize {
		return nil, ErrInvalidEncoding
	}
	if in[0]&flagCompressed != 0 {
		return nil, ErrInvalidEncoding
	}
	if in[0]&flagInfinity != 0 {
		if in[0]&^flagInfinity != 0 || !isAllZero(in[1:]) {
			return nil, ErrInvalidEncoding
		}
		return NewG2().Zero(), nil
	}
	xb := make([]byte, 2*field.FpByteSize)
	copy(xb, in[:2*field.FpByteSize])
	xb[0] &^= flagCompressed | flagInfinity | flagSign
	x, err := field.Fp2FromBytes(xb)
	if err != nil {
		return nil, err
	}
	y, err := field.Fp2FromBytes(in[2*field.FpByteSize:])
	if err != nil {
		return nil, err
	}
	q := FromAffineG2(x, y)
	if !q.IsOnCurve() {
		return nil, ErrNotOnCurve
	}
	return q, nil
}

// ToJacobian encodes the three raw Jacobian Fp2 coordinates back to
// back, mirroring G1.ToJacobian.
func (p *G2) ToJacobian() []byte {
	out := make([]byte, 6*field.FpByteSize)
	copy(out[0:], p.X.ToBytes())
	copy(out[2*field.FpByteSize:], p.Y.ToBytes())
	copy(out[4*field.FpByteSize:], p.Z.ToBytes())
	return out
}

func FromJacobian2(in []byte) (*G2, error) {
	if len(in) != 6*field.FpByteSize {
		return nil, ErrInvalidEncoding
	}
	x, err := field.Fp2FromBytes(in[0 : 2*field.FpByteSize])
	if err != nil {
		return nil, err
	}
	y, err := field.Fp2FromBytes(in[2*field.FpByteSize : 4*field.FpByteSize])
	if err != nil {
		return nil, err
	}
	z, err := field.Fp2FromBytes(in[4*field.FpByteSize:])
	if err != nil {
		return nil, err
	}
	return &G2{X: *x, Y: *y, Z: *z}, nil
}
