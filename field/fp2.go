package field

// Fp2 is an element of Fp[u]/(u^2+1), held as c0 + c1*u.
type Fp2 [2]Fp

func NewFp2() *Fp2 { return &Fp2{} }

func (z *Fp2) Set(x *Fp2) *Fp2 {
	z[0].Set(&x[0])
	z[1].Set(&x[1])
	return z
}

func (z *Fp2) Zero() *Fp2 {
	z[0].Zero()
	z[1].Zero()
	return z
}

func (z *Fp2) One() *Fp2 {
	z[0].One()
	z[1].Zero()
	return z
}

func (z *Fp2) IsZero() bool { return z[0].IsZero() && z[1].IsZero() }

func (z *Fp2) IsOne() bool { return z[0].IsOne() && z[1].IsZero() }

func (z *Fp2) Equal(x *Fp2) bool { return z[0].Equal(&x[0]) && z[1].Equal(&x[1]) }

// CondAssign sets z = x if bit&1 == 1, without branching on bit.
func (z *Fp2) CondAssign(x *Fp2, bit uint64) *Fp2 {
	z[0].CondAssign(&x[0], bit)
	z[1].CondAssign(&x[1], bit)
	return z
}

// Fp2FromBytes decodes a 96-byte big-endian encoding (c1 || c0, each 48
// bytes), the wire order used throughout G2 serialization.
func Fp2FromBytes(in []byte) (*Fp2, error) {
	if len(in) != 2*FpByteSize {
		return nil, ErrNotInField
	}
	c1, err := FromBytes(in[:FpByteSize])
	if err != nil {
		return nil, err
	}
	c0, err := FromBytes(in[FpByteSize:])
	if err != nil {
		return nil, err
	}
	return &Fp2{*c0, *c1}, nil
}

func (z *Fp2) ToBytes() []byte {
	out := make([]byte, 2*FpByteSize)
	copy(out[:FpByteSize], z[1].ToBytes())
	copy(out[FpByteSize:], z[0].ToBytes())
	return out
}

func (z *Fp2) Add(x, y *Fp2) *Fp2 {
	z[0].Add(&x[0], &y[0])
	z[1].Add(&x[1], &y[1])
	return z
}

func (z *Fp2) Double(x *Fp2) *Fp2 {
	z[0].Double(&x[0])
	z[1].Double(&x[1])
	return z
}

func (z *Fp2) Sub(x, y *Fp2) *Fp2 {
	z[0].Sub(&x[0], &y[0])
	z[1].Sub(&x[1], &y[1])
	return z
}

func (z *Fp2) Neg(x *Fp2) *Fp2 {
	z[0].Neg(&x[0])
	z[1].Neg(&x[1])
	return z
}

// Conjugate sets z = c0 - c1*u, the Frobenius map on Fp2 (a^q = conj(a)
// since q is odd and u^2 = -1 is a non-residue in Fp).
func (z *Fp2) Conjugate(x *Fp2) *Fp2 {
	z[0].Set(&x[0])
	z[1].Neg(&x[1])
	return z
}

// Mul sets z = x*y using Karatsuba: 3 base-field multiplications
// instead of the 4 a schoolbook expansion needs.
func (z *Fp2) Mul(x, y *Fp2) *Fp2 {
	var v0, v1, t0, t1 Fp
	v0.Mul(&x[0], &y[0])
	v1.Mul(&x[1], &y[1])
	t0.Add(&x[0], &x[1])
	t1.Add(&y[0], &y[1])
	t1.Mul(&t0, &t1)
	t1.Sub(&t1, &v0)
	t1.Sub(&t1, &v1)
	z[1].Set(&t1)
	v0.Sub(&v0, &v1)
	z[0].Set(&v0)
	return z
}

// Square sets z = x*x via (a0+a1)(a0-a1) + 2a0a1 u.
func (z *Fp2) Square(x *Fp2) *Fp2 {
	var sum, diff, prod Fp
	sum.Add(&x[0], &x[1])
	diff.Sub(&x[0], &x[1])
	prod.Mul(&x[0], &x[1])
	var c0, c1 Fp
	c0.Mul(&sum, &diff)
	c1.Double(&prod)
	z[0].Set(&c0)
	z[1].Set(&c1)
	return z
}

// MulByNonResidue sets z = x * (1+u), the non-residue used to build
// Fp6 as Fp2[v]/(v^3-(1+u)).
func (z *Fp2) MulByNonResidue(x *Fp2) *Fp2 {
	var c0, c1 Fp
	c0.Sub(&x[0], &x[1])
	c1.Add(&x[0], &x[1])
	z[0].Set(&c0)
	z[1].Set(&c1)
	return z
}

// MulByFp multiplies by a scalar drawn from the base field, applied to
// both coordinates.
func (z *Fp2) MulByFp(x *Fp2, y *Fp) *Fp2 {
	z[0].Mul(&x[0], y)
	z[1].Mul(&x[1], y)
	return z
}

// Invert sets z = x^-1 using norm(x) = c0^2+c1^2 and the conjugate.
func (z *Fp2) Invert(x *Fp2) *Fp2 {
	var t0, t1, n Fp
	t0.Square(&x[0])
	t1.Square(&x[1])
	n.Add(&t0, &t1)
	n.Invert(&n)
	var c0, c1 Fp
	c0.Mul(&x[0], &n)
	c1.Mul(&x[1], &n)
	c1.Neg(&c1)
	z[0].Set(&c0)
	z[1].Set(&c1)
	return z
}

// Sqrt implements the complex-number square-root method valid because
// the base field has q ≡ 3 (mod 4): writing x = a0+a1*u, the norm
// n = a0^2+a1^2 is a square in Fp exactly when x is a square in Fp2,
// and a square root a0' of x satisfies a0'^2 = (a0 ± sqrt(n))/2 for
// one choice of sign.
func (z *Fp2) Sqrt(x *Fp2) bool {
	if x[1].IsZero() {
		var r Fp
		if r.Sqrt(&x[0]) {
			z[0].Set(&r)
			z[1].Zero()
			return true
		}
		var neg Fp
		neg.Neg(&x[0])
		if r.Sqrt(&neg) {
			z[0].Zero()
			z[1].Set(&r)
			return true
		}
		return false
	}

	var a0sq, a1sq, n Fp
	a0sq.Square(&x[0])
	a1sq.Square(&x[1])
	n.Add(&a0sq, &a1sq)

	var w Fp
	if !w.Sqrt(&n) {
		return false
	}

	inv2 := NewFp().Invert(twoFp())

	var tPlus, tMinus, x0 Fp
	tPlus.Add(&x[0], &w)
	tPlus.Mul(&tPlus, inv2)
	tMinus.Sub(&x[0], &w)
	tMinus.Mul(&tMinus, inv2)

	found := false
	if x0.Sqrt(&tPlus) {
		found = true
	} else if x0.Sqrt(&tMinus) {
		found = true
	}
	if !found {
		return false
	}

	var x0inv, two, x1 Fp
	two.Double(NewFp().One())
	x0inv.Mul(&x0, &two)
	x0inv.Invert(&x0inv)
	x1.Mul(&x[1], &x0inv)

	var check Fp2
	check.Set(&Fp2{x0, x1})
	check.Square(&check)
	if !check.Equal(x) {
		return false
	}
	z[0].Set(&x0)
	z[1].Set(&x1)
	return true
}

func twoFp() *Fp {
	return NewFp().Double(NewFp().One())
}

// IsQuadraticNonResidue reports whether x has no square root in Fp2,
// which (for this tower, since -1 is a non-residue in Fp) holds
// exactly when the norm a0^2+a1^2 has no square root in Fp.
func (z *Fp2) IsQuadraticNonResidue(x *Fp2) bool {
	var a0sq, a1sq, n Fp
	a0sq.Square(&x[0])
	a1sq.Square(&x[1])
	n.Add(&a0sq, &a1sq)
	return IsQuadraticNonResidue(&n)
}
