// Package curve implements the BLS12-381 G1 and G2 elliptic-curve
// subgroups: Jacobian point arithmetic, affine/compressed
// serialization, subgroup membership, multi-scalar multiplication and
// hash-to-curve, built on top of the field tower in package field.
package curve

import (
	"errors"

	"github.com/kysee/bls12-381/field"
)

var (
	ErrNotOnCurve     = errors.New("curve: point is not on the curve")
	ErrNotInSubgroup  = errors.New("curve: point is not in the correct subgroup")
	ErrInvalidEncoding = errors.New("curve: invalid point encoding")
)

// g1B is the G1 curve equation's constant term: y^2 = x^3 + 4.
var g1B = field.Fp{0xaa270000000cfff3, 0x53cc0032fc34000a, 0x478fe97a6b0a807f, 0xb1d37ebee6ba24d7, 0x8ec9733bbf78ab2f, 0x9d645513d83de7e}

// g1HEffLimbs is h_eff, the efficient cofactor-clearing constant for
// G1 used by hash-to-curve and general point validation. It is not the
// curve's full cofactor h1 = (x-1)^2/3: h_eff*P and h1*P both land in
// the prime-order subgroup but at different points, and only h_eff
// reproduces the standard hash-to-curve test vectors. As a plain
// (non-Montgomery) little-endian limb array, used as a scalar
// multiplier, never as a field element.
var g1HEffLimbs = [4]uint64{0xd201000000010001, 0, 0, 0}

// frOrderLimbs is r, the order of the G1/G2 prime-order subgroups, as
// a plain little-endian limb array.
var frOrderLimbs = [4]uint64{0xffffffff00000001, 0x53bda402fffe5bfe, 0x3339d80809a1d805, 0x73eda753299d7d48}

// G1 is a point on the BLS12-381 G1 curve in Jacobian coordinates
// (X, Y, Z); the identity is represented by Z=0.
type G1 struct {
	X, Y, Z field.Fp
}

// g1Generator is the standard base point of the G1 prime-order subgroup.
var g1Generator = G1{
	X: field.Fp{0x5cb38790fd530c16, 0x7817fc679976fff5, 0x154f95c7143ba1c1, 0xf0ae6acdf3d0e747, 0xedce6ecc21dbf440, 0x120177419e0bfb75},
	Y: field.Fp{0xbaac93d50ce72271, 0x8c22631a7918fd8e, 0xdd595f13570725ce, 0x51ac582950405194, 0xe1c8c3fad0059c0, 0xbbc3efc5008a26a},
	Z: func() field.Fp { var o field.Fp; o.One(); return o }(),
}

func G1Generator() *G1 { return new(G1).Set(&g1Generator) }

func NewG1() *G1 { return &G1{} }

func (p *G1) Set(q *G1) *G1 {
	p.X.Set(&q.X)
	p.Y.Set(&q.Y)
	p.Z.Set(&q.Z)
	return p
}

func (p *G1) Zero() *G1 {
	p.X.Zero()
	p.Y.One()
	p.Z.Zero()
	return p
}

func (p *G1) IsZero() bool { return p.Z.IsZero() }

// IsOnCurve reports whether the affine image of p satisfies
// Y^2 = X^3 + 4, checked directly in Jacobian form as
// Y^2 = X^3 + 4*Z^6.
func (p *G1) IsOnCurve() bool {
	if p.IsZero() {
		return true
	}
	var y2, x3, z2, z6, rhs field.Fp
	y2.Square(&p.Y)
	x3.Square(&p.X)
	x3.Mul(&x3, &p.X)
	z2.Square(&p.Z)
	z6.Square(&z2)
	z6.Mul(&z6, &z2)
	rhs.Mul(&z6, &g1B)
	rhs.Add(&rhs, &x3)
	return y2.Equal(&rhs)
}

func (p *G1) Equal(q *G1) bool {
	if p.IsZero() || q.IsZero() {
		return p.IsZero() == q.IsZero()
	}
	var z1z1, z2z2, u1, u2, z1cubed, z2cubed, s1, s2 field.Fp
	z1z1.Square(&p.Z)
	z2z2.Square(&q.Z)
	u1.Mul(&p.X, &z2z2)
	u2.Mul(&q.X, &z1z1)
	z1cubed.Mul(&z1z1, &p.Z)
	z2cubed.Mul(&z2z2, &q.Z)
	s1.Mul(&p.Y, &z2cubed)
	s2.Mul(&q.Y, &z1cubed)
	return u1.Equal(&u2) && s1.Equal(&s2)
}

func (p *G1) Neg(q *G1) *G1 {
	p.X.Set(&q.X)
	p.Y.Neg(&q.Y)
	p.Z.Set(&q.Z)
	return p
}

// Double sets p = 2*q using the standard affine-free Jacobian
// doubling formula for a=0 curves.
func (p *G1) Double(q *G1) *G1 {
	if q.IsZero() {
		return p.Set(q)
	}
	var a, b, c, d, e, f field.Fp
	a.Square(&q.X)
	b.Square(&q.Y)
	c.Square(&b)
	var xb field.Fp
	xb.Add(&q.X, &b)
	d.Square(&xb)
	d.Sub(&d, &a)
	d.Sub(&d, &c)
	d.Double(&d)
	e.Double(&a)
	e.Add(&e, &a)
	f.Square(&e)

	var x3, y3, z3, twoD field.Fp
	twoD.Double(&d)
	x3.Sub(&f, &twoD)

	var c8 field.Fp
	c8.Double(&c)
	c8.Double(&c8)
	c8.Double(&c8)
	y3.Sub(&d, &x3)
	y3.Mul(&y3, &e)
	y3.Sub(&y3, &c8)

	z3.Mul(&q.Y, &q.Z)
	z3.Double(&z3)

	p.X.Set(&x3)
	p.Y.Set(&y3)
	p.Z.Set(&z3)
	return p
}

// Add sets p = a+b, the general (mixed-form-agnostic) Jacobian addition.
func (p *G1) Add(a, b *G1) *G1 {
	if a.IsZero() {
		return p.Set(b)
	}
	if b.IsZero() {
		return p.Set(a)
	}
	var z1z1, z2z2, u1, u2, z1cubed, z2cubed, s1, s2 field.Fp
	z1z1.Square(&a.Z)
	z2z2.Square(&b.Z)
	u1.Mul(&a.X, &z2z2)
	u2.Mul(&b.X, &z1z1)
	z1cubed.Mul(&z1z1, &a.Z)
	z2cubed.Mul(&z2z2, &b.Z)
	s1.Mul(&a.Y, &z2cubed)
	s2.Mul(&b.Y, &z1cubed)

	if u1.Equal(&u2) {
		if s1.Equal(&s2) {
			return p.Double(a)
		}
		return p.Zero()
	}

	var h, i, j, r, v field.Fp
	h.Sub(&u2, &u1)
	i.Double(&h)
	i.Square(&i)
	j.Mul(&h, &i)
	r.Sub(&s2, &s1)
	r.Double(&r)
	v.Mul(&u1, &i)

	var x3, y3, z3 field.Fp
	x3.Square(&r)
	x3.Sub(&x3, &j)
	x3.Sub(&x3, &v)
	x3.Sub(&x3, &v)

	var v3, sj field.Fp
	v3.Sub(&v, &x3)
	v3.Mul(&v3, &r)
	sj.Mul(&s1, &j)
	sj.Double(&sj)
	y3.Sub(&v3, &sj)

	z3.Add(&a.Z, &b.Z)
	z3.Square(&z3)
	z3.Sub(&z3, &z1z1)
	z3.Sub(&z3, &z2z2)
	z3.Mul(&z3, &h)

	p.X.Set(&x3)
	p.Y.Set(&y3)
	p.Z.Set(&z3)
	return p
}

func (p *G1) Sub(a, b *G1) *G1 {
	var nb G1
	nb.Neg(b)
	return p.Add(a, &nb)
}

// ToAffine returns p's affine coordinates (X/Z², Y/Z³) without
// modifying p; the identity yields (0, 1).
func (p *G1) ToAffine() (x, y field.Fp) {
	if p.IsZero() {
		x.Zero()
		y.One()
		return
	}
	var zinv, zinv2, zinv3 field.Fp
	zinv.Invert(&p.Z)
	zinv2.Square(&zinv)
	zinv3.Mul(&zinv2, &zinv)
	x.Mul(&p.X, &zinv2)
	y.Mul(&p.Y, &zinv3)
	return
}

func FromAffine(x, y *field.Fp) *G1 {
	p := &G1{}
	p.X.Set(x)
	p.Y.Set(y)
	p.Z.One()
	return p
}

// CondAssign sets p = q if bit&1 == 1, without branching on bit.
func (p *G1) CondAssign(q *G1, bit uint64) *G1 {
	p.X.CondAssign(&q.X, bit)
	p.Y.CondAssign(&q.Y, bit)
	p.Z.CondAssign(&q.Z, bit)
	return p
}

// MulScalar sets p = [k]q via fixed-iteration-count double-and-add:
// every one of the 256 bit positions executes one Double, one
// speculative Add and one conditional select, with no branch on the
// bits of k in this loop. Double and Add branch on identity and
// equal-x inputs, so the field operations they run still depend on k;
// the routine is not constant-time.
func (p *G1) MulScalar(q *G1, k *[4]uint64) *G1 {
	acc := NewG1().Zero()
	tmp := NewG1()
	for i := 255; i >= 0; i-- {
		acc.Double(acc)
		tmp.Add(acc, q)
		bit := (k[i/64] >> uint(i%64)) & 1
		acc.CondAssign(tmp, bit)
	}
	return p.Set(acc)
}

// ClearCofactor sets p = [h_eff]q, moving a point on the curve into
// the prime-order subgroup via the efficient cofactor constant rather
// than the full cofactor.
func (p *G1) ClearCofactor(q *G1) *G1 {
	return p.MulScalar(q, &g1HEffLimbs)
}

// InCorrectSubgroup reports whether p has order dividing r, checked
// directly by scalar multiplication (simple and unconditionally
// correct, at the cost of the endomorphism-based shortcuts production
// libraries use).
func (p *G1) InCorrectSubgroup() bool {
	var t G1
	t.MulScalar(p, &frOrderLimbs)
	return t.IsZero()
}
