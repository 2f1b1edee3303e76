package curve

import (
	"encoding/binary"
	"math/big"

	"github.com/kysee/bls12-381/field"
)

// g2B is G2's curve equation's constant term: y^2 = x^3 + 4(1+u).
var g2B = field.Fp2{
	field.Fp{0xaa270000000cfff3, 0x53cc0032fc34000a, 0x478fe97a6b0a807f, 0xb1d37ebee6ba24d7, 0x8ec9733bbf78ab2f, 0x9d645513d83de7e},
	field.Fp{0xaa270000000cfff3, 0x53cc0032fc34000a, 0x478fe97a6b0a807f, 0xb1d37ebee6ba24d7, 0x8ec9733bbf78ab2f, 0x9d645513d83de7e},
}

// g2HEffHex is h_eff for G2, the efficient cofactor-clearing constant
// (not the full 507-bit cofactor h2): production implementations
// realize multiplication by this constant as the Budroni-Pintore
// endomorphism chain built from the BLS parameter x, but the result is
// the same point, and a direct scalar multiplication is what this
// package's MulScalar already gives us.
const g2HEffHex = "bc69f08f2ee75b3584c6a0ea91b352888e2a8e9145ad7689986ff031508ffe1329c2f178731db956d82bf015d1212b02ec0ec69d7477c1ae954cbc06689f6a359894c0adebbf6b4e8020005aaa95551"

var g2HEffLimbs = limbsFromHex(g2HEffHex, 10)

// frOrderLimbs8 is r zero-extended to 8 limbs, for use against G2's
// wider scalar-multiplication routine.
var frOrderLimbs8 = [8]uint64{
	0xffffffff00000001, 0x53bda402fffe5bfe, 0x3339d80809a1d805, 0x73eda753299d7d48,
	0, 0, 0, 0,
}

// limbsFromHex parses a big-endian hex string into n little-endian
// 64-bit limbs, used for scalar constants too wide to transcribe by
// hand into limb form without risking a transposition error.
func limbsFromHex(s string, n int) []uint64 {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("curve: invalid hex constant")
	}
	limbs := make([]uint64, n)
	bz := v.Bytes()
	padded := make([]byte, n*8)
	copy(padded[len(padded)-len(bz):], bz)
	for i := 0; i < n; i++ {
		off := (n - 1 - i) * 8
		limbs[i] = binary.BigEndian.Uint64(padded[off : off+8])
	}
	return limbs
}

// G2 is a point on the BLS12-381 G2 curve in Jacobian coordinates
// (X, Y, Z) over Fp2; the identity is represented by Z=0.
type G2 struct {
	X, Y, Z field.Fp2
}

var g2Generator = G2{
	X: field.Fp2{
		field.Fp{0xf5f28fa202940a10, 0xb3f5fb2687b4961a, 0xa1a893b53e2ae580, 0x9894999d1a3caee9, 0x6f67b7631863366b, 0x58191924350bcd7},
		field.Fp{0xa5a9c0759e23f606, 0xaaa0c59dbccd60c3, 0x3bb17e18e2867806, 0x1b1ab6cc8541b367, 0xc2b6ed0ef2158547, 0x11922a097360edf3},
	},
	Y: field.Fp2{
		field.Fp{0x4c730af860494c4a, 0x597cfa1f5e369c5a, 0xe7e6856caa0a635a, 0xbbefb5e96e0d495f, 0x7d3a975f0ef25a2, 0x83fd8e7e80dae5},
		field.Fp{0xadc0fc92df64b05d, 0x18aa270a2b1461dc, 0x86adac6a3be4eba0, 0x79495c4ec93da33a, 0xe7175850a43ccaed, 0xb2bc2a163de1bf2},
	},
	Z: func() field.Fp2 { var o field.Fp2; o.One(); return o }(),
}

func G2Generator() *G2 { return new(G2).Set(&g2Generator) }

func NewG2() *G2 { return &G2{} }

func (p *G2) Set(q *G2) *G2 {
	p.X.Set(&q.X)
	p.Y.Set(&q.Y)
	p.Z.Set(&q.Z)
	return p
}

func (p *G2) Zero() *G2 {
	p.X.Zero()
	p.Y.One()
	p.Z.Zero()
	return p
}

func (p *G2) IsZero() bool { return p.Z.IsZero() }

// IsOnCurve checks Y^2 = X^3 + 4(1+u)*Z^6 directly in Jacobian form.
func (p *G2) IsOnCurve() bool {
	if p.IsZero() {
		return true
	}
	var y2, x3, z2, z6, rhs field.Fp2
	y2.Square(&p.Y)
	x3.Square(&p.X)
	x3.Mul(&x3, &p.X)
	z2.Square(&p.Z)
	z6.Square(&z2)
	z6.Mul(&z6, &z2)
	rhs.Mul(&z6, &g2B)
	rhs.Add(&rhs, &x3)
	return y2.Equal(&rhs)
}

func (p *G2) Equal(q *G2) bool {
	if p.IsZero() || q.IsZero() {
		return p.IsZero() == q.IsZero()
	}
	var z1z1, z2z2, u1, u2, z1cubed, z2cubed, s1, s2 field.Fp2
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

func (p *G2) Neg(q *G2) *G2 {
	p.X.Set(&q.X)
	p.Y.Neg(&q.Y)
	p.Z.Set(&q.Z)
	return p
}

// Double sets p = 2*q, mirroring G1's Jacobian doubling formula over Fp2.
func (p *G2) Double(q *G2) *G2 {
	if q.IsZero() {
		return p.Set(q)
	}
	var a, b, c, d, e, f field.Fp2
	a.Square(&q.X)
	b.Square(&q.Y)
	c.Square(&b)
	var xb field.Fp2
	xb.Add(&q.X, &b)
	d.Square(&xb)
	d.Sub(&d, &a)
	d.Sub(&d, &c)
	d.Double(&d)
	e.Double(&a)
	e.Add(&e, &a)
	f.Square(&e)

	var x3, y3, z3, twoD field.Fp2
	twoD.Double(&d)
	x3.Sub(&f, &twoD)

	var c8 field.Fp2
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

// Add sets p = a+b, the general Jacobian addition over Fp2.
func (p *G2) Add(a, b *G2) *G2 {
	if a.IsZero() {
		return p.Set(b)
	}
	if b.IsZero() {
		return p.Set(a)
	}
	var z1z1, z2z2, u1, u2, z1cubed, z2cubed, s1, s2 field.Fp2
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

	var h, i, j, r, v field.Fp2
	h.Sub(&u2, &u1)
	i.Double(&h)
	i.Square(&i)
	j.Mul(&h, &i)
	r.Sub(&s2, &s1)
	r.Double(&r)
	v.Mul(&u1, &i)

	var x3, y3, z3 field.Fp2
	x3.Square(&r)
	x3.Sub(&x3, &j)
	x3.Sub(&x3, &v)
	x3.Sub(&x3, &v)

	var v3, sj field.Fp2
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

func (p *G2) Sub(a, b *G2) *G2 {
	var nb G2
	nb.Neg(b)
	return p.Add(a, &nb)
}

func (p *G2) ToAffine() (x, y field.Fp2) {
	if p.IsZero() {
		x.Zero()
		y.One()
		return
	}
	var zinv, zinv2, zinv3 field.Fp2
	zinv.Invert(&p.Z)
	zinv2.Square(&zinv)
	zinv3.Mul(&zinv2, &zinv)
	x.Mul(&p.X, &zinv2)
	y.Mul(&p.Y, &zinv3)
	return
}

func FromAffineG2(x, y *field.Fp2) *G2 {
	p := &G2{}
	p.X.Set(x)
	p.Y.Set(y)
	p.Z.One()
	return p
}

// CondAssign sets p = q if bit&1 == 1, without branching on bit.
func (p *G2) CondAssign(q *G2, bit uint64) *G2 {
	p.X.CondAssign(&q.X, bit)
	p.Y.CondAssign(&q.Y, bit)
	p.Z.CondAssign(&q.Z, bit)
	return p
}

// MulScalar sets p = [k]q via fixed-iteration-count double-and-add
// over the full width of k, the same loop shape as G1's MulScalar and
// likewise not constant-time, since Double and Add branch on their
// inputs.
func (p *G2) MulScalar(q *G2, k []uint64) *G2 {
	acc := NewG2().Zero()
	tmp := NewG2()
	bits := len(k) * 64
	for i := bits - 1; i >= 0; i-- {
		acc.Double(acc)
		tmp.Add(acc, q)
		bit := (k[i/64] >> uint(i%64)) & 1
		acc.CondAssign(tmp, bit)
	}
	return p.Set(acc)
}

// ClearCofactor sets p = [h_eff]q, moving a point on the curve into
// the prime-order subgroup via the efficient cofactor constant rather
// than the full cofactor h2.
func (p *G2) ClearCofactor(q *G2) *G2 {
	return p.MulScalar(q, g2HEffLimbs)
}

// InCorrectSubgroup reports whether p has order dividing r.
func (p *G2) InCorrectSubgroup() bool {
	var t G2
	t.MulScalar(p, frOrderLimbs8[:])
	return t.IsZero()
}
