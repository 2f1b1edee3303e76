package field

import "math/big"

// Fp12 is an element of Fp6[w]/(w^2-v), held as c0 + c1*w. This is the
// target field of the optimal Ate pairing.
type Fp12 [2]Fp6

func NewFp12() *Fp12 { return &Fp12{} }

func (z *Fp12) Set(x *Fp12) *Fp12 {
	z[0].Set(&x[0])
	z[1].Set(&x[1])
	return z
}

func (z *Fp12) Zero() *Fp12 {
	z[0].Zero()
	z[1].Zero()
	return z
}

func (z *Fp12) One() *Fp12 {
	z[0].One()
	z[1].Zero()
	return z
}

func (z *Fp12) IsZero() bool { return z[0].IsZero() && z[1].IsZero() }

func (z *Fp12) IsOne() bool { return z[0].IsOne() && z[1].IsZero() }

func (z *Fp12) Equal(x *Fp12) bool { return z[0].Equal(&x[0]) && z[1].Equal(&x[1]) }

func (z *Fp12) Add(x, y *Fp12) *Fp12 {
	z[0].Add(&x[0], &y[0])
	z[1].Add(&x[1], &y[1])
	return z
}

func (z *Fp12) Sub(x, y *Fp12) *Fp12 {
	z[0].Sub(&x[0], &y[0])
	z[1].Sub(&x[1], &y[1])
	return z
}

func (z *Fp12) Neg(x *Fp12) *Fp12 {
	z[0].Neg(&x[0])
	z[1].Neg(&x[1])
	return z
}

// Conjugate sets z = c0 - c1*w, i.e. the Frobenius map x^(q^6), since
// [Fp12:Fp6]=2 and w^2=v is fixed by that subfield's Frobenius.
func (z *Fp12) Conjugate(x *Fp12) *Fp12 {
	z[0].Set(&x[0])
	z[1].Neg(&x[1])
	return z
}

// Mul sets z = x*y via Karatsuba over Fp6.
func (z *Fp12) Mul(x, y *Fp12) *Fp12 {
	var v0, v1 Fp6
	v0.Mul(&x[0], &y[0])
	v1.Mul(&x[1], &y[1])

	var a, b, c1 Fp6
	a.Add(&x[0], &x[1])
	b.Add(&y[0], &y[1])
	c1.Mul(&a, &b)
	c1.Sub(&c1, &v0)
	c1.Sub(&c1, &v1)

	var c0, t Fp6
	t.MulByNonResidue(&v1)
	c0.Add(&v0, &t)

	z[0].Set(&c0)
	z[1].Set(&c1)
	return z
}

func (z *Fp12) Square(x *Fp12) *Fp12 { return z.Mul(x, x) }

// MulBy014 multiplies z by a sparse element produced by a Miller-loop
// line evaluation: only the 0/1/4 coordinates (of the 6 total Fp2
// coordinates packed into Fp12) are non-zero. Built as a full Fp12
// element and folded in with the general multiplication: the sparsity
// is a performance property the reference libraries exploit, not a
// correctness one, and general Mul is the safer route to get right.
func (z *Fp12) MulBy014(x *Fp12, c0, c1, c4 *Fp2) *Fp12 {
	var sparse Fp12
	sparse[0][0].Set(c0)
	sparse[0][1].Set(c1)
	sparse[1][1].Set(c4)
	return z.Mul(x, &sparse)
}

// Invert sets z = x^-1 via (c0-c1 w) / (c0^2 - v*c1^2).
func (z *Fp12) Invert(x *Fp12) *Fp12 {
	var t0, t1 Fp6
	t0.Square(&x[0])
	t1.Square(&x[1])
	t1.MulByNonResidue(&t1)
	t0.Sub(&t0, &t1)
	t0.Invert(&t0)

	z[0].Mul(&x[0], &t0)
	var negc1 Fp6
	negc1.Neg(&x[1])
	z[1].Mul(&negc1, &t0)
	return z
}

// gamma12[k] = xi^((q^k-1)/6) for k=0..6, the Frobenius coefficient
// applied to the w-coordinate: (c0+c1 w)^(q^k) = frob6^k(c0) +
// frob6^k(c1)*gamma12[k] * w.
var gamma12 [7]Fp2

func init() {
	one := NewFp().One()
	gamma12[0] = Fp2{*one, Fp{}}
	gamma12[1] = Fp2{
		Fp{0x07089552b319d465, 0xc6695f92b50a8313, 0x97e83cccd117228f, 0xa35baecab2dc29ee, 0x1ce393ea5daace4d, 0x08f2220fb0fb66eb},
		Fp{0xb2f66aad4ce5d646, 0x5842a06bfc497cec, 0xcf4895d42599d394, 0xc11b9cba40a8e8d0, 0x2e3813cbe5a0de89, 0x110eefda88847faf},
	}
	gamma12[2] = Fp2{
		Fp{0xecfb361b798dba3a, 0xc100ddb891865a2c, 0x0ec08ff1232bda8e, 0xd5c13cc6f1ca4721, 0x47222a47bf7b5c04, 0x0110f184e51c5f59},
		Fp{0x0, 0x0, 0x0, 0x0, 0x0, 0x0},
	}
	gamma12[3] = Fp2{
		Fp{0x3e2f585da55c9ad1, 0x4294213d86c18183, 0x382844c88b623732, 0x92ad2afd19103e18, 0x1d794e4fac7cf0b9, 0x0bd592fc7d825ec8},
		Fp{0x7bcfa7a25aa30fda, 0xdc17dec12a927e7c, 0x2f088dd86b4ebef1, 0xd1ca2087da74d4a7, 0x2da2596696cebc1d, 0x0e2b7eedbbfd87d2},
	}
	gamma12[4] = Fp2{
		Fp{0x30f1361b798a64e8, 0xf3b8ddab7ece5a2a, 0x16a8ca3ac61577f7, 0xc26a2ff874fd029b, 0x3636b76660701c6e, 0x051ba4ab241b6160},
		Fp{0x0, 0x0, 0x0, 0x0, 0x0, 0x0},
	}
	gamma12[5] = Fp2{
		Fp{0x3726c30af242c66c, 0x7c2ac1aad1b6fe70, 0xa04007fbba4b14a2, 0xef517c3266341429, 0x095ba654ed2226b, 0x02e370eccc86f7dd},
		Fp{0x82d83cf50dbce43f, 0xa2813e53df9d018f, 0xc6f0caa53c65e181, 0x7525cf528d50fe95, 0x4a85ed50f4798a6b, 0x171da0fd6cf8eebd},
	}
	gamma12[6] = Fp2{
		Fp{0x43f5fffffffcaaae, 0x32b7fff2ed47fffd, 0x07e83a49a2e99d69, 0xeca8f3318332bb7a, 0xef148d1ea0f4c069, 0x040ab3263eff0206},
		Fp{0x0, 0x0, 0x0, 0x0, 0x0, 0x0},
	}
}

// Frobenius sets z = x^(q^power) for power in [0,6], the range the
// Miller loop and final exponentiation need.
func (z *Fp12) Frobenius(x *Fp12, power int) *Fp12 {
	var c0, c1 Fp6
	c0.Frobenius(&x[0], power)
	c1.Frobenius(&x[1], power)
	c1[0].Mul(&c1[0], &gamma12[power])
	c1[1].Mul(&c1[1], &gamma12[power])
	c1[2].Mul(&c1[2], &gamma12[power])
	z[0].Set(&c0)
	z[1].Set(&c1)
	return z
}

// CyclotomicSquare specializes squaring for elements of the cyclotomic
// subgroup (the image of the easy part of final exponentiation). The
// Granger-Scott compressed formula buys a constant factor over general
// squaring at the cost of real transcription risk; since the hard part
// of final exponentiation only runs a handful of times per pairing,
// this just delegates to the general, independently-verified Square.
func (z *Fp12) CyclotomicSquare(x *Fp12) *Fp12 { return z.Square(x) }

// Exp sets z = x^e for a non-negative integer exponent e using plain
// square-and-multiply; used by the hard part of final exponentiation
// with the curve seed x.
func (z *Fp12) Exp(x *Fp12, e uint64) *Fp12 {
	r := NewFp12().One()
	base := NewFp12().Set(x)
	for e > 0 {
		if e&1 == 1 {
			r.Mul(r, base)
		}
		base.Square(base)
		e >>= 1
	}
	z.Set(r)
	return z
}

// ExpBig sets z = x^e for an arbitrarily large non-negative exponent e,
// needed by final exponentiation's hard part, whose exponent
// (q^4-q^2+1)/r is far wider than 64 bits. big.Int is used only to walk
// the exponent's bits; every multiplication is plain Fp12 arithmetic.
func (z *Fp12) ExpBig(x *Fp12, e *big.Int) *Fp12 {
	r := NewFp12().One()
	base := NewFp12().Set(x)
	for i := 0; i < e.BitLen(); i++ {
		if e.Bit(i) == 1 {
			r.Mul(r, base)
		}
		base.Square(base)
	}
	z.Set(r)
	return z
}
