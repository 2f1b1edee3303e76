package field

// Fp6 is an element of Fp2[v]/(v^3-xi) with xi = 1+u, held as
// c0 + c1*v + c2*v^2.
type Fp6 [3]Fp2

func NewFp6() *Fp6 { return &Fp6{} }

func (z *Fp6) Set(x *Fp6) *Fp6 {
	z[0].Set(&x[0])
	z[1].Set(&x[1])
	z[2].Set(&x[2])
	return z
}

func (z *Fp6) Zero() *Fp6 {
	z[0].Zero()
	z[1].Zero()
	z[2].Zero()
	return z
}

func (z *Fp6) One() *Fp6 {
	z[0].One()
	z[1].Zero()
	z[2].Zero()
	return z
}

func (z *Fp6) IsZero() bool { return z[0].IsZero() && z[1].IsZero() && z[2].IsZero() }

func (z *Fp6) IsOne() bool { return z[0].IsOne() && z[1].IsZero() && z[2].IsZero() }

func (z *Fp6) Equal(x *Fp6) bool {
	return z[0].Equal(&x[0]) && z[1].Equal(&x[1]) && z[2].Equal(&x[2])
}

func (z *Fp6) Add(x, y *Fp6) *Fp6 {
	z[0].Add(&x[0], &y[0])
	z[1].Add(&x[1], &y[1])
	z[2].Add(&x[2], &y[2])
	return z
}

func (z *Fp6) Sub(x, y *Fp6) *Fp6 {
	z[0].Sub(&x[0], &y[0])
	z[1].Sub(&x[1], &y[1])
	z[2].Sub(&x[2], &y[2])
	return z
}

func (z *Fp6) Neg(x *Fp6) *Fp6 {
	z[0].Neg(&x[0])
	z[1].Neg(&x[1])
	z[2].Neg(&x[2])
	return z
}

func (z *Fp6) Double(x *Fp6) *Fp6 {
	z[0].Double(&x[0])
	z[1].Double(&x[1])
	z[2].Double(&x[2])
	return z
}

// Mul sets z = x*y using the standard degree-3 Toom-Cook-style
// expansion over the xi = 1+u non-residue.
func (z *Fp6) Mul(x, y *Fp6) *Fp6 {
	var t0, t1, t2 Fp2
	t0.Mul(&x[0], &y[0])
	t1.Mul(&x[1], &y[1])
	t2.Mul(&x[2], &y[2])

	var a, b Fp2
	a.Add(&x[1], &x[2])
	b.Add(&y[1], &y[2])
	var c0 Fp2
	c0.Mul(&a, &b)
	c0.Sub(&c0, &t1)
	c0.Sub(&c0, &t2)
	c0.MulByNonResidue(&c0)
	c0.Add(&c0, &t0)

	a.Add(&x[0], &x[1])
	b.Add(&y[0], &y[1])
	var c1 Fp2
	c1.Mul(&a, &b)
	c1.Sub(&c1, &t0)
	c1.Sub(&c1, &t1)
	var t2nr Fp2
	t2nr.MulByNonResidue(&t2)
	c1.Add(&c1, &t2nr)

	a.Add(&x[0], &x[2])
	b.Add(&y[0], &y[2])
	var c2 Fp2
	c2.Mul(&a, &b)
	c2.Sub(&c2, &t0)
	c2.Add(&c2, &t1)
	c2.Sub(&c2, &t2)

	z[0].Set(&c0)
	z[1].Set(&c1)
	z[2].Set(&c2)
	return z
}

func (z *Fp6) Square(x *Fp6) *Fp6 { return z.Mul(x, x) }

// MulByNonResidue sets z = x*v, used by the Fp12 tower construction
// (Fp12 = Fp6[w]/(w^2-v)).
func (z *Fp6) MulByNonResidue(x *Fp6) *Fp6 {
	var c0 Fp2
	c0.MulByNonResidue(&x[2])
	z[2].Set(&x[1])
	z[1].Set(&x[0])
	z[0].Set(&c0)
	return z
}

// MulBy01 multiplies z by a sparse element (c0, c1, 0), the shape of
// a Miller-loop line function once projected into Fp6.
func (z *Fp6) MulBy01(x *Fp6, c0, c1 *Fp2) *Fp6 {
	var a, b Fp2
	a.Mul(&x[0], c0)
	b.Mul(&x[1], c1)

	var t Fp2
	t.Add(&x[1], &x[2])
	var tmp Fp2
	tmp.Mul(c1, &t)
	tmp.Sub(&tmp, &b)
	tmp.MulByNonResidue(&tmp)
	tmp.Add(&tmp, &a)
	rc0 := tmp

	t.Add(&x[0], &x[1])
	tmp.Add(c0, c1)
	tmp.Mul(&tmp, &t)
	tmp.Sub(&tmp, &a)
	tmp.Sub(&tmp, &b)
	rc1 := tmp

	t.Add(&x[0], &x[2])
	tmp.Mul(c0, &t)
	tmp.Sub(&tmp, &a)
	tmp.Add(&tmp, &b)
	rc2 := tmp

	z[0] = rc0
	z[1] = rc1
	z[2] = rc2
	return z
}

// Invert sets z = x^-1 using the standard cubic-extension inversion
// formula (norm computed via the three pairwise products).
func (z *Fp6) Invert(x *Fp6) *Fp6 {
	var t0, t1, t2, t3, t4, t5 Fp2
	t0.Square(&x[0])
	t1.Square(&x[1])
	t2.Square(&x[2])
	t3.Mul(&x[0], &x[1])
	t4.Mul(&x[0], &x[2])
	t5.Mul(&x[1], &x[2])

	var c0, c1, c2 Fp2
	var nrt5 Fp2
	nrt5.MulByNonResidue(&t5)
	c0.Sub(&t0, &nrt5)

	var nrt2 Fp2
	nrt2.MulByNonResidue(&t2)
	c1.Sub(&nrt2, &t3)

	c2.Sub(&t1, &t4)

	var norm, tmp Fp2
	norm.Mul(&x[0], &c0)
	tmp.Mul(&x[2], &c1)
	tmp.MulByNonResidue(&tmp)
	norm.Add(&norm, &tmp)
	tmp.Mul(&x[1], &c2)
	tmp.MulByNonResidue(&tmp)
	norm.Add(&norm, &tmp)
	norm.Invert(&norm)

	z[0].Mul(&c0, &norm)
	z[1].Mul(&c1, &norm)
	z[2].Mul(&c2, &norm)
	return z
}

// frobeniusCoeffs1[k] / frobeniusCoeffs2[k] hold xi^((q^k-1)/3) and
// xi^(2(q^k-1)/3) for k=0..5, the constants the Frobenius endomorphism
// needs to act on the v and v^2 coordinates. Derived as gamma_k^2 and
// gamma_k^4 where gamma_k = xi^((q^k-1)/6).
var frobeniusCoeffs1 [6]Fp2

func init() {
	one := NewFp().One()
	frobeniusCoeffs1[0] = Fp2{*one, Fp{}}
	frobeniusCoeffs2[0] = Fp2{*one, Fp{}}

	gammas := [6]Fp2{
		{ // gamma1
			Fp{0x07089552b319d465, 0xc6695f92b50a8313, 0x97e83cccd117228f, 0xa35baecab2dc29ee, 0x1ce393ea5daace4d, 0x08f2220fb0fb66eb},
			Fp{0xb2f66aad4ce5d646, 0x5842a06bfc497cec, 0xcf4895d42599d394, 0xc11b9cba40a8e8d0, 0x2e3813cbe5a0de89, 0x110eefda88847faf},
		},
		{ // gamma2
			Fp{0xecfb361b798dba3a, 0xc100ddb891865a2c, 0x0ec08ff1232bda8e, 0xd5c13cc6f1ca4721, 0x47222a47bf7b5c04, 0x0110f184e51c5f59},
			Fp{},
		},
		{ // gamma3
			Fp{0x3e2f585da55c9ad1, 0x4294213d86c18183, 0x382844c88b623732, 0x92ad2afd19103e18, 0x1d794e4fac7cf0b9, 0x0bd592fc7d825ec8},
			Fp{0x7bcfa7a25aa30fda, 0xdc17dec12a927e7c, 0x2f088dd86b4ebef1, 0xd1ca2087da74d4a7, 0x2da2596696cebc1d, 0x0e2b7eedbbfd87d2},
		},
		{ // gamma4
			Fp{0x30f1361b798a64e8, 0xf3b8ddab7ece5a2a, 0x16a8ca3ac61577f7, 0xc26a2ff874fd029b, 0x3636b76660701c6e, 0x051ba4ab241b6160},
			Fp{},
		},
		{ // gamma5
			Fp{0x3726c30af242c66c, 0x7c2ac1aad1b6fe70, 0xa04007fbba4b14a2, 0xef517c3266341429, 0x095ba654ed2226b, 0x02e370eccc86f7dd},
			Fp{0x82d83cf50dbce43f, 0xa2813e53df9d018f, 0xc6f0caa53c65e181, 0x7525cf528d50fe95, 0x4a85ed50f4798a6b, 0x171da0fd6cf8eebd},
		},
	}
	for k := 1; k <= 5; k++ {
		g := gammas[k-1]
		var g2, g4 Fp2
		g2.Mul(&g, &g)
		g4.Mul(&g2, &g2)
		frobeniusCoeffs1[k] = g2
		frobeniusCoeffs2[k] = g4
	}
}

var frobeniusCoeffs2 [6]Fp2

// Frobenius sets z = x^(q^power), power in [0,5].
func (z *Fp6) Frobenius(x *Fp6, power int) *Fp6 {
	power %= 6
	var c0, c1, c2 Fp2
	c0.Set(&x[0])
	c1.Set(&x[1])
	c2.Set(&x[2])
	if power%2 != 0 {
		c0.Conjugate(&c0)
		c1.Conjugate(&c1)
		c2.Conjugate(&c2)
	}
	c1.Mul(&c1, &frobeniusCoeffs1[power])
	c2.Mul(&c2, &frobeniusCoeffs2[power])
	z[0].Set(&c0)
	z[1].Set(&c1)
	z[2].Set(&c2)
	return z
}
