// Package pairing implements the BLS12-381 optimal ate pairing
// e: G1 x G2 -> GT, built from the field tower in package field and
// the point arithmetic in package curve.
package pairing

import (
	"math/big"

	"github.com/kysee/bls12-381/curve"
	"github.com/kysee/bls12-381/field"
)

// xAbs is |x| for the BLS12-381 seed x = -0xd201000000010000, MSB
// first, skipping the leading 1 bit (the Miller loop starts from the
// second-highest bit, same convention as a standard square-and-multiply).
var xAbsBits = buildXAbsBits()

func buildXAbsBits() []bool {
	const xAbsHex = "d201000000010000"
	bits := make([]bool, 0, 68)
	started := false
	for _, c := range xAbsHex {
		var nibble int
		if c >= '0' && c <= '9' {
			nibble = int(c - '0')
		} else {
			nibble = int(c-'a') + 10
		}
		for b := 3; b >= 0; b-- {
			bit := (nibble>>uint(b))&1 == 1
			if !started {
				if !bit {
					continue
				}
				started = true
				continue // skip the leading 1 itself
			}
			bits = append(bits, bit)
		}
	}
	return bits
}

// lineDouble evaluates the tangent line at r (affine G2) against the
// affine G1 point (px, py), returning the sparse Fp12 line value and
// the doubled point 2r.
func lineDouble(rx, ry *field.Fp2, px, py *field.Fp) (c0, c1, c4 field.Fp2, nrx, nry field.Fp2) {
	var three, two field.Fp
	three.Add(two2(), field.NewFp().One())
	two.Set(two2())

	var rx2, num, den, lam field.Fp2
	rx2.Square(rx)
	num.MulByFp(&rx2, &three)
	den.MulByFp(ry, &two)
	den.Invert(&den)
	lam.Mul(&num, &den)

	var lam2, twoRx field.Fp2
	lam2.Square(&lam)
	twoRx.Double(rx)
	nrx.Sub(&lam2, &twoRx)

	var dx field.Fp2
	dx.Sub(rx, &nrx)
	nry.Mul(&lam, &dx)
	nry.Sub(&nry, ry)

	c0.Mul(&lam, rx)
	c0.Sub(&c0, ry)
	c1.MulByFp(&lam, px)
	c1.Neg(&c1)
	c4 = field.Fp2{*py, field.Fp{}}
	return
}

// lineAdd evaluates the chord through r and q (both affine G2) against
// the affine G1 point (px, py), returning the sparse Fp12 line value
// and r+q.
func lineAdd(rx, ry, qx, qy *field.Fp2, px, py *field.Fp) (c0, c1, c4 field.Fp2, nrx, nry field.Fp2) {
	var num, den, lam field.Fp2
	num.Sub(qy, ry)
	den.Sub(qx, rx)
	den.Invert(&den)
	lam.Mul(&num, &den)

	var lam2 field.Fp2
	lam2.Square(&lam)
	nrx.Sub(&lam2, rx)
	nrx.Sub(&nrx, qx)

	var dx field.Fp2
	dx.Sub(rx, &nrx)
	nry.Mul(&lam, &dx)
	nry.Sub(&nry, ry)

	c0.Mul(&lam, rx)
	c0.Sub(&c0, ry)
	c1.MulByFp(&lam, px)
	c1.Neg(&c1)
	c4 = field.Fp2{*py, field.Fp{}}
	return
}

func two2() *field.Fp {
	return field.NewFp().Double(field.NewFp().One())
}

// MillerLoop computes the Miller loop value for the pair (p, q); the
// zero value of either input yields the multiplicative identity.
func MillerLoop(p *curve.G1, q *curve.G2) *field.Fp12 {
	f := field.NewFp12().One()
	if p.IsZero() || q.IsZero() {
		return f
	}
	px, py := p.ToAffine()
	qx, qy := q.ToAffine()

	rx, ry := qx, qy

	for _, bit := range xAbsBits {
		c0, c1, c4, nrx, nry := lineDouble(&rx, &ry, &px, &py)
		f.Square(f)
		f.MulBy014(f, &c0, &c1, &c4)
		rx, ry = nrx, nry

		if bit {
			c0, c1, c4, nrx, nry = lineAdd(&rx, &ry, &qx, &qy, &px, &py)
			f.MulBy014(f, &c0, &c1, &c4)
			rx, ry = nrx, nry
		}
	}

	// x is negative: the optimal ate Miller loop for -|x| is the
	// conjugate of the loop run over |x|.
	f.Conjugate(f)
	return f
}

// hardPartExponent is (q^4-q^2+1)/r, the exponent of final
// exponentiation's hard part.
var hardPartExponent, _ = new(big.Int).SetString(
	"f686b3d807d01c0bd38c3195c899ed3cde88eeb996ca394506632528d6a9a2f230063cf081517f68f7764c28b6f8ae5a72bce8d63cb9f827eca0ba621315b2076995003fc77a17988f8761bdc51dc2378b9039096d1b767f17fcbde783765915c97f36c6f18212ed0b283ed237db421d160aeb6a1e79983774940996754c8c71a2629b0dea236905ce937335d5b68fa9912aae208ccf1e516c3f438e3ba79",
	16,
)

// FinalExponentiation raises f to (q^12-1)/r, split into an easy part
// (Frobenius/conjugate-based) and a hard part (exponentiation by the
// precomputed (q^4-q^2+1)/r).
func FinalExponentiation(f *field.Fp12) *field.Fp12 {
	var finv, f1 field.Fp12
	finv.Invert(f)
	var conj field.Fp12
	conj.Conjugate(f)
	f1.Mul(&conj, &finv)

	var f1q2, f2 field.Fp12
	f1q2.Frobenius(&f1, 2)
	f2.Mul(&f1q2, &f1)

	var out field.Fp12
	out.ExpBig(&f2, hardPartExponent)
	return &out
}

// Pairing computes e(p, q) = FinalExponentiation(MillerLoop(p, q)).
func Pairing(p *curve.G1, q *curve.G2) *field.Fp12 {
	return FinalExponentiation(MillerLoop(p, q))
}

// MultiPairing reports whether the product of e(p_i, q_i) equals the
// identity in GT, the form used by aggregate signature verification
// (avoids a separate final exponentiation per pair).
func MultiPairing(ps []*curve.G1, qs []*curve.G2) bool {
	if len(ps) != len(qs) {
		panic("pairing: MultiPairing mismatched input lengths")
	}
	f := field.NewFp12().One()
	for i := range ps {
		if ps[i].IsZero() || qs[i].IsZero() {
			continue
		}
		mi := MillerLoop(ps[i], qs[i])
		f.Mul(f, mi)
	}
	return FinalExponentiation(f).IsOne()
}
