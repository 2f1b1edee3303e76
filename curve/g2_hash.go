package curve

import "github.com/kysee/bls12-381/field"

// G2's hash-to-curve map is Simplified SWU onto the 3-isogenous curve
// E'2, followed by the published 3-isogeny back to E2 (RFC 9380
// §8.8.2, ciphersuite BLS12381G2_XMD:SHA-256_SSWU_RO_). Constants from
// the draft's Appendix E.3.
var (
	g2IsoZ = computeG2IsoZ()
	g2IsoA = mustFp2("0x0", "0xf0")
	g2IsoB = mustFp2("0x3f4", "0x3f4")
)

// computeG2IsoZ returns Z = -(2+u), built from small literals instead
// of one large negative constant.
func computeG2IsoZ() field.Fp2 {
	two := mustFp2("0x2", "0x0")
	oneU := mustFp2("0x0", "0x1")
	var z field.Fp2
	z.Add(&two, &oneU)
	z.Neg(&z)
	return z
}

func mustFp2(c0, c1 string) field.Fp2 {
	return field.Fp2{mustFp(c0), mustFp(c1)}
}

var (
	g2IsoC1 = computeG2IsoC1()
	g2IsoC2 = computeG2IsoC2()
)

func computeG2IsoC1() field.Fp2 {
	var c field.Fp2
	c.Invert(&g2IsoA)
	c.Mul(&c, &g2IsoB)
	c.Neg(&c)
	return c
}

func computeG2IsoC2() field.Fp2 {
	var c field.Fp2
	c.Invert(&g2IsoZ)
	c.Neg(&c)
	return c
}

func invert0G2(x *field.Fp2) field.Fp2 {
	var out field.Fp2
	if x.IsZero() {
		return out
	}
	out.Invert(x)
	return out
}

func isQuadraticNonResidueFp2(x *field.Fp2) bool {
	var z field.Fp2
	return z.IsQuadraticNonResidue(x)
}

// sswuG2 implements the optimized Simplified SWU map over Fp2 (RFC
// 9380 Appendix F.2), the direct Fp2 analogue of sswuG1.
func sswuG2(u *field.Fp2) (x, y field.Fp2) {
	one := field.NewFp2().One()

	var tv1, tv2 field.Fp2
	tv1.Square(u)
	tv1.Mul(&tv1, &g2IsoZ)
	tv2.Square(&tv1)

	var sum field.Fp2
	sum.Add(&tv1, &tv2)

	x1 := invert0G2(&sum)
	e1 := x1.IsZero()
	x1.Add(&x1, one)
	x1.CondAssign(&g2IsoC2, boolToBit(e1))
	x1.Mul(&x1, &g2IsoC1)

	var gx1 field.Fp2
	gx1.Square(&x1)
	gx1.Add(&gx1, &g2IsoA)
	gx1.Mul(&gx1, &x1)
	gx1.Add(&gx1, &g2IsoB)

	var x2 field.Fp2
	x2.Mul(&tv1, &x1)

	var tv3, gx2 field.Fp2
	tv3.Mul(&tv1, &tv2)
	gx2.Mul(&gx1, &tv3)

	gx1Square := !isQuadraticNonResidueFp2(&gx1)

	outX := x2
	outGx := gx2
	if gx1Square {
		outX = x1
		outGx = gx1
	}

	var outY field.Fp2
	outY.Sqrt(&outGx)
	if u[0].IsOdd() != outY[0].IsOdd() {
		outY.Neg(&outY)
	}
	return outX, outY
}

// evalPolyFp2 is evalPoly's Fp2 analogue.
func evalPolyFp2(x *field.Fp2, coeffsLowToHigh []field.Fp2) field.Fp2 {
	var acc field.Fp2
	for i := len(coeffsLowToHigh) - 1; i >= 0; i-- {
		acc.Mul(&acc, x)
		acc.Add(&acc, &coeffsLowToHigh[i])
	}
	return acc
}

// g2IsoXNum, g2IsoXDen, g2IsoYNum and g2IsoYDen are the 3-isogeny's
// rational-map coefficients (RFC 9380 Appendix E.3), x_num/y_num in
// full and x_den/y_den with their monic leading term appended.
var (
	g2IsoXNum = []field.Fp2{
		mustFp2("0x5c759507e8e333ebb5b7a9a47d7ed8532c52d39fd3a042a88b58423c50ae15d5c2638e343d9c71c6238aaaaaaaa97d6", "0x5c759507e8e333ebb5b7a9a47d7ed8532c52d39fd3a042a88b58423c50ae15d5c2638e343d9c71c6238aaaaaaaa97d6"),
		mustFp2("0x0", "0x11560bf17baa99bc32126fced787c88f984f87adf7ae0c7f9a208c6b4f20a4181472aaa9cb8d555526a9ffffffffc71a"),
		mustFp2("0x11560bf17baa99bc32126fced787c88f984f87adf7ae0c7f9a208c6b4f20a4181472aaa9cb8d555526a9ffffffffc71e", "0x8ab05f8bdd54cde190937e76bc3e447cc27c3d6fbd7063fcd104635a790520c0a395554e5c6aaaa9354ffffffffe38d"),
		mustFp2("0x171d6541fa38ccfaed6dea691f5fb614cb14b4e7f4e810aa22d6108f142b85757098e38d0f671c7188e2aaaaaaaa5ed1", "0x0"),
	}
	g2IsoXDen = append([]field.Fp2{
		mustFp2("0x0", "0x1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaa63"),
		mustFp2("0xc", "0x1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaa9f"),
	}, *field.NewFp2().One())
	g2IsoYNum = []field.Fp2{
		mustFp2("0x1530477c7ab4113b59a4c18b076d11930f7da5d4a07f649bf54439d87d27e500fc8c25ebf8c92f6812cfc71c71c6d706", "0x1530477c7ab4113b59a4c18b076d11930f7da5d4a07f649bf54439d87d27e500fc8c25ebf8c92f6812cfc71c71c6d706"),
		mustFp2("0x0", "0x5c759507e8e333ebb5b7a9a47d7ed8532c52d39fd3a042a88b58423c50ae15d5c2638e343d9c71c6238aaaaaaaa97be"),
		mustFp2("0x11560bf17baa99bc32126fced787c88f984f87adf7ae0c7f9a208c6b4f20a4181472aaa9cb8d555526a9ffffffffc71c", "0x8ab05f8bdd54cde190937e76bc3e447cc27c3d6fbd7063fcd104635a790520c0a395554e5c6aaaa9354ffffffffe38f"),
		mustFp2("0x124c9ad43b6cf79bfbf7043de3811ad0761b0f37a1e26286b0e977c69aa274524e79097a56dc4bd9e1b371c71c718b10", "0x0"),
	}
	g2IsoYDen = append([]field.Fp2{
		mustFp2("0x1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffa8fb", "0x1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffa8fb"),
		mustFp2("0x0", "0x1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffa9d3"),
		mustFp2("0x12", "0x1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaa99"),
	}, *field.NewFp2().One())
)

// isogenyMapG2 applies the published 3-isogeny from E'2 (the SSWU
// target curve) back onto G2's curve E2.
func isogenyMapG2(x, y *field.Fp2) (field.Fp2, field.Fp2) {
	xNum := evalPolyFp2(x, g2IsoXNum)
	xDen := evalPolyFp2(x, g2IsoXDen)
	yNum := evalPolyFp2(x, g2IsoYNum)
	yDen := evalPolyFp2(x, g2IsoYDen)

	xDenInv := invert0G2(&xDen)
	var xo field.Fp2
	xo.Mul(&xNum, &xDenInv)

	yDenInv := invert0G2(&yDen)
	var yo field.Fp2
	yo.Mul(&yNum, &yDenInv)
	yo.Mul(&yo, y)

	return xo, yo
}

// mapToCurveG2 implements map_to_curve for G2 (RFC 9380 §8.8.2):
// Simplified SWU onto E'2, then the 3-isogeny onto E2.
func mapToCurveG2(u *field.Fp2) *G2 {
	x, y := sswuG2(u)
	xo, yo := isogenyMapG2(&x, &y)
	return FromAffineG2(&xo, &yo)
}

// EncodeToCurveG2 implements the non-uniform encode_to_curve for G2.
func EncodeToCurveG2(msg, dst []byte) (*G2, error) {
	u, err := hashToFieldFp2(msg, dst, 1)
	if err != nil {
		return nil, err
	}
	p := mapToCurveG2(&u[0])
	p.ClearCofactor(p)
	return p, nil
}

// HashToCurveG2 implements the uniform hash_to_curve for G2: two
// independent hash_to_field pulls, each mapped to a curve point, added
// together.
func HashToCurveG2(msg, dst []byte) (*G2, error) {
	u, err := hashToFieldFp2(msg, dst, 2)
	if err != nil {
		return nil, err
	}
	p0 := mapToCurveG2(&u[0])
	p1 := mapToCurveG2(&u[1])
	p0.Add(p0, p1)
	p0.ClearCofactor(p0)
	return p0, nil
}
