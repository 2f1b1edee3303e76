package curve

import "github.com/kysee/bls12-381/field"

// G1's hash-to-curve map is Simplified SWU onto the 11-isogenous curve
// E': y^2 = x^3 + A'x + B', followed by the published 11-isogeny back
// to E: y^2 = x^3 + 4 (RFC 9380 §8.8.1, ciphersuite
// BLS12381G1_XMD:SHA-256_SSWU_RO_). The isogeny's rational-map
// coefficients are public constants from the draft's Appendix E.2.
var (
	g1IsoZ = mustFp("0xb")
	g1IsoA = mustFp("0x144698a3b8e9433d693a02c96d4982b0ea985383ee66a8d8e8981aefd881ac98936f8da0e0f97f5cf428082d584c1d")
	g1IsoB = mustFp("0x12e2908d11688030018b12e8753eee3b2016c1f0f24f4070a0b9c14fcef35ef55a23215a316ceaa5d1cc48e98e172be0")
)

// g1IsoC1, g1IsoC2 are the SSWU precomputed constants -B'/A' and -1/Z;
// derived from the constants above via field inversion rather than
// transcribed as separate literals.
var (
	g1IsoC1 = computeG1IsoC1()
	g1IsoC2 = computeG1IsoC2()
)

func computeG1IsoC1() field.Fp {
	var c field.Fp
	c.Invert(&g1IsoA)
	c.Mul(&c, &g1IsoB)
	c.Neg(&c)
	return c
}

func computeG1IsoC2() field.Fp {
	var c field.Fp
	c.Invert(&g1IsoZ)
	c.Neg(&c)
	return c
}

func mustFp(s string) field.Fp {
	e, err := field.FromString(s)
	if err != nil {
		panic("curve: invalid field constant " + s)
	}
	return *e
}

func boolToBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// invert0 returns x^-1, or zero when x is zero (the "inv0" primitive
// RFC 9380 relies on to keep map_to_curve exception-free).
func invert0G1(x *field.Fp) field.Fp {
	var out field.Fp
	if x.IsZero() {
		return out
	}
	out.Invert(x)
	return out
}

// sswuG1 implements the optimized Simplified SWU map (RFC 9380
// Appendix F.2) from a field element onto the isogenous curve E'.
func sswuG1(u *field.Fp) (x, y field.Fp) {
	one := field.NewFp().One()

	var tv1, tv2 field.Fp
	tv1.Square(u)
	tv1.Mul(&tv1, &g1IsoZ)
	tv2.Square(&tv1)

	var sum field.Fp
	sum.Add(&tv1, &tv2)

	x1 := invert0G1(&sum)
	e1 := x1.IsZero()
	x1.Add(&x1, one)
	x1.CondAssign(&g1IsoC2, boolToBit(e1))
	x1.Mul(&x1, &g1IsoC1)

	var gx1 field.Fp
	gx1.Square(&x1)
	gx1.Add(&gx1, &g1IsoA)
	gx1.Mul(&gx1, &x1)
	gx1.Add(&gx1, &g1IsoB)

	var x2 field.Fp
	x2.Mul(&tv1, &x1)

	var tv3, gx2 field.Fp
	tv3.Mul(&tv1, &tv2)
	gx2.Mul(&gx1, &tv3)

	gx1Square := !field.IsQuadraticNonResidue(&gx1)

	outX := x2
	outGx := gx2
	if gx1Square {
		outX = x1
		outGx = gx1
	}

	var outY field.Fp
	outY.Sqrt(&outGx)
	if u.IsOdd() != outY.IsOdd() {
		outY.Neg(&outY)
	}
	return outX, outY
}

// evalPoly evaluates a polynomial given its coefficients low-degree
// first (index i holds the coefficient of x^i) via Horner's method.
func evalPoly(x *field.Fp, coeffsLowToHigh []field.Fp) field.Fp {
	var acc field.Fp
	for i := len(coeffsLowToHigh) - 1; i >= 0; i-- {
		acc.Mul(&acc, x)
		acc.Add(&acc, &coeffsLowToHigh[i])
	}
	return acc
}

// g1IsoXNum, g1IsoXDen, g1IsoYNum and g1IsoYDen are the 11-isogeny's
// rational-map coefficients (RFC 9380 Appendix E.2), x_num and y_num
// in full and x_den, y_den with their monic leading term appended.
var (
	g1IsoXNum = []field.Fp{
		mustFp("0x11a05f2b1e833340b809101dd99815856b303e88a2d7005ff2627b56cdb4e2c85610c2d5f2e62d6eaeac1662734649b7"),
		mustFp("0x17294ed3e943ab2f0588bab22147a81c7c17e75b2f6a8417f565e33c70d1e86b4838f2a6f318c356e834eef1b3cb83bb"),
		mustFp("0xd54005db97678ec1d1048c5d10a9a1bce032473295983e56878e501ec68e25c958c3e3d2a09729fe0179f9dac9edcb0"),
		mustFp("0x1778e7166fcc6db74e0609d307e55412d7f5e4656a8dbf25f1b33289f1b330835336e25ce3107193c5b388641d9b6861"),
		mustFp("0xe99726a3199f4436642b4b3e4118e5499db995a1257fb3f086eeb65982fac18985a286f301e77c451154ce9ac8895d9"),
		mustFp("0x1630c3250d7313ff01d1201bf7a74ab5db3cb17dd952799b9ed3ab9097e68f90a0870d2dcae73d19cd13c1c66f652983"),
		mustFp("0xd6ed6553fe44d296a3726c38ae652bfb11586264f0f8ce19008e218f9c86b2a8da25128c1052ecaddd7f225a139ed84"),
		mustFp("0x17b81e7701abdbe2e8743884d1117e53356de5ab275b4db1a682c62ef0f2753339b7c8f8c8f475af9ccb5618e3f0c88e"),
		mustFp("0x80d3cf1f9a78fc47b90b33563be990dc43b756ce79f5574a2c596c928c5d1de4fa295f296b74e956d71986a8497e317"),
		mustFp("0x169b1f8e1bcfa7c42e0c37515d138f22dd2ecb803a0c5c99676314baf4bb1b7fa3190b2edc0327797f241067be390c9e"),
		mustFp("0x10321da079ce07e272d8ec09d2565b0dfa7dccdde6787f96d50af36003b14866f69b771f8c285decca67df3f1605fb7b"),
		mustFp("0x6e08c248e260e70bd1e962381edee3d31d79d7e22c837bc23c0bf1bc24c6b68c24b1b80b64d391fa9c8ba2e8ba2d229"),
	}
	g1IsoXDen = append([]field.Fp{
		mustFp("0x8ca8d548cff19ae18b2e62f4bd3fa6f01d5ef4ba35b48ba9c9588617fc8ac62b558d681be343df8993cf9fa40d21b1c"),
		mustFp("0x12561a5deb559c4348b4711298e536367041e8ca0cf0800c0126c2588c48bf5713daa8846cb026e9e5c8276ec82b3bff"),
		mustFp("0xb2962fe57a3225e8137e629bff2991f6f89416f5a718cd1fca64e00b11aceacd6a3d0967c94fedcfcc239ba5cb83e19"),
		mustFp("0x3425581a58ae2fec83aafef7c40eb545b08243f16b1655154cca8abc28d6fd04976d5243eecf5c4130de8938dc62cd8"),
		mustFp("0x13a8e162022914a80a6f1d5f43e7a07dffdfc759a12062bb8d6b44e833b306da9bd29ba81f35781d539d395b3532a21e"),
		mustFp("0xe7355f8e4e667b955390f7f0506c6e9395735e9ce9cad4d0a43bcef24b8982f7400d24bc4228f11c02df9a29f6304a5"),
		mustFp("0x772caacf16936190f3e0c63e0596721570f5799af53a1894e2e073062aede9cea73b3538f0de06cec2574496ee84a3a"),
		mustFp("0x14a7ac2a9d64a8b230b3f5b074cf01996e7f63c21bca68a81996e1cdf9822c580fa5b9489d11e2d311f7d99bbdcc5a5e"),
		mustFp("0xa10ecf6ada54f825e920b3dafc7a3cce07f8d1d7161366b74100da67f39883503826692abba43704776ec3a79a1d641"),
		mustFp("0x95fc13ab9e92ad4476d6e3eb3a56680f682b4ee96f7d03776df533978f31c1593174e4b4b7865002d6384d168ecdd0a"),
	}, *field.NewFp().One())
	g1IsoYNum = []field.Fp{
		mustFp("0x90d97c81ba24ee0259d1f094980dcfa11ad138e48a869522b52af6c956543d3cd0c7aee9b3ba3c2be9845719707bb33"),
		mustFp("0x134996a104ee5811d51036d776fb46831223e96c254f383d0f906343eb67ad34d6c56711962fa8bfe097e75a2e41c696"),
		mustFp("0xcc786baa966e66f4a384c86a3b49942552e2d658a31ce2c344be4b91400da7d26d521628b00523b8dfe240c72de1f6"),
		mustFp("0x1f86376e8981c217898751ad8746757d42aa7b90eeb791c09e4a3ec03251cf9de1c0281c47ea82e1c7a6eb39bd5d6e3"),
		mustFp("0x8cc03fdefe0ff135caf4fe2a21529c4195536fbe3ce50b879833fd221351adc2ee7f8dc099040a841b6daecf2e8fedb"),
		mustFp("0x16603fca40634b6a2211e11db8f0a6a074a7d0d4afadb7bd76505c3d3ad5544e203f6326c95a807299b23ab13633a5f0"),
		mustFp("0x4ab0b9bcfac1bbcb2c977d027796b3ce75bb8ca2be184cb5231413c4d634f3747a87ac2460f415ec961f8855fe9d6f2"),
		mustFp("0x987c8d5333ab86fde9926bd2ca6c674170a05bfe3bdd81ffd038da6c26c842642f64550fedfe935a15e4ca31870fb29"),
		mustFp("0x9fc4018bd96684be88c9e221e4da1bb8f3abd16679dc26c1e8b6e6a1f20cabe69d65201c78607a360370e577bdba587"),
		mustFp("0xe1bba7a1186bdb5223abde7ada14a23c42a0ca7915af6fe06985e7ed1e4d43b9b3f7055dd4eba6f2bafaaebca731c30"),
		mustFp("0x19713e47937cd1be0dfd0b8f1d43fb93cd2fcbcb6caf493fd1183e416389e61031bf3a5cce3fbafce813711ad011c132"),
		mustFp("0x18b46a908f36f6deb918c143fed2edcc523657d7d6b3752b4de6a8f1aa6b80e6d73c3df33eb4b4e5de73c0cb9c0daa2d"),
		mustFp("0xb182cac101b9399d155096004f53f447aa7b12a3426b08ec02710e807b4633f06c851c1919211f20d4c04f00b971ef8"),
		mustFp("0x245a394ad1eca9b72fc00ae7be315dc757b3b080d4c158013e6632d3c40659cc6cf90ad1c232a6442d9d3f5db980133"),
		mustFp("0x5c129645e44cf1102a159f748c4a3fc5e673d81d7e86568d9ab0f5d396a7ce46ba1049b6579afb7866b1e715475224b"),
		mustFp("0x15e6be4e990f03ce4ea50b3b42df2eb700604dd2c9274c8ebb8cc3e76d3f52be88b0ccf1ce9af1d6e4d6c6f0fd2e36d5d"),
	}
	g1IsoYDen = append([]field.Fp{
		mustFp("0x1530477c7ab4113b59a4c18b076d11930f7da5d4a07f649bf54439d87d27e500fc8c25ebf8c92f6812cfc71c71c6d706"),
		mustFp("0x5c759507e8e333ebb5b7a9a47d7ed8532c52d39fd3a042a88b58423c50ae15d5c2638e343d9c71c6238aaaaaaaa97be"),
		mustFp("0x11560bf17baa99bc32126fced787c88f984f87adf7ae0c7f9a208c6b4f20a4181472aaa9cb8d555526a9ffffffffc71c"),
		mustFp("0x8ab05f8bdd54cde190937e76bc3e447cc27c3d6fbd7063fcd104635a790520c0a395554e5c6aaaa9354ffffffffe38d"),
		mustFp("0x171d6541fa38ccfaed6dea691f5fb614cb14b4e7f4e810aa22d6108f142b85757098e38d0f671c7188e2aaaaaaaa5ed1"),
		mustFp("0x124c9ad43b6cf79bfbf7043de3811ad0761b0f37a1e26286b0e977c69aa274524e79097a56dc4bd9e1b371c71c718b10"),
		mustFp("0x1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffa8fb"),
		mustFp("0x11560bf17baa99bc32126fced787c88f984f87adf7ae0c7f9a208c6b4f20a4181472aaa9cb8d555526a9ffffffffa8fb"),
		mustFp("0x1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffa9d3"),
		mustFp("0xb182cac101b9399d155096004f53f447aa7b12a3426b08ec02710e807b4633f06c851c1919211f20d4c04f00b971ef8"),
		mustFp("0x245a394ad1eca9b72fc00ae7be315dc757b3b080d4c158013e6632d3c40659cc6cf90ad1c232a6442d9d3f5db980133"),
		mustFp("0x5c129645e44cf1102a159f748c4a3fc5e673d81d7e86568d9ab0f5d396a7ce46ba1049b6579afb7866b1e715475224b"),
		mustFp("0x15e6be4e990f03ce4ea50b3b42df2eb700604dd2c9274c8ebb8cc3e76d3f52be88b0ccf1ce9af1d6e4d6c6f0fd2e36d5d"),
		mustFp("0xb182cac101b9399d155096004f53f447aa7b12a3426b08ec02710e807b4633f06c851c1919211f20d4c04f00b971ef8"),
		mustFp("0x1a0111ea397fe69a4b1ba7b6434bacd764774b84f38512bf6730d2a0f6b0f6241eabfffeb153ffffb9feffffffffaaa9"),
	}, *field.NewFp().One())
)

// isogenyMapG1 applies the published 11-isogeny from E' (the SSWU
// target curve) back onto G1's curve E: y^2 = x^3 + 4.
func isogenyMapG1(x, y *field.Fp) (field.Fp, field.Fp) {
	xNum := evalPoly(x, g1IsoXNum)
	xDen := evalPoly(x, g1IsoXDen)
	yNum := evalPoly(x, g1IsoYNum)
	yDen := evalPoly(x, g1IsoYDen)

	xDenInv := invert0G1(&xDen)
	var xo field.Fp
	xo.Mul(&xNum, &xDenInv)

	yDenInv := invert0G1(&yDen)
	var yo field.Fp
	yo.Mul(&yNum, &yDenInv)
	yo.Mul(&yo, y)

	return xo, yo
}

// mapToCurveG1 implements map_to_curve for G1 (RFC 9380 §8.8.1):
// Simplified SWU onto E', then the 11-isogeny onto E.
func mapToCurveG1(u *field.Fp) *G1 {
	x, y := sswuG1(u)
	xo, yo := isogenyMapG1(&x, &y)
	return FromAffine(&xo, &yo)
}

// EncodeToCurveG1 implements the non-uniform encode_to_curve: a single
// hash_to_field pull mapped straight to a subgroup point.
func EncodeToCurveG1(msg, dst []byte) (*G1, error) {
	u, err := hashToFieldFp(msg, dst, 1)
	if err != nil {
		return nil, err
	}
	p := mapToCurveG1(&u[0])
	p.ClearCofactor(p)
	return p, nil
}

// HashToCurveG1 implements the uniform hash_to_curve: two independent
// hash_to_field pulls, each mapped to a curve point, added together.
func HashToCurveG1(msg, dst []byte) (*G1, error) {
	u, err := hashToFieldFp(msg, dst, 2)
	if err != nil {
		return nil, err
	}
	p0 := mapToCurveG1(&u[0])
	p1 := mapToCurveG1(&u[1])
	p0.Add(p0, p1)
	p0.ClearCofactor(p0)
	return p0, nil
}
