package field

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func fp6From(a0, a1, b0, b1, c0, c1 string) *Fp6 {
	return &Fp6{*fp2From(a0, a1), *fp2From(b0, b1), *fp2From(c0, c1)}
}

func TestFp6MulInvertIsOne(t *testing.T) {
	x := fp6From("0x02", "0x03", "0x05", "0x07", "0x0b", "0x0d")
	var inv, prod Fp6
	inv.Invert(x)
	prod.Mul(x, &inv)
	require.True(t, prod.IsOne())
}

func TestFp6SquareMatchesMul(t *testing.T) {
	x := fp6From("0x01", "0x02", "0x03", "0x04", "0x05", "0x06")
	var sq, mul Fp6
	sq.Square(x)
	mul.Mul(x, x)
	require.True(t, sq.Equal(&mul))
}

func TestFp6MulBy01MatchesGeneralMul(t *testing.T) {
	x := fp6From("0x11", "0x22", "0x33", "0x44", "0x55", "0x66")
	c0 := fp2From("0x07", "0x09")
	c1 := fp2From("0x0a", "0x0c")
	sparse := Fp6{*c0, *c1, Fp2{}}

	var viaSparse, viaGeneral Fp6
	viaSparse.MulBy01(x, c0, c1)
	viaGeneral.Mul(x, &sparse)
	require.True(t, viaSparse.Equal(&viaGeneral))
}

func TestFp6MulByNonResidueMatchesW2Relation(t *testing.T) {
	// v is represented by (0,1,0); x*v should equal MulByNonResidue(x).
	x := fp6From("0x04", "0x05", "0x06", "0x07", "0x08", "0x09")
	v := Fp6{Fp2{}, Fp2{one(), Fp{}}, Fp2{}}
	var viaHelper, viaMul Fp6
	viaHelper.MulByNonResidue(x)
	viaMul.Mul(x, &v)
	require.True(t, viaHelper.Equal(&viaMul))
}
