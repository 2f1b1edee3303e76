package field

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func fp12From(vals [12]string) *Fp12 {
	var x Fp12
	idx := 0
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 2; k++ {
				e, _ := FromString(vals[idx])
				x[i][j][k] = *e
				idx++
			}
		}
	}
	return &x
}

func sampleFp12() *Fp12 {
	return fp12From([12]string{
		"0x02", "0x03", "0x05", "0x07", "0x0b", "0x0d",
		"0x11", "0x13", "0x17", "0x1d", "0x1f", "0x25",
	})
}

func TestFp12MulInvertIsOne(t *testing.T) {
	x := sampleFp12()
	var inv, prod Fp12
	inv.Invert(x)
	prod.Mul(x, &inv)
	require.True(t, prod.IsOne())
}

func TestFp12SquareMatchesMul(t *testing.T) {
	x := sampleFp12()
	var sq, mul Fp12
	sq.Square(x)
	mul.Mul(x, x)
	require.True(t, sq.Equal(&mul))
}

func TestFp12ConjugateTwiceIsIdentity(t *testing.T) {
	x := sampleFp12()
	var c, cc Fp12
	c.Conjugate(x)
	cc.Conjugate(&c)
	require.True(t, cc.Equal(x))
}

func TestFp12FrobeniusZeroIsIdentity(t *testing.T) {
	x := sampleFp12()
	var f Fp12
	f.Frobenius(x, 0)
	require.True(t, f.Equal(x))
}

func TestFp12ExpMatchesExpBig(t *testing.T) {
	x := sampleFp12()
	var viaExp, viaBig Fp12
	viaExp.Exp(x, 37)
	viaBig.ExpBig(x, big.NewInt(37))
	require.True(t, viaExp.Equal(&viaBig))
}

func TestFp12ExpBigZeroIsOne(t *testing.T) {
	x := sampleFp12()
	var out Fp12
	out.ExpBig(x, big.NewInt(0))
	require.True(t, out.IsOne())
}

func TestFp12MulBy014MatchesGeneralMul(t *testing.T) {
	x := sampleFp12()
	c0 := fp2From("0x09", "0x0a")
	c1 := fp2From("0x0b", "0x0c")
	c4 := fp2From("0x0d", "0x0e")

	var sparse Fp12
	sparse[0][0] = *c0
	sparse[0][1] = *c1
	sparse[1][1] = *c4

	var viaSparse, viaGeneral Fp12
	viaSparse.MulBy014(x, c0, c1, c4)
	viaGeneral.Mul(x, &sparse)
	require.True(t, viaSparse.Equal(&viaGeneral))
}

func TestFp12CyclotomicSquareMatchesSquare(t *testing.T) {
	x := sampleFp12()
	var cs, sq Fp12
	cs.CyclotomicSquare(x)
	sq.Square(x)
	require.True(t, cs.Equal(&sq))
}
