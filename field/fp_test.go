package field

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustFp(t *testing.T, hex string) *Fp {
	t.Helper()
	e, err := FromString(hex)
	require.NoError(t, err)
	return e
}

func TestFpByteRoundTrip(t *testing.T) {
	e := mustFp(t, "0x1234567890abcdef1234567890abcdef1234567890abcdef1234567890abcd")
	b := e.ToBytes()
	require.Len(t, b, FpByteSize)

	back, err := FromBytes(b)
	require.NoError(t, err)
	require.True(t, e.Equal(back))
}

func TestFromBytesRejectsOutOfRange(t *testing.T) {
	// all-0xff is far larger than the modulus.
	b := make([]byte, FpByteSize)
	for i := range b {
		b[i] = 0xff
	}
	_, err := FromBytes(b)
	require.Error(t, err)
}

func TestFromBytesRejectsWrongLength(t *testing.T) {
	_, err := FromBytes(make([]byte, FpByteSize-1))
	require.Error(t, err)
}

func TestFpAddSubInverse(t *testing.T) {
	a := mustFp(t, "0x03")
	b := mustFp(t, "0x05")
	var sum, back Fp
	sum.Add(a, b)
	back.Sub(&sum, b)
	require.True(t, back.Equal(a))
}

func TestFpNegIsAdditiveInverse(t *testing.T) {
	a := mustFp(t, "0x2a")
	var neg, sum Fp
	neg.Neg(a)
	sum.Add(a, &neg)
	require.True(t, sum.IsZero())
}

func TestFpMulInvertIsOne(t *testing.T) {
	a := mustFp(t, "0x1337")
	var inv, prod Fp
	inv.Invert(a)
	prod.Mul(a, &inv)
	require.True(t, prod.IsOne())
}

func TestFpInvertZeroIsZero(t *testing.T) {
	var zero, inv Fp
	zero.Zero()
	inv.Invert(&zero)
	require.True(t, inv.IsZero())
}

func TestFpSquareMatchesSelfMul(t *testing.T) {
	a := mustFp(t, "0xdeadbeef")
	var sq, mul Fp
	sq.Square(a)
	mul.Mul(a, a)
	require.True(t, sq.Equal(&mul))
}

func TestFpDoubleMatchesAddSelf(t *testing.T) {
	a := mustFp(t, "0x77")
	var dbl, add Fp
	dbl.Double(a)
	add.Add(a, a)
	require.True(t, dbl.Equal(&add))
}

func TestFpSqrtRoundTrip(t *testing.T) {
	a := mustFp(t, "0x09") // 9 is a QR: sqrt is 3 up to sign
	var sq Fp
	sq.Square(a)
	var root Fp
	ok := root.Sqrt(&sq)
	require.True(t, ok)
	var back Fp
	back.Square(&root)
	require.True(t, back.Equal(&sq))
}

func TestCondAssign(t *testing.T) {
	a := mustFp(t, "0x01")
	b := mustFp(t, "0x02")
	var z Fp
	z.Set(a)
	z.CondAssign(b, 0)
	require.True(t, z.Equal(a), "bit=0 must keep z unchanged")
	z.CondAssign(b, 1)
	require.True(t, z.Equal(b), "bit=1 must overwrite z")
}

func TestInvertBatch(t *testing.T) {
	vals := []Fp{*mustFp(t, "0x02"), *mustFp(t, "0x03"), *mustFp(t, "0x05")}
	want := make([]Fp, len(vals))
	for i := range vals {
		want[i].Invert(&vals[i])
	}
	InvertBatch(vals)
	for i := range vals {
		require.True(t, vals[i].Equal(&want[i]))
	}
}
