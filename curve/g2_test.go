package curve

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestG2GeneratorIsOnCurveAndInSubgroup(t *testing.T) {
	g := G2Generator()
	require.True(t, g.IsOnCurve())
	require.True(t, g.InCorrectSubgroup())
	require.False(t, g.IsZero())
}

func TestG2ZeroIsIdentity(t *testing.T) {
	z := NewG2().Zero()
	g := G2Generator()

	var sum G2
	sum.Add(g, z)
	require.True(t, sum.Equal(g))
}

func TestG2DoubleMatchesAdd(t *testing.T) {
	g := G2Generator()
	var viaDouble, viaAdd G2
	viaDouble.Double(g)
	viaAdd.Add(g, g)
	require.True(t, viaDouble.Equal(&viaAdd))
}

func TestG2NegIsAdditiveInverse(t *testing.T) {
	g := G2Generator()
	var neg, sum G2
	neg.Neg(g)
	sum.Add(g, &neg)
	require.True(t, sum.IsZero())
}

func TestG2MulScalarByTwoMatchesDouble(t *testing.T) {
	g := G2Generator()
	k := []uint64{2, 0, 0, 0}
	var viaScalar, viaDouble G2
	viaScalar.MulScalar(g, k)
	viaDouble.Double(g)
	require.True(t, viaScalar.Equal(&viaDouble))
}

func TestG2MulScalarDistributesOverAdd(t *testing.T) {
	g := G2Generator()
	k3 := []uint64{3, 0, 0, 0}
	k5 := []uint64{5, 0, 0, 0}
	k8 := []uint64{8, 0, 0, 0}

	var p3, p5, p8, sum G2
	p3.MulScalar(g, k3)
	p5.MulScalar(g, k5)
	p8.MulScalar(g, k8)
	sum.Add(&p3, &p5)
	require.True(t, sum.Equal(&p8))
}

func TestG2ClearCofactorLandsInSubgroup(t *testing.T) {
	g := G2Generator()
	var cleared G2
	cleared.ClearCofactor(g)
	require.True(t, cleared.InCorrectSubgroup())
}

func TestG2CompressedRoundTrip(t *testing.T) {
	g := G2Generator()
	enc := g.ToCompressed()
	back, err := FromCompressed2(enc)
	require.NoError(t, err)
	require.True(t, back.Equal(g))
}

func TestG2UncompressedRoundTrip(t *testing.T) {
	g := G2Generator()
	enc := g.ToUncompressed()
	back, err := FromUncompressed2(enc)
	require.NoError(t, err)
	require.True(t, back.Equal(g))
}

func TestG2JacobianRoundTrip(t *testing.T) {
	g := G2Generator()
	var dbl G2
	dbl.Double(g)
	enc := dbl.ToJacobian()
	back, err := FromJacobian2(enc)
	require.NoError(t, err)
	require.True(t, back.Equal(&dbl))
}
