package curve

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMultiExpG1MatchesSequentialSum(t *testing.T) {
	g := G1Generator()
	scalars := [][4]uint64{{3, 0, 0, 0}, {5, 0, 0, 0}, {11, 0, 0, 0}}
	points := make([]*G1, len(scalars))
	want := NewG1().Zero()
	for i, s := range scalars {
		var p G1
		sCopy := s
		p.MulScalar(g, &sCopy)
		points[i] = &p
		var sp G1
		sCopy = s
		sp.MulScalar(&p, &sCopy)
		want.Add(want, &sp)
	}
	got := MultiExpG1(points, scalars)
	require.True(t, got.Equal(want))
}

func TestMultiExpG1EmptyIsZero(t *testing.T) {
	got := MultiExpG1(nil, nil)
	require.True(t, got.IsZero())
}

func TestMultiExpG2MatchesSequentialSum(t *testing.T) {
	g := G2Generator()
	scalars := [][4]uint64{{7, 0, 0, 0}, {13, 0, 0, 0}}
	points := make([]*G2, len(scalars))
	want := NewG2().Zero()
	for i, s := range scalars {
		var p G2
		p.MulScalar(g, []uint64{s[0], s[1], s[2], s[3]})
		points[i] = &p
		var sp G2
		sp.MulScalar(&p, []uint64{s[0], s[1], s[2], s[3]})
		want.Add(want, &sp)
	}
	got := MultiExpG2(points, scalars)
	require.True(t, got.Equal(want))
}
