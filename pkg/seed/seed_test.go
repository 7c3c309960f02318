package seed

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sot-tech/pcg32"
)

func TestFromLabel(t *testing.T) {
	s0, i0 := FromLabel("dealer")
	s1, i1 := FromLabel("dealer")
	require.Equal(t, s0, s1)
	require.Equal(t, i0, i1)
	require.NotEqual(t, s0, i0, "state and stream words must come from different hashes")

	s2, i2 := FromLabel("player")
	require.NotEqual(t, s0, s2)
	require.NotEqual(t, i0, i2)
}

func TestFromLabelSeedsGenerator(t *testing.T) {
	a := pcg32.FromSeed(FromLabel("dealer"))
	b := pcg32.FromSeed(FromLabel("dealer"))
	require.Equal(t, a, b)
	require.Equal(t, a.Uint32(), b.Uint32())
}

func TestCryptoSource(t *testing.T) {
	var src CryptoSource
	require.NotEqual(t, src.Uint64(), src.Uint64())
}

func TestWords(t *testing.T) {
	seed0, seed1 := Words()
	require.NotEqual(t, seed0, seed1)

	g := pcg32.FromSeed(Words())
	g.Uint32()
}
