package vision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSkeletonize_BandCollapsesToLine(t *testing.T) {
	m := NewMask(30, 9)
	for y := 2; y < 7; y++ {
		for x := 5; x < 25; x++ {
			m.set(x, y)
		}
	}

	sk := Skeletonize(m)
	require.Greater(t, sk.Count(), 0)
	require.Less(t, sk.Count(), m.Count())

	n := 0
	for y := 0; y < 9; y++ {
		if sk.at(15, y) {
			n++
		}
	}
	require.Equal(t, 1, n)

	for i, p := range sk.Pix {
		if p != 0 {
			require.NotZero(t, m.Pix[i], "skeleton must stay inside the source")
		}
	}
}

func TestSkeletonize_ThinLineUnchanged(t *testing.T) {
	m := NewMask(20, 5)
	for x := 3; x < 15; x++ {
		m.set(x, 2)
	}
	require.Equal(t, m.Pix, Skeletonize(m).Pix)
}

func TestSkeletonize_Empty(t *testing.T) {
	require.Equal(t, 0, Skeletonize(NewMask(8, 8)).Count())
}
