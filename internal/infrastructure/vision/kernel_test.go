package vision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEllipseKernel_MatchesOpenCVShape(t *testing.T) {
	k := EllipseKernel(11, 11)
	want := []int{1, 7, 9, 11, 11, 11, 11, 11, 9, 7, 1}

	for y, w := range want {
		n := 0
		for x := 0; x < 11; x++ {
			if k.contains(x, y) {
				n++
			}
		}
		require.Equalf(t, w, n, "row %d", y)
	}
	require.True(t, k.contains(5, 0))
	require.False(t, k.contains(4, 0))
}

func TestRectKernel(t *testing.T) {
	k := RectKernel(3, 11)
	for y := 0; y < 11; y++ {
		for x := 0; x < 3; x++ {
			require.True(t, k.contains(x, y))
		}
	}
	require.False(t, k.contains(3, 0))
	require.False(t, k.contains(0, 11))
}
