//go:build gocv
// +build gocv

package vision

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

func verticalStripeMask(w, h, x0 int) *Mask {
	m := NewMask(w, h)
	for y := 0; y < h; y++ {
		for x := x0; x < x0+10; x++ {
			m.set(x, y)
		}
	}
	return m
}

func TestGoCVReducer_MatchesNative(t *testing.T) {
	r, err := NewGoCVReducer()
	require.NoError(t, err)
	defer r.Close()

	m := verticalStripeMask(120, 160, 55)

	want, err := NewNativeReducer().Reduce(m)
	require.NoError(t, err)
	got, err := r.Reduce(m)
	require.NoError(t, err)

	require.Positive(t, want.Count())
	require.Equal(t, want.Pix, got.Pix)
}

func TestGoCVReducer_RepeatInPlace(t *testing.T) {
	r, err := NewGoCVReducer()
	require.NoError(t, err)
	defer r.Close()

	m := verticalStripeMask(60, 80, 20)
	m.set(5, 5)

	mat, err := maskToMat(m)
	require.NoError(t, err)
	defer mat.Close()

	repeat(gocv.Dilate, &mat, r.row, DilationIterations)
	dilated, err := matToMask(mat)
	require.NoError(t, err)
	require.Equal(t, Dilate(m, RectKernel(RowKernelWidth, KernelSize), DilationIterations).Pix, dilated.Pix)
}

func TestGoCVReducer_OpenErodesThenDilates(t *testing.T) {
	r, err := NewGoCVReducer()
	require.NoError(t, err)
	defer r.Close()

	m := verticalStripeMask(60, 80, 20)
	m.set(5, 40)

	mat, err := maskToMat(m)
	require.NoError(t, err)
	defer mat.Close()

	repeat(gocv.Erode, &mat, r.row, DenubOpenIterations)
	repeat(gocv.Dilate, &mat, r.row, DenubOpenIterations)
	opened, err := matToMask(mat)
	require.NoError(t, err)

	require.Equal(t, Open(m, RectKernel(RowKernelWidth, KernelSize), DenubOpenIterations).Pix, opened.Pix)
	require.False(t, opened.at(5, 40))
}
