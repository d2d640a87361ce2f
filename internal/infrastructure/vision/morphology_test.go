package vision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func squareMask(w, h, x0, y0, size int) *Mask {
	m := NewMask(w, h)
	for y := y0; y < y0+size; y++ {
		for x := x0; x < x0+size; x++ {
			m.set(x, y)
		}
	}
	return m
}

func TestDilate_TallKernel(t *testing.T) {
	m := NewMask(21, 21)
	m.set(10, 10)

	out := Dilate(m, RectKernel(3, 11), 1)
	require.Equal(t, 33, out.Count())
	require.True(t, out.at(9, 5))
	require.True(t, out.at(11, 15))
	require.False(t, out.at(12, 10))
	require.False(t, out.at(10, 16))
	require.Equal(t, 1, m.Count(), "source must not change")
}

func TestDilate_ClipsAtBorder(t *testing.T) {
	m := NewMask(10, 10)
	m.set(0, 0)

	out := Dilate(m, RectKernel(3, 3), 1)
	require.Equal(t, 4, out.Count())
}

func TestDilate_Iterations(t *testing.T) {
	m := NewMask(41, 41)
	m.set(20, 20)

	out := Dilate(m, RectKernel(3, 11), 5)
	// 5 проходов: ±5 по горизонтали, ±25 обрезается высотой 41.
	require.True(t, out.at(15, 0))
	require.True(t, out.at(25, 40))
	require.False(t, out.at(14, 20))

	same := Dilate(m, RectKernel(3, 3), 0)
	require.NotSame(t, m, same)
	require.Equal(t, m.Pix, same.Pix)
}

func TestErode_BorderCountsAsSet(t *testing.T) {
	full := squareMask(10, 10, 0, 0, 10)
	require.Equal(t, 100, Erode(full, RectKernel(3, 3), 3).Count())

	sq := squareMask(15, 15, 5, 5, 5)
	require.Equal(t, 9, Erode(sq, RectKernel(3, 3), 1).Count())
	require.Equal(t, 0, Erode(sq, RectKernel(1, 7), 1).Count())
}

func TestOpen_RemovesSpecks(t *testing.T) {
	m := squareMask(21, 21, 2, 2, 7)
	m.set(15, 15)

	out := Open(m, RectKernel(3, 3), 1)
	require.False(t, out.at(15, 15))
	require.Equal(t, 49, out.Count())
}
