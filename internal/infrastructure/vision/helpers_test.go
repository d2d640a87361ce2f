package vision

import (
	"image"
	"image/color"
)

func (m *Mask) at(x, y int) bool {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return false
	}
	return m.Pix[y*m.Width+x] != 0
}

func (m *Mask) set(x, y int) {
	m.Pix[y*m.Width+x] = 1
}

// contains сообщает, входит ли ячейка (x, y) в элемент (0,0 — левый верхний угол)
func (k *Kernel) contains(x, y int) bool {
	ax, ay := k.Width/2, k.Height/2
	for _, s := range k.spans {
		if s.dy == y-ay && x-ax >= s.x0 && x-ax <= s.x1 {
			return true
		}
	}
	return false
}

func countColor(img *image.RGBA, c color.RGBA) int {
	n := 0
	for i := 0; i+3 < len(img.Pix); i += 4 {
		if img.Pix[i] == c.R && img.Pix[i+1] == c.G && img.Pix[i+2] == c.B {
			n++
		}
	}
	return n
}
