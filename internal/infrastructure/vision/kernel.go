package vision

import "math"

// span горизонтальный отрезок структурного элемента относительно якоря
type span struct {
	dy     int
	x0, x1 int // включительно
}

// Kernel структурный элемент морфологических операций.
// Якорь находится в центре, как у OpenCV по умолчанию.
type Kernel struct {
	Width  int
	Height int
	spans  []span
}

// RectKernel прямоугольный элемент width×height
func RectKernel(width, height int) *Kernel {
	k := &Kernel{Width: width, Height: height}
	ax, ay := width/2, height/2
	for i := 0; i < height; i++ {
		k.spans = append(k.spans, span{dy: i - ay, x0: -ax, x1: width - 1 - ax})
	}
	return k
}

// EllipseKernel эллиптический элемент, построенный так же, как
// getStructuringElement(MORPH_ELLIPSE) в OpenCV.
func EllipseKernel(width, height int) *Kernel {
	k := &Kernel{Width: width, Height: height}
	r, c := height/2, width/2
	invR2 := 0.0
	if r > 0 {
		invR2 = 1 / float64(r*r)
	}
	for i := 0; i < height; i++ {
		dy := i - r
		if dy < -r || dy > r {
			continue
		}
		dx := int(math.RoundToEven(float64(c) * math.Sqrt(float64(r*r-dy*dy)*invR2)))
		j1 := max(c-dx, 0)
		j2 := min(c+dx+1, width)
		if j1 >= j2 {
			continue
		}
		k.spans = append(k.spans, span{dy: dy, x0: j1 - c, x1: j2 - 1 - c})
	}
	return k
}
