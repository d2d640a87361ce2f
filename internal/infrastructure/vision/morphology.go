package vision

// Dilate расширяет маску элементом k заданное число раз.
// Пиксели за границей холста не учитываются.
func Dilate(src *Mask, k *Kernel, iterations int) *Mask {
	out := src
	for i := 0; i < iterations; i++ {
		out = morph(out, k, false)
	}
	if out == src {
		out = src.Clone()
	}
	return out
}

// Erode сужает маску элементом k заданное число раз.
// Пиксели за границей холста считаются установленными.
func Erode(src *Mask, k *Kernel, iterations int) *Mask {
	out := src
	for i := 0; i < iterations; i++ {
		out = morph(out, k, true)
	}
	if out == src {
		out = src.Clone()
	}
	return out
}

// Open выполняет размыкание: iterations эрозий, затем iterations дилатаций
// (семантика morphologyEx(MORPH_OPEN, iterations)).
func Open(src *Mask, k *Kernel, iterations int) *Mask {
	return Dilate(Erode(src, k, iterations), k, iterations)
}

func morph(src *Mask, k *Kernel, erode bool) *Mask {
	w, h := src.Width, src.Height
	stride := w + 1

	// Префиксные суммы по строкам: число единиц в отрезке за O(1).
	prefix := make([]int32, stride*h)
	for y := 0; y < h; y++ {
		row := src.Pix[y*w : (y+1)*w]
		base := y * stride
		for x, p := range row {
			prefix[base+x+1] = prefix[base+x] + int32(p)
		}
	}

	dst := NewMask(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			hit := erode
			for _, s := range k.spans {
				sy := y + s.dy
				if sy < 0 || sy >= h {
					continue
				}
				x0, x1 := max(x+s.x0, 0), min(x+s.x1, w-1)
				if x0 > x1 {
					continue
				}
				n := prefix[sy*stride+x1+1] - prefix[sy*stride+x0]
				if erode {
					if int(n) != x1-x0+1 {
						hit = false
						break
					}
				} else if n > 0 {
					hit = true
					break
				}
			}
			if hit {
				dst.Pix[y*w+x] = 1
			}
		}
	}
	return dst
}
