package vision

// Skeletonize утончает маску до линий толщиной в один пиксель (Zhang–Suen).
// Пиксели за границей холста считаются фоном.
func Skeletonize(src *Mask) *Mask {
	out := src.Clone()
	w, h := out.Width, out.Height

	active := make([]int, 0, len(out.Pix)/4)
	for i, p := range out.Pix {
		if p != 0 {
			active = append(active, i)
		}
	}

	get := func(x, y int) int {
		if x < 0 || y < 0 || x >= w || y >= h {
			return 0
		}
		return int(out.Pix[y*w+x])
	}

	var removable []int
	for {
		changed := false
		for step := 0; step < 2; step++ {
			removable = removable[:0]
			for _, i := range active {
				if out.Pix[i] == 0 {
					continue
				}
				x, y := i%w, i/w

				// Соседи по часовой стрелке, начиная с севера.
				p2, p3 := get(x, y-1), get(x+1, y-1)
				p4, p5 := get(x+1, y), get(x+1, y+1)
				p6, p7 := get(x, y+1), get(x-1, y+1)
				p8, p9 := get(x-1, y), get(x-1, y-1)

				b := p2 + p3 + p4 + p5 + p6 + p7 + p8 + p9
				if b < 2 || b > 6 {
					continue
				}

				ring := [9]int{p2, p3, p4, p5, p6, p7, p8, p9, p2}
				a := 0
				for j := 0; j < 8; j++ {
					if ring[j] == 0 && ring[j+1] == 1 {
						a++
					}
				}
				if a != 1 {
					continue
				}

				if step == 0 {
					if p2*p4*p6 != 0 || p4*p6*p8 != 0 {
						continue
					}
				} else {
					if p2*p4*p8 != 0 || p2*p6*p8 != 0 {
						continue
					}
				}
				removable = append(removable, i)
			}

			for _, i := range removable {
				out.Pix[i] = 0
			}
			if len(removable) > 0 {
				changed = true
			}
		}
		if !changed {
			break
		}

		kept := active[:0]
		for _, i := range active {
			if out.Pix[i] != 0 {
				kept = append(kept, i)
			}
		}
		active = kept
	}
	return out
}
