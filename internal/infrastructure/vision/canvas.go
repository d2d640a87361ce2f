package vision

import (
	"image"
	"sort"

	"scribble-bot/internal/domain/entity"
)

// BackgroundFraction доля холста, при превышении которой класс считается фоном
const BackgroundFraction = 0.5

// ToRGB приводит изображение к непрозрачному RGBA с началом координат в (0,0).
// Альфа-канал отбрасывается.
func ToRGB(img image.Image) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := entity.ClassColorOf(img.At(b.Min.X+x, b.Min.Y+y))
			i := out.PixOffset(x, y)
			out.Pix[i+0] = c.R
			out.Pix[i+1] = c.G
			out.Pix[i+2] = c.B
			out.Pix[i+3] = 255
		}
	}
	return out
}

// DiscoverClasses возвращает множество различных цветов маски,
// упорядоченное по упакованному значению RGB.
func DiscoverClasses(img *image.RGBA) []entity.ClassColor {
	seen := make(map[uint32]entity.ClassColor)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := img.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			c := entity.ClassColor{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2]}
			seen[c.Key()] = c
			i += 4
		}
	}

	classes := make([]entity.ClassColor, 0, len(seen))
	for _, c := range seen {
		classes = append(classes, c)
	}
	sort.Slice(classes, func(i, j int) bool {
		return classes[i].Key() < classes[j].Key()
	})
	return classes
}

// PadEdge добавляет отступ margin со всех сторон, повторяя крайние пиксели
func PadEdge(img *image.RGBA, margin int) *image.RGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewRGBA(image.Rect(0, 0, w+2*margin, h+2*margin))
	for y := 0; y < h+2*margin; y++ {
		sy := b.Min.Y + clamp(y-margin, 0, h-1)
		dst := out.PixOffset(0, y)
		for x := 0; x < w+2*margin; x++ {
			sx := b.Min.X + clamp(x-margin, 0, w-1)
			src := img.PixOffset(sx, sy)
			copy(out.Pix[dst:dst+4], img.Pix[src:src+4])
			dst += 4
		}
	}
	return out
}

// ClassMask строит бинарную маску пикселей заданного цвета
func ClassMask(canvas *image.RGBA, c entity.ClassColor) *Mask {
	b := canvas.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < m.Height; y++ {
		i := canvas.PixOffset(b.Min.X, b.Min.Y+y)
		for x := 0; x < m.Width; x++ {
			if canvas.Pix[i] == c.R && canvas.Pix[i+1] == c.G && canvas.Pix[i+2] == c.B {
				m.Pix[y*m.Width+x] = 1
			}
			i += 4
		}
	}
	return m
}

// IsBackground сообщает, занимает ли класс больше половины холста.
// Доля считается по холсту с отступами.
func IsBackground(m *Mask) bool {
	return m.Fraction() > BackgroundFraction
}

// NewCanvas создаёт чёрный непрозрачный холст
func NewCanvas(width, height int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 255
	}
	return out
}

// Composite закрашивает цветом класса установленные пиксели маски
func Composite(canvas *image.RGBA, m *Mask, c entity.ClassColor) {
	rgba := c.RGBA()
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Pix[y*m.Width+x] != 0 {
				canvas.SetRGBA(x, y, rgba)
			}
		}
	}
}

// Crop убирает отступ margin со всех сторон
func Crop(canvas *image.RGBA, margin int) *image.RGBA {
	b := canvas.Bounds()
	w, h := b.Dx()-2*margin, b.Dy()-2*margin
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		src := canvas.PixOffset(b.Min.X+margin, b.Min.Y+margin+y)
		dst := out.PixOffset(0, y)
		copy(out.Pix[dst:dst+4*w], canvas.Pix[src:src+4*w])
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
