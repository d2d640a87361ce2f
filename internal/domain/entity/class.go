package entity

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// ClassColor цвет, однозначно задающий класс на маске сегментации
type ClassColor struct {
	R, G, B uint8
}

// ClassColorOf возвращает цвет класса пикселя (альфа-канал игнорируется)
func ClassColorOf(c color.Color) ClassColor {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return ClassColor{R: n.R, G: n.G, B: n.B}
}

// RGBA возвращает непрозрачный цвет для отрисовки
func (c ClassColor) RGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Key упаковывает цвет в число для сортировки и множеств
func (c ClassColor) Key() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Hex возвращает цвет в виде #rrggbb
func (c ClassColor) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

func (c ClassColor) String() string {
	return fmt.Sprintf("[%d %d %d]", c.R, c.G, c.B)
}
