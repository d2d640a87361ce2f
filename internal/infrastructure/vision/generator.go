package vision

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"sync"

	"scribble-bot/internal/domain/entity"
	"scribble-bot/internal/domain/port"
)

// ErrEmptyImage маска без пикселей
var ErrEmptyImage = errors.New("empty image")

// Generator строит штриховую разметку по маске сегментации
type Generator struct {
	reducer Reducer
	workers int
}

// NewGenerator создаёт генератор; workers ограничивает число классов,
// обрабатываемых параллельно.
func NewGenerator(reducer Reducer, workers int) *Generator {
	if reducer == nil {
		reducer = NewNativeReducer()
	}
	if workers < 1 {
		workers = 1
	}
	return &Generator{reducer: reducer, workers: workers}
}

// Generate находит классы, строит штрихи для всех классов, кроме фоновых,
// и возвращает холст исходного размера.
func (g *Generator) Generate(ctx context.Context, img image.Image) (*entity.ScribbleResult, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}

	src := ToRGB(img)
	classes := DiscoverClasses(src)
	canvas := PadEdge(src, BorderPadding)

	stats := make([]entity.ClassStat, len(classes))
	scribbles := make([]*Mask, len(classes))
	errs := make([]error, len(classes))

	sem := make(chan struct{}, g.workers)
	var wg sync.WaitGroup
	for i, class := range classes {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			return nil, err
		}

		sem <- struct{}{}
		wg.Add(1)
		go func(i int, class entity.ClassColor) {
			defer wg.Done()
			defer func() { <-sem }()
			stats[i], scribbles[i], errs[i] = g.reduceClass(canvas, class)
		}(i, class)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	// Композиция последовательно в порядке классов: при пересечении
	// штрихов побеждает последний, результат детерминирован.
	b := canvas.Bounds()
	out := NewCanvas(b.Dx(), b.Dy())
	for i, m := range scribbles {
		if m == nil {
			continue
		}
		Composite(out, m, classes[i])
	}
	cropped := Crop(out, BorderPadding)

	for i, m := range scribbles {
		if m != nil {
			stats[i].Painted = countInner(m, BorderPadding)
		}
	}

	return &entity.ScribbleResult{Image: cropped, Classes: stats}, nil
}

func (g *Generator) reduceClass(canvas *image.RGBA, class entity.ClassColor) (entity.ClassStat, *Mask, error) {
	mask := ClassMask(canvas, class)
	stat := entity.ClassStat{
		Color:    class,
		Pixels:   mask.Count(),
		Fraction: mask.Fraction(),
	}

	if IsBackground(mask) {
		stat.Background = true
		log.Printf("INFO: Class %s (%s) detected as background class. Skipping.", class, class.Hex())
		return stat, nil, nil
	}

	scribble, err := g.reducer.Reduce(mask)
	if err != nil {
		return stat, nil, fmt.Errorf("reduce class %s: %w", class.Hex(), err)
	}
	return stat, scribble, nil
}

// Проверка реализации интерфейса
var _ port.ScribbleGenerator = (*Generator)(nil)

// countInner считает пиксели маски внутри области без отступов
func countInner(m *Mask, margin int) int {
	n := 0
	for y := margin; y < m.Height-margin; y++ {
		for x := margin; x < m.Width-margin; x++ {
			n += int(m.Pix[y*m.Width+x])
		}
	}
	return n
}
