package port

import (
	"context"
	"image"

	"scribble-bot/internal/domain/entity"
)

// ScribbleGenerator интерфейс генератора штрихов
type ScribbleGenerator interface {
	// Generate строит штриховую разметку по маске сегментации
	Generate(ctx context.Context, mask image.Image) (*entity.ScribbleResult, error)
}
