package telegram

import (
	"testing"

	"github.com/stretchr/testify/require"

	"scribble-bot/internal/domain/entity"
)

func TestFormatSummary(t *testing.T) {
	result := &entity.ScribbleResult{Classes: []entity.ClassStat{
		{Color: entity.ClassColor{}, Background: true, Fraction: 0.9},
		{Color: entity.ClassColor{R: 255}, Painted: 42},
	}}

	require.Equal(t, "✅ Классов: 2, со штрихами: 1\n• #000000 — фон (90%)\n• #ff0000 — 42 px", formatSummary(result))
}
