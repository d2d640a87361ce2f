package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScribbleResult_Foreground(t *testing.T) {
	r := &ScribbleResult{Classes: []ClassStat{
		{Color: ClassColor{}, Background: true},
		{Color: ClassColor{R: 255}},
	}}

	fg := r.Foreground()
	require.Len(t, fg, 1)
	require.Equal(t, ClassColor{R: 255}, fg[0].Color)
}
