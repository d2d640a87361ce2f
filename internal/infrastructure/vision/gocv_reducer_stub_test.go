//go:build !gocv
// +build !gocv

package vision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewReducer_GoCVDisabled(t *testing.T) {
	_, err := NewReducer("gocv")
	require.ErrorIs(t, err, ErrGoCVDisabled)

	_, err = (&GoCVReducer{}).Reduce(NewMask(1, 1))
	require.ErrorIs(t, err, ErrGoCVDisabled)
}
