package vision

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var errReduce = errors.New("reduce failed")

type failingReducer struct{}

func (failingReducer) Reduce(*Mask) (*Mask, error) {
	return nil, errReduce
}

func TestNewReducer(t *testing.T) {
	r, err := NewReducer("native")
	require.NoError(t, err)
	require.IsType(t, &NativeReducer{}, r)

	r, err = NewReducer("")
	require.NoError(t, err)
	require.NotNil(t, r)

	_, err = NewReducer("cuda")
	require.ErrorIs(t, err, ErrUnknownBackend)
}

func TestNativeReducer_EmptyMask(t *testing.T) {
	out, err := NewNativeReducer().Reduce(NewMask(60, 60))
	require.NoError(t, err)
	require.Zero(t, out.Count())
}
