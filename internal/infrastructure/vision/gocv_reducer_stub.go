//go:build !gocv
// +build !gocv

package vision

// GoCVReducer заглушка (сборка без OpenCV)
type GoCVReducer struct{}

// NewGoCVReducer возвращает ошибку, если сборка без тега gocv.
func NewGoCVReducer() (*GoCVReducer, error) {
	return nil, ErrGoCVDisabled
}

// Close ничего не делает в сборке без OpenCV
func (r *GoCVReducer) Close() error {
	return nil
}

// Reduce возвращает ошибку, если сборка без тега gocv.
func (r *GoCVReducer) Reduce(m *Mask) (*Mask, error) {
	_ = m
	return nil, ErrGoCVDisabled
}
