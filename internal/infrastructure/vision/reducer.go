package vision

import (
	"errors"
	"fmt"
)

// Параметры конвейера фиксированы: результат определяется именно этими значениями.
const (
	BorderPadding = 200

	KernelSize     = 11
	RowKernelWidth = 3

	ThinRowKernelHeight = 7
	ThinRowKernelWidth  = 1

	DilationIterations    = 5
	DenubDilateIterations = 2
	DenubOpenIterations   = 4
	RegrowIterations      = 1
	ContractIterations    = 8
	FinalGrowIterations   = 1
)

var (
	// ErrGoCVDisabled возвращается, если сборка без тега gocv
	ErrGoCVDisabled = errors.New("gocv build tag is not enabled")
	// ErrUnknownBackend неизвестное имя реализации
	ErrUnknownBackend = errors.New("unknown reducer backend")
)

// Reducer сводит бинарную маску класса к штриху
type Reducer interface {
	Reduce(m *Mask) (*Mask, error)
}

// NativeReducer реализация конвейера на Go без OpenCV
type NativeReducer struct {
	ellipse *Kernel
	row     *Kernel
	thinRow *Kernel
}

// NewNativeReducer создаёт редуктор с фиксированными структурными элементами
func NewNativeReducer() *NativeReducer {
	return &NativeReducer{
		ellipse: EllipseKernel(KernelSize, KernelSize),
		row:     RectKernel(RowKernelWidth, KernelSize),
		thinRow: RectKernel(ThinRowKernelWidth, ThinRowKernelHeight),
	}
}

// Reduce выполняет конвейер: дилатация, скелет, удаление отростков,
// дорастание и сжатие, повторный скелет, финальное утолщение.
func (r *NativeReducer) Reduce(m *Mask) (*Mask, error) {
	dilated := Dilate(m, r.row, DilationIterations)
	skeleton := Skeletonize(dilated)

	denubbed := Dilate(skeleton, r.ellipse, DenubDilateIterations)
	denubbed = Open(denubbed, r.row, DenubOpenIterations)

	regrown := Dilate(denubbed, r.ellipse, RegrowIterations)
	contracted := Erode(regrown, r.thinRow, ContractIterations)

	skeleton = Skeletonize(contracted)
	return Dilate(skeleton, r.ellipse, FinalGrowIterations), nil
}

// NewReducer выбирает реализацию по имени: native или gocv
func NewReducer(backend string) (Reducer, error) {
	switch backend {
	case "", "native":
		return NewNativeReducer(), nil
	case "gocv":
		r, err := NewGoCVReducer()
		if err != nil {
			return nil, err
		}
		return r, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
