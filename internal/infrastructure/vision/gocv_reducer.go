//go:build gocv
// +build gocv

package vision

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// GoCVReducer реализация конвейера на OpenCV
type GoCVReducer struct {
	ellipse gocv.Mat
	row     gocv.Mat
	thinRow gocv.Mat
}

// NewGoCVReducer создаёт структурные элементы OpenCV.
// Вызывающий должен освободить их через Close.
func NewGoCVReducer() (*GoCVReducer, error) {
	return &GoCVReducer{
		ellipse: gocv.GetStructuringElement(gocv.MorphEllipse, image.Pt(KernelSize, KernelSize)),
		row:     gocv.GetStructuringElement(gocv.MorphRect, image.Pt(RowKernelWidth, KernelSize)),
		thinRow: gocv.GetStructuringElement(gocv.MorphRect, image.Pt(ThinRowKernelWidth, ThinRowKernelHeight)),
	}, nil
}

// Close освобождает структурные элементы
func (r *GoCVReducer) Close() error {
	r.ellipse.Close()
	r.row.Close()
	r.thinRow.Close()
	return nil
}

// Reduce выполняет тот же конвейер, что и NativeReducer, средствами OpenCV.
// Скелетизация выполняется на Go.
func (r *GoCVReducer) Reduce(m *Mask) (*Mask, error) {
	mat, err := maskToMat(m)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	repeat(gocv.Dilate, &mat, r.row, DilationIterations)

	skeleton, err := r.skeletonize(mat)
	if err != nil {
		return nil, err
	}
	defer skeleton.Close()

	repeat(gocv.Dilate, &skeleton, r.ellipse, DenubDilateIterations)
	// MORPH_OPEN с iterations: сначала все эрозии, затем все дилатации.
	repeat(gocv.Erode, &skeleton, r.row, DenubOpenIterations)
	repeat(gocv.Dilate, &skeleton, r.row, DenubOpenIterations)

	repeat(gocv.Dilate, &skeleton, r.ellipse, RegrowIterations)
	repeat(gocv.Erode, &skeleton, r.thinRow, ContractIterations)

	final, err := r.skeletonize(skeleton)
	if err != nil {
		return nil, err
	}
	defer final.Close()

	repeat(gocv.Dilate, &final, r.ellipse, FinalGrowIterations)

	return matToMask(final)
}

func (r *GoCVReducer) skeletonize(mat gocv.Mat) (gocv.Mat, error) {
	m, err := matToMask(mat)
	if err != nil {
		return gocv.NewMat(), err
	}
	return maskToMat(Skeletonize(m))
}

func repeat(op func(src gocv.Mat, dst *gocv.Mat, kernel gocv.Mat), mat *gocv.Mat, kernel gocv.Mat, iterations int) {
	for i := 0; i < iterations; i++ {
		op(*mat, mat, kernel)
	}
}

// maskToMat копирует маску в одноканальную матрицу
func maskToMat(m *Mask) (gocv.Mat, error) {
	tmp, err := gocv.NewMatFromBytes(m.Height, m.Width, gocv.MatTypeCV8UC1, m.Pix)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("mask to mat: %w", err)
	}
	defer tmp.Close()
	return tmp.Clone(), nil
}

// matToMask копирует одноканальную матрицу в маску
func matToMask(mat gocv.Mat) (*Mask, error) {
	if mat.Type() != gocv.MatTypeCV8UC1 {
		return nil, fmt.Errorf("unexpected mat type %v", mat.Type())
	}
	out := NewMask(mat.Cols(), mat.Rows())
	data := mat.ToBytes()
	if len(data) < len(out.Pix) {
		return nil, fmt.Errorf("mat to mask: got %d bytes, want %d", len(data), len(out.Pix))
	}
	for i, v := range data[:len(out.Pix)] {
		if v != 0 {
			out.Pix[i] = 1
		}
	}
	return out, nil
}
