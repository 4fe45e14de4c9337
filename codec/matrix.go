package codec

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/cpp-codemonkey/Cereal-stuff/archive"
)

// MatrixCodec transports a 4x4 dense matrix cell by cell, row-major,
// under the names m00..m33.
type MatrixCodec struct{}

func (MatrixCodec) Encode(w archive.Writer, v *mat.Dense) error {
	if r, c := v.Dims(); r != 4 || c != 4 {
		return fmt.Errorf("%w: want 4x4 matrix, have %dx%d", ErrBadShape, r, c)
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if err := w.WriteFloat64(cellName(i, j), v.At(i, j)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (MatrixCodec) Decode(r archive.Reader) (*mat.Dense, error) {
	cells := make([]float64, 0, 16)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			f, err := r.ReadFloat64(cellName(i, j))
			if err != nil {
				return nil, err
			}
			cells = append(cells, f)
		}
	}
	return mat.NewDense(4, 4, cells), nil
}

// Matrix2Codec is the 2x2 form. It decodes into temporaries and builds
// the matrix in one go, matching how the host type is constructed.
type Matrix2Codec struct{}

func (Matrix2Codec) Encode(w archive.Writer, v *mat.Dense) error {
	if r, c := v.Dims(); r != 2 || c != 2 {
		return fmt.Errorf("%w: want 2x2 matrix, have %dx%d", ErrBadShape, r, c)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if err := w.WriteFloat64(cellName(i, j), v.At(i, j)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (Matrix2Codec) Decode(r archive.Reader) (*mat.Dense, error) {
	var m00, m01, m10, m11 float64
	cells := []struct {
		name string
		dst  *float64
	}{
		{"m00", &m00}, {"m01", &m01}, {"m10", &m10}, {"m11", &m11},
	}
	for _, c := range cells {
		f, err := r.ReadFloat64(c.name)
		if err != nil {
			return nil, err
		}
		*c.dst = f
	}
	return mat.NewDense(2, 2, []float64{m00, m01, m10, m11}), nil
}

func cellName(i, j int) string {
	return fmt.Sprintf("m%d%d", i, j)
}
