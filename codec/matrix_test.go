package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/cpp-codemonkey/Cereal-stuff/archive"
)

func TestMatrixRoundTrip(t *testing.T) {
	cells := make([]float64, 16)
	for i := range cells {
		cells[i] = float64(i) * 0.5
	}
	roundTrip[*mat.Dense](t, MatrixCodec{}, mat.NewDense(4, 4, cells))
}

func TestMatrix2RoundTrip(t *testing.T) {
	roundTrip[*mat.Dense](t, Matrix2Codec{}, mat.NewDense(2, 2, []float64{1, -2, 3.5, -4.5}))
}

func TestMatrixRejectsWrongDims(t *testing.T) {
	w := archive.NewBinaryWriter()
	err := MatrixCodec{}.Encode(w, mat.NewDense(2, 2, []float64{1, 2, 3, 4}))
	require.ErrorIs(t, err, ErrBadShape)

	err = Matrix2Codec{}.Encode(w, mat.NewDense(3, 3, make([]float64, 9)))
	require.ErrorIs(t, err, ErrBadShape)
}
