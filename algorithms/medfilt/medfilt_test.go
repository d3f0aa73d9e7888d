package medfilt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter1DValidation(t *testing.T) {
	_, err := Filter1D([]float64{1, 2, 3}, 4)
	assert.Error(t, err, "even length must be rejected")

	_, err = Filter1D([]float64{1, 2, 3}, 0)
	assert.Error(t, err)

	_, err = Filter1D([]float64{1, 2, 3}, -3)
	assert.Error(t, err)

	_, err = Filter1D(nil, 3)
	assert.Error(t, err)
}

func TestFilter1DLengthOne(t *testing.T) {
	src := []float64{3, 1, 4, 1, 5}
	dst, err := Filter1D(src, 1)
	require.NoError(t, err)
	assert.Equal(t, src, dst)
}

func TestFilter1DConstant(t *testing.T) {
	src := []float64{2, 2, 2, 2, 2, 2}
	dst, err := Filter1D(src, 3)
	require.NoError(t, err)
	assert.Equal(t, src, dst)
}

func TestFilter1DRemovesImpulse(t *testing.T) {
	src := []float64{0, 0, 0, 10, 0, 0, 0}
	dst, err := Filter1D(src, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0, 0, 0, 0}, dst)
}

func TestFilter1DPreservesStep(t *testing.T) {
	// A median filter keeps edges sharp where a mean filter would smear them
	src := []float64{0, 0, 0, 0, 1, 1, 1, 1}
	dst, err := Filter1D(src, 3)
	require.NoError(t, err)
	assert.Equal(t, src, dst)
}

func TestFilter1DEdgeReplication(t *testing.T) {
	// Clamped boundary: the first window sees {5, 5, 1}, median 5, not a
	// wrapped-around value from the far end
	src := []float64{5, 1, 2, 3, 9}
	dst, err := Filter1D(src, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 2, 2, 3, 9}, dst)
}

func TestFilter1DKnownMedians(t *testing.T) {
	src := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	dst, err := Filter1D(src, 3)
	require.NoError(t, err)
	// windows: {3,3,1} {3,1,4} {1,4,1} {4,1,5} {1,5,9} {5,9,2} {9,2,6} {2,6,6}
	assert.Equal(t, []float64{3, 3, 1, 4, 5, 5, 6, 6}, dst)
}

func TestFilter1DInputUntouched(t *testing.T) {
	src := []float64{9, 1, 8, 2, 7}
	orig := append([]float64(nil), src...)

	_, err := Filter1D(src, 5)
	require.NoError(t, err)
	assert.Equal(t, orig, src)
}

func TestFilterRows(t *testing.T) {
	matrix := [][]float64{
		{0, 0, 10, 0, 0},
		{1, 1, 1, 1, 1},
	}

	out, err := FilterRows(matrix, 3)
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 0, 0, 0, 0}, out[0])
	assert.Equal(t, []float64{1, 1, 1, 1, 1}, out[1])

	// Input not mutated
	assert.Equal(t, 10.0, matrix[0][2])
}

func TestFilterColumns(t *testing.T) {
	// Column 1 carries an impulse across time; a time-axis median kills it
	matrix := [][]float64{
		{1, 0, 2},
		{1, 9, 2},
		{1, 0, 2},
	}

	out, err := FilterColumns(matrix, 3)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 0, 2}, out[0])
	assert.Equal(t, []float64{1, 0, 2}, out[1])
	assert.Equal(t, []float64{1, 0, 2}, out[2])

	// Input not mutated
	assert.Equal(t, 9.0, matrix[1][1])
}

func TestFilterColumnsRaggedMatrix(t *testing.T) {
	matrix := [][]float64{
		{1, 2, 3},
		{1, 2},
	}

	_, err := FilterColumns(matrix, 3)
	assert.Error(t, err)
}

func TestFilterEmptyMatrix(t *testing.T) {
	out, err := FilterColumns([][]float64{}, 3)
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = FilterRows([][]float64{}, 3)
	require.NoError(t, err)
	assert.Empty(t, out)
}
