package medfilt

import (
	"fmt"
	"sort"
)

// Package medfilt implements 1-D sliding median filters over signals and
// spectrogram axes. Boundaries use edge-value replication (clamp), never
// wrap-around, so no spurious periodicity is introduced.

// Filter1D applies a sliding median of odd length to src and returns a new
// slice. The window is kept as a sorted buffer that is updated incrementally
// with a binary-search insert/remove per step.
func Filter1D(src []float64, length int) ([]float64, error) {
	if err := validateLength(length); err != nil {
		return nil, err
	}

	n := len(src)
	if n == 0 {
		return nil, fmt.Errorf("cannot median-filter an empty slice")
	}

	dst := make([]float64, n)
	if length == 1 {
		copy(dst, src)
		return dst, nil
	}

	half := length / 2
	clamp := func(i int) int {
		if i < 0 {
			return 0
		}
		if i >= n {
			return n - 1
		}
		return i
	}

	// Sorted window over clamped indices -half..half
	window := make([]float64, length)
	for j := 0; j < length; j++ {
		window[j] = src[clamp(j-half)]
	}
	sort.Float64s(window)

	dst[0] = window[half]
	for i := 1; i < n; i++ {
		remove(window, src[clamp(i-1-half)])
		insert(window, src[clamp(i+half)])
		dst[i] = window[half]
	}

	return dst, nil
}

// FilterRows applies the median filter along each row (the inner axis) of a
// time x frequency matrix: for a spectrogram this smooths across frequency
// within each frame. The input is never mutated.
func FilterRows(matrix [][]float64, length int) ([][]float64, error) {
	if err := validateLength(length); err != nil {
		return nil, err
	}

	out := make([][]float64, len(matrix))
	for t, row := range matrix {
		filtered, err := Filter1D(row, length)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", t, err)
		}
		out[t] = filtered
	}

	return out, nil
}

// FilterColumns applies the median filter along each column (the outer axis)
// of a time x frequency matrix: for a spectrogram this smooths each
// frequency bin across time. The input is never mutated.
func FilterColumns(matrix [][]float64, length int) ([][]float64, error) {
	if err := validateLength(length); err != nil {
		return nil, err
	}

	rows := len(matrix)
	if rows == 0 {
		return [][]float64{}, nil
	}
	cols := len(matrix[0])

	out := make([][]float64, rows)
	for t := 0; t < rows; t++ {
		if len(matrix[t]) != cols {
			return nil, fmt.Errorf("ragged matrix: row %d has %d columns, expected %d", t, len(matrix[t]), cols)
		}
		out[t] = make([]float64, cols)
	}

	column := make([]float64, rows)
	for f := 0; f < cols; f++ {
		for t := 0; t < rows; t++ {
			column[t] = matrix[t][f]
		}

		filtered, err := Filter1D(column, length)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", f, err)
		}

		for t := 0; t < rows; t++ {
			out[t][f] = filtered[t]
		}
	}

	return out, nil
}

func validateLength(length int) error {
	if length <= 0 {
		return fmt.Errorf("filter length must be positive, got %d", length)
	}
	if length%2 == 0 {
		return fmt.Errorf("filter length must be odd, got %d", length)
	}
	return nil
}

// remove deletes one occurrence of v from a sorted window, shifting left
func remove(window []float64, v float64) {
	i := sort.SearchFloat64s(window, v)
	copy(window[i:], window[i+1:])
	window[len(window)-1] = 0
}

// insert places v into its sorted position, shifting right
func insert(window []float64, v float64) {
	i := sort.SearchFloat64s(window[:len(window)-1], v)
	copy(window[i+1:], window[i:len(window)-1])
	window[i] = v
}
