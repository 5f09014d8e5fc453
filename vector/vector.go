// Package vector implements the dense feature and weight vectors scored by the perceptrons
package vector

import "fmt"

import "gonum.org/v1/gonum/floats"

// DimensionMismatchError reports a vector whose length disagrees with the length
// expected by a training set, a weight vector or an inference request
type DimensionMismatchError struct {
	// Label names the vector owner, empty for anonymous inputs
	Label    string
	Expected int
	Got      int
}

func (e *DimensionMismatchError) Error() string {
	if e.Label == "" {
		return fmt.Sprintf("dimension mismatch: expected %d values, got %d", e.Expected, e.Got)
	}
	return fmt.Sprintf("dimension mismatch for %q: expected %d values, got %d", e.Label, e.Expected, e.Got)
}

// Check reports whether v has exactly expected values
func Check(label string, expected int, v []float64) error {
	if len(v) != expected {
		return &DimensionMismatchError{Label: label, Expected: expected, Got: len(v)}
	}
	return nil
}

// Dot returns the sum of a[i]*b[i]. Both vectors must have the same length.
func Dot(a, b []float64) (float64, error) {
	if err := Check("", len(a), b); err != nil {
		return 0, err
	}
	return floats.Dot(a, b), nil
}

// Zero allocates a zero vector of n values
func Zero(n int) []float64 {
	return make([]float64, n)
}

// Clone copies v so the caller can not alias the original storage
func Clone(v []float64) []float64 {
	if v == nil {
		return nil
	}
	o := make([]float64, len(v))
	copy(o, v)
	return o
}
