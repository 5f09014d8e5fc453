// Package registry implements the immutable set of trained perceptrons, one per class label
package registry

import "sort"

import "github.com/pkg/errors"

import "github.com/neurlang/perceptron/perceptron"
import "github.com/neurlang/perceptron/vector"

// Registry maps class labels to their trained perceptrons. It is built once and
// never mutated, so any number of goroutines may read it without locking.
type Registry struct {
	labels      []string
	perceptrons []*perceptron.Perceptron
	index       map[string]int
	dimension   int
}

// New builds a registry from trained perceptrons. Labels must be unique and all
// perceptrons must have the same number of weights.
func New(ps ...*perceptron.Perceptron) (*Registry, error) {
	var r = &Registry{index: make(map[string]int, len(ps))}
	var sorted = make([]*perceptron.Perceptron, 0, len(ps))
	for _, p := range ps {
		if p == nil {
			return nil, errors.New("nil perceptron")
		}
		sorted = append(sorted, p)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Label() < sorted[j].Label()
	})
	for i, p := range sorted {
		if i == 0 {
			r.dimension = p.Len()
		}
		if _, dup := r.index[p.Label()]; dup {
			return nil, errors.Errorf("duplicate perceptron for label %q", p.Label())
		}
		if p.Len() != r.dimension {
			return nil, &vector.DimensionMismatchError{Label: p.Label(), Expected: r.dimension, Got: p.Len()}
		}
		r.index[p.Label()] = i
		r.labels = append(r.labels, p.Label())
		r.perceptrons = append(r.perceptrons, p)
	}
	return r, nil
}

// Len gets the number of trained perceptrons
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.perceptrons)
}

// Dimension gets the input length every perceptron expects, zero when empty
func (r *Registry) Dimension() int {
	if r == nil {
		return 0
	}
	return r.dimension
}

// Labels returns the labels in lexicographic order
func (r *Registry) Labels() []string {
	if r == nil {
		return nil
	}
	return append([]string(nil), r.labels...)
}

// Label gets the label at position n
func (r *Registry) Label(n int) string {
	return r.labels[n]
}

// At gets the perceptron at position n, positions follow Labels
func (r *Registry) At(n int) *perceptron.Perceptron {
	return r.perceptrons[n]
}

// Get looks up the perceptron for label
func (r *Registry) Get(label string) (*perceptron.Perceptron, bool) {
	if r == nil {
		return nil, false
	}
	n, ok := r.index[label]
	if !ok {
		return nil, false
	}
	return r.perceptrons[n], true
}

// Score scores input with the perceptron at position n
func (r *Registry) Score(n int, input []float64) (float64, error) {
	return r.perceptrons[n].Score(input)
}
