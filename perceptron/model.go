// Package perceptron implements a trained single-layer perceptron (linear binary classifier)
package perceptron

import "github.com/neurlang/perceptron/vector"

// Perceptron holds the weight vector trained for one class label. It is immutable:
// the weights are copied in at construction and only read afterwards.
type Perceptron struct {
	label   string
	weights []float64
	passes  int
}

// New creates a perceptron for label from a copy of weights. Passes records how
// many training passes it took to converge, zero when unknown.
func New(label string, weights []float64, passes int) *Perceptron {
	return &Perceptron{
		label:   label,
		weights: vector.Clone(weights),
		passes:  passes,
	}
}

// Label gets the class label this perceptron recognizes
func (p Perceptron) Label() string {
	return p.label
}

// Len gets the number of weights
func (p Perceptron) Len() int {
	return len(p.weights)
}

// Get gets the weight at position n
func (p Perceptron) Get(n int) float64 {
	return p.weights[n]
}

// Weights returns a copy of the weight vector
func (p Perceptron) Weights() []float64 {
	return vector.Clone(p.weights)
}

// Passes gets the number of training passes until convergence
func (p Perceptron) Passes() int {
	return p.passes
}
