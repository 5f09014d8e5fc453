package perceptron

import "github.com/neurlang/perceptron/vector"

// Score returns the raw weighted sum of input, without applying any threshold
func (p Perceptron) Score(input []float64) (float64, error) {
	if err := vector.Check(p.label, len(p.weights), input); err != nil {
		return 0, err
	}
	return vector.Dot(input, p.weights)
}

// Fire reports whether the weighted sum of input exceeds threshold
func (p Perceptron) Fire(input []float64, threshold float64) (bool, error) {
	sum, err := p.Score(input)
	if err != nil {
		return false, err
	}
	return sum > threshold, nil
}
