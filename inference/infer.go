// Package inference implements the classification stage: it scores an input against
// every trained perceptron and picks the best matching label
package inference

import "github.com/pkg/errors"

// ErrNoClassifiersTrained is returned when classifying against an empty model
var ErrNoClassifiersTrained = errors.New("no classifiers trained")

// Model is a set of scored labels, such as a registry of trained perceptrons
type Model interface {
	Len() int
	Label(n int) string
	Score(n int, input []float64) (float64, error)
}

// Rating is the raw score one label achieved on an input
type Rating struct {
	Label string
	Score float64
}

// Scores rates input with every label of m, in the model's order
func Scores(input []float64, m Model) ([]Rating, error) {
	if m == nil || m.Len() == 0 {
		return nil, ErrNoClassifiersTrained
	}
	var ratings = make([]Rating, 0, m.Len())
	for i := 0; i < m.Len(); i++ {
		score, err := m.Score(i, input)
		if err != nil {
			return nil, err
		}
		ratings = append(ratings, Rating{Label: m.Label(i), Score: score})
	}
	return ratings, nil
}

// Best picks the rating with the highest score. Equal scores resolve to the
// lexicographically smallest label.
func Best(ratings []Rating) (Rating, error) {
	if len(ratings) == 0 {
		return Rating{}, ErrNoClassifiersTrained
	}
	var best = ratings[0]
	for _, r := range ratings[1:] {
		if r.Score > best.Score || (r.Score == best.Score && r.Label < best.Label) {
			best = r
		}
	}
	return best, nil
}

// Classify returns the label whose perceptron gives input the highest raw score.
// No threshold is applied at this stage.
func Classify(input []float64, m Model) (string, error) {
	ratings, err := Scores(input, m)
	if err != nil {
		return "", err
	}
	best, err := Best(ratings)
	if err != nil {
		return "", err
	}
	return best.Label, nil
}
