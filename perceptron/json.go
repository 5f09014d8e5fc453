package perceptron

import "encoding/json"
import "io"

import "github.com/pkg/errors"

type jsonPerceptron struct {
	Label   string    `json:"label"`
	Passes  int       `json:"passes,omitempty"`
	Weights []float64 `json:"weights"`
}

// MarshalJSON encodes the label, pass count and weights
func (p Perceptron) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonPerceptron{Label: p.label, Passes: p.passes, Weights: p.weights})
}

// UnmarshalJSON decodes a perceptron written by MarshalJSON
func (p *Perceptron) UnmarshalJSON(data []byte) error {
	var j jsonPerceptron
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	if j.Label == "" {
		return errors.New("perceptron without label")
	}
	p.label, p.passes, p.weights = j.Label, j.Passes, j.Weights
	return nil
}

// WriteJson serializes perceptron into a writer
func (p Perceptron) WriteJson(w io.Writer) error {
	return json.NewEncoder(w).Encode(p)
}

// ReadJson deserializes perceptron from a reader
func (p *Perceptron) ReadJson(r io.Reader) error {
	return json.NewDecoder(r).Decode(p)
}
