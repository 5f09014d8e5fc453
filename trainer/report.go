package trainer

import "github.com/montanaflynn/stats"

import "github.com/neurlang/perceptron/inference"
import "github.com/neurlang/perceptron/registry"

// Summary describes how many passes the perceptrons of a registry needed
type Summary struct {
	Labels       int
	MinPasses    float64
	MeanPasses   float64
	MedianPasses float64
	MaxPasses    float64
}

// Report summarises the training passes recorded in r
func Report(r *registry.Registry) (s Summary, err error) {
	if r.Len() == 0 {
		return s, inference.ErrNoClassifiersTrained
	}
	var passes = make(stats.Float64Data, 0, r.Len())
	for i := 0; i < r.Len(); i++ {
		passes = append(passes, float64(r.At(i).Passes()))
	}
	s.Labels = r.Len()
	if s.MinPasses, err = passes.Min(); err != nil {
		return s, err
	}
	if s.MeanPasses, err = passes.Mean(); err != nil {
		return s, err
	}
	if s.MedianPasses, err = passes.Median(); err != nil {
		return s, err
	}
	if s.MaxPasses, err = passes.Max(); err != nil {
		return s, err
	}
	return s, nil
}
