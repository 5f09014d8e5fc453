package learning

import "fmt"
import "time"

import "github.com/pkg/errors"
import "gonum.org/v1/gonum/floats"

import "github.com/neurlang/perceptron/datasets"
import "github.com/neurlang/perceptron/perceptron"
import "github.com/neurlang/perceptron/vector"

// ErrNonConvergence matches every NonConvergenceError
var ErrNonConvergence = errors.New("training did not converge")

// NonConvergenceError is returned when MaxPasses passes still produced mistakes,
// which happens when the training set is not linearly separable under the threshold
type NonConvergenceError struct {
	Label    string
	Passes   int
	Mistakes int // mistakes made during the last pass
}

func (e *NonConvergenceError) Error() string {
	return fmt.Sprintf("training %q did not converge after %d passes (%d mistakes in the last pass)", e.Label, e.Passes, e.Mistakes)
}

// Is makes errors.Is(err, ErrNonConvergence) hold
func (e *NonConvergenceError) Is(target error) bool {
	return target == ErrNonConvergence
}

// Training runs the perceptron learning rule on set until a full pass makes no
// mistake. Weights start at zero and are updated online, right after each mistake,
// by LearningRate * (desired - predicted) * input.
func (h *HyperParameters) Training(set datasets.TrainingSet) (*perceptron.Perceptron, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	dim, err := set.Dimension()
	if err != nil {
		return nil, errors.Wrapf(err, "training %q", set.Target)
	}
	var log = h.Logger()
	var start = time.Now()
	var weights = vector.Zero(dim)
	var mistakes int
	for pass := 1; pass <= h.MaxPasses; pass++ {
		mistakes = 0
		for _, e := range set.Examples {
			sum, err := vector.Dot(e.Input, weights)
			if err != nil {
				return nil, err
			}
			var predicted int
			if sum > h.Threshold {
				predicted = 1
			}
			if diff := e.Desired - predicted; diff != 0 {
				mistakes++
				floats.AddScaled(weights, h.LearningRate*float64(diff), e.Input)
				if h.Verbose {
					log.Debugf("mistake on %s when training %s (pass %d, sum %v)", e.Label, set.Target, pass, sum)
				}
			}
		}
		if mistakes == 0 {
			log.Debugw("converged", "label", set.Target, "passes", pass, "elapsed", time.Since(start))
			return perceptron.New(set.Target, weights, pass), nil
		}
	}
	return nil, &NonConvergenceError{Label: set.Target, Passes: h.MaxPasses, Mistakes: mistakes}
}
