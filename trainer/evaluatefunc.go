package trainer

import "github.com/neurlang/perceptron/datasets"
import "github.com/neurlang/perceptron/inference"
import "github.com/neurlang/perceptron/registry"

// Evaluate classifies every prototype of d with r and returns the percentage that
// came back as their own label, together with the labels that did not
func Evaluate(r *registry.Registry, d datasets.Dataset, threads int) (success int, misses []string, err error) {
	var examples = d.Examples()
	if len(examples) == 0 {
		return 0, nil, datasets.ErrEmptyDataset
	}
	var inputs = make([][]float64, len(examples))
	for i, e := range examples {
		inputs[i] = e.Input
	}
	predicted, err := inference.New(r, nil, false).ClassifyBatch(inputs, threads)
	if err != nil {
		return 0, nil, err
	}
	var correct int
	for i, e := range examples {
		if predicted[i] == e.Label {
			correct++
		} else {
			misses = append(misses, e.Label)
		}
	}
	return 100 * correct / len(examples), misses, nil
}
