package trainer

import "github.com/neurlang/perceptron/datasets"
import "github.com/neurlang/perceptron/learning"
import "github.com/neurlang/perceptron/parallel"
import "github.com/neurlang/perceptron/perceptron"
import "github.com/neurlang/perceptron/registry"

// Train trains one perceptron per label of d and returns them as a registry. Labels
// are trained in lexicographic order, or concurrently when h allows more than one
// worker; each label only reads its own training set so the result is the same.
func Train(d datasets.Dataset, h *learning.HyperParameters) (*registry.Registry, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	dim, err := d.Dimension()
	if err != nil {
		return nil, err
	}
	var log = h.Logger()
	var labels = d.Labels()
	var trained = make([]*perceptron.Perceptron, len(labels))

	log.Infow("training perceptrons", "labels", len(labels), "dimension", dim, "workers", h.Workers())
	err = parallel.ForEach(len(labels), h.Workers(), func(i int) error {
		set, err := d.TrainingSet(labels[i])
		if err != nil {
			return err
		}
		p, err := h.Training(set)
		if err != nil {
			return err
		}
		trained[i] = p
		log.Infow("trained", "label", labels[i], "passes", p.Passes())
		return nil
	})
	if err != nil {
		return nil, err
	}
	log.Info("perceptrons trained")
	return registry.New(trained...)
}
