package trainer

import "os"

import "github.com/neurlang/perceptron/datasets"
import "github.com/neurlang/perceptron/learning"
import "github.com/neurlang/perceptron/registry"

// Resume loads the registry stored in dstmodel when resume is set and the stored
// labels and dimension still match d. Otherwise it trains a fresh registry and,
// when dstmodel is not empty, writes it there.
func Resume(d datasets.Dataset, h *learning.HyperParameters, dstmodel string, resume bool) (*registry.Registry, error) {
	var log = h.Logger()
	if resume && dstmodel != "" {
		r, err := registry.ReadCompressedWeightsFromFile(dstmodel)
		switch {
		case err == nil && matches(r, d):
			log.Infow("resumed model", "file", dstmodel, "labels", r.Len())
			return r, nil
		case err == nil:
			log.Warnw("stored model does not match dataset, retraining", "file", dstmodel)
		case os.IsNotExist(err):
			log.Infow("no stored model, training", "file", dstmodel)
		default:
			log.Warnw("cannot read stored model, retraining", "file", dstmodel, "error", err)
		}
	}
	r, err := Train(d, h)
	if err != nil {
		return nil, err
	}
	if dstmodel != "" {
		if err := r.WriteCompressedWeightsToFile(dstmodel); err != nil {
			return nil, err
		}
		log.Infow("saved model", "file", dstmodel)
	}
	return r, nil
}

func matches(r *registry.Registry, d datasets.Dataset) bool {
	dim, err := d.Dimension()
	if err != nil || dim != r.Dimension() {
		return false
	}
	var labels = d.Labels()
	if len(labels) != r.Len() {
		return false
	}
	for i, label := range labels {
		if r.Label(i) != label {
			return false
		}
	}
	return true
}
