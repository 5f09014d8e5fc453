// Package datasets implements the labeled dataset the perceptrons are trained on
package datasets

import "sort"

import "github.com/pkg/errors"

import "github.com/neurlang/perceptron/vector"

// ErrEmptyDataset is returned when a dataset holds no labels at all
var ErrEmptyDataset = errors.New("dataset is empty")

// ErrUnknownLabel is returned when a training set is requested for a label the dataset lacks
var ErrUnknownLabel = errors.New("label not in dataset")

// Dataset maps each class label to its flattened feature vector
type Dataset map[string][]float64

// LabeledExample is a feature vector together with its class label
type LabeledExample struct {
	Label string
	Input []float64
}

// Example is one entry of a TrainingSet, Desired is exactly 0 or 1
type Example struct {
	Label   string
	Input   []float64
	Desired int
}

// TrainingSet holds one example per dataset label, built for the Target label
type TrainingSet struct {
	Target   string
	Examples []Example
}

// Init initializes the dataset structure
func (d *Dataset) Init() {
	*d = make(map[string][]float64)
}

// Len returns the number of labels
func (d Dataset) Len() int {
	return len(d)
}

// Labels returns the labels in lexicographic order
func (d Dataset) Labels() []string {
	labels := make([]string, 0, len(d))
	for k := range d {
		labels = append(labels, k)
	}
	sort.Strings(labels)
	return labels
}

// Examples returns the labeled examples in lexicographic label order
func (d Dataset) Examples() []LabeledExample {
	var ret = make([]LabeledExample, 0, len(d))
	for _, label := range d.Labels() {
		ret = append(ret, LabeledExample{Label: label, Input: d[label]})
	}
	return ret
}

// Dimension validates that the dataset is not empty and that every vector has the
// same non-zero length, which it returns
func (d Dataset) Dimension() (int, error) {
	if len(d) == 0 {
		return 0, ErrEmptyDataset
	}
	var labels = d.Labels()
	var dim = len(d[labels[0]])
	for _, label := range labels {
		if len(d[label]) == 0 {
			return 0, &DatasetFormatError{Label: label, Reason: "label has no values"}
		}
		if err := vector.Check(label, dim, d[label]); err != nil {
			return 0, err
		}
	}
	return dim, nil
}

// TrainingSet builds the training set for target: one example per label L in the
// dataset, desired output 1 when L equals target and 0 otherwise
func (d Dataset) TrainingSet(target string) (TrainingSet, error) {
	if _, err := d.Dimension(); err != nil {
		return TrainingSet{}, err
	}
	if _, ok := d[target]; !ok {
		return TrainingSet{}, errors.Wrapf(ErrUnknownLabel, "training set for %q", target)
	}
	var set = TrainingSet{Target: target, Examples: make([]Example, 0, len(d))}
	for _, e := range d.Examples() {
		var desired int
		if e.Label == target {
			desired = 1
		}
		set.Examples = append(set.Examples, Example{Label: e.Label, Input: e.Input, Desired: desired})
	}
	return set, nil
}

// Dimension returns the common input length of the set, validating all examples
func (s TrainingSet) Dimension() (int, error) {
	if len(s.Examples) == 0 {
		return 0, ErrEmptyDataset
	}
	var dim = len(s.Examples[0].Input)
	for _, e := range s.Examples {
		if err := vector.Check(e.Label, dim, e.Input); err != nil {
			return 0, err
		}
		if e.Desired != 0 && e.Desired != 1 {
			return 0, &DatasetFormatError{Label: e.Label, Reason: "desired output must be 0 or 1"}
		}
	}
	return dim, nil
}
