package learning

import "errors"
import "testing"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"
import "go.uber.org/zap"
import "go.uber.org/zap/zaptest/observer"

import "github.com/neurlang/perceptron/datasets"
import "github.com/neurlang/perceptron/vector"

func TestTrainingTwoLabels(t *testing.T) {
	h := New()
	d := datasets.Dataset{"A": {1, 0}, "B": {0, 1}}

	set, err := d.TrainingSet("A")
	require.NoError(t, err)
	p, err := h.Training(set)
	require.NoError(t, err)

	// w0 grows by 0.1 per pass until the sum exceeds 0.5, then one clean pass
	assert.Equal(t, "A", p.Label())
	assert.Equal(t, 7, p.Passes())
	assert.InDelta(t, 0.6, p.Get(0), 1e-9)
	assert.Equal(t, 0.0, p.Get(1))

	fire, err := p.Fire([]float64{1, 0}, h.Threshold)
	require.NoError(t, err)
	assert.True(t, fire)
	fire, err = p.Fire([]float64{0, 1}, h.Threshold)
	require.NoError(t, err)
	assert.False(t, fire)
}

func TestTrainingNegativeUpdates(t *testing.T) {
	h := New()
	// B overlaps A so training A must push the shared input down
	d := datasets.Dataset{"A": {1, 1}, "B": {0, 1}}
	set, err := d.TrainingSet("A")
	require.NoError(t, err)

	p, err := h.Training(set)
	require.NoError(t, err)
	a, _ := p.Score([]float64{1, 1})
	b, _ := p.Score([]float64{0, 1})
	assert.Greater(t, a, h.Threshold)
	assert.LessOrEqual(t, b, h.Threshold)
}

func TestTrainingDeterministic(t *testing.T) {
	h := New()
	d := datasets.Dataset{"A": {1, 0, 1}, "B": {0, 1, 1}, "C": {1, 1, 0}}
	for _, label := range d.Labels() {
		set, err := d.TrainingSet(label)
		require.NoError(t, err)
		p1, err := h.Training(set)
		require.NoError(t, err)
		p2, err := h.Training(set)
		require.NoError(t, err)
		assert.Equal(t, p1.Weights(), p2.Weights(), label)
		assert.Equal(t, p1.Passes(), p2.Passes(), label)
	}
}

func TestTrainingNonConvergence(t *testing.T) {
	h := New()
	h.MaxPasses = 50
	d := datasets.Dataset{"A": {1, 1}, "B": {1, 1}}
	set, err := d.TrainingSet("A")
	require.NoError(t, err)

	p, err := h.Training(set)
	assert.Nil(t, p)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNonConvergence)

	var nc *NonConvergenceError
	require.True(t, errors.As(err, &nc))
	assert.Equal(t, "A", nc.Label)
	assert.Equal(t, 50, nc.Passes)
	assert.Greater(t, nc.Mistakes, 0)
}

func TestTrainingDimensionMismatch(t *testing.T) {
	h := New()
	set := datasets.TrainingSet{Target: "A", Examples: []datasets.Example{
		{Label: "A", Input: []float64{1, 0}, Desired: 1},
		{Label: "B", Input: []float64{1}, Desired: 0},
	}}
	_, err := h.Training(set)
	var dim *vector.DimensionMismatchError
	require.True(t, errors.As(err, &dim))
	assert.Equal(t, "B", dim.Label)
}

func TestTrainingInvalidHyperParameters(t *testing.T) {
	set := datasets.TrainingSet{Target: "A", Examples: []datasets.Example{{Label: "A", Input: []float64{1}, Desired: 1}}}
	for _, mutate := range []func(h *HyperParameters){
		func(h *HyperParameters) { h.LearningRate = 0 },
		func(h *HyperParameters) { h.MaxPasses = 0 },
	} {
		h := New()
		mutate(h)
		_, err := h.Training(set)
		assert.Error(t, err)
	}
}

func TestTrainingVerboseLogsMistakes(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	h := New()
	h.Verbose = true
	h.UseLogger(zap.New(core))

	set, err := datasets.Dataset{"A": {1, 0}, "B": {0, 1}}.TrainingSet("B")
	require.NoError(t, err)
	_, err = h.Training(set)
	require.NoError(t, err)

	assert.NotZero(t, logs.FilterMessageSnippet("mistake on B when training B").Len())
	assert.Equal(t, 1, logs.FilterMessage("converged").Len())
}
