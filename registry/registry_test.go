package registry

import "bytes"
import "errors"
import "path/filepath"
import "testing"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"

import "github.com/neurlang/perceptron/perceptron"
import "github.com/neurlang/perceptron/vector"

func TestNewSortsLabels(t *testing.T) {
	r, err := New(
		perceptron.New("b", []float64{0, 1}, 2),
		perceptron.New("a", []float64{1, 0}, 3),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, 2, r.Dimension())
	assert.Equal(t, []string{"a", "b"}, r.Labels())
	assert.Equal(t, "a", r.Label(0))
	assert.Equal(t, "b", r.At(1).Label())

	p, ok := r.Get("b")
	require.True(t, ok)
	assert.Equal(t, []float64{0, 1}, p.Weights())
	_, ok = r.Get("z")
	assert.False(t, ok)

	score, err := r.Score(0, []float64{2, 5})
	require.NoError(t, err)
	assert.Equal(t, 2.0, score)
}

func TestNewRejects(t *testing.T) {
	_, err := New(perceptron.New("a", []float64{1}, 0), perceptron.New("a", []float64{2}, 0))
	assert.Error(t, err)

	_, err = New(perceptron.New("a", []float64{1}, 0), perceptron.New("b", []float64{1, 2}, 0))
	var dim *vector.DimensionMismatchError
	require.True(t, errors.As(err, &dim))
	assert.Equal(t, "b", dim.Label)

	_, err = New(nil)
	assert.Error(t, err)
}

func TestEmpty(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, 0, r.Dimension())

	var nilRegistry *Registry
	assert.Equal(t, 0, nilRegistry.Len())
	assert.Nil(t, nilRegistry.Labels())
	_, ok := nilRegistry.Get("a")
	assert.False(t, ok)
}

func TestLabelsIsACopy(t *testing.T) {
	r, err := New(perceptron.New("a", []float64{1}, 0))
	require.NoError(t, err)
	r.Labels()[0] = "z"
	assert.Equal(t, "a", r.Label(0))
}

func TestCompressedWeightsRoundTrip(t *testing.T) {
	r, err := New(
		perceptron.New("A", []float64{0.6, 0, -0.1}, 7),
		perceptron.New("B", []float64{0.30000000000000004, 0.1, 0}, 4),
	)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.WriteCompressedWeights(&buf))
	got, err := ReadCompressedWeights(&buf)
	require.NoError(t, err)
	assert.Equal(t, r.Labels(), got.Labels())
	for i := 0; i < r.Len(); i++ {
		assert.Equal(t, r.At(i).Weights(), got.At(i).Weights())
		assert.Equal(t, r.At(i).Passes(), got.At(i).Passes())
	}

	name := filepath.Join(t.TempDir(), "model.json.lzw")
	require.NoError(t, r.WriteCompressedWeightsToFile(name))
	got, err = ReadCompressedWeightsFromFile(name)
	require.NoError(t, err)
	assert.Equal(t, r.Labels(), got.Labels())

	_, err = ReadCompressedWeightsFromFile(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestEmptyRoundTrip(t *testing.T) {
	r, err := New()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, r.WriteCompressedWeights(&buf))
	got, err := ReadCompressedWeights(&buf)
	require.NoError(t, err)
	assert.Equal(t, 0, got.Len())
}
