package inference

import "errors"
import "testing"

import "github.com/stretchr/testify/assert"
import "github.com/stretchr/testify/require"
import "go.uber.org/zap"
import "go.uber.org/zap/zaptest/observer"

import "github.com/neurlang/perceptron/perceptron"
import "github.com/neurlang/perceptron/registry"
import "github.com/neurlang/perceptron/vector"

// unsorted is a model whose labels are not in lexicographic order
type unsorted []Rating

func (u unsorted) Len() int {
	return len(u)
}

func (u unsorted) Label(n int) string {
	return u[n].Label
}

func (u unsorted) Score(n int, input []float64) (float64, error) {
	return u[n].Score, nil
}

func mustRegistry(t *testing.T, ps ...*perceptron.Perceptron) *registry.Registry {
	r, err := registry.New(ps...)
	require.NoError(t, err)
	return r
}

func TestClassify(t *testing.T) {
	r := mustRegistry(t,
		perceptron.New("A", []float64{0.6, 0}, 7),
		perceptron.New("B", []float64{0, 0.6}, 7),
	)
	label, err := Classify([]float64{1, 0}, r)
	require.NoError(t, err)
	assert.Equal(t, "A", label)

	label, err = Classify([]float64{0, 1}, r)
	require.NoError(t, err)
	assert.Equal(t, "B", label)
}

func TestClassifyIgnoresThreshold(t *testing.T) {
	// both scores are far below any firing threshold, the larger still wins
	r := mustRegistry(t,
		perceptron.New("A", []float64{-3, 0}, 0),
		perceptron.New("B", []float64{-1, 0}, 0),
	)
	label, err := Classify([]float64{1, 0}, r)
	require.NoError(t, err)
	assert.Equal(t, "B", label)
}

func TestClassifyTieBreak(t *testing.T) {
	r := mustRegistry(t,
		perceptron.New("zulu", []float64{1, 1}, 0),
		perceptron.New("alpha", []float64{1, 1}, 0),
		perceptron.New("mike", []float64{1, 1}, 0),
	)
	label, err := Classify([]float64{1, 2}, r)
	require.NoError(t, err)
	assert.Equal(t, "alpha", label)

	label, err = Classify([]float64{0, 0}, unsorted{{"c", 1}, {"b", 1}, {"a", 0}})
	require.NoError(t, err)
	assert.Equal(t, "b", label)
}

func TestClassifyNoClassifiers(t *testing.T) {
	r := mustRegistry(t)
	_, err := Classify([]float64{1}, r)
	assert.ErrorIs(t, err, ErrNoClassifiersTrained)

	_, err = Classify([]float64{1}, nil)
	assert.ErrorIs(t, err, ErrNoClassifiersTrained)

	_, err = Best(nil)
	assert.ErrorIs(t, err, ErrNoClassifiersTrained)
}

func TestClassifyDimensionMismatch(t *testing.T) {
	r := mustRegistry(t,
		perceptron.New("A", []float64{0.6, 0}, 7),
		perceptron.New("B", []float64{0, 0.6}, 7),
	)
	for _, input := range [][]float64{{1}, {1, 0, 0}, nil} {
		_, err := Classify(input, r)
		var dim *vector.DimensionMismatchError
		require.True(t, errors.As(err, &dim), "%v", input)
		assert.Equal(t, 2, dim.Expected)
		assert.Equal(t, len(input), dim.Got)
	}
}

func TestScores(t *testing.T) {
	r := mustRegistry(t,
		perceptron.New("B", []float64{0, 2}, 0),
		perceptron.New("A", []float64{1, 0}, 0),
	)
	ratings, err := Scores([]float64{3, 4}, r)
	require.NoError(t, err)
	assert.Equal(t, []Rating{{"A", 3}, {"B", 8}}, ratings)
}

func TestClassifierVerbose(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	r := mustRegistry(t,
		perceptron.New("A", []float64{0.6, 0}, 7),
		perceptron.New("B", []float64{0, 0.6}, 7),
	)
	c := New(r, zap.New(core), true)
	label, err := c.Classify([]float64{0, 1})
	require.NoError(t, err)
	assert.Equal(t, "B", label)
	assert.Equal(t, 2, logs.FilterMessageSnippet("trying").Len())

	ratings, err := c.Scores([]float64{0, 1})
	require.NoError(t, err)
	assert.Len(t, ratings, 2)
}

func TestClassifyBatch(t *testing.T) {
	r := mustRegistry(t,
		perceptron.New("A", []float64{0.6, 0}, 7),
		perceptron.New("B", []float64{0, 0.6}, 7),
	)
	c := New(r, nil, false)

	var inputs [][]float64
	var want []string
	for i := 0; i < 100; i++ {
		if i%2 == 0 {
			inputs = append(inputs, []float64{1, 0})
			want = append(want, "A")
		} else {
			inputs = append(inputs, []float64{0, 1})
			want = append(want, "B")
		}
	}
	got, err := c.ClassifyBatch(inputs, 8)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = c.ClassifyBatch([][]float64{{1, 0}, {1}}, 2)
	var dim *vector.DimensionMismatchError
	assert.True(t, errors.As(err, &dim))
}
