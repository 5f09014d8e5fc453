package inference

import "go.uber.org/zap"

import "github.com/neurlang/perceptron/parallel"

// Classifier classifies inputs against a fixed model and optionally logs every score
type Classifier struct {
	model   Model
	verbose bool
	log     *zap.SugaredLogger
}

// New creates a classifier over m. A nil logger disables logging.
func New(m Model, logger *zap.Logger, verbose bool) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Classifier{model: m, verbose: verbose, log: logger.Sugar()}
}

// Classify returns the best matching label for input
func (c *Classifier) Classify(input []float64) (string, error) {
	ratings, err := Scores(input, c.model)
	if err != nil {
		return "", err
	}
	if c.verbose {
		for _, r := range ratings {
			c.log.Debugf("trying %s output: %v", r.Label, r.Score)
		}
	}
	best, err := Best(ratings)
	if err != nil {
		return "", err
	}
	return best.Label, nil
}

// Scores rates input with every label of the model
func (c *Classifier) Scores(input []float64) ([]Rating, error) {
	return Scores(input, c.model)
}

// ClassifyBatch classifies inputs using up to threads goroutines. The result at
// position i belongs to inputs[i]; the error combines every failed input.
func (c *Classifier) ClassifyBatch(inputs [][]float64, threads int) ([]string, error) {
	var labels = make([]string, len(inputs))
	err := parallel.ForEach(len(inputs), threads, func(i int) (err error) {
		labels[i], err = c.Classify(inputs[i])
		return err
	})
	return labels, err
}
