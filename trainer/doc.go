// Package trainer builds the registry of one-vs-rest perceptrons from a dataset.
// It trains one perceptron per label as a blocking initialisation step, evaluates
// the result against the dataset prototypes and persists or resumes trained models.
package trainer
