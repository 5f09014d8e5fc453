// Package letters provides a small built-in dataset of capital letters drawn on a
// 5x7 pixel grid. Each glyph is one prototype vector, which makes the set linearly
// separable under the one-vs-rest perceptron training.
package letters
