// Package main provides a program for training one-vs-rest perceptrons on a dataset of
// letter glyphs. It trains the built-in 5x7 letters unless a delimited dataset file is
// given, reports the self-consistency success rate, stores the model as a lzw
// compressed json file and can export every weight vector as a grayscale image.
package main
