// Package main provides a program for classifying feature vectors with a trained
// letters model. Each argument is one comma separated vector; the program prints the
// best matching label for every vector, one per line.
package main
