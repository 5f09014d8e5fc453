// Package main provides a small http server around a letters model. It trains (or
// resumes) the perceptrons before listening, then answers POST /recognize requests
// carrying {"sensor": [...]} with {"result": "<label>"} and serves a static web
// directory for everything else.
package main
