package main

import "encoding/json"
import "errors"
import "net/http"
import "path/filepath"

import "go.uber.org/zap"
import "goji.io"
import "goji.io/pat"

import "github.com/neurlang/perceptron/datasets"
import "github.com/neurlang/perceptron/inference"
import "github.com/neurlang/perceptron/vector"

type recognizeRequest struct {
	Sensor []float64 `json:"sensor"`
}

type recognizeResponse struct {
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// recognizeHandler classifies the sensor vector posted in the request body
type recognizeHandler struct {
	classifier *inference.Classifier
	log        *zap.SugaredLogger
}

func (h *recognizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req recognizeRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		h.reply(w, http.StatusBadRequest, recognizeResponse{Error: "invalid request: " + err.Error()})
		return
	}
	label, err := h.classifier.Classify(req.Sensor)
	if err != nil {
		h.log.Warnw("recognize failed", "error", err)
		h.reply(w, statusOf(err), recognizeResponse{Error: err.Error()})
		return
	}
	h.reply(w, http.StatusOK, recognizeResponse{Result: label})
}

func (h *recognizeHandler) reply(w http.ResponseWriter, status int, resp recognizeResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.log.Warnw("writing response", "error", err)
	}
}

func statusOf(err error) int {
	var dim *vector.DimensionMismatchError
	switch {
	case errors.As(err, &dim):
		return http.StatusBadRequest
	case errors.Is(err, inference.ErrNoClassifiersTrained), errors.Is(err, datasets.ErrEmptyDataset):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// newMux routes /recognize to the classifier, / to index.html and the rest to the web directory
func newMux(classifier *inference.Classifier, web string, log *zap.SugaredLogger) *goji.Mux {
	mux := goji.NewMux()
	mux.Handle(pat.Post("/recognize"), &recognizeHandler{classifier: classifier, log: log})
	mux.HandleFunc(pat.Get("/"), func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, filepath.Join(web, "index.html"))
	})
	mux.Handle(pat.New("/*"), http.FileServer(http.Dir(web)))
	return mux
}
