// Package learning implements the training stage of the perceptron classifier
package learning

import "math"
import "runtime"

import "github.com/klauspost/cpuid/v2"
import "github.com/pkg/errors"
import "go.uber.org/zap"
import "go.uber.org/zap/zapcore"
import "gopkg.in/natefinch/lumberjack.v2"

// HyperParameters is the configuration shared by every perceptron trained in a run
type HyperParameters struct {
	Threshold    float64 `json:"threshold"`     // weighted sum above which a perceptron fires
	LearningRate float64 `json:"learning_rate"` // scale of each weight update
	MaxPasses    int     `json:"max_passes"`    // give up after this many passes over a training set

	Threads int  `json:"threads"` // labels trained concurrently, negative for one per logical core
	Verbose bool `json:"verbose"` // log every mistake and every score

	l *zap.SugaredLogger
}

// New returns the default hyper parameters: threshold 0.5, learning rate 0.1
func New() *HyperParameters {
	return &HyperParameters{
		Threshold:    0.5,
		LearningRate: 0.1,
		MaxPasses:    10000,
		Threads:      1,
	}
}

// Validate reports hyper parameters that can not train anything
func (h *HyperParameters) Validate() error {
	if math.IsNaN(h.Threshold) || math.IsInf(h.Threshold, 0) {
		return errors.Errorf("threshold must be finite, got %v", h.Threshold)
	}
	if !(h.LearningRate > 0) || math.IsInf(h.LearningRate, 0) {
		return errors.Errorf("learning rate must be positive and finite, got %v", h.LearningRate)
	}
	if h.MaxPasses < 1 {
		return errors.Errorf("max passes must be at least 1, got %d", h.MaxPasses)
	}
	return nil
}

// Workers returns how many labels may train at the same time
func (h *HyperParameters) Workers() int {
	if h.Threads >= 1 {
		return h.Threads
	}
	if h.Threads == 0 {
		return 1
	}
	if cores := cpuid.CPU.LogicalCores; cores > 0 {
		return cores
	}
	return runtime.NumCPU()
}

// SetLogger additionally writes the training log into a rotated file
func (h *HyperParameters) SetLogger(filename string) {
	var file = zapcore.NewCore(
		zapcore.NewConsoleEncoder(NewLoggerConfig().EncoderConfig),
		zapcore.AddSync(&lumberjack.Logger{
			Filename:   filename,
			MaxSize:    16,
			MaxBackups: 2,
			Compress:   true,
		}),
		zap.DebugLevel,
	)
	if h.l == nil {
		h.l = zap.New(file).Sugar()
		return
	}
	h.l = zap.New(zapcore.NewTee(h.l.Desugar().Core(), file)).Sugar()
}

// UseLogger sets the logger training progress is written to
func (h *HyperParameters) UseLogger(l *zap.Logger) {
	if l == nil {
		h.l = nil
		return
	}
	h.l = l.Sugar()
}

// Logger returns the configured logger, a no-op logger when none was set
func (h *HyperParameters) Logger() *zap.SugaredLogger {
	if h.l == nil {
		return zap.NewNop().Sugar()
	}
	return h.l
}
