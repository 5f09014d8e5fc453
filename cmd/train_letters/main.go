package main

import "fmt"
import "net/url"
import "os"
import "path/filepath"

import "github.com/klauspost/cpuid/v2"
import "github.com/urfave/cli/v2"

import "github.com/neurlang/perceptron/datasets"
import "github.com/neurlang/perceptron/datasets/csv"
import "github.com/neurlang/perceptron/datasets/letters"
import "github.com/neurlang/perceptron/learning"
import "github.com/neurlang/perceptron/registry"
import "github.com/neurlang/perceptron/trainer"

const (
	flagData     = "data"
	flagConfig   = "config"
	flagDstModel = "dstmodel"
	flagResume   = "resume"
	flagThreads  = "threads"
	flagVerbose  = "verbose"
	flagLog      = "log"
	flagImages   = "images"
	flagCols     = "cols"
	flagScale    = "scale"
	flagZoom     = "zoom"
	flagPgo      = "pgo"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "train_letters",
		Usage: "train one perceptron per letter and save the model",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: flagData, Usage: "delimited dataset file, built-in letters when empty"},
			&cli.StringFlag{Name: flagConfig, Usage: "json file with hyper parameters"},
			&cli.StringFlag{Name: flagDstModel, Value: "letters.json.lzw", Usage: "model destination .json.lzw file"},
			&cli.BoolFlag{Name: flagResume, Usage: "resume from the destination model when it matches the dataset"},
			&cli.IntFlag{Name: flagThreads, Value: 1, Usage: "labels trained concurrently, -1 for one per logical core"},
			&cli.BoolFlag{Name: flagVerbose, Usage: "log every mistake"},
			&cli.StringFlag{Name: flagLog, Usage: "also write the training log into this file"},
			&cli.StringFlag{Name: flagImages, Usage: "directory to export weight images into"},
			&cli.IntFlag{Name: flagCols, Value: letters.Cols, Usage: "weights per image row"},
			&cli.Float64Flag{Name: flagScale, Value: 0.2, Usage: "weight drawn as pure white"},
			&cli.IntFlag{Name: flagZoom, Value: 20, Usage: "pixels per weight"},
			&cli.BoolFlag{Name: flagPgo, Usage: "write a cpu profile into default.pgo"},
		},
		Action: train,
	}
}

func train(c *cli.Context) error {
	if c.Bool(flagPgo) {
		stop, err := startProfile("default.pgo")
		if err != nil {
			return err
		}
		defer stop()
	}

	logger, err := learning.NewLogger("train", c.Bool(flagVerbose))
	if err != nil {
		return err
	}
	defer logger.Sync()

	h := learning.New()
	if name := c.String(flagConfig); name != "" {
		if err := h.ReadFile(name); err != nil {
			return err
		}
	}
	if c.IsSet(flagThreads) {
		h.Threads = c.Int(flagThreads)
	}
	if c.Bool(flagVerbose) {
		h.Verbose = true
	}
	h.UseLogger(logger)
	if name := c.String(flagLog); name != "" {
		h.SetLogger(name)
	}
	log := h.Logger()
	log.Infow("cpu", "brand", cpuid.CPU.BrandName, "logical cores", cpuid.CPU.LogicalCores, "workers", h.Workers())

	dataset, err := load(c.String(flagData))
	if err != nil {
		return err
	}
	r, err := trainer.Resume(dataset, h, c.String(flagDstModel), c.Bool(flagResume))
	if err != nil {
		return err
	}

	success, misses, err := trainer.Evaluate(r, dataset, h.Workers())
	if err != nil {
		return err
	}
	log.Infow("[success rate]", "percent", success, "misses", misses)

	summary, err := trainer.Report(r)
	if err != nil {
		return err
	}
	log.Infow("passes", "labels", summary.Labels, "min", summary.MinPasses, "mean", summary.MeanPasses,
		"median", summary.MedianPasses, "max", summary.MaxPasses)

	if dir := c.String(flagImages); dir != "" {
		return export(r, dir, c.Int(flagCols), c.Float64(flagScale), c.Int(flagZoom))
	}
	return nil
}

func load(name string) (datasets.Dataset, error) {
	if name == "" {
		return letters.Dataset(), nil
	}
	return csv.ReadFile(name)
}

func export(r *registry.Registry, dir string, cols int, scale float64, zoom int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for i := 0; i < r.Len(); i++ {
		p := r.At(i)
		name := filepath.Join(dir, "perceptron-trained-"+url.PathEscape(p.Label())+".png")
		if err := p.SavePNG(name, cols, scale, zoom); err != nil {
			return err
		}
	}
	return nil
}
