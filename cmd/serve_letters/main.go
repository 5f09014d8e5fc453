package main

import "fmt"
import "net/http"
import "os"
import "time"

import "github.com/urfave/cli/v2"

import "github.com/neurlang/perceptron/datasets"
import "github.com/neurlang/perceptron/datasets/csv"
import "github.com/neurlang/perceptron/datasets/letters"
import "github.com/neurlang/perceptron/inference"
import "github.com/neurlang/perceptron/learning"
import "github.com/neurlang/perceptron/trainer"

const (
	flagListen   = "listen"
	flagWeb      = "web"
	flagData     = "data"
	flagConfig   = "config"
	flagDstModel = "dstmodel"
	flagResume   = "resume"
	flagVerbose  = "verbose"
)

func main() {
	app := &cli.App{
		Name:  "serve_letters",
		Usage: "train the letter perceptrons and serve /recognize",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: flagListen, Value: ":8000", Usage: "address to listen on"},
			&cli.StringFlag{Name: flagWeb, Value: "web", Usage: "directory with index.html and static files"},
			&cli.StringFlag{Name: flagData, Usage: "delimited dataset file, built-in letters when empty"},
			&cli.StringFlag{Name: flagConfig, Usage: "json file with hyper parameters"},
			&cli.StringFlag{Name: flagDstModel, Usage: "model .json.lzw file to resume from and save to"},
			&cli.BoolFlag{Name: flagResume, Value: true, Usage: "resume from the model file when it matches the dataset"},
			&cli.BoolFlag{Name: flagVerbose, Usage: "log every mistake and every score"},
		},
		Action: serve,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serve(c *cli.Context) error {
	logger, err := learning.NewLogger("serve", c.Bool(flagVerbose))
	if err != nil {
		return err
	}
	defer logger.Sync()
	log := logger.Sugar()

	h := learning.New()
	if name := c.String(flagConfig); name != "" {
		if err := h.ReadFile(name); err != nil {
			return err
		}
	}
	h.Verbose = h.Verbose || c.Bool(flagVerbose)
	h.UseLogger(logger)

	var dataset datasets.Dataset
	if name := c.String(flagData); name != "" {
		if dataset, err = csv.ReadFile(name); err != nil {
			return err
		}
	} else {
		dataset = letters.Dataset()
	}

	log.Info("training perceptrons")
	r, err := trainer.Resume(dataset, h, c.String(flagDstModel), c.Bool(flagResume))
	if err != nil {
		return err
	}
	log.Info("perceptrons trained")

	server := &http.Server{
		Addr:              c.String(flagListen),
		Handler:           newMux(inference.New(r, logger, h.Verbose), c.String(flagWeb), log),
		ReadHeaderTimeout: 10 * time.Second,
	}
	log.Infow("listening", "addr", server.Addr)
	return server.ListenAndServe()
}
