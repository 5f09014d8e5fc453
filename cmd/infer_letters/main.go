package main

import "fmt"
import "io"
import "os"
import "strconv"
import "strings"

import "github.com/pkg/errors"
import "github.com/urfave/cli/v2"

import "github.com/neurlang/perceptron/inference"
import "github.com/neurlang/perceptron/learning"
import "github.com/neurlang/perceptron/registry"

const (
	flagModel   = "model"
	flagScores  = "scores"
	flagVerbose = "verbose"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:      "infer_letters",
		Usage:     "classify vectors with a trained model",
		ArgsUsage: "vector [vector...]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: flagModel, Value: "letters.json.lzw", Usage: "model .json.lzw file"},
			&cli.BoolFlag{Name: flagScores, Usage: "print the score of every label"},
			&cli.BoolFlag{Name: flagVerbose, Usage: "log every score"},
		},
		Action: func(c *cli.Context) error {
			return infer(c, out)
		},
	}
}

func infer(c *cli.Context, out io.Writer) error {
	if c.NArg() == 0 {
		return errors.New("no vector to classify")
	}
	logger, err := learning.NewLogger("infer", c.Bool(flagVerbose))
	if err != nil {
		return err
	}
	defer logger.Sync()

	r, err := registry.ReadCompressedWeightsFromFile(c.String(flagModel))
	if err != nil {
		return err
	}
	classifier := inference.New(r, logger, c.Bool(flagVerbose))
	for _, arg := range c.Args().Slice() {
		input, err := parseVector(arg)
		if err != nil {
			return err
		}
		label, err := classifier.Classify(input)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, label)
		if c.Bool(flagScores) {
			ratings, err := classifier.Scores(input)
			if err != nil {
				return err
			}
			for _, rating := range ratings {
				fmt.Fprintf(out, "\t%s\t%v\n", rating.Label, rating.Score)
			}
		}
	}
	return nil
}

// parseVector parses comma separated numbers
func parseVector(s string) ([]float64, error) {
	var fields = strings.Split(s, ",")
	var v = make([]float64, 0, len(fields))
	for _, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing vector %q", s)
		}
		v = append(v, x)
	}
	return v, nil
}
