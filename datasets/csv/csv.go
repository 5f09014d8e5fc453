package csv

import gocsv "encoding/csv"
import "io"
import "os"
import "strconv"
import "strings"

import "github.com/pkg/errors"

import "github.com/neurlang/perceptron/datasets"

// Reader parses datasets from a delimited stream
type Reader struct {
	// Comma is the field delimiter, ',' when zero
	Comma rune
	// Comment, when non-zero, starts a comment line
	Comment rune
}

// Read parses the whole stream into a dataset
func (r Reader) Read(in io.Reader) (datasets.Dataset, error) {
	var cr = gocsv.NewReader(in)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	if r.Comma != 0 {
		cr.Comma = r.Comma
	}
	cr.Comment = r.Comment

	var data datasets.Dataset
	data.Init()

	var current string
	var currentLine int
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *gocsv.ParseError
			if errors.As(err, &perr) {
				return nil, &datasets.DatasetFormatError{Line: perr.Line, Reason: perr.Err.Error()}
			}
			return nil, errors.Wrap(err, "reading dataset")
		}
		line, _ := cr.FieldPos(0)
		if isRowEmpty(row) {
			continue
		}
		if head := strings.TrimSpace(row[0]); head != "" {
			if current != "" && len(data[current]) == 0 {
				return nil, &datasets.DatasetFormatError{Line: currentLine, Label: current, Reason: "label has no values"}
			}
			if _, dup := data[head]; dup {
				return nil, &datasets.DatasetFormatError{Line: line, Label: head, Reason: "duplicate label"}
			}
			current, currentLine = head, line
			data[current] = []float64{}
		} else if current == "" {
			return nil, &datasets.DatasetFormatError{Line: line, Reason: "continuation row before any label"}
		}
		for _, field := range row[1:] {
			field = strings.TrimSpace(field)
			if field == "" {
				return nil, &datasets.DatasetFormatError{Line: line, Label: current, Reason: "empty value"}
			}
			value, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, &datasets.DatasetFormatError{Line: line, Label: current, Reason: "value " + strconv.Quote(field) + " is not a number"}
			}
			data[current] = append(data[current], value)
		}
	}
	if current != "" && len(data[current]) == 0 {
		return nil, &datasets.DatasetFormatError{Line: currentLine, Label: current, Reason: "label has no values"}
	}
	return data, nil
}

// ReadFile parses the named file with the default reader
func ReadFile(name string) (datasets.Dataset, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "opening dataset")
	}
	defer f.Close()
	return Reader{}.Read(f)
}

// Parse parses a dataset from a string with the default reader
func Parse(s string) (datasets.Dataset, error) {
	return Reader{}.Read(strings.NewReader(s))
}

func isRowEmpty(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
