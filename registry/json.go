package registry

import "compress/lzw"
import "encoding/json"
import "io"
import "os"

import "github.com/pkg/errors"
import "go.uber.org/multierr"

import "github.com/neurlang/perceptron/perceptron"

// WriteCompressedWeightsToFile writes the registry to a lzw file
func (r *Registry) WriteCompressedWeightsToFile(name string) (err error) {
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, file.Close())
	}()
	return r.WriteCompressedWeights(file)
}

// WriteCompressedWeights writes the registry as a lzw compressed json array of perceptrons
func (r *Registry) WriteCompressedWeights(w io.Writer) error {
	lw := lzw.NewWriter(w, lzw.LSB, 8)

	_, err := lw.Write([]byte("[\n"))
	if err != nil {
		return multierr.Append(err, lw.Close())
	}
	for i := 0; i < r.Len(); i++ {
		if i != 0 {
			_, err = lw.Write([]byte(",\n"))
			if err != nil {
				return multierr.Append(err, lw.Close())
			}
		}
		err = r.At(i).WriteJson(lw)
		if err != nil {
			return multierr.Append(err, lw.Close())
		}
	}
	_, err = lw.Write([]byte("]\n"))
	if err != nil {
		return multierr.Append(err, lw.Close())
	}
	return lw.Close()
}

// ReadCompressedWeightsFromFile reads a registry from a lzw file
func ReadCompressedWeightsFromFile(name string) (*Registry, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadCompressedWeights(file)
}

// ReadCompressedWeights reads a registry written by WriteCompressedWeights
func ReadCompressedWeights(r io.Reader) (*Registry, error) {
	lr := lzw.NewReader(r, lzw.LSB, 8)
	defer lr.Close()

	var ps []*perceptron.Perceptron
	if err := json.NewDecoder(lr).Decode(&ps); err != nil {
		return nil, errors.Wrap(err, "decoding weights")
	}
	return New(ps...)
}
