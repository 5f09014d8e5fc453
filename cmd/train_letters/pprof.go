package main

import "os"
import "runtime/pprof"

import "go.uber.org/multierr"

// startProfile collects cpu profile data into the named file until stop is called
func startProfile(name string) (stop func() error, err error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		return nil, multierr.Append(err, f.Close())
	}
	return func() error {
		pprof.StopCPUProfile()
		return f.Close()
	}, nil
}
