// Package main provides the CLI entrypoint for shape-exporter.
//
// shape-exporter loads Go packages, finds struct types and fields marked
// with a comment directive (default "//shape:export") or a struct tag key,
// and writes one descriptor file per marked struct:
//
//	shape-exporter --out descriptors ./...
//	shape-exporter config init
package main

import (
	"errors"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}

		os.Exit(1)
	}
}

// ExitError carries a specific process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
