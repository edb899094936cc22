package emit

import (
	"errors"
	"fmt"

	"shape-exporter/internal/diagnostic"
)

// Result is the outcome of writing one descriptor.
type Result struct {
	Class  string // declaration identity
	Path   string // descriptor path
	Fields int    // number of members written
	Err    error  // nil on success
}

// OK reports whether the descriptor was written.
func (r Result) OK() bool {
	return r.Err == nil
}

// Summary aggregates the results of one emission.
type Summary struct {
	OutputDir string
	Results   []Result
}

// Written returns the number of descriptors written successfully.
func (s *Summary) Written() int {
	n := 0
	for _, r := range s.Results {
		if r.OK() {
			n++
		}
	}

	return n
}

// Failed returns the results that carry an error.
func (s *Summary) Failed() []Result {
	var failed []Result
	for _, r := range s.Results {
		if !r.OK() {
			failed = append(failed, r)
		}
	}

	return failed
}

// Err joins all per-entry errors, or returns nil when every entry succeeded.
func (s *Summary) Err() error {
	var errs []error
	for _, r := range s.Failed() {
		errs = append(errs, fmt.Errorf("%s: %w", r.Class, r.Err))
	}

	return errors.Join(errs...)
}

// Diagnostics converts failures into error diagnostics.
func (s *Summary) Diagnostics() diagnostic.Diagnostics {
	var d diagnostic.Diagnostics
	for _, r := range s.Failed() {
		d.AddError(diagnostic.CodeWriteFailed, r.Err.Error(), r.Class, "")
	}

	return d
}
