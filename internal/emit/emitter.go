package emit

import (
	"io"
	"path/filepath"
	"slices"

	"shape-exporter/internal/model"
)

// Options configures an Emitter.
type Options struct {
	// OutputDir is the root directory for descriptor files. Created if absent.
	OutputDir string
	// Format selects the body encoding. Defaults to FormatLegacy.
	Format Format
}

// Emitter writes descriptor files for a Mapping.
type Emitter struct {
	opts   Options
	render renderFunc
}

// New creates an Emitter. An empty format falls back to legacy.
func New(opts Options) (*Emitter, error) {
	format, err := ParseFormat(string(opts.Format))
	if err != nil {
		return nil, err
	}

	opts.Format = format

	return &Emitter{
		opts:   opts,
		render: format.renderer(),
	}, nil
}

// Emit writes one descriptor per Mapping entry, in identity order.
// Failures are recorded per entry and never stop the remaining entries.
func (e *Emitter) Emit(mapping *model.Mapping) *Summary {
	summary := &Summary{OutputDir: e.opts.OutputDir}

	keys := mapping.Keys()
	slices.Sort(keys)

	dirErr := ensureDir(e.opts.OutputDir)

	for _, class := range keys {
		members, _ := mapping.Members(class)

		result := Result{
			Class:  class,
			Path:   filepath.Join(e.opts.OutputDir, FileName(class, e.opts.Format)),
			Fields: len(members),
			Err:    dirErr,
		}

		if dirErr == nil {
			result.Err = writeFile(result.Path, func(w io.Writer) error {
				return e.render(w, class, members)
			})
		}

		summary.Results = append(summary.Results, result)
	}

	return summary
}
