package processor

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/davecgh/go-spew/spew"

	"shape-exporter/internal/collect"
	"shape-exporter/internal/diagnostic"
	"shape-exporter/internal/emit"
)

// Processor wires the collector to an emitter.
type Processor struct {
	emitter *emit.Emitter
	logger  *log.Logger
}

// New creates a Processor. A nil logger discards all output.
func New(emitter *emit.Emitter, logger *log.Logger) *Processor {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Processor{
		emitter: emitter,
		logger:  logger,
	}
}

// Result is the outcome of one round.
type Result struct {
	// Summary holds one entry per emitted declaration.
	Summary *emit.Summary
	// Diagnostics holds collection notes and write failures.
	Diagnostics diagnostic.Diagnostics
}

// Process collects and emits. The returned bool is always true: the marked
// elements have been fully handled, whatever happened to individual files.
func (p *Processor) Process(env collect.Environment) (bool, *Result) {
	mapping, diags := collect.Collect(env)

	p.logger.Debug("collected shapes", "declarations", mapping.Len())
	if p.logger.GetLevel() <= log.DebugLevel {
		p.logger.Debug("mapping dump\n" + spew.Sdump(mapping))
	}

	for _, d := range diags.Warnings {
		p.logger.Warn(d.Message, "code", d.Code, "member", d.Member)
	}

	for _, d := range diags.Infos {
		p.logger.Debug(d.Message, "code", d.Code, "class", d.Declaration, "member", d.Member)
	}

	summary := p.emitter.Emit(mapping)

	for _, r := range summary.Results {
		if r.OK() {
			p.logger.Debug("wrote descriptor", "class", r.Class, "path", r.Path, "fields", r.Fields)
			continue
		}

		p.logger.Error("failed to write descriptor", "class", r.Class, "path", r.Path, "error", r.Err)
	}

	result := &Result{Summary: summary}
	result.Diagnostics.Merge(*diags)
	result.Diagnostics.Merge(summary.Diagnostics())

	return true, result
}
