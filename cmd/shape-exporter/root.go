package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"shape-exporter/internal/analyze"
	"shape-exporter/internal/config"
	"shape-exporter/internal/emit"
	"shape-exporter/internal/processor"
)

type rootOptions struct {
	configFile string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:   "shape-exporter [packages...]",
		Short: "Write descriptor files for marked Go struct types",
		Long: `shape-exporter loads the given Go packages (default ./...) and writes one
descriptor file per struct type carrying the marker.

A struct is described by the fields that carry the marker. When the struct
is marked but none of its fields are, all of its fields are described,
including fields promoted from embedded structs.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configFile, "config", "c", "", "config file (default is ./"+config.FileName+" when present)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringP("out", "o", "", "output directory for descriptor files")
	flags.String("marker", "", "comment directive that marks types and fields")
	flags.String("tag", "", "struct tag key that marks fields")
	flags.StringP("format", "f", "", "descriptor format: legacy, json or yaml")
	flags.String("qualifier", "", "package qualifier in type descriptors: full or package")
	flags.Bool("strict", false, "exit with status 1 when a descriptor cannot be written")

	cmd.AddCommand(newConfigCmd())

	return cmd
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Prefix: "shape-exporter",
		Level:  level,
	})
}

func runExport(cmd *cobra.Command, opts rootOptions, args []string) error {
	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: opts.configFile,
		Flags:      cmd.Flags(),
	})
	if err != nil {
		return err
	}

	if len(args) > 0 {
		cfg.Patterns = args
	}

	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
	logger.Debug("loading packages", "patterns", cfg.Patterns, "marker", cfg.Marker)

	env, err := analyze.NewAnalyzer(cfg.AnalyzeOptions("")).LoadPackages(cfg.Patterns...)
	if err != nil {
		return fmt.Errorf("loading packages: %w", err)
	}

	em, err := emit.New(cfg.EmitOptions())
	if err != nil {
		return err
	}

	_, result := processor.New(em, logger).Process(env)

	fmt.Fprint(cmd.OutOrStdout(), renderSummary(result.Summary))

	logger.Info("descriptors written",
		"dir", cfg.OutputDir,
		"written", result.Summary.Written(),
		"failed", len(result.Summary.Failed()),
		"warnings", len(result.Diagnostics.Warnings),
	)

	if cfg.Strict && result.Diagnostics.HasErrors() {
		return &ExitError{Code: 1, Err: result.Diagnostics.Error()}
	}

	return nil
}
