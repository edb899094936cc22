package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"shape-exporter/internal/analyze"
	"shape-exporter/internal/emit"
)

const (
	// FileName is the config file looked up in the search directory.
	FileName = ".shape-exporter.yaml"
	// EnvPrefix prefixes environment variable overrides.
	EnvPrefix = "SHAPE_EXPORTER"

	filePerm = 0o644
)

// Config holds every tunable of a run.
type Config struct {
	OutputDir string   `mapstructure:"output_dir" yaml:"output_dir"`
	Marker    string   `mapstructure:"marker"     yaml:"marker"`
	Tag       string   `mapstructure:"tag"        yaml:"tag"`
	Format    string   `mapstructure:"format"     yaml:"format"`
	Qualifier string   `mapstructure:"qualifier"  yaml:"qualifier"`
	Patterns  []string `mapstructure:"patterns"   yaml:"patterns"`
	Strict    bool     `mapstructure:"strict"     yaml:"strict"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		OutputDir: "descriptors",
		Marker:    analyze.DefaultDirective,
		Tag:       analyze.DefaultTagKey,
		Format:    string(emit.FormatLegacy),
		Qualifier: string(analyze.QualifierFull),
		Patterns:  []string{"./..."},
	}
}

// FlagKeys maps command-line flag names to config keys.
var FlagKeys = map[string]string{
	"out":       "output_dir",
	"marker":    "marker",
	"tag":       "tag",
	"format":    "format",
	"qualifier": "qualifier",
	"strict":    "strict",
}

// LoadOptions controls where configuration is read from.
type LoadOptions struct {
	// ConfigFile is an explicit config file; it must exist.
	ConfigFile string
	// SearchDir is searched for FileName when ConfigFile is empty. Defaults to ".".
	SearchDir string
	// Flags, when set, override file and environment values for changed flags.
	Flags *pflag.FlagSet
}

// Load builds the effective configuration and validates it.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()

	defaults := Default()
	v.SetDefault("output_dir", defaults.OutputDir)
	v.SetDefault("marker", defaults.Marker)
	v.SetDefault("tag", defaults.Tag)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("qualifier", defaults.Qualifier)
	v.SetDefault("patterns", defaults.Patterns)
	v.SetDefault("strict", defaults.Strict)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if err := readConfigFile(v, opts); err != nil {
		return nil, err
	}

	if opts.Flags != nil {
		for name, key := range FlagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func readConfigFile(v *viper.Viper, opts LoadOptions) error {
	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", opts.ConfigFile, err)
		}

		return nil
	}

	dir := opts.SearchDir
	if dir == "" {
		dir = "."
	}

	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return nil
}

// Validate checks that every value is usable.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.OutputDir) == "" {
		errs = append(errs, errors.New("output_dir must not be empty"))
	}

	if strings.TrimSpace(c.Marker) == "" {
		errs = append(errs, errors.New("marker must not be empty"))
	}

	if _, err := emit.ParseFormat(c.Format); err != nil {
		errs = append(errs, err)
	}

	if _, err := analyze.ParseQualifier(c.Qualifier); err != nil {
		errs = append(errs, err)
	}

	if len(c.Patterns) == 0 {
		errs = append(errs, errors.New("at least one package pattern is required"))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

// AnalyzeOptions returns the package loader options. Call Validate first.
func (c *Config) AnalyzeOptions(dir string) analyze.Options {
	qualifier, _ := analyze.ParseQualifier(c.Qualifier)

	return analyze.Options{
		Marker:    analyze.Marker{Directive: c.Marker, TagKey: c.Tag},
		Qualifier: qualifier,
		Dir:       dir,
	}
}

// EmitOptions returns the emitter options. Call Validate first.
func (c *Config) EmitOptions() emit.Options {
	format, _ := emit.ParseFormat(c.Format)

	return emit.Options{
		OutputDir: c.OutputDir,
		Format:    format,
	}
}

// Marshal serializes a Config to YAML.
func Marshal(c *Config) ([]byte, error) {
	return yaml.Marshal(c)
}

// WriteFile writes a Config to the given path.
func WriteFile(c *Config, path string) error {
	data, err := Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}
