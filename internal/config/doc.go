// Package config loads the shape-exporter configuration.
//
// Values are layered with viper, lowest priority first: built-in
// defaults, a YAML config file, SHAPE_EXPORTER_* environment variables,
// command-line flags.
//
//	output_dir: descriptors
//	marker: shape:export
//	tag: shape
//	format: legacy      # legacy | json | yaml
//	qualifier: full     # full | package
//	patterns:
//	  - ./...
//	strict: false
package config
