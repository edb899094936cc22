// Package processor runs one round: collect the marked shapes from an
// environment and emit their descriptors.
//
// Process never fails. Collection notes and per-descriptor failures are
// logged and returned in the Summary for the caller to inspect.
package processor
