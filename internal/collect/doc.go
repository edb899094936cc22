// Package collect partitions marked elements into a declaration -> members
// Mapping.
//
// Traversal order of the host is unspecified: a declaration may be reported
// before or after its members, or members may be marked while the
// declaration is not. Collection therefore runs in two phases:
//
//  1. a single pass over the marked elements that creates entries for
//     declarations and appends fields to their owner's entry;
//  2. a repair pass that expands every entry left empty into the full
//     (own + promoted) field set reported by the host.
//
// The collector only depends on the Environment interface, never on
// go/types or go/packages.
package collect
