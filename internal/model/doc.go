// Package model holds the host-independent shape model shared by the
// collector and the emitter.
//
// Key types:
//   - Element: one marked thing reported by the host environment
//   - Member: a named data field with its type descriptor
//   - Mapping: declaration identity -> ordered member list
package model
