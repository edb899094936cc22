// Package diagnostic provides structured warnings, errors, and
// informational notes produced while collecting and emitting shapes.
//
// Key capabilities:
//   - Marked fields whose owner cannot be resolved
//   - Ignored element kinds
//   - Inherited-member expansion notes
//   - Per-descriptor write failures
package diagnostic
