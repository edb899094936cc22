// Package analyze loads Go packages and exposes the marked declarations
// and fields they contain.
//
// It uses golang.org/x/tools/go/packages with AST and go/types. A marker
// is a comment directive (default "//shape:export") in the doc comment of
// a package-level type or in the doc/line comment of a struct field, or a
// struct tag key (default "shape") on a field.
//
// Key types:
//   - TypeID: package import path + type name, the declaration identity
//   - Marker: directive and tag key that mark an element
//   - Environment: the marked elements of one load plus member-set queries
//
// Member sets follow Go's promotion rules for embedded structs: own fields
// first, then promoted fields by embedding depth. A shallower name hides
// deeper ones and a name that appears twice at the same depth is dropped.
// Embedded struct fields are expanded into their promoted fields instead of
// being listed themselves.
package analyze
