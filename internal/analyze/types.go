package analyze

import (
	"go/ast"
	"reflect"
	"strconv"
	"strings"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "shape-exporter/store"
	Name    string // e.g., "Person"
}

// String returns the qualified identity, e.g. "shape-exporter/store.Person".
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Default marker settings.
const (
	DefaultDirective = "shape:export"
	DefaultTagKey    = "shape"
)

// Marker decides whether a declaration or field carries the marker.
type Marker struct {
	// Directive is the comment directive without the leading "//".
	Directive string
	// TagKey marks a field when present in its struct tag. Empty disables tags.
	TagKey string
}

// DefaultMarker returns the marker used when none is configured.
func DefaultMarker() Marker {
	return Marker{Directive: DefaultDirective, TagKey: DefaultTagKey}
}

// InComments reports whether any of the comment groups holds the directive.
func (m Marker) InComments(groups ...*ast.CommentGroup) bool {
	if m.Directive == "" {
		return false
	}

	for _, g := range groups {
		if g == nil {
			continue
		}

		for _, c := range g.List {
			text := strings.TrimSpace(strings.TrimPrefix(c.Text, "//"))
			if text == m.Directive || strings.HasPrefix(text, m.Directive+" ") {
				return true
			}
		}
	}

	return false
}

// InTag reports whether the raw struct tag literal carries the tag key.
func (m Marker) InTag(tag *ast.BasicLit) bool {
	if m.TagKey == "" || tag == nil {
		return false
	}

	raw, err := strconv.Unquote(tag.Value)
	if err != nil {
		return false
	}

	_, ok := reflect.StructTag(raw).Lookup(m.TagKey)

	return ok
}

// MarksField reports whether a struct field is marked.
func (m Marker) MarksField(f *ast.Field) bool {
	return m.InComments(f.Doc, f.Comment) || m.InTag(f.Tag)
}
