package analyze

import (
	"fmt"
	"go/types"
	"strings"

	"shape-exporter/internal/common"
)

// Qualifier controls how package names appear in type descriptors.
type Qualifier string

const (
	// QualifierFull prints the full import path: "*shape-exporter/warehouse.Address".
	QualifierFull Qualifier = "full"
	// QualifierPackage prints the last path element: "*warehouse.Address".
	QualifierPackage Qualifier = "package"
)

// ParseQualifier converts a user supplied name into a Qualifier.
func ParseQualifier(s string) (Qualifier, error) {
	switch q := Qualifier(strings.ToLower(strings.TrimSpace(s))); q {
	case QualifierFull, QualifierPackage:
		return q, nil
	case "":
		return QualifierFull, nil
	default:
		return "", fmt.Errorf("unknown type qualifier %q (want %q or %q)", s, QualifierFull, QualifierPackage)
	}
}

// TypeStringer renders go/types types as descriptor strings.
type TypeStringer struct {
	qualifier types.Qualifier
}

// NewTypeStringer creates a TypeStringer for the given qualifier mode.
func NewTypeStringer(q Qualifier) *TypeStringer {
	s := &TypeStringer{}
	if q == QualifierPackage {
		s.qualifier = func(p *types.Package) string {
			return common.PkgAlias(p.Path())
		}
	}

	return s
}

// TypeString returns the canonical display string of t.
func (s *TypeStringer) TypeString(t types.Type) string {
	if t == nil {
		return "<nil>"
	}

	return types.TypeString(t, s.qualifier)
}

// embeddedName returns the implicit field name of an embedded type.
func embeddedName(t types.Type) string {
	if p, ok := t.(*types.Pointer); ok {
		t = p.Elem()
	}

	switch tt := t.(type) {
	case *types.Named:
		return tt.Obj().Name()
	case *types.Alias:
		return tt.Obj().Name()
	default:
		return types.TypeString(t, nil)
	}
}

// embeddedStruct returns the struct behind an embedded field type and the
// named type that declares it, or nils when the field does not embed a struct.
func embeddedStruct(t types.Type) (*types.Struct, *types.TypeName) {
	if p, ok := t.(*types.Pointer); ok {
		t = p.Elem()
	}

	t = types.Unalias(t)

	named, ok := t.(*types.Named)
	if !ok {
		return nil, nil
	}

	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return nil, nil
	}

	return st, named.Obj()
}
