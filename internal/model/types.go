package model

//go:generate go tool stringer -type=ElementKind -trimprefix=Kind -output=elementkind_string.go

// ElementKind classifies an element reported by the host environment.
type ElementKind int

const (
	KindOther       ElementKind = iota // anything the collector does not recognize
	KindDeclaration                    // a named struct type
	KindField                          // a struct field
	KindMethod                         // a method of a declaration
)

// Element is a single declaration or member as reported by the host.
type Element struct {
	Kind ElementKind
	// Name is the simple name for members, the qualified identity for declarations.
	Name string
	// Type is the canonical display string of the member type. Empty for declarations.
	Type string
	// Owner is the identity of the enclosing declaration, empty when it cannot be resolved.
	Owner string
	// Pos is the source position, used only in diagnostics.
	Pos string
}

// IsDeclaration reports whether e is a declaration.
func (e Element) IsDeclaration() bool {
	return e.Kind == KindDeclaration
}

// IsField reports whether e is a field-like member.
func (e Element) IsField() bool {
	return e.Kind == KindField
}

// Member returns the member view of a field element.
func (e Element) Member() Member {
	return Member{Name: e.Name, Type: e.Type}
}

// Member is a named data field of a declaration.
type Member struct {
	Name string
	Type string
}

// String returns "name:type".
func (m Member) String() string {
	return m.Name + ":" + m.Type
}
