package model

// Mapping associates declaration identities with their member lists.
// Keys are kept in the order they were first seen.
type Mapping struct {
	keys    []string
	entries map[string][]Member
}

// NewMapping creates an empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{
		entries: make(map[string][]Member),
	}
}

// Ensure creates an empty entry for id unless one already exists.
func (m *Mapping) Ensure(id string) {
	if _, ok := m.entries[id]; ok {
		return
	}

	m.keys = append(m.keys, id)
	m.entries[id] = []Member{}
}

// Append adds a member to the entry for id, creating the entry if needed.
func (m *Mapping) Append(id string, member Member) {
	m.Ensure(id)
	m.entries[id] = append(m.entries[id], member)
}

// Replace sets the member list of an existing entry.
func (m *Mapping) Replace(id string, members []Member) {
	m.Ensure(id)
	m.entries[id] = members
}

// Members returns the member list for id and whether the entry exists.
func (m *Mapping) Members(id string) ([]Member, bool) {
	members, ok := m.entries[id]
	return members, ok
}

// Keys returns the identities in discovery order.
func (m *Mapping) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	return len(m.keys)
}
