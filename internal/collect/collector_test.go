package collect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shape-exporter/internal/diagnostic"
	"shape-exporter/internal/model"
)

type fakeEnv struct {
	marked  []model.Element
	members map[string][]model.Element
	queried []string
}

func (f *fakeEnv) MarkedElements() []model.Element {
	return f.marked
}

func (f *fakeEnv) AllMembers(decl string) []model.Element {
	f.queried = append(f.queried, decl)
	return f.members[decl]
}

func decl(id string) model.Element {
	return model.Element{Kind: model.KindDeclaration, Name: id}
}

func field(owner, name, typ string) model.Element {
	return model.Element{Kind: model.KindField, Owner: owner, Name: name, Type: typ}
}

func method(owner, name string) model.Element {
	return model.Element{Kind: model.KindMethod, Owner: owner, Name: name, Type: "func()"}
}

func members(t *testing.T, m *model.Mapping, id string) []model.Member {
	t.Helper()

	got, ok := m.Members(id)
	require.True(t, ok, "mapping should contain %s", id)

	return got
}

func TestCollect_DeclarationBeforeMembers(t *testing.T) {
	env := &fakeEnv{marked: []model.Element{
		decl("com.example.Person"),
		field("com.example.Person", "name", "java.lang.String"),
		field("com.example.Person", "age", "int"),
	}}

	mapping, diags := Collect(env)

	assert.Equal(t, []model.Member{
		{Name: "name", Type: "java.lang.String"},
		{Name: "age", Type: "int"},
	}, members(t, mapping, "com.example.Person"))
	assert.Empty(t, env.queried, "explicit members must not be expanded")
	assert.True(t, diags.IsValid())
}

func TestCollect_MembersBeforeDeclaration(t *testing.T) {
	env := &fakeEnv{marked: []model.Element{
		field("com.example.Person", "name", "java.lang.String"),
		field("com.example.Person", "age", "int"),
		decl("com.example.Person"),
	}}

	mapping, _ := Collect(env)

	require.Equal(t, 1, mapping.Len())
	assert.Equal(t, []model.Member{
		{Name: "name", Type: "java.lang.String"},
		{Name: "age", Type: "int"},
	}, members(t, mapping, "com.example.Person"))
}

func TestCollect_MemberWithoutMarkedOwner(t *testing.T) {
	env := &fakeEnv{marked: []model.Element{
		field("a.Unmarked", "X", "int"),
	}}

	mapping, _ := Collect(env)

	assert.Equal(t, []string{"a.Unmarked"}, mapping.Keys())
	assert.Equal(t, []model.Member{{Name: "X", Type: "int"}}, members(t, mapping, "a.Unmarked"))
}

func TestCollect_ExpandsInheritedFields(t *testing.T) {
	env := &fakeEnv{
		marked: []model.Element{decl("com.example.Empty")},
		members: map[string][]model.Element{
			"com.example.Empty": {
				field("com.example.Base", "id", "long"),
				method("com.example.Empty", "toString"),
			},
		},
	}

	mapping, diags := Collect(env)

	assert.Equal(t, []model.Member{{Name: "id", Type: "long"}}, members(t, mapping, "com.example.Empty"))
	require.Len(t, diags.Infos, 1)
	assert.Equal(t, diagnostic.CodeExpandedMembers, diags.Infos[0].Code)
}

func TestCollect_EmptyDeclarationStaysEmpty(t *testing.T) {
	env := &fakeEnv{
		marked: []model.Element{decl("a.Nothing")},
		members: map[string][]model.Element{
			"a.Nothing": {method("a.Nothing", "String")},
		},
	}

	mapping, _ := Collect(env)

	got := members(t, mapping, "a.Nothing")
	assert.Empty(t, got)
	assert.Equal(t, []string{"a.Nothing"}, env.queried)
}

func TestCollect_UnknownDeclarationInRepair(t *testing.T) {
	env := &fakeEnv{marked: []model.Element{decl("a.Ghost")}}

	mapping, _ := Collect(env)

	assert.Empty(t, members(t, mapping, "a.Ghost"))
}

func TestCollect_IgnoresUnrecognizedKinds(t *testing.T) {
	env := &fakeEnv{marked: []model.Element{
		{Kind: model.KindOther, Name: "a.Status"},
		method("a.B", "Do"),
	}}

	mapping, diags := Collect(env)

	assert.Zero(t, mapping.Len())
	assert.Len(t, diags.Infos, 2)
	assert.True(t, diags.IsValid())
}

func TestCollect_UnresolvedOwnerSkipped(t *testing.T) {
	env := &fakeEnv{marked: []model.Element{
		decl("a.B"),
		field("", "Inner", "int"),
		field("a.B", "X", "string"),
	}}

	mapping, diags := Collect(env)

	assert.Equal(t, []string{"a.B"}, mapping.Keys())
	assert.Equal(t, []model.Member{{Name: "X", Type: "string"}}, members(t, mapping, "a.B"))
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, diagnostic.CodeUnresolvedOwner, diags.Warnings[0].Code)
	assert.Equal(t, "Inner", diags.Warnings[0].Member)
}

func TestCollect_MixedDeclarations(t *testing.T) {
	env := &fakeEnv{
		marked: []model.Element{
			field("a.Explicit", "A", "int"),
			decl("a.Implicit"),
			decl("a.Explicit"),
			field("a.Explicit", "B", "bool"),
		},
		members: map[string][]model.Element{
			"a.Explicit": {field("a.Explicit", "A", "int"), field("a.Explicit", "B", "bool"), field("a.Explicit", "C", "byte")},
			"a.Implicit": {field("a.Implicit", "P", "float64"), field("a.Implicit", "Q", "string")},
		},
	}

	mapping, _ := Collect(env)

	assert.Equal(t, []string{"a.Explicit", "a.Implicit"}, mapping.Keys())
	assert.Equal(t, []model.Member{{Name: "A", Type: "int"}, {Name: "B", Type: "bool"}}, members(t, mapping, "a.Explicit"))
	assert.Equal(t, []model.Member{{Name: "P", Type: "float64"}, {Name: "Q", Type: "string"}}, members(t, mapping, "a.Implicit"))
	assert.Equal(t, []string{"a.Implicit"}, env.queried)
}

func TestFieldsOf(t *testing.T) {
	got := FieldsOf([]model.Element{
		field("a.B", "X", "int"),
		method("a.B", "Do"),
		{Kind: model.KindOther, Name: "junk"},
		field("a.B", "Y", "string"),
	})

	assert.Equal(t, []model.Member{{Name: "X", Type: "int"}, {Name: "Y", Type: "string"}}, got)
	assert.Nil(t, FieldsOf(nil))
}
