package analyze

import (
	"go/types"

	"shape-exporter/internal/model"
)

// Environment is the result of one load: the marked elements in source
// order and every package-level type of the loaded packages.
type Environment struct {
	marked   []model.Element
	decls    map[string]*types.TypeName
	stringer *TypeStringer
}

func newEnvironment(stringer *TypeStringer) *Environment {
	return &Environment{
		decls:    make(map[string]*types.TypeName),
		stringer: stringer,
	}
}

// MarkedElements returns every marked declaration and field.
func (e *Environment) MarkedElements() []model.Element {
	return e.marked
}

// Lookup returns the type declared under the given identity.
func (e *Environment) Lookup(decl string) (*types.TypeName, bool) {
	tn, ok := e.decls[decl]
	return tn, ok
}

// AllMembers returns the fields of decl, including fields promoted through
// embedded structs, followed by the methods of *decl.
func (e *Environment) AllMembers(decl string) []model.Element {
	tn, ok := e.decls[decl]
	if !ok {
		return nil
	}

	var members []model.Element

	if st, ok := tn.Type().Underlying().(*types.Struct); ok {
		members = append(members, e.promotedFields(decl, tn, st)...)
	}

	mset := types.NewMethodSet(types.NewPointer(tn.Type()))
	for i := range mset.Len() {
		fn := mset.At(i).Obj()
		members = append(members, model.Element{
			Kind:  model.KindMethod,
			Name:  fn.Name(),
			Type:  e.stringer.TypeString(fn.Type()),
			Owner: decl,
		})
	}

	return members
}

type embedding struct {
	owner string
	st    *types.Struct
	// multiple is set when the struct is reached more than once at the
	// same depth; all of its fields are then ambiguous.
	multiple bool
}

// promotedFields walks the embedding tree breadth first.
func (e *Environment) promotedFields(decl string, root *types.TypeName, st *types.Struct) []model.Element {
	var out []model.Element

	seen := make(map[string]bool)
	visited := map[*types.TypeName]bool{root: true}
	level := []*embedding{{owner: decl, st: st}}

	for depth := 0; len(level) > 0; depth++ {
		var (
			candidates []model.Element
			next       []*embedding
		)

		counts := make(map[string]int)
		reached := make(map[*types.TypeName]*embedding)

		for _, emb := range level {
			for i := range emb.st.NumFields() {
				f := emb.st.Field(i)

				// Unexported fields of another package are not selectable, but an
				// unexported embedded struct still promotes its exported fields.
				selectable := depth == 0 || f.Exported() || f.Pkg() == root.Pkg()
				if selectable {
					counts[f.Name()]++
					if emb.multiple {
						counts[f.Name()]++
					}
				}

				if f.Embedded() {
					if inner, tn := embeddedStruct(f.Type()); inner != nil {
						switch prev, ok := reached[tn]; {
						case visited[tn]:
						case ok:
							prev.multiple = true
						default:
							nested := &embedding{
								owner:    TypeID{PkgPath: pkgPath(tn), Name: tn.Name()}.String(),
								st:       inner,
								multiple: emb.multiple,
							}
							reached[tn] = nested
							next = append(next, nested)
						}

						continue
					}
				}

				if !selectable {
					continue
				}

				candidates = append(candidates, model.Element{
					Kind:  model.KindField,
					Name:  f.Name(),
					Type:  e.stringer.TypeString(f.Type()),
					Owner: emb.owner,
				})
			}
		}

		for _, c := range candidates {
			if seen[c.Name] || counts[c.Name] > 1 {
				continue
			}

			out = append(out, c)
		}

		for name := range counts {
			seen[name] = true
		}

		for tn := range reached {
			visited[tn] = true
		}

		level = next
	}

	return out
}

func pkgPath(tn *types.TypeName) string {
	if tn.Pkg() == nil {
		return ""
	}

	return tn.Pkg().Path()
}
