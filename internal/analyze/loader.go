package analyze

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"slices"
	"strings"

	"golang.org/x/tools/go/packages"

	"shape-exporter/internal/model"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Options configures an Analyzer.
type Options struct {
	// Marker defaults to DefaultMarker when left zero.
	Marker    Marker
	Qualifier Qualifier
	// Dir is the working directory for package loading. Empty means the current directory.
	Dir string
}

// Analyzer loads Go packages and discovers marked elements.
type Analyzer struct {
	opts     Options
	stringer *TypeStringer
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(opts Options) *Analyzer {
	if opts.Marker == (Marker{}) {
		opts.Marker = DefaultMarker()
	}

	return &Analyzer{
		opts:     opts,
		stringer: NewTypeStringer(opts.Qualifier),
	}
}

// LoadPackages loads the specified packages and returns their Environment.
// Patterns are standard Go package patterns (e.g., "./...", "shape-exporter/store").
func (a *Analyzer) LoadPackages(patterns ...string) (*Environment, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  a.opts.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	slices.SortFunc(pkgs, func(x, y *packages.Package) int {
		return strings.Compare(x.PkgPath, y.PkgPath)
	})

	env := newEnvironment(a.stringer)
	for _, pkg := range pkgs {
		a.processPackage(env, pkg)
	}

	return env, nil
}

// processPackage registers the package's types and records its marked elements.
func (a *Analyzer) processPackage(env *Environment, pkg *packages.Package) {
	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		if tn, ok := scope.Lookup(name).(*types.TypeName); ok {
			env.decls[TypeID{PkgPath: pkg.PkgPath, Name: name}.String()] = tn
		}
	}

	for _, file := range pkg.Syntax {
		a.processFile(env, pkg, file)
	}
}

// processFile walks top-level declarations in source order.
func (a *Analyzer) processFile(env *Environment, pkg *packages.Package, file *ast.File) {
	// Struct literals that are the direct body of a package-level type.
	owned := make(map[*ast.StructType]string)

	for _, decl := range file.Decls {
		if gd, ok := decl.(*ast.GenDecl); ok && gd.Tok == token.TYPE {
			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				id := TypeID{PkgPath: pkg.PkgPath, Name: ts.Name.Name}.String()
				if st, ok := ts.Type.(*ast.StructType); ok {
					owned[st] = id
				}

				if a.typeSpecMarked(gd, ts) {
					env.marked = append(env.marked, model.Element{
						Kind: declarationKind(pkg.TypesInfo.Defs[ts.Name]),
						Name: id,
						Pos:  pkg.Fset.Position(ts.Pos()).String(),
					})
				}
			}
		}

		ast.Inspect(decl, func(n ast.Node) bool {
			if st, ok := n.(*ast.StructType); ok {
				a.processStruct(env, pkg, st, owned[st])
			}

			return true
		})
	}
}

// typeSpecMarked checks the TypeSpec's own doc comment and, for an ungrouped
// declaration, the doc comment of the enclosing GenDecl.
func (a *Analyzer) typeSpecMarked(gd *ast.GenDecl, ts *ast.TypeSpec) bool {
	if a.opts.Marker.InComments(ts.Doc) {
		return true
	}

	return !gd.Lparen.IsValid() && a.opts.Marker.InComments(gd.Doc)
}

// declarationKind classifies a marked type: only structs are declarations.
func declarationKind(obj types.Object) model.ElementKind {
	tn, ok := obj.(*types.TypeName)
	if !ok || tn.IsAlias() {
		return model.KindOther
	}

	if _, ok := tn.Type().Underlying().(*types.Struct); ok {
		return model.KindDeclaration
	}

	return model.KindOther
}

// processStruct records the marked fields of a struct literal. owner is
// empty for anonymous structs.
func (a *Analyzer) processStruct(env *Environment, pkg *packages.Package, st *ast.StructType, owner string) {
	if st.Fields == nil {
		return
	}

	for _, field := range st.Fields.List {
		if !a.opts.Marker.MarksField(field) {
			continue
		}

		typ := pkg.TypesInfo.TypeOf(field.Type)
		descriptor := a.stringer.TypeString(typ)

		if len(field.Names) == 0 {
			env.marked = append(env.marked, model.Element{
				Kind:  model.KindField,
				Name:  embeddedName(typ),
				Type:  descriptor,
				Owner: owner,
				Pos:   pkg.Fset.Position(field.Pos()).String(),
			})

			continue
		}

		for _, name := range field.Names {
			env.marked = append(env.marked, model.Element{
				Kind:  model.KindField,
				Name:  name.Name,
				Type:  descriptor,
				Owner: owner,
				Pos:   pkg.Fset.Position(name.Pos()).String(),
			})
		}
	}
}
