package adlast

// Import is the tagged variant of an import clause: either "import
// everything declared in this module" or "import exactly one decl by
// scoped name". The zero value is invalid; use NewModuleImport or
// NewScopedImport.
type Import struct {
	moduleName ModuleName // set when kind == importKindModule
	scopedName ScopedName // set when kind == importKindScoped
	kind       importKind
}

type importKind uint8

const (
	importKindModule importKind = iota
	importKindScoped
)

func NewModuleImport(m ModuleName) Import {
	return Import{kind: importKindModule, moduleName: m}
}

func NewScopedImport(sn ScopedName) Import {
	return Import{kind: importKindScoped, scopedName: sn}
}

// IsModuleName reports whether this import is the "import everything from
// module m" form, returning m.
func (i Import) IsModuleName() (ModuleName, bool) {
	if i.kind == importKindModule {
		return i.moduleName, true
	}
	return "", false
}

// IsScopedName reports whether this import is the "import one decl by
// scoped name" form, returning the scoped name.
func (i Import) IsScopedName() (ScopedName, bool) {
	if i.kind == importKindScoped {
		return i.scopedName, true
	}
	return ScopedName{}, false
}

// ReferencedModule returns the module name this import clause refers to,
// regardless of which form it takes -- useful for cross-module reference
// discovery (spec.md §4.6 step 6).
func (i Import) ReferencedModule() ModuleName {
	if i.kind == importKindModule {
		return i.moduleName
	}
	return i.scopedName.ModuleName
}

func (i Import) Equal(other Import) bool {
	return i.kind == other.kind && i.moduleName == other.moduleName && i.scopedName == other.scopedName
}

// Module is the full AST of a module, generic over the type-reference
// representation the same way Decl and TypeExpr are. Decls is keyed by
// declaration name (each key equal to its value's Name, per spec.md §3.7);
// map iteration order is not semantically observable, unlike the ordered
// Imports slice and each decl's ordered Fields.
type Module[R any] struct {
	Name        ModuleName
	Imports     []Import
	Decls       map[Ident]*Decl[R]
	Annotations Annotations
}

// Module0 is a module as parsed and annotation-bound, before name
// resolution: every type reference is an unresolved ScopedName.
type Module0 = Module[ScopedName]

// Module1 is a module after name resolution: every type reference has been
// classified into a TypeRef.
type Module1 = Module[TypeRef]

// NewModule0 builds an empty Module0 ready to have decls inserted into it.
func NewModule0(name ModuleName) *Module0 {
	return &Module0{
		Name:        name,
		Decls:       make(map[Ident]*Decl0),
		Annotations: NewAnnotations(),
	}
}
