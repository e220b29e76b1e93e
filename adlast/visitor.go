package adlast

// Consumer is the read-only AST visitor contract: one callback for every
// type reference encountered in a type expression, one for every
// annotation key. It is parameterised over the type-reference
// representation so the same Walk* functions traverse both the raw
// (TypeExpr0) and resolved (TypeExpr1) ASTs, per spec.md §4.2's visitor
// polymorphism note and the teacher's internal/compiler/walk.go.
//
// Implementations must not mutate the AST; Walk* only ever hands out
// read-only values.
type Consumer[R any] interface {
	ConsumeTypeRef(ref R)
	ConsumeScopedName(sn ScopedName)
}

// WalkModule visits a module's own annotations, then every declaration (in
// unspecified order, since Decls is a map). Import clauses are not type
// expressions or annotations and are not visited here; callers that need
// the modules referenced by imports should consult Module.Imports
// directly.
func WalkModule[R any](m *Module[R], c Consumer[R]) {
	WalkAnnotations(m.Annotations, c)
	for _, decl := range m.Decls {
		WalkDecl(decl, c)
	}
}

// WalkDecl visits a declaration's own annotations, then its body: for
// Struct/Union, each field in declared order; for TypeAlias/Newtype, the
// aliased type expression.
func WalkDecl[R any](decl *Decl[R], c Consumer[R]) {
	WalkAnnotations(decl.Annotations, c)
	switch d := decl.Type.(type) {
	case StructDeclType[R]:
		WalkFields(d.Fields, c)
	case UnionDeclType[R]:
		WalkFields(d.Fields, c)
	case TypeAliasDeclType[R]:
		WalkTypeExpr(d.TypeExpr, c)
	case NewtypeDeclType[R]:
		WalkTypeExpr(d.TypeExpr, c)
	}
}

// WalkFields visits each field in order.
func WalkFields[R any](fields []*Field[R], c Consumer[R]) {
	for _, f := range fields {
		WalkField(f, c)
	}
}

// WalkField visits a field's annotations, then its type expression.
func WalkField[R any](field *Field[R], c Consumer[R]) {
	WalkAnnotations(field.Annotations, c)
	WalkTypeExpr(field.TypeExpr, c)
}

// WalkAnnotations visits every annotation key attached to a node. Values
// are not visited; they are opaque JSON as far as the visitor is
// concerned.
func WalkAnnotations[R any](annotations Annotations, c Consumer[R]) {
	for sn := range annotations {
		c.ConsumeScopedName(sn)
	}
}

// WalkTypeExpr visits a type expression's own reference, then recurses
// into its parameters (the children of a generic application).
func WalkTypeExpr[R any](te TypeExpr[R], c Consumer[R]) {
	c.ConsumeTypeRef(te.TypeRef)
	for _, p := range te.Parameters {
		WalkTypeExpr(p, c)
	}
}
