package adlast

import "github.com/adl-lang/adlc-go/primitives"

// TypeRef is the resolved classification of a type reference, one of
// Primitive, TypeParam, LocalName or ScopedName. It is modelled as a small
// interface with an unexported marker method, the same oneof-by-interface
// shape the teacher uses for proto.TypeSpecifier's Reference field.
type TypeRef interface {
	isTypeRef()
}

// PrimitiveRef classifies a reference as one of ADL's built-in types.
type PrimitiveRef struct {
	Prim primitives.Prim
}

// TypeParamRef classifies a reference as a type parameter bound in the
// enclosing declaration's generic parameter list.
type TypeParamRef struct {
	Ident Ident
}

// LocalNameRef classifies a reference as a declaration in the current
// module.
type LocalNameRef struct {
	Ident Ident
}

// ScopedNameRef classifies a reference as a fully-qualified name in a
// (possibly the current) loaded module. Unlike the other three variants,
// this one also appears as the *unresolved* form of a type reference
// (TypeExpr0's TypeRef is always conceptually a ScopedName awaiting
// classification); see TypeExpr0 below.
type ScopedNameRef struct {
	ScopedName ScopedName
}

func (PrimitiveRef) isTypeRef()   {}
func (TypeParamRef) isTypeRef()   {}
func (LocalNameRef) isTypeRef()   {}
func (ScopedNameRef) isTypeRef()  {}

// TypeExpr is a type-expression tree: one type reference at the root plus
// an ordered list of type-expression children (the parameters of a generic
// application). R is the representation of the root reference, which
// differs between the raw and resolved ASTs -- this mirrors the original
// Rust TypeExpr<T> and is exercised here with Go generics the same way the
// teacher's own internal/optional.Optional[T] generalises over a payload
// type.
//
// Arity of a generic application is never checked here; that is left to a
// later type-checking pass outside this module's scope.
type TypeExpr[R any] struct {
	TypeRef    R
	Parameters []TypeExpr[R]
}

// TypeExpr0 is a type expression straight out of the parser: its reference
// is an unresolved ScopedName (empty ModuleName meaning "not yet
// classified").
type TypeExpr0 = TypeExpr[ScopedName]

// TypeExpr1 is a type expression after resolution: its reference has been
// classified into one of the four TypeRef variants.
type TypeExpr1 = TypeExpr[TypeRef]
