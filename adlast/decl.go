package adlast

import (
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/adl-lang/adlc-go/optional"
)

// Field is a single struct/union field. Field order within a Struct or
// Union is significant and preserved exactly as parsed; the Decls map a
// Module holds its declarations in is not ordered the same way (see
// Module below).
type Field[R any] struct {
	Name           Ident
	SerializedName optional.Optional[string]
	TypeExpr       TypeExpr[R]
	Default        *structpb.Value // nil means "no default"
	Annotations    Annotations
}

// DeclType is the tagged union of the four kinds a declaration's body can
// take. It is modelled the same way TypeRef is: an interface with an
// unexported marker method, implemented once per concrete, generic variant.
type DeclType[R any] interface {
	isDeclType()
}

// StructDeclType is a product type: an ordered list of fields. Fields are
// held by pointer so that the annotation binder (binder.Bind) can attach an
// explicit annotation to a field in place without reconstructing the
// containing decl.
type StructDeclType[R any] struct {
	TypeParams []Ident
	Fields     []*Field[R]
}

// UnionDeclType is a sum type over the same field shape as StructDeclType.
type UnionDeclType[R any] struct {
	TypeParams []Ident
	Fields     []*Field[R]
}

// TypeAliasDeclType names an existing type expression under a new name. It
// carries no fields, so annotation binder Field references into it always
// fail (spec.md §4.3).
type TypeAliasDeclType[R any] struct {
	TypeParams []Ident
	TypeExpr   TypeExpr[R]
}

// NewtypeDeclType is like TypeAliasDeclType but introduces a genuinely new,
// distinct type, optionally with a default value. It also carries no
// fields.
type NewtypeDeclType[R any] struct {
	TypeParams []Ident
	TypeExpr   TypeExpr[R]
	Default    *structpb.Value // nil means "no default"
}

func (StructDeclType[R]) isDeclType()     {}
func (UnionDeclType[R]) isDeclType()      {}
func (TypeAliasDeclType[R]) isDeclType()  {}
func (NewtypeDeclType[R]) isDeclType()    {}

// Decl is a single declaration: a struct, union, type alias or newtype,
// plus its own annotations.
type Decl[R any] struct {
	Name        Ident
	Version     optional.Optional[int64]
	Type        DeclType[R]
	Annotations Annotations
}

// Decl0 is a declaration as parsed, before resolution.
type Decl0 = Decl[ScopedName]

// Decl1 is a declaration after resolution.
type Decl1 = Decl[TypeRef]

// FieldsOf returns the field list of a decl body, or (nil, false) for type
// aliases and newtypes, which carry no fields. This is the single place
// that the annotation binder and any future field-shaped tooling should
// consult, rather than re-deriving the switch over DeclType variants.
func FieldsOf[R any](dt DeclType[R]) ([]*Field[R], bool) {
	switch d := dt.(type) {
	case StructDeclType[R]:
		return d.Fields, true
	case UnionDeclType[R]:
		return d.Fields, true
	default:
		return nil, false
	}
}
