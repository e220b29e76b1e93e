// Package binder implements the annotation binder (spec.md §4.3): it takes
// a RawModule -- a parsed Module0 plus the standalone `annotation` clauses
// the parser deferred -- and attaches every explicit annotation to the
// exact AST node it targets, grounded on the original Rust
// processing/annotations.rs and the teacher's pattern of accumulating
// every failure before reporting (internal/compiler/symbol_table.go's
// collect()).
package binder

import (
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/adl-lang/adlc-go/adlast"
)

// RawModule is the parser's output: a Module0 plus the sidecar list of
// explicit annotation declarations that still need to be attached to their
// target nodes (spec.md §3.6).
type RawModule struct {
	Module0             *adlast.Module0
	ExplicitAnnotations []ExplicitAnnotation
}

// ExplicitAnnotation is one standalone `annotation` clause: a reference to
// its target node, the scoped name under which it should be recorded (the
// annotation's own type), and the JSON value attached to it.
type ExplicitAnnotation struct {
	Refr       ExplicitAnnotationRef
	ScopedName adlast.ScopedName
	Value      *structpb.Value
}

// ExplicitAnnotationRef is the tagged variant identifying what a standalone
// annotation clause targets: the module itself, a named declaration, or a
// named field within a named declaration.
type ExplicitAnnotationRef struct {
	declIdent  adlast.Ident
	fieldDecl  adlast.Ident
	fieldIdent adlast.Ident
	kind       explicitRefKind
}

type explicitRefKind uint8

const (
	refKindModule explicitRefKind = iota
	refKindDecl
	refKindField
)

func NewModuleRef() ExplicitAnnotationRef {
	return ExplicitAnnotationRef{kind: refKindModule}
}

func NewDeclRef(decl adlast.Ident) ExplicitAnnotationRef {
	return ExplicitAnnotationRef{kind: refKindDecl, declIdent: decl}
}

func NewFieldRef(decl, field adlast.Ident) ExplicitAnnotationRef {
	return ExplicitAnnotationRef{kind: refKindField, fieldDecl: decl, fieldIdent: field}
}

// String renders the reference the way the Rust original's Display impl
// does, for parity with upstream error messages: "<module>", "Decl", or
// "Decl::field".
func (r ExplicitAnnotationRef) String() string {
	switch r.kind {
	case refKindModule:
		return "<module>"
	case refKindDecl:
		return r.declIdent
	case refKindField:
		return r.fieldDecl + "::" + r.fieldIdent
	default:
		return "<unknown>"
	}
}
