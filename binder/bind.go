package binder

import (
	"strings"

	"github.com/adl-lang/adlc-go/adlast"
)

// Bind attaches every explicit annotation in raw to the AST node it
// targets, returning the bound Module0. On success, the module's sidecar
// explicit-annotation list is conceptually empty (spec.md §3.7): every
// annotation now lives in the annotations map of its target node.
//
// Every unresolved reference is collected before Bind returns its error
// (spec.md §7's recovery policy for UnresolvedExplicitAnnotations), rather
// than failing on the first one, mirroring the teacher's collect-then-fail
// pattern in internal/compiler/symbol_table.go.
func Bind(raw RawModule) (*adlast.Module0, error) {
	module0 := raw.Module0
	var unresolved []ExplicitAnnotationRef

	for _, ea := range raw.ExplicitAnnotations {
		target := findAnnotationsRef(ea.Refr, module0)
		if target == nil {
			unresolved = append(unresolved, ea.Refr)
			continue
		}
		(*target)[ea.ScopedName] = ea.Value
	}

	if len(unresolved) > 0 {
		return nil, &UnresolvedExplicitAnnotations{Unresolved: unresolved}
	}
	return module0, nil
}

// findAnnotationsRef locates the annotations map a reference targets. It
// returns nil when the reference names a node that does not exist (an
// unknown decl, a decl with no field of that name, or a field reference
// into a decl that isn't a Struct or Union).
func findAnnotationsRef(refr ExplicitAnnotationRef, module0 *adlast.Module0) *adlast.Annotations {
	switch refr.kind {
	case refKindModule:
		return &module0.Annotations
	case refKindDecl:
		decl, ok := module0.Decls[refr.declIdent]
		if !ok {
			return nil
		}
		return &decl.Annotations
	case refKindField:
		decl, ok := module0.Decls[refr.fieldDecl]
		if !ok {
			return nil
		}
		fields, hasFields := adlast.FieldsOf(decl.Type)
		if !hasFields {
			// Type aliases and newtypes carry no fields: a Field reference
			// into either always fails, regardless of what fieldIdent names.
			return nil
		}
		for _, f := range fields {
			if f.Name == refr.fieldIdent {
				return &f.Annotations
			}
		}
		return nil
	default:
		return nil
	}
}

// UnresolvedExplicitAnnotations is returned by Bind when one or more
// standalone annotation clauses named a target that does not exist. It
// carries every failing reference, not just the first.
type UnresolvedExplicitAnnotations struct {
	Unresolved []ExplicitAnnotationRef
}

func (e *UnresolvedExplicitAnnotations) Error() string {
	var b strings.Builder
	b.WriteString("unresolved explicit annotations: ")
	for i, r := range e.Unresolved {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(r.String())
	}
	return b.String()
}
