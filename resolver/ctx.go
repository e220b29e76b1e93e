package resolver

import (
	"github.com/adl-lang/adlc-go/adlast"
	"github.com/adl-lang/adlc-go/primitives"
)

// resolveCtx is the immutable, per-decl resolution context: a borrow of the
// already-resolved modules (via the driver), the current module's own
// (unresolved) AST, its expanded-imports table, and the set of type
// parameters currently in lexical scope. Splitting this out from the
// mutating driver is exactly the split spec.md §9's design notes call for:
// "an immutable already-resolved snapshot passed by borrow into the
// per-decl resolver, and a mutable driver".
type resolveCtx struct {
	resolver        *Resolver
	module0         *adlast.Module0
	expandedImports map[adlast.Ident]adlast.ScopedName
	typeParams      map[adlast.Ident]bool
}

// withTypeParams returns a new context scoped to decl, replacing the
// current type-parameter set -- declarations do not nest, so each decl's
// body is resolved under a single, fresh scope rather than one accumulated
// across an enclosing decl.
func (c resolveCtx) withTypeParams(params []adlast.Ident) resolveCtx {
	tp := make(map[adlast.Ident]bool, len(params))
	for _, p := range params {
		tp[p] = true
	}
	c.typeParams = tp
	return c
}

// resolveTypeRef classifies an unqualified-or-qualified scoped name
// according to spec.md §4.5's exact decision procedure: type parameters
// shadow primitives shadow locals shadow imports.
func (c resolveCtx) resolveTypeRef(sn adlast.ScopedName) (adlast.TypeRef, error) {
	if sn.ModuleName == "" {
		name := sn.Name
		if c.typeParams[name] {
			return adlast.TypeParamRef{Ident: name}, nil
		}
		if p, ok := primitives.FromIdent(name); ok {
			return adlast.PrimitiveRef{Prim: p}, nil
		}
		if _, ok := c.module0.Decls[name]; ok {
			return adlast.LocalNameRef{Ident: name}, nil
		}
		if resolved, ok := c.expandedImports[name]; ok {
			return adlast.ScopedNameRef{ScopedName: resolved}, nil
		}
		return nil, ErrLocalNotFound(name)
	}

	m1, ok := c.resolver.GetModule(sn.ModuleName)
	if !ok {
		return nil, ErrModuleNotFound(sn.ModuleName)
	}
	if _, ok := m1.Decls[sn.Name]; !ok {
		return nil, ErrDeclNotFound(sn)
	}
	return adlast.ScopedNameRef{ScopedName: sn}, nil
}

func resolveTypeExpr(ctx resolveCtx, te0 adlast.TypeExpr0) (adlast.TypeExpr1, error) {
	ref, err := ctx.resolveTypeRef(te0.TypeRef)
	if err != nil {
		return adlast.TypeExpr1{}, err
	}
	params := make([]adlast.TypeExpr1, 0, len(te0.Parameters))
	for _, p := range te0.Parameters {
		p1, err := resolveTypeExpr(ctx, p)
		if err != nil {
			return adlast.TypeExpr1{}, err
		}
		params = append(params, p1)
	}
	return adlast.TypeExpr1{TypeRef: ref, Parameters: params}, nil
}

// resolveAnnotations resolves every annotation key to a fully-qualified
// scoped name. Annotation maps are not inside a generic scope (spec.md
// §4.5): keys are resolved with the type-parameter set cleared, so a field's
// annotations ignore the type parameters of its enclosing decl.
func resolveAnnotations(ctx resolveCtx, annotations0 adlast.Annotations) (adlast.Annotations, error) {
	ctx = ctx.withTypeParams(nil)
	out := adlast.NewAnnotations()
	for sn0, value := range annotations0 {
		ref, err := ctx.resolveTypeRef(sn0)
		if err != nil {
			return nil, err
		}
		scoped, ok := ref.(adlast.ScopedNameRef)
		if !ok {
			return nil, ErrNoDeclForAnnotation(sn0)
		}
		out[scoped.ScopedName] = value
	}
	return out, nil
}

func resolveField(ctx resolveCtx, field0 *adlast.Field[adlast.ScopedName]) (*adlast.Field[adlast.TypeRef], error) {
	te1, err := resolveTypeExpr(ctx, field0.TypeExpr)
	if err != nil {
		return nil, err
	}
	annotations1, err := resolveAnnotations(ctx, field0.Annotations)
	if err != nil {
		return nil, err
	}
	return &adlast.Field[adlast.TypeRef]{
		Name:           field0.Name,
		SerializedName: field0.SerializedName,
		TypeExpr:       te1,
		Default:        field0.Default,
		Annotations:    annotations1,
	}, nil
}

func resolveFields(ctx resolveCtx, fields0 []*adlast.Field[adlast.ScopedName]) ([]*adlast.Field[adlast.TypeRef], error) {
	out := make([]*adlast.Field[adlast.TypeRef], 0, len(fields0))
	for _, f0 := range fields0 {
		f1, err := resolveField(ctx, f0)
		if err != nil {
			return nil, err
		}
		out = append(out, f1)
	}
	return out, nil
}

// resolveDeclType resolves a decl's body. Field type expressions (struct,
// union) are resolved under a fresh scope bound to that decl's own
// type-parameter list; the decl's own annotations are always resolved
// under the base ctx (resolveDecl passes the unscoped ctx separately), not
// this decl-scoped one.
func resolveDeclType(ctx resolveCtx, dt0 adlast.DeclType[adlast.ScopedName]) (adlast.DeclType[adlast.TypeRef], error) {
	switch d := dt0.(type) {
	case adlast.StructDeclType[adlast.ScopedName]:
		scoped := ctx.withTypeParams(d.TypeParams)
		fields1, err := resolveFields(scoped, d.Fields)
		if err != nil {
			return nil, err
		}
		return adlast.StructDeclType[adlast.TypeRef]{TypeParams: d.TypeParams, Fields: fields1}, nil

	case adlast.UnionDeclType[adlast.ScopedName]:
		scoped := ctx.withTypeParams(d.TypeParams)
		fields1, err := resolveFields(scoped, d.Fields)
		if err != nil {
			return nil, err
		}
		return adlast.UnionDeclType[adlast.TypeRef]{TypeParams: d.TypeParams, Fields: fields1}, nil

	case adlast.TypeAliasDeclType[adlast.ScopedName]:
		scoped := ctx.withTypeParams(d.TypeParams)
		te1, err := resolveTypeExpr(scoped, d.TypeExpr)
		if err != nil {
			return nil, err
		}
		return adlast.TypeAliasDeclType[adlast.TypeRef]{TypeParams: d.TypeParams, TypeExpr: te1}, nil

	case adlast.NewtypeDeclType[adlast.ScopedName]:
		scoped := ctx.withTypeParams(d.TypeParams)
		te1, err := resolveTypeExpr(scoped, d.TypeExpr)
		if err != nil {
			return nil, err
		}
		return adlast.NewtypeDeclType[adlast.TypeRef]{TypeParams: d.TypeParams, TypeExpr: te1, Default: d.Default}, nil

	default:
		return nil, &Error{code: "InvalidDeclType", message: "unknown decl type variant"}
	}
}

func resolveDecl(ctx resolveCtx, decl0 *adlast.Decl0) (*adlast.Decl1, error) {
	dtype1, err := resolveDeclType(ctx, decl0.Type)
	if err != nil {
		return nil, err
	}
	annotations1, err := resolveAnnotations(ctx, decl0.Annotations)
	if err != nil {
		return nil, err
	}
	return &adlast.Decl1{
		Name:        decl0.Name,
		Version:     decl0.Version,
		Type:        dtype1,
		Annotations: annotations1,
	}, nil
}

func resolveModule(ctx resolveCtx, module0 *adlast.Module0) (*adlast.Module1, error) {
	decls1 := make(map[adlast.Ident]*adlast.Decl1, len(module0.Decls))
	for name, decl0 := range module0.Decls {
		decl1, err := resolveDecl(ctx, decl0)
		if err != nil {
			return nil, err
		}
		decls1[name] = decl1
	}
	annotations1, err := resolveAnnotations(ctx, module0.Annotations)
	if err != nil {
		return nil, err
	}
	return &adlast.Module1{
		Name:        module0.Name,
		Imports:     module0.Imports,
		Decls:       decls1,
		Annotations: annotations1,
	}, nil
}
