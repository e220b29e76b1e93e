// Package adlast holds the AST types shared by both the raw (pre-resolution)
// and resolved (post-resolution) forms of an ADL module, adapted from the
// teacher's internal/compiler descriptor types and generalised with Go
// generics the way the original Rust adlast crate generalises over TypeExpr<T>.
package adlast

// Ident is a non-empty identifier string. The parser guarantees
// non-emptiness; this package does not re-validate it.
type Ident = string

// ModuleName is a dotted sequence of idents, e.g. "sys.annotations". It is
// kept as a plain string: dotting/splitting is a parser/printer concern, not
// something the resolver needs to decompose.
type ModuleName = string

// ScopedName is a (module, name) pair. An empty ModuleName means
// "unqualified / to be resolved". It is a plain comparable struct so it can
// be used directly as a map key, including as an Annotations key, where
// equality (and therefore hashing) naturally covers the full pair.
type ScopedName struct {
	ModuleName ModuleName
	Name       Ident
}

// NewScopedName builds a ScopedName from its parts. An empty moduleName
// denotes an unqualified reference.
func NewScopedName(moduleName ModuleName, name Ident) ScopedName {
	return ScopedName{ModuleName: moduleName, Name: name}
}

// Unqualified reports whether sn has no module component, i.e. is a bare
// identifier awaiting resolution.
func (sn ScopedName) Unqualified() bool {
	return sn.ModuleName == ""
}

func (sn ScopedName) String() string {
	if sn.ModuleName == "" {
		return sn.Name
	}
	return sn.ModuleName + "." + sn.Name
}
