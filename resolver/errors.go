// Package resolver implements the reference resolver and module-resolution
// driver (spec.md §4.5-4.6), grounded on the original Rust
// processing/resolver.rs, adapted into the single-threaded, synchronous
// shape spec.md §5 requires (no sync.RWMutex symbol table or goroutine fan
// out the way the teacher's internal/compiler/compiler.go and
// symbol_table.go use for its multi-file, concurrent build).
package resolver

import (
	"fmt"

	"github.com/adl-lang/adlc-go/adlast"
)

// Error is the common shape of every resolver error kind: a stable code
// (for programmatic matching, the way the teacher's exc.Exception exposes
// Code()) plus a human-readable message, and an optional wrapped cause.
type Error struct {
	code    string
	message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Code() string { return e.code }
func (e *Error) Unwrap() error { return e.cause }

const (
	CodeLocalNotFound       = "LocalNotFound"
	CodeModuleNotFound      = "ModuleNotFound"
	CodeDeclNotFound        = "DeclNotFound"
	CodeCircularModules     = "CircularModules"
	CodeLoadFailed          = "LoadFailed"
	CodeNoDeclForAnnotation = "NoDeclForAnnotation"
)

// ErrLocalNotFound reports that an unqualified name matched none of
// {type-param, primitive, local, import}.
func ErrLocalNotFound(ident adlast.Ident) error {
	return &Error{code: CodeLocalNotFound, message: fmt.Sprintf("local name not found: %s", ident)}
}

// ErrModuleNotFound reports that the loader returned no data for a
// referenced module, or that a qualified reference named a module that is
// not (yet) in the resolver's state.
func ErrModuleNotFound(name adlast.ModuleName) error {
	return &Error{code: CodeModuleNotFound, message: fmt.Sprintf("module not found: %s", name)}
}

// ErrDeclNotFound reports that a qualified reference named a module, but
// not a decl within it.
func ErrDeclNotFound(sn adlast.ScopedName) error {
	return &Error{code: CodeDeclNotFound, message: fmt.Sprintf("decl not found: %s", sn.String())}
}

// ErrCircularModules reports that an import cycle was detected; name is
// whichever module was re-entered while still in progress.
func ErrCircularModules(name adlast.ModuleName) error {
	return &Error{code: CodeCircularModules, message: fmt.Sprintf("circular module dependency involving: %s", name)}
}

// ErrLoadFailed wraps a loader I/O or parse failure.
func ErrLoadFailed(name adlast.ModuleName, cause error) error {
	return &Error{code: CodeLoadFailed, message: fmt.Sprintf("failed to load module: %s", name), cause: cause}
}

// ErrNoDeclForAnnotation reports that an annotation key resolved to a
// non-decl classification (TypeParam, Primitive or LocalName rather than a
// fully-qualified ScopedName).
func ErrNoDeclForAnnotation(sn adlast.ScopedName) error {
	return &Error{code: CodeNoDeclForAnnotation, message: fmt.Sprintf("annotation key does not name a decl: %s", sn.String())}
}
