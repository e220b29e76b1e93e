// Package loader defines the Loader contract (spec.md §6) that upstream
// harnesses implement to hand raw, parsed modules to the resolver, plus a
// couple of concrete implementations this module ships for its own tests
// and examples: an in-memory MapLoader, an ordered ChainLoader (adapted
// from the teacher's fs.FileSystemMulti), and a YAMLLoader standing in for
// the out-of-scope ADL source parser.
package loader

import (
	"context"

	"github.com/adl-lang/adlc-go/adlast"
	"github.com/adl-lang/adlc-go/binder"
)

// Loader resolves a module name to its raw, parsed form. Returning
// (nil, nil) means "no such module" (spec's `None` case, distinct from an
// I/O failure, which should be returned as a non-nil error and is surfaced
// by the resolver as LoadFailed). The resolver calls Load at most once per
// module name per successful path, and never re-enters the resolver from
// within a Load call.
type Loader interface {
	Load(ctx context.Context, name adlast.ModuleName) (*binder.RawModule, error)
}

// Func adapts a plain function to the Loader interface, the same
// convenience idiom as http.HandlerFunc.
type Func func(ctx context.Context, name adlast.ModuleName) (*binder.RawModule, error)

func (f Func) Load(ctx context.Context, name adlast.ModuleName) (*binder.RawModule, error) {
	return f(ctx, name)
}
