package resolver

import (
	"context"

	"github.com/adl-lang/adlc-go/adlast"
	"github.com/adl-lang/adlc-go/binder"
	"github.com/adl-lang/adlc-go/loader"
)

// Resolver is the module-resolution driver (spec.md §4.6): a single-
// threaded, synchronous engine that owns the set of fully resolved
// modules. It is not safe for concurrent use -- unlike the teacher's
// globalSymbolTable, which is guarded by a sync.RWMutex for its
// many-goroutines build, spec.md §5 requires this engine to be serial, so
// there is no lock here to hold incorrectly.
type Resolver struct {
	loader  loader.Loader
	modules map[adlast.ModuleName]*adlast.Module1
}

// New returns a Resolver with no modules loaded yet.
func New(l loader.Loader) *Resolver {
	return &Resolver{
		loader:  l,
		modules: make(map[adlast.ModuleName]*adlast.Module1),
	}
}

// AddModule ensures name and all of its transitive imports and type/
// annotation references are loaded, bound, resolved, and present in the
// resolver's state. It is idempotent: calling it again for an already-
// resolved module is a no-op.
func (r *Resolver) AddModule(ctx context.Context, name adlast.ModuleName) error {
	return r.addModule(ctx, make(map[adlast.ModuleName]bool), name)
}

// addModule implements the depth-first algorithm of spec.md §4.6,
// threading the in-progress set through the recursion by value semantics
// of a fresh map per top-level AddModule call (mirroring the Rust
// original's add_module wrapping add_module_impl with a fresh HashSet).
func (r *Resolver) addModule(ctx context.Context, inProgress map[adlast.ModuleName]bool, name adlast.ModuleName) error {
	if _, ok := r.modules[name]; ok {
		return nil
	}
	if inProgress[name] {
		return ErrCircularModules(name)
	}
	inProgress[name] = true

	raw, err := r.loader.Load(ctx, name)
	if err != nil {
		return ErrLoadFailed(name, err)
	}
	if raw == nil {
		return ErrModuleNotFound(name)
	}

	module0, err := binder.Bind(*raw)
	if err != nil {
		return err
	}

	addDefaultImports(module0)

	for refName := range moduleRefs(module0) {
		if err := r.addModule(ctx, inProgress, refName); err != nil {
			return err
		}
	}

	expImports := expandedImports(module0, r.GetModule)
	baseCtx := resolveCtx{
		resolver:        r,
		module0:         module0,
		expandedImports: expImports,
		typeParams:      map[adlast.Ident]bool{},
	}

	module1, err := resolveModule(baseCtx, module0)
	if err != nil {
		return err
	}

	r.modules[name] = module1
	delete(inProgress, name)
	return nil
}

// GetModule returns the resolved module registered under name, if any.
func (r *Resolver) GetModule(name adlast.ModuleName) (*adlast.Module1, bool) {
	m, ok := r.modules[name]
	return m, ok
}

// GetDecl returns the resolved decl named by sn, looking it up in whatever
// module sn.ModuleName names.
func (r *Resolver) GetDecl(sn adlast.ScopedName) (*adlast.Decl1, bool) {
	m, ok := r.GetModule(sn.ModuleName)
	if !ok {
		return nil, false
	}
	d, ok := m.Decls[sn.Name]
	return d, ok
}

// GetModuleNames returns the names of every module currently resolved.
func (r *Resolver) GetModuleNames() []adlast.ModuleName {
	names := make([]adlast.ModuleName, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	return names
}
