package resolver

import "github.com/adl-lang/adlc-go/adlast"

// defaultImportedModule is injected into every module that is not itself
// sys.annotations and does not already import it, so that annotation
// declarations (e.g. `Doc`) are always in scope without every module
// author having to import it by hand (spec.md §4.4).
const defaultImportedModule adlast.ModuleName = "sys.annotations"

// addDefaultImports mutates module0.Imports in place, appending the
// default import only when it is missing and module0 is not itself the
// default-imported module -- the same double-guard as the Rust original's
// add_default_imports, which would otherwise make sys.annotations import
// itself or duplicate an explicit `import sys.annotations;`.
func addDefaultImports(module0 *adlast.Module0) {
	if module0.Name == defaultImportedModule {
		return
	}
	for _, imp := range module0.Imports {
		if mn, ok := imp.IsModuleName(); ok && mn == defaultImportedModule {
			return
		}
	}
	module0.Imports = append(module0.Imports, adlast.NewModuleImport(defaultImportedModule))
}

// expandedImports computes the per-module table mapping short identifier
// to fully-qualified scoped name visible at module0's top level (spec.md
// §4.4). get returns the already-resolved form of a module, or ok=false if
// it has not been resolved yet; under the driver's dependency-first
// recursion this never happens for a ModuleName import, since all
// transitive imports are resolved before expandedImports is called.
func expandedImports(module0 *adlast.Module0, get func(adlast.ModuleName) (*adlast.Module1, bool)) map[adlast.Ident]adlast.ScopedName {
	result := make(map[adlast.Ident]adlast.ScopedName)
	for _, imp := range module0.Imports {
		if sn, ok := imp.IsScopedName(); ok {
			result[sn.Name] = sn
			continue
		}
		mn, _ := imp.IsModuleName()
		m1, ok := get(mn)
		if !ok {
			continue
		}
		for declName := range m1.Decls {
			result[declName] = adlast.NewScopedName(m1.Name, declName)
		}
	}
	return result
}
