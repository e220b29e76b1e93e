package resolver

import "github.com/adl-lang/adlc-go/adlast"

// moduleRefs computes the set of module names referenced anywhere in
// module0: every import clause, plus every non-empty ModuleName appearing
// in any type reference or annotation key (spec.md §4.6 step 6). It reuses
// the adlast.Consumer visitor contract rather than writing a one-off walk,
// the same way the Rust original's find_module_refs implements AstConsumer
// once and calls consume_module.
func moduleRefs(module0 *adlast.Module0) map[adlast.ModuleName]bool {
	c := &moduleRefCollector{refs: make(map[adlast.ModuleName]bool)}
	adlast.WalkModule(module0, c)
	for _, imp := range module0.Imports {
		c.refs[imp.ReferencedModule()] = true
	}
	delete(c.refs, "")
	return c.refs
}

type moduleRefCollector struct {
	refs map[adlast.ModuleName]bool
}

func (c *moduleRefCollector) ConsumeTypeRef(sn adlast.ScopedName) {
	c.ConsumeScopedName(sn)
}

func (c *moduleRefCollector) ConsumeScopedName(sn adlast.ScopedName) {
	if sn.ModuleName != "" {
		c.refs[sn.ModuleName] = true
	}
}
