package loader

import (
	"context"

	"github.com/adl-lang/adlc-go/adlast"
	"github.com/adl-lang/adlc-go/binder"
)

// MapLoader is an in-memory Loader backed by a plain map, used throughout
// this module's own tests in place of a real parser/network loader.
type MapLoader map[adlast.ModuleName]*binder.RawModule

func (m MapLoader) Load(_ context.Context, name adlast.ModuleName) (*binder.RawModule, error) {
	rm, ok := m[name]
	if !ok {
		return nil, nil
	}
	return rm, nil
}
