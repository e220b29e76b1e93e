package loader

import (
	"context"

	"github.com/adl-lang/adlc-go/adlast"
	"github.com/adl-lang/adlc-go/binder"
)

// ChainLoader is an ordered set of Loaders tried in turn, adapted from the
// teacher's fs.FileSystemMulti: the first loader to return a non-nil
// module wins. A hard error (a real LoadFailed, as opposed to "not found")
// from any loader in the chain aborts the search and is returned directly,
// since it signals something more specific than "try the next root".
type ChainLoader []Loader

func (c ChainLoader) Load(ctx context.Context, name adlast.ModuleName) (*binder.RawModule, error) {
	for _, l := range c {
		rm, err := l.Load(ctx, name)
		if err != nil {
			return nil, err
		}
		if rm != nil {
			return rm, nil
		}
	}
	return nil, nil
}
