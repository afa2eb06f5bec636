package resolve

import (
	"github.com/inful/sitepipe/internal/catalog"
	"github.com/inful/sitepipe/internal/pageid"
)

// PageResolver implements spec.md §4.6's resolvePage.
type PageResolver struct {
	Catalog *catalog.ContentCatalog
}

// Resolve parses spec against ctx and looks the result up in the catalog.
// A malformed spec is an error; an absent component or missing file is
// reported as ok=false with no error, per the operation's "File?" return
// shape (a resolved-or-not result, not an exceptional one).
func (r PageResolver) Resolve(spec string, ctx pageid.Context) (*catalog.File, bool, error) {
	id, err := pageid.Parse(spec, ctx)
	if err != nil {
		return nil, false, err
	}

	if id.Version == "" {
		comp, ok := r.Catalog.GetComponent(id.Component)
		if !ok {
			return nil, false, nil
		}
		id.Version = comp.LatestVersion().Version
	}

	file, ok := r.Catalog.LookupPageOrAlias(id.Version, id.Component, id.Module, id.Relative)
	return file, ok, nil
}
