package resolve

import (
	"path"
	"strings"

	"github.com/inful/sitepipe/internal/catalog"
	"github.com/inful/sitepipe/internal/markup"
	"github.com/inful/sitepipe/internal/urlout"
)

// Proxy prefixes an include directive's target may carry to address a
// module's partials or examples directories directly, bypassing
// cursor-relative resolution.
const (
	PartialsProxyPrefix = "partial$"
	ExamplesProxyPrefix = "example$"
)

// IncludeResolver implements spec.md §4.7 against one originating file's
// (component, version, module) context. A new instance is built per
// originating page; cursorDir varies per call as include expansion
// recurses into included content.
type IncludeResolver struct {
	Catalog                    *catalog.ContentCatalog
	Component, Version, Module string
}

// ResolveInclude implements markup.IncludeResolver.
func (r IncludeResolver) ResolveInclude(target, originFile, cursorDir string) (markup.IncludeResult, bool) {
	if family, relative, ok := proxyTarget(target); ok {
		matches := r.Catalog.FindBy(catalog.Filter{
			Component: r.Component, Version: r.Version, Module: r.Module,
			Family: family, Relative: relative,
		})
		if len(matches) == 0 {
			return markup.IncludeResult{}, false
		}
		return toIncludeResult(matches[0]), true
	}

	physicalPath := path.Join(cursorDir, target)
	file, ok := r.Catalog.GetByPath(r.Component, r.Version, physicalPath)
	if !ok {
		return markup.IncludeResult{}, false
	}
	return toIncludeResult(file), true
}

func proxyTarget(target string) (family urlout.Family, relative string, ok bool) {
	switch {
	case strings.HasPrefix(target, PartialsProxyPrefix+"/"):
		return urlout.FamilyPartial, strings.TrimPrefix(target, PartialsProxyPrefix+"/"), true
	case strings.HasPrefix(target, ExamplesProxyPrefix+"/"):
		return urlout.FamilyExample, strings.TrimPrefix(target, ExamplesProxyPrefix+"/"), true
	default:
		return "", "", false
	}
}

func toIncludeResult(file *catalog.File) markup.IncludeResult {
	return markup.IncludeResult{Path: file.Path, Contents: file.Contents}
}
