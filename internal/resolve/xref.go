package resolve

import (
	"strings"

	"github.com/inful/sitepipe/internal/catalog"
	"github.com/inful/sitepipe/internal/markup"
	"github.com/inful/sitepipe/internal/pageid"
	"github.com/inful/sitepipe/internal/urlout"
)

// CrossRefResolver implements spec.md §4.8 against one originating page's
// context. Built per page; OriginOutDirname drives relativize.
type CrossRefResolver struct {
	Catalog          *catalog.ContentCatalog
	Context          pageid.Context
	OriginOutDirname string
}

// ResolvePageRef implements markup.PageRefResolver.
func (r CrossRefResolver) ResolvePageRef(refSpec, linkText, originFile string, relativize bool) markup.ResolvedRef {
	id, err := pageid.Parse(refSpec, r.Context)
	if err != nil {
		return markup.ResolvedRef{Unresolved: true, LinkText: linkText}
	}

	if id.Version == "" {
		comp, ok := r.Catalog.GetComponent(id.Component)
		if !ok {
			return markup.ResolvedRef{Unresolved: true, LinkText: linkText}
		}
		id.Version = comp.LatestVersion().Version
	}

	file, ok := r.Catalog.LookupPageOrAlias(id.Version, id.Component, id.Module, id.Relative)
	if !ok {
		return markup.ResolvedRef{Unresolved: true, LinkText: linkText}
	}

	if file.Src.Family == urlout.FamilyAlias {
		if target, ok := r.Catalog.GetByID(file.Rel); ok {
			file = target
		}
	}

	if file.Pub == nil {
		return markup.ResolvedRef{Unresolved: true, LinkText: linkText}
	}

	url := file.Pub.URL
	if relativize {
		url = relativeURL(r.OriginOutDirname, url)
	}
	return markup.ResolvedRef{URL: url, LinkText: linkText}
}

// relativeURL computes the path from fromDir (a site-relative directory,
// no leading slash) to toURL (a site-absolute URL) by stripping their
// common prefix and climbing with ".." for whatever remains of fromDir.
func relativeURL(fromDir, toURL string) string {
	var fromSegs []string
	if from := strings.Trim(fromDir, "/"); from != "" && from != "." {
		fromSegs = strings.Split(from, "/")
	}
	toSegs := strings.Split(strings.TrimPrefix(toURL, "/"), "/")

	i := 0
	for i < len(fromSegs) && i < len(toSegs)-1 && fromSegs[i] == toSegs[i] {
		i++
	}

	ups := len(fromSegs) - i
	rel := make([]string, 0, ups+len(toSegs)-i)
	for j := 0; j < ups; j++ {
		rel = append(rel, "..")
	}
	rel = append(rel, toSegs[i:]...)

	if len(rel) == 0 {
		return "."
	}
	return strings.Join(rel, "/")
}
