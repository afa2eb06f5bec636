package compose

import (
	"sort"
	"strings"

	"github.com/inful/sitepipe/internal/catalog"
	"github.com/inful/sitepipe/internal/config"
	apperrors "github.com/inful/sitepipe/internal/foundation/errors"
	"github.com/inful/sitepipe/internal/markup"
	"github.com/inful/sitepipe/internal/nav"
	"github.com/inful/sitepipe/internal/urlout"
)

const notFoundLayout = "404"
const pageAttributePrefix = "page-"
const layoutAttributeKey = "page-layout"

// Composer implements spec.md §4.10's PageComposer: built once per site
// from the Playbook and both catalogs, it produces a PageUIModel per page
// file. KnownLayouts, when non-nil, restricts which layout names are
// considered resolvable — an embedder that has already loaded its UI
// bundle's templates supplies the set; left nil, any non-empty layout name
// is accepted (the template engine itself is spec.md §1's external
// collaborator, so this package cannot always know the real set).
type Composer struct {
	Catalog      *catalog.ContentCatalog
	Navigation   *nav.Catalog
	Site         SiteUIModel
	KnownLayouts map[string]bool
}

// NewComposer precomputes the SiteUIModel from pb, per spec.md §4.10.
func NewComposer(pb *config.Playbook, cat *catalog.ContentCatalog, navCat *nav.Catalog, knownLayouts map[string]bool) *Composer {
	site := SiteUIModel{
		Title:         pb.Site.Title,
		URL:           strings.TrimSuffix(pb.Site.URL, "/"),
		UIURL:         pb.UI.OutputDir,
		DefaultLayout: pb.UI.DefaultLayout,
	}

	if pb.Site.StartPage != "" {
		if start, err := cat.GetSiteStartPage(pb.Site.StartPage); err == nil && start.Pub != nil {
			site.StartPageURL = start.Pub.URL
		}
	}

	components := cat.Components()
	summaries := make([]ComponentSummary, 0, len(components))
	for _, comp := range components {
		summaries = append(summaries, ComponentSummary{Name: comp.Name, Title: comp.Title, URL: comp.URL})
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Title < summaries[j].Title })
	site.Components = summaries

	return &Composer{Catalog: cat, Navigation: navCat, Site: site, KnownLayouts: knownLayouts}
}

// Compose builds the PageUIModel for file, per spec.md §4.10.
func (c *Composer) Compose(file *catalog.File) (*PageUIModel, error) {
	if file.Src.Component == "" && file.Src.Stem == "404" {
		return &PageUIModel{Layout: notFoundLayout}, nil
	}

	doc := markup.ParseDocument(file.Contents)

	layout, err := c.resolveLayout(doc.Attributes[layoutAttributeKey])
	if err != nil {
		return nil, err
	}

	model := &PageUIModel{
		Layout:     layout,
		Title:      doc.Title,
		Attributes: pageAttributes(doc.Attributes),
	}

	versions := c.pageVersions(file)
	if len(versions) > 1 {
		model.Versions = versions
	}

	if file.Pub != nil {
		if menu := c.Navigation.GetMenu(file.Src.Component, file.Src.Version); menu != nil {
			model.Navigation = menu
			model.Breadcrumbs = breadcrumbs(menu, file.Pub.URL, doc.Title)
		} else if doc.Title != "" {
			model.Breadcrumbs = []Breadcrumb{{Content: doc.Title}}
		}

		model.Home = c.Site.StartPageURL != "" && file.Pub.URL == c.Site.StartPageURL

		if c.Site.URL != "" {
			target := file.Pub.URL
			if len(model.Versions) > 0 {
				target = model.Versions[0].URL
			}
			model.CanonicalURL = c.Site.URL + target
		}
	}

	return model, nil
}

// resolveLayout implements spec.md §4.10's layout fallback: an unknown
// requested layout falls back to the site default; the 404 layout skips
// that fallback and fails directly when unavailable.
func (c *Composer) resolveLayout(requested string) (string, error) {
	if requested != "" && c.knownOrUnrestricted(requested) {
		return requested, nil
	}
	if requested == notFoundLayout {
		return "", apperrors.LayoutNotFoundError("404 layout is not available").Build()
	}
	if c.Site.DefaultLayout != "" && c.knownOrUnrestricted(c.Site.DefaultLayout) {
		return c.Site.DefaultLayout, nil
	}
	return "", apperrors.LayoutNotFoundError("no layout could be resolved").
		WithContext("requested", requested).WithContext("default", c.Site.DefaultLayout).Build()
}

func (c *Composer) knownOrUnrestricted(name string) bool {
	if c.KnownLayouts == nil {
		return true
	}
	return c.KnownLayouts[name]
}

// pageAttributes strips the "page-" prefix from every attribute that
// carries it, per spec.md §4.10.
func pageAttributes(attrs map[string]string) map[string]string {
	out := make(map[string]string, len(attrs))
	for k, v := range attrs {
		if strings.HasPrefix(k, pageAttributePrefix) {
			out[strings.TrimPrefix(k, pageAttributePrefix)] = v
		}
	}
	return out
}

// pageVersions implements spec.md §4.10's getPageVersions: sparse fan-out
// across every version of file's component, in the component's already
// descending-sorted version order.
func (c *Composer) pageVersions(file *catalog.File) []PageVersion {
	comp, ok := c.Catalog.GetComponent(file.Src.Component)
	if !ok {
		return nil
	}

	matches := c.Catalog.FindBy(catalog.Filter{
		Component: file.Src.Component,
		Module:    file.Src.Module,
		Family:    urlout.FamilyPage,
		Relative:  file.Src.Relative,
	})
	byVersion := make(map[string]*catalog.File, len(matches))
	for _, m := range matches {
		byVersion[m.Src.Version] = m
	}

	versions := make([]PageVersion, 0, len(comp.Versions))
	for _, cv := range comp.Versions {
		if m, ok := byVersion[cv.Version]; ok && m.Pub != nil {
			versions = append(versions, PageVersion{Version: cv.Version, URL: m.Pub.URL})
			continue
		}
		versions = append(versions, PageVersion{Version: cv.Version, URL: cv.URL, Missing: true})
	}
	return versions
}

// breadcrumbs implements spec.md §4.10's DFS: the ancestor chain from a
// tree root down to the item whose normalized internal url matches
// pageURL, or a single discrete crumb built from the page's own title when
// no menu item matches. Ancestors with no content (such as the root of an
// untitled list) are left out of the chain.
func breadcrumbs(menu []nav.Tree, pageURL, pageTitle string) []Breadcrumb {
	for _, tree := range menu {
		if chain := dfsBreadcrumb(tree.Root, pageURL, nil); chain != nil {
			return chain
		}
	}
	if pageTitle != "" {
		return []Breadcrumb{{Content: pageTitle}}
	}
	return nil
}

func dfsBreadcrumb(item nav.Item, pageURL string, ancestors []Breadcrumb) []Breadcrumb {
	crumb := Breadcrumb{Content: item.Content, URL: item.URL}

	if item.URLType == nav.URLTypeInternal && normalizeURL(item.URL) == normalizeURL(pageURL) {
		return append(ancestors, crumb)
	}
	path := ancestors
	if item.Content != "" {
		path = append(ancestors, crumb)
	}
	for _, child := range item.Items {
		if chain := dfsBreadcrumb(child, pageURL, path); chain != nil {
			return chain
		}
	}
	return nil
}

func normalizeURL(u string) string {
	return strings.TrimSuffix(u, "/")
}
