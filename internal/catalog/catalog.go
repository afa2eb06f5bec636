package catalog

import (
	"github.com/inful/sitepipe/internal/config"
	apperrors "github.com/inful/sitepipe/internal/foundation/errors"
	"github.com/inful/sitepipe/internal/pageid"
	"github.com/inful/sitepipe/internal/urlout"
	"github.com/inful/sitepipe/internal/version"
)

// ContentCatalog indexes every classified File by identity and every
// Component by name. It is built serially by a single reducer over the
// aggregator's output, so none of its operations take a lock.
type ContentCatalog struct {
	components     map[string]*Component
	files          map[string]*File
	extensionStyle config.ExtensionStyle
}

// NewCatalog returns an empty catalog that computes out/pub under style.
func NewCatalog(style config.ExtensionStyle) *ContentCatalog {
	return &ContentCatalog{
		components:     make(map[string]*Component),
		files:          make(map[string]*File),
		extensionStyle: style,
	}
}

// actingFamily returns the family used for URL/Out computation: a file's
// own family, except for an alias, which inherits its target's family.
func (c *ContentCatalog) actingFamily(f *File) urlout.Family {
	if f.Src.Family != urlout.FamilyAlias {
		return f.Src.Family
	}
	if target, ok := c.files[f.Rel]; ok {
		return c.actingFamily(target)
	}
	return f.Src.Family
}

// findPageOrAlias looks up a page spec's resolved tuple against both
// possible stored families: a plain page, or an alias parked at that same
// tuple pointing elsewhere.
func (c *ContentCatalog) findPageOrAlias(version, component, module, relative string) (*File, bool) {
	if f, ok := c.files[Identity(urlout.FamilyPage, version, component, module, relative)]; ok {
		return f, true
	}
	if f, ok := c.files[Identity(urlout.FamilyAlias, version, component, module, relative)]; ok {
		return f, true
	}
	return nil, false
}

// LookupPageOrAlias resolves a page-spec tuple to whichever file occupies
// it, be it a plain page or an alias parked there. Exported for
// internal/resolve's PageResolver, which per spec.md §4.6 step 3 must
// return "the file (may be page or alias — caller decides whether to
// dereference)".
func (c *ContentCatalog) LookupPageOrAlias(version, component, module, relative string) (*File, bool) {
	return c.findPageOrAlias(version, component, module, relative)
}

func toURLOutSrc(src FileSrc) urlout.Src {
	return urlout.Src{
		Component: src.Component,
		Version:   src.Version,
		Module:    src.Module,
		Relative:  src.Relative,
		Basename:  src.Basename,
		Stem:      src.Stem,
		Extname:   src.Extname,
		MediaType: src.MediaType,
	}
}

// AddFile implements spec.md §4.5's addFile: computes identity, rejects
// duplicates, and computes out (for publishable non-alias files) and pub
// (for publishable or navigation files).
func (c *ContentCatalog) AddFile(f *File) error {
	id := f.Identity()
	if _, exists := c.files[id]; exists {
		return apperrors.DuplicateFileError("duplicate file identity").
			WithContext("id", id).Build()
	}

	acting := c.actingFamily(f)
	src := toURLOutSrc(f.Src)
	publishable := IsPublishable(acting, f.Src.Relative)

	if publishable && f.Src.Family != urlout.FamilyAlias {
		out := urlout.ComputeOut(src, acting, c.extensionStyle)
		f.Out = &out
	}
	if publishable || acting == urlout.FamilyNavigation {
		pub := urlout.ComputePub(src, f.Out, acting, c.extensionStyle)
		f.Pub = &FilePub{Pub: pub}
	}

	c.files[id] = f
	return nil
}

// AddComponentVersion implements spec.md §4.5's addComponentVersion.
func (c *ContentCatalog) AddComponentVersion(name, ver, title, startPageSpec string) (*Component, error) {
	comp, exists := c.components[name]
	if !exists {
		comp = &Component{Name: name}
		c.components[name] = comp
	} else {
		for _, v := range comp.Versions {
			if v.Version == ver {
				return nil, apperrors.DuplicateVersionError("duplicate component version").
					WithContext("component", name).WithContext("version", ver).Build()
			}
		}
	}

	startPageURL, err := c.resolveStartPage(name, ver, startPageSpec)
	if err != nil {
		return nil, err
	}

	entry := ComponentVersion{Title: title, Version: ver, URL: startPageURL}
	comp.Versions = insertDescending(comp.Versions, entry)

	if comp.Versions[0].Version == ver {
		comp.Title = title
		comp.URL = startPageURL
	}
	return comp, nil
}

func (c *ContentCatalog) resolveStartPage(component, ver, startPageSpec string) (string, error) {
	ctx := pageid.Context{Component: component, Version: ver, Module: pageid.RootModule}

	if startPageSpec != "" {
		id, err := pageid.Parse(startPageSpec, ctx)
		if err != nil {
			return "", err
		}
		file, ok := c.findPageOrAlias(id.Version, id.Component, id.Module, id.Relative)
		if !ok || file.Pub == nil {
			return "", apperrors.StartPageMissingError("start page spec did not resolve").
				WithContext("spec", startPageSpec).Build()
		}
		return file.Pub.URL, nil
	}

	if file, ok := c.findPageOrAlias(ver, component, pageid.RootModule, "index.adoc"); ok && file.Pub != nil {
		return file.Pub.URL, nil
	}

	placeholder := urlout.ComputePub(
		urlout.Src{Component: component, Version: ver, Module: pageid.RootModule, Relative: "index.adoc", Basename: "index.html", Stem: "index"},
		nil, urlout.FamilyPage, c.extensionStyle,
	)
	return placeholder.URL, nil
}

func insertDescending(versions []ComponentVersion, entry ComponentVersion) []ComponentVersion {
	idx := len(versions)
	for i, v := range versions {
		if version.Compare(entry.Version, v.Version) < 0 {
			idx = i
			break
		}
	}
	versions = append(versions, ComponentVersion{})
	copy(versions[idx+1:], versions[idx:])
	versions[idx] = entry
	return versions
}

// Filter selects files by any subset of src fields; zero-value fields are
// not matched against.
type Filter struct {
	Component string
	Version   string
	Module    string
	Family    urlout.Family
	Relative  string
	Basename  string
	Extname   string
}

// FindBy implements spec.md §4.5's findBy.
func (c *ContentCatalog) FindBy(filter Filter) []*File {
	var results []*File
	for _, f := range c.files {
		if filter.Component != "" && f.Src.Component != filter.Component {
			continue
		}
		if filter.Version != "" && f.Src.Version != filter.Version {
			continue
		}
		if filter.Module != "" && f.Src.Module != filter.Module {
			continue
		}
		if filter.Family != "" && f.Src.Family != filter.Family {
			continue
		}
		if filter.Relative != "" && f.Src.Relative != filter.Relative {
			continue
		}
		if filter.Basename != "" && f.Src.Basename != filter.Basename {
			continue
		}
		if filter.Extname != "" && f.Src.Extname != filter.Extname {
			continue
		}
		results = append(results, f)
	}
	return results
}

// GetByID implements spec.md §4.5's getById.
func (c *ContentCatalog) GetByID(id string) (*File, bool) {
	f, ok := c.files[id]
	return f, ok
}

// GetByPath implements spec.md §4.5's getByPath: a lookup within a
// (component, version) by the file's physical path attribute.
func (c *ContentCatalog) GetByPath(component, ver, physicalPath string) (*File, bool) {
	for _, f := range c.files {
		if f.Src.Component == component && f.Src.Version == ver && f.Path == physicalPath {
			return f, true
		}
	}
	return nil, false
}

// GetComponent returns a component by name.
func (c *ContentCatalog) GetComponent(name string) (*Component, bool) {
	comp, ok := c.components[name]
	return comp, ok
}

// Components returns every registered component in unspecified order; the
// catalog itself is an unordered mapping per spec.md §5, so callers that
// need a stable order (e.g. the composer's alphabetical-by-title listing)
// sort the result themselves.
func (c *ContentCatalog) Components() []*Component {
	components := make([]*Component, 0, len(c.components))
	for _, comp := range c.components {
		components = append(components, comp)
	}
	return components
}

// GetSiteStartPage implements spec.md §4.5's getSiteStartPage: resolves
// spec against a context holding only the ROOT module and dereferences one
// level of alias.
func (c *ContentCatalog) GetSiteStartPage(spec string) (*File, error) {
	id, err := pageid.Parse(spec, pageid.Context{Module: pageid.RootModule})
	if err != nil {
		return nil, err
	}
	if id.Version == "" {
		if comp, ok := c.components[id.Component]; ok {
			id.Version = comp.LatestVersion().Version
		}
	}

	file, ok := c.findPageOrAlias(id.Version, id.Component, id.Module, id.Relative)
	if !ok {
		return nil, apperrors.StartPageMissingError("site start page did not resolve").
			WithContext("spec", spec).Build()
	}
	if file.Src.Family == urlout.FamilyAlias {
		if target, ok := c.files[file.Rel]; ok {
			return target, nil
		}
	}
	return file, nil
}

// RegisterPageAlias implements spec.md §4.5's registerPageAlias.
func (c *ContentCatalog) RegisterPageAlias(aliasSpec string, target *File) error {
	ctx := pageid.Context{Component: target.Src.Component, Version: target.Src.Version, Module: target.Src.Module}
	id, err := pageid.Parse(aliasSpec, ctx)
	if err != nil {
		return err
	}

	if id.Version == "" {
		if comp, ok := c.components[id.Component]; ok {
			id.Version = comp.LatestVersion().Version
		}
	}

	conflictID := Identity(urlout.FamilyPage, id.Version, id.Component, id.Module, id.Relative)
	if conflictID == target.Identity() {
		return apperrors.AliasConflictError("alias target is the page itself").
			WithContext("spec", aliasSpec).Build()
	}
	if _, ok := c.findPageOrAlias(id.Version, id.Component, id.Module, id.Relative); ok {
		return apperrors.AliasConflictError("alias target coincides with an existing file").
			WithContext("spec", aliasSpec).Build()
	}

	basename, stem, extname := splitBasename(id.Relative)
	alias := &File{
		Src: FileSrc{
			Component: id.Component,
			Version:   id.Version,
			Module:    id.Module,
			Family:    urlout.FamilyAlias,
			Relative:  id.Relative,
			Basename:  basename,
			Stem:      stem,
			Extname:   extname,
			MediaType: urlout.SourceMarkupMediaType,
		},
		Rel: target.Identity(),
	}
	return c.AddFile(alias)
}
