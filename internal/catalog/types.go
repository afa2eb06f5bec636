package catalog

import (
	"github.com/inful/sitepipe/internal/gitrepo"
	"github.com/inful/sitepipe/internal/urlout"
)

// FileSrc is a classified file's identity tuple: everything known about it
// before any URL/output computation.
type FileSrc struct {
	Component      string
	Version        string
	Module         string
	Family         urlout.Family
	Relative       string
	Basename       string
	Stem           string
	Extname        string
	MediaType      string
	ModuleRootPath string
	Origin         gitrepo.Origin
	EditURL        string
}

// FilePub extends urlout.Pub with the optional canonical URL the composer
// attaches for versioned pages.
type FilePub struct {
	urlout.Pub
	CanonicalURL string
}

// File is the catalog's owned record for one classified file. Rel holds the
// identity key of an alias's target; Nav is set by the navigation builder
// and left untyped here to avoid a dependency cycle between catalog and
// nav — catalog does not interpret it.
type File struct {
	Path     string
	Contents []byte
	Src      FileSrc
	Out      *urlout.Out
	Pub      *FilePub
	Rel      string
	Nav      any
}

// Identity returns this file's catalog key.
func (f *File) Identity() string {
	return Identity(f.Src.Family, f.Src.Version, f.Src.Component, f.Src.Module, f.Src.Relative)
}

// ComponentVersion is one entry of a Component's version list.
type ComponentVersion struct {
	Title   string
	Version string
	URL     string
}

// Component groups a documentation project's versions under one name.
type Component struct {
	Name     string
	Title    string
	URL      string
	Versions []ComponentVersion
}

// LatestVersion returns the newest version entry, per the invariant that
// Versions is kept sorted newest-first.
func (c *Component) LatestVersion() ComponentVersion {
	return c.Versions[0]
}
