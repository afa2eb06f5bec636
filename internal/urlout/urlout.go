// Package urlout computes a classified file's on-disk output path and
// site-absolute publish URL from its identity tuple, given an extension
// style policy. Both functions are pure: no I/O, no catalog lookups.
package urlout

import (
	"path"
	"strings"

	"github.com/inful/sitepipe/internal/config"
)

// Family mirrors the catalog's file family taxonomy; duplicated here
// rather than imported so this package stays a leaf with no catalog
// dependency.
type Family string

const (
	FamilyPage       Family = "page"
	FamilyPartial    Family = "partial"
	FamilyImage      Family = "image"
	FamilyAttachment Family = "attachment"
	FamilyExample    Family = "example"
	FamilyNavigation Family = "navigation"
	FamilyAlias      Family = "alias"
)

// MasterVersion and RootModule are the literal values elided from output
// paths and publish URLs.
const (
	MasterVersion = "master"
	RootModule    = "ROOT"
)

// SourceMarkupMediaType is the MIME type the classifier assigns to the
// source markup files (AsciiDoc) whose basename is rewritten to ".html".
const SourceMarkupMediaType = "text/asciidoc"

// Src is the subset of a classified file's identity tuple that URL/Out
// computation depends on.
type Src struct {
	Component string
	Version   string
	Module    string
	Relative  string
	Basename  string
	Stem      string
	Extname   string
	MediaType string
}

// Out is a file's computed on-disk output location.
type Out struct {
	Dirname        string
	Basename       string
	Path           string
	ModuleRootPath string
	RootPath       string
}

// Pub is a file's computed site-absolute publish location.
type Pub struct {
	URL            string
	ModuleRootPath string
	RootPath       string
}

// ComputeOut derives the output path for src under actingFamily and style.
func ComputeOut(src Src, actingFamily Family, style config.ExtensionStyle) Out {
	component := src.Component
	version := elide(src.Version, MasterVersion)
	module := elide(src.Module, RootModule)

	basename := src.Basename
	if src.MediaType == SourceMarkupMediaType {
		basename = src.Stem + ".html"
	}

	indexifyPathSegment := ""
	if actingFamily == FamilyPage && src.Stem != "index" && style == config.ExtensionStyleIndexify {
		basename = "index.html"
		indexifyPathSegment = src.Stem
	}

	familyPathSegment := ""
	switch actingFamily {
	case FamilyImage:
		familyPathSegment = "_images"
	case FamilyAttachment:
		familyPathSegment = "_attachments"
	}

	modulePath := joinSegments(component, version, module)
	dirname := joinSegments(modulePath, familyPathSegment, path.Dir(src.Relative), indexifyPathSegment)
	outPath := joinSegments(dirname, basename)

	return Out{
		Dirname:        dirname,
		Basename:       basename,
		Path:           outPath,
		ModuleRootPath: upwardPathFrom(dirname, modulePath),
		RootPath:       upwardPath(dirname),
	}
}

// ComputePub derives the publish URL for src/out under actingFamily and
// style. out may be nil (e.g. for aliases, which never get their own Out).
func ComputePub(src Src, out *Out, actingFamily Family, style config.ExtensionStyle) Pub {
	pub := Pub{ModuleRootPath: ".", RootPath: "."}
	if out != nil {
		pub.ModuleRootPath = out.ModuleRootPath
		pub.RootPath = out.RootPath
	}

	if actingFamily == FamilyNavigation {
		component := src.Component
		version := elide(src.Version, MasterVersion)
		module := elide(src.Module, RootModule)
		pub.URL = "/" + joinSegments(component, version, module) + "/"
		pub.ModuleRootPath = "."
		return pub
	}

	if out == nil {
		return pub
	}

	if actingFamily == FamilyPage {
		segments := strings.Split(out.Path, "/")
		last := segments[len(segments)-1]
		switch style {
		case config.ExtensionStyleDrop:
			if last == "index.html" {
				last = ""
			} else {
				last = strings.TrimSuffix(last, ".html")
			}
		case config.ExtensionStyleIndexify:
			last = ""
		}
		segments[len(segments)-1] = last
		pub.URL = "/" + strings.Join(segments, "/")
		return pub
	}

	pub.URL = "/" + out.Path
	return pub
}

func elide(value, literal string) string {
	if value == literal {
		return ""
	}
	return value
}

func joinSegments(segments ...string) string {
	var nonEmpty []string
	for _, s := range segments {
		if s != "" && s != "." {
			nonEmpty = append(nonEmpty, s)
		}
	}
	return strings.Join(nonEmpty, "/")
}

// upwardPath returns the relative path of ".." segments needed to climb
// from from back to the site root, or "." if from is already the root.
func upwardPath(from string) string {
	from = strings.Trim(from, "/")
	if from == "" || from == "." {
		return "."
	}
	depth := len(strings.Split(from, "/"))
	ups := make([]string, depth)
	for i := range ups {
		ups[i] = ".."
	}
	return strings.Join(ups, "/")
}

// upwardPathFrom returns the relative path of ".." segments needed to climb
// from dirname back to base, assuming base is a prefix of dirname.
func upwardPathFrom(dirname, base string) string {
	suffix := strings.TrimPrefix(dirname, base)
	suffix = strings.Trim(suffix, "/")
	return upwardPath(suffix)
}
