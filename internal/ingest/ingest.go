package ingest

import (
	"fmt"
	"log/slog"
	"mime"
	"path"
	"strings"

	"github.com/inful/sitepipe/internal/aggregate"
	"github.com/inful/sitepipe/internal/catalog"
	"github.com/inful/sitepipe/internal/config"
	"github.com/inful/sitepipe/internal/gitrepo"
	"github.com/inful/sitepipe/internal/logfields"
	"github.com/inful/sitepipe/internal/markdown"
	"github.com/inful/sitepipe/internal/markup"
	"github.com/inful/sitepipe/internal/nav"
	"github.com/inful/sitepipe/internal/pageid"
	"github.com/inful/sitepipe/internal/resolve"
	"github.com/inful/sitepipe/internal/urlout"
	"github.com/inful/sitepipe/internal/util/sets"
)

// BuildCatalog classifies every bundle's raw files and reduces them into a
// ContentCatalog, then registers each bundle's component version. Bundles
// must already be ordered per spec.md §5 (aggregate.Aggregate does this);
// this function processes them in the order given.
func BuildCatalog(bundles []aggregate.ComponentVersionBundle, style config.ExtensionStyle) (*catalog.ContentCatalog, error) {
	cat := catalog.NewCatalog(style)

	for _, bundle := range bundles {
		navPaths := make(sets.Set[string], len(bundle.Nav))
		for _, p := range bundle.Nav {
			navPaths.Add(path.Clean(p))
		}

		for _, raw := range bundle.Files {
			result, ok := catalog.Classify(raw.Path, navPaths)
			if !ok {
				continue
			}

			basename := path.Base(result.Relative)
			extname := path.Ext(basename)
			stem := strings.TrimSuffix(basename, extname)

			file := &catalog.File{
				Path:     raw.Path,
				Contents: raw.Contents,
				Src: catalog.FileSrc{
					Component:      bundle.Name,
					Version:        bundle.Version,
					Module:         result.Module,
					Family:         result.Family,
					Relative:       result.Relative,
					Basename:       basename,
					Stem:           stem,
					Extname:        extname,
					MediaType:      mediaType(result.Family, extname),
					ModuleRootPath: catalog.ModuleRootPath(result.Relative),
					Origin:         raw.Origin,
					EditURL:        editURL(raw.Origin, raw.Path),
				},
			}

			if err := cat.AddFile(file); err != nil {
				return nil, err
			}
		}

		slog.Debug("classified component version",
			logfields.Component(bundle.Name), logfields.Version(bundle.Version))

		if _, err := cat.AddComponentVersion(bundle.Name, bundle.Version, bundle.Title, bundle.StartPage); err != nil {
			return nil, err
		}
	}

	return cat, nil
}

// BuildNavigation implements spec.md §4.9's builder orchestration: for each
// bundle's nav[] files (in descriptor order), parse the file's document and
// fold its top-level lists into the per-(component, version) menu.
func BuildNavigation(bundles []aggregate.ComponentVersionBundle, cat *catalog.ContentCatalog) *nav.Catalog {
	navCat := nav.NewCatalog()

	for _, bundle := range bundles {
		for navIndex, navPath := range bundle.Nav {
			file, ok := cat.GetByPath(bundle.Name, bundle.Version, navPath)
			if !ok {
				slog.Warn("navigation file not found in catalog",
					logfields.Component(bundle.Name), logfields.Version(bundle.Version), logfields.Path(navPath))
				continue
			}

			ctx := pageid.Context{Component: bundle.Name, Version: bundle.Version, Module: file.Src.Module}
			xrefResolver := resolve.CrossRefResolver{Catalog: cat, Context: ctx}
			body, _ := markup.ResolveCrossRefs(file.Contents, xrefResolver, file.Path, false)

			doc := markup.ParseDocument(body)
			for _, tree := range nav.BuildTrees(doc, navIndex) {
				navCat.AddTree(bundle.Name, bundle.Version, tree)
			}
		}
	}

	return navCat
}

// ExampleLink pairs a link found inside a Markdown-formatted example file
// with the catalog file it came from, so a caller can report or validate
// destinations without re-walking the catalog itself.
type ExampleLink struct {
	File *catalog.File
	Link markdown.Link
}

// ExtractExampleLinks scans every classified example-family file with a
// ".md" extension for embedded links. Antora-style components frequently
// ship Markdown snippets (README fragments, code samples with inline
// commentary) under modules/*/examples/ that get transcluded into
// AsciiDoc pages via include:: rather than parsed as pages themselves;
// this pass gives those files the same link-extraction treatment page
// content gets from cross-reference resolution, so a health-check tool
// can flag dead example links even though nothing else in the pipeline
// ever renders them.
func ExtractExampleLinks(cat *catalog.ContentCatalog) ([]ExampleLink, error) {
	var links []ExampleLink
	for _, file := range cat.FindBy(catalog.Filter{Family: urlout.FamilyExample}) {
		if file.Src.Extname != ".md" {
			continue
		}
		found, err := markdown.ExtractLinks(file.Contents, markdown.Options{})
		if err != nil {
			return nil, err
		}
		for _, l := range found {
			links = append(links, ExampleLink{File: file, Link: l})
		}
	}
	return links, nil
}

// mediaType assigns the MIME type urlout.ComputeOut inspects to decide
// whether a file's basename gets rewritten to ".html". Pages always carry
// the source markup type; everything else is guessed from its extension.
func mediaType(family urlout.Family, extname string) string {
	if family == urlout.FamilyPage {
		return urlout.SourceMarkupMediaType
	}
	if t := mime.TypeByExtension(extname); t != "" {
		return t
	}
	return "application/octet-stream"
}

func editURL(origin gitrepo.Origin, rawPath string) string {
	if origin.EditURLPattern == "" {
		return ""
	}
	return fmt.Sprintf(origin.EditURLPattern, rawPath)
}
