package catalog

import (
	"path"
	"strings"

	"github.com/inful/sitepipe/internal/urlout"
	"github.com/inful/sitepipe/internal/util/sets"
)

// ClassifyResult is the outcome of matching a raw in-repo path against the
// module path conventions spec.md §4.5 names.
type ClassifyResult struct {
	Module   string
	Family   urlout.Family
	Relative string
}

// Classify assigns a family and a module-relative path to filePath (the
// file's path as walked from the component version's root), per spec.md
// §4.5's path-prefix table. navPaths is the set of paths listed in the
// component descriptor's nav[], checked first since a navigation file can
// live anywhere pages normally would. Returns ok=false for files matching
// none of the conventions; callers discard those silently.
func Classify(filePath string, navPaths sets.Set[string]) (ClassifyResult, bool) {
	cleanPath := path.Clean(filePath)

	if navPaths.Has(cleanPath) {
		module, rest, ok := splitModule(cleanPath)
		if !ok {
			return ClassifyResult{}, false
		}
		return ClassifyResult{Module: module, Family: urlout.FamilyNavigation, Relative: rest}, true
	}

	module, rest, ok := splitModule(cleanPath)
	if !ok {
		return ClassifyResult{}, false
	}

	switch {
	case hasPrefix(rest, "pages/_partials/"):
		return ClassifyResult{Module: module, Family: urlout.FamilyPartial, Relative: trimPrefix(rest, "pages/_partials/")}, true
	case hasPrefix(rest, "pages/") && strings.HasSuffix(rest, ".adoc"):
		return ClassifyResult{Module: module, Family: urlout.FamilyPage, Relative: trimPrefix(rest, "pages/")}, true
	case hasPrefix(rest, "assets/images/"):
		return ClassifyResult{Module: module, Family: urlout.FamilyImage, Relative: trimPrefix(rest, "assets/images/")}, true
	case hasPrefix(rest, "assets/attachments/"):
		return ClassifyResult{Module: module, Family: urlout.FamilyAttachment, Relative: trimPrefix(rest, "assets/attachments/")}, true
	case hasPrefix(rest, "examples/"):
		return ClassifyResult{Module: module, Family: urlout.FamilyExample, Relative: trimPrefix(rest, "examples/")}, true
	default:
		return ClassifyResult{}, false
	}
}

// splitModule strips the "modules/<module>/" prefix every convention in
// spec.md §4.5's table is rooted under.
func splitModule(cleanPath string) (module, rest string, ok bool) {
	segments := strings.Split(cleanPath, "/")
	if len(segments) < 2 || segments[0] != "modules" {
		return "", "", false
	}
	return segments[1], strings.Join(segments[2:], "/"), true
}

func hasPrefix(s, prefix string) bool    { return strings.HasPrefix(s, prefix) }
func trimPrefix(s, prefix string) string { return strings.TrimPrefix(s, prefix) }

// IsPublishable implements spec.md §3's publishable predicate: acting
// family must be page, image, or attachment, and no path segment of
// relative may begin with "_".
func IsPublishable(actingFamily urlout.Family, relative string) bool {
	switch actingFamily {
	case urlout.FamilyPage, urlout.FamilyImage, urlout.FamilyAttachment:
	default:
		return false
	}
	for _, segment := range strings.Split(relative, "/") {
		if strings.HasPrefix(segment, "_") {
			return false
		}
	}
	return true
}

// ModuleRootPath counts the subdirectories between relative's containing
// directory and the module root, expressed as repeated "..", per spec.md
// §4.5's "moduleRootPath (count of subdirs from module root expressed as
// ..)".
func ModuleRootPath(relative string) string {
	dir := path.Dir(relative)
	if dir == "." {
		return "."
	}
	depth := strings.Count(dir, "/") + 1
	segments := make([]string, depth)
	for i := range segments {
		segments[i] = ".."
	}
	return strings.Join(segments, "/")
}

// splitBasename is used by the file-builder to derive stem/extname from a
// relative path's final segment.
func splitBasename(relative string) (basename, stem, extname string) {
	basename = path.Base(relative)
	extname = path.Ext(basename)
	stem = strings.TrimSuffix(basename, extname)
	return basename, stem, extname
}
