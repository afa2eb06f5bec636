// Package pageid parses contextual page specs of the form
// "[version@][component:][module:]relative[.ext]" into a resolved
// identity tuple, falling back to a caller-supplied context for any
// segment the raw string itself leaves out.
package pageid

import (
	"strings"

	apperrors "github.com/inful/sitepipe/internal/foundation/errors"
)

// sourceExtensions are the markup extensions a spec may explicitly carry;
// they are stripped before matching and always replaced with ".adoc" in the
// parsed result.
var sourceExtensions = []string{".adoc", ".asciidoc", ".ad"}

// RootModule is the literal module name denoting a component's default
// module.
const RootModule = "ROOT"

// PageFamily is the family assigned to every successfully parsed page ID.
const PageFamily = "page"

// Context supplies fallback values for segments a spec omits.
type Context struct {
	Component string
	Version   string
	Module    string
}

// ID is the resolved 5-tuple produced by Parse.
type ID struct {
	Component string
	Version   string
	Module    string
	Family    string
	Relative  string
}

// Parse resolves spec against ctx. Version may come back empty, meaning the
// caller must resolve it to the component's latest version.
func Parse(spec string, ctx Context) (ID, error) {
	if strings.TrimSpace(spec) == "" {
		return ID{}, apperrors.InvalidPageIDError("page spec is empty").
			WithContext("spec", spec).Build()
	}

	version, rest := splitVersion(spec)
	component, module, relative := splitComponentModule(rest)

	relative = stripKnownExtension(relative)
	if relative == "" {
		return ID{}, apperrors.InvalidPageIDError("page spec has no relative path").
			WithContext("spec", spec).Build()
	}

	if component != "" && module == "" {
		module = RootModule
	}
	if component == "" {
		component = ctx.Component
	}
	if version == "" {
		version = ctx.Version
	}
	if module == "" {
		module = ctx.Module
	}

	return ID{
		Component: component,
		Version:   version,
		Module:    module,
		Family:    PageFamily,
		Relative:  relative + ".adoc",
	}, nil
}

// Format reconstructs a "version@component:module:relative" spec from id,
// omitting the segments Parse would have left unset.
func Format(id ID) string {
	var sb strings.Builder
	if id.Version != "" {
		sb.WriteString(id.Version)
		sb.WriteByte('@')
	}
	if id.Component != "" {
		sb.WriteString(id.Component)
		sb.WriteByte(':')
		sb.WriteString(id.Module)
		sb.WriteByte(':')
	}
	sb.WriteString(id.Relative)
	return sb.String()
}

// splitVersion separates a leading "version@" prefix from the rest of spec.
func splitVersion(spec string) (version, rest string) {
	before, after, found := strings.Cut(spec, "@")
	if !found {
		return "", spec
	}
	return before, after
}

// splitComponentModule separates up to two leading "name:" prefixes from
// the trailing relative path. A single prefix is treated as component, per
// the grammar; module only appears once component is already present.
func splitComponentModule(rest string) (component, module, relative string) {
	parts := strings.SplitN(rest, ":", 3)
	switch len(parts) {
	case 3:
		return parts[0], parts[1], parts[2]
	case 2:
		return parts[0], "", parts[1]
	default:
		return "", "", parts[0]
	}
}

func stripKnownExtension(relative string) string {
	for _, ext := range sourceExtensions {
		if strings.HasSuffix(strings.ToLower(relative), ext) {
			return relative[:len(relative)-len(ext)]
		}
	}
	return relative
}
