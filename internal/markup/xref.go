package markup

import (
	"fmt"
	"regexp"
	"strings"
)

var xrefMacroRe = regexp.MustCompile(`xref:([^\[\]]+)\[([^\]]*)\]`)

// ResolveCrossRefs replaces every xref:spec[text] macro in body with an
// anchor tag produced by resolver, per spec.md §4.8. The role="page"
// attribute lets the template layer (and the navigation builder's
// inline-content partitioning, spec.md §4.9) distinguish resolved internal
// page refs from free-form links; unresolved refs carry no role.
func ResolveCrossRefs(body []byte, resolver PageRefResolver, originFile string, relativize bool) ([]byte, []ResolvedRef) {
	matches := xrefMacroRe.FindAllSubmatchIndex(body, -1)
	if len(matches) == 0 {
		return body, nil
	}

	edits := make([]Edit, 0, len(matches))
	resolved := make([]ResolvedRef, 0, len(matches))

	for _, m := range matches {
		refSpec := string(body[m[2]:m[3]])
		linkText := string(body[m[4]:m[5]])

		target, fragment := refSpec, ""
		if idx := strings.IndexByte(refSpec, '#'); idx != -1 {
			target, fragment = refSpec[:idx], refSpec[idx+1:]
		}

		ref := resolver.ResolvePageRef(target, linkText, originFile, relativize)
		resolved = append(resolved, ref)

		var replacement string
		if ref.Unresolved {
			replacement = fmt.Sprintf(`<a href="#" class="unresolved">%s</a>`, displayText(ref, refSpec))
		} else {
			url := ref.URL
			if fragment != "" {
				url += "#" + fragment
			}
			replacement = fmt.Sprintf(`<a href="%s" role="page">%s</a>`, url, displayText(ref, refSpec))
		}

		edits = append(edits, Edit{Start: m[0], End: m[1], Replacement: []byte(replacement)})
	}

	out, err := ApplyEdits(body, edits)
	if err != nil {
		return body, resolved
	}
	return out, resolved
}

func displayText(ref ResolvedRef, fallback string) string {
	if ref.LinkText != "" {
		return ref.LinkText
	}
	return fallback
}
