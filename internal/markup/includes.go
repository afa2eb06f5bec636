package markup

import (
	"path"
	"regexp"
)

var includeMacroRe = regexp.MustCompile(`include::([^\[\]]+)\[[^\]]*\]`)

// maxIncludeDepth bounds recursive include expansion; a cycle would
// otherwise expand forever.
const maxIncludeDepth = 16

// ExpandIncludes replaces every include::target[] directive in body with
// the resolved target's contents, recursively, up to maxIncludeDepth.
// Unresolved includes are left in place verbatim, per spec.md §4.7's "the
// resolver does not throw" contract.
func ExpandIncludes(body []byte, resolver IncludeResolver, originFile, cursorDir string) []byte {
	return expandIncludes(body, resolver, originFile, cursorDir, 0)
}

func expandIncludes(body []byte, resolver IncludeResolver, originFile, cursorDir string, depth int) []byte {
	if depth >= maxIncludeDepth {
		return body
	}

	matches := includeMacroRe.FindAllSubmatchIndex(body, -1)
	if len(matches) == 0 {
		return body
	}

	edits := make([]Edit, 0, len(matches))
	for _, m := range matches {
		target := string(body[m[2]:m[3]])
		result, ok := resolver.ResolveInclude(target, originFile, cursorDir)
		if !ok {
			continue
		}
		nestedDir := path.Dir(result.Path)
		expanded := expandIncludes(result.Contents, resolver, originFile, nestedDir, depth+1)
		edits = append(edits, Edit{Start: m[0], End: m[1], Replacement: expanded})
	}

	out, err := ApplyEdits(body, edits)
	if err != nil {
		return body
	}
	return out
}
