package gitrepo

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/inful/sitepipe/internal/forge"
)

// Origin describes where a component version's files came from, carried
// through to the catalog so pages can render "edit this page" links.
type Origin struct {
	Type           string // always "git"
	URL            string
	StartPath      string
	RefName        string
	RefType        forge.RefType
	Worktree       bool
	EditURLPattern string // "%s"-templated, empty when the host is unrecognized
}

// scpStylePattern matches git's scp shorthand, "git@host:org/repo.git".
var scpStylePattern = regexp.MustCompile(`^[^@]+@([^:]+):(.+)$`)

// ComputeOrigin implements spec.md §4.4 step 7: derive the edit URL template
// for recognized hosting domains, choosing the forge action by ref type.
func ComputeOrigin(sourceURL, startPath, refName string, refType RefType, worktree bool) Origin {
	origin := Origin{
		Type:      "git",
		URL:       sourceURL,
		StartPath: startPath,
		RefName:   refName,
		RefType:   toForgeRefType(refType),
		Worktree:  worktree,
	}

	host, fullName, ok := hostAndFullName(sourceURL)
	if !ok {
		return origin
	}
	forgeType, ok := forge.HostForgeType(host)
	if !ok {
		return origin
	}

	baseURL := "https://" + host
	origin.EditURLPattern = forge.EditURLTemplate(forgeType, baseURL, fullName, refName, origin.RefType, startPath)
	return origin
}

func toForgeRefType(refType RefType) forge.RefType {
	if refType == RefTypeTag {
		return forge.RefTypeTag
	}
	return forge.RefTypeBranch
}

// hostAndFullName extracts a host and "org/repo" slug from either a
// scheme-qualified or scp-style git URL.
func hostAndFullName(sourceURL string) (host, fullName string, ok bool) {
	if m := scpStylePattern.FindStringSubmatch(sourceURL); m != nil {
		host = m[1]
		fullName = strings.TrimSuffix(strings.Trim(m[2], "/"), ".git")
		return host, fullName, fullName != ""
	}

	parsed, err := url.Parse(sourceURL)
	if err != nil || parsed.Host == "" {
		return "", "", false
	}
	fullName = strings.TrimSuffix(strings.Trim(parsed.Path, "/"), ".git")
	return parsed.Host, fullName, fullName != ""
}
