package forge

import (
	"fmt"
	"strings"

	"github.com/inful/sitepipe/internal/config"
)

// GenerateEditURL constructs a web UI edit URL for a repository file given the forge type.
// baseURL should be the canonical web base (no trailing slash), fullName is "org/repo".
// filePath should use forward slashes. Returns empty string if inputs insufficient or unsupported forge type.
func GenerateEditURL(forgeType config.ForgeType, baseURL, fullName, branch, filePath string) string {
	if forgeType == "" || baseURL == "" || fullName == "" || branch == "" || filePath == "" {
		return ""
	}
	baseURL = strings.TrimSuffix(baseURL, "/")
	switch forgeType {
	case config.ForgeGitHub:
		return fmt.Sprintf("%s/%s/edit/%s/%s", baseURL, fullName, branch, filePath)
	case config.ForgeGitLab:
		return fmt.Sprintf("%s/%s/-/edit/%s/%s", baseURL, fullName, branch, filePath)
	case config.ForgeForgejo:
		return fmt.Sprintf("%s/%s/_edit/%s/%s", baseURL, fullName, branch, filePath)
	case config.ForgeLocal:
		// Local forges don't have web UI edit URLs
		return ""
	default:
		return ""
	}
}

// RefType distinguishes a branch ref from a tag ref when building an Origin's
// edit URL template: branches use a forge's "edit" action, tags use the
// read-only "blob"/"src" action instead.
type RefType string

const (
	RefTypeBranch RefType = "branch"
	RefTypeTag    RefType = "tag"
)

// EditURLTemplate builds the string for Origin.EditURLPattern: a URL with a
// single "%s" placeholder standing in for the file's path relative to
// startPath. refType picks the action (edit vs blob) for hosts that
// distinguish them; Bitbucket always uses its read-only "src" action.
func EditURLTemplate(forgeType config.ForgeType, baseURL, fullName, refName string, refType RefType, startPath string) string {
	if forgeType == "" || baseURL == "" || fullName == "" || refName == "" {
		return ""
	}
	baseURL = strings.TrimSuffix(baseURL, "/")
	pathPrefix := strings.Trim(startPath, "/")
	pathTemplate := "%s"
	if pathPrefix != "" {
		pathTemplate = pathPrefix + "/%s"
	}

	switch forgeType {
	case config.ForgeGitHub:
		return fmt.Sprintf("%s/%s/%s/%s/%s", baseURL, fullName, branchOrTagAction(refType, "edit", "blob"), refName, pathTemplate)
	case config.ForgeGitLab:
		return fmt.Sprintf("%s/%s/-/%s/%s/%s", baseURL, fullName, branchOrTagAction(refType, "edit", "blob"), refName, pathTemplate)
	case config.ForgeBitbucket:
		return fmt.Sprintf("%s/%s/src/%s/%s", baseURL, fullName, refName, pathTemplate)
	case config.ForgeForgejo:
		return fmt.Sprintf("%s/%s/_edit/%s/%s", baseURL, fullName, refName, pathTemplate)
	case config.ForgeLocal:
		return ""
	default:
		return ""
	}
}

func branchOrTagAction(refType RefType, branchAction, tagAction string) string {
	if refType == RefTypeTag {
		return tagAction
	}
	return branchAction
}

// HostForgeType maps a recognized hosting domain to its ForgeType, per the
// aggregator's Origin-computation step. Self-hosted GitLab/Forgejo instances
// are not detected from their host name and report ok=false.
func HostForgeType(host string) (config.ForgeType, bool) {
	switch strings.ToLower(host) {
	case "github.com":
		return config.ForgeGitHub, true
	case "gitlab.com":
		return config.ForgeGitLab, true
	case "bitbucket.org":
		return config.ForgeBitbucket, true
	default:
		return "", false
	}
}
