package config

// ForgeType identifies the git hosting product behind a Source's remote, used
// to pick an edit-URL template shape for its Origin.
type ForgeType string

const (
	ForgeGitHub    ForgeType = "github"
	ForgeGitLab    ForgeType = "gitlab"
	ForgeBitbucket ForgeType = "bitbucket"
	ForgeForgejo   ForgeType = "forgejo"
	ForgeLocal     ForgeType = "local"
)
