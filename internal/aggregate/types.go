package aggregate

import "github.com/inful/sitepipe/internal/gitrepo"

// ComponentVersionBundle is the aggregator's unit of output: every file
// contributed to a given (name, version) pair across all sources, after
// step 8's grouping.
// Origin is deliberately not a bundle-level field: step 8 can concatenate
// files pulled from different refs or even different sources into the same
// (component, version) bundle, and each file must keep the origin of the
// ref it actually came from. Each gitrepo.RawFile in Files carries its own
// Origin for that reason.
type ComponentVersionBundle struct {
	Name      string
	Version   string
	Title     string
	StartPage string // contextual page spec, empty if the descriptor omitted it
	Nav       []string
	Files     []gitrepo.RawFile
	StartPath string
}

// Key returns the "{version}@{name}" grouping identity used by step 8.
func (b ComponentVersionBundle) Key() string {
	return b.Version + "@" + b.Name
}

// refBundle is one source+ref's contribution, before grouping.
type refBundle struct {
	descriptor ComponentDescriptor
	files      []gitrepo.RawFile
	startPath  string
	origin     gitrepo.Origin
}
