// Package gitrepo provides the git plumbing underneath content aggregation:
// classifying a Source as local or remote, computing its on-disk cache
// path, opening or cloning it, selecting branch/tag refs against glob
// patterns, and walking the matched refs into raw files.
//
// Higher-level grouping of the resulting files into component-version
// bundles lives in internal/aggregate; this package only deals with git
// itself.
package gitrepo
