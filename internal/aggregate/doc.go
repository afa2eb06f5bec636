// Package aggregate implements the content aggregator: given a playbook it
// opens each content source, expands its branch/tag patterns into matched
// refs, walks each ref's tree, reads its component descriptor, and groups
// the resulting per-ref records into ComponentVersionBundle values keyed by
// "{version}@{name}".
//
// The git plumbing itself (classification, cache paths, cloning, ref
// selection, tree walking) lives in internal/gitrepo; this package owns the
// orchestration and the descriptor/grouping semantics layered on top of it.
package aggregate
