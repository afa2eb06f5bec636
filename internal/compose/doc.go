// Package compose implements spec.md §4.10's PageUIModel / PageComposer:
// the final assembly step that turns a classified page File, the built
// ContentCatalog, and the NavigationCatalog into the per-page model the
// (out of scope) HTML template engine renders.
package compose
