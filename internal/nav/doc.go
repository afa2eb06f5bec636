// Package nav implements spec.md §4.9's NavigationTree, NavigationCatalog,
// and Builder: it turns a navigation-family file's parsed document into an
// ordered menu tree, and indexes those trees per (component, version).
//
// The builder depends only on markup.Document — the structural subset a
// markup parser exposes — never on the catalog directly, matching spec.md
// §9's capability-interface design note.
package nav
