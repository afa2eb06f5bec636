// Package resolve implements the three spec resolvers — page spec
// resolution, include directive resolution, and inline cross-reference
// resolution — all against a built internal/catalog.ContentCatalog. The
// include and cross-reference resolvers also implement the capability
// interfaces internal/markup's parser adapter calls through, so the
// parser never imports this package or the catalog directly.
package resolve
