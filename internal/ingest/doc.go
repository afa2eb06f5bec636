// Package ingest is the reducer that turns the aggregator's output into a
// built ContentCatalog and NavigationCatalog: it is the "Playbook →
// Aggregator → Classifier → Catalog" and "NavigationBuilder" arrows of
// spec.md §2's dataflow diagram, run serially over already-materialized
// bundles so neither catalog needs locking (spec.md §5's "no shared
// in-memory mutable state after the catalog is built").
package ingest
