// Package catalog classifies raw aggregator files into the typed virtual
// filesystem (ContentClassifier) and indexes them for lookup by resolvers
// and the composer (ContentCatalog).
package catalog
