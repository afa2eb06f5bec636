package catalog

import (
	"fmt"

	"github.com/inful/sitepipe/internal/urlout"
)

// Identity computes the catalog key "$family/version@component:module:relative",
// stable across rebuilds, per spec.md §6's file identity key shape.
func Identity(family urlout.Family, version, component, module, relative string) string {
	return fmt.Sprintf("$%s/%s@%s:%s:%s", family, version, component, module, relative)
}
