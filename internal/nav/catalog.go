package nav

import "fmt"

// Catalog indexes ordered per-(component, version) menus, built after
// classification (§4.9's NavigationCatalog).
type Catalog struct {
	menus map[string][]Tree
}

// NewCatalog returns an empty navigation catalog.
func NewCatalog() *Catalog {
	return &Catalog{menus: make(map[string][]Tree)}
}

func menuKey(component, version string) string {
	return fmt.Sprintf("%s:%s", component, version)
}

// AddTree inserts tree into the (component, version) menu at the first
// position whose existing order is >= tree.Order, appending otherwise —
// per spec.md §4.9's addTree.
func (c *Catalog) AddTree(component, version string, tree Tree) {
	key := menuKey(component, version)
	menu := c.menus[key]

	idx := len(menu)
	for i, existing := range menu {
		if existing.Order >= tree.Order {
			idx = i
			break
		}
	}

	menu = append(menu, Tree{})
	copy(menu[idx+1:], menu[idx:])
	menu[idx] = tree
	c.menus[key] = menu
}

// GetMenu returns the (component, version) menu, or nil if none was built.
func (c *Catalog) GetMenu(component, version string) []Tree {
	return c.menus[menuKey(component, version)]
}
