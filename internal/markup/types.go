package markup

// Document is the structural subset of a parsed source file that the
// navigation builder and page composer consume.
type Document struct {
	Title      string
	Attributes map[string]string
	Lists      []ListBlock
}

// ListBlock is one top-level unordered list, the unit navigation trees are
// built from.
type ListBlock struct {
	Title string
	Items []ListItem
}

// ListItem is one bullet of a ListBlock, recursively nested.
type ListItem struct {
	Content string
	Items   []ListItem
}

// IncludeResult is what a successful IncludeResolver lookup returns.
type IncludeResult struct {
	Path     string
	Contents []byte
}

// IncludeResolver resolves an include directive's target to file content.
// Implementations decide proxy-prefix mapping and physical-path lookup;
// this package only calls the interface and splices the result in.
type IncludeResolver interface {
	ResolveInclude(target, originFile, cursorDir string) (IncludeResult, bool)
}

// ResolvedRef is what a PageRefResolver produces for one cross-reference.
type ResolvedRef struct {
	URL        string
	LinkText   string
	Unresolved bool
}

// PageRefResolver resolves an inline cross-reference's target spec to a
// link. relativize controls whether URL is computed relative to the
// originating page's output directory or left as a site-absolute pub URL.
type PageRefResolver interface {
	ResolvePageRef(refSpec, linkText, originFile string, relativize bool) ResolvedRef
}
