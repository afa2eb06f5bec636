package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inful/sitepipe/internal/catalog"
	"github.com/inful/sitepipe/internal/config"
	"github.com/inful/sitepipe/internal/urlout"
)

func newPartial(component, version, relative string, contents string) *catalog.File {
	return &catalog.File{
		Path:     "modules/ROOT/pages/_partials/" + relative,
		Contents: []byte(contents),
		Src: catalog.FileSrc{
			Component: component, Version: version, Module: "ROOT",
			Family: urlout.FamilyPartial, Relative: relative,
		},
	}
}

func TestIncludeResolver_ProxyPrefixLooksUpPartial(t *testing.T) {
	cat := catalog.NewCatalog(config.ExtensionStyleDefault)
	partial := newPartial("docs", "1.0", "snippet.adoc", "snippet body")
	require.NoError(t, cat.AddFile(partial))

	r := IncludeResolver{Catalog: cat, Component: "docs", Version: "1.0", Module: "ROOT"}
	result, ok := r.ResolveInclude("partial$/snippet.adoc", "page.adoc", ".")
	require.True(t, ok)
	assert.Equal(t, "snippet body", string(result.Contents))
}

func TestIncludeResolver_CursorRelativeLooksUpByPhysicalPath(t *testing.T) {
	cat := catalog.NewCatalog(config.ExtensionStyleDefault)
	target := &catalog.File{
		Path:     "modules/ROOT/pages/guide/setup.adoc",
		Contents: []byte("setup body"),
		Src: catalog.FileSrc{
			Component: "docs", Version: "1.0", Module: "ROOT",
			Family: urlout.FamilyPage, Relative: "guide/setup.adoc",
			Basename: "setup.adoc", Stem: "setup", Extname: ".adoc",
			MediaType: urlout.SourceMarkupMediaType,
		},
	}
	require.NoError(t, cat.AddFile(target))

	r := IncludeResolver{Catalog: cat, Component: "docs", Version: "1.0", Module: "ROOT"}
	result, ok := r.ResolveInclude("setup.adoc", "page.adoc", "modules/ROOT/pages/guide")
	require.True(t, ok)
	assert.Equal(t, "setup body", string(result.Contents))
}

func TestIncludeResolver_MissTargetReturnsFalse(t *testing.T) {
	cat := catalog.NewCatalog(config.ExtensionStyleDefault)
	r := IncludeResolver{Catalog: cat, Component: "docs", Version: "1.0", Module: "ROOT"}
	_, ok := r.ResolveInclude("nope.adoc", "page.adoc", ".")
	assert.False(t, ok)
}
