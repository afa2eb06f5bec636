package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inful/sitepipe/internal/catalog"
	"github.com/inful/sitepipe/internal/config"
	"github.com/inful/sitepipe/internal/pageid"
)

func TestCrossRefResolver_AbsoluteURL(t *testing.T) {
	cat := catalog.NewCatalog(config.ExtensionStyleDefault)
	require.NoError(t, cat.AddFile(newTestPage("docs", "1.0", "setup.adoc")))

	r := CrossRefResolver{Catalog: cat, Context: pageid.Context{Component: "docs", Version: "1.0", Module: "ROOT"}}
	ref := r.ResolvePageRef("setup.adoc", "Setup", "origin.adoc", false)
	assert.False(t, ref.Unresolved)
	assert.Equal(t, "/docs/1.0/x.html", ref.URL)
}

func TestCrossRefResolver_Relativize(t *testing.T) {
	cat := catalog.NewCatalog(config.ExtensionStyleDefault)
	require.NoError(t, cat.AddFile(newTestPage("docs", "1.0", "setup.adoc")))

	r := CrossRefResolver{
		Catalog:          cat,
		Context:          pageid.Context{Component: "docs", Version: "1.0", Module: "ROOT"},
		OriginOutDirname: "docs/1.0/guide",
	}
	ref := r.ResolvePageRef("setup.adoc", "Setup", "origin.adoc", true)
	assert.False(t, ref.Unresolved)
	assert.Equal(t, "../x.html", ref.URL)
}

func TestCrossRefResolver_DereferencesAlias(t *testing.T) {
	cat := catalog.NewCatalog(config.ExtensionStyleDefault)
	target := newTestPage("docs", "1.0", "setup.adoc")
	require.NoError(t, cat.AddFile(target))
	require.NoError(t, cat.RegisterPageAlias("docs::old-setup", target))

	r := CrossRefResolver{Catalog: cat, Context: pageid.Context{Component: "docs", Version: "1.0", Module: "ROOT"}}
	ref := r.ResolvePageRef("old-setup.adoc", "Old Setup", "origin.adoc", false)
	assert.False(t, ref.Unresolved)
	assert.Equal(t, "/docs/1.0/x.html", ref.URL)
}

func TestCrossRefResolver_InvalidSpecIsUnresolved(t *testing.T) {
	cat := catalog.NewCatalog(config.ExtensionStyleDefault)
	r := CrossRefResolver{Catalog: cat}
	ref := r.ResolvePageRef("", "text", "origin.adoc", false)
	assert.True(t, ref.Unresolved)
}
