package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inful/sitepipe/internal/aggregate"
	"github.com/inful/sitepipe/internal/catalog"
	"github.com/inful/sitepipe/internal/config"
	apperrors "github.com/inful/sitepipe/internal/foundation/errors"
	"github.com/inful/sitepipe/internal/gitrepo"
	"github.com/inful/sitepipe/internal/ingest"
)

func testSite(t *testing.T) (*Composer, *config.Playbook) {
	t.Helper()

	bundle := aggregate.ComponentVersionBundle{
		Name:      "docs",
		Version:   "2.0",
		Title:     "Docs",
		StartPage: "",
		Nav:       []string{"modules/ROOT/nav.adoc"},
		Files: []gitrepo.RawFile{
			{Path: "modules/ROOT/pages/index.adoc", Contents: []byte("= Home\n:page-layout: home\n")},
			{Path: "modules/ROOT/pages/intro.adoc", Contents: []byte("= Introduction\n:page-layout: article\n")},
			{Path: "modules/ROOT/nav.adoc", Contents: []byte("* xref:index.adoc[Home]\n** xref:intro.adoc[Introduction]\n")},
		},
	}
	bundleV1 := bundle
	bundleV1.Version = "1.0"
	bundleV1.Files = []gitrepo.RawFile{
		{Path: "modules/ROOT/pages/index.adoc", Contents: []byte("= Home\n:page-layout: home\n")},
	}
	bundleV1.Nav = nil

	bundles := []aggregate.ComponentVersionBundle{bundle, bundleV1}

	cat, err := ingest.BuildCatalog(bundles, config.ExtensionStyleDefault)
	require.NoError(t, err)
	navCat := ingest.BuildNavigation(bundles, cat)

	pb := &config.Playbook{
		Site: config.SiteConfig{Title: "Docs Site", URL: "https://docs.example.com", StartPage: "docs::index.adoc"},
		UI:   config.UIConfig{DefaultLayout: "default"},
	}

	return NewComposer(pb, cat, navCat, nil), pb
}

func TestCompose_ResolvesLayoutFromAttribute(t *testing.T) {
	composer, _ := testSite(t)
	file, ok := composer.Catalog.GetByID("$page/2.0@docs:ROOT:intro.adoc")
	require.True(t, ok)

	model, err := composer.Compose(file)
	require.NoError(t, err)
	assert.Equal(t, "article", model.Layout)
	assert.Equal(t, "Introduction", model.Title)
}

func TestCompose_FallsBackToDefaultLayout(t *testing.T) {
	composer, _ := testSite(t)
	file, ok := composer.Catalog.GetByID("$page/2.0@docs:ROOT:intro.adoc")
	require.True(t, ok)
	file.Contents = []byte("= Introduction\n")

	model, err := composer.Compose(file)
	require.NoError(t, err)
	assert.Equal(t, "default", model.Layout)
}

func TestCompose_LayoutNotFoundWhenNoDefault(t *testing.T) {
	composer, _ := testSite(t)
	composer.Site.DefaultLayout = ""
	file, ok := composer.Catalog.GetByID("$page/2.0@docs:ROOT:intro.adoc")
	require.True(t, ok)
	file.Contents = []byte("= Introduction\n")

	_, err := composer.Compose(file)
	require.Error(t, err)
	classified, ok := apperrors.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CategoryLayoutNotFound, classified.Category())
}

func TestCompose_HomeAndCanonicalURL(t *testing.T) {
	composer, _ := testSite(t)
	file, ok := composer.Catalog.GetByID("$page/2.0@docs:ROOT:index.adoc")
	require.True(t, ok)

	model, err := composer.Compose(file)
	require.NoError(t, err)
	assert.True(t, model.Home)
	assert.Equal(t, "https://docs.example.com/docs/2.0/index.html", model.CanonicalURL)
}

func TestCompose_VersionFanOutSparseMode(t *testing.T) {
	composer, _ := testSite(t)
	file, ok := composer.Catalog.GetByID("$page/2.0@docs:ROOT:intro.adoc")
	require.True(t, ok)

	model, err := composer.Compose(file)
	require.NoError(t, err)
	require.Len(t, model.Versions, 2)
	assert.Equal(t, "2.0", model.Versions[0].Version)
	assert.False(t, model.Versions[0].Missing)
	assert.Equal(t, "1.0", model.Versions[1].Version)
	assert.True(t, model.Versions[1].Missing)
}

func TestCompose_BreadcrumbsFollowNavigationChain(t *testing.T) {
	composer, _ := testSite(t)
	file, ok := composer.Catalog.GetByID("$page/2.0@docs:ROOT:intro.adoc")
	require.True(t, ok)

	model, err := composer.Compose(file)
	require.NoError(t, err)
	require.Len(t, model.Breadcrumbs, 2)
	assert.Equal(t, "Home", model.Breadcrumbs[0].Content)
	assert.Equal(t, "Introduction", model.Breadcrumbs[1].Content)
}

func TestCompose_NotFoundPageBypassesNormalModel(t *testing.T) {
	composer, _ := testSite(t)
	notFound := &catalog.File{Src: catalog.FileSrc{Stem: "404"}}

	model, err := composer.Compose(notFound)
	require.NoError(t, err)
	assert.Equal(t, "404", model.Layout)
	assert.Empty(t, model.Title)
}
