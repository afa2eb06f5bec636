package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubIncludeResolver struct {
	files map[string]IncludeResult
}

func (s stubIncludeResolver) ResolveInclude(target, originFile, cursorDir string) (IncludeResult, bool) {
	result, ok := s.files[target]
	return result, ok
}

func TestExpandIncludes_ResolvedAndNested(t *testing.T) {
	resolver := stubIncludeResolver{files: map[string]IncludeResult{
		"shared/intro.adoc":  {Path: "modules/ROOT/pages/shared/intro.adoc", Contents: []byte("Intro body include::shared/footer.adoc[]")},
		"shared/footer.adoc": {Path: "modules/ROOT/pages/shared/footer.adoc", Contents: []byte("Footer text")},
	}}

	body := []byte("Before\ninclude::shared/intro.adoc[]\nAfter")
	out := ExpandIncludes(body, resolver, "page.adoc", ".")

	assert.Contains(t, string(out), "Intro body Footer text")
	assert.Contains(t, string(out), "Before")
	assert.Contains(t, string(out), "After")
	assert.NotContains(t, string(out), "include::")
}

func TestExpandIncludes_UnresolvedLeftInPlace(t *testing.T) {
	resolver := stubIncludeResolver{files: map[string]IncludeResult{}}
	body := []byte("X include::missing.adoc[] Y")
	out := ExpandIncludes(body, resolver, "page.adoc", ".")
	assert.Equal(t, string(body), string(out))
}
