package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_AddTreeInsertsByOrder(t *testing.T) {
	cat := NewCatalog()
	cat.AddTree("docs", "1.0", Tree{Order: 1})
	cat.AddTree("docs", "1.0", Tree{Order: 0})
	cat.AddTree("docs", "1.0", Tree{Order: 0.5})

	menu := cat.GetMenu("docs", "1.0")
	require.Len(t, menu, 3)
	assert.Equal(t, float64(0), menu[0].Order)
	assert.Equal(t, 0.5, menu[1].Order)
	assert.Equal(t, float64(1), menu[2].Order)
}

func TestCatalog_GetMenuUnknownReturnsNil(t *testing.T) {
	cat := NewCatalog()
	assert.Nil(t, cat.GetMenu("nope", "1.0"))
}

func TestCatalog_MenusAreIsolatedPerComponentVersion(t *testing.T) {
	cat := NewCatalog()
	cat.AddTree("docs", "1.0", Tree{Order: 0})
	cat.AddTree("docs", "2.0", Tree{Order: 0})
	cat.AddTree("other", "1.0", Tree{Order: 0})

	assert.Len(t, cat.GetMenu("docs", "1.0"), 1)
	assert.Len(t, cat.GetMenu("docs", "2.0"), 1)
	assert.Len(t, cat.GetMenu("other", "1.0"), 1)
}
