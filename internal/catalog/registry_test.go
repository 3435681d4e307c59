package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry_ShipsDefaults(t *testing.T) {
	r := NewRegistry()

	assert.Len(t, r.Styles(), 12)
	assert.Len(t, r.Packages(), 3)

	assert.True(t, r.StyleExists("watercolor"))
	assert.False(t, r.StyleExists("vaporwave"))

	pkg := r.Package("standard")
	require.NotNil(t, pkg)
	assert.Equal(t, 9900, pkg.Price)
	assert.Equal(t, 12, pkg.Credits)
	assert.Equal(t, "Best", pkg.Tag)

	// Insertion order is stable for the storefront grid.
	styles := r.Styles()
	assert.Equal(t, "renaissance", styles[0].ID)
	assert.Equal(t, "digital_painting", styles[len(styles)-1].ID)
}

func TestLoadFromFile_ReplacesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"styles": [{"id": "custom", "name": "커스텀"}],
		"packages": [{"id": "mini", "name": "미니 팩", "price": 1000, "credits": 1}]
	}`), 0o644))

	r, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Len(t, r.Styles(), 1)
	assert.True(t, r.StyleExists("custom"))
	assert.False(t, r.StyleExists("watercolor"))
	require.NotNil(t, r.Package("mini"))
	assert.Nil(t, r.Package("standard"))
}

func TestLoadFromFile_Errors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))
	_, err = LoadFromFile(path)
	assert.Error(t, err)
}

func TestEnhancedPrompt(t *testing.T) {
	p := EnhancedPrompt("watercolor")
	assert.Contains(t, p, qualityPrefix)
	assert.Contains(t, p, "watercolor painting")
	assert.Contains(t, p, qualitySuffix)

	// Unknown ids fall back to the id itself.
	assert.Contains(t, EnhancedPrompt("my_style"), "my_style")
}
