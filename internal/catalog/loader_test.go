package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalogFile(t *testing.T) {
	c, err := Load("testdata/custom.yaml")
	require.NoError(t, err)

	assert.Equal(t, "ev-basics", c.Name)
	require.Len(t, c.Categories, 2)
	assert.Equal(t, "battery_charging", c.Categories[0].Name)
	assert.Equal(t, []string{"state_of_charge", "charging_status"}, c.Categories[0].Subcategories)
	assert.Equal(t, 3, c.TotalSubcategories())
}

func TestLoadPreservesFileOrder(t *testing.T) {
	c, err := Load("testdata/custom.yaml")
	require.NoError(t, err)

	pairs := c.Pairs()
	assert.Equal(t, Pair{Category: "battery_charging", Subcategory: "state_of_charge"}, pairs[0])
	assert.Equal(t, Pair{Category: "tire_pressure", Subcategory: "front_left_wheel"}, pairs[2])
}

func TestLoadNonexistentFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories: [not: valid"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsInvalidCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dup.yaml")
	content := `name: dup
categories:
  - name: a
    subcategories: [x, x]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate subcategory")
}
