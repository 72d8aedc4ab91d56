package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	products, err := Default()
	require.NoError(t, err)
	require.Len(t, products, 13)

	seen := make(map[int64]bool)
	for _, p := range products {
		assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
		seen[p.ID] = true
		assert.NotEmpty(t, p.Name)
		assert.Positive(t, p.UnitWeight)
	}

	assert.Equal(t, "RBC A+ Adult", products[0].Name)
	assert.Equal(t, int64(700), products[0].UnitWeight)
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	data := `[{"product_id": 0, "product_name": "RBC A+ Adult", "mass_g": 700}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	products, err := FromFile(path)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(700), products[0].UnitWeight)

	_, err = FromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
