package engine

import (
	"testing"

	"fulfillment-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogAddAssignsMaxPlusOne(t *testing.T) {
	c := NewCatalog(testWeightCap)

	first, err := c.Add("RBC A+ Adult", 700)
	require.NoError(t, err)
	assert.Equal(t, int64(0), first.ID)

	second, err := c.Add("FFP A+", 300)
	require.NoError(t, err)
	assert.Equal(t, int64(1), second.ID)
}

func TestCatalogAddAfterSparseLoad(t *testing.T) {
	c := NewCatalog(testWeightCap)
	require.NoError(t, c.Load([]models.Product{
		{ID: 0, Name: "RBC A+ Adult", UnitWeight: 700},
		{ID: 5, Name: "RBC AB+ Child", UnitWeight: 200},
	}))

	// Ids stay monotonic: gaps below the max are never reused.
	added, err := c.Add("PLT O+", 80)
	require.NoError(t, err)
	assert.Equal(t, int64(6), added.ID)
}

func TestCatalogRejectsNonPositiveWeight(t *testing.T) {
	c := NewCatalog(testWeightCap)

	_, err := c.Add("bad", 0)
	assert.ErrorIs(t, err, ErrInvalidProduct)

	_, err = c.Add("bad", -5)
	assert.ErrorIs(t, err, ErrInvalidProduct)
}

func TestCatalogRejectsUnpackableWeight(t *testing.T) {
	c := NewCatalog(testWeightCap)

	_, err := c.Add("pallet", testWeightCap+1)
	assert.ErrorIs(t, err, ErrUnpackableProduct)

	err = c.Load([]models.Product{{ID: 0, Name: "pallet", UnitWeight: 2500}})
	assert.ErrorIs(t, err, ErrUnpackableProduct)
}

func TestCatalogLoadRejectsDuplicateIDs(t *testing.T) {
	c := NewCatalog(testWeightCap)
	err := c.Load([]models.Product{
		{ID: 0, Name: "a", UnitWeight: 100},
		{ID: 0, Name: "b", UnitWeight: 100},
	})
	assert.Error(t, err)
}

func TestCatalogListInsertionOrder(t *testing.T) {
	c := NewCatalog(testWeightCap)
	require.NoError(t, c.Load([]models.Product{
		{ID: 3, Name: "RBC O- Adult", UnitWeight: 680},
		{ID: 1, Name: "RBC B+ Adult", UnitWeight: 700},
	}))

	products := c.List()
	require.Len(t, products, 2)
	assert.Equal(t, int64(3), products[0].ID)
	assert.Equal(t, int64(1), products[1].ID)
}

func TestCatalogGetNotFound(t *testing.T) {
	c := NewCatalog(testWeightCap)
	_, err := c.Get(99)
	assert.ErrorIs(t, err, ErrProductNotFound)
}
