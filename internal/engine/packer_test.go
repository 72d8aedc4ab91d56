package engine

import (
	"testing"

	"fulfillment-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWeightCap = 1800

func TestPackSplitsOnWeightCap(t *testing.T) {
	// Three 700g units: two fit (1400g), a third would hit 2100g.
	rbc := models.Product{ID: 0, Name: "RBC A+ Adult", UnitWeight: 700}

	packages, unshippable := Pack(123, []Demand{{Product: rbc, Quantity: 3}}, testWeightCap)

	require.Len(t, packages, 2)
	assert.Empty(t, unshippable)

	assert.Equal(t, []models.LineItem{{ProductID: 0, Quantity: 2}}, packages[0].LineItems)
	assert.Equal(t, int64(1400), packages[0].TotalWeight)

	assert.Equal(t, []models.LineItem{{ProductID: 0, Quantity: 1}}, packages[1].LineItems)
	assert.Equal(t, int64(700), packages[1].TotalWeight)
}

func TestPackExactFit(t *testing.T) {
	p := models.Product{ID: 3, UnitWeight: 600}

	packages, unshippable := Pack(1, []Demand{{Product: p, Quantity: 3}}, testWeightCap)

	require.Len(t, packages, 1)
	assert.Equal(t, int64(1800), packages[0].TotalWeight)
	assert.Empty(t, unshippable)
}

func TestPackWeightBoundAndConservation(t *testing.T) {
	demand := []Demand{
		{Product: models.Product{ID: 0, UnitWeight: 700}, Quantity: 5},
		{Product: models.Product{ID: 6, UnitWeight: 120}, Quantity: 11},
		{Product: models.Product{ID: 8, UnitWeight: 40}, Quantity: 30},
		{Product: models.Product{ID: 10, UnitWeight: 300}, Quantity: 4},
	}

	packages, unshippable := Pack(7, demand, testWeightCap)
	assert.Empty(t, unshippable)

	packed := make(map[int64]int)
	for _, pkg := range packages {
		var weight int64
		for _, item := range pkg.LineItems {
			packed[item.ProductID] += item.Quantity
		}
		for _, item := range pkg.LineItems {
			switch item.ProductID {
			case 0:
				weight += int64(item.Quantity) * 700
			case 6:
				weight += int64(item.Quantity) * 120
			case 8:
				weight += int64(item.Quantity) * 40
			case 10:
				weight += int64(item.Quantity) * 300
			}
		}
		assert.Equal(t, weight, pkg.TotalWeight)
		assert.LessOrEqual(t, pkg.TotalWeight, int64(testWeightCap))
	}

	for _, d := range demand {
		assert.Equal(t, d.Quantity, packed[d.Product.ID], "product %d", d.Product.ID)
	}
}

func TestPackPreservesArrivalOrder(t *testing.T) {
	demand := []Demand{
		{Product: models.Product{ID: 2, UnitWeight: 750}, Quantity: 1},
		{Product: models.Product{ID: 5, UnitWeight: 200}, Quantity: 2},
		{Product: models.Product{ID: 9, UnitWeight: 80}, Quantity: 1},
	}

	packages, _ := Pack(1, demand, testWeightCap)
	require.Len(t, packages, 1)

	var order []int64
	for _, item := range packages[0].LineItems {
		order = append(order, item.ProductID)
	}
	assert.Equal(t, []int64{2, 5, 9}, order)
}

func TestPackZeroQuantityIsNoop(t *testing.T) {
	demand := []Demand{
		{Product: models.Product{ID: 0, UnitWeight: 700}, Quantity: 0},
		{Product: models.Product{ID: 1, UnitWeight: 700}, Quantity: -2},
	}

	packages, unshippable := Pack(1, demand, testWeightCap)
	assert.Empty(t, packages)
	assert.Empty(t, unshippable)
}

func TestPackUnpackableUnitSurfaces(t *testing.T) {
	heavy := models.Product{ID: 42, Name: "Pallet", UnitWeight: 2500}

	packages, unshippable := Pack(1, []Demand{{Product: heavy, Quantity: 3}}, testWeightCap)

	assert.Empty(t, packages)
	assert.Equal(t, map[int64]int{42: 3}, unshippable)
}

func TestPackDuplicateProductIDsSummed(t *testing.T) {
	heavy := models.Product{ID: 42, UnitWeight: 2500}
	demand := []Demand{
		{Product: heavy, Quantity: 2},
		{Product: heavy, Quantity: 3},
	}

	_, unshippable := Pack(1, demand, testWeightCap)
	assert.Equal(t, map[int64]int{42: 5}, unshippable)
}

func TestPackClosesPartialPackageBeforeHeavierProduct(t *testing.T) {
	demand := []Demand{
		{Product: models.Product{ID: 0, UnitWeight: 1000}, Quantity: 1},
		{Product: models.Product{ID: 1, UnitWeight: 900}, Quantity: 1},
	}

	packages, unshippable := Pack(1, demand, testWeightCap)
	assert.Empty(t, unshippable)

	// 1000 + 900 > 1800, so each unit ships alone.
	require.Len(t, packages, 2)
	assert.Equal(t, int64(1000), packages[0].TotalWeight)
	assert.Equal(t, int64(900), packages[1].TotalWeight)
}
