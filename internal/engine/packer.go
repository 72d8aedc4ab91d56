package engine

import "fulfillment-service/internal/models"

// Demand pairs a product with a quantity to pack. The quantity is expected
// to be pre-resolved against stock by the caller; the packer is weight-aware
// only.
type Demand struct {
	Product  models.Product
	Quantity int
}

// Pack splits demand into packages bounded by weightCap using a greedy
// first-fit pass in arrival order. It returns the packages plus a per-product
// map of units that could not be packed at all (unit weight above the cap).
//
// Duplicate product ids in the demand sequence are allowed; their unpackable
// remainders are summed. A zero or negative quantity contributes nothing.
func Pack(orderID int64, demand []Demand, weightCap int64) ([]models.Package, map[int64]int) {
	var packages []models.Package
	var items []models.LineItem
	var weight int64
	unshippable := make(map[int64]int)

	flush := func() {
		if len(items) == 0 {
			return
		}
		packages = append(packages, models.Package{
			OrderID:     orderID,
			LineItems:   items,
			TotalWeight: weight,
		})
		items = nil
		weight = 0
	}

	for _, d := range demand {
		if d.Quantity <= 0 {
			continue
		}
		if d.Product.UnitWeight > weightCap {
			// Cannot fit even an empty package; surface, never drop.
			unshippable[d.Product.ID] += d.Quantity
			continue
		}

		remaining := d.Quantity
		for remaining > 0 {
			room := int((weightCap - weight) / d.Product.UnitWeight)
			if room == 0 {
				// Close out the current package and retry against a fresh one.
				flush()
				continue
			}
			take := remaining
			if take > room {
				take = room
			}
			items = append(items, models.LineItem{ProductID: d.Product.ID, Quantity: take})
			weight += int64(take) * d.Product.UnitWeight
			remaining -= take
		}
	}

	flush()
	return packages, unshippable
}
