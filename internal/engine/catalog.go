package engine

import (
	"fmt"

	"fulfillment-service/internal/models"
)

// Catalog is the in-memory registry of products. Products are kept in
// insertion order and are never deleted. The catalog itself is not
// goroutine-safe; the Engine serializes all access.
type Catalog struct {
	products  []models.Product
	byID      map[int64]models.Product
	weightCap int64
}

// NewCatalog creates an empty catalog. Products heavier than weightCap are
// rejected at add/load time since they could never fit a package.
func NewCatalog(weightCap int64) *Catalog {
	return &Catalog{
		byID:      make(map[int64]models.Product),
		weightCap: weightCap,
	}
}

// Load seeds the catalog with a batch of pre-assigned products.
func (c *Catalog) Load(products []models.Product) error {
	for _, p := range products {
		if p.ID < 0 {
			return fmt.Errorf("product %q: id must be non-negative", p.Name)
		}
		if _, exists := c.byID[p.ID]; exists {
			return fmt.Errorf("product %q: duplicate id %d", p.Name, p.ID)
		}
		if err := c.validateWeight(p.UnitWeight); err != nil {
			return fmt.Errorf("product %q: %w", p.Name, err)
		}
		c.products = append(c.products, p)
		c.byID[p.ID] = p
	}
	return nil
}

// Add registers a new product, assigning the next id after the current
// maximum (0 for an empty catalog).
func (c *Catalog) Add(name string, unitWeight int64) (models.Product, error) {
	if err := c.validateWeight(unitWeight); err != nil {
		return models.Product{}, err
	}

	product := models.Product{
		ID:         c.nextID(),
		Name:       name,
		UnitWeight: unitWeight,
	}
	c.products = append(c.products, product)
	c.byID[product.ID] = product
	return product, nil
}

// Get looks up a product by id.
func (c *Catalog) Get(id int64) (models.Product, error) {
	product, ok := c.byID[id]
	if !ok {
		return models.Product{}, fmt.Errorf("%w: %d", ErrProductNotFound, id)
	}
	return product, nil
}

// List returns all products in insertion order.
func (c *Catalog) List() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) validateWeight(unitWeight int64) error {
	if unitWeight <= 0 {
		return ErrInvalidProduct
	}
	if unitWeight > c.weightCap {
		return ErrUnpackableProduct
	}
	return nil
}

func (c *Catalog) nextID() int64 {
	var next int64
	for id := range c.byID {
		if id >= next {
			next = id + 1
		}
	}
	return next
}
