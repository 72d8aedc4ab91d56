package seed

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"fulfillment-service/internal/models"
)

//go:embed catalog.json
var defaultCatalog []byte

// Default returns the built-in blood-bank product catalog.
func Default() ([]models.Product, error) {
	return parse(defaultCatalog)
}

// FromFile loads a catalog seed from a JSON file with the same record format
// as the built-in seed.
func FromFile(path string) ([]models.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog seed: %w", err)
	}
	return parse(data)
}

func parse(data []byte) ([]models.Product, error) {
	var products []models.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse catalog seed: %w", err)
	}
	return products, nil
}
