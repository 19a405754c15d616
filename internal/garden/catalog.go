package garden

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/osse101/GardenBot_Go/internal/domain"
	"github.com/osse101/GardenBot_Go/internal/validation"
)

//go:embed catalog/varieties.json
var defaultCatalogJSON []byte

//go:embed catalog/varieties.schema.json
var catalogSchemaJSON []byte

// Catalog is the fixed list of varieties a new plant is drawn from
type Catalog struct {
	Varieties []string `json:"varieties"`
}

// DefaultCatalog returns the built-in catalog
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(defaultCatalogJSON)
}

// LoadCatalog reads and validates a catalog file. An empty path returns the built-in catalog.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrInvalidCatalog, path, err)
	}
	return ParseCatalog(data)
}

// ParseCatalog validates data against the catalog schema and decodes it
func ParseCatalog(data []byte) (*Catalog, error) {
	v := validation.NewSchemaValidator()
	if err := v.Register(CatalogSchemaName, catalogSchemaJSON); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, err)
	}
	if err := v.ValidateBytes(data, CatalogSchemaName); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, err)
	}

	var c Catalog
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidCatalog, err)
	}
	return &c, nil
}

// Pick draws a variety uniformly
func (c *Catalog) Pick(r RandomSource) string {
	return c.Varieties[r.IntN(len(c.Varieties))]
}
