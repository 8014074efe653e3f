package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default_catalog.yaml
var defaultCatalogYAML []byte

type catalogFile struct {
	Games []GameRecord `yaml:"games"`
}

// Parse decodes a catalog document. JSON is accepted as well since it is a
// subset of YAML.
func Parse(data []byte) ([]GameRecord, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return f.Games, nil
}

// DefaultRecords returns the built-in catalog.
func DefaultRecords() []GameRecord {
	records, err := Parse(defaultCatalogYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return records
}

// LoadFile reads and validates a catalog file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	records, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return New(records)
}
