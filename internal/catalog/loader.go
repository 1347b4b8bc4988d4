package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pqc-tools/pqadvise/internal/models"
)

// catalogFile is the on-disk YAML shape of a catalog document.
type catalogFile struct {
	Algorithms []models.Algorithm `yaml:"algorithms"`
}

// LoadFile reads a catalog YAML file and builds a catalog from it.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return LoadBytes(data)
}

// LoadBytes builds a catalog from raw catalog YAML.
func LoadBytes(data []byte) (*Catalog, error) {
	var doc catalogFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}
	return Load(doc.Algorithms)
}
