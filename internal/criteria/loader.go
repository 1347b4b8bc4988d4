package criteria

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// criteriaFile is the on-disk YAML shape of a criteria document.
type criteriaFile struct {
	Criteria []Criterion `yaml:"criteria"`
}

// LoadFile reads a criteria YAML file into a validated model.
func LoadFile(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading criteria file: %w", err)
	}
	return LoadBytes(data)
}

// LoadBytes builds a validated model from raw criteria YAML.
func LoadBytes(data []byte) (*Model, error) {
	var doc criteriaFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing criteria file: %w", err)
	}

	m := NewModel()
	for _, c := range doc.Criteria {
		if err := m.Define(c); err != nil {
			return nil, err
		}
	}
	if err := m.ValidateWeights(); err != nil {
		return nil, err
	}
	return m, nil
}

// Default returns the built-in criterion set. The weights are configuration,
// not policy: a criteria file overrides them wholesale.
func Default() *Model {
	m := NewModel()
	defaults := []Criterion{
		{Name: "security", Attribute: AttrSecurityBits, Weight: 0.30},
		{Name: "performance", Attribute: AttrPerformance, Weight: 0.25},
		{Name: "key-size", Attribute: AttrPublicKeySize, Weight: 0.15},
		{Name: "output-size", Attribute: AttrOutputSize, Weight: 0.15},
		{Name: "standardization", Attribute: AttrStandardization, Weight: 0.15},
	}
	for _, c := range defaults {
		if err := m.Define(c); err != nil {
			panic("built-in criteria are invalid: " + err.Error())
		}
	}
	if err := m.ValidateWeights(); err != nil {
		panic("built-in criteria are invalid: " + err.Error())
	}
	return m
}
