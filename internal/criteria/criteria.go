// Package criteria defines scoring dimensions, their weights, and the
// normalization rules mapping raw algorithm attributes into [0,1].
package criteria

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-viper/mapstructure/v2"

	"github.com/pqc-tools/pqadvise/internal/catalog"
	"github.com/pqc-tools/pqadvise/internal/models"
)

var (
	// ErrDuplicateCriterion indicates two criteria share a name.
	ErrDuplicateCriterion = errors.New("duplicate criterion")

	// ErrWeightSum indicates active criterion weights do not sum to 1.0.
	ErrWeightSum = errors.New("criterion weights must sum to 1.0")

	// ErrUnknownCriterion indicates a normalize call for an undefined criterion.
	ErrUnknownCriterion = errors.New("unknown criterion")

	// ErrUnsupportedAttribute indicates a criterion reads an attribute outside
	// the closed algorithm schema.
	ErrUnsupportedAttribute = errors.New("unsupported attribute")
)

// weightTolerance is the accepted deviation when validating the weight sum.
const weightTolerance = 1e-6

// Attribute names the algorithm fields a criterion may read. The schema is
// closed: anything else fails with ErrUnsupportedAttribute instead of
// silently scoring zero.
type Attribute string

const (
	AttrSecurityBits    Attribute = "security_bits"
	AttrPublicKeySize   Attribute = "public_key_size"
	AttrOutputSize      Attribute = "output_size"
	AttrPerformance     Attribute = "performance"
	AttrStandardization Attribute = "standardization"
	AttrStatefulness    Attribute = "statefulness"
)

// Criterion is one named scoring dimension.
type Criterion struct {
	Name      string         `yaml:"name" json:"name"`
	Attribute Attribute      `yaml:"attribute" json:"attribute"`
	Weight    float64        `yaml:"weight" json:"weight"`
	Params    map[string]any `yaml:"params,omitempty" json:"params,omitempty"`
}

// securityParams holds the mapstructure-decoded parameters for the
// security_bits curve.
type securityParams struct {
	// SaturationBits is the level beyond which extra bits stop improving
	// the score. Defaults to 256.
	SaturationBits int `mapstructure:"saturation_bits"`
}

// sizeBounds holds catalog-wide min/max for one size attribute.
type sizeBounds struct {
	min, max int
}

// Model is the active criterion set. Define criteria, validate the weights,
// bind the model to a catalog, then normalize per algorithm. A bound model
// is read-only and safe for concurrent use.
type Model struct {
	ordered []Criterion
	byName  map[string]int

	bound     bool
	keyBounds sizeBounds
	outBounds sizeBounds
}

// NewModel creates an empty criterion set.
func NewModel() *Model {
	return &Model{byName: make(map[string]int)}
}

// Define registers a criterion. Definition order is preserved so score
// breakdowns are deterministic.
func (m *Model) Define(c Criterion) error {
	if c.Name == "" {
		return fmt.Errorf("criterion name must not be empty")
	}
	if _, exists := m.byName[c.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateCriterion, c.Name)
	}
	switch c.Attribute {
	case AttrSecurityBits, AttrPublicKeySize, AttrOutputSize, AttrPerformance, AttrStandardization, AttrStatefulness:
	default:
		return fmt.Errorf("%w: criterion %s reads %q", ErrUnsupportedAttribute, c.Name, c.Attribute)
	}
	if c.Weight < 0 || c.Weight > 1 {
		return fmt.Errorf("criterion %s: weight must be in [0,1], got %f", c.Name, c.Weight)
	}
	m.byName[c.Name] = len(m.ordered)
	m.ordered = append(m.ordered, c)
	return nil
}

// ValidateWeights checks that the active weights sum to 1.0 within tolerance.
func (m *Model) ValidateWeights() error {
	var sum float64
	for _, c := range m.ordered {
		sum += c.Weight
	}
	if math.Abs(sum-1.0) > weightTolerance {
		return fmt.Errorf("%w: got %.6f", ErrWeightSum, sum)
	}
	return nil
}

// Bind precomputes catalog-wide size bounds used by the inverse size curves.
// Binding the same records again yields identical bounds, so reloading an
// unchanged catalog cannot drift the normalization.
func (m *Model) Bind(c *catalog.Catalog) {
	m.keyBounds = sizeBounds{min: math.MaxInt, max: 0}
	m.outBounds = sizeBounds{min: math.MaxInt, max: 0}
	for _, alg := range c.All() {
		if alg.PublicKeySize < m.keyBounds.min {
			m.keyBounds.min = alg.PublicKeySize
		}
		if alg.PublicKeySize > m.keyBounds.max {
			m.keyBounds.max = alg.PublicKeySize
		}
		if alg.OutputSize < m.outBounds.min {
			m.outBounds.min = alg.OutputSize
		}
		if alg.OutputSize > m.outBounds.max {
			m.outBounds.max = alg.OutputSize
		}
	}
	m.bound = true
}

// All returns the criteria in definition order.
func (m *Model) All() []Criterion {
	out := make([]Criterion, len(m.ordered))
	copy(out, m.ordered)
	return out
}

// Normalize maps one algorithm attribute into [0,1] for the named criterion.
func (m *Model) Normalize(name string, alg models.Algorithm) (float64, error) {
	idx, ok := m.byName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownCriterion, name)
	}
	c := m.ordered[idx]

	switch c.Attribute {
	case AttrSecurityBits:
		var params securityParams
		if err := mapstructure.Decode(c.Params, &params); err != nil {
			return 0, fmt.Errorf("criterion %s: %w", c.Name, err)
		}
		if params.SaturationBits <= 0 {
			params.SaturationBits = 256
		}
		return normalizeSaturating(alg.SecurityBits, params.SaturationBits), nil
	case AttrPublicKeySize:
		if !m.bound {
			return 0, fmt.Errorf("criterion %s: model is not bound to a catalog", c.Name)
		}
		return normalizeInverseSize(alg.PublicKeySize, m.keyBounds), nil
	case AttrOutputSize:
		if !m.bound {
			return 0, fmt.Errorf("criterion %s: model is not bound to a catalog", c.Name)
		}
		return normalizeInverseSize(alg.OutputSize, m.outBounds), nil
	case AttrPerformance:
		return clamp01(alg.Performance), nil
	case AttrStandardization:
		return float64(alg.Status.Ordinal()) / 2.0, nil
	case AttrStatefulness:
		if alg.Stateful {
			return 0, nil
		}
		return 1, nil
	default:
		return 0, fmt.Errorf("%w: criterion %s reads %q", ErrUnsupportedAttribute, c.Name, c.Attribute)
	}
}

// normalizeInverseSize applies inverse min-max scaling: smaller sizes score
// higher. When every candidate shares the same size the score is 1.0, which
// also avoids dividing by zero.
func normalizeInverseSize(size int, b sizeBounds) float64 {
	if b.max == b.min {
		return 1.0
	}
	return clamp01(1 - float64(size-b.min)/float64(b.max-b.min))
}

// normalizeSaturating scales security bits linearly up to the saturation
// point, beyond which the score stays at 1.0.
func normalizeSaturating(bits, saturation int) float64 {
	if bits >= saturation {
		return 1.0
	}
	return float64(bits) / float64(saturation)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
