package models

import (
	"fmt"
	"strings"
)

// Family identifies the mathematical family an algorithm belongs to.
type Family string

const (
	FamilyLattice      Family = "lattice"
	FamilyHashBased    Family = "hash-based"
	FamilyCodeBased    Family = "code-based"
	FamilyMultivariate Family = "multivariate"
	FamilyIsogeny      Family = "isogeny"
	FamilyOther        Family = "other"
)

// Role identifies what an algorithm is used for.
type Role string

const (
	RoleKEM       Role = "key-encapsulation"
	RoleSignature Role = "signature"
)

// Status represents how far along the standardization track an algorithm is.
// Statuses are ordered: experimental < candidate < standardized.
type Status string

const (
	StatusExperimental Status = "experimental"
	StatusCandidate    Status = "candidate"
	StatusStandardized Status = "standardized"
)

var statusRank = map[Status]int{
	StatusExperimental: 0,
	StatusCandidate:    1,
	StatusStandardized: 2,
}

func (s Status) String() string {
	return string(s)
}

// Ordinal returns the status position on the standardization track.
func (s Status) Ordinal() int {
	return statusRank[s]
}

// AtLeast returns true if s is at or above the target status.
func (s Status) AtLeast(target Status) bool {
	return statusRank[s] >= statusRank[target]
}

// ParseStatus converts a string value to a Status.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "experimental":
		return StatusExperimental, nil
	case "candidate":
		return StatusCandidate, nil
	case "standardized":
		return StatusStandardized, nil
	default:
		return StatusExperimental, fmt.Errorf("invalid standardization status %q: must be experimental, candidate, or standardized", s)
	}
}

// ParseRole converts a string value to a Role.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "key-encapsulation", "kem":
		return RoleKEM, nil
	case "signature":
		return RoleSignature, nil
	default:
		return "", fmt.Errorf("invalid role %q: must be key-encapsulation or signature", s)
	}
}

// Algorithm is the declared metadata record for one cryptographic scheme.
// The engine reasons about these attributes; it never executes the scheme.
type Algorithm struct {
	ID       string `yaml:"id" json:"id"`
	Family   Family `yaml:"family" json:"family"`
	Role     Role   `yaml:"role" json:"role"`
	Stateful bool   `yaml:"stateful,omitempty" json:"stateful"`

	// SecurityBits is the classical-equivalent security level.
	SecurityBits int `yaml:"security_bits" json:"security_bits"`

	// PublicKeySize and OutputSize are in bytes. OutputSize is the
	// ciphertext size for KEMs and the signature size for signature schemes.
	PublicKeySize int `yaml:"public_key_size" json:"public_key_size"`
	OutputSize    int `yaml:"output_size" json:"output_size"`

	// Performance is a relative throughput score in [0,1], higher is faster.
	Performance float64 `yaml:"performance" json:"performance"`

	Status Status `yaml:"status" json:"status"`
}

// Validate checks the record-level invariants.
func (a Algorithm) Validate() error {
	if strings.TrimSpace(a.ID) == "" {
		return fmt.Errorf("algorithm id must not be empty")
	}
	switch a.Family {
	case FamilyLattice, FamilyHashBased, FamilyCodeBased, FamilyMultivariate, FamilyIsogeny, FamilyOther:
	default:
		return fmt.Errorf("%s: invalid family %q", a.ID, a.Family)
	}
	switch a.Role {
	case RoleKEM, RoleSignature:
	default:
		return fmt.Errorf("%s: invalid role %q", a.ID, a.Role)
	}
	if _, ok := statusRank[a.Status]; !ok {
		return fmt.Errorf("%s: invalid status %q", a.ID, a.Status)
	}
	if a.SecurityBits <= 0 {
		return fmt.Errorf("%s: security_bits must be positive, got %d", a.ID, a.SecurityBits)
	}
	if a.PublicKeySize < 0 {
		return fmt.Errorf("%s: public_key_size must not be negative, got %d", a.ID, a.PublicKeySize)
	}
	if a.OutputSize < 0 {
		return fmt.Errorf("%s: output_size must not be negative, got %d", a.ID, a.OutputSize)
	}
	if a.Performance < 0 || a.Performance > 1 {
		return fmt.Errorf("%s: performance must be in [0,1], got %f", a.ID, a.Performance)
	}
	return nil
}
