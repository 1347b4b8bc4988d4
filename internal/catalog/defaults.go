package catalog

import "github.com/pqc-tools/pqadvise/internal/models"

// defaultRecords holds the built-in survey of NIST-track PQC algorithms.
// Sizes are in bytes for the smallest common parameter set of each scheme;
// security bits are classical-equivalent levels. Performance is a relative
// throughput score, higher is faster.
var defaultRecords = []models.Algorithm{
	{ID: "ml-kem-512", Family: models.FamilyLattice, Role: models.RoleKEM, SecurityBits: 128, PublicKeySize: 800, OutputSize: 768, Performance: 0.97, Status: models.StatusStandardized},
	{ID: "ml-kem-768", Family: models.FamilyLattice, Role: models.RoleKEM, SecurityBits: 192, PublicKeySize: 1184, OutputSize: 1088, Performance: 0.95, Status: models.StatusStandardized},
	{ID: "ml-kem-1024", Family: models.FamilyLattice, Role: models.RoleKEM, SecurityBits: 256, PublicKeySize: 1568, OutputSize: 1568, Performance: 0.93, Status: models.StatusStandardized},
	{ID: "ml-dsa-44", Family: models.FamilyLattice, Role: models.RoleSignature, SecurityBits: 128, PublicKeySize: 1312, OutputSize: 2420, Performance: 0.90, Status: models.StatusStandardized},
	{ID: "ml-dsa-65", Family: models.FamilyLattice, Role: models.RoleSignature, SecurityBits: 192, PublicKeySize: 1952, OutputSize: 3309, Performance: 0.88, Status: models.StatusStandardized},
	{ID: "ml-dsa-87", Family: models.FamilyLattice, Role: models.RoleSignature, SecurityBits: 256, PublicKeySize: 2592, OutputSize: 4627, Performance: 0.85, Status: models.StatusStandardized},
	{ID: "fn-dsa-512", Family: models.FamilyLattice, Role: models.RoleSignature, SecurityBits: 128, PublicKeySize: 897, OutputSize: 666, Performance: 0.70, Status: models.StatusCandidate},
	{ID: "fn-dsa-1024", Family: models.FamilyLattice, Role: models.RoleSignature, SecurityBits: 256, PublicKeySize: 1793, OutputSize: 1280, Performance: 0.65, Status: models.StatusCandidate},
	{ID: "slh-dsa-128s", Family: models.FamilyHashBased, Role: models.RoleSignature, SecurityBits: 128, PublicKeySize: 32, OutputSize: 7856, Performance: 0.30, Status: models.StatusStandardized},
	{ID: "slh-dsa-192s", Family: models.FamilyHashBased, Role: models.RoleSignature, SecurityBits: 192, PublicKeySize: 48, OutputSize: 16224, Performance: 0.25, Status: models.StatusStandardized},
	{ID: "xmss", Family: models.FamilyHashBased, Role: models.RoleSignature, Stateful: true, SecurityBits: 256, PublicKeySize: 64, OutputSize: 2500, Performance: 0.55, Status: models.StatusStandardized},
	{ID: "lms", Family: models.FamilyHashBased, Role: models.RoleSignature, Stateful: true, SecurityBits: 256, PublicKeySize: 60, OutputSize: 1616, Performance: 0.60, Status: models.StatusStandardized},
	{ID: "classic-mceliece-348864", Family: models.FamilyCodeBased, Role: models.RoleKEM, SecurityBits: 128, PublicKeySize: 261120, OutputSize: 96, Performance: 0.60, Status: models.StatusCandidate},
	{ID: "hqc-128", Family: models.FamilyCodeBased, Role: models.RoleKEM, SecurityBits: 128, PublicKeySize: 2249, OutputSize: 4481, Performance: 0.75, Status: models.StatusCandidate},
	{ID: "bike-l1", Family: models.FamilyCodeBased, Role: models.RoleKEM, SecurityBits: 128, PublicKeySize: 1541, OutputSize: 1573, Performance: 0.70, Status: models.StatusExperimental},
	{ID: "frodokem-640", Family: models.FamilyLattice, Role: models.RoleKEM, SecurityBits: 128, PublicKeySize: 9616, OutputSize: 9720, Performance: 0.50, Status: models.StatusExperimental},
	{ID: "uov-ip", Family: models.FamilyMultivariate, Role: models.RoleSignature, SecurityBits: 128, PublicKeySize: 66576, OutputSize: 96, Performance: 0.80, Status: models.StatusExperimental},
	{ID: "mayo-1", Family: models.FamilyMultivariate, Role: models.RoleSignature, SecurityBits: 128, PublicKeySize: 1420, OutputSize: 454, Performance: 0.78, Status: models.StatusExperimental},
}

// Default returns the built-in catalog. Each call builds a fresh snapshot so
// callers can never share mutable state through it.
func Default() *Catalog {
	c, err := Load(defaultRecords)
	if err != nil {
		// The built-in records are validated by tests; failing here means
		// the binary itself is broken.
		panic("built-in catalog is invalid: " + err.Error())
	}
	return c
}
