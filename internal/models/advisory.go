package models

// RejectReason classifies why an algorithm failed a hard constraint.
// Rejection is a normal, reportable outcome per algorithm, not an error.
type RejectReason string

const (
	RejectRoleMismatch           RejectReason = "RoleMismatch"
	RejectStatefulnessDisallowed RejectReason = "StatefulnessDisallowed"
	RejectKeySizeExceeded        RejectReason = "KeySizeExceeded"
	RejectOutputSizeExceeded     RejectReason = "OutputSizeExceeded"
	RejectStandardizationTooLow  RejectReason = "StandardizationTooLow"
)

// Rejection records one algorithm's first failing constraint.
type Rejection struct {
	AlgorithmID string       `json:"algorithm_id"`
	Reason      RejectReason `json:"reason"`
	Detail      string       `json:"detail"`
}

// CriterionScore is one criterion's contribution to a weighted total.
type CriterionScore struct {
	Criterion    string  `json:"criterion"`
	Weight       float64 `json:"weight"`
	Normalized   float64 `json:"normalized"`
	Contribution float64 `json:"contribution"`
}

// ScoreResult is the scoring output for one (algorithm, profile) pair.
// CriterionScores preserve criterion definition order so repeated runs over
// identical inputs serialize identically.
type ScoreResult struct {
	AlgorithmID     string           `json:"algorithm_id"`
	Rank            int              `json:"rank,omitempty"`
	WeightedTotal   float64          `json:"weighted_total"`
	CriterionScores []CriterionScore `json:"per_criterion_breakdown"`

	// Tie-break inputs, carried so ranking does not need a catalog lookup.
	Status     Status `json:"status"`
	OutputSize int    `json:"output_size"`
}

// Advisory is the complete output of one advisory request.
type Advisory struct {
	RequestID string            `json:"request_id"`
	Profile   DeploymentProfile `json:"profile"`
	Ranked    []ScoreResult     `json:"ranked"`
	Rejected  []Rejection       `json:"rejected"`

	// NoCandidate is true when every catalog entry failed a hard constraint.
	// This is a distinct advisory outcome, not a failure.
	NoCandidate bool `json:"no_candidate"`
}
