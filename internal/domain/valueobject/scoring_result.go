package valueobject

import "slices"

// ScoringResult is the output of the scoring engine. Reasons list every
// additive contribution, RedFlags only qualitative warnings.
type ScoringResult struct {
	RiskTier  RiskTier
	Reasons   []string
	RedFlags  []string
	RiskScore int
}

// Equal compares two results including the order of reasons and red flags.
func (r ScoringResult) Equal(other ScoringResult) bool {
	return r.RiskScore == other.RiskScore &&
		r.RiskTier.Equal(other.RiskTier) &&
		slices.Equal(r.Reasons, other.Reasons) &&
		slices.Equal(r.RedFlags, other.RedFlags)
}

// Clone returns a copy that shares no slices with r.
func (r ScoringResult) Clone() ScoringResult {
	return ScoringResult{
		RiskScore: r.RiskScore,
		RiskTier:  r.RiskTier,
		Reasons:   slices.Clone(r.Reasons),
		RedFlags:  slices.Clone(r.RedFlags),
	}
}
