package model

import (
	"fmt"
	"slices"
	"time"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/valueobject"
)

// AssessmentSnapshot is the flat record form of an Assessment used by the
// key-value stores. Output fields are present only once the assessment is scored.
type AssessmentSnapshot struct {
	CreatedAt   time.Time  `json:"createdAt"`
	ScoredAt    *time.Time `json:"scoredAt,omitempty"`
	ReviewedAt  *time.Time `json:"reviewedAt,omitempty"`
	RiskScore   *int       `json:"riskScore,omitempty"`
	ID          string     `json:"id"`
	CompanyID   string     `json:"companyId"`
	Name        string     `json:"name"`
	Notes       string     `json:"notes"`
	Country     string     `json:"country"`
	RevenueBand string     `json:"revenueBand"`
	Status      string     `json:"status"`
	RiskTier    string     `json:"riskTier,omitempty"`
	RiskFactors []string   `json:"riskFactors"`
	Reasons     []string   `json:"reasons,omitempty"`
	RedFlags    []string   `json:"redFlags,omitempty"`
	Version     int        `json:"version"`
}

// Snapshot flattens the aggregate into its record form.
func (a *Assessment) Snapshot() AssessmentSnapshot {
	s := AssessmentSnapshot{
		ID:          a.id,
		CompanyID:   a.companyID,
		Name:        a.name,
		Notes:       a.notes,
		Country:     a.country,
		RevenueBand: a.revenueBand.String(),
		RiskFactors: valueobject.RiskFactorStrings(a.riskFactors),
		Status:      a.Status().String(),
		CreatedAt:   a.createdAt,
		Version:     a.version,
	}
	if a.scoring != nil {
		score := a.scoring.Result.RiskScore
		scoredAt := a.scoring.ScoredAt
		s.RiskScore = &score
		s.RiskTier = a.scoring.Result.RiskTier.String()
		s.Reasons = slices.Clone(a.scoring.Result.Reasons)
		s.RedFlags = slices.Clone(a.scoring.Result.RedFlags)
		s.ScoredAt = &scoredAt
	}
	if a.reviewedAt != nil {
		reviewedAt := *a.reviewedAt
		s.ReviewedAt = &reviewedAt
	}
	return s
}

// Reconstruct rebuilds an Assessment from its record form (no events). The
// output fields must be either all present or all absent.
func Reconstruct(s AssessmentSnapshot) (*Assessment, error) {
	a := &Assessment{
		id:          s.ID,
		companyID:   s.CompanyID,
		name:        s.Name,
		notes:       s.Notes,
		country:     s.Country,
		revenueBand: valueobject.RevenueBand(s.RevenueBand),
		riskFactors: valueobject.RiskFactorsFromStrings(s.RiskFactors),
		createdAt:   s.CreatedAt,
		version:     s.Version,
	}

	hasScore := s.RiskScore != nil || s.ScoredAt != nil || s.RiskTier != ""
	if hasScore {
		if s.RiskScore == nil || s.ScoredAt == nil || s.RiskTier == "" {
			return nil, fmt.Errorf("assessment %s has partial scoring output", s.ID)
		}
		tier, err := valueobject.RiskTierFromString(s.RiskTier)
		if err != nil {
			return nil, fmt.Errorf("assessment %s: %w", s.ID, err)
		}
		reasons := slices.Clone(s.Reasons)
		if reasons == nil {
			reasons = make([]string, 0)
		}
		redFlags := slices.Clone(s.RedFlags)
		if redFlags == nil {
			redFlags = make([]string, 0)
		}
		a.scoring = &Scoring{
			Result: valueobject.ScoringResult{
				RiskScore: *s.RiskScore,
				RiskTier:  tier,
				Reasons:   reasons,
				RedFlags:  redFlags,
			},
			ScoredAt: *s.ScoredAt,
		}
	}

	if s.ReviewedAt != nil {
		if a.scoring == nil {
			return nil, fmt.Errorf("assessment %s is reviewed but was never scored", s.ID)
		}
		reviewedAt := *s.ReviewedAt
		a.reviewedAt = &reviewedAt
	}

	if s.Status != "" && s.Status != a.Status().String() {
		return nil, fmt.Errorf("assessment %s: stored status %q does not match its fields", s.ID, s.Status)
	}

	return a, nil
}
