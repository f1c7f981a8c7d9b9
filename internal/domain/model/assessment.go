package model

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/event"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/service"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/valueobject"
	"github.com/georgchimion-oss/fraud-scout-lite/pkg/events"
)

// Scoring is the complete output of a scoring run. An assessment either has
// one or has none.
type Scoring struct {
	ScoredAt time.Time
	Result   valueobject.ScoringResult
}

// Assessment is the aggregate root for a company fraud-risk assessment.
type Assessment struct {
	createdAt   time.Time
	scoring     *Scoring
	reviewedAt  *time.Time
	id          string
	companyID   string
	name        string
	notes       string
	country     string
	revenueBand valueobject.RevenueBand
	riskFactors []valueobject.RiskFactor
	collector   events.EventCollector
	version     int
}

// NewAssessment opens an unscored assessment. Factor and band labels are not
// checked here; the engine tolerates unknown values.
func NewAssessment(
	id, companyID, name, notes, country string,
	revenueBand valueobject.RevenueBand,
	riskFactors []valueobject.RiskFactor,
	createdAt time.Time,
) (*Assessment, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: assessment id is required", ErrValidation)
	}
	if strings.TrimSpace(companyID) == "" {
		return nil, fmt.Errorf("%w: company id is required", ErrValidation)
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: assessment name is required", ErrValidation)
	}
	if strings.TrimSpace(country) == "" {
		return nil, fmt.Errorf("%w: country is required", ErrValidation)
	}
	if revenueBand == "" {
		return nil, fmt.Errorf("%w: revenue band is required", ErrValidation)
	}
	if createdAt.IsZero() {
		return nil, fmt.Errorf("%w: creation time is required", ErrValidation)
	}

	a := &Assessment{
		id:          id,
		companyID:   companyID,
		name:        strings.TrimSpace(name),
		notes:       notes,
		country:     country,
		revenueBand: revenueBand,
		riskFactors: slices.Clone(riskFactors),
		createdAt:   createdAt.UTC(),
		version:     1,
	}
	if a.riskFactors == nil {
		a.riskFactors = make([]valueobject.RiskFactor, 0)
	}

	a.collector.Record(event.NewAssessmentCreated(
		a.id, a.companyID, a.name, a.country, a.revenueBand.String(),
		valueobject.RiskFactorStrings(a.riskFactors), a.createdAt,
	))

	return a, nil
}

// ApplyScore records the engine output. Only Open assessments can be scored;
// the score, tier, reasons, red flags and timestamp are set together.
func (a *Assessment) ApplyScore(result valueobject.ScoringResult, scoredAt time.Time) error {
	if a.Status() != valueobject.StatusOpen {
		return fmt.Errorf("%w: cannot score assessment %s in status %s", ErrInvalidTransition, a.id, a.Status())
	}
	if result.RiskScore < 0 || result.RiskScore > service.MaxScore {
		return fmt.Errorf("%w: risk score must be between 0 and %d, got %d", ErrValidation, service.MaxScore, result.RiskScore)
	}
	if !valueobject.RiskTierFromScore(result.RiskScore).Equal(result.RiskTier) {
		return fmt.Errorf("%w: tier %s does not match score %d", ErrValidation, result.RiskTier, result.RiskScore)
	}

	a.scoring = &Scoring{Result: result.Clone(), ScoredAt: scoredAt.UTC()}
	a.version++

	a.collector.Record(event.NewAssessmentScored(
		a.id, a.companyID,
		result.RiskScore, result.RiskTier.String(),
		slices.Clone(result.Reasons), slices.Clone(result.RedFlags),
		a.scoring.ScoredAt,
	))

	if result.RiskTier.Equal(valueobject.RiskTierCritical) {
		a.collector.Record(event.NewCriticalRiskDetected(
			a.id, a.companyID, result.RiskScore, slices.Clone(result.RedFlags), a.scoring.ScoredAt,
		))
	}

	return nil
}

// MarkReviewed closes a Scored assessment.
func (a *Assessment) MarkReviewed(reviewedAt time.Time) error {
	if a.Status() != valueobject.StatusScored {
		return fmt.Errorf("%w: cannot review assessment %s in status %s", ErrInvalidTransition, a.id, a.Status())
	}

	at := reviewedAt.UTC()
	a.reviewedAt = &at
	a.version++

	a.collector.Record(event.NewAssessmentReviewed(a.id, a.companyID, at))
	return nil
}

// ScoringInput returns the fields the scoring engine reads.
func (a *Assessment) ScoringInput() service.ScoringInput {
	return service.ScoringInput{
		RiskFactors: slices.Clone(a.riskFactors),
		Country:     a.country,
		RevenueBand: a.revenueBand,
	}
}

// Status is derived from which outputs are present.
func (a *Assessment) Status() valueobject.AssessmentStatus {
	switch {
	case a.reviewedAt != nil:
		return valueobject.StatusReviewed
	case a.scoring != nil:
		return valueobject.StatusScored
	default:
		return valueobject.StatusOpen
	}
}

// Scoring returns the scoring outcome and whether one exists.
func (a *Assessment) Scoring() (Scoring, bool) {
	if a.scoring == nil {
		return Scoring{}, false
	}
	return Scoring{Result: a.scoring.Result.Clone(), ScoredAt: a.scoring.ScoredAt}, true
}

// ReviewedAt returns the review time and whether the assessment was reviewed.
func (a *Assessment) ReviewedAt() (time.Time, bool) {
	if a.reviewedAt == nil {
		return time.Time{}, false
	}
	return *a.reviewedAt, true
}

// --- Accessors ---

func (a *Assessment) ID() string                            { return a.id }
func (a *Assessment) CompanyID() string                     { return a.companyID }
func (a *Assessment) Name() string                          { return a.name }
func (a *Assessment) Notes() string                         { return a.notes }
func (a *Assessment) Country() string                       { return a.country }
func (a *Assessment) RevenueBand() valueobject.RevenueBand  { return a.revenueBand }
func (a *Assessment) RiskFactors() []valueobject.RiskFactor { return slices.Clone(a.riskFactors) }
func (a *Assessment) CreatedAt() time.Time                  { return a.createdAt }
func (a *Assessment) Version() int                          { return a.version }

// DomainEvents returns all accumulated domain events and clears them.
func (a *Assessment) DomainEvents() []events.DomainEvent {
	return a.collector.ClearEvents()
}
