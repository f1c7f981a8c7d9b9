package event

import (
	"time"

	"github.com/georgchimion-oss/fraud-scout-lite/pkg/events"
)

const (
	// EventTypeAssessmentCreated is emitted when an assessment is opened for a company.
	EventTypeAssessmentCreated = "fraudscout.assessment.created"

	// EventTypeAssessmentScored is emitted when the scoring engine output is applied.
	EventTypeAssessmentScored = "fraudscout.assessment.scored"

	// EventTypeCriticalRiskDetected is emitted alongside AssessmentScored for Critical tiers.
	EventTypeCriticalRiskDetected = "fraudscout.critical_risk.detected"

	// EventTypeAssessmentReviewed is emitted when an analyst signs off a scored assessment.
	EventTypeAssessmentReviewed = "fraudscout.assessment.reviewed"

	// EventTypeDemoDataReset is emitted after the company dataset is replaced.
	EventTypeDemoDataReset = "fraudscout.demo_data.reset"

	aggregateAssessment = "Assessment"
	aggregateDataset    = "Dataset"
)

// AssessmentCreated is published when a new assessment is opened.
type AssessmentCreated struct {
	events.BaseEvent
	AssessmentID string   `json:"assessment_id"`
	CompanyID    string   `json:"company_id"`
	Name         string   `json:"name"`
	Country      string   `json:"country"`
	RevenueBand  string   `json:"revenue_band"`
	RiskFactors  []string `json:"risk_factors"`
}

func NewAssessmentCreated(
	assessmentID, companyID, name, country, revenueBand string,
	riskFactors []string,
	createdAt time.Time,
) AssessmentCreated {
	return AssessmentCreated{
		BaseEvent:    events.NewBaseEvent(EventTypeAssessmentCreated, assessmentID, aggregateAssessment, createdAt),
		AssessmentID: assessmentID,
		CompanyID:    companyID,
		Name:         name,
		Country:      country,
		RevenueBand:  revenueBand,
		RiskFactors:  riskFactors,
	}
}

// AssessmentScored is published when scoring output has been recorded on an
// assessment.
type AssessmentScored struct {
	events.BaseEvent
	ScoredAt     time.Time `json:"scored_at"`
	AssessmentID string    `json:"assessment_id"`
	CompanyID    string    `json:"company_id"`
	RiskTier     string    `json:"risk_tier"`
	Reasons      []string  `json:"reasons"`
	RedFlags     []string  `json:"red_flags"`
	RiskScore    int       `json:"risk_score"`
}

func NewAssessmentScored(
	assessmentID, companyID string,
	riskScore int,
	riskTier string,
	reasons, redFlags []string,
	scoredAt time.Time,
) AssessmentScored {
	return AssessmentScored{
		BaseEvent:    events.NewBaseEvent(EventTypeAssessmentScored, assessmentID, aggregateAssessment, scoredAt),
		AssessmentID: assessmentID,
		CompanyID:    companyID,
		RiskScore:    riskScore,
		RiskTier:     riskTier,
		Reasons:      reasons,
		RedFlags:     redFlags,
		ScoredAt:     scoredAt,
	}
}

// CriticalRiskDetected is published when an assessment lands in the Critical
// tier, so downstream consumers can escalate it.
type CriticalRiskDetected struct {
	events.BaseEvent
	DetectedAt   time.Time `json:"detected_at"`
	AssessmentID string    `json:"assessment_id"`
	CompanyID    string    `json:"company_id"`
	RedFlags     []string  `json:"red_flags"`
	RiskScore    int       `json:"risk_score"`
}

func NewCriticalRiskDetected(
	assessmentID, companyID string,
	riskScore int,
	redFlags []string,
	detectedAt time.Time,
) CriticalRiskDetected {
	return CriticalRiskDetected{
		BaseEvent:    events.NewBaseEvent(EventTypeCriticalRiskDetected, assessmentID, aggregateAssessment, detectedAt),
		AssessmentID: assessmentID,
		CompanyID:    companyID,
		RiskScore:    riskScore,
		RedFlags:     redFlags,
		DetectedAt:   detectedAt,
	}
}

// AssessmentReviewed is published when a scored assessment is marked reviewed.
type AssessmentReviewed struct {
	events.BaseEvent
	ReviewedAt   time.Time `json:"reviewed_at"`
	AssessmentID string    `json:"assessment_id"`
	CompanyID    string    `json:"company_id"`
}

func NewAssessmentReviewed(assessmentID, companyID string, reviewedAt time.Time) AssessmentReviewed {
	return AssessmentReviewed{
		BaseEvent:    events.NewBaseEvent(EventTypeAssessmentReviewed, assessmentID, aggregateAssessment, reviewedAt),
		AssessmentID: assessmentID,
		CompanyID:    companyID,
		ReviewedAt:   reviewedAt,
	}
}

// DemoDataReset is published after companies are reseeded and assessments cleared.
type DemoDataReset struct {
	events.BaseEvent
	DatasetVersion string `json:"dataset_version"`
	CompanyCount   int    `json:"company_count"`
}

func NewDemoDataReset(datasetVersion string, companyCount int, resetAt time.Time) DemoDataReset {
	return DemoDataReset{
		BaseEvent:      events.NewBaseEvent(EventTypeDemoDataReset, datasetVersion, aggregateDataset, resetAt),
		DatasetVersion: datasetVersion,
		CompanyCount:   companyCount,
	}
}
