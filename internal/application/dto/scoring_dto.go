package dto

import "github.com/georgchimion-oss/fraud-scout-lite/internal/domain/valueobject"

// PreviewScoreRequest scores ad-hoc inputs without storing anything.
type PreviewScoreRequest struct {
	Country     string   `json:"country"`
	RevenueBand string   `json:"revenue_band"`
	RiskFactors []string `json:"risk_factors"`
}

// ScoringResultResponse is the output DTO for an engine run.
type ScoringResultResponse struct {
	RiskTier  string   `json:"risk_tier"`
	Reasons   []string `json:"reasons"`
	RedFlags  []string `json:"red_flags"`
	RiskScore int      `json:"risk_score"`
}

// ScoringResultFromValue maps an engine result to the response DTO.
func ScoringResultFromValue(r valueobject.ScoringResult) ScoringResultResponse {
	return ScoringResultResponse{
		RiskScore: r.RiskScore,
		RiskTier:  r.RiskTier.String(),
		Reasons:   r.Reasons,
		RedFlags:  r.RedFlags,
	}
}

// FactorWeight pairs a label with the points it contributes.
type FactorWeight struct {
	Label  string `json:"label"`
	Points int    `json:"points"`
}

// TierThreshold is the minimum score of a tier.
type TierThreshold struct {
	Tier     string `json:"tier"`
	MinScore int    `json:"min_score"`
}

// ReferenceDataResponse lists the fixed scoring tables.
type ReferenceDataResponse struct {
	RiskFactors           []FactorWeight  `json:"risk_factors"`
	RevenueBands          []FactorWeight  `json:"revenue_bands"`
	HighRiskJurisdictions []string        `json:"high_risk_jurisdictions"`
	Tiers                 []TierThreshold `json:"tiers"`
	DefaultRevenueBand    string          `json:"default_revenue_band"`
}
