package service

import (
	"fmt"
	"slices"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/valueobject"
)

// ScoringInput contains the assessment fields the engine reads.
type ScoringInput struct {
	Country     string
	RevenueBand valueobject.RevenueBand
	RiskFactors []valueobject.RiskFactor
}

const (
	// MaxScore is the ceiling applied once after all contributions.
	MaxScore = 100

	jurisdictionPoints = 20
	combinationPoints  = 10
	severeThreshold    = 2

	redFlagCombination = "Multiple severe risk factors identified"
)

var factorPoints = map[valueobject.RiskFactor]int{
	valueobject.FactorComplexOwnership:         15,
	valueobject.FactorHighCashTransactions:     20,
	valueobject.FactorOffshoreEntities:         25,
	valueobject.FactorRapidGrowth:              10,
	valueobject.FactorRegulatoryIssues:         30,
	valueobject.FactorRelatedPartyTransactions: 15,
	valueobject.FactorUnusualRevenuePatterns:   20,
}

// Peaks at mid-size revenue.
var bandPoints = map[valueobject.RevenueBand]int{
	valueobject.BandUnder1M:   5,
	valueobject.Band1MTo10M:   10,
	valueobject.Band10MTo100M: 15,
	valueobject.Band100MTo1B:  10,
	valueobject.BandOver1B:    5,
}

var highRiskJurisdictions = []string{
	"Cayman Islands",
	"British Virgin Islands",
	"Panama",
	"Cyprus",
	"Malta",
	"Seychelles",
}

var severeFactors = map[valueobject.RiskFactor]bool{
	valueobject.FactorRegulatoryIssues:     true,
	valueobject.FactorOffshoreEntities:     true,
	valueobject.FactorHighCashTransactions: true,
}

// FactorPoints returns the points a single occurrence of f contributes.
func FactorPoints(f valueobject.RiskFactor) int {
	return factorPoints[f]
}

// BandPoints returns the points contributed by revenue band b.
func BandPoints(b valueobject.RevenueBand) int {
	return bandPoints[b]
}

// HighRiskJurisdictions returns the countries that raise a jurisdiction red flag.
func HighRiskJurisdictions() []string {
	return slices.Clone(highRiskJurisdictions)
}

// IsHighRiskJurisdiction matches country exactly, without case folding or trimming.
func IsHighRiskJurisdiction(country string) bool {
	return slices.Contains(highRiskJurisdictions, country)
}

// ScoringEngine is a stateless domain service that scores assessments from
// fixed lookup tables.
type ScoringEngine struct{}

// NewScoringEngine creates a new ScoringEngine instance.
func NewScoringEngine() *ScoringEngine {
	return &ScoringEngine{}
}

// Score computes the risk score, tier, reasons and red flags for input.
// Unknown factors, bands and countries contribute nothing. Repeated factors
// are scored once per occurrence.
func (s *ScoringEngine) Score(input ScoringInput) valueobject.ScoringResult {
	total := 0
	reasons := make([]string, 0, len(input.RiskFactors)+1)
	redFlags := make([]string, 0, 2)

	severe := 0
	for _, f := range input.RiskFactors {
		points := factorPoints[f]
		total += points
		reasons = append(reasons, fmt.Sprintf("%s (+%d points)", f, points))
		if severeFactors[f] {
			severe++
		}
	}

	if IsHighRiskJurisdiction(input.Country) {
		total += jurisdictionPoints
		redFlags = append(redFlags, "Operations in high-risk jurisdiction: "+input.Country)
	}

	points := bandPoints[input.RevenueBand]
	total += points
	reasons = append(reasons, fmt.Sprintf("Revenue band %s (+%d points)", input.RevenueBand, points))

	if severe >= severeThreshold {
		total += combinationPoints
		redFlags = append(redFlags, redFlagCombination)
	}

	score := min(total, MaxScore)

	return valueobject.ScoringResult{
		RiskScore: score,
		RiskTier:  valueobject.RiskTierFromScore(score),
		Reasons:   reasons,
		RedFlags:  redFlags,
	}
}
