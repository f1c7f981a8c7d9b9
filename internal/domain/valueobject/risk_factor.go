package valueobject

// RiskFactor is a qualitative fraud indicator selected for an assessment.
// Values outside the known set are tolerated and contribute no points.
type RiskFactor string

const (
	FactorRapidGrowth              RiskFactor = "Rapid Growth"
	FactorComplexOwnership         RiskFactor = "Complex Ownership"
	FactorOffshoreEntities         RiskFactor = "Offshore Entities"
	FactorRegulatoryIssues         RiskFactor = "Regulatory Issues"
	FactorHighCashTransactions     RiskFactor = "High Cash Transactions"
	FactorRelatedPartyTransactions RiskFactor = "Related Party Transactions"
	FactorUnusualRevenuePatterns   RiskFactor = "Unusual Revenue Patterns"
)

var allRiskFactors = [...]RiskFactor{
	FactorRapidGrowth,
	FactorComplexOwnership,
	FactorOffshoreEntities,
	FactorRegulatoryIssues,
	FactorHighCashTransactions,
	FactorRelatedPartyTransactions,
	FactorUnusualRevenuePatterns,
}

// AllRiskFactors returns the selectable factors in display order.
func AllRiskFactors() []RiskFactor {
	out := make([]RiskFactor, len(allRiskFactors))
	copy(out, allRiskFactors[:])
	return out
}

// Known reports whether f is one of the selectable factors.
func (f RiskFactor) Known() bool {
	for _, k := range allRiskFactors {
		if f == k {
			return true
		}
	}
	return false
}

func (f RiskFactor) String() string {
	return string(f)
}

// RiskFactorsFromStrings converts raw labels without validation.
func RiskFactorsFromStrings(labels []string) []RiskFactor {
	out := make([]RiskFactor, 0, len(labels))
	for _, l := range labels {
		out = append(out, RiskFactor(l))
	}
	return out
}

// RiskFactorStrings converts factors back to raw labels.
func RiskFactorStrings(factors []RiskFactor) []string {
	out := make([]string, 0, len(factors))
	for _, f := range factors {
		out = append(out, string(f))
	}
	return out
}
