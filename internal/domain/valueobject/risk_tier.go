package valueobject

import "fmt"

// RiskTier is an immutable value object representing the severity bucket of a risk score.
type RiskTier struct {
	value string
}

var (
	RiskTierLow      = RiskTier{value: "Low"}
	RiskTierMedium   = RiskTier{value: "Medium"}
	RiskTierHigh     = RiskTier{value: "High"}
	RiskTierCritical = RiskTier{value: "Critical"}
)

// Tier thresholds applied to a clamped score.
const (
	CriticalThreshold = 75
	HighThreshold     = 50
	MediumThreshold   = 25
)

// RiskTierFromString reconstructs a RiskTier from its string representation.
func RiskTierFromString(s string) (RiskTier, error) {
	switch s {
	case "Low":
		return RiskTierLow, nil
	case "Medium":
		return RiskTierMedium, nil
	case "High":
		return RiskTierHigh, nil
	case "Critical":
		return RiskTierCritical, nil
	default:
		return RiskTier{}, fmt.Errorf("invalid risk tier: %q", s)
	}
}

// RiskTierFromScore derives the tier for a score in the range 0-100.
func RiskTierFromScore(score int) RiskTier {
	switch {
	case score >= CriticalThreshold:
		return RiskTierCritical
	case score >= HighThreshold:
		return RiskTierHigh
	case score >= MediumThreshold:
		return RiskTierMedium
	default:
		return RiskTierLow
	}
}

// String returns the string representation.
func (t RiskTier) String() string {
	return t.value
}

// Rank orders tiers from Low (1) to Critical (4). The zero tier ranks 0.
func (t RiskTier) Rank() int {
	switch t.value {
	case "Low":
		return 1
	case "Medium":
		return 2
	case "High":
		return 3
	case "Critical":
		return 4
	default:
		return 0
	}
}

// IsZero returns true if the RiskTier has not been set.
func (t RiskTier) IsZero() bool {
	return t.value == ""
}

// Equal checks equality with another RiskTier.
func (t RiskTier) Equal(other RiskTier) bool {
	return t.value == other.value
}

// MarshalText implements encoding.TextMarshaler.
func (t RiskTier) MarshalText() ([]byte, error) {
	return []byte(t.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *RiskTier) UnmarshalText(data []byte) error {
	if len(data) == 0 {
		*t = RiskTier{}
		return nil
	}
	parsed, err := RiskTierFromString(string(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
