package valueobject

import "fmt"

// AssessmentStatus is the lifecycle state of an assessment.
type AssessmentStatus string

const (
	StatusOpen     AssessmentStatus = "Open"
	StatusScored   AssessmentStatus = "Scored"
	StatusReviewed AssessmentStatus = "Reviewed"
)

// AssessmentStatusFromString parses a persisted status.
func AssessmentStatusFromString(s string) (AssessmentStatus, error) {
	status := AssessmentStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("invalid assessment status: %q", s)
	}
	return status, nil
}

// Valid reports whether s is a known status.
func (s AssessmentStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusScored, StatusReviewed:
		return true
	default:
		return false
	}
}

func (s AssessmentStatus) String() string {
	return string(s)
}
