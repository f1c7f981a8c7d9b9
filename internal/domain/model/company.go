package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/valueobject"
)

// CompanySize is a coarse headcount bucket.
type CompanySize string

const (
	SizeSmall      CompanySize = "Small"
	SizeMedium     CompanySize = "Medium"
	SizeLarge      CompanySize = "Large"
	SizeEnterprise CompanySize = "Enterprise"
)

func (s CompanySize) Valid() bool {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge, SizeEnterprise:
		return true
	default:
		return false
	}
}

// Company is reference data loaded from a seed dataset. Assessments point at
// it by ID but never own it.
type Company struct {
	AnnualRevenue decimal.Decimal `json:"annualRevenue" yaml:"annual_revenue"`
	ID            string          `json:"id" yaml:"id"`
	Name          string          `json:"name" yaml:"name"`
	Industry      string          `json:"industry" yaml:"industry"`
	Region        string          `json:"region" yaml:"region"`
	Size          CompanySize     `json:"size" yaml:"size"`
	Country       string          `json:"country" yaml:"country"`
	FoundedYear   int             `json:"foundedYear" yaml:"founded_year"`
}

// Validate checks the fields every stored company must carry.
func (c Company) Validate() error {
	switch {
	case strings.TrimSpace(c.ID) == "":
		return fmt.Errorf("%w: company id is required", ErrValidation)
	case strings.TrimSpace(c.Name) == "":
		return fmt.Errorf("%w: company %s: name is required", ErrValidation, c.ID)
	case strings.TrimSpace(c.Country) == "":
		return fmt.Errorf("%w: company %s: country is required", ErrValidation, c.ID)
	case !c.Size.Valid():
		return fmt.Errorf("%w: company %s: invalid size %q", ErrValidation, c.ID, c.Size)
	case c.AnnualRevenue.IsNegative():
		return fmt.Errorf("%w: company %s: annual revenue must not be negative", ErrValidation, c.ID)
	}
	return nil
}

// RevenueBand classifies the company's annual revenue.
func (c Company) RevenueBand() valueobject.RevenueBand {
	return valueobject.RevenueBandFor(c.AnnualRevenue)
}

// Matches reports whether term occurs, case-insensitively, in the company's
// name, industry, country or region. An empty term matches everything.
func (c Company) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, field := range []string{c.Name, c.Industry, c.Country, c.Region} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
