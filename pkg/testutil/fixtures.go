package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/model"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/valueobject"
)

// FixedTime is a deterministic timestamp for tests.
var FixedTime = time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

// Companies returns a small deterministic company set.
func Companies() []model.Company {
	return []model.Company{
		{
			ID: "c1", Name: "Northwind Trading", Industry: "Wholesale", Region: "North America",
			Size: model.SizeMedium, Country: "United States", FoundedYear: 2001,
			AnnualRevenue: decimal.NewFromInt(42_000_000),
		},
		{
			ID: "c2", Name: "Coral Bay Holdings", Industry: "Financial Services", Region: "Caribbean",
			Size: model.SizeSmall, Country: "Cayman Islands", FoundedYear: 2016,
			AnnualRevenue: decimal.NewFromInt(800_000),
		},
		{
			ID: "c3", Name: "Adriatic Shipping", Industry: "Logistics", Region: "Europe",
			Size: model.SizeLarge, Country: "Malta", FoundedYear: 1987,
			AnnualRevenue: decimal.NewFromInt(1_500_000_000),
		},
	}
}

// NewOpenAssessment builds an Open assessment for companyID created at FixedTime plus offset.
func NewOpenAssessment(t *testing.T, companyID string, offset time.Duration, factors ...valueobject.RiskFactor) *model.Assessment {
	t.Helper()
	a, err := model.NewAssessment(
		uuid.NewString(),
		companyID,
		"Assessment "+companyID,
		"notes",
		"Panama",
		valueobject.Band10MTo100M,
		factors,
		FixedTime.Add(offset),
	)
	require.NoError(t, err)
	a.DomainEvents()
	return a
}
