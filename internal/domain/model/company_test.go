package model_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/model"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/valueobject"
)

func validCompany() model.Company {
	return model.Company{
		ID:            "c1",
		Name:          "Meridian Holdings",
		Industry:      "Financial Services",
		Region:        "Caribbean",
		Size:          model.SizeLarge,
		Country:       "Cayman Islands",
		FoundedYear:   2008,
		AnnualRevenue: decimal.NewFromInt(250_000_000),
	}
}

func TestCompany_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *model.Company)
	}{
		{"missing id", func(c *model.Company) { c.ID = "" }},
		{"missing name", func(c *model.Company) { c.Name = " " }},
		{"missing country", func(c *model.Company) { c.Country = "" }},
		{"bad size", func(c *model.Company) { c.Size = "Huge" }},
		{"negative revenue", func(c *model.Company) { c.AnnualRevenue = decimal.NewFromInt(-1) }},
	}

	assert.NoError(t, validCompany().Validate())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCompany()
			tt.mutate(&c)
			assert.ErrorIs(t, c.Validate(), model.ErrValidation)
		})
	}
}

func TestCompany_RevenueBand(t *testing.T) {
	assert.Equal(t, valueobject.Band100MTo1B, validCompany().RevenueBand())
}

func TestCompany_Matches(t *testing.T) {
	c := validCompany()

	assert.True(t, c.Matches(""))
	assert.True(t, c.Matches("meridian"))
	assert.True(t, c.Matches("FINANCIAL"))
	assert.True(t, c.Matches("cayman"))
	assert.True(t, c.Matches("carib"))
	assert.False(t, c.Matches("retail"))
}

func TestDefaultSettings(t *testing.T) {
	s := model.DefaultSettings()
	assert.Equal(t, valueobject.DatasetA, s.DatasetVersion)
	assert.Equal(t, "1.0.0", s.AppVersion)
}
