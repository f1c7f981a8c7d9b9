package usecase

import (
	"github.com/georgchimion-oss/fraud-scout-lite/internal/application/dto"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/service"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/valueobject"
)

// GetReferenceData exposes the fixed scoring tables for form rendering.
type GetReferenceData struct{}

func NewGetReferenceData() *GetReferenceData {
	return &GetReferenceData{}
}

func (uc *GetReferenceData) Execute() dto.ReferenceDataResponse {
	factors := valueobject.AllRiskFactors()
	bands := valueobject.AllRevenueBands()

	resp := dto.ReferenceDataResponse{
		RiskFactors:           make([]dto.FactorWeight, 0, len(factors)),
		RevenueBands:          make([]dto.FactorWeight, 0, len(bands)),
		HighRiskJurisdictions: service.HighRiskJurisdictions(),
		DefaultRevenueBand:    valueobject.DefaultBand.String(),
		Tiers: []dto.TierThreshold{
			{Tier: valueobject.RiskTierCritical.String(), MinScore: valueobject.CriticalThreshold},
			{Tier: valueobject.RiskTierHigh.String(), MinScore: valueobject.HighThreshold},
			{Tier: valueobject.RiskTierMedium.String(), MinScore: valueobject.MediumThreshold},
			{Tier: valueobject.RiskTierLow.String(), MinScore: 0},
		},
	}
	for _, f := range factors {
		resp.RiskFactors = append(resp.RiskFactors, dto.FactorWeight{Label: f.String(), Points: service.FactorPoints(f)})
	}
	for _, b := range bands {
		resp.RevenueBands = append(resp.RevenueBands, dto.FactorWeight{Label: b.String(), Points: service.BandPoints(b)})
	}
	return resp
}
