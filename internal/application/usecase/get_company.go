package usecase

import (
	"context"
	"fmt"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/application/dto"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/port"
)

// GetCompany is the use case for retrieving one company.
type GetCompany struct {
	companies port.CompanyRepository
}

// NewGetCompany creates a new GetCompany use case.
func NewGetCompany(companies port.CompanyRepository) *GetCompany {
	return &GetCompany{companies: companies}
}

func (uc *GetCompany) Execute(ctx context.Context, req dto.GetCompanyRequest) (dto.CompanyResponse, error) {
	ctx, span := tracer.Start(ctx, "GetCompany")
	defer span.End()

	company, err := uc.companies.FindByID(ctx, req.CompanyID)
	if err != nil {
		return dto.CompanyResponse{}, fmt.Errorf("failed to find company: %w", err)
	}
	return dto.CompanyFromModel(company), nil
}
