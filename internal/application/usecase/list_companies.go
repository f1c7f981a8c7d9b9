package usecase

import (
	"context"
	"fmt"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/application/dto"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/port"
)

// ListCompanies is the use case for browsing companies.
type ListCompanies struct {
	companies port.CompanyRepository
}

// NewListCompanies creates a new ListCompanies use case.
func NewListCompanies(companies port.CompanyRepository) *ListCompanies {
	return &ListCompanies{companies: companies}
}

// Execute returns the companies matching req.Search in dataset order.
func (uc *ListCompanies) Execute(ctx context.Context, req dto.ListCompaniesRequest) ([]dto.CompanyResponse, error) {
	ctx, span := tracer.Start(ctx, "ListCompanies")
	defer span.End()

	companies, err := uc.companies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	out := make([]dto.CompanyResponse, 0, len(companies))
	for _, c := range companies {
		if c.Matches(req.Search) {
			out = append(out, dto.CompanyFromModel(c))
		}
	}
	return out, nil
}
