package dto

import "github.com/georgchimion-oss/fraud-scout-lite/internal/domain/model"

// ListCompaniesRequest filters the company list. An empty Search returns all companies.
type ListCompaniesRequest struct {
	Search string `json:"search"`
}

// GetCompanyRequest is the input DTO for retrieving one company.
type GetCompanyRequest struct {
	CompanyID string `json:"company_id"`
}

// CompanyResponse is the output DTO for a company.
type CompanyResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Industry      string `json:"industry"`
	Region        string `json:"region"`
	Size          string `json:"size"`
	Country       string `json:"country"`
	AnnualRevenue string `json:"annual_revenue"`
	RevenueBand   string `json:"revenue_band"`
	FoundedYear   int    `json:"founded_year"`
}

// CompanyFromModel maps a company to the response DTO.
func CompanyFromModel(c model.Company) CompanyResponse {
	return CompanyResponse{
		ID:            c.ID,
		Name:          c.Name,
		Industry:      c.Industry,
		Region:        c.Region,
		Size:          string(c.Size),
		Country:       c.Country,
		FoundedYear:   c.FoundedYear,
		AnnualRevenue: c.AnnualRevenue.String(),
		RevenueBand:   c.RevenueBand().String(),
	}
}
