package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/model"
)

// CompanyRepository implements port.CompanyRepository in process memory.
type CompanyRepository struct {
	mu        sync.RWMutex
	companies []model.Company
}

func NewCompanyRepository() *CompanyRepository {
	return &CompanyRepository{}
}

func (r *CompanyRepository) List(_ context.Context) ([]model.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.companies), nil
}

func (r *CompanyRepository) FindByID(_ context.Context, id string) (model.Company, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.companies {
		if c.ID == id {
			return c, nil
		}
	}
	return model.Company{}, fmt.Errorf("company %s: %w", id, model.ErrCompanyNotFound)
}

func (r *CompanyRepository) ReplaceAll(_ context.Context, companies []model.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.companies = slices.Clone(companies)
	return nil
}
