package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/model"
)

// CompanyRepository implements port.CompanyRepository. The whole company set
// is one JSON array under a single key.
type CompanyRepository struct {
	client *goredis.Client
}

func NewCompanyRepository(client *goredis.Client) *CompanyRepository {
	return &CompanyRepository{client: client}
}

func (r *CompanyRepository) List(ctx context.Context) ([]model.Company, error) {
	data, err := r.client.Get(ctx, companiesKey).Bytes()
	if errors.Is(err, goredis.Nil) {
		return []model.Company{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read companies: %w", err)
	}

	var companies []model.Company
	if err := json.Unmarshal(data, &companies); err != nil {
		return nil, fmt.Errorf("failed to decode companies: %w", err)
	}
	return companies, nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id string) (model.Company, error) {
	companies, err := r.List(ctx)
	if err != nil {
		return model.Company{}, err
	}
	for _, c := range companies {
		if c.ID == id {
			return c, nil
		}
	}
	return model.Company{}, fmt.Errorf("company %s: %w", id, model.ErrCompanyNotFound)
}

func (r *CompanyRepository) ReplaceAll(ctx context.Context, companies []model.Company) error {
	if companies == nil {
		companies = []model.Company{}
	}
	data, err := json.Marshal(companies)
	if err != nil {
		return fmt.Errorf("failed to encode companies: %w", err)
	}
	if err := r.client.Set(ctx, companiesKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write companies: %w", err)
	}
	return nil
}
