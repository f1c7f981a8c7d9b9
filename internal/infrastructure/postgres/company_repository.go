package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/model"
	pkgpostgres "github.com/georgchimion-oss/fraud-scout-lite/pkg/postgres"
)

// CompanyRepository implements port.CompanyRepository using PostgreSQL.
type CompanyRepository struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository creates a new PostgreSQL-backed company repository.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{pool: pool}
}

const companyColumns = `id, name, industry, region, size, country, founded_year, annual_revenue`

// List returns companies in dataset order.
func (r *CompanyRepository) List(ctx context.Context) ([]model.Company, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query companies: %w", err)
	}
	defer rows.Close()

	companies := make([]model.Company, 0)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate companies: %w", err)
	}
	return companies, nil
}

func (r *CompanyRepository) FindByID(ctx context.Context, id string) (model.Company, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
	c, err := scanCompany(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return model.Company{}, fmt.Errorf("company %s: %w", id, model.ErrCompanyNotFound)
		}
		return model.Company{}, err
	}
	return c, nil
}

// ReplaceAll deletes every company and inserts the new set in one transaction.
func (r *CompanyRepository) ReplaceAll(ctx context.Context, companies []model.Company) error {
	return pkgpostgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM companies`); err != nil {
			return fmt.Errorf("failed to clear companies: %w", err)
		}

		batch := &pgx.Batch{}
		for i, c := range companies {
			batch.Queue(`
				INSERT INTO companies (
					id, position, name, industry, region, size, country, founded_year, annual_revenue
				) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
				c.ID, i, c.Name, c.Industry, c.Region, string(c.Size), c.Country, c.FoundedYear, c.AnnualRevenue,
			)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to insert companies: %w", err)
		}
		return nil
	})
}

func scanCompany(row pgx.Row) (model.Company, error) {
	var (
		c    model.Company
		size string
	)
	err := row.Scan(&c.ID, &c.Name, &c.Industry, &c.Region, &size, &c.Country, &c.FoundedYear, &c.AnnualRevenue)
	if err != nil {
		if err == pgx.ErrNoRows {
			return model.Company{}, err
		}
		return model.Company{}, fmt.Errorf("failed to scan company: %w", err)
	}
	c.Size = model.CompanySize(size)
	return c, nil
}
