package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/model"
	pkgpostgres "github.com/georgchimion-oss/fraud-scout-lite/pkg/postgres"
)

// AssessmentRepository implements port.AssessmentRepository using PostgreSQL.
type AssessmentRepository struct {
	pool *pgxpool.Pool
}

// NewAssessmentRepository creates a new PostgreSQL-backed assessment repository.
func NewAssessmentRepository(pool *pgxpool.Pool) *AssessmentRepository {
	return &AssessmentRepository{pool: pool}
}

const assessmentColumns = `
	id, company_id, name, notes, country, revenue_band, risk_factors, status,
	risk_score, risk_tier, reasons, red_flags, scored_at, reviewed_at,
	version, created_at`

// Create inserts a new assessment.
func (r *AssessmentRepository) Create(ctx context.Context, a *model.Assessment) error {
	s := a.Snapshot()
	tag, err := r.pool.Exec(ctx, `
		INSERT INTO assessments (
			id, company_id, name, notes, country, revenue_band, risk_factors, status,
			risk_score, risk_tier, reasons, red_flags, scored_at, reviewed_at,
			version, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (id) DO NOTHING`,
		s.ID, s.CompanyID, s.Name, s.Notes, s.Country, s.RevenueBand, s.RiskFactors, s.Status,
		s.RiskScore, nullableText(s.RiskTier), s.Reasons, s.RedFlags, s.ScoredAt, s.ReviewedAt,
		s.Version, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save assessment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("assessment %s: %w", s.ID, model.ErrAssessmentExists)
	}
	return nil
}

// FindByID retrieves an assessment by its unique identifier.
func (r *AssessmentRepository) FindByID(ctx context.Context, id string) (*model.Assessment, error) {
	return findAssessment(ctx, r.pool, `SELECT `+assessmentColumns+` FROM assessments WHERE id = $1`, id)
}

// ListByCompany retrieves a company's assessments oldest first.
func (r *AssessmentRepository) ListByCompany(ctx context.Context, companyID string) ([]*model.Assessment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+assessmentColumns+`
		FROM assessments
		WHERE company_id = $1
		ORDER BY created_at, seq`,
		companyID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query assessments: %w", err)
	}
	defer rows.Close()

	assessments := make([]*model.Assessment, 0)
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		assessments = append(assessments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate assessments: %w", err)
	}
	return assessments, nil
}

// Update locks the row with SELECT ... FOR UPDATE, applies mutate and writes
// the result back in the same transaction.
func (r *AssessmentRepository) Update(ctx context.Context, id string, mutate func(*model.Assessment) error) (*model.Assessment, error) {
	var updated *model.Assessment

	err := pkgpostgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		a, err := findAssessment(ctx, tx, `SELECT `+assessmentColumns+` FROM assessments WHERE id = $1 FOR UPDATE`, id)
		if err != nil {
			return err
		}
		if err := mutate(a); err != nil {
			return err
		}

		s := a.Snapshot()
		_, err = tx.Exec(ctx, `
			UPDATE assessments SET
				status = $2,
				risk_score = $3,
				risk_tier = $4,
				reasons = $5,
				red_flags = $6,
				scored_at = $7,
				reviewed_at = $8,
				version = $9
			WHERE id = $1`,
			s.ID, s.Status, s.RiskScore, nullableText(s.RiskTier), s.Reasons, s.RedFlags,
			s.ScoredAt, s.ReviewedAt, s.Version,
		)
		if err != nil {
			return fmt.Errorf("failed to update assessment: %w", err)
		}
		updated = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *AssessmentRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM assessments`); err != nil {
		return fmt.Errorf("failed to delete assessments: %w", err)
	}
	return nil
}

func findAssessment(ctx context.Context, q pkgpostgres.Querier, query, id string) (*model.Assessment, error) {
	a, err := scanAssessment(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("assessment %s: %w", id, model.ErrAssessmentNotFound)
		}
		return nil, err
	}
	return a, nil
}

func scanAssessment(row pgx.Row) (*model.Assessment, error) {
	var (
		s          model.AssessmentSnapshot
		riskTier   *string
		scoredAt   *time.Time
		reviewedAt *time.Time
	)

	err := row.Scan(
		&s.ID, &s.CompanyID, &s.Name, &s.Notes, &s.Country, &s.RevenueBand, &s.RiskFactors, &s.Status,
		&s.RiskScore, &riskTier, &s.Reasons, &s.RedFlags, &scoredAt, &reviewedAt,
		&s.Version, &s.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan assessment: %w", err)
	}

	s.CreatedAt = s.CreatedAt.UTC()
	if riskTier != nil {
		s.RiskTier = *riskTier
	}
	if scoredAt != nil {
		t := scoredAt.UTC()
		s.ScoredAt = &t
	}
	if reviewedAt != nil {
		t := reviewedAt.UTC()
		s.ReviewedAt = &t
	}

	a, err := model.Reconstruct(s)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct assessment: %w", err)
	}
	return a, nil
}

func nullableText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
