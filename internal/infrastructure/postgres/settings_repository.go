package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/model"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/valueobject"
)

// SettingsRepository implements port.SettingsRepository as a single-row table.
type SettingsRepository struct {
	pool *pgxpool.Pool
}

func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

func (r *SettingsRepository) Get(ctx context.Context) (model.Settings, error) {
	var version, appVersion string
	err := r.pool.QueryRow(ctx, `SELECT dataset_version, app_version FROM settings WHERE id = 1`).
		Scan(&version, &appVersion)
	if err != nil {
		if err == pgx.ErrNoRows {
			return model.DefaultSettings(), nil
		}
		return model.Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	dv, err := valueobject.DatasetVersionFromString(version)
	if err != nil {
		return model.Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	return model.Settings{DatasetVersion: dv, AppVersion: appVersion}, nil
}

func (r *SettingsRepository) Save(ctx context.Context, s model.Settings) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO settings (id, dataset_version, app_version) VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET
			dataset_version = EXCLUDED.dataset_version,
			app_version = EXCLUDED.app_version`,
		s.DatasetVersion.String(), s.AppVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
