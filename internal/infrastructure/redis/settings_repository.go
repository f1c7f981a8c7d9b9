package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/model"
)

// SettingsRepository implements port.SettingsRepository.
type SettingsRepository struct {
	client *goredis.Client
}

func NewSettingsRepository(client *goredis.Client) *SettingsRepository {
	return &SettingsRepository{client: client}
}

func (r *SettingsRepository) Get(ctx context.Context) (model.Settings, error) {
	data, err := r.client.Get(ctx, settingsKey).Bytes()
	if errors.Is(err, goredis.Nil) {
		return model.DefaultSettings(), nil
	}
	if err != nil {
		return model.Settings{}, fmt.Errorf("failed to read settings: %w", err)
	}

	var s model.Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return model.Settings{}, fmt.Errorf("failed to decode settings: %w", err)
	}
	return s, nil
}

func (r *SettingsRepository) Save(ctx context.Context, s model.Settings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := r.client.Set(ctx, settingsKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
