package memory

import (
	"context"
	"sync"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/model"
)

// SettingsRepository implements port.SettingsRepository in process memory.
type SettingsRepository struct {
	mu       sync.RWMutex
	settings *model.Settings
}

func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{}
}

func (r *SettingsRepository) Get(_ context.Context) (model.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.settings == nil {
		return model.DefaultSettings(), nil
	}
	return *r.settings, nil
}

func (r *SettingsRepository) Save(_ context.Context, s model.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = &s
	return nil
}
