package port

import (
	"context"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/model"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/valueobject"
	"github.com/georgchimion-oss/fraud-scout-lite/pkg/events"
)

// CompanyRepository defines the persistence port for seeded companies.
type CompanyRepository interface {
	// List returns every company in dataset order.
	List(ctx context.Context) ([]model.Company, error)

	// FindByID returns model.ErrCompanyNotFound when no company has the id.
	FindByID(ctx context.Context, id string) (model.Company, error)

	// ReplaceAll swaps the whole company set.
	ReplaceAll(ctx context.Context, companies []model.Company) error
}

// AssessmentRepository defines the persistence port for assessments.
type AssessmentRepository interface {
	// Create stores a new assessment. It returns model.ErrAssessmentExists if the id is taken.
	Create(ctx context.Context, assessment *model.Assessment) error

	// FindByID returns model.ErrAssessmentNotFound when no assessment has the id.
	FindByID(ctx context.Context, id string) (*model.Assessment, error)

	// ListByCompany returns a company's assessments oldest first.
	ListByCompany(ctx context.Context, companyID string) ([]*model.Assessment, error)

	// Update loads the assessment, applies mutate and stores the result as one
	// atomic step per id. Concurrent updates of the same id never interleave.
	// mutate may run more than once if the store retries; the returned
	// aggregate carries the events recorded by the attempt that was committed.
	Update(ctx context.Context, id string, mutate func(*model.Assessment) error) (*model.Assessment, error)

	// DeleteAll removes every assessment.
	DeleteAll(ctx context.Context) error
}

// SettingsRepository persists application settings.
type SettingsRepository interface {
	// Get returns model.DefaultSettings() when nothing was saved.
	Get(ctx context.Context) (model.Settings, error)
	Save(ctx context.Context, settings model.Settings) error
}

// DatasetSource provides the seed companies for a dataset version.
type DatasetSource interface {
	Companies(version valueobject.DatasetVersion) ([]model.Company, error)
}

// EventPublisher defines the port for publishing domain events.
type EventPublisher interface {
	// Publish sends one or more domain events to the messaging infrastructure.
	Publish(ctx context.Context, events ...events.DomainEvent) error
}

// ScoringObserver receives every persisted scoring result.
type ScoringObserver interface {
	ObserveScore(ctx context.Context, result valueobject.ScoringResult)
}
