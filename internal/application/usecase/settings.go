package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/application/dto"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/event"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/model"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/port"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/valueobject"
	"github.com/georgchimion-oss/fraud-scout-lite/pkg/events"
)

// GetSettings is the use case for reading application settings.
type GetSettings struct {
	settings port.SettingsRepository
}

func NewGetSettings(settings port.SettingsRepository) *GetSettings {
	return &GetSettings{settings: settings}
}

func (uc *GetSettings) Execute(ctx context.Context) (dto.SettingsResponse, error) {
	s, err := uc.settings.Get(ctx)
	if err != nil {
		return dto.SettingsResponse{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return dto.SettingsFromModel(s), nil
}

// ResetDemoData replaces the companies with a seed dataset, deletes every
// assessment and remembers the dataset version.
type ResetDemoData struct {
	companies   port.CompanyRepository
	assessments port.AssessmentRepository
	settings    port.SettingsRepository
	datasets    port.DatasetSource
	publisher   port.EventPublisher
	clock       Clock
	logger      *slog.Logger
}

// NewResetDemoData creates a new ResetDemoData use case.
func NewResetDemoData(
	companies port.CompanyRepository,
	assessments port.AssessmentRepository,
	settings port.SettingsRepository,
	datasets port.DatasetSource,
	publisher port.EventPublisher,
	clock Clock,
	logger *slog.Logger,
) *ResetDemoData {
	return &ResetDemoData{
		companies:   companies,
		assessments: assessments,
		settings:    settings,
		datasets:    datasets,
		publisher:   publisher,
		clock:       clock,
		logger:      logger,
	}
}

// Execute loads req.DatasetVersion, or the currently selected dataset when empty.
func (uc *ResetDemoData) Execute(ctx context.Context, req dto.ResetDemoDataRequest) (dto.ResetDemoDataResponse, error) {
	ctx, span := tracer.Start(ctx, "ResetDemoData")
	defer span.End()

	current, err := uc.settings.Get(ctx)
	if err != nil {
		return dto.ResetDemoDataResponse{}, fmt.Errorf("failed to load settings: %w", err)
	}

	version := current.DatasetVersion
	if req.DatasetVersion != "" {
		version, err = valueobject.DatasetVersionFromString(req.DatasetVersion)
		if err != nil {
			return dto.ResetDemoDataResponse{}, fmt.Errorf("%w: %w", model.ErrValidation, err)
		}
	}

	companies, err := uc.datasets.Companies(version)
	if err != nil {
		return dto.ResetDemoDataResponse{}, fmt.Errorf("failed to load dataset %s: %w", version, err)
	}

	if err := uc.companies.ReplaceAll(ctx, companies); err != nil {
		return dto.ResetDemoDataResponse{}, fmt.Errorf("failed to replace companies: %w", err)
	}
	if err := uc.assessments.DeleteAll(ctx); err != nil {
		return dto.ResetDemoDataResponse{}, fmt.Errorf("failed to delete assessments: %w", err)
	}

	current.DatasetVersion = version
	if current.AppVersion == "" {
		current.AppVersion = model.AppVersion
	}
	if err := uc.settings.Save(ctx, current); err != nil {
		return dto.ResetDemoDataResponse{}, fmt.Errorf("failed to save settings: %w", err)
	}

	uc.logger.InfoContext(ctx, "demo data reset",
		slog.String("dataset_version", version.String()),
		slog.Int("companies", len(companies)),
	)

	publishEvents(ctx, uc.publisher, uc.logger, []events.DomainEvent{
		event.NewDemoDataReset(version.String(), len(companies), uc.clock()),
	})

	return dto.ResetDemoDataResponse{
		DatasetVersion: version.String(),
		CompanyCount:   len(companies),
	}, nil
}

// InitializeData seeds a dataset on first start, when no companies exist.
type InitializeData struct {
	companies port.CompanyRepository
	reset     *ResetDemoData
	dataset   valueobject.DatasetVersion
}

// NewInitializeData creates the first-run seeding use case. An empty dataset
// selects the default one.
func NewInitializeData(companies port.CompanyRepository, reset *ResetDemoData, dataset valueobject.DatasetVersion) *InitializeData {
	if dataset == "" {
		dataset = model.DefaultSettings().DatasetVersion
	}
	return &InitializeData{companies: companies, reset: reset, dataset: dataset}
}

func (uc *InitializeData) Execute(ctx context.Context) (dto.InitializeDataResponse, error) {
	existing, err := uc.companies.List(ctx)
	if err != nil {
		return dto.InitializeDataResponse{}, fmt.Errorf("failed to list companies: %w", err)
	}
	if len(existing) > 0 {
		return dto.InitializeDataResponse{Seeded: false}, nil
	}

	resp, err := uc.reset.Execute(ctx, dto.ResetDemoDataRequest{DatasetVersion: uc.dataset.String()})
	if err != nil {
		return dto.InitializeDataResponse{}, err
	}
	return dto.InitializeDataResponse{DatasetVersion: resp.DatasetVersion, Seeded: true}, nil
}
