package usecase_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/model"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/valueobject"
	"github.com/georgchimion-oss/fraud-scout-lite/pkg/events"
)

// --- Mock implementations ---

type mockCompanyRepository struct {
	companies      []model.Company
	listFunc       func(ctx context.Context) ([]model.Company, error)
	replaceAllFunc func(ctx context.Context, companies []model.Company) error
}

func (m *mockCompanyRepository) List(ctx context.Context) ([]model.Company, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return m.companies, nil
}

func (m *mockCompanyRepository) FindByID(_ context.Context, id string) (model.Company, error) {
	for _, c := range m.companies {
		if c.ID == id {
			return c, nil
		}
	}
	return model.Company{}, fmt.Errorf("company %s: %w", id, model.ErrCompanyNotFound)
}

func (m *mockCompanyRepository) ReplaceAll(ctx context.Context, companies []model.Company) error {
	if m.replaceAllFunc != nil {
		return m.replaceAllFunc(ctx, companies)
	}
	m.companies = companies
	return nil
}

type mockAssessmentRepository struct {
	mu            sync.Mutex
	snapshots     map[string]model.AssessmentSnapshot
	order         []string
	createFunc    func(ctx context.Context, a *model.Assessment) error
	deleteAllFunc func(ctx context.Context) error
	updateCalls   int
}

func newMockAssessmentRepository() *mockAssessmentRepository {
	return &mockAssessmentRepository{snapshots: make(map[string]model.AssessmentSnapshot)}
}

func (m *mockAssessmentRepository) Create(ctx context.Context, a *model.Assessment) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, a)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots[a.ID()] = a.Snapshot()
	m.order = append(m.order, a.ID())
	return nil
}

func (m *mockAssessmentRepository) FindByID(_ context.Context, id string) (*model.Assessment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.snapshots[id]
	if !ok {
		return nil, fmt.Errorf("assessment %s: %w", id, model.ErrAssessmentNotFound)
	}
	return model.Reconstruct(s)
}

func (m *mockAssessmentRepository) ListByCompany(_ context.Context, companyID string) ([]*model.Assessment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*model.Assessment, 0)
	for _, id := range m.order {
		s, ok := m.snapshots[id]
		if !ok || s.CompanyID != companyID {
			continue
		}
		a, err := model.Reconstruct(s)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (m *mockAssessmentRepository) Update(_ context.Context, id string, mutate func(*model.Assessment) error) (*model.Assessment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updateCalls++
	s, ok := m.snapshots[id]
	if !ok {
		return nil, fmt.Errorf("assessment %s: %w", id, model.ErrAssessmentNotFound)
	}
	a, err := model.Reconstruct(s)
	if err != nil {
		return nil, err
	}
	if err := mutate(a); err != nil {
		return nil, err
	}
	m.snapshots[id] = a.Snapshot()
	return a, nil
}

func (m *mockAssessmentRepository) DeleteAll(ctx context.Context) error {
	if m.deleteAllFunc != nil {
		return m.deleteAllFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshots = make(map[string]model.AssessmentSnapshot)
	m.order = nil
	return nil
}

type mockSettingsRepository struct {
	settings *model.Settings
	saveFunc func(ctx context.Context, s model.Settings) error
}

func (m *mockSettingsRepository) Get(_ context.Context) (model.Settings, error) {
	if m.settings == nil {
		return model.DefaultSettings(), nil
	}
	return *m.settings, nil
}

func (m *mockSettingsRepository) Save(ctx context.Context, s model.Settings) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, s)
	}
	m.settings = &s
	return nil
}

type mockDatasetSource struct {
	datasets map[valueobject.DatasetVersion][]model.Company
}

func (m *mockDatasetSource) Companies(version valueobject.DatasetVersion) ([]model.Company, error) {
	companies, ok := m.datasets[version]
	if !ok {
		return nil, fmt.Errorf("unknown dataset %s", version)
	}
	return companies, nil
}

type mockEventPublisher struct {
	mu              sync.Mutex
	publishedEvents []events.DomainEvent
	publishFunc     func(ctx context.Context, evts ...events.DomainEvent) error
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...events.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

func (m *mockEventPublisher) types() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.publishedEvents))
	for _, e := range m.publishedEvents {
		out = append(out, e.EventType())
	}
	return out
}

type mockScoringObserver struct {
	observed []valueobject.ScoringResult
}

func (m *mockScoringObserver) ObserveScore(_ context.Context, result valueobject.ScoringResult) {
	m.observed = append(m.observed, result)
}

// --- Fixtures ---

var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCompanies() []model.Company {
	return []model.Company{
		{
			ID: "c1", Name: "Harbor Logistics", Industry: "Logistics", Region: "Europe",
			Size: model.SizeMedium, Country: "Germany", FoundedYear: 1998,
			AnnualRevenue: decimal.NewFromInt(45_000_000),
		},
		{
			ID: "c2", Name: "Isla Capital", Industry: "Financial Services", Region: "Caribbean",
			Size: model.SizeSmall, Country: "Cayman Islands", FoundedYear: 2015,
			AnnualRevenue: decimal.NewFromInt(3_000_000),
		},
	}
}
