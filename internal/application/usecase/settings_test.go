package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/application/dto"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/application/usecase"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/event"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/model"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/valueobject"
)

type resetFixture struct {
	companies   *mockCompanyRepository
	assessments *mockAssessmentRepository
	settings    *mockSettingsRepository
	publisher   *mockEventPublisher
	reset       *usecase.ResetDemoData
}

func newResetFixture() *resetFixture {
	f := &resetFixture{
		companies:   &mockCompanyRepository{},
		assessments: newMockAssessmentRepository(),
		settings:    &mockSettingsRepository{},
		publisher:   &mockEventPublisher{},
	}
	datasets := &mockDatasetSource{datasets: map[valueobject.DatasetVersion][]model.Company{
		valueobject.DatasetA: testCompanies(),
		valueobject.DatasetB: testCompanies()[:1],
	}}
	f.reset = usecase.NewResetDemoData(f.companies, f.assessments, f.settings, datasets, f.publisher, fixedClock, discardLogger())
	return f
}

func TestGetSettings_Execute(t *testing.T) {
	uc := usecase.NewGetSettings(&mockSettingsRepository{})

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dto.SettingsResponse{DatasetVersion: "A", AppVersion: "1.0.0"}, resp)
}

func TestResetDemoData_Execute(t *testing.T) {
	t.Run("loads requested dataset and clears assessments", func(t *testing.T) {
		f := newResetFixture()
		a, err := model.NewAssessment("a1", "c1", "old", "", "Germany", valueobject.BandUnder1M, nil, fixedNow)
		require.NoError(t, err)
		require.NoError(t, f.assessments.Create(context.Background(), a))

		resp, err := f.reset.Execute(context.Background(), dto.ResetDemoDataRequest{DatasetVersion: "B"})

		require.NoError(t, err)
		assert.Equal(t, dto.ResetDemoDataResponse{DatasetVersion: "B", CompanyCount: 1}, resp)
		assert.Len(t, f.companies.companies, 1)
		assert.Empty(t, f.assessments.snapshots)
		require.NotNil(t, f.settings.settings)
		assert.Equal(t, valueobject.DatasetB, f.settings.settings.DatasetVersion)
		assert.Equal(t, "1.0.0", f.settings.settings.AppVersion)
		assert.Equal(t, []string{event.EventTypeDemoDataReset}, f.publisher.types())
	})

	t.Run("empty version keeps the current dataset", func(t *testing.T) {
		f := newResetFixture()
		f.settings.settings = &model.Settings{DatasetVersion: valueobject.DatasetB, AppVersion: "1.0.0"}

		resp, err := f.reset.Execute(context.Background(), dto.ResetDemoDataRequest{})

		require.NoError(t, err)
		assert.Equal(t, "B", resp.DatasetVersion)
	})

	t.Run("rejects unknown version", func(t *testing.T) {
		f := newResetFixture()

		_, err := f.reset.Execute(context.Background(), dto.ResetDemoDataRequest{DatasetVersion: "Z"})

		assert.ErrorIs(t, err, model.ErrValidation)
		assert.Nil(t, f.settings.settings)
	})

	t.Run("stops when companies cannot be replaced", func(t *testing.T) {
		f := newResetFixture()
		f.companies.replaceAllFunc = func(context.Context, []model.Company) error {
			return fmt.Errorf("disk full")
		}

		_, err := f.reset.Execute(context.Background(), dto.ResetDemoDataRequest{DatasetVersion: "A"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to replace companies")
		assert.Nil(t, f.settings.settings)
	})
}

func TestInitializeData_Execute(t *testing.T) {
	t.Run("seeds default dataset when empty", func(t *testing.T) {
		f := newResetFixture()
		uc := usecase.NewInitializeData(f.companies, f.reset, "")

		resp, err := uc.Execute(context.Background())

		require.NoError(t, err)
		assert.True(t, resp.Seeded)
		assert.Equal(t, "A", resp.DatasetVersion)
		assert.Len(t, f.companies.companies, 2)
	})

	t.Run("seeds configured dataset", func(t *testing.T) {
		f := newResetFixture()
		uc := usecase.NewInitializeData(f.companies, f.reset, valueobject.DatasetB)

		resp, err := uc.Execute(context.Background())

		require.NoError(t, err)
		assert.True(t, resp.Seeded)
		assert.Equal(t, "B", resp.DatasetVersion)
		assert.Len(t, f.companies.companies, 1)
		assert.Equal(t, valueobject.DatasetB, f.settings.settings.DatasetVersion)
	})

	t.Run("leaves existing data alone", func(t *testing.T) {
		f := newResetFixture()
		f.companies.companies = testCompanies()[:1]
		uc := usecase.NewInitializeData(f.companies, f.reset, "")

		resp, err := uc.Execute(context.Background())

		require.NoError(t, err)
		assert.False(t, resp.Seeded)
		assert.Len(t, f.companies.companies, 1)
		assert.Empty(t, f.publisher.types())
	})
}
