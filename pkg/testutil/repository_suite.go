package testutil

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/model"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/port"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/service"
	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/valueobject"
)

// Repositories bundles one backend's implementations of the storage ports.
type Repositories struct {
	Companies   port.CompanyRepository
	Assessments port.AssessmentRepository
	Settings    port.SettingsRepository
}

// RunRepositoryContract exercises the storage ports against a backend. newRepos
// must return empty repositories on every call.
func RunRepositoryContract(t *testing.T, newRepos func(t *testing.T) Repositories) {
	t.Helper()

	t.Run("companies replace and find", func(t *testing.T) {
		repos := newRepos(t)
		ctx := context.Background()

		empty, err := repos.Companies.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, empty)

		require.NoError(t, repos.Companies.ReplaceAll(ctx, Companies()))

		listed, err := repos.Companies.List(ctx)
		require.NoError(t, err)
		require.Len(t, listed, 3)
		assert.Equal(t, []string{"c1", "c2", "c3"}, []string{listed[0].ID, listed[1].ID, listed[2].ID})

		c, err := repos.Companies.FindByID(ctx, "c2")
		require.NoError(t, err)
		assert.Equal(t, "Coral Bay Holdings", c.Name)
		assert.True(t, c.AnnualRevenue.Equal(Companies()[1].AnnualRevenue))

		_, err = repos.Companies.FindByID(ctx, "missing")
		assert.ErrorIs(t, err, model.ErrCompanyNotFound)

		require.NoError(t, repos.Companies.ReplaceAll(ctx, Companies()[:1]))
		listed, err = repos.Companies.List(ctx)
		require.NoError(t, err)
		assert.Len(t, listed, 1)
	})

	t.Run("assessments create find list", func(t *testing.T) {
		repos := newRepos(t)
		ctx := context.Background()

		second := NewOpenAssessment(t, "c1", time.Minute, valueobject.FactorRapidGrowth)
		first := NewOpenAssessment(t, "c1", 0)
		other := NewOpenAssessment(t, "c2", 0)
		for _, a := range []*model.Assessment{second, first, other} {
			require.NoError(t, repos.Assessments.Create(ctx, a))
		}

		err := repos.Assessments.Create(ctx, first)
		assert.ErrorIs(t, err, model.ErrAssessmentExists)

		found, err := repos.Assessments.FindByID(ctx, second.ID())
		require.NoError(t, err)
		assert.Equal(t, second.Snapshot(), found.Snapshot())

		_, err = repos.Assessments.FindByID(ctx, "missing")
		assert.ErrorIs(t, err, model.ErrAssessmentNotFound)

		listed, err := repos.Assessments.ListByCompany(ctx, "c1")
		require.NoError(t, err)
		require.Len(t, listed, 2)
		assert.Equal(t, first.ID(), listed[0].ID())
		assert.Equal(t, second.ID(), listed[1].ID())

		none, err := repos.Assessments.ListByCompany(ctx, "c9")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("list orders by creation time at sub-millisecond precision", func(t *testing.T) {
		repos := newRepos(t)
		ctx := context.Background()

		const n = 8
		want := make([]string, n)
		created := make([]*model.Assessment, n)
		for i := range n {
			created[i] = NewOpenAssessment(t, "c1", time.Duration(i)*time.Microsecond)
			want[i] = created[i].ID()
		}
		for i := n - 1; i >= 0; i-- {
			require.NoError(t, repos.Assessments.Create(ctx, created[i]))
		}

		listed, err := repos.Assessments.ListByCompany(ctx, "c1")
		require.NoError(t, err)
		got := make([]string, 0, len(listed))
		for _, a := range listed {
			got = append(got, a.ID())
		}
		assert.Equal(t, want, got)
	})

	t.Run("list keeps insertion order for equal creation times", func(t *testing.T) {
		repos := newRepos(t)
		ctx := context.Background()

		const n = 6
		want := make([]string, n)
		for i := range n {
			a := NewOpenAssessment(t, "c1", 0)
			require.NoError(t, repos.Assessments.Create(ctx, a))
			want[i] = a.ID()
		}

		listed, err := repos.Assessments.ListByCompany(ctx, "c1")
		require.NoError(t, err)
		got := make([]string, 0, len(listed))
		for _, a := range listed {
			got = append(got, a.ID())
		}
		assert.Equal(t, want, got)
	})

	t.Run("update applies score atomically", func(t *testing.T) {
		repos := newRepos(t)
		ctx := context.Background()
		engine := service.NewScoringEngine()

		a := NewOpenAssessment(t, "c1", 0, valueobject.FactorOffshoreEntities, valueobject.FactorRegulatoryIssues)
		require.NoError(t, repos.Assessments.Create(ctx, a))

		updated, err := repos.Assessments.Update(ctx, a.ID(), func(a *model.Assessment) error {
			return a.ApplyScore(engine.Score(a.ScoringInput()), FixedTime.Add(time.Hour))
		})
		require.NoError(t, err)
		assert.Equal(t, valueobject.StatusScored, updated.Status())
		assert.NotEmpty(t, updated.DomainEvents())

		stored, err := repos.Assessments.FindByID(ctx, a.ID())
		require.NoError(t, err)
		assert.Equal(t, updated.Snapshot(), stored.Snapshot())

		scoring, ok := stored.Scoring()
		require.True(t, ok)
		assert.Equal(t, 100, scoring.Result.RiskScore)
		assert.Equal(t, []string{
			"Operations in high-risk jurisdiction: Panama",
			"Multiple severe risk factors identified",
		}, scoring.Result.RedFlags)
	})

	t.Run("update failure leaves record unchanged", func(t *testing.T) {
		repos := newRepos(t)
		ctx := context.Background()

		a := NewOpenAssessment(t, "c1", 0)
		require.NoError(t, repos.Assessments.Create(ctx, a))

		_, err := repos.Assessments.Update(ctx, a.ID(), func(a *model.Assessment) error {
			return a.MarkReviewed(FixedTime)
		})
		assert.ErrorIs(t, err, model.ErrInvalidTransition)

		stored, err := repos.Assessments.FindByID(ctx, a.ID())
		require.NoError(t, err)
		assert.Equal(t, valueobject.StatusOpen, stored.Status())
		assert.Equal(t, 1, stored.Version())

		_, err = repos.Assessments.Update(ctx, "missing", func(*model.Assessment) error { return nil })
		assert.ErrorIs(t, err, model.ErrAssessmentNotFound)
	})

	t.Run("concurrent updates never lose a write", func(t *testing.T) {
		repos := newRepos(t)
		ctx := context.Background()
		engine := service.NewScoringEngine()

		a := NewOpenAssessment(t, "c1", 0, valueobject.FactorRapidGrowth)
		require.NoError(t, repos.Assessments.Create(ctx, a))

		const workers = 8
		var wg sync.WaitGroup
		errs := make([]error, workers)
		for i := range workers {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = repos.Assessments.Update(ctx, a.ID(), func(a *model.Assessment) error {
					return a.ApplyScore(engine.Score(a.ScoringInput()), FixedTime.Add(time.Duration(i)*time.Second))
				})
			}(i)
		}
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++
				continue
			}
			assert.ErrorIs(t, err, model.ErrInvalidTransition)
		}
		assert.Equal(t, 1, succeeded)

		stored, err := repos.Assessments.FindByID(ctx, a.ID())
		require.NoError(t, err)
		assert.Equal(t, 2, stored.Version())
	})

	t.Run("delete all", func(t *testing.T) {
		repos := newRepos(t)
		ctx := context.Background()

		a := NewOpenAssessment(t, "c1", 0)
		require.NoError(t, repos.Assessments.Create(ctx, a))
		require.NoError(t, repos.Assessments.DeleteAll(ctx))

		_, err := repos.Assessments.FindByID(ctx, a.ID())
		assert.ErrorIs(t, err, model.ErrAssessmentNotFound)

		listed, err := repos.Assessments.ListByCompany(ctx, "c1")
		require.NoError(t, err)
		assert.Empty(t, listed)
	})

	t.Run("settings default and save", func(t *testing.T) {
		repos := newRepos(t)
		ctx := context.Background()

		s, err := repos.Settings.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, model.DefaultSettings(), s)

		require.NoError(t, repos.Settings.Save(ctx, model.Settings{DatasetVersion: valueobject.DatasetB, AppVersion: "1.0.0"}))

		s, err = repos.Settings.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, valueobject.DatasetB, s.DatasetVersion)
	})
}
