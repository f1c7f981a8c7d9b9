package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/model"
)

// AssessmentRepository implements port.AssessmentRepository in process
// memory. Records are stored as snapshots so callers never share aggregates.
type AssessmentRepository struct {
	mu      sync.Mutex
	records map[string]model.AssessmentSnapshot
	order   []string
}

func NewAssessmentRepository() *AssessmentRepository {
	return &AssessmentRepository{records: make(map[string]model.AssessmentSnapshot)}
}

func (r *AssessmentRepository) Create(_ context.Context, a *model.Assessment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.records[a.ID()]; exists {
		return fmt.Errorf("assessment %s: %w", a.ID(), model.ErrAssessmentExists)
	}
	r.records[a.ID()] = a.Snapshot()
	r.order = append(r.order, a.ID())
	return nil
}

func (r *AssessmentRepository) FindByID(_ context.Context, id string) (*model.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(id)
}

// ListByCompany returns assessments in creation order; ties keep insertion order.
func (r *AssessmentRepository) ListByCompany(_ context.Context, companyID string) ([]*model.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*model.Assessment, 0)
	for _, id := range r.order {
		if r.records[id].CompanyID != companyID {
			continue
		}
		a, err := r.load(id)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	slices.SortStableFunc(out, func(a, b *model.Assessment) int {
		return a.CreatedAt().Compare(b.CreatedAt())
	})
	return out, nil
}

// Update holds the store lock while mutate runs, so updates never interleave.
func (r *AssessmentRepository) Update(_ context.Context, id string, mutate func(*model.Assessment) error) (*model.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, err := r.load(id)
	if err != nil {
		return nil, err
	}
	if err := mutate(a); err != nil {
		return nil, err
	}
	r.records[id] = a.Snapshot()
	return a, nil
}

func (r *AssessmentRepository) DeleteAll(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = make(map[string]model.AssessmentSnapshot)
	r.order = nil
	return nil
}

func (r *AssessmentRepository) load(id string) (*model.Assessment, error) {
	s, ok := r.records[id]
	if !ok {
		return nil, fmt.Errorf("assessment %s: %w", id, model.ErrAssessmentNotFound)
	}
	a, err := model.Reconstruct(s)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct assessment: %w", err)
	}
	return a, nil
}
