package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	goredis "github.com/redis/go-redis/v9"

	"github.com/georgchimion-oss/fraud-scout-lite/internal/domain/model"
)

// maxUpdateAttempts bounds optimistic retries when a watched key changes.
const maxUpdateAttempts = 10

// AssessmentRepository implements port.AssessmentRepository. Each assessment
// is a JSON record under its own key, indexed per company by a sorted set
// scored on creation time in microseconds. Index members are
// "<zero-padded sequence>:<id>" so equal scores fall back to insertion order.
type AssessmentRepository struct {
	client *goredis.Client
}

func NewAssessmentRepository(client *goredis.Client) *AssessmentRepository {
	return &AssessmentRepository{client: client}
}

// Create writes the record and both indexes in one MULTI, guarded by a WATCH
// on the record key, so a failure never leaves an unindexed record behind.
func (r *AssessmentRepository) Create(ctx context.Context, a *model.Assessment) error {
	payload, err := json.Marshal(a.Snapshot())
	if err != nil {
		return fmt.Errorf("failed to encode assessment: %w", err)
	}

	seq, err := r.client.Incr(ctx, assessmentSeqKey).Result()
	if err != nil {
		return fmt.Errorf("failed to allocate assessment sequence: %w", err)
	}

	key := assessmentKey(a.ID())
	txf := func(tx *goredis.Tx) error {
		n, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return fmt.Errorf("failed to check assessment: %w", err)
		}
		if n > 0 {
			return fmt.Errorf("assessment %s: %w", a.ID(), model.ErrAssessmentExists)
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, payload, 0)
			pipe.ZAdd(ctx, companyAssessmentsKey(a.CompanyID()), goredis.Z{
				Score:  float64(a.CreatedAt().UnixMicro()),
				Member: indexMember(seq, a.ID()),
			})
			pipe.SAdd(ctx, assessmentsKey, a.ID())
			return nil
		})
		return err
	}

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return nil
		}
		if errors.Is(err, goredis.TxFailedErr) {
			continue
		}
		if errors.Is(err, model.ErrAssessmentExists) {
			return err
		}
		return fmt.Errorf("failed to write assessment: %w", err)
	}
	return fmt.Errorf("assessment %s: create contention after %d attempts: %w", a.ID(), maxUpdateAttempts, goredis.TxFailedErr)
}

func indexMember(seq int64, id string) string {
	return fmt.Sprintf("%020d:%s", seq, id)
}

func memberID(member string) string {
	if _, id, ok := strings.Cut(member, ":"); ok {
		return id
	}
	return member
}

func (r *AssessmentRepository) FindByID(ctx context.Context, id string) (*model.Assessment, error) {
	data, err := r.client.Get(ctx, assessmentKey(id)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, fmt.Errorf("assessment %s: %w", id, model.ErrAssessmentNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read assessment: %w", err)
	}
	return decodeAssessment(data)
}

// ListByCompany returns assessments oldest first. Index entries whose record
// is gone are skipped.
func (r *AssessmentRepository) ListByCompany(ctx context.Context, companyID string) ([]*model.Assessment, error) {
	members, err := r.client.ZRange(ctx, companyAssessmentsKey(companyID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read company index: %w", err)
	}
	out := make([]*model.Assessment, 0, len(members))
	if len(members) == 0 {
		return out, nil
	}

	keys := make([]string, 0, len(members))
	for _, m := range members {
		keys = append(keys, assessmentKey(memberID(m)))
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read assessments: %w", err)
	}
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		a, err := decodeAssessment([]byte(raw))
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	// Scores are microseconds; createdAt keeps nanoseconds.
	slices.SortStableFunc(out, func(a, b *model.Assessment) int {
		return a.CreatedAt().Compare(b.CreatedAt())
	})
	return out, nil
}

// Update runs mutate inside WATCH/MULTI on the assessment key and retries
// when another client modified the record first.
func (r *AssessmentRepository) Update(ctx context.Context, id string, mutate func(*model.Assessment) error) (*model.Assessment, error) {
	key := assessmentKey(id)
	var updated *model.Assessment

	txf := func(tx *goredis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, goredis.Nil) {
			return fmt.Errorf("assessment %s: %w", id, model.ErrAssessmentNotFound)
		}
		if err != nil {
			return fmt.Errorf("failed to read assessment: %w", err)
		}

		a, err := decodeAssessment(data)
		if err != nil {
			return err
		}
		if err := mutate(a); err != nil {
			return err
		}

		payload, err := json.Marshal(a.Snapshot())
		if err != nil {
			return fmt.Errorf("failed to encode assessment: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, payload, 0)
			return nil
		})
		if err != nil {
			return err
		}
		updated = a
		return nil
	}

	for attempt := 0; attempt < maxUpdateAttempts; attempt++ {
		err := r.client.Watch(ctx, txf, key)
		if err == nil {
			return updated, nil
		}
		if errors.Is(err, goredis.TxFailedErr) {
			continue
		}
		return nil, err
	}
	return nil, fmt.Errorf("assessment %s: update contention after %d attempts: %w", id, maxUpdateAttempts, goredis.TxFailedErr)
}

// DeleteAll removes every assessment record and index.
func (r *AssessmentRepository) DeleteAll(ctx context.Context) error {
	keys := []string{assessmentsKey}

	ids, err := r.client.SMembers(ctx, assessmentsKey).Result()
	if err != nil {
		return fmt.Errorf("failed to read assessment ids: %w", err)
	}
	for _, id := range ids {
		keys = append(keys, assessmentKey(id))
	}

	iter := r.client.Scan(ctx, 0, companyAssessmentsKey("*"), 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan company indexes: %w", err)
	}

	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete assessments: %w", err)
	}
	return nil
}

func decodeAssessment(data []byte) (*model.Assessment, error) {
	var s model.AssessmentSnapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode assessment: %w", err)
	}
	a, err := model.Reconstruct(s)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct assessment: %w", err)
	}
	return a, nil
}
