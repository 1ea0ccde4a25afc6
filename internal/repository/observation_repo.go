package repository

import (
	"context"

	"uniflow/internal/model"
	"uniflow/internal/store"
)

// ObservationRepository defines the interface for interacting with the
// observations collection.
type ObservationRepository interface {
	// ByStudent retrieves the observations about one student within one
	// course, in storage order.
	ByStudent(ctx context.Context, courseID, studentID string) ([]model.Observation, error)
	Append(ctx context.Context, o model.Observation) error
}

type observationRepo struct {
	kv store.KV
}

// NewObservationRepo creates an ObservationRepository over the given store
// or transaction.
func NewObservationRepo(kv store.KV) ObservationRepository {
	return &observationRepo{kv: kv}
}

func (r *observationRepo) ByStudent(ctx context.Context, courseID, studentID string) ([]model.Observation, error) {
	all, err := loadAll[model.Observation](ctx, r.kv, store.KeyObservations)
	if err != nil {
		return nil, err
	}
	out := make([]model.Observation, 0, len(all))
	for _, o := range all {
		if o.CourseID == courseID && o.StudentID == studentID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *observationRepo) Append(ctx context.Context, o model.Observation) error {
	return appendOne(ctx, r.kv, store.KeyObservations, o)
}
