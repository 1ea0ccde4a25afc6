package repository

import (
	"context"

	"uniflow/internal/model"
	"uniflow/internal/store"
)

// ClassRepository defines the interface for interacting with the class
// sessions collection.
type ClassRepository interface {
	ByCourse(ctx context.Context, courseID string) ([]model.ClassSession, error)
	Append(ctx context.Context, c model.ClassSession) error
}

type classRepo struct {
	kv store.KV
}

// NewClassRepo creates a ClassRepository over the given store or
// transaction.
func NewClassRepo(kv store.KV) ClassRepository {
	return &classRepo{kv: kv}
}

func (r *classRepo) ByCourse(ctx context.Context, courseID string) ([]model.ClassSession, error) {
	all, err := loadAll[model.ClassSession](ctx, r.kv, store.KeyClasses)
	if err != nil {
		return nil, err
	}
	out := make([]model.ClassSession, 0, len(all))
	for _, c := range all {
		if c.CourseID == courseID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *classRepo) Append(ctx context.Context, c model.ClassSession) error {
	return appendOne(ctx, r.kv, store.KeyClasses, c)
}
