package repository

import (
	"context"

	"uniflow/internal/model"
	"uniflow/internal/store"
)

// CourseRepository defines the interface for interacting with the courses
// collection. Courses only ever get appended.
type CourseRepository interface {
	All(ctx context.Context) ([]model.Course, error)
	// GetByID retrieves a course by id, returning nil when absent.
	GetByID(ctx context.Context, id string) (*model.Course, error)
	// GetByCode retrieves a course by exact access-code match.
	GetByCode(ctx context.Context, code string) (*model.Course, error)
	Append(ctx context.Context, c model.Course) error
}

type courseRepo struct {
	kv store.KV
}

// NewCourseRepo creates a CourseRepository over the given store or
// transaction.
func NewCourseRepo(kv store.KV) CourseRepository {
	return &courseRepo{kv: kv}
}

func (r *courseRepo) All(ctx context.Context) ([]model.Course, error) {
	return loadAll[model.Course](ctx, r.kv, store.KeyCourses)
}

func (r *courseRepo) GetByID(ctx context.Context, id string) (*model.Course, error) {
	courses, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range courses {
		if courses[i].ID == id {
			return &courses[i], nil
		}
	}
	return nil, nil
}

func (r *courseRepo) GetByCode(ctx context.Context, code string) (*model.Course, error) {
	courses, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range courses {
		if courses[i].Code == code {
			return &courses[i], nil
		}
	}
	return nil, nil
}

func (r *courseRepo) Append(ctx context.Context, c model.Course) error {
	return appendOne(ctx, r.kv, store.KeyCourses, c)
}
