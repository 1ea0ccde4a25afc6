package repository

import (
	"context"

	"uniflow/internal/model"
	"uniflow/internal/store"
)

// UserRepository defines the interface for interacting with the users
// collection.
type UserRepository interface {
	All(ctx context.Context) ([]model.User, error)
	// GetByID retrieves a user by id, returning nil when absent.
	GetByID(ctx context.Context, id string) (*model.User, error)
	// GetByEmail retrieves a user by exact, case-sensitive email match.
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Append(ctx context.Context, u model.User) error
	// Replace overwrites the stored record carrying the same id. A missing
	// id leaves the collection untouched.
	Replace(ctx context.Context, u model.User) error
}

type userRepo struct {
	kv store.KV
}

// NewUserRepo creates a UserRepository over the given store or transaction.
func NewUserRepo(kv store.KV) UserRepository {
	return &userRepo{kv: kv}
}

func (r *userRepo) All(ctx context.Context) ([]model.User, error) {
	return loadAll[model.User](ctx, r.kv, store.KeyUsers)
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	users, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	users, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (r *userRepo) Append(ctx context.Context, u model.User) error {
	return appendOne(ctx, r.kv, store.KeyUsers, u)
}

func (r *userRepo) Replace(ctx context.Context, u model.User) error {
	users, err := r.All(ctx)
	if err != nil {
		return err
	}
	for i := range users {
		if users[i].ID == u.ID {
			users[i] = u
			return saveAll(ctx, r.kv, store.KeyUsers, users)
		}
	}
	return nil
}
