package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"uniflow/internal/model"
	"uniflow/internal/store"
)

// SessionRepository owns the single current-session slot. The slot holds a
// copy of the logged-in user's record and is absent before first login and
// after logout.
type SessionRepository interface {
	// Get returns the session holder, or nil when no session is set.
	Get(ctx context.Context) (*model.User, error)
	Set(ctx context.Context, u model.User) error
	Clear(ctx context.Context) error
}

type sessionRepo struct {
	kv store.KV
}

// NewSessionRepo creates a SessionRepository over the given store or
// transaction.
func NewSessionRepo(kv store.KV) SessionRepository {
	return &sessionRepo{kv: kv}
}

func (r *sessionRepo) Get(ctx context.Context) (*model.User, error) {
	raw, ok, err := r.kv.Get(ctx, store.KeySession)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var u model.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("decode %s: %w", store.KeySession, err)
	}
	return &u, nil
}

func (r *sessionRepo) Set(ctx context.Context, u model.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode %s: %w", store.KeySession, err)
	}
	return r.kv.Set(ctx, store.KeySession, raw)
}

func (r *sessionRepo) Clear(ctx context.Context) error {
	return r.kv.Delete(ctx, store.KeySession)
}
