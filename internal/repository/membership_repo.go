package repository

import (
	"context"

	"uniflow/internal/model"
	"uniflow/internal/store"
)

// MembershipRepository defines the interface for interacting with the
// memberships collection. Insertion order is meaningful: course and roster
// listings follow it.
type MembershipRepository interface {
	All(ctx context.Context) ([]model.Membership, error)
	ByUser(ctx context.Context, userID string) ([]model.Membership, error)
	ByCourse(ctx context.Context, courseID string) ([]model.Membership, error)
	// Get retrieves the membership for the (courseID, userID) pair,
	// returning nil when absent.
	Get(ctx context.Context, courseID, userID string) (*model.Membership, error)
	Append(ctx context.Context, m model.Membership) error
}

type membershipRepo struct {
	kv store.KV
}

// NewMembershipRepo creates a MembershipRepository over the given store or
// transaction.
func NewMembershipRepo(kv store.KV) MembershipRepository {
	return &membershipRepo{kv: kv}
}

func (r *membershipRepo) All(ctx context.Context) ([]model.Membership, error) {
	return loadAll[model.Membership](ctx, r.kv, store.KeyMemberships)
}

func (r *membershipRepo) ByUser(ctx context.Context, userID string) ([]model.Membership, error) {
	all, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Membership, 0, len(all))
	for _, m := range all {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *membershipRepo) ByCourse(ctx context.Context, courseID string) ([]model.Membership, error) {
	all, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Membership, 0, len(all))
	for _, m := range all {
		if m.CourseID == courseID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *membershipRepo) Get(ctx context.Context, courseID, userID string) (*model.Membership, error) {
	all, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].CourseID == courseID && all[i].UserID == userID {
			return &all[i], nil
		}
	}
	return nil, nil
}

func (r *membershipRepo) Append(ctx context.Context, m model.Membership) error {
	return appendOne(ctx, r.kv, store.KeyMemberships, m)
}
