package repository

import (
	"context"

	"uniflow/internal/model"
	"uniflow/internal/store"
)

// AnnouncementRepository defines the interface for interacting with the
// announcements collection.
type AnnouncementRepository interface {
	ByCourse(ctx context.Context, courseID string) ([]model.Announcement, error)
	Append(ctx context.Context, a model.Announcement) error
}

type announcementRepo struct {
	kv store.KV
}

// NewAnnouncementRepo creates an AnnouncementRepository over the given
// store or transaction.
func NewAnnouncementRepo(kv store.KV) AnnouncementRepository {
	return &announcementRepo{kv: kv}
}

func (r *announcementRepo) ByCourse(ctx context.Context, courseID string) ([]model.Announcement, error) {
	all, err := loadAll[model.Announcement](ctx, r.kv, store.KeyAnnouncements)
	if err != nil {
		return nil, err
	}
	out := make([]model.Announcement, 0, len(all))
	for _, a := range all {
		if a.CourseID == courseID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *announcementRepo) Append(ctx context.Context, a model.Announcement) error {
	return appendOne(ctx, r.kv, store.KeyAnnouncements, a)
}
