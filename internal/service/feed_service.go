package service

import (
	"context"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"uniflow/internal/model"
	"uniflow/internal/repository"
	"uniflow/internal/util"
)

// authorNameFallback is shown when an announcement's author record is
// missing or carries no name.
const authorNameFallback = "Usuario"

// AnnouncementInput carries the caller-supplied fields of a new
// announcement. CreatedAt defaults to the current time when zero.
type AnnouncementInput struct {
	CourseID  string
	AuthorID  string
	Content   string
	CreatedAt time.Time
	IsPinned  bool
}

// ObservationInput carries the caller-supplied fields of a new observation.
// The creation timestamp is assigned here, never by the caller.
type ObservationInput struct {
	CourseID  string
	StudentID string
	AuthorID  string
	Content   string
}

// FeedService owns the announcement feed and per-student observations.
type FeedService interface {
	// Announcements returns the course feed with author names joined in.
	// Pinned posts come first regardless of recency; within each group,
	// newest first.
	Announcements(ctx context.Context, courseID string) ([]model.AnnouncementWithAuthor, error)
	CreateAnnouncement(ctx context.Context, in AnnouncementInput) (*model.Announcement, error)
	// Observations returns the notes about one student in one course, in
	// storage order.
	Observations(ctx context.Context, courseID, studentID string) ([]model.Observation, error)
	CreateObservation(ctx context.Context, in ObservationInput) (*model.Observation, error)
}

type feedService struct {
	announcements repository.AnnouncementRepository
	observations  repository.ObservationRepository
	users         repository.UserRepository
	log           zerolog.Logger
}

// NewFeedService creates a new FeedService.
func NewFeedService(announcements repository.AnnouncementRepository, observations repository.ObservationRepository, users repository.UserRepository, logger zerolog.Logger) FeedService {
	return &feedService{
		announcements: announcements,
		observations:  observations,
		users:         users,
		log:           logger.With().Str("service", "FeedService").Logger(),
	}
}

func (s *feedService) Announcements(ctx context.Context, courseID string) ([]model.AnnouncementWithAuthor, error) {
	items, err := s.announcements.ByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	// Two-level stable sort: pinned before unpinned, then newest first
	// within each group.
	slices.SortStableFunc(items, func(a, b model.Announcement) int {
		if a.IsPinned != b.IsPinned {
			if b.IsPinned {
				return 1
			}
			return -1
		}
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	users, err := s.users.All(ctx)
	if err != nil {
		return nil, err
	}
	nameByID := make(map[string]string, len(users))
	for _, u := range users {
		nameByID[u.ID] = u.Name
	}
	out := make([]model.AnnouncementWithAuthor, 0, len(items))
	for _, a := range items {
		name := nameByID[a.AuthorID]
		if name == "" {
			name = authorNameFallback
		}
		out = append(out, model.AnnouncementWithAuthor{Announcement: a, AuthorName: name})
	}
	return out, nil
}

func (s *feedService) CreateAnnouncement(ctx context.Context, in AnnouncementInput) (*model.Announcement, error) {
	createdAt := in.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	a := model.Announcement{
		ID:        util.NewID(),
		CourseID:  in.CourseID,
		AuthorID:  in.AuthorID,
		Content:   in.Content,
		CreatedAt: createdAt,
		IsPinned:  in.IsPinned,
	}
	if err := s.announcements.Append(ctx, a); err != nil {
		s.log.Error().Err(err).Str("course_id", in.CourseID).Msg("Failed to create announcement")
		return nil, err
	}
	return &a, nil
}

func (s *feedService) Observations(ctx context.Context, courseID, studentID string) ([]model.Observation, error) {
	return s.observations.ByStudent(ctx, courseID, studentID)
}

func (s *feedService) CreateObservation(ctx context.Context, in ObservationInput) (*model.Observation, error) {
	o := model.Observation{
		ID:        util.NewID(),
		CourseID:  in.CourseID,
		StudentID: in.StudentID,
		AuthorID:  in.AuthorID,
		Content:   in.Content,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.observations.Append(ctx, o); err != nil {
		s.log.Error().Err(err).Str("course_id", in.CourseID).Msg("Failed to create observation")
		return nil, err
	}
	return &o, nil
}
