package service

import (
	"context"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"uniflow/internal/model"
	"uniflow/internal/repository"
	"uniflow/internal/util"
)

// ClassInput carries the caller-supplied fields of a new class session.
// Date and time are stored as given; no format is imposed here.
type ClassInput struct {
	CourseID string
	Date     string
	Time     string
	Location string
	Topic    string
	Notes    string
	Status   model.ClassStatus
}

// ClassService owns the per-course class schedule.
type ClassService interface {
	// List returns the course's sessions sorted ascending by date. The sort
	// is stable: sessions sharing a date keep insertion order.
	List(ctx context.Context, courseID string) ([]model.ClassSession, error)
	// Create appends a session with a generated id. There is no check that
	// the course exists.
	Create(ctx context.Context, in ClassInput) (*model.ClassSession, error)
}

type classService struct {
	classes repository.ClassRepository
	log     zerolog.Logger
}

// NewClassService creates a new ClassService.
func NewClassService(classes repository.ClassRepository, logger zerolog.Logger) ClassService {
	return &classService{
		classes: classes,
		log:     logger.With().Str("service", "ClassService").Logger(),
	}
}

func (s *classService) List(ctx context.Context, courseID string) ([]model.ClassSession, error) {
	sessions, err := s.classes.ByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	// ISO dates order the same lexicographically and chronologically.
	slices.SortStableFunc(sessions, func(a, b model.ClassSession) int {
		return strings.Compare(a.Date, b.Date)
	})
	return sessions, nil
}

func (s *classService) Create(ctx context.Context, in ClassInput) (*model.ClassSession, error) {
	status := in.Status
	if status == "" {
		status = model.ClassScheduled
	}
	session := model.ClassSession{
		ID:       util.NewID(),
		CourseID: in.CourseID,
		Date:     in.Date,
		Time:     in.Time,
		Location: in.Location,
		Topic:    in.Topic,
		Notes:    in.Notes,
		Status:   status,
	}
	if err := s.classes.Append(ctx, session); err != nil {
		s.log.Error().Err(err).Str("course_id", in.CourseID).Msg("Failed to create class")
		return nil, err
	}
	return &session, nil
}
