package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"uniflow/internal/model"
	"uniflow/internal/repository"
	"uniflow/internal/store"
	"uniflow/internal/util"
)

// User-facing join outcomes. These strings are part of the contract with
// the UI layer and are rendered verbatim.
const (
	msgInvalidCode   = "Código inválido"
	msgAlreadyMember = "Ya eres miembro de este curso"
	msgJoined        = "Te uniste correctamente"
)

// CourseInput carries the caller-supplied fields of a new course.
type CourseInput struct {
	Name        string `validate:"required"`
	Subject     string
	Description string
}

// JoinResult is the value-channel outcome of a join attempt. Routine
// failures (bad code, duplicate membership) land here rather than in an
// error; callers branch on Success and show Message.
type JoinResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	CourseID string `json:"courseId,omitempty"`
}

// CourseService owns courses, memberships, and the join-code flow.
type CourseService interface {
	// MyCourses lists the courses userID belongs to, with the user's role,
	// in membership insertion order. Memberships whose course record is
	// missing are dropped.
	MyCourses(ctx context.Context, userID string) ([]model.CourseWithRole, error)
	// Create generates id and access code, stamps creator and creation
	// time, and writes the course together with the creator's admin
	// membership. Both records always land together.
	Create(ctx context.Context, userID string, in CourseInput) (*model.Course, error)
	// Join enrolls userID as a student in the course carrying code.
	Join(ctx context.Context, userID, code string) (*JoinResult, error)
	// Members lists the course roster with roles, in membership insertion
	// order. Memberships whose user record is missing are dropped.
	Members(ctx context.Context, courseID string) ([]model.Member, error)
}

type courseService struct {
	store       *store.Store
	courses     repository.CourseRepository
	memberships repository.MembershipRepository
	users       repository.UserRepository
	validate    *validator.Validate
	log         zerolog.Logger
}

// NewCourseService creates a new CourseService. The store handle is needed
// on top of the repositories because course creation spans two collections
// in one transaction.
func NewCourseService(st *store.Store, courses repository.CourseRepository, memberships repository.MembershipRepository, users repository.UserRepository, logger zerolog.Logger) CourseService {
	return &courseService{
		store:       st,
		courses:     courses,
		memberships: memberships,
		users:       users,
		validate:    validator.New(),
		log:         logger.With().Str("service", "CourseService").Logger(),
	}
}

func (s *courseService) MyCourses(ctx context.Context, userID string) ([]model.CourseWithRole, error) {
	mine, err := s.memberships.ByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	courses, err := s.courses.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.CourseWithRole, 0, len(mine))
	for _, m := range mine {
		for i := range courses {
			if courses[i].ID == m.CourseID {
				out = append(out, model.CourseWithRole{Course: courses[i], MyRole: m.Role})
				break
			}
		}
	}
	return out, nil
}

func (s *courseService) Create(ctx context.Context, userID string, in CourseInput) (*model.Course, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("invalid course input: %w", err)
	}
	now := time.Now().UTC()
	course := model.Course{
		ID:          util.NewID(),
		Name:        in.Name,
		Subject:     in.Subject,
		Description: in.Description,
		Code:        util.NewCode(),
		CreatorID:   userID,
		CreatedAt:   now,
	}
	membership := model.Membership{
		CourseID: course.ID,
		UserID:   userID,
		Role:     model.RoleAdmin,
		JoinedAt: now,
	}
	err := s.store.Update(ctx, func(tx *store.Tx) error {
		if err := repository.NewCourseRepo(tx).Append(ctx, course); err != nil {
			return err
		}
		return repository.NewMembershipRepo(tx).Append(ctx, membership)
	})
	if err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("Failed to create course")
		return nil, err
	}
	s.log.Info().Str("course_id", course.ID).Str("code", course.Code).Msg("created course")
	return &course, nil
}

func (s *courseService) Join(ctx context.Context, userID, code string) (*JoinResult, error) {
	course, err := s.courses.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return &JoinResult{Success: false, Message: msgInvalidCode}, nil
	}
	existing, err := s.memberships.Get(ctx, course.ID, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &JoinResult{Success: false, Message: msgAlreadyMember}, nil
	}
	membership := model.Membership{
		CourseID: course.ID,
		UserID:   userID,
		Role:     model.RoleStudent,
		JoinedAt: time.Now().UTC(),
	}
	if err := s.memberships.Append(ctx, membership); err != nil {
		s.log.Error().Err(err).Str("course_id", course.ID).Msg("Failed to join course")
		return nil, err
	}
	return &JoinResult{Success: true, Message: msgJoined, CourseID: course.ID}, nil
}

func (s *courseService) Members(ctx context.Context, courseID string) ([]model.Member, error) {
	memberships, err := s.memberships.ByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	users, err := s.users.All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Member, 0, len(memberships))
	for _, m := range memberships {
		for i := range users {
			if users[i].ID == m.UserID {
				out = append(out, model.Member{User: users[i], Role: m.Role})
				break
			}
		}
	}
	return out, nil
}
