package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"uniflow/internal/model"
	"uniflow/internal/repository"
	"uniflow/internal/util"
)

// AuthService owns accounts and the current-session slot.
type AuthService interface {
	// CheckEmailExists reports whether a user with this exact email exists.
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	// Login returns the user for email and sets it as the current session.
	// An unknown email registers a new account; name is only consulted (and
	// required) in that case.
	Login(ctx context.Context, email, name string) (*model.User, error)
	// UpdateUser merges the set fields of upd into the stored record. When
	// the updated user holds the session, the slot is refreshed too.
	UpdateUser(ctx context.Context, userID string, upd model.UserUpdate) (*model.User, error)
	// Session returns the persisted session holder, or nil when none is
	// set. The record is returned as stored, without re-validation against
	// the users collection.
	Session(ctx context.Context) (*model.User, error)
	// Logout clears the session slot only; collections are untouched.
	Logout(ctx context.Context) error
}

type authService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	validate *validator.Validate
	log      zerolog.Logger
}

type loginInput struct {
	Email string `validate:"required"`
}

// NewAuthService creates a new AuthService.
func NewAuthService(users repository.UserRepository, sessions repository.SessionRepository, logger zerolog.Logger) AuthService {
	return &authService{
		users:    users,
		sessions: sessions,
		validate: validator.New(),
		log:      logger.With().Str("service", "AuthService").Logger(),
	}
}

func (s *authService) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return user != nil, nil
}

func (s *authService) Login(ctx context.Context, email, name string) (*model.User, error) {
	if err := s.validate.Struct(loginInput{Email: email}); err != nil {
		return nil, fmt.Errorf("invalid login input: %w", err)
	}
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		if name == "" {
			return nil, ErrNameRequired
		}
		user = &model.User{
			ID:     util.NewID(),
			Name:   name,
			Email:  email,
			Avatar: defaultAvatarURL(name),
		}
		if err := s.users.Append(ctx, *user); err != nil {
			s.log.Error().Err(err).Str("email", email).Msg("Failed to register user")
			return nil, err
		}
		s.log.Info().Str("user_id", user.ID).Msg("registered new user")
	}
	if err := s.sessions.Set(ctx, *user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) UpdateUser(ctx context.Context, userID string, upd model.UserUpdate) (*model.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	applyUpdate(user, upd)
	if err := s.users.Replace(ctx, *user); err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("Failed to update user")
		return nil, err
	}
	current, err := s.sessions.Get(ctx)
	if err != nil {
		return nil, err
	}
	if current != nil && current.ID == userID {
		if err := s.sessions.Set(ctx, *user); err != nil {
			return nil, err
		}
	}
	return user, nil
}

func (s *authService) Session(ctx context.Context) (*model.User, error) {
	return s.sessions.Get(ctx)
}

func (s *authService) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

func applyUpdate(u *model.User, upd model.UserUpdate) {
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.Avatar != nil {
		u.Avatar = *upd.Avatar
	}
	if upd.Institution != nil {
		u.Institution = *upd.Institution
	}
	if upd.Major != nil {
		u.Major = *upd.Major
	}
	if upd.Semester != nil {
		u.Semester = *upd.Semester
	}
}

// defaultAvatarURL derives the avatar for a freshly registered account from
// its display name.
func defaultAvatarURL(name string) string {
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(name) + "&background=random"
}
