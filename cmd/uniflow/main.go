package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"uniflow/internal/config"
	"uniflow/internal/logger"
	"uniflow/internal/model"
	"uniflow/internal/repository"
	"uniflow/internal/service"
	"uniflow/internal/store"
)

// rootCmd is the entrypoint for all subcommands
var rootCmd = &cobra.Command{
	Use:   "uniflow",
	Short: "Local-first course management",
	Long: `UniFlow manages courses, class schedules, announcements, members, and
per-student observations. All state lives in a single store file on this
device; there is no server and no sync.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// app bundles the wired services for a single command invocation.
type app struct {
	store   *store.Store
	auth    service.AuthService
	courses service.CourseService
	classes service.ClassService
	feed    service.FeedService
	log     zerolog.Logger
}

// openApp loads configuration, opens the store, and wires the services.
// Callers must close() it.
func openApp(ctx context.Context) (*app, error) {
	// no .env file is the normal case for an installed binary
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg.Environment, cfg.LogLevel)

	st, err := store.Open(cfg.DBPath(), log)
	if err != nil {
		return nil, err
	}
	if err := st.Initialize(ctx); err != nil {
		_ = st.Close()
		return nil, err
	}

	users := repository.NewUserRepo(st)
	sessions := repository.NewSessionRepo(st)
	courses := repository.NewCourseRepo(st)
	memberships := repository.NewMembershipRepo(st)
	classes := repository.NewClassRepo(st)
	announcements := repository.NewAnnouncementRepo(st)
	observations := repository.NewObservationRepo(st)

	return &app{
		store:   st,
		auth:    service.NewAuthService(users, sessions, log),
		courses: service.NewCourseService(st, courses, memberships, users, log),
		classes: service.NewClassService(classes, log),
		feed:    service.NewFeedService(announcements, observations, users, log),
		log:     log,
	}, nil
}

func (a *app) close() {
	_ = a.store.Close()
}

// requireSession resolves the acting user from the persisted session slot.
func (a *app) requireSession(ctx context.Context) (*model.User, error) {
	user, err := a.auth.Session(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("no active session; run 'uniflow login' first")
	}
	return user, nil
}

// roleIn returns the user's role in the course, or "" when not a member.
// Role checks here are advisory display conventions, not enforcement.
func (a *app) roleIn(ctx context.Context, courseID, userID string) (model.Role, error) {
	members, err := a.courses.Members(ctx, courseID)
	if err != nil {
		return "", err
	}
	for _, m := range members {
		if m.ID == userID {
			return m.Role, nil
		}
	}
	return "", nil
}
