package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"uniflow/internal/model"
	"uniflow/internal/repository"
	"uniflow/internal/store"
)

type testEnv struct {
	store       *store.Store
	auth        AuthService
	courses     CourseService
	classes     ClassService
	feed        FeedService
	users       repository.UserRepository
	memberships repository.MembershipRepository
}

// newTestEnvAt wires the full service stack over a store at path, so tests
// can simulate a process restart by opening a second env on the same file.
func newTestEnvAt(t *testing.T, path string) *testEnv {
	t.Helper()
	st, err := store.Open(path, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, st.Initialize(context.Background()))
	t.Cleanup(func() { _ = st.Close() })

	users := repository.NewUserRepo(st)
	sessions := repository.NewSessionRepo(st)
	courses := repository.NewCourseRepo(st)
	memberships := repository.NewMembershipRepo(st)
	classes := repository.NewClassRepo(st)
	announcements := repository.NewAnnouncementRepo(st)
	observations := repository.NewObservationRepo(st)

	log := zerolog.Nop()
	return &testEnv{
		store:       st,
		auth:        NewAuthService(users, sessions, log),
		courses:     NewCourseService(st, courses, memberships, users, log),
		classes:     NewClassService(classes, log),
		feed:        NewFeedService(announcements, observations, users, log),
		users:       users,
		memberships: memberships,
	}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return newTestEnvAt(t, filepath.Join(t.TempDir(), "uniflow.db"))
}

func registerUser(t *testing.T, env *testEnv, email, name string) *model.User {
	t.Helper()
	user, err := env.auth.Login(context.Background(), email, name)
	require.NoError(t, err)
	return user
}
