package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"uniflow/internal/model"
)

func TestLoginRequiresNameForNewUsers(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.auth.Login(ctx, "new@x.com", "")
	require.ErrorIs(t, err, ErrNameRequired)

	exists, err := env.auth.CheckEmailExists(ctx, "new@x.com")
	require.NoError(t, err)
	require.False(t, exists)

	user, err := env.auth.Login(ctx, "new@x.com", "Ann")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "Ann", user.Name)
	require.Contains(t, user.Avatar, "ui-avatars.com")

	exists, err = env.auth.CheckEmailExists(ctx, "new@x.com")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestLoginRejectsEmptyEmail(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.auth.Login(context.Background(), "", "Ann")
	require.Error(t, err)
}

func TestLoginExistingUserIgnoresName(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	first := registerUser(t, env, "ann@x.com", "Ann")
	again, err := env.auth.Login(ctx, "ann@x.com", "Somebody Else")
	require.NoError(t, err)
	require.Equal(t, first.ID, again.ID)
	require.Equal(t, "Ann", again.Name)
}

func TestLoginSetsSession(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	user := registerUser(t, env, "ann@x.com", "Ann")
	current, err := env.auth.Session(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	require.Equal(t, user.ID, current.ID)
}

func TestSessionSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "uniflow.db")

	env1 := newTestEnvAt(t, path)
	user := registerUser(t, env1, "ann@x.com", "Ann")
	require.NoError(t, env1.store.Close())

	// fresh stack over the same file stands in for a process restart
	env2 := newTestEnvAt(t, path)
	current, err := env2.auth.Session(ctx)
	require.NoError(t, err)
	require.NotNil(t, current)
	require.Equal(t, user.ID, current.ID)
	require.Equal(t, "ann@x.com", current.Email)
}

func TestUpdateUserMergesFields(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	user := registerUser(t, env, "ann@x.com", "Ann")
	major := "CS"
	updated, err := env.auth.UpdateUser(ctx, user.ID, model.UserUpdate{Major: &major})
	require.NoError(t, err)

	require.Equal(t, "CS", updated.Major)
	require.Equal(t, user.Name, updated.Name)
	require.Equal(t, user.Email, updated.Email)
	require.Equal(t, user.Avatar, updated.Avatar)

	// the session slot follows the update
	current, err := env.auth.Session(ctx)
	require.NoError(t, err)
	require.Equal(t, "CS", current.Major)
}

func TestUpdateUserDoesNotTouchOtherSessions(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	ann := registerUser(t, env, "ann@x.com", "Ann")
	registerUser(t, env, "bob@x.com", "Bob") // Bob now holds the session

	major := "CS"
	_, err := env.auth.UpdateUser(ctx, ann.ID, model.UserUpdate{Major: &major})
	require.NoError(t, err)

	current, err := env.auth.Session(ctx)
	require.NoError(t, err)
	require.Equal(t, "bob@x.com", current.Email)
	require.Empty(t, current.Major)
}

func TestUpdateUnknownUser(t *testing.T) {
	env := newTestEnv(t)
	name := "Ghost"
	_, err := env.auth.UpdateUser(context.Background(), "missing", model.UserUpdate{Name: &name})
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogoutClearsOnlySession(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	registerUser(t, env, "ann@x.com", "Ann")
	require.NoError(t, env.auth.Logout(ctx))

	current, err := env.auth.Session(ctx)
	require.NoError(t, err)
	require.Nil(t, current)

	exists, err := env.auth.CheckEmailExists(ctx, "ann@x.com")
	require.NoError(t, err)
	require.True(t, exists)
}
