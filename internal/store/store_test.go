package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T, path string) *Store {
	t.Helper()
	s, err := Open(path, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestInitializeSeedsEmptyCollections(t *testing.T) {
	ctx := context.Background()
	s := openTest(t, filepath.Join(t.TempDir(), "uniflow.db"))
	require.NoError(t, s.Initialize(ctx))

	for _, key := range collectionKeys {
		raw, ok, err := s.Get(ctx, key)
		require.NoError(t, err)
		require.True(t, ok, "key %s not seeded", key)
		require.JSONEq(t, "[]", string(raw))
	}

	// the session slot must stay absent
	_, ok, err := s.Get(ctx, KeySession)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestInitializeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := openTest(t, filepath.Join(t.TempDir(), "uniflow.db"))
	require.NoError(t, s.Initialize(ctx))

	require.NoError(t, s.Set(ctx, KeyUsers, []byte(`[{"id":"u1"}]`)))
	require.NoError(t, s.Initialize(ctx))

	raw, ok, err := s.Get(ctx, KeyUsers)
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `[{"id":"u1"}]`, string(raw))
}

func TestSetGetDelete(t *testing.T) {
	ctx := context.Background()
	s := openTest(t, filepath.Join(t.TempDir(), "uniflow.db"))

	require.NoError(t, s.Set(ctx, KeySession, []byte(`{"id":"u1"}`)))
	raw, ok, err := s.Get(ctx, KeySession)
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `{"id":"u1"}`, string(raw))

	require.NoError(t, s.Set(ctx, KeySession, []byte(`{"id":"u2"}`)))
	raw, _, err = s.Get(ctx, KeySession)
	require.NoError(t, err)
	require.JSONEq(t, `{"id":"u2"}`, string(raw))

	require.NoError(t, s.Delete(ctx, KeySession))
	_, ok, err = s.Get(ctx, KeySession)
	require.NoError(t, err)
	require.False(t, ok)

	// deleting an absent key is fine
	require.NoError(t, s.Delete(ctx, KeySession))
}

func TestValuesSurviveReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "uniflow.db")

	s1, err := Open(path, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, s1.Initialize(ctx))
	require.NoError(t, s1.Set(ctx, KeyCourses, []byte(`[{"id":"c1"}]`)))
	require.NoError(t, s1.Close())

	s2 := openTest(t, path)
	raw, ok, err := s2.Get(ctx, KeyCourses)
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `[{"id":"c1"}]`, string(raw))
}

func TestUpdateRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := openTest(t, filepath.Join(t.TempDir(), "uniflow.db"))
	require.NoError(t, s.Initialize(ctx))

	boom := errors.New("boom")
	err := s.Update(ctx, func(tx *Tx) error {
		if err := tx.Set(ctx, KeyCourses, []byte(`[{"id":"c1"}]`)); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	raw, ok, getErr := s.Get(ctx, KeyCourses)
	require.NoError(t, getErr)
	require.True(t, ok)
	require.JSONEq(t, "[]", string(raw))
}
