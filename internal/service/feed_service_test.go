package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestAnnouncementsPinnedFirstThenNewest(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	ann := registerUser(t, env, "ann@x.com", "Ann")

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	a, err := env.feed.CreateAnnouncement(ctx, AnnouncementInput{
		CourseID: "c1", AuthorID: ann.ID, Content: "A", CreatedAt: base.Add(10 * time.Second),
	})
	require.NoError(t, err)
	b, err := env.feed.CreateAnnouncement(ctx, AnnouncementInput{
		CourseID: "c1", AuthorID: ann.ID, Content: "B", CreatedAt: base.Add(5 * time.Second), IsPinned: true,
	})
	require.NoError(t, err)
	c, err := env.feed.CreateAnnouncement(ctx, AnnouncementInput{
		CourseID: "c1", AuthorID: ann.ID, Content: "C", CreatedAt: base.Add(20 * time.Second), IsPinned: true,
	})
	require.NoError(t, err)

	items, err := env.feed.Announcements(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, items, 3)
	// pinned precede unpinned regardless of recency; newest first per group
	require.Equal(t, c.ID, items[0].ID)
	require.Equal(t, b.ID, items[1].ID)
	require.Equal(t, a.ID, items[2].ID)
}

func TestAnnouncementsJoinAuthorName(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	ann := registerUser(t, env, "ann@x.com", "Ann")

	_, err := env.feed.CreateAnnouncement(ctx, AnnouncementInput{CourseID: "c1", AuthorID: ann.ID, Content: "hi"})
	require.NoError(t, err)
	_, err = env.feed.CreateAnnouncement(ctx, AnnouncementInput{CourseID: "c1", AuthorID: "missing", Content: "orphan"})
	require.NoError(t, err)

	items, err := env.feed.Announcements(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, items, 2)

	byContent := map[string]string{}
	for _, item := range items {
		byContent[item.Content] = item.AuthorName
	}
	require.Equal(t, "Ann", byContent["hi"])
	require.Equal(t, "Usuario", byContent["orphan"])
}

func TestAnnouncementsFilterByCourse(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	ann := registerUser(t, env, "ann@x.com", "Ann")

	_, err := env.feed.CreateAnnouncement(ctx, AnnouncementInput{CourseID: "c1", AuthorID: ann.ID, Content: "ours"})
	require.NoError(t, err)
	_, err = env.feed.CreateAnnouncement(ctx, AnnouncementInput{CourseID: "c2", AuthorID: ann.ID, Content: "theirs"})
	require.NoError(t, err)

	items, err := env.feed.Announcements(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "ours", items[0].Content)
}

func TestObservationsFilterByCourseAndStudent(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	ann := registerUser(t, env, "ann@x.com", "Ann")

	for _, in := range []ObservationInput{
		{CourseID: "c1", StudentID: "s1", AuthorID: ann.ID, Content: "late twice"},
		{CourseID: "c1", StudentID: "s2", AuthorID: ann.ID, Content: "other student"},
		{CourseID: "c2", StudentID: "s1", AuthorID: ann.ID, Content: "other course"},
		{CourseID: "c1", StudentID: "s1", AuthorID: ann.ID, Content: "improving"},
	} {
		_, err := env.feed.CreateObservation(ctx, in)
		require.NoError(t, err)
	}

	items, err := env.feed.Observations(ctx, "c1", "s1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	// storage order, no sort
	require.Equal(t, "late twice", items[0].Content)
	require.Equal(t, "improving", items[1].Content)
}

func TestCreateObservationStampsCreatedAt(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	ann := registerUser(t, env, "ann@x.com", "Ann")

	before := time.Now().UTC()
	o, err := env.feed.CreateObservation(ctx, ObservationInput{
		CourseID: "c1", StudentID: "s1", AuthorID: ann.ID, Content: "note",
	})
	require.NoError(t, err)
	require.Len(t, o.ID, 9)
	require.False(t, o.CreatedAt.Before(before))
	require.False(t, o.CreatedAt.After(time.Now().UTC()))
}
