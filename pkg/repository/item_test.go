package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postomat/pkg/domain"
)

func TestItemRepository_MarkAndCheck(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	feed := &domain.Feed{UserID: 1, URL: "https://example.com/f.xml", ChatIDs: []int64{-1}, IntervalMinutes: 10}
	require.NoError(t, repos.Feed.CreateFeed(context.Background(), feed))

	published := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)

	t.Run("unseen item", func(t *testing.T) {
		posted, err := repos.Item.IsItemPosted(context.Background(), feed.ID, "guid-1")
		require.NoError(t, err)
		assert.False(t, posted)
	})

	t.Run("mark posted", func(t *testing.T) {
		err := repos.Item.MarkItemPosted(context.Background(), feed.ID, "guid-1", &published)
		require.NoError(t, err)

		posted, err := repos.Item.IsItemPosted(context.Background(), feed.ID, "guid-1")
		require.NoError(t, err)
		assert.True(t, posted)
	})

	t.Run("mark again does not fail on unique constraint", func(t *testing.T) {
		err := repos.Item.MarkItemPosted(context.Background(), feed.ID, "guid-1", &published)
		require.NoError(t, err)

		count, err := repos.Item.CountSeenItems(context.Background(), feed.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("same guid on another feed is independent", func(t *testing.T) {
		other := &domain.Feed{UserID: 1, URL: "https://example.com/other.xml", ChatIDs: []int64{-2}, IntervalMinutes: 10}
		require.NoError(t, repos.Feed.CreateFeed(context.Background(), other))

		posted, err := repos.Item.IsItemPosted(context.Background(), other.ID, "guid-1")
		require.NoError(t, err)
		assert.False(t, posted)
	})
}
