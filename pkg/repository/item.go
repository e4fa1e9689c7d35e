package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// ItemRepository handles seen-item dedup records
type ItemRepository struct {
	db *sqlx.DB
}

// NewItemRepository creates a new seen-item repository
func NewItemRepository(db *sqlx.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

// MarkItemPosted records a delivered feed item. The (feed, guid) pair is
// upserted so a re-delivery attempt does not fail on the unique constraint.
func (r *ItemRepository) MarkItemPosted(ctx context.Context, feedID int64, guid string, publishedAt *time.Time) error {
	query := `
		INSERT INTO seen_items (feed_id, guid, posted, published_at) VALUES (?, ?, 1, ?)
		ON CONFLICT(feed_id, guid) DO UPDATE SET posted = 1, published_at = excluded.published_at
	`
	err := withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, feedID, guid, publishedAt)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("mark item posted (feed %d, guid %s): %w", feedID, guid, err)
	}
	return nil
}

// IsItemPosted reports whether a feed item has already been delivered
func (r *ItemRepository) IsItemPosted(ctx context.Context, feedID int64, guid string) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM seen_items WHERE feed_id = ? AND guid = ? AND posted = 1", feedID, guid)
	if err != nil {
		return false, fmt.Errorf("check item posted (feed %d, guid %s): %w", feedID, guid, err)
	}
	return count > 0, nil
}

// CountSeenItems returns the number of dedup records for a feed
func (r *ItemRepository) CountSeenItems(ctx context.Context, feedID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM seen_items WHERE feed_id = ?", feedID)
	if err != nil {
		return 0, fmt.Errorf("count seen items for feed %d: %w", feedID, err)
	}
	return count, nil
}
