package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"postomat/pkg/domain"
)

// FeedRepository handles feed-related database operations
type FeedRepository struct {
	db *sqlx.DB
}

// feedSQL represents a feed for SQL operations
type feedSQL struct {
	ID              int64      `db:"id"`
	UserID          int64      `db:"user_id"`
	URL             string     `db:"url"`
	ChatIDs         string     `db:"chat_ids"`
	Keywords        string     `db:"keywords"`
	IntervalMinutes int        `db:"interval_minutes"`
	NextCheck       *time.Time `db:"next_check"`
	CreatedAt       time.Time  `db:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at"`
}

// NewFeedRepository creates a new feed repository
func NewFeedRepository(db *sqlx.DB) *FeedRepository {
	return &FeedRepository{db: db}
}

// CreateFeed inserts a new feed and sets its assigned id
func (r *FeedRepository) CreateFeed(ctx context.Context, feed *domain.Feed) error {
	chatIDs, err := marshalJSON(feed.ChatIDs)
	if err != nil {
		return err
	}
	keywords := feed.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	keywordsJSON, err := marshalJSON(keywords)
	if err != nil {
		return err
	}

	sqlFeed := &feedSQL{
		UserID:          feed.UserID,
		URL:             feed.URL,
		ChatIDs:         chatIDs,
		Keywords:        keywordsJSON,
		IntervalMinutes: feed.IntervalMinutes,
		NextCheck:       feed.NextCheck,
	}

	query := `
		INSERT INTO feeds (user_id, url, chat_ids, keywords, interval_minutes, next_check)
		VALUES (:user_id, :url, :chat_ids, :keywords, :interval_minutes, :next_check)
	`
	var result sql.Result
	err = withRetry(ctx, func() error {
		var execErr error
		result, execErr = r.db.NamedExecContext(ctx, query, sqlFeed)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("create feed: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}

	feed.ID = id
	return nil
}

// GetFeed retrieves a feed by ID
func (r *FeedRepository) GetFeed(ctx context.Context, id int64) (*domain.Feed, error) {
	var sqlFeed feedSQL
	err := r.db.GetContext(ctx, &sqlFeed, "SELECT * FROM feeds WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get feed %d: %w", id, err)
	}
	return r.toDomain(&sqlFeed)
}

// GetFeeds retrieves all feeds, for the startup recovery sweep
func (r *FeedRepository) GetFeeds(ctx context.Context) ([]*domain.Feed, error) {
	var sqlFeeds []feedSQL
	if err := r.db.SelectContext(ctx, &sqlFeeds, "SELECT * FROM feeds ORDER BY id"); err != nil {
		return nil, fmt.Errorf("get feeds: %w", err)
	}

	feeds := make([]*domain.Feed, 0, len(sqlFeeds))
	for i := range sqlFeeds {
		feed, err := r.toDomain(&sqlFeeds[i])
		if err != nil {
			return nil, err
		}
		feeds = append(feeds, feed)
	}
	return feeds, nil
}

// GetUserFeeds retrieves feeds belonging to a user
func (r *FeedRepository) GetUserFeeds(ctx context.Context, userID int64) ([]*domain.Feed, error) {
	var sqlFeeds []feedSQL
	err := r.db.SelectContext(ctx, &sqlFeeds, "SELECT * FROM feeds WHERE user_id = ? ORDER BY id", userID)
	if err != nil {
		return nil, fmt.Errorf("get user feeds: %w", err)
	}

	feeds := make([]*domain.Feed, 0, len(sqlFeeds))
	for i := range sqlFeeds {
		feed, err := r.toDomain(&sqlFeeds[i])
		if err != nil {
			return nil, err
		}
		feeds = append(feeds, feed)
	}
	return feeds, nil
}

// AdvanceNextCheck moves the feed's next-check time to now + interval.
// Called after every poll attempt, success or failure alike, so a failing
// feed neither polls in a tight loop nor stops polling.
func (r *FeedRepository) AdvanceNextCheck(ctx context.Context, id int64, intervalMinutes int) error {
	next := time.Now().UTC().Add(time.Duration(intervalMinutes) * time.Minute)
	err := withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, "UPDATE feeds SET next_check = ? WHERE id = ?", next, id)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("advance next check for feed %d: %w", id, err)
	}
	return nil
}

// DeleteFeed removes a feed; its seen-item records cascade
func (r *FeedRepository) DeleteFeed(ctx context.Context, id int64) error {
	err := withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, "DELETE FROM feeds WHERE id = ?", id)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("delete feed %d: %w", id, err)
	}
	return nil
}

// toDomain converts a SQL row to a domain feed
func (r *FeedRepository) toDomain(sqlFeed *feedSQL) (*domain.Feed, error) {
	feed := &domain.Feed{
		ID:              sqlFeed.ID,
		UserID:          sqlFeed.UserID,
		URL:             sqlFeed.URL,
		IntervalMinutes: sqlFeed.IntervalMinutes,
		NextCheck:       sqlFeed.NextCheck,
		CreatedAt:       sqlFeed.CreatedAt,
		UpdatedAt:       sqlFeed.UpdatedAt,
	}
	if err := unmarshalJSON(sqlFeed.ChatIDs, &feed.ChatIDs); err != nil {
		return nil, fmt.Errorf("feed %d chat ids: %w", sqlFeed.ID, err)
	}
	if err := unmarshalJSON(sqlFeed.Keywords, &feed.Keywords); err != nil {
		return nil, fmt.Errorf("feed %d keywords: %w", sqlFeed.ID, err)
	}
	return feed, nil
}
