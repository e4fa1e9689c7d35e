package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"

	"postomat/pkg/content"
	"postomat/pkg/domain"
	"postomat/pkg/repository"
)

//go:generate moq -out mocks/feed_store.go -pkg mocks -skip-ensure -fmt goimports . FeedStore
//go:generate moq -out mocks/item_store.go -pkg mocks -skip-ensure -fmt goimports . ItemStore
//go:generate moq -out mocks/feed_fetcher.go -pkg mocks -skip-ensure -fmt goimports . FeedFetcher
//go:generate moq -out mocks/keyword_filter.go -pkg mocks -skip-ensure -fmt goimports . KeywordFilter
//go:generate moq -out mocks/item_renderer.go -pkg mocks -skip-ensure -fmt goimports . ItemRenderer

// FeedStore is the feed persistence the poll orchestrator needs
type FeedStore interface {
	GetFeed(ctx context.Context, id int64) (*domain.Feed, error)
	GetFeeds(ctx context.Context) ([]*domain.Feed, error)
	AdvanceNextCheck(ctx context.Context, id int64, intervalMinutes int) error
}

// ItemStore holds the dedup records for delivered feed items
type ItemStore interface {
	IsItemPosted(ctx context.Context, feedID int64, guid string) (bool, error)
	MarkItemPosted(ctx context.Context, feedID int64, guid string, publishedAt *time.Time) error
}

// FeedFetcher retrieves the current items of a feed source in source order
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) ([]domain.FeedItem, error)
}

// KeywordFilter decides whether an item passes a feed's keyword list
type KeywordFilter interface {
	Matches(item domain.FeedItem, keywords []string) bool
}

// ItemRenderer turns a fetched feed item into a transport-ready payload
type ItemRenderer interface {
	PrepareItem(item domain.FeedItem) *content.Prepared
}

// FeedCheckerConfig holds feed poll orchestrator configuration
type FeedCheckerConfig struct {
	SendTimeout   time.Duration // per-destination cap, default 30s
	MaxConcurrent int           // destination fan-out width, default 5
}

// FeedChecker polls one feed when its check job fires: fetch current items,
// drop already-delivered and filtered-out ones, deliver the rest through
// the shared fan-out path, and record only successfully delivered items so
// failures are retried on the next poll.
type FeedChecker struct {
	feeds     FeedStore
	items     ItemStore
	fetcher   FeedFetcher
	filter    KeywordFilter
	renderer  ItemRenderer
	transport Transport

	sendTimeout   time.Duration
	maxConcurrent int
}

// NewFeedChecker creates a feed poll orchestrator
func NewFeedChecker(feeds FeedStore, items ItemStore, fetcher FeedFetcher, filter KeywordFilter,
	renderer ItemRenderer, transport Transport, cfg FeedCheckerConfig) *FeedChecker {
	if cfg.SendTimeout == 0 {
		cfg.SendTimeout = 30 * time.Second
	}
	if cfg.MaxConcurrent == 0 {
		cfg.MaxConcurrent = 5
	}
	return &FeedChecker{
		feeds:         feeds,
		items:         items,
		fetcher:       fetcher,
		filter:        filter,
		renderer:      renderer,
		transport:     transport,
		sendTimeout:   cfg.SendTimeout,
		maxConcurrent: cfg.MaxConcurrent,
	}
}

// Execute runs one poll of the feed named in args. The feed's next-check
// time is advanced after every attempt, success or failure alike, so a
// broken feed neither polls in a tight loop nor stops polling.
func (c *FeedChecker) Execute(ctx context.Context, args domain.JobArgs) error {
	feed, err := c.feeds.GetFeed(ctx, args.FeedID)
	if errors.Is(err, repository.ErrNotFound) {
		lgr.Printf("[WARN] check fired for missing feed %d", args.FeedID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("load feed %d: %w", args.FeedID, err)
	}

	defer func() {
		if aerr := c.feeds.AdvanceNextCheck(ctx, feed.ID, feed.IntervalMinutes); aerr != nil {
			lgr.Printf("[ERROR] failed to advance next check for feed %d: %v", feed.ID, aerr)
		}
	}()

	if feed.URL == "" {
		lgr.Printf("[WARN] feed %d has no source url", feed.ID)
		return nil
	}

	items, err := c.fetcher.Fetch(ctx, feed.URL)
	if err != nil {
		return fmt.Errorf("fetch feed %d (%s): %w", feed.ID, feed.URL, err)
	}

	delivered := 0
	for _, item := range items {
		posted, err := c.items.IsItemPosted(ctx, feed.ID, item.GUID)
		if err != nil {
			return fmt.Errorf("check seen item for feed %d: %w", feed.ID, err)
		}
		if posted {
			continue
		}

		if len(feed.Keywords) > 0 && !c.filter.Matches(item, feed.Keywords) {
			continue
		}

		prep := c.renderer.PrepareItem(item)
		outcomes := fanOut(ctx, c.transport, feed.ChatIDs, prep, c.sendTimeout, c.maxConcurrent)
		if countDelivered(outcomes) == 0 {
			// not recorded as seen, the next poll retries it
			lgr.Printf("[WARN] item %q of feed %d failed on all destinations", item.GUID, feed.ID)
			continue
		}

		if err := c.items.MarkItemPosted(ctx, feed.ID, item.GUID, item.Published); err != nil {
			lgr.Printf("[ERROR] failed to record delivered item %q of feed %d: %v", item.GUID, feed.ID, err)
			continue
		}
		delivered++
	}

	lgr.Printf("[INFO] feed %d check delivered %d of %d fetched items", feed.ID, delivered, len(items))
	return nil
}
