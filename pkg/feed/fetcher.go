package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"postomat/pkg/domain"
)

// Fetcher retrieves and parses RSS/Atom feeds
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// NewFetcher creates a feed fetcher with the given request timeout
func NewFetcher(timeout time.Duration, userAgent string) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: userAgent,
	}
}

// Fetch retrieves the feed at url and returns its items in source order.
// Every item carries a stable GUID: the source's when present, the link
// otherwise, and as a last resort a feed-title/item-title combination.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]domain.FeedItem, error) {
	body, err := f.fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer body.Close()

	parsed, err := gofeed.NewParser().Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	items := make([]domain.FeedItem, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		fi := domain.FeedItem{
			Title:       item.Title,
			Link:        item.Link,
			Description: item.Description,
		}

		switch {
		case item.GUID != "":
			fi.GUID = item.GUID
		case item.Link != "":
			fi.GUID = item.Link
		default:
			fi.GUID = fmt.Sprintf("%s-%s", parsed.Title, item.Title)
		}

		if item.PublishedParsed != nil {
			fi.Published = item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			fi.Published = item.UpdatedParsed
		}

		items = append(items, fi)
	}
	return items, nil
}

func (f *Fetcher) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/rss+xml,application/atom+xml,application/xml;q=0.9,text/xml;q=0.8,*/*;q=0.5")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return resp.Body, nil
}
