package domain

import "time"

// Feed is a polled content source delivering new items to a set of chats
type Feed struct {
	ID              int64
	UserID          int64
	URL             string
	ChatIDs         []int64
	Keywords        []string   // optional keyword filter, empty means no filtering
	IntervalMinutes int        // poll frequency, must be > 0
	NextCheck       *time.Time // next scheduled poll time, UTC
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// FeedItem is one entry fetched from a feed source
type FeedItem struct {
	GUID        string
	Title       string
	Link        string
	Description string
	Published   *time.Time
}
