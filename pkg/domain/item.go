package domain

import "time"

// SeenItem is the dedup record for a delivered feed item. The (FeedID, GUID)
// pair is unique; a row with Posted=true is the sole signal that the item has
// been delivered, so failed deliveries never create one.
type SeenItem struct {
	ID          int64
	FeedID      int64
	GUID        string
	Posted      bool
	PublishedAt *time.Time
	CreatedAt   time.Time
}
