package feed

import (
	"strings"

	"postomat/pkg/domain"
)

// Filter matches feed items against a feed's keyword list. A keyword hits
// when it appears as a case-insensitive substring of the item's title,
// description or link; any single hit passes the item.
type Filter struct{}

// NewFilter creates a keyword filter
func NewFilter() *Filter {
	return &Filter{}
}

// Matches reports whether the item passes the keyword list. An empty list
// passes everything.
func (f *Filter) Matches(item domain.FeedItem, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}

	haystack := strings.ToLower(item.Title + " " + item.Description + " " + item.Link)
	for _, kw := range keywords {
		kw = strings.TrimSpace(strings.ToLower(kw))
		if kw == "" {
			continue
		}
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}
