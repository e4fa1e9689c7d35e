package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"postomat/pkg/domain"
)

// Telegram-side length limits
const (
	maxMessageLen = 4096
	maxCaptionLen = 1024
)

// Prepared is the rendered payload handed to the transport: sanitized text
// plus resolved media references
type Prepared struct {
	Text  string
	Media []domain.MediaRef
}

// Preparer renders post fields into a transport-ready payload. HTML is
// sanitized down to the tags Telegram accepts; anything else would make the
// whole send call fail.
type Preparer struct {
	policy *bluemonday.Policy
}

// NewPreparer creates a content preparer with the Telegram-safe HTML policy
func NewPreparer() *Preparer {
	policy := bluemonday.NewPolicy()
	policy.AllowElements("b", "strong", "i", "em", "u", "ins", "s", "strike", "del", "code", "pre", "blockquote")
	policy.AllowAttrs("href").OnElements("a")
	return &Preparer{policy: policy}
}

// Prepare renders a post once before fan-out. A post with neither text nor
// media has nothing to deliver and fails preparation.
func (p *Preparer) Prepare(_ context.Context, post *domain.Post) (*Prepared, error) {
	text := strings.TrimSpace(p.policy.Sanitize(post.Text))

	if text == "" && len(post.Media) == 0 {
		return nil, fmt.Errorf("post %d has no content", post.ID)
	}

	for _, m := range post.Media {
		if err := validateMedia(m); err != nil {
			return nil, fmt.Errorf("post %d: %w", post.ID, err)
		}
	}

	limit := maxMessageLen
	if len(post.Media) > 0 {
		limit = maxCaptionLen
	}
	if len([]rune(text)) > limit {
		return nil, fmt.Errorf("post %d text exceeds %d characters", post.ID, limit)
	}

	return &Prepared{Text: text, Media: post.Media}, nil
}

// PrepareItem renders a fetched feed item as "title + link" text
func (p *Preparer) PrepareItem(item domain.FeedItem) *Prepared {
	title := strings.TrimSpace(p.policy.Sanitize(item.Title))
	text := title
	if item.Link != "" {
		if text != "" {
			text += "\n"
		}
		text += item.Link
	}
	if len([]rune(text)) > maxMessageLen {
		text = string([]rune(text)[:maxMessageLen])
	}
	return &Prepared{Text: text}
}

// validateMedia rejects references the transport cannot send
func validateMedia(m domain.MediaRef) error {
	switch m.Kind {
	case domain.MediaPhoto, domain.MediaVideo, domain.MediaDocument, domain.MediaAudio, domain.MediaAnimation:
	default:
		return fmt.Errorf("unknown media kind %q", m.Kind)
	}
	if m.Ref == "" {
		return fmt.Errorf("media reference is empty")
	}
	return nil
}
