package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-pkgz/lgr"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"

	"postomat/pkg/domain"
)

// errors the orchestrators distinguish from plain delivery failures
var (
	// ErrNotFound means the target message is already gone
	ErrNotFound = errors.New("message not found")
	// ErrForbidden means the bot has no permission in the target chat
	ErrForbidden = errors.New("forbidden")
)

// botAPI is the subset of the bot API client used by the transport
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	SendMediaGroup(cfg tgbotapi.MediaGroupConfig) ([]tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Transport delivers prepared content to chats through the Telegram bot API.
// All API calls go through a shared rate limiter, Telegram throttles bots
// that exceed ~30 messages per second.
type Transport struct {
	api     botAPI
	limiter *rate.Limiter
}

// Config holds transport configuration
type Config struct {
	Token      string
	RatePerSec int // API calls per second, default 25
	Debug      bool
}

// New creates a transport connected to the Telegram bot API
func New(cfg Config) (*Transport, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}
	api.Debug = cfg.Debug
	lgr.Printf("[INFO] telegram transport authorized as %s", api.Self.UserName)
	return newTransport(api, cfg.RatePerSec), nil
}

func newTransport(api botAPI, ratePerSec int) *Transport {
	if ratePerSec <= 0 {
		ratePerSec = 25
	}
	return &Transport{
		api:     api,
		limiter: rate.NewLimiter(rate.Limit(ratePerSec), ratePerSec),
	}
}

// Send delivers one prepared payload to a chat and returns the identities of
// the delivered messages. Either at least one message id is returned or the
// error is non-nil.
func (t *Transport) Send(ctx context.Context, chatID int64, text string, media []domain.MediaRef) ([]int, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	switch {
	case len(media) == 0:
		msg := tgbotapi.NewMessage(chatID, text)
		msg.ParseMode = tgbotapi.ModeHTML
		msg.DisableWebPagePreview = true
		sent, err := t.api.Send(msg)
		if err != nil {
			return nil, t.mapError(fmt.Errorf("send message to chat %d: %w", chatID, err))
		}
		return []int{sent.MessageID}, nil

	case len(media) == 1:
		sent, err := t.api.Send(singleMediaConfig(chatID, media[0], text))
		if err != nil {
			return nil, t.mapError(fmt.Errorf("send media to chat %d: %w", chatID, err))
		}
		return []int{sent.MessageID}, nil

	default:
		return t.sendGroup(ctx, chatID, text, media)
	}
}

// sendGroup delivers multiple attachments. Photos and videos go as one media
// group with the caption on the first item; anything else falls back to
// per-attachment sends with the caption on the first.
func (t *Transport) sendGroup(ctx context.Context, chatID int64, text string, media []domain.MediaRef) ([]int, error) {
	if groupable(media) {
		group := make([]interface{}, 0, len(media))
		for i, m := range media {
			caption := ""
			if i == 0 {
				caption = text
			}
			group = append(group, groupMedia(m, caption))
		}
		sent, err := t.api.SendMediaGroup(tgbotapi.NewMediaGroup(chatID, group))
		if err != nil {
			return nil, t.mapError(fmt.Errorf("send media group to chat %d: %w", chatID, err))
		}
		ids := make([]int, 0, len(sent))
		for _, m := range sent {
			ids = append(ids, m.MessageID)
		}
		return ids, nil
	}

	var ids []int
	for i, m := range media {
		if err := t.limiter.Wait(ctx); err != nil {
			return ids, fmt.Errorf("rate limit wait: %w", err)
		}
		caption := ""
		if i == 0 {
			caption = text
		}
		sent, err := t.api.Send(singleMediaConfig(chatID, m, caption))
		if err != nil {
			if len(ids) > 0 {
				// partial delivery still counts, report what got through
				lgr.Printf("[WARN] partial media send to chat %d, %d of %d delivered: %v", chatID, len(ids), len(media), err)
				return ids, nil
			}
			return nil, t.mapError(fmt.Errorf("send media to chat %d: %w", chatID, err))
		}
		ids = append(ids, sent.MessageID)
	}
	return ids, nil
}

// Delete retracts a message from a chat
func (t *Transport) Delete(ctx context.Context, chatID int64, messageID int) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}
	if _, err := t.api.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		return t.mapError(fmt.Errorf("delete message %d in chat %d: %w", messageID, chatID, err))
	}
	return nil
}

// mapError wraps API errors into the sentinels callers branch on
func (t *Transport) mapError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "message to delete not found"), strings.Contains(msg, "message can't be found"):
		return fmt.Errorf("%w: %s", ErrNotFound, err)
	case strings.Contains(msg, "forbidden"), strings.Contains(msg, "not enough rights"), strings.Contains(msg, "bot was kicked"):
		return fmt.Errorf("%w: %s", ErrForbidden, err)
	}
	return err
}

// groupable reports whether all attachments can travel in one media group
func groupable(media []domain.MediaRef) bool {
	for _, m := range media {
		if m.Kind != domain.MediaPhoto && m.Kind != domain.MediaVideo {
			return false
		}
	}
	return true
}

// groupMedia builds one media-group entry with an optional caption
func groupMedia(m domain.MediaRef, caption string) interface{} {
	switch m.Kind {
	case domain.MediaVideo:
		v := tgbotapi.NewInputMediaVideo(mediaFile(m.Ref))
		v.Caption = caption
		v.ParseMode = tgbotapi.ModeHTML
		return v
	default:
		p := tgbotapi.NewInputMediaPhoto(mediaFile(m.Ref))
		p.Caption = caption
		p.ParseMode = tgbotapi.ModeHTML
		return p
	}
}

// singleMediaConfig builds the kind-specific send config for one attachment
func singleMediaConfig(chatID int64, m domain.MediaRef, caption string) tgbotapi.Chattable {
	file := mediaFile(m.Ref)
	switch m.Kind {
	case domain.MediaVideo:
		cfg := tgbotapi.NewVideo(chatID, file)
		cfg.Caption = caption
		cfg.ParseMode = tgbotapi.ModeHTML
		return cfg
	case domain.MediaDocument:
		cfg := tgbotapi.NewDocument(chatID, file)
		cfg.Caption = caption
		cfg.ParseMode = tgbotapi.ModeHTML
		return cfg
	case domain.MediaAudio:
		cfg := tgbotapi.NewAudio(chatID, file)
		cfg.Caption = caption
		cfg.ParseMode = tgbotapi.ModeHTML
		return cfg
	case domain.MediaAnimation:
		cfg := tgbotapi.NewAnimation(chatID, file)
		cfg.Caption = caption
		cfg.ParseMode = tgbotapi.ModeHTML
		return cfg
	default:
		cfg := tgbotapi.NewPhoto(chatID, file)
		cfg.Caption = caption
		cfg.ParseMode = tgbotapi.ModeHTML
		return cfg
	}
}

// mediaFile resolves a media reference into a bot API file: references that
// look like paths are uploaded, everything else is treated as a file id
func mediaFile(ref string) tgbotapi.RequestFileData {
	if strings.ContainsAny(ref, "/\\") {
		return tgbotapi.FilePath(ref)
	}
	return tgbotapi.FileID(ref)
}
