package scheduler

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pkgz/lgr"

	"postomat/pkg/domain"
	"postomat/pkg/telegram"
)

// Deleter retracts a delivered message when its deletion job fires. A target
// that is already gone counts as success; a permission failure is reported
// but never re-queued, the message simply stays up.
type Deleter struct {
	transport Transport
}

// NewDeleter creates a deletion orchestrator
func NewDeleter(transport Transport) *Deleter {
	return &Deleter{transport: transport}
}

// Execute runs one deletion firing
func (d *Deleter) Execute(ctx context.Context, args domain.JobArgs) error {
	err := d.transport.Delete(ctx, args.ChatID, args.MessageID)
	switch {
	case err == nil:
		lgr.Printf("[DEBUG] deleted message %d in chat %d", args.MessageID, args.ChatID)
		return nil
	case errors.Is(err, telegram.ErrNotFound):
		lgr.Printf("[DEBUG] message %d in chat %d already gone", args.MessageID, args.ChatID)
		return nil
	case errors.Is(err, telegram.ErrForbidden):
		return fmt.Errorf("no permission to delete message %d in chat %d: %w", args.MessageID, args.ChatID, err)
	default:
		return fmt.Errorf("delete message %d in chat %d: %w", args.MessageID, args.ChatID, err)
	}
}
