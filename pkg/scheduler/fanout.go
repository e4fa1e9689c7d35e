package scheduler

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"postomat/pkg/content"
)

// sendOutcome records one destination's delivery result
type sendOutcome struct {
	chatID     int64
	messageIDs []int
	err        error
}

// fanOut delivers one prepared payload to every destination concurrently.
// Failures are isolated per destination and each call is bounded by timeout,
// so one unreachable destination neither cancels its siblings nor stalls the
// firing.
func fanOut(ctx context.Context, transport Transport, chatIDs []int64, prep *content.Prepared,
	timeout time.Duration, maxConcurrent int) []sendOutcome {

	outcomes := make([]sendOutcome, len(chatIDs))

	var g errgroup.Group
	g.SetLimit(maxConcurrent)

	for i, chatID := range chatIDs {
		g.Go(func() error {
			sendCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			ids, err := transport.Send(sendCtx, chatID, prep.Text, prep.Media)
			outcomes[i] = sendOutcome{chatID: chatID, messageIDs: ids, err: err}
			return nil // errors stay in the outcome, never cancel the group
		})
	}
	_ = g.Wait()

	return outcomes
}

// countDelivered returns the number of destinations with a successful send
func countDelivered(outcomes []sendOutcome) int {
	n := 0
	for _, o := range outcomes {
		if o.err == nil {
			n++
		}
	}
	return n
}
