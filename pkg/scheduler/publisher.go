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

//go:generate moq -out mocks/post_store.go -pkg mocks -skip-ensure -fmt goimports . PostStore
//go:generate moq -out mocks/transport.go -pkg mocks -skip-ensure -fmt goimports . Transport
//go:generate moq -out mocks/content_preparer.go -pkg mocks -skip-ensure -fmt goimports . ContentPreparer
//go:generate moq -out mocks/job_scheduler.go -pkg mocks -skip-ensure -fmt goimports . JobScheduler

// misfire grace windows per job kind, seconds
const (
	publishGraceSeconds   = 600
	deleteGraceSeconds    = 60
	feedCheckGraceSeconds = 300
)

// PostStore is the post persistence the orchestrators need
type PostStore interface {
	GetPost(ctx context.Context, id int64) (*domain.Post, error)
	UpdatePostStatus(ctx context.Context, id int64, status domain.PostStatus) error
	GetScheduledPosts(ctx context.Context) ([]*domain.Post, error)
}

// Transport delivers content to destinations and retracts delivered messages
type Transport interface {
	Send(ctx context.Context, chatID int64, text string, media []domain.MediaRef) ([]int, error)
	Delete(ctx context.Context, chatID int64, messageID int) error
}

// ContentPreparer renders post fields into a transport-ready payload
type ContentPreparer interface {
	Prepare(ctx context.Context, post *domain.Post) (*content.Prepared, error)
}

// JobScheduler is the scheduling handle orchestrators use to chain follow-up
// jobs from within a firing
type JobScheduler interface {
	Schedule(ctx context.Context, job *domain.Job) error
	Cancel(ctx context.Context, id string) error
}

// PublisherConfig holds publication orchestrator configuration
type PublisherConfig struct {
	SendTimeout   time.Duration    // per-destination cap, default 30s
	MaxConcurrent int              // destination fan-out width, default 5
	NowFn         func() time.Time // injectable clock, defaults to time.Now
}

// Publisher is the publication state machine: given a post id it loads the
// post, prepares content once, fans delivery out to every destination,
// aggregates the per-destination outcomes into a terminal status and chains
// deletion jobs for delivered messages when auto-deletion is configured.
type Publisher struct {
	posts     PostStore
	transport Transport
	preparer  ContentPreparer
	sched     JobScheduler

	sendTimeout   time.Duration
	maxConcurrent int
	nowFn         func() time.Time
}

// NewPublisher creates a publication orchestrator
func NewPublisher(posts PostStore, transport Transport, preparer ContentPreparer, sched JobScheduler, cfg PublisherConfig) *Publisher {
	if cfg.SendTimeout == 0 {
		cfg.SendTimeout = 30 * time.Second
	}
	if cfg.MaxConcurrent == 0 {
		cfg.MaxConcurrent = 5
	}
	if cfg.NowFn == nil {
		cfg.NowFn = time.Now
	}
	return &Publisher{
		posts:         posts,
		transport:     transport,
		preparer:      preparer,
		sched:         sched,
		sendTimeout:   cfg.SendTimeout,
		maxConcurrent: cfg.MaxConcurrent,
		nowFn:         cfg.NowFn,
	}
}

// Execute runs one publish firing. Failures that escape the state machine
// still force the post into error status on a best-effort basis, so a store
// hiccup cannot leave the post scheduled forever.
func (p *Publisher) Execute(ctx context.Context, args domain.JobArgs) error {
	if err := p.publish(ctx, args.PostID); err != nil {
		if serr := p.posts.UpdatePostStatus(ctx, args.PostID, domain.StatusError); serr != nil && !errors.Is(serr, repository.ErrNotFound) {
			lgr.Printf("[ERROR] failed to force error status on post %d: %v", args.PostID, serr)
		}
		return err
	}
	return nil
}

func (p *Publisher) publish(ctx context.Context, postID int64) error {
	post, err := p.posts.GetPost(ctx, postID)
	if errors.Is(err, repository.ErrNotFound) {
		lgr.Printf("[WARN] publish fired for missing post %d", postID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("load post %d: %w", postID, err)
	}

	// guards against double-fire and races with manual cancellation
	if post.Status != domain.StatusScheduled {
		lgr.Printf("[INFO] post %d in status %s, skipping publish", postID, post.Status)
		return nil
	}

	if len(post.ChatIDs) == 0 {
		lgr.Printf("[WARN] post %d has no destinations", postID)
		if err := p.posts.UpdatePostStatus(ctx, postID, domain.StatusInvalid); err != nil {
			return fmt.Errorf("mark post %d invalid: %w", postID, err)
		}
		return nil
	}

	// content is prepared once, before any send is attempted
	prep, err := p.preparer.Prepare(ctx, post)
	if err != nil {
		lgr.Printf("[ERROR] content preparation failed for post %d: %v", postID, err)
		if serr := p.posts.UpdatePostStatus(ctx, postID, domain.StatusError); serr != nil {
			return fmt.Errorf("mark post %d error: %w", postID, serr)
		}
		return nil
	}

	outcomes := fanOut(ctx, p.transport, post.ChatIDs, prep, p.sendTimeout, p.maxConcurrent)

	succeeded, failed := 0, 0
	for _, o := range outcomes {
		if o.err != nil {
			failed++
			lgr.Printf("[WARN] send to chat %d failed for post %d: %v", o.chatID, postID, o.err)
			continue
		}
		succeeded++
		p.chainDeletion(ctx, post, o)
	}

	status := domain.StatusSent
	switch {
	case succeeded == 0 && failed > 0:
		status = domain.StatusError
	case succeeded == 0 && failed == 0:
		status = domain.StatusInvalid
	}

	lgr.Printf("[INFO] post %d published to %d/%d destinations, status %s", postID, succeeded, len(post.ChatIDs), status)
	if err := p.posts.UpdatePostStatus(ctx, postID, status); err != nil {
		return fmt.Errorf("persist post %d status %s: %w", postID, status, err)
	}
	return nil
}

// chainDeletion registers a deletion job per delivered message when the post
// configures auto-deletion and the computed time is still in the future.
// Scheduling failures are logged and never affect the post status.
func (p *Publisher) chainDeletion(ctx context.Context, post *domain.Post, o sendOutcome) {
	deleteAt, ok := deletionTime(post, p.nowFn().UTC())
	if !ok {
		return
	}

	for _, msgID := range o.messageIDs {
		job := &domain.Job{
			ID:           MakeJobID(domain.JobDeleteMessage, post.ID, fmt.Sprintf("%d_%d", o.chatID, msgID)),
			Kind:         domain.JobDeleteMessage,
			Trigger:      domain.TriggerSpec{Kind: domain.TriggerDate, RunAt: &deleteAt},
			Args:         domain.JobArgs{PostID: post.ID, ChatID: o.chatID, MessageID: msgID},
			GraceSeconds: deleteGraceSeconds,
		}
		if err := p.sched.Schedule(ctx, job); err != nil {
			lgr.Printf("[WARN] failed to schedule deletion of message %d in chat %d for post %d: %v",
				msgID, o.chatID, post.ID, err)
		}
	}
}

// deletionTime resolves the post's auto-deletion spec into an absolute UTC
// instant; false when deletion is not configured or already past due
func deletionTime(post *domain.Post, now time.Time) (time.Time, bool) {
	var at time.Time
	switch {
	case post.DeleteAfter != nil:
		at = now.Add(time.Duration(*post.DeleteAfter) * time.Second)
	case post.DeleteAt != nil:
		at = post.DeleteAt.UTC()
	default:
		return time.Time{}, false
	}
	if !at.After(now) {
		return time.Time{}, false
	}
	return at, true
}
