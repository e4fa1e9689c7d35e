package scheduler

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pkgz/lgr"

	"postomat/pkg/domain"
)

// Recovery re-derives every live timer from durable entity state: posts
// still in scheduled status get their publish job back, feeds get their
// check job. Posts whose schedule has unrecoverably lapsed are demoted to
// invalid. Must run to completion before the scheduler starts firing.
type Recovery struct {
	posts PostStore
	feeds FeedStore
	sched JobScheduler
}

// NewRecovery creates a startup recovery sweep
func NewRecovery(posts PostStore, feeds FeedStore, sched JobScheduler) *Recovery {
	return &Recovery{posts: posts, feeds: feeds, sched: sched}
}

// Run executes the sweep synchronously
func (r *Recovery) Run(ctx context.Context) error {
	scheduled, demoted, err := r.recoverPosts(ctx)
	if err != nil {
		return err
	}

	feeds, err := r.recoverFeeds(ctx)
	if err != nil {
		return err
	}

	lgr.Printf("[INFO] recovery completed: %d posts re-armed, %d demoted, %d feeds re-armed", scheduled, demoted, feeds)
	return nil
}

func (r *Recovery) recoverPosts(ctx context.Context) (scheduled, demoted int, err error) {
	posts, err := r.posts.GetScheduledPosts(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("load scheduled posts: %w", err)
	}

	for _, post := range posts {
		job, err := PublishJob(post)
		if err != nil {
			lgr.Printf("[WARN] post %d has no valid schedule, demoting: %v", post.ID, err)
			r.demote(ctx, post.ID)
			demoted++
			continue
		}

		if err := r.sched.Schedule(ctx, job); err != nil {
			if errors.Is(err, ErrNoNextRun) {
				lgr.Printf("[WARN] post %d schedule has lapsed, demoting", post.ID)
				r.demote(ctx, post.ID)
				demoted++
				continue
			}
			return scheduled, demoted, fmt.Errorf("re-arm post %d: %w", post.ID, err)
		}
		scheduled++
	}
	return scheduled, demoted, nil
}

func (r *Recovery) recoverFeeds(ctx context.Context) (int, error) {
	feeds, err := r.feeds.GetFeeds(ctx)
	if err != nil {
		return 0, fmt.Errorf("load feeds: %w", err)
	}

	armed := 0
	for _, feed := range feeds {
		if feed.IntervalMinutes <= 0 {
			lgr.Printf("[WARN] feed %d has invalid check interval %d, skipping", feed.ID, feed.IntervalMinutes)
			continue
		}
		if err := r.sched.Schedule(ctx, CheckFeedJob(feed)); err != nil {
			return armed, fmt.Errorf("re-arm feed %d: %w", feed.ID, err)
		}
		armed++
	}
	return armed, nil
}

func (r *Recovery) demote(ctx context.Context, postID int64) {
	if err := r.posts.UpdatePostStatus(ctx, postID, domain.StatusInvalid); err != nil {
		lgr.Printf("[ERROR] failed to demote post %d: %v", postID, err)
	}
}

// PublishJob builds the publish job of a post from its stored schedule
// fields. One live publish job exists per post, so the id carries no
// sub-identifier and re-registration replaces the prior trigger.
func PublishJob(post *domain.Post) (*domain.Job, error) {
	var spec domain.TriggerSpec
	switch post.ScheduleType {
	case domain.ScheduleOneTime:
		if post.RunAt == nil {
			return nil, fmt.Errorf("one-time post %d has no run time", post.ID)
		}
		spec = domain.TriggerSpec{Kind: domain.TriggerDate, RunAt: post.RunAt}
	case domain.ScheduleRecurring:
		if post.Cron == nil {
			return nil, fmt.Errorf("recurring post %d has no schedule fields", post.ID)
		}
		spec = domain.TriggerSpec{Kind: domain.TriggerCron, Cron: post.Cron, StartAt: post.StartAt, EndAt: post.EndAt}
	default:
		return nil, fmt.Errorf("post %d has unknown schedule type %q", post.ID, post.ScheduleType)
	}

	return &domain.Job{
		ID:           MakeJobID(domain.JobPublish, post.ID),
		Kind:         domain.JobPublish,
		Trigger:      spec,
		Args:         domain.JobArgs{PostID: post.ID},
		GraceSeconds: publishGraceSeconds,
	}, nil
}

// CheckFeedJob builds the periodic check job of a feed
func CheckFeedJob(feed *domain.Feed) *domain.Job {
	return &domain.Job{
		ID:           MakeJobID(domain.JobCheckFeed, feed.ID),
		Kind:         domain.JobCheckFeed,
		Trigger:      domain.TriggerSpec{Kind: domain.TriggerInterval, EveryMinutes: feed.IntervalMinutes},
		Args:         domain.JobArgs{FeedID: feed.ID},
		GraceSeconds: feedCheckGraceSeconds,
	}
}
