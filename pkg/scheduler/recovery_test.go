package scheduler

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postomat/pkg/domain"
	"postomat/pkg/scheduler/mocks"
)

func recoveryFixture(posts []*domain.Post, feeds []*domain.Feed) (*mocks.PostStoreMock, *mocks.FeedStoreMock, *mocks.JobSchedulerMock) {
	postStore := &mocks.PostStoreMock{
		GetScheduledPostsFunc: func(ctx context.Context) ([]*domain.Post, error) { return posts, nil },
		UpdatePostStatusFunc:  func(ctx context.Context, id int64, status domain.PostStatus) error { return nil },
	}
	feedStore := &mocks.FeedStoreMock{
		GetFeedsFunc: func(ctx context.Context) ([]*domain.Feed, error) { return feeds, nil },
	}
	sched := &mocks.JobSchedulerMock{
		ScheduleFunc: func(ctx context.Context, job *domain.Job) error { return nil },
	}
	return postStore, feedStore, sched
}

func TestRecovery_ReArmsScheduledPosts(t *testing.T) {
	runAt := time.Now().UTC().Add(time.Hour)
	cron := &domain.CronFields{Hour: "9", Minute: "0"}
	posts := []*domain.Post{
		{ID: 1, ScheduleType: domain.ScheduleOneTime, RunAt: &runAt, Status: domain.StatusScheduled},
		{ID: 2, ScheduleType: domain.ScheduleRecurring, Cron: cron, Status: domain.StatusScheduled},
	}
	postStore, feedStore, sched := recoveryFixture(posts, nil)

	r := NewRecovery(postStore, feedStore, sched)
	require.NoError(t, r.Run(context.Background()))

	calls := sched.ScheduleCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, "POST_PUBLISH_1", calls[0].Job.ID)
	assert.Equal(t, domain.TriggerDate, calls[0].Job.Trigger.Kind)
	assert.Equal(t, "POST_PUBLISH_2", calls[1].Job.ID)
	assert.Equal(t, domain.TriggerCron, calls[1].Job.Trigger.Kind)
	assert.Empty(t, postStore.UpdatePostStatusCalls())
}

func TestRecovery_DemotesLapsedPost(t *testing.T) {
	runAt := time.Now().UTC().Add(-24 * time.Hour)
	posts := []*domain.Post{
		{ID: 3, ScheduleType: domain.ScheduleOneTime, RunAt: &runAt, Status: domain.StatusScheduled},
	}
	postStore, feedStore, sched := recoveryFixture(posts, nil)
	sched.ScheduleFunc = func(ctx context.Context, job *domain.Job) error {
		return fmt.Errorf("job %s: %w", job.ID, ErrNoNextRun)
	}

	r := NewRecovery(postStore, feedStore, sched)
	require.NoError(t, r.Run(context.Background()))

	require.Len(t, postStore.UpdatePostStatusCalls(), 1)
	assert.Equal(t, int64(3), postStore.UpdatePostStatusCalls()[0].ID)
	assert.Equal(t, domain.StatusInvalid, postStore.UpdatePostStatusCalls()[0].Status)
}

func TestRecovery_DemotesPostWithBrokenSchedule(t *testing.T) {
	tbl := []struct {
		name string
		post *domain.Post
	}{
		{"one-time without run time", &domain.Post{ID: 4, ScheduleType: domain.ScheduleOneTime, Status: domain.StatusScheduled}},
		{"recurring without cron fields", &domain.Post{ID: 5, ScheduleType: domain.ScheduleRecurring, Status: domain.StatusScheduled}},
		{"unknown schedule type", &domain.Post{ID: 6, ScheduleType: "hourly", Status: domain.StatusScheduled}},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			postStore, feedStore, sched := recoveryFixture([]*domain.Post{tt.post}, nil)

			r := NewRecovery(postStore, feedStore, sched)
			require.NoError(t, r.Run(context.Background()))

			assert.Empty(t, sched.ScheduleCalls(), "broken schedule must not reach the scheduler")
			require.Len(t, postStore.UpdatePostStatusCalls(), 1)
			assert.Equal(t, domain.StatusInvalid, postStore.UpdatePostStatusCalls()[0].Status)
		})
	}
}

func TestRecovery_ReArmsFeeds(t *testing.T) {
	feeds := []*domain.Feed{
		{ID: 1, IntervalMinutes: 30},
		{ID: 2, IntervalMinutes: 0}, // skipped
		{ID: 3, IntervalMinutes: 5},
	}
	postStore, feedStore, sched := recoveryFixture(nil, feeds)

	r := NewRecovery(postStore, feedStore, sched)
	require.NoError(t, r.Run(context.Background()))

	calls := sched.ScheduleCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, "RSS_CHECK_1", calls[0].Job.ID)
	assert.Equal(t, domain.TriggerInterval, calls[0].Job.Trigger.Kind)
	assert.Equal(t, 30, calls[0].Job.Trigger.EveryMinutes)
	assert.Equal(t, "RSS_CHECK_3", calls[1].Job.ID)
}

func TestRecovery_StoreFailureAborts(t *testing.T) {
	postStore, feedStore, sched := recoveryFixture(nil, nil)
	postStore.GetScheduledPostsFunc = func(ctx context.Context) ([]*domain.Post, error) {
		return nil, fmt.Errorf("database locked")
	}

	r := NewRecovery(postStore, feedStore, sched)
	require.Error(t, r.Run(context.Background()))
	assert.Empty(t, sched.ScheduleCalls())
	assert.Empty(t, feedStore.GetFeedsCalls())
}
