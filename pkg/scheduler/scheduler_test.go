package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postomat/pkg/domain"
	"postomat/pkg/scheduler/mocks"
)

func testJobStore() *mocks.JobStoreMock {
	return &mocks.JobStoreMock{
		SaveJobFunc:   func(ctx context.Context, job *domain.Job) error { return nil },
		DeleteJobFunc: func(ctx context.Context, id string) error { return nil },
		ListJobsFunc:  func(ctx context.Context) ([]*domain.Job, error) { return nil, nil },
	}
}

func dateJob(id string, kind domain.JobKind, runAt time.Time, grace int) *domain.Job {
	return &domain.Job{
		ID:           id,
		Kind:         kind,
		Trigger:      domain.TriggerSpec{Kind: domain.TriggerDate, RunAt: &runAt},
		Args:         domain.JobArgs{PostID: 1},
		GraceSeconds: grace,
	}
}

func TestScheduler_FiresDueJob(t *testing.T) {
	store := testJobStore()
	sched := NewScheduler(store, Config{})

	fired := make(chan domain.JobArgs, 1)
	sched.Register(domain.JobPublish, ExecutorFunc(func(ctx context.Context, args domain.JobArgs) error {
		fired <- args
		return nil
	}))

	// due a moment ago, inside the grace window
	job := dateJob("POST_PUBLISH_1", domain.JobPublish, time.Now().UTC().Add(-time.Second), publishGraceSeconds)
	require.NoError(t, sched.Schedule(context.Background(), job))
	require.NoError(t, sched.Start(context.Background()))
	defer sched.Stop(true)

	select {
	case args := <-fired:
		assert.Equal(t, int64(1), args.PostID)
	case <-time.After(2 * time.Second):
		t.Fatal("job did not fire")
	}

	// one-shot jobs are removed from the store after firing
	assert.Eventually(t, func() bool {
		for _, call := range store.DeleteJobCalls() {
			if call.ID == "POST_PUBLISH_1" {
				return true
			}
		}
		return false
	}, 2*time.Second, 20*time.Millisecond)
}

func TestScheduler_ScheduleRejectsLapsedJob(t *testing.T) {
	store := testJobStore()
	sched := NewScheduler(store, Config{})

	// an hour past due with a 60s grace window
	job := dateJob("MESSAGE_DELETE_1_1_1", domain.JobDeleteMessage, time.Now().UTC().Add(-time.Hour), deleteGraceSeconds)
	err := sched.Schedule(context.Background(), job)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoNextRun)
	assert.Empty(t, store.SaveJobCalls(), "lapsed job must not be persisted")
}

func TestScheduler_CancelPreventsFiring(t *testing.T) {
	store := testJobStore()
	sched := NewScheduler(store, Config{})

	var fires atomic.Int32
	sched.Register(domain.JobPublish, ExecutorFunc(func(ctx context.Context, args domain.JobArgs) error {
		fires.Add(1)
		return nil
	}))

	job := dateJob("POST_PUBLISH_2", domain.JobPublish, time.Now().UTC().Add(300*time.Millisecond), publishGraceSeconds)
	require.NoError(t, sched.Schedule(context.Background(), job))
	require.NoError(t, sched.Start(context.Background()))
	defer sched.Stop(true)

	require.NoError(t, sched.Cancel(context.Background(), "POST_PUBLISH_2"))

	time.Sleep(600 * time.Millisecond)
	assert.Zero(t, fires.Load())

	t.Run("cancel of unknown id is a no-op", func(t *testing.T) {
		assert.NoError(t, sched.Cancel(context.Background(), "POST_PUBLISH_404"))
	})
}

func TestScheduler_ReplaceByID(t *testing.T) {
	store := testJobStore()
	sched := NewScheduler(store, Config{})

	var fires atomic.Int32
	sched.Register(domain.JobPublish, ExecutorFunc(func(ctx context.Context, args domain.JobArgs) error {
		fires.Add(1)
		return nil
	}))

	// second registration replaces the first trigger entirely
	first := dateJob("POST_PUBLISH_3", domain.JobPublish, time.Now().UTC().Add(100*time.Millisecond), publishGraceSeconds)
	require.NoError(t, sched.Schedule(context.Background(), first))
	second := dateJob("POST_PUBLISH_3", domain.JobPublish, time.Now().UTC().Add(300*time.Millisecond), publishGraceSeconds)
	require.NoError(t, sched.Schedule(context.Background(), second))

	require.NoError(t, sched.Start(context.Background()))
	defer sched.Stop(true)

	time.Sleep(700 * time.Millisecond)
	assert.Equal(t, int32(1), fires.Load(), "replaced job must fire exactly once")
	assert.Len(t, store.SaveJobCalls(), 2)
}

func TestScheduler_StartArmsPersistedJobs(t *testing.T) {
	runAt := time.Now().UTC().Add(200 * time.Millisecond)
	persisted := dateJob("MESSAGE_DELETE_9_5_77", domain.JobDeleteMessage, runAt, deleteGraceSeconds)

	store := testJobStore()
	store.ListJobsFunc = func(ctx context.Context) ([]*domain.Job, error) {
		return []*domain.Job{persisted}, nil
	}

	sched := NewScheduler(store, Config{})
	fired := make(chan domain.JobArgs, 1)
	sched.Register(domain.JobDeleteMessage, ExecutorFunc(func(ctx context.Context, args domain.JobArgs) error {
		fired <- args
		return nil
	}))

	require.NoError(t, sched.Start(context.Background()))
	defer sched.Stop(true)

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("persisted job did not fire after restart")
	}
}

func TestScheduler_StartDropsExhaustedPersistedJob(t *testing.T) {
	stale := dateJob("MESSAGE_DELETE_1_1_1", domain.JobDeleteMessage, time.Now().UTC().Add(-time.Hour), deleteGraceSeconds)

	store := testJobStore()
	store.ListJobsFunc = func(ctx context.Context) ([]*domain.Job, error) {
		return []*domain.Job{stale}, nil
	}

	sched := NewScheduler(store, Config{})
	sched.Register(domain.JobDeleteMessage, ExecutorFunc(func(ctx context.Context, args domain.JobArgs) error {
		t.Error("exhausted job must not fire")
		return nil
	}))

	require.NoError(t, sched.Start(context.Background()))
	defer sched.Stop(true)

	require.Len(t, store.DeleteJobCalls(), 1)
	assert.Equal(t, "MESSAGE_DELETE_1_1_1", store.DeleteJobCalls()[0].ID)
}

func TestScheduler_StopWaitsForInFlight(t *testing.T) {
	store := testJobStore()
	sched := NewScheduler(store, Config{})

	var completed atomic.Bool
	started := make(chan struct{})
	sched.Register(domain.JobPublish, ExecutorFunc(func(ctx context.Context, args domain.JobArgs) error {
		close(started)
		time.Sleep(300 * time.Millisecond)
		completed.Store(true)
		return nil
	}))

	job := dateJob("POST_PUBLISH_4", domain.JobPublish, time.Now().UTC().Add(-time.Second), publishGraceSeconds)
	require.NoError(t, sched.Schedule(context.Background(), job))
	require.NoError(t, sched.Start(context.Background()))

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not start")
	}

	sched.Stop(true)
	assert.True(t, completed.Load(), "stop with wait must let the firing finish")
}

func TestScheduler_IntervalJobKeepsFiring(t *testing.T) {
	store := testJobStore()
	sched := NewScheduler(store, Config{})

	var fires atomic.Int32
	sched.Register(domain.JobCheckFeed, ExecutorFunc(func(ctx context.Context, args domain.JobArgs) error {
		fires.Add(1)
		return nil
	}))

	// arm with a start in the past so the 1-minute grid is already due;
	// each dispatch coalesces the backlog into a single firing
	start := time.Now().UTC().Add(-90 * time.Second)
	job := &domain.Job{
		ID:      "RSS_CHECK_7",
		Kind:    domain.JobCheckFeed,
		Trigger: domain.TriggerSpec{Kind: domain.TriggerInterval, EveryMinutes: 1, StartAt: &start},
		Args:    domain.JobArgs{FeedID: 7},
	}
	require.NoError(t, sched.Schedule(context.Background(), job))
	require.NoError(t, sched.Start(context.Background()))
	defer sched.Stop(true)

	assert.Eventually(t, func() bool { return fires.Load() >= 1 }, 2*time.Second, 20*time.Millisecond)
	assert.LessOrEqual(t, fires.Load(), int32(2), "backlog must coalesce, not replay every missed run")
}
