package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postomat/pkg/domain"
)

func TestJobRepository_SaveAndGet(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	runAt := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	job := &domain.Job{
		ID:   "POST_PUBLISH_10",
		Kind: domain.JobPublish,
		Trigger: domain.TriggerSpec{
			Kind:  domain.TriggerDate,
			RunAt: &runAt,
		},
		Args:         domain.JobArgs{PostID: 10},
		GraceSeconds: 600,
	}
	require.NoError(t, repos.Job.SaveJob(context.Background(), job))

	t.Run("round trip", func(t *testing.T) {
		got, err := repos.Job.GetJob(context.Background(), "POST_PUBLISH_10")
		require.NoError(t, err)
		assert.Equal(t, domain.JobPublish, got.Kind)
		assert.Equal(t, domain.TriggerDate, got.Trigger.Kind)
		require.NotNil(t, got.Trigger.RunAt)
		assert.True(t, got.Trigger.RunAt.Equal(runAt))
		assert.Equal(t, int64(10), got.Args.PostID)
		assert.Equal(t, 600, got.GraceSeconds)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := repos.Job.GetJob(context.Background(), "POST_PUBLISH_999")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("save with same id replaces", func(t *testing.T) {
		later := runAt.Add(time.Hour)
		replacement := &domain.Job{
			ID:           "POST_PUBLISH_10",
			Kind:         domain.JobPublish,
			Trigger:      domain.TriggerSpec{Kind: domain.TriggerDate, RunAt: &later},
			Args:         domain.JobArgs{PostID: 10},
			GraceSeconds: 600,
		}
		require.NoError(t, repos.Job.SaveJob(context.Background(), replacement))

		jobs, err := repos.Job.ListJobs(context.Background())
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.True(t, jobs[0].Trigger.RunAt.Equal(later), "replacement trigger should win")
	})
}

func TestJobRepository_DeleteJob(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	runAt := time.Now().UTC().Add(time.Hour)
	job := &domain.Job{
		ID:      "MESSAGE_DELETE_5_100",
		Kind:    domain.JobDeleteMessage,
		Trigger: domain.TriggerSpec{Kind: domain.TriggerDate, RunAt: &runAt},
		Args:    domain.JobArgs{PostID: 5, ChatID: -100, MessageID: 100},
	}
	require.NoError(t, repos.Job.SaveJob(context.Background(), job))

	t.Run("schedule then cancel leaves no entry", func(t *testing.T) {
		require.NoError(t, repos.Job.DeleteJob(context.Background(), job.ID))

		jobs, err := repos.Job.ListJobs(context.Background())
		require.NoError(t, err)
		assert.Empty(t, jobs)
	})

	t.Run("cancel of unknown id is a no-op", func(t *testing.T) {
		assert.NoError(t, repos.Job.DeleteJob(context.Background(), "RSS_CHECK_404"))
	})
}

func TestJobRepository_ListJobs(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	mk := func(id string, kind domain.JobKind, spec domain.TriggerSpec, args domain.JobArgs) {
		require.NoError(t, repos.Job.SaveJob(context.Background(), &domain.Job{ID: id, Kind: kind, Trigger: spec, Args: args}))
	}

	runAt := time.Now().UTC().Add(time.Hour)
	mk("POST_PUBLISH_1", domain.JobPublish, domain.TriggerSpec{Kind: domain.TriggerDate, RunAt: &runAt}, domain.JobArgs{PostID: 1})
	mk("RSS_CHECK_2", domain.JobCheckFeed, domain.TriggerSpec{Kind: domain.TriggerInterval, EveryMinutes: 30}, domain.JobArgs{FeedID: 2})
	mk("POST_PUBLISH_3", domain.JobPublish, domain.TriggerSpec{
		Kind:    domain.TriggerCron,
		Cron:    &domain.CronFields{Minute: "0", Hour: "12"},
		StartAt: &runAt,
	}, domain.JobArgs{PostID: 3})

	jobs, err := repos.Job.ListJobs(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 3)

	byID := make(map[string]*domain.Job, len(jobs))
	for _, j := range jobs {
		byID[j.ID] = j
	}
	assert.Equal(t, 30, byID["RSS_CHECK_2"].Trigger.EveryMinutes)
	require.NotNil(t, byID["POST_PUBLISH_3"].Trigger.Cron)
	assert.Equal(t, "12", byID["POST_PUBLISH_3"].Trigger.Cron.Hour)
}

func TestJobRepository_RejectsUnknownKind(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repos.DB.Exec(`INSERT INTO jobs (id, kind, trigger_spec, args) VALUES ('X_1', 'X', '{"kind":"date"}', '{}')`)
	require.NoError(t, err)

	_, err = repos.Job.GetJob(context.Background(), "X_1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown job kind")
}
