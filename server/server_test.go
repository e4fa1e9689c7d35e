package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postomat/pkg/domain"
	"postomat/pkg/repository"
	"postomat/server/mocks"
)

func testConfig() *mocks.ConfigProviderMock {
	return &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return ":8080", 30 * time.Second
		},
	}
}

func TestServer_New(t *testing.T) {
	srv := New(testConfig(), &mocks.DatabaseMock{}, &mocks.JobControlMock{}, "1.0.0", false)
	assert.NotNil(t, srv)
	assert.Equal(t, "1.0.0", srv.version)
	assert.False(t, srv.debug)
}

func TestServer_Run(t *testing.T) {
	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return fmt.Sprintf("127.0.0.1:%d", port), 30 * time.Second
		},
	}

	srv := New(cfg, &mocks.DatabaseMock{}, &mocks.JobControlMock{}, "1.0.0", false)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = srv.Run(ctx)
	}()

	// wait for server to start
	time.Sleep(100 * time.Millisecond)

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))

	cancel()
	time.Sleep(100 * time.Millisecond)
}

func TestServer_statusHandler(t *testing.T) {
	srv := New(testConfig(), &mocks.DatabaseMock{}, &mocks.JobControlMock{}, "1.2.3", false)

	req := httptest.NewRequest("GET", "/status", http.NoBody)
	w := httptest.NewRecorder()
	srv.statusHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp["status"])
	assert.Equal(t, "1.2.3", resp["version"])
}

func TestServer_jobsHandler(t *testing.T) {
	t.Run("lists jobs", func(t *testing.T) {
		runAt := time.Now().UTC().Add(time.Hour)
		db := &mocks.DatabaseMock{
			ListJobsFunc: func(ctx context.Context) ([]*domain.Job, error) {
				return []*domain.Job{
					{ID: "POST_PUBLISH_1", Kind: domain.JobPublish,
						Trigger: domain.TriggerSpec{Kind: domain.TriggerDate, RunAt: &runAt}},
				}, nil
			},
		}
		srv := New(testConfig(), db, &mocks.JobControlMock{}, "test", false)

		w := httptest.NewRecorder()
		srv.jobsHandler(w, httptest.NewRequest("GET", "/jobs", http.NoBody))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.InDelta(t, 1, resp["count"], 0.01)
	})

	t.Run("store failure", func(t *testing.T) {
		db := &mocks.DatabaseMock{
			ListJobsFunc: func(ctx context.Context) ([]*domain.Job, error) {
				return nil, errors.New("database locked")
			},
		}
		srv := New(testConfig(), db, &mocks.JobControlMock{}, "test", false)

		w := httptest.NewRecorder()
		srv.jobsHandler(w, httptest.NewRequest("GET", "/jobs", http.NoBody))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestServer_postsHandler(t *testing.T) {
	db := &mocks.DatabaseMock{
		ListPostsFunc: func(ctx context.Context, statuses ...domain.PostStatus) ([]*domain.Post, error) {
			if len(statuses) == 1 && statuses[0] == domain.StatusSent {
				return []*domain.Post{{ID: 1, Status: domain.StatusSent}}, nil
			}
			return []*domain.Post{{ID: 1, Status: domain.StatusSent}, {ID: 2, Status: domain.StatusScheduled}}, nil
		},
	}
	srv := New(testConfig(), db, &mocks.JobControlMock{}, "test", false)

	t.Run("all posts", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.postsHandler(w, httptest.NewRequest("GET", "/posts", http.NoBody))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.InDelta(t, 2, resp["count"], 0.01)
	})

	t.Run("filtered by status", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.postsHandler(w, httptest.NewRequest("GET", "/posts?status=sent", http.NoBody))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.InDelta(t, 1, resp["count"], 0.01)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		srv.postsHandler(w, httptest.NewRequest("GET", "/posts?status=partially_sent", http.NoBody))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("run time in caller zone", func(t *testing.T) {
		runAt := time.Date(2024, 1, 1, 14, 30, 0, 0, time.UTC)
		zonedDB := &mocks.DatabaseMock{
			ListPostsFunc: func(ctx context.Context, statuses ...domain.PostStatus) ([]*domain.Post, error) {
				return []*domain.Post{{ID: 1, Status: domain.StatusScheduled, RunAt: &runAt}}, nil
			},
		}
		zonedSrv := New(testConfig(), zonedDB, &mocks.JobControlMock{}, "test", false)

		w := httptest.NewRecorder()
		zonedSrv.postsHandler(w, httptest.NewRequest("GET", "/posts?tz=Europe/Berlin", http.NoBody))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "01.01.2024 15:30")
	})
}

func TestServer_deletePostHandler(t *testing.T) {
	t.Run("marks deleted and cancels job", func(t *testing.T) {
		db := &mocks.DatabaseMock{
			GetPostFunc: func(ctx context.Context, id int64) (*domain.Post, error) {
				return &domain.Post{ID: id, Status: domain.StatusScheduled}, nil
			},
			UpdatePostStatusFunc: func(ctx context.Context, id int64, status domain.PostStatus) error { return nil },
		}
		jobs := &mocks.JobControlMock{
			CancelFunc: func(ctx context.Context, id string) error { return nil },
		}
		srv := New(testConfig(), db, jobs, "test", false)

		req := httptest.NewRequest("DELETE", "/posts/42", http.NoBody)
		req.SetPathValue("id", "42")
		w := httptest.NewRecorder()
		srv.deletePostHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		require.Len(t, db.UpdatePostStatusCalls(), 1)
		assert.Equal(t, domain.StatusDeleted, db.UpdatePostStatusCalls()[0].Status)
		require.Len(t, jobs.CancelCalls(), 1)
		assert.Equal(t, "POST_PUBLISH_42", jobs.CancelCalls()[0].ID)
	})

	t.Run("missing post", func(t *testing.T) {
		db := &mocks.DatabaseMock{
			GetPostFunc: func(ctx context.Context, id int64) (*domain.Post, error) {
				return nil, repository.ErrNotFound
			},
		}
		srv := New(testConfig(), db, &mocks.JobControlMock{}, "test", false)

		req := httptest.NewRequest("DELETE", "/posts/404", http.NoBody)
		req.SetPathValue("id", "404")
		w := httptest.NewRecorder()
		srv.deletePostHandler(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad id", func(t *testing.T) {
		srv := New(testConfig(), &mocks.DatabaseMock{}, &mocks.JobControlMock{}, "test", false)
		req := httptest.NewRequest("DELETE", "/posts/abc", http.NoBody)
		req.SetPathValue("id", "abc")
		w := httptest.NewRecorder()
		srv.deletePostHandler(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestServer_checkFeedHandler(t *testing.T) {
	t.Run("schedules immediate check", func(t *testing.T) {
		db := &mocks.DatabaseMock{
			GetFeedFunc: func(ctx context.Context, id int64) (*domain.Feed, error) {
				return &domain.Feed{ID: id, URL: "https://example.com/rss", IntervalMinutes: 30}, nil
			},
		}
		jobs := &mocks.JobControlMock{
			ScheduleFunc: func(ctx context.Context, job *domain.Job) error { return nil },
		}
		srv := New(testConfig(), db, jobs, "test", false)

		req := httptest.NewRequest("POST", "/feeds/7/check", http.NoBody)
		req.SetPathValue("id", "7")
		w := httptest.NewRecorder()
		srv.checkFeedHandler(w, req)

		assert.Equal(t, http.StatusAccepted, w.Code)
		require.Len(t, jobs.ScheduleCalls(), 1)
		job := jobs.ScheduleCalls()[0].Job
		assert.Equal(t, "RSS_CHECK_7_manual", job.ID)
		assert.Equal(t, domain.JobCheckFeed, job.Kind)
		assert.Equal(t, domain.TriggerDate, job.Trigger.Kind)
	})

	t.Run("missing feed", func(t *testing.T) {
		db := &mocks.DatabaseMock{
			GetFeedFunc: func(ctx context.Context, id int64) (*domain.Feed, error) {
				return nil, repository.ErrNotFound
			},
		}
		srv := New(testConfig(), db, &mocks.JobControlMock{}, "test", false)

		req := httptest.NewRequest("POST", "/feeds/404/check", http.NoBody)
		req.SetPathValue("id", "404")
		w := httptest.NewRecorder()
		srv.checkFeedHandler(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
