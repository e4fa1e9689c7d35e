package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"postomat/pkg/domain"
	"postomat/pkg/repository"
	"postomat/pkg/scheduler"
	"postomat/pkg/timeutil"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/job_control.go -pkg mocks -skip-ensure -fmt goimports . JobControl

// Server represents HTTP server instance
type Server struct {
	config  ConfigProvider
	db      Database
	jobs    JobControl
	version string
	debug   bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Database interface for server operations
type Database interface {
	ListPosts(ctx context.Context, statuses ...domain.PostStatus) ([]*domain.Post, error)
	GetPost(ctx context.Context, id int64) (*domain.Post, error)
	UpdatePostStatus(ctx context.Context, id int64, status domain.PostStatus) error
	GetFeed(ctx context.Context, id int64) (*domain.Feed, error)
	ListJobs(ctx context.Context) ([]*domain.Job, error)
}

// JobControl is the scheduling handle for on-demand operations
type JobControl interface {
	Schedule(ctx context.Context, job *domain.Job) error
	Cancel(ctx context.Context, id string) error
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, db Database, jobs JobControl, version string, debug bool) *Server {
	s := &Server{
		config:  cfg,
		db:      db,
		jobs:    jobs,
		version: version,
		debug:   debug,
		router:  routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("postomat", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /jobs", s.jobsHandler)
		r.HandleFunc("GET /posts", s.postsHandler)
		r.HandleFunc("DELETE /posts/{id}", s.deletePostHandler)
		r.HandleFunc("POST /feeds/{id}/check", s.checkFeedHandler)
	})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	RenderJSON(w, r, http.StatusOK, status)
}

// jobsHandler lists the durable jobs
func (s *Server) jobsHandler(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.db.ListJobs(r.Context())
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}
	RenderJSON(w, r, http.StatusOK, map[string]interface{}{"jobs": jobs, "count": len(jobs)})
}

// postsHandler lists posts, optionally filtered by ?status= and with run
// times rendered in the caller's zone via ?tz=
func (s *Server) postsHandler(w http.ResponseWriter, r *http.Request) {
	var statuses []domain.PostStatus
	if v := r.URL.Query().Get("status"); v != "" {
		status, err := domain.ParsePostStatus(v)
		if err != nil {
			RenderError(w, r, err, http.StatusBadRequest)
			return
		}
		statuses = append(statuses, status)
	}

	posts, err := s.db.ListPosts(r.Context(), statuses...)
	if err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	type postView struct {
		*domain.Post
		RunAtLocal string `json:"run_at_local,omitempty"`
	}
	views := make([]postView, 0, len(posts))
	tz := r.URL.Query().Get("tz")
	for _, p := range posts {
		v := postView{Post: p}
		if tz != "" && p.RunAt != nil {
			v.RunAtLocal = timeutil.FormatInZone(*p.RunAt, tz)
		}
		views = append(views, v)
	}

	RenderJSON(w, r, http.StatusOK, map[string]interface{}{"posts": views, "count": len(views)})
}

// deletePostHandler marks a post deleted and cancels its live publish job
func (s *Server) deletePostHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		RenderError(w, r, fmt.Errorf("invalid post id"), http.StatusBadRequest)
		return
	}

	if _, err := s.db.GetPost(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			RenderError(w, r, err, http.StatusNotFound)
			return
		}
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	if err := s.db.UpdatePostStatus(r.Context(), id, domain.StatusDeleted); err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	// the post's live timer must die with it
	if err := s.jobs.Cancel(r.Context(), scheduler.MakeJobID(domain.JobPublish, id)); err != nil {
		lgr.Printf("[WARN] failed to cancel publish job for post %d: %v", id, err)
	}

	RenderJSON(w, r, http.StatusOK, map[string]interface{}{"deleted": id})
}

// checkFeedHandler schedules an immediate poll of a feed
func (s *Server) checkFeedHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		RenderError(w, r, fmt.Errorf("invalid feed id"), http.StatusBadRequest)
		return
	}

	feed, err := s.db.GetFeed(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			RenderError(w, r, err, http.StatusNotFound)
			return
		}
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	now := time.Now().UTC()
	job := &domain.Job{
		ID:           scheduler.MakeJobID(domain.JobCheckFeed, feed.ID, "manual"),
		Kind:         domain.JobCheckFeed,
		Trigger:      domain.TriggerSpec{Kind: domain.TriggerDate, RunAt: &now},
		Args:         domain.JobArgs{FeedID: feed.ID},
		GraceSeconds: 60,
	}
	if err := s.jobs.Schedule(r.Context(), job); err != nil {
		RenderError(w, r, err, http.StatusInternalServerError)
		return
	}

	RenderJSON(w, r, http.StatusAccepted, map[string]interface{}{"feed_id": feed.ID, "job_id": job.ID})
}

// RenderJSON sends JSON response
func RenderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// RenderError sends error response as JSON
func RenderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	RenderJSON(w, r, code, map[string]string{"error": errMsg})
}
