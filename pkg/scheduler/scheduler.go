package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"postomat/pkg/domain"
)

//go:generate moq -out mocks/job_store.go -pkg mocks -skip-ensure -fmt goimports . JobStore
//go:generate moq -out mocks/executor.go -pkg mocks -skip-ensure -fmt goimports . Executor

// JobStore persists trigger definitions keyed by job id, surviving process
// restart. Add-or-replace by id and remove-by-id (no-op if absent) are the
// operations the dispatch loop relies on.
type JobStore interface {
	SaveJob(ctx context.Context, job *domain.Job) error
	DeleteJob(ctx context.Context, id string) error
	ListJobs(ctx context.Context) ([]*domain.Job, error)
}

// Executor runs one firing of a job kind with the job's bound arguments
type Executor interface {
	Execute(ctx context.Context, args domain.JobArgs) error
}

// ExecutorFunc adapts a plain function into an Executor
type ExecutorFunc func(ctx context.Context, args domain.JobArgs) error

// Execute implements Executor
func (f ExecutorFunc) Execute(ctx context.Context, args domain.JobArgs) error {
	return f(ctx, args)
}

// Config holds scheduler configuration
type Config struct {
	MaxInFlight int              // cap on simultaneous firings of the same job id
	NowFn       func() time.Time // injectable clock, defaults to time.Now
}

// Scheduler owns the timer loop bound to a durable job store. Triggers are
// persisted on schedule and re-armed from the store on start, so timers
// survive process restart. Executors are resolved from a kind registry at
// firing time, never from a stored function reference.
type Scheduler struct {
	store       JobStore
	executors   map[domain.JobKind]Executor
	maxInFlight int
	nowFn       func() time.Time

	mu       sync.Mutex
	armed    map[string]*armedJob
	inFlight map[string]int

	wake       chan struct{}
	loopCancel context.CancelFunc
	fireCancel context.CancelFunc
	loopDone   chan struct{}
	fireWG     sync.WaitGroup
}

// armedJob is one live in-memory timer
type armedJob struct {
	job  *domain.Job
	trg  *trigger
	next time.Time
}

// NewScheduler creates a scheduler bound to a durable job store
func NewScheduler(store JobStore, cfg Config) *Scheduler {
	if cfg.MaxInFlight == 0 {
		cfg.MaxInFlight = 5
	}
	if cfg.NowFn == nil {
		cfg.NowFn = time.Now
	}
	return &Scheduler{
		store:       store,
		executors:   make(map[domain.JobKind]Executor),
		maxInFlight: cfg.MaxInFlight,
		nowFn:       cfg.NowFn,
		armed:       make(map[string]*armedJob),
		inFlight:    make(map[string]int),
		wake:        make(chan struct{}, 1),
	}
}

// Register binds an executor to a job kind. Must be called before Start.
func (s *Scheduler) Register(kind domain.JobKind, exec Executor) {
	s.executors[kind] = exec
}

// Schedule persists a job and arms its timer, replacing any prior job with
// the same id. Safe to call before Start; armed timers begin firing only
// once the loop runs.
func (s *Scheduler) Schedule(ctx context.Context, job *domain.Job) error {
	// pin the interval phase at registration so restarts keep it
	if job.Trigger.Kind == domain.TriggerInterval && job.Trigger.StartAt == nil {
		now := s.nowFn().UTC()
		job.Trigger.StartAt = &now
	}

	trg, err := compileTrigger(job.Trigger)
	if err != nil {
		return fmt.Errorf("schedule job %s: %w", job.ID, err)
	}

	now := s.nowFn().UTC()
	next, ok := trg.Next(s.horizon(job, now))
	if !ok {
		return fmt.Errorf("schedule job %s: %w", job.ID, ErrNoNextRun)
	}

	if err := s.store.SaveJob(ctx, job); err != nil {
		return fmt.Errorf("schedule job %s: %w", job.ID, err)
	}

	s.mu.Lock()
	s.armed[job.ID] = &armedJob{job: job, trg: trg, next: next}
	s.mu.Unlock()

	lgr.Printf("[DEBUG] scheduled job %s, next run %s", job.ID, next.Format(time.RFC3339))
	s.wakeLoop()
	return nil
}

// Cancel removes a job from the store and disarms its timer, a no-op when
// the id is unknown
func (s *Scheduler) Cancel(ctx context.Context, id string) error {
	if err := s.store.DeleteJob(ctx, id); err != nil {
		return fmt.Errorf("cancel job %s: %w", id, err)
	}

	s.mu.Lock()
	delete(s.armed, id)
	s.mu.Unlock()

	s.wakeLoop()
	return nil
}

// Start re-arms persisted jobs not already armed in memory and runs the
// dispatch loop. Callers must finish any recovery scheduling before Start so
// no timer fires against half-reconciled state.
func (s *Scheduler) Start(ctx context.Context) error {
	jobs, err := s.store.ListJobs(ctx)
	if err != nil {
		return fmt.Errorf("load persisted jobs: %w", err)
	}

	now := s.nowFn().UTC()
	for _, job := range jobs {
		s.mu.Lock()
		_, alreadyArmed := s.armed[job.ID]
		s.mu.Unlock()
		if alreadyArmed {
			continue
		}

		if _, ok := s.executors[job.Kind]; !ok {
			lgr.Printf("[WARN] no executor for job %s kind %s, leaving it disarmed", job.ID, job.Kind)
			continue
		}

		trg, err := compileTrigger(job.Trigger)
		if err != nil {
			lgr.Printf("[WARN] dropping job %s with bad trigger: %v", job.ID, err)
			s.removeStored(ctx, job.ID)
			continue
		}

		next, ok := trg.Next(s.horizon(job, now))
		if !ok {
			lgr.Printf("[WARN] dropping exhausted job %s", job.ID)
			s.removeStored(ctx, job.ID)
			continue
		}

		s.mu.Lock()
		s.armed[job.ID] = &armedJob{job: job, trg: trg, next: next}
		s.mu.Unlock()
	}

	loopCtx, loopCancel := context.WithCancel(ctx)
	fireCtx, fireCancel := context.WithCancel(ctx)
	s.loopCancel = loopCancel
	s.fireCancel = fireCancel
	s.loopDone = make(chan struct{})

	go s.run(loopCtx, fireCtx)

	s.mu.Lock()
	count := len(s.armed)
	s.mu.Unlock()
	lgr.Printf("[INFO] scheduler started with %d armed jobs, max %d in-flight per job", count, s.maxInFlight)
	return nil
}

// Stop shuts the dispatch loop down. With wait=true it blocks until every
// in-flight firing has completed; with wait=false running firings are
// abandoned mid-execution.
func (s *Scheduler) Stop(wait bool) {
	lgr.Printf("[INFO] stopping scheduler, wait=%v", wait)
	if s.loopCancel != nil {
		s.loopCancel()
		<-s.loopDone
	}
	if wait {
		s.fireWG.Wait()
	}
	if s.fireCancel != nil {
		s.fireCancel()
	}
	lgr.Printf("[INFO] scheduler stopped")
}

// run is the dispatch loop: fire due jobs, then sleep until the earliest
// next run or an explicit wake-up
func (s *Scheduler) run(loopCtx, fireCtx context.Context) {
	defer close(s.loopDone)

	for {
		now := s.nowFn().UTC()
		s.dispatchDue(fireCtx, now)

		timer := time.NewTimer(s.nextWait(now))
		select {
		case <-loopCtx.Done():
			timer.Stop()
			return
		case <-s.wake:
			timer.Stop()
		case <-timer.C:
		}
	}
}

// dispatchDue fires every armed job whose next run is due, coalescing any
// backlog for a job into the single firing, then advances or retires its
// timer
func (s *Scheduler) dispatchDue(fireCtx context.Context, now time.Time) {
	var exhausted []string

	s.mu.Lock()
	for id, aj := range s.armed {
		if aj.next.After(now) {
			continue
		}

		if s.inFlight[id] >= s.maxInFlight {
			lgr.Printf("[WARN] job %s at in-flight cap %d, dropping this firing", id, s.maxInFlight)
		} else {
			s.fire(fireCtx, aj.job)
		}

		if next, ok := aj.trg.Next(now); ok {
			aj.next = next
		} else {
			delete(s.armed, id)
			exhausted = append(exhausted, id)
		}
	}
	s.mu.Unlock()

	for _, id := range exhausted {
		s.removeStored(fireCtx, id)
	}
}

// fire launches one execution of a job. Called with s.mu held.
func (s *Scheduler) fire(fireCtx context.Context, job *domain.Job) {
	exec, ok := s.executors[job.Kind]
	if !ok {
		lgr.Printf("[ERROR] no executor registered for job %s kind %s", job.ID, job.Kind)
		return
	}

	s.inFlight[job.ID]++
	s.fireWG.Add(1)

	go func() {
		defer s.fireWG.Done()
		defer func() {
			s.mu.Lock()
			s.inFlight[job.ID]--
			s.mu.Unlock()
		}()

		lgr.Printf("[DEBUG] firing job %s", job.ID)
		if err := exec.Execute(fireCtx, job.Args); err != nil {
			lgr.Printf("[ERROR] job %s failed: %v", job.ID, err)
		}
	}()
}

// nextWait returns how long the loop may sleep before the earliest armed run
func (s *Scheduler) nextWait(now time.Time) time.Duration {
	const idleWait = time.Minute

	s.mu.Lock()
	defer s.mu.Unlock()

	wait := idleWait
	for _, aj := range s.armed {
		if d := aj.next.Sub(now); d < wait {
			wait = d
		}
	}
	if wait < 0 {
		wait = 0
	}
	return wait
}

// horizon returns the earliest instant a missed firing of the job still
// counts; older ones are skipped per the misfire policy. Grace 0 means no
// limit.
func (s *Scheduler) horizon(job *domain.Job, now time.Time) time.Time {
	if job.GraceSeconds > 0 {
		return now.Add(-time.Duration(job.GraceSeconds) * time.Second)
	}
	if job.Trigger.Kind == domain.TriggerCron {
		// cron next-run queries cannot start from the zero time
		return now.AddDate(-1, 0, 0)
	}
	return time.Time{}
}

// removeStored deletes a retired job from the durable store
func (s *Scheduler) removeStored(ctx context.Context, id string) {
	if err := s.store.DeleteJob(ctx, id); err != nil {
		lgr.Printf("[ERROR] failed to remove retired job %s: %v", id, err)
	}
}

// wakeLoop nudges the dispatch loop to re-evaluate its timers
func (s *Scheduler) wakeLoop() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}
