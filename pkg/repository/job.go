package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"postomat/pkg/domain"
)

// JobRepository is the durable job store. Rows survive process restart and
// are addressable solely by job id; add-or-replace by id is the mechanism
// that prevents duplicate timers for the same logical work.
type JobRepository struct {
	db *sqlx.DB
}

// jobSQL represents a scheduled job for SQL operations
type jobSQL struct {
	ID           string    `db:"id"`
	Kind         string    `db:"kind"`
	TriggerSpec  string    `db:"trigger_spec"`
	Args         string    `db:"args"`
	GraceSeconds int       `db:"grace_seconds"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *sqlx.DB) *JobRepository {
	return &JobRepository{db: db}
}

// SaveJob inserts or replaces a job by id
func (r *JobRepository) SaveJob(ctx context.Context, job *domain.Job) error {
	trigger, err := marshalJSON(job.Trigger)
	if err != nil {
		return err
	}
	args, err := marshalJSON(job.Args)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO jobs (id, kind, trigger_spec, args, grace_seconds)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			kind = excluded.kind,
			trigger_spec = excluded.trigger_spec,
			args = excluded.args,
			grace_seconds = excluded.grace_seconds
	`
	err = withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, query, job.ID, string(job.Kind), trigger, args, job.GraceSeconds)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("save job %s: %w", job.ID, err)
	}
	return nil
}

// DeleteJob removes a job by id, a no-op when the id is absent
func (r *JobRepository) DeleteJob(ctx context.Context, id string) error {
	err := withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, "DELETE FROM jobs WHERE id = ?", id)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("delete job %s: %w", id, err)
	}
	return nil
}

// GetJob retrieves a job by id
func (r *JobRepository) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	var sqlJob jobSQL
	err := r.db.GetContext(ctx, &sqlJob, "SELECT * FROM jobs WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get job %s: %w", id, err)
	}
	return r.toDomain(&sqlJob)
}

// ListJobs returns all live jobs
func (r *JobRepository) ListJobs(ctx context.Context) ([]*domain.Job, error) {
	var sqlJobs []jobSQL
	if err := r.db.SelectContext(ctx, &sqlJobs, "SELECT * FROM jobs ORDER BY id"); err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	jobs := make([]*domain.Job, 0, len(sqlJobs))
	for i := range sqlJobs {
		job, err := r.toDomain(&sqlJobs[i])
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// toDomain converts a SQL row to a domain job
func (r *JobRepository) toDomain(sqlJob *jobSQL) (*domain.Job, error) {
	kind, err := domain.ParseJobKind(sqlJob.Kind)
	if err != nil {
		return nil, fmt.Errorf("job %s: %w", sqlJob.ID, err)
	}

	job := &domain.Job{
		ID:           sqlJob.ID,
		Kind:         kind,
		GraceSeconds: sqlJob.GraceSeconds,
		CreatedAt:    sqlJob.CreatedAt,
		UpdatedAt:    sqlJob.UpdatedAt,
	}
	if err := unmarshalJSON(sqlJob.TriggerSpec, &job.Trigger); err != nil {
		return nil, fmt.Errorf("job %s trigger: %w", sqlJob.ID, err)
	}
	if err := unmarshalJSON(sqlJob.Args, &job.Args); err != nil {
		return nil, fmt.Errorf("job %s args: %w", sqlJob.ID, err)
	}
	return job, nil
}
