package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"postomat/pkg/domain"
	"postomat/pkg/timeutil"
)

// ErrNotFound is returned when a requested row does not exist
var ErrNotFound = errors.New("not found")

// PostRepository handles post-related database operations
type PostRepository struct {
	db *sqlx.DB
}

// postSQL represents a post for SQL operations
type postSQL struct {
	ID           int64      `db:"id"`
	UserID       int64      `db:"user_id"`
	ChatIDs      string     `db:"chat_ids"`
	Text         string     `db:"text"`
	Media        string     `db:"media"`
	ScheduleType string     `db:"schedule_type"`
	CronFields   *string    `db:"cron_fields"`
	RunAt        *time.Time `db:"run_at"`
	StartAt      *time.Time `db:"start_at"`
	EndAt        *time.Time `db:"end_at"`
	DeleteAfter  *int       `db:"delete_after"`
	DeleteAt     *time.Time `db:"delete_at"`
	Status       string     `db:"status"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *sqlx.DB) *PostRepository {
	return &PostRepository{db: db}
}

// CreatePost inserts a new post and sets its assigned id
func (r *PostRepository) CreatePost(ctx context.Context, post *domain.Post) error {
	sqlPost, err := r.toSQL(post)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO posts (user_id, chat_ids, text, media, schedule_type, cron_fields,
		                   run_at, start_at, end_at, delete_after, delete_at, status)
		VALUES (:user_id, :chat_ids, :text, :media, :schedule_type, :cron_fields,
		        :run_at, :start_at, :end_at, :delete_after, :delete_at, :status)
	`
	var result sql.Result
	err = withRetry(ctx, func() error {
		var execErr error
		result, execErr = r.db.NamedExecContext(ctx, query, sqlPost)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("create post: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get insert id: %w", err)
	}

	post.ID = id
	return nil
}

// GetPost retrieves a post by ID
func (r *PostRepository) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	var sqlPost postSQL
	err := r.db.GetContext(ctx, &sqlPost, "SELECT * FROM posts WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get post %d: %w", id, err)
	}
	return r.toDomain(&sqlPost)
}

// GetScheduledPosts retrieves all posts in scheduled status, for the
// startup recovery sweep
func (r *PostRepository) GetScheduledPosts(ctx context.Context) ([]*domain.Post, error) {
	var sqlPosts []postSQL
	err := r.db.SelectContext(ctx, &sqlPosts,
		"SELECT * FROM posts WHERE status = ? ORDER BY id", string(domain.StatusScheduled))
	if err != nil {
		return nil, fmt.Errorf("get scheduled posts: %w", err)
	}

	posts := make([]*domain.Post, 0, len(sqlPosts))
	for i := range sqlPosts {
		post, err := r.toDomain(&sqlPosts[i])
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// ListPosts retrieves all posts, optionally filtered by status
func (r *PostRepository) ListPosts(ctx context.Context, statuses ...domain.PostStatus) ([]*domain.Post, error) {
	query := "SELECT * FROM posts"
	var args []any
	if len(statuses) > 0 {
		query += " WHERE status IN (?" + repeatPlaceholder(len(statuses)-1) + ")"
		for _, s := range statuses {
			args = append(args, string(s))
		}
	}
	query += " ORDER BY id"

	var sqlPosts []postSQL
	if err := r.db.SelectContext(ctx, &sqlPosts, query, args...); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	posts := make([]*domain.Post, 0, len(sqlPosts))
	for i := range sqlPosts {
		post, err := r.toDomain(&sqlPosts[i])
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// GetUserPosts retrieves posts belonging to a user, optionally filtered by status
func (r *PostRepository) GetUserPosts(ctx context.Context, userID int64, statuses ...domain.PostStatus) ([]*domain.Post, error) {
	query := "SELECT * FROM posts WHERE user_id = ?"
	args := []any{userID}
	if len(statuses) > 0 {
		query += " AND status IN (?" + repeatPlaceholder(len(statuses)-1) + ")"
		for _, s := range statuses {
			args = append(args, string(s))
		}
	}
	query += " ORDER BY id"

	var sqlPosts []postSQL
	if err := r.db.SelectContext(ctx, &sqlPosts, query, args...); err != nil {
		return nil, fmt.Errorf("get user posts: %w", err)
	}

	posts := make([]*domain.Post, 0, len(sqlPosts))
	for i := range sqlPosts {
		post, err := r.toDomain(&sqlPosts[i])
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// UpdatePostStatus sets the post status
func (r *PostRepository) UpdatePostStatus(ctx context.Context, id int64, status domain.PostStatus) error {
	err := withRetry(ctx, func() error {
		res, execErr := r.db.ExecContext(ctx, "UPDATE posts SET status = ? WHERE id = ?", string(status), id)
		if execErr != nil {
			return execErr
		}
		affected, execErr := res.RowsAffected()
		if execErr != nil {
			return execErr
		}
		if affected == 0 {
			return &criticalError{err: ErrNotFound}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("update post %d status to %s: %w", id, status, err)
	}
	return nil
}

// DeletePost removes a post. Callers are responsible for cancelling the
// post's live publish job.
func (r *PostRepository) DeletePost(ctx context.Context, id int64) error {
	err := withRetry(ctx, func() error {
		_, execErr := r.db.ExecContext(ctx, "DELETE FROM posts WHERE id = ?", id)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("delete post %d: %w", id, err)
	}
	return nil
}

// toSQL converts a domain post to its SQL shape
func (r *PostRepository) toSQL(post *domain.Post) (*postSQL, error) {
	chatIDs, err := marshalJSON(post.ChatIDs)
	if err != nil {
		return nil, err
	}
	media := post.Media
	if media == nil {
		media = []domain.MediaRef{}
	}
	mediaJSON, err := marshalJSON(media)
	if err != nil {
		return nil, err
	}

	var cronJSON *string
	if post.Cron != nil {
		s, err := marshalJSON(post.Cron)
		if err != nil {
			return nil, err
		}
		cronJSON = &s
	}

	return &postSQL{
		ID:           post.ID,
		UserID:       post.UserID,
		ChatIDs:      chatIDs,
		Text:         post.Text,
		Media:        mediaJSON,
		ScheduleType: string(post.ScheduleType),
		CronFields:   cronJSON,
		RunAt:        timeutil.EnsureUTC(post.RunAt),
		StartAt:      timeutil.EnsureUTC(post.StartAt),
		EndAt:        timeutil.EnsureUTC(post.EndAt),
		DeleteAfter:  post.DeleteAfter,
		DeleteAt:     timeutil.EnsureUTC(post.DeleteAt),
		Status:       string(post.Status),
	}, nil
}

// toDomain converts a SQL row to a domain post, rejecting rows with
// unknown enum values
func (r *PostRepository) toDomain(sqlPost *postSQL) (*domain.Post, error) {
	status, err := domain.ParsePostStatus(sqlPost.Status)
	if err != nil {
		return nil, fmt.Errorf("post %d: %w", sqlPost.ID, err)
	}
	scheduleType, err := domain.ParseScheduleType(sqlPost.ScheduleType)
	if err != nil {
		return nil, fmt.Errorf("post %d: %w", sqlPost.ID, err)
	}

	post := &domain.Post{
		ID:           sqlPost.ID,
		UserID:       sqlPost.UserID,
		Text:         sqlPost.Text,
		ScheduleType: scheduleType,
		RunAt:        sqlPost.RunAt,
		StartAt:      sqlPost.StartAt,
		EndAt:        sqlPost.EndAt,
		DeleteAfter:  sqlPost.DeleteAfter,
		DeleteAt:     sqlPost.DeleteAt,
		Status:       status,
		CreatedAt:    sqlPost.CreatedAt,
		UpdatedAt:    sqlPost.UpdatedAt,
	}

	if err := unmarshalJSON(sqlPost.ChatIDs, &post.ChatIDs); err != nil {
		return nil, fmt.Errorf("post %d chat ids: %w", sqlPost.ID, err)
	}
	if err := unmarshalJSON(sqlPost.Media, &post.Media); err != nil {
		return nil, fmt.Errorf("post %d media: %w", sqlPost.ID, err)
	}
	if sqlPost.CronFields != nil {
		post.Cron = &domain.CronFields{}
		if err := unmarshalJSON(*sqlPost.CronFields, post.Cron); err != nil {
			return nil, fmt.Errorf("post %d cron fields: %w", sqlPost.ID, err)
		}
	}
	return post, nil
}

// repeatPlaceholder returns n copies of ",?" for IN clauses
func repeatPlaceholder(n int) string {
	s := ""
	for i := 0; i < n; i++ {
		s += ",?"
	}
	return s
}
