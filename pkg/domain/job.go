package domain

import (
	"fmt"
	"time"
)

// JobKind tags the executable a scheduled job fires. The persisted record
// stores only the tag plus arguments; executors are resolved from a registry
// at load time, never from a stored function reference.
type JobKind string

// job kinds
const (
	JobPublish       JobKind = "POST_PUBLISH"
	JobDeleteMessage JobKind = "MESSAGE_DELETE"
	JobCheckFeed     JobKind = "RSS_CHECK"
)

// ParseJobKind maps a persisted string to a JobKind
func ParseJobKind(s string) (JobKind, error) {
	switch JobKind(s) {
	case JobPublish, JobDeleteMessage, JobCheckFeed:
		return JobKind(s), nil
	}
	return "", fmt.Errorf("unknown job kind %q", s)
}

// TriggerKind selects how a job's next run time is computed
type TriggerKind string

// trigger kinds
const (
	TriggerDate     TriggerKind = "date"     // fires once at RunAt
	TriggerInterval TriggerKind = "interval" // fires every EveryMinutes from registration
	TriggerCron     TriggerKind = "cron"     // fires on wall-clock field match inside [StartAt, EndAt)
)

// TriggerSpec is the persisted trigger definition of a job. Fields are
// populated according to Kind; all times are UTC.
type TriggerSpec struct {
	Kind         TriggerKind `json:"kind"`
	RunAt        *time.Time  `json:"run_at,omitempty"`
	EveryMinutes int         `json:"every_minutes,omitempty"`
	Cron         *CronFields `json:"cron,omitempty"`
	StartAt      *time.Time  `json:"start_at,omitempty"`
	EndAt        *time.Time  `json:"end_at,omitempty"`
}

// JobArgs are the bound arguments passed to the executor on every firing
type JobArgs struct {
	PostID    int64 `json:"post_id,omitempty"`
	FeedID    int64 `json:"feed_id,omitempty"`
	ChatID    int64 `json:"chat_id,omitempty"`
	MessageID int   `json:"message_id,omitempty"`
}

// Job is one durable scheduled job. ID uniqueness is the mechanism that
// prevents duplicate timers for the same logical work.
type Job struct {
	ID           string
	Kind         JobKind
	Trigger      TriggerSpec
	Args         JobArgs
	GraceSeconds int // misfire grace window, 0 means no limit
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
