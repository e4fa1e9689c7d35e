package domain

import (
	"fmt"
	"time"
)

// PostStatus is the lifecycle state of a post. The string value is the
// persisted form; unknown values are rejected on load.
type PostStatus string

// post statuses
const (
	StatusDraft     PostStatus = "draft"
	StatusScheduled PostStatus = "scheduled"
	StatusSent      PostStatus = "sent"
	StatusError     PostStatus = "error"
	StatusInvalid   PostStatus = "invalid"
	StatusDeleted   PostStatus = "deleted"
)

// ParsePostStatus maps a persisted string to a PostStatus, rejecting
// anything outside the closed set as a data-integrity error.
func ParsePostStatus(s string) (PostStatus, error) {
	switch PostStatus(s) {
	case StatusDraft, StatusScheduled, StatusSent, StatusError, StatusInvalid, StatusDeleted:
		return PostStatus(s), nil
	}
	return "", fmt.Errorf("unknown post status %q", s)
}

// ScheduleType distinguishes one-shot posts from recurring ones
type ScheduleType string

// schedule types
const (
	ScheduleOneTime   ScheduleType = "one_time"
	ScheduleRecurring ScheduleType = "recurring"
)

// ParseScheduleType maps a persisted string to a ScheduleType
func ParseScheduleType(s string) (ScheduleType, error) {
	switch ScheduleType(s) {
	case ScheduleOneTime, ScheduleRecurring:
		return ScheduleType(s), nil
	}
	return "", fmt.Errorf("unknown schedule type %q", s)
}

// MediaKind is the transport-level media category
type MediaKind string

// media kinds understood by the transport
const (
	MediaPhoto     MediaKind = "photo"
	MediaVideo     MediaKind = "video"
	MediaDocument  MediaKind = "document"
	MediaAudio     MediaKind = "audio"
	MediaAnimation MediaKind = "animation"
)

// MediaRef points at one media attachment. Ref is either a transport file id
// or a local file path, the transport adapter decides which.
type MediaRef struct {
	Kind MediaKind `json:"kind"`
	Ref  string    `json:"ref"`
}

// CronFields holds the wall-clock fields of a recurring schedule.
// An empty field means "any" (cron *).
type CronFields struct {
	Minute     string `json:"minute,omitempty"`
	Hour       string `json:"hour,omitempty"`
	DayOfMonth string `json:"day_of_month,omitempty"`
	Month      string `json:"month,omitempty"`
	DayOfWeek  string `json:"day_of_week,omitempty"`
}

// Post is a unit of content to deliver to one or more chats, either once at
// RunAt or on a cron-like recurring schedule bounded by [StartAt, EndAt).
// Exactly one of RunAt / Cron is populated, matching ScheduleType.
type Post struct {
	ID           int64
	UserID       int64
	ChatIDs      []int64
	Text         string
	Media        []MediaRef
	ScheduleType ScheduleType
	Cron         *CronFields
	RunAt        *time.Time // one-time run time, UTC
	StartAt      *time.Time // recurring window start, UTC
	EndAt        *time.Time // recurring window end, UTC
	DeleteAfter  *int       // auto-delete delay in seconds after send
	DeleteAt     *time.Time // absolute auto-delete deadline, UTC
	Status       PostStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
