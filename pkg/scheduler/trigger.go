package scheduler

import (
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"postomat/pkg/domain"
)

// ErrNoNextRun reports a trigger with no future firing left, e.g. a one-shot
// time already past its grace window or a cron window that has closed
var ErrNoNextRun = errors.New("trigger has no next run")

// ErrInvalidSchedule reports a trigger spec that cannot be compiled into a
// runnable schedule. Callers demote the owning entity instead of retrying.
var ErrInvalidSchedule = errors.New("invalid schedule")

// trigger is a compiled TriggerSpec able to answer "when is the next firing
// strictly after a given instant". Compilation validates the spec once so the
// dispatch loop never deals with malformed schedules.
type trigger struct {
	spec domain.TriggerSpec
	cron cron.Schedule // set for cron kind only
}

// compileTrigger validates a trigger spec and prepares it for next-run queries
func compileTrigger(spec domain.TriggerSpec) (*trigger, error) {
	t := &trigger{spec: spec}

	switch spec.Kind {
	case domain.TriggerDate:
		if spec.RunAt == nil {
			return nil, fmt.Errorf("%w: date trigger requires run time", ErrInvalidSchedule)
		}
	case domain.TriggerInterval:
		if spec.EveryMinutes <= 0 {
			return nil, fmt.Errorf("%w: interval trigger requires positive interval, got %d", ErrInvalidSchedule, spec.EveryMinutes)
		}
	case domain.TriggerCron:
		if spec.Cron == nil {
			return nil, fmt.Errorf("%w: cron trigger requires schedule fields", ErrInvalidSchedule)
		}
		sched, err := cron.ParseStandard(cronExpr(spec.Cron))
		if err != nil {
			return nil, fmt.Errorf("%w: parse cron fields: %v", ErrInvalidSchedule, err)
		}
		t.cron = sched
	default:
		return nil, fmt.Errorf("%w: unknown trigger kind %q", ErrInvalidSchedule, spec.Kind)
	}

	return t, nil
}

// Next returns the earliest firing time strictly after the given instant,
// or false when the trigger will never fire again
func (t *trigger) Next(after time.Time) (time.Time, bool) {
	switch t.spec.Kind {
	case domain.TriggerDate:
		if t.spec.RunAt.After(after) {
			return t.spec.RunAt.UTC(), true
		}
		return time.Time{}, false

	case domain.TriggerInterval:
		every := time.Duration(t.spec.EveryMinutes) * time.Minute
		base := after
		if t.spec.StartAt != nil {
			base = t.spec.StartAt.UTC()
		}
		next := base.Add(every)
		if !next.After(after) {
			// jump over the backlog in one step instead of iterating
			missed := after.Sub(base) / every
			next = base.Add((missed + 1) * every)
		}
		return next, true

	case domain.TriggerCron:
		from := after
		if t.spec.StartAt != nil && t.spec.StartAt.After(from) {
			// cron.Next is exclusive, nudge back so StartAt itself can match
			from = t.spec.StartAt.UTC().Add(-time.Second)
		}
		next := t.cron.Next(from.UTC())
		if next.IsZero() {
			return time.Time{}, false
		}
		// window is [start, end)
		if t.spec.EndAt != nil && !next.Before(t.spec.EndAt.UTC()) {
			return time.Time{}, false
		}
		return next, true
	}

	return time.Time{}, false
}

// cronExpr renders cron fields into the standard 5-field expression,
// unset fields mean "any"
func cronExpr(cf *domain.CronFields) string {
	field := func(s string) string {
		if s == "" {
			return "*"
		}
		return s
	}
	return fmt.Sprintf("%s %s %s %s %s",
		field(cf.Minute), field(cf.Hour), field(cf.DayOfMonth), field(cf.Month), field(cf.DayOfWeek))
}
