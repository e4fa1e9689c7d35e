// Package timeutil canonicalizes timestamps to UTC and converts between a
// user's zone and the UTC form all scheduling code operates on.
package timeutil

import (
	"fmt"
	"time"
)

// displayFormat is the human-readable form used for user-facing timestamps
const displayFormat = "02.01.2006 15:04"

// EnsureUTC converts t to UTC. Nil stays nil.
func EnsureUTC(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// ToUTC interprets wall-clock values of t as local time in the given IANA
// zone and returns the equivalent UTC instant.
func ToUTC(t time.Time, zone string) (time.Time, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("load zone %q: %w", zone, err)
	}
	local := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
	return local.UTC(), nil
}

// FromUTC converts a UTC instant to the given IANA zone.
func FromUTC(t time.Time, zone string) (time.Time, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return time.Time{}, fmt.Errorf("load zone %q: %w", zone, err)
	}
	return t.UTC().In(loc), nil
}

// FormatInZone renders t in the given zone as "dd.mm.yyyy hh:mm". An unknown
// zone falls back to UTC with an explicit marker instead of failing.
func FormatInZone(t time.Time, zone string) string {
	local, err := FromUTC(t, zone)
	if err != nil {
		return t.UTC().Format(displayFormat) + " (UTC)"
	}
	return local.Format(displayFormat)
}
