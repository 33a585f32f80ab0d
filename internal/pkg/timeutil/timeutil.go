// Package timeutil normalizes timestamps into the single civil timezone used
// for all human-facing display. Invoice number prefixes are UTC-based and do
// not go through this package.
package timeutil

import (
	"log"
	"strings"
	"time"

	"github.com/AKM-dv/servicemate/internal/pkg/env"
)

const DefaultZone = "Asia/Kolkata"

// displayDateFormat is the fixed "day month-name year" form on documents.
const displayDateFormat = "02 Jan 2006"

var civilLocation = time.UTC

// Setup resolves the civil timezone from TIMEZONE. Called once at process
// start; the zone is never reloaded.
func Setup() {
	name := env.GetEnv("TIMEZONE", DefaultZone)
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("Unknown TIMEZONE %q, falling back to %s: %v", name, DefaultZone, err)
		loc, err = time.LoadLocation(DefaultZone)
		if err != nil {
			loc = time.UTC
		}
	}
	civilLocation = loc
}

// SetLocation pins the civil zone directly. Used by tests.
func SetLocation(loc *time.Location) {
	civilLocation = loc
}

func Location() *time.Location {
	return civilLocation
}

func Now() time.Time {
	return time.Now().In(civilLocation)
}

// ToCivil converts an absolute time into the civil zone.
func ToCivil(t time.Time) time.Time {
	return t.In(civilLocation)
}

// civilLayouts are tried in order against string timestamps. Layouts without
// an offset are interpreted as civil wall-clock time.
var civilLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999",
	"2006-01-02",
}

// ParseCivil parses an arbitrary timestamp representation into the civil
// zone. Naive values are taken as civil wall-clock time; offset-carrying
// values are converted.
func ParseCivil(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range civilLayouts {
		if t, err := time.ParseInLocation(layout, raw, civilLocation); err == nil {
			return t, nil
		}
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(civilLocation), nil
}

// DisplayDate renders the fixed document date form, e.g. "07 Nov 2025".
func DisplayDate(t time.Time) string {
	return ToCivil(t).Format(displayDateFormat)
}

// FormatISO renders an ISO-8601 timestamp in the civil zone for API output.
func FormatISO(t time.Time) string {
	return ToCivil(t).Format(time.RFC3339)
}

// FormatISOPtr is FormatISO for nullable timestamps.
func FormatISOPtr(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := FormatISO(*t)
	return &s
}

// FormatDatePtr renders a date-only value, e.g. billing months and paid-on
// dates, as YYYY-MM-DD in the civil zone.
func FormatDatePtr(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := ToCivil(*t).Format("2006-01-02")
	return &s
}
