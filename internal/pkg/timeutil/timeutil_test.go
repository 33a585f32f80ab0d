package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupKolkata(t *testing.T) {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	SetLocation(loc)
	t.Cleanup(func() { SetLocation(time.UTC) })
}

func TestParseCivilNaiveFormats(t *testing.T) {
	setupKolkata(t)

	tests := []string{
		"2025-11-07 01:24:34",
		"2025-11-07T01:24:34",
		"2025-11-07T01:24:34.000000",
	}

	for _, raw := range tests {
		got, err := ParseCivil(raw)
		if err != nil {
			t.Fatalf("ParseCivil(%q): %v", raw, err)
		}
		// Naive values are civil wall-clock time, not UTC.
		if got.Hour() != 1 || got.Minute() != 24 {
			t.Fatalf("ParseCivil(%q) = %v, want 01:24 wall clock", raw, got)
		}
		if got.Location() != Location() {
			t.Fatalf("ParseCivil(%q) location = %v, want civil zone", raw, got.Location())
		}
	}
}

func TestParseCivilConvertsOffsets(t *testing.T) {
	setupKolkata(t)

	got, err := ParseCivil("2025-11-07T00:00:00Z")
	require.NoError(t, err)
	// UTC midnight is 05:30 in Asia/Kolkata.
	assert.Equal(t, 5, got.Hour())
	assert.Equal(t, 30, got.Minute())
}

func TestParseCivilDateOnly(t *testing.T) {
	setupKolkata(t)

	got, err := ParseCivil("2025-11-01")
	require.NoError(t, err)
	assert.Equal(t, time.November, got.Month())
	assert.Equal(t, 1, got.Day())
}

func TestParseCivilRejectsGarbage(t *testing.T) {
	if _, err := ParseCivil("not a timestamp"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestDisplayDate(t *testing.T) {
	setupKolkata(t)

	utc := time.Date(2025, 11, 6, 20, 0, 0, 0, time.UTC)
	// 20:00 UTC is already 01:30 next day in Kolkata.
	assert.Equal(t, "07 Nov 2025", DisplayDate(utc))
}

func TestFormatISOPtr(t *testing.T) {
	setupKolkata(t)

	assert.Nil(t, FormatISOPtr(nil))

	zero := time.Time{}
	assert.Nil(t, FormatISOPtr(&zero))

	ts := time.Date(2025, 11, 7, 0, 0, 0, 0, time.UTC)
	got := FormatISOPtr(&ts)
	require.NotNil(t, got)
	assert.Equal(t, "2025-11-07T05:30:00+05:30", *got)
}
