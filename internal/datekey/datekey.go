// Package datekey maps calendar days to the canonical YYYY-MM-DD strings that
// identify journal entries.
//
// Keys are derived from the local calendar date in a configured location, never
// by truncating a UTC timestamp. Every place a time becomes a key goes through
// ToDateKey so that "which entry is this" has exactly one answer.
package datekey

import (
	"fmt"
	"time"

	"github.com/julianstephens/myday/internal/constants"
)

// ToDateKey returns the key of the calendar day containing t in loc.
// A nil loc means time.Local.
func ToDateKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(constants.DateFormat)
}

// FromDateKey parses key and returns midnight of that day in loc.
func FromDateKey(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.Parse(constants.DateFormat, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date key %q: %w", key, err)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc), nil
}

// Valid reports whether key is a well-formed date key for a real calendar day.
func Valid(key string) bool {
	t, err := time.Parse(constants.DateFormat, key)
	if err != nil {
		return false
	}
	// time.Parse accepts some non-canonical spellings; require the exact form back
	return t.Format(constants.DateFormat) == key
}

// Shift returns the key days after key (negative moves backwards).
func Shift(key string, days int) (string, error) {
	t, err := FromDateKey(key, time.UTC)
	if err != nil {
		return "", err
	}
	return ToDateKey(t.AddDate(0, 0, days), time.UTC), nil
}

// Compare orders two keys chronologically. The fixed-width format makes
// lexical order and calendar order the same.
func Compare(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == constants.DefaultTimezone {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return loc, nil
}

// Today returns today's key in the named timezone.
func Today(timezone string) (string, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return "", err
	}
	return ToDateKey(time.Now(), loc), nil
}

// Resolve turns a user supplied date into a key. Empty means today; "yesterday"
// and "tomorrow" are relative to today in timezone; anything else must already
// be a valid key.
func Resolve(value, timezone string) (string, error) {
	today, err := Today(timezone)
	if err != nil {
		return "", err
	}
	switch value {
	case "", "today":
		return today, nil
	case "yesterday":
		return Shift(today, -1)
	case "tomorrow":
		return Shift(today, 1)
	}
	if !Valid(value) {
		return "", fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", value)
	}
	return value, nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	_, err := LoadLocation(timezone)
	return err == nil
}
