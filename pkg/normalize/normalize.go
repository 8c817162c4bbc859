package normalize

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"schgen/pkg/schedule"

	"golang.org/x/text/unicode/norm"
)

// ErrMalformedField is returned when a fragment does not have the shape its
// field requires. It aborts processing of the affected document.
var ErrMalformedField = errors.New("malformed field")

// FieldError records which field failed to parse and on what input.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Err != nil && !errors.Is(e.Err, ErrMalformedField) {
		return fmt.Sprintf("%s: %s %q: %v", ErrMalformedField, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("%s: %s %q", ErrMalformedField, e.Field, e.Value)
}

func (e *FieldError) Unwrap() error { return ErrMalformedField }

func malformed(field, value string, err error) error {
	return &FieldError{Field: field, Value: value, Err: err}
}

// Text puts a fragment into NFC and trims surrounding whitespace.
func Text(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

// StripPrefixes removes every occurrence of each label token from s.
func StripPrefixes(s string, prefixes ...string) string {
	for _, p := range prefixes {
		s = strings.ReplaceAll(s, p, "")
	}
	return s
}

// SplitDescriptor splits a comma-delimited descriptor line into its
// ordered, untrimmed tokens.
func SplitDescriptor(s string) []string {
	return strings.Split(norm.NFC.String(s), ",")
}

var weekdays = map[string]schedule.Weekday{
	"Po": schedule.Monday,
	"Út": schedule.Tuesday,
	"St": schedule.Wednesday,
	"Čt": schedule.Thursday,
	"Pá": schedule.Friday,
}

// Weekday parses the day abbreviation of a schedule row.
func Weekday(s string) (schedule.Weekday, error) {
	d, ok := weekdays[Text(s)]
	if !ok {
		return 0, malformed("weekday", s, nil)
	}
	return d, nil
}

// Hours a schedule row may start or end in. Hour 0 would encode into the
// previous day's last slot.
const (
	MinHour = 1
	MaxHour = 23
)

// Hour returns the hour token of a "H:MM" time, i.e. everything before
// the first colon.
func Hour(s string) (int, error) {
	t := Text(s)
	if i := strings.Index(t, ":"); i >= 0 {
		t = t[:i]
	}
	h, err := strconv.Atoi(strings.TrimSpace(t))
	if err != nil {
		return 0, malformed("hour", s, err)
	}
	if h < MinHour || h > MaxHour {
		return 0, malformed("hour", s, fmt.Errorf("hour %d out of range %d-%d", h, MinHour, MaxHour))
	}
	return h, nil
}
