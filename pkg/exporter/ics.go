package exporter

import (
	"fmt"
	"io"
	"time"

	"schgen/pkg/record"
	"schgen/pkg/schedule"

	ics "github.com/arran4/golang-ical"
)

// TeachingWeeks is the length of a semester's teaching period.
const TeachingWeeks = 13

// CalendarOptions tunes the recurring events of GenerateICS.
type CalendarOptions struct {
	// SemesterStart is any day of the first teaching week.
	SemesterStart time.Time
	// Weeks defaults to TeachingWeeks.
	Weeks int
	// Location defaults to Europe/Prague.
	Location *time.Location
}

// GenerateICS creates an ICS file from the courses' schedule terms and
// writes it to the provided writer. Each run of consecutive hours becomes
// one weekly (or fortnightly, for odd/even week terms) recurring event.
func GenerateICS(courses []record.Course, opts CalendarOptions, w io.Writer) error {
	loc := opts.Location
	if loc == nil {
		var err error
		loc, err = time.LoadLocation("Europe/Prague")
		if err != nil {
			return fmt.Errorf("could not load timezone: %w", err)
		}
	}
	weeks := opts.Weeks
	if weeks <= 0 {
		weeks = TeachingWeeks
	}
	monday := weekStart(opts.SemesterStart.In(loc))

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//schgen//course schedule//CS")

	now := time.Now()
	for _, c := range courses {
		for ti, t := range c.Terms {
			parity := schedule.ParseParity(t.WeeklyPattern)
			count := occurrences(parity, weeks)
			if count == 0 {
				continue
			}

			for si, span := range schedule.Spans(t.Slots) {
				day := monday.AddDate(0, 0, int(span.Day))
				if parity == schedule.EvenWeeks {
					day = day.AddDate(0, 0, 7)
				}
				start := time.Date(day.Year(), day.Month(), day.Day(), span.Start, 0, 0, 0, loc)
				end := time.Date(day.Year(), day.Month(), day.Day(), span.End, 0, 0, 0, loc)

				event := cal.AddEvent(fmt.Sprintf("%s-%d-%d@schgen", c.Code, ti, si))
				event.SetCreatedTime(now)
				event.SetDtStampTime(now)
				event.SetModifiedAt(now)
				event.SetStartAt(start)
				event.SetEndAt(end)
				event.SetSummary(fmt.Sprintf("%s %s", c.Code, t.Kind))
				event.SetLocation(t.Classroom)
				event.SetDescription(fmt.Sprintf("%s\nTeacher: %s\nWeeks: %s", c.Name, t.Teacher, t.WeeklyPattern))
				event.AddProperty(ics.ComponentPropertyRrule, fmt.Sprintf("FREQ=WEEKLY;INTERVAL=%d;COUNT=%d", parity.Interval(), count))
			}
		}
	}

	return cal.SerializeTo(w)
}

func weekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	d := t.AddDate(0, 0, -offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, t.Location())
}

func occurrences(p schedule.Parity, weeks int) int {
	switch p {
	case schedule.OddWeeks:
		return (weeks + 1) / 2
	case schedule.EvenWeeks:
		return weeks / 2
	default:
		return weeks
	}
}
