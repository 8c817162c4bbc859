package schedule

import "fmt"

// HoursPerDay is the width of one weekday in the slot numbering.
const HoursPerDay = 24

// Weekday is a teaching day, Monday being zero.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
)

var weekdayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

func (d Weekday) String() string {
	if d < Monday || d > Friday {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// Base returns the first slot code of the day.
func (d Weekday) Base() int {
	return int(d) * HoursPerDay
}

// Slots returns one slot code per hour in [start, end), each being
// day*24 + hour - 1. When end <= start the result is empty.
func Slots(day Weekday, start, end int) []int {
	slots := []int{}
	base := day.Base()
	for h := start; h < end; h++ {
		slots = append(slots, base+h-1)
	}
	return slots
}

// FromHours encodes a schedule row from its start hour and the hour token
// of its end time. The end token is inclusive on the page ("9:50" ends in
// hour 9), so it is advanced by one before encoding.
func FromHours(day Weekday, startHour, endHourToken int) []int {
	return Slots(day, startHour, endHourToken+1)
}

// Decode splits a slot code into its weekday and hour of day.
func Decode(slot int) (Weekday, int) {
	return Weekday(slot / HoursPerDay), slot%HoursPerDay + 1
}

// Span is a run of consecutive hours on one day, End being exclusive.
type Span struct {
	Day   Weekday
	Start int
	End   int
}

// Spans groups slot codes into runs of consecutive hours. Input order is
// kept; a gap or a change of day starts a new run.
func Spans(slots []int) []Span {
	var spans []Span
	for _, slot := range slots {
		day, hour := Decode(slot)
		if n := len(spans); n > 0 {
			last := &spans[n-1]
			if last.Day == day && last.End == hour {
				last.End++
				continue
			}
		}
		spans = append(spans, Span{Day: day, Start: hour, End: hour + 1})
	}
	return spans
}

func (s Span) String() string {
	return fmt.Sprintf("%s %d:00-%d:00", s.Day, s.Start, s.End)
}
