package schedule

import "strings"

// Parity tells which weeks of the semester a term is taught in.
type Parity int

const (
	EveryWeek Parity = iota
	EvenWeeks
	OddWeeks
)

func (p Parity) String() string {
	switch p {
	case EvenWeeks:
		return "even"
	case OddWeeks:
		return "odd"
	default:
		return "every"
	}
}

// Interval is the recurrence interval in weeks.
func (p Parity) Interval() int {
	if p == EveryWeek {
		return 1
	}
	return 2
}

// ParseParity reads the weekly pattern column ("výuky", "sudý", "lichý").
// Anything it does not recognize is taught every week.
func ParseParity(pattern string) Parity {
	p := strings.ToLower(pattern)
	switch {
	case strings.Contains(p, "lich"):
		return OddWeeks
	case strings.Contains(p, "sud"):
		return EvenWeeks
	default:
		return EveryWeek
	}
}
