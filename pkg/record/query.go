package record

import (
	"slices"

	"schgen/pkg/membership"
	"schgen/pkg/normalize"
)

// AnyYear is the year label of memberships open to every study year.
const AnyYear = "libovolný ročník"

// Query selects the courses of one program. Empty fields match anything;
// Semester matches anything while unset.
type Query struct {
	Program  string
	Focus    string
	Year     string
	Semester normalize.Semester
}

// Matches reports whether any of the course's memberships satisfies q.
func (q Query) Matches(c Course) bool {
	if q.Semester.Known() && c.Semester != q.Semester {
		return false
	}
	if q.Program == "" {
		return true
	}
	return slices.ContainsFunc(c.Memberships, q.matchesMembership)
}

func (q Query) matchesMembership(m membership.Membership) bool {
	if m.ProgramName != q.Program {
		return false
	}
	if q.Year != "" && m.Year != q.Year && m.Year != AnyYear {
		return false
	}
	if q.Focus != "" && !slices.Contains(m.Focuses, q.Focus) {
		return false
	}
	return true
}

// Filter keeps the courses matching q in their original order.
func Filter(courses []Course, q Query) []Course {
	out := make([]Course, 0, len(courses))
	for _, c := range courses {
		if q.Matches(c) {
			out = append(out, c)
		}
	}
	return out
}
