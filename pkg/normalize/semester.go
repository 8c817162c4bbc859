package normalize

import "strings"

// Semester is the term a course is taught in.
type Semester int

const (
	SemesterUnset Semester = iota
	SemesterWinter
	SemesterSummer
)

// Known reports whether the semester was recognized on the page.
func (s Semester) Known() bool {
	return s == SemesterWinter || s == SemesterSummer
}

// Code is the number written to the subjects document: 0 for winter,
// 1 for summer. ok is false for an unset semester.
func (s Semester) Code() (code int, ok bool) {
	switch s {
	case SemesterWinter:
		return 0, true
	case SemesterSummer:
		return 1, true
	default:
		return 0, false
	}
}

func (s Semester) String() string {
	switch s {
	case SemesterWinter:
		return "winter"
	case SemesterSummer:
		return "summer"
	default:
		return "unset"
	}
}

// ParseSemester reads the semester annotation ("letní semestr",
// "zimní semestr"). Unrecognized text leaves the semester unset.
func ParseSemester(s string) Semester {
	t := Text(s)
	switch {
	case strings.Contains(t, "letní"):
		return SemesterSummer
	case strings.Contains(t, "zimní"):
		return SemesterWinter
	default:
		return SemesterUnset
	}
}
