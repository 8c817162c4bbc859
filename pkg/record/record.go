package record

import (
	"schgen/pkg/membership"
	"schgen/pkg/normalize"
)

// Term is one row of a course's schedule table.
type Term struct {
	Kind          string
	WeeklyPattern string
	Classroom     string
	Slots         []int
	Teacher       string
}

// Course is everything extracted from one course page.
type Course struct {
	Name        string
	Code        string
	Semester    normalize.Semester
	Memberships []membership.Membership
	Terms       []Term
}

// NewCourse assembles a course. Nil lists become empty ones so that the
// record always renders its arrays.
func NewCourse(name, code string, semester normalize.Semester, memberships []membership.Membership, terms []Term) Course {
	if memberships == nil {
		memberships = []membership.Membership{}
	}
	if terms == nil {
		terms = []Term{}
	}
	return Course{
		Name:        name,
		Code:        code,
		Semester:    semester,
		Memberships: memberships,
		Terms:       terms,
	}
}

// Program is one entry of the program directory.
type Program struct {
	Name    string
	Focuses []string
	Type    membership.ProgramType
}
