package exporter

import (
	"io"

	"schgen/pkg/canon"
	"schgen/pkg/membership"
	"schgen/pkg/record"
)

// Separators between the entries of the two top-level documents.
const (
	SubjectSeparator = ",\n"
	StudiumSeparator = ","
)

// SubjectValue builds the {"subject":{...}} entry of one course.
func SubjectValue(c record.Course) canon.Value {
	studiums := make([]canon.Value, 0, len(c.Memberships))
	for _, m := range c.Memberships {
		studiums = append(studiums, membershipValue(m))
	}

	terms := make([]canon.Value, 0, len(c.Terms))
	for _, t := range c.Terms {
		terms = append(terms, termValue(t))
	}

	var semester canon.Value = canon.Null{}
	if code, ok := c.Semester.Code(); ok {
		semester = canon.Int(code)
	}

	return canon.Obj("subject", false,
		canon.Arr("studiums", studiums...),
		canon.Field("semester", semester),
		canon.Prop("name", c.Name),
		canon.Prop("code", c.Code),
		canon.Arr("terms", terms...),
	)
}

func membershipValue(m membership.Membership) canon.Value {
	return canon.Obj("", true,
		canon.Prop("studiumName", m.ProgramName),
		canon.Strings("studiumFocuses", m.Focuses),
		canon.Prop("year", m.Year),
		canon.Field("obligatory", canon.Int(m.Obligation.Code())),
	)
}

func termValue(t record.Term) canon.Value {
	return canon.Obj("", true,
		canon.Prop("type", t.Kind),
		canon.Prop("teachingAt", t.WeeklyPattern),
		canon.Ints("times", t.Slots),
		canon.Prop("classroom", t.Classroom),
		canon.Prop("teacher", t.Teacher),
	)
}

// StudiumValue builds the {"studium":{...}} entry of one program.
func StudiumValue(p record.Program) canon.Value {
	return canon.Obj("studium", false,
		canon.Prop("name", p.Name),
		canon.Strings("studiumFocuses", p.Focuses),
		canon.Field("type", canon.Int(int(p.Type))),
	)
}

// WriteSubjects writes the {"subjects":[...]} document.
func WriteSubjects(w io.Writer, enc canon.Encoder, courses []record.Course) error {
	entries := make([]canon.Value, 0, len(courses))
	for _, c := range courses {
		entries = append(entries, SubjectValue(c))
	}
	return enc.WriteList(w, "subjects", SubjectSeparator, entries)
}

// WriteStudiums writes the {"studiums":[...]} document.
func WriteStudiums(w io.Writer, enc canon.Encoder, programs []record.Program) error {
	entries := make([]canon.Value, 0, len(programs))
	for _, p := range programs {
		entries = append(entries, StudiumValue(p))
	}
	return enc.WriteList(w, "studiums", StudiumSeparator, entries)
}
