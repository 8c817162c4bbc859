package extract

import (
	"fmt"

	"schgen/pkg/membership"
	"schgen/pkg/normalize"
	"schgen/pkg/pagereader"
	"schgen/pkg/record"
	"schgen/pkg/schedule"
)

// Selectors of the faculty's course detail page.
const (
	SelectorName           = "h1.b-detail__title"
	SelectorCode           = `span.b-detail__annot-item.font-bold[itemprop="courseCode"]`
	SelectorSemester       = `span.b-detail__annot-item.font-bold:contains("semestr")`
	SelectorSchedule       = "table#schedule"
	SelectorMembershipList = "div.b-detail__content > ul"
)

// Columns of the schedule table.
const (
	colKind = iota
	colWeeks
	colRoom
	colStart
	colEnd
	colTeacher = 7
)

// Administrative rows that never become terms.
var excludedKinds = map[string]bool{
	"ostatní": true,
	"zkouška": true,
}

// Course reads one course page. A malformed schedule row fails the whole
// page; a missing schedule or membership list only leaves that part empty.
func Course(r pagereader.Reader) (record.Course, membership.Result, error) {
	name, _ := r.FieldText(SelectorName)
	code, _ := r.FieldText(SelectorCode)
	semesterText, _ := r.FieldText(SelectorSemester)

	terms, err := Terms(r)
	if err != nil {
		return record.Course{}, membership.Result{}, fmt.Errorf("course %s: %w", normalize.Text(code), err)
	}

	res := Memberships(r)
	course := record.NewCourse(
		normalize.Text(name),
		normalize.Text(code),
		normalize.ParseSemester(semesterText),
		res.List(),
		terms,
	)
	return course, res, nil
}

// Memberships parses the page's program membership list.
func Memberships(r pagereader.Reader) membership.Result {
	items, found := r.ListItems(SelectorMembershipList)
	return membership.Parse(items, found)
}

// Terms reads the schedule table, skipping administrative rows.
func Terms(r pagereader.Reader) ([]record.Term, error) {
	terms := []record.Term{}
	for i, row := range r.Rows(SelectorSchedule) {
		kind, ok := r.CellText(row, colKind)
		if !ok {
			return nil, fmt.Errorf("schedule row %d: %w", i, &normalize.FieldError{Field: "kind", Value: ""})
		}
		kind = normalize.Text(kind)
		if excludedKinds[kind] {
			continue
		}

		term, err := termFromRow(r, row, kind)
		if err != nil {
			return nil, fmt.Errorf("schedule row %d: %w", i, err)
		}
		terms = append(terms, term)
	}
	return terms, nil
}

func termFromRow(r pagereader.Reader, row pagereader.Row, kind string) (record.Term, error) {
	cells := make(map[int]string, 4)
	for _, idx := range []int{colWeeks, colRoom, colStart, colEnd} {
		text, ok := r.CellText(row, idx)
		if !ok {
			return record.Term{}, &normalize.FieldError{Field: fmt.Sprintf("cell %d", idx), Value: ""}
		}
		cells[idx] = text
	}

	day, err := normalize.Weekday(r.HeaderText(row))
	if err != nil {
		return record.Term{}, err
	}
	start, err := normalize.Hour(cells[colStart])
	if err != nil {
		return record.Term{}, err
	}
	end, err := normalize.Hour(cells[colEnd])
	if err != nil {
		return record.Term{}, err
	}

	// Not every row names a teacher.
	teacher, _ := r.CellText(row, colTeacher)

	return record.Term{
		Kind:          kind,
		WeeklyPattern: normalize.Text(cells[colWeeks]),
		Classroom:     normalize.Text(cells[colRoom]),
		Slots:         schedule.FromHours(day, start, end),
		Teacher:       normalize.Text(teacher),
	}, nil
}
