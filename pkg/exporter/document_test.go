package exporter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"schgen/pkg/canon"
	"schgen/pkg/membership"
	"schgen/pkg/normalize"
	"schgen/pkg/record"
)

func TestSubjectValueWithoutMembershipsOrTerms(t *testing.T) {
	cases := []struct {
		semester normalize.Semester
		code     int
	}{
		{normalize.SemesterWinter, 0},
		{normalize.SemesterSummer, 1},
	}
	for _, c := range cases {
		course := record.NewCourse("Diskrétní matematika", "IDM", c.semester, nil, nil)

		got, err := canon.Encoder{}.Marshal(SubjectValue(course))
		if err != nil {
			t.Fatalf("Marshal failed: %v", err)
		}
		want := fmt.Sprintf(`{"subject":{"studiums":[],"semester":%d,"name":"Diskrétní matematika","code":"IDM","terms":[]}}`, c.code)
		if got != want {
			t.Errorf("got %s\nwant %s", got, want)
		}
	}
}

func TestSubjectValueUnsetSemesterIsNull(t *testing.T) {
	course := record.NewCourse("X", "IXX", normalize.SemesterUnset, nil, nil)
	got, err := canon.Encoder{}.Marshal(SubjectValue(course))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"subject":{"studiums":[],"semester":null,"name":"X","code":"IXX","terms":[]}}`
	if got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
}

func TestSubjectValueFull(t *testing.T) {
	course := record.NewCourse("Základy programování", "IZP", normalize.SemesterWinter,
		[]membership.Membership{
			{ProgramName: "BIT", Focuses: []string{}, Year: "1. ročník", Obligation: membership.Obligation{Kind: membership.Mandatory}},
			{ProgramName: "MITAI", Focuses: []string{"NBIO", "NSEC"}, Year: "libovolný ročník", Obligation: membership.Obligation{Kind: membership.ConditionallyMandatory, Group: 'A'}},
			{ProgramName: "MIT", Focuses: []string{}, Year: "2. ročník", Obligation: membership.Obligation{Kind: membership.Unknown}},
		},
		[]record.Term{
			{Kind: "přednáška", WeeklyPattern: "výuky", Classroom: "D105", Slots: []int{7, 8}, Teacher: "Smrčka"},
			{Kind: "seminář", WeeklyPattern: "výuky", Classroom: "A112", Slots: []int{}, Teacher: ""},
		},
	)

	got, err := canon.Encoder{}.Marshal(SubjectValue(course))
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"subject":{"studiums":[` +
		`{"studiumName":"BIT","studiumFocuses":[],"year":"1. ročník","obligatory":0},` +
		`{"studiumName":"MITAI","studiumFocuses":["NBIO","NSEC"],"year":"libovolný ročník","obligatory":65},` +
		`{"studiumName":"MIT","studiumFocuses":[],"year":"2. ročník","obligatory":-1}` +
		`],"semester":0,"name":"Základy programování","code":"IZP","terms":[` +
		`{"type":"přednáška","teachingAt":"výuky","times":[7,8],"classroom":"D105","teacher":"Smrčka"},` +
		`{"type":"seminář","teachingAt":"výuky","times":[],"classroom":"A112","teacher":""}` +
		`]}}`
	if got != want {
		t.Errorf("got  %s\nwant %s", got, want)
	}
	if !json.Valid([]byte(got)) {
		t.Errorf("subject is not a valid document")
	}
}

func TestWriteSubjects(t *testing.T) {
	courses := []record.Course{
		record.NewCourse("A", "IZP", normalize.SemesterWinter, nil, nil),
		record.NewCourse("B", "IDM", normalize.SemesterSummer, nil, nil),
	}

	var buf bytes.Buffer
	if err := WriteSubjects(&buf, canon.Encoder{}, courses); err != nil {
		t.Fatalf("WriteSubjects failed: %v", err)
	}
	want := "{\n\"subjects\":[\n" +
		`{"subject":{"studiums":[],"semester":0,"name":"A","code":"IZP","terms":[]}}` + ",\n" +
		`{"subject":{"studiums":[],"semester":1,"name":"B","code":"IDM","terms":[]}}` +
		"\n]}\n"
	if buf.String() != want {
		t.Errorf("got %q\nwant %q", buf.String(), want)
	}
	if !json.Valid(buf.Bytes()) {
		t.Errorf("subjects document is not valid")
	}
}

func TestWriteStudiums(t *testing.T) {
	dir := record.NewDirectory()
	dir.Add([]membership.Membership{{ProgramName: "BIT", Focuses: []string{"IZP"}}})
	dir.Add([]membership.Membership{
		{ProgramName: "BIT", Focuses: []string{"IZP", "IDM"}},
		{ProgramName: "DIT", Focuses: []string{}},
	})

	var buf bytes.Buffer
	if err := WriteStudiums(&buf, canon.Encoder{}, dir.Programs()); err != nil {
		t.Fatalf("WriteStudiums failed: %v", err)
	}
	want := "{\n\"studiums\":[\n" +
		`{"studium":{"name":"BIT","studiumFocuses":["IZP","IDM"],"type":0}},` +
		`{"studium":{"name":"DIT","studiumFocuses":[],"type":2}}` +
		"\n]}\n"
	if buf.String() != want {
		t.Errorf("got %q\nwant %q", buf.String(), want)
	}
}

func TestWriteSubjectsStrict(t *testing.T) {
	courses := []record.Course{
		record.NewCourse(`Seminář "Go"`, "ISG", normalize.SemesterWinter, nil, nil),
	}

	var buf bytes.Buffer
	err := WriteSubjects(&buf, canon.Encoder{Strict: true}, courses)
	if !errors.Is(err, canon.ErrQuoteCollision) {
		t.Fatalf("expected ErrQuoteCollision, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected nothing to be written on collision, got %q", buf.String())
	}

	buf.Reset()
	if err := WriteSubjects(&buf, canon.Encoder{}, courses); err != nil {
		t.Fatalf("WriteSubjects failed: %v", err)
	}
	if !json.Valid(buf.Bytes()) {
		t.Errorf("escaped document is not valid: %s", buf.String())
	}
}
