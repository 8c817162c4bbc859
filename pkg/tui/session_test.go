package tui

import (
	"reflect"
	"testing"

	"schgen/pkg/membership"
	"schgen/pkg/normalize"
	"schgen/pkg/record"
)

func TestSortedPrograms(t *testing.T) {
	programs := []record.Program{
		{Name: "MITAI", Type: membership.Master},
		{Name: "DIT", Type: membership.Doctoral},
		{Name: "IT-BC-3", Type: membership.Bachelor},
		{Name: "BIT", Type: membership.Bachelor},
	}

	var names []string
	for _, p := range sortedPrograms(programs) {
		names = append(names, p.Name)
	}
	if want := []string{"BIT", "IT-BC-3", "MITAI", "DIT"}; !reflect.DeepEqual(names, want) {
		t.Errorf("got %v, want %v", names, want)
	}
	if programs[0].Name != "MITAI" {
		t.Errorf("input slice was reordered")
	}
}

func TestMandatoryIn(t *testing.T) {
	course := record.NewCourse("Základy programování", "IZP", normalize.SemesterWinter, []membership.Membership{
		{ProgramName: "BIT", Obligation: membership.Obligation{Kind: membership.Mandatory}},
		{ProgramName: "MITAI", Obligation: membership.Obligation{Kind: membership.Elective}},
	}, nil)

	if !mandatoryIn(course, "BIT") {
		t.Errorf("expected IZP to be mandatory in BIT")
	}
	if mandatoryIn(course, "MITAI") {
		t.Errorf("expected IZP to be elective in MITAI")
	}
}

func TestGetCustomTheme(t *testing.T) {
	if GetCustomTheme("#FF00FF") == nil {
		t.Fatal("expected a theme")
	}
}
