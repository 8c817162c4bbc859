package membership

import (
	"fmt"
	"strings"
)

// ProgramType is the degree level of a study program.
type ProgramType int

const (
	Bachelor ProgramType = iota
	Master
	Doctoral
)

func (t ProgramType) String() string {
	switch t {
	case Bachelor:
		return "bachelor"
	case Doctoral:
		return "doctoral"
	default:
		return "master"
	}
}

// Classify derives the degree level from the program's short name. The
// faculty's naming is irregular, so the tokens are listed explicitly.
func Classify(name string) ProgramType {
	switch {
	case name == "BIT" || strings.Contains(name, "IT-BC"):
		return Bachelor
	case strings.Contains(name, "DIT") || name == "VTI-DR-4":
		return Doctoral
	default:
		return Master
	}
}

// Length is the regular number of study years.
func (t ProgramType) Length() int {
	switch t {
	case Bachelor:
		return 3
	case Doctoral:
		return 4
	default:
		return 2
	}
}

// Years lists the year labels used on course pages for this level.
func (t ProgramType) Years() []string {
	years := make([]string, 0, t.Length())
	for i := 1; i <= t.Length(); i++ {
		years = append(years, fmt.Sprintf("%d. ročník", i))
	}
	return years
}
