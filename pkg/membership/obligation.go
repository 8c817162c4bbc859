package membership

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ObligationKind says how binding a course is within a program.
type ObligationKind int

const (
	Unknown ObligationKind = iota
	Mandatory
	Elective
	ConditionallyMandatory
)

func (k ObligationKind) String() string {
	switch k {
	case Mandatory:
		return "mandatory"
	case Elective:
		return "elective"
	case ConditionallyMandatory:
		return "conditionally mandatory"
	default:
		return "unknown"
	}
}

// Obligation is a tagged value; Group is only meaningful for
// ConditionallyMandatory.
type Obligation struct {
	Kind  ObligationKind
	Group rune
}

// Code is the numeric form written to the subjects document: 0 mandatory,
// 1 elective, the group's code point when conditionally mandatory and -1
// when unknown.
func (o Obligation) Code() int {
	switch o.Kind {
	case Mandatory:
		return 0
	case Elective:
		return 1
	case ConditionallyMandatory:
		return int(o.Group)
	default:
		return -1
	}
}

func (o Obligation) String() string {
	if o.Kind == ConditionallyMandatory {
		return fmt.Sprintf("%s (%c)", o.Kind, o.Group)
	}
	return o.Kind.String()
}

const (
	tokenMandatory   = "povinný"
	tokenConditional = "povinně volitelný"
	tokenElective    = "volitelný"
)

// ClassifyObligation reads the last line of a membership item. The
// conditional group is the last character of the trimmed line.
func ClassifyObligation(line string) Obligation {
	line = strings.TrimSpace(line)
	switch {
	case strings.Contains(line, tokenMandatory):
		return Obligation{Kind: Mandatory}
	case strings.Contains(line, tokenConditional):
		group, _ := utf8.DecodeLastRuneInString(line)
		return Obligation{Kind: ConditionallyMandatory, Group: group}
	case strings.Contains(line, tokenElective):
		return Obligation{Kind: Elective}
	default:
		return Obligation{Kind: Unknown}
	}
}
