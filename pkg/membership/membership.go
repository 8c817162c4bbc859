package membership

import (
	"errors"
	"fmt"
	"strings"

	"schgen/pkg/normalize"
)

// Marker opens every item of a membership list.
const Marker = "Program "

var focusPrefixes = []string{"obor ", "specializace "}

// ErrMalformedItem is reported for a list item that cannot be split into
// program, focuses, year and obligation.
var ErrMalformedItem = errors.New("malformed membership item")

// Membership ties a course to a study program.
type Membership struct {
	ProgramName string
	Focuses     []string
	Year        string
	Obligation  Obligation
}

// Status tells how a membership list was handled.
type Status int

const (
	Found Status = iota
	NoSection
	ParseError
)

func (s Status) String() string {
	switch s {
	case Found:
		return "found"
	case NoSection:
		return "no section"
	default:
		return "parse error"
	}
}

// Result is the outcome of parsing one course's membership list.
type Result struct {
	Status      Status
	Memberships []Membership
	Err         error
}

// List returns the parsed memberships, or an empty list unless the
// section was found and parsed completely.
func (r Result) List() []Membership {
	if r.Status != Found || r.Memberships == nil {
		return []Membership{}
	}
	return r.Memberships
}

// Parse reads the items of the last list in a course detail section.
// found is false when the page has no such list. A list whose first item
// does not start with the marker is not a membership list.
func Parse(items []string, found bool) Result {
	if !found || len(items) == 0 {
		return Result{Status: NoSection}
	}
	if !strings.HasPrefix(items[0], Marker) {
		return Result{Status: NoSection}
	}

	memberships := make([]Membership, 0, len(items))
	for i, item := range items {
		m, err := ParseItem(item)
		if err != nil {
			return Result{Status: ParseError, Err: fmt.Errorf("item %d: %w", i, err)}
		}
		memberships = append(memberships, m)
	}
	return Result{Status: Found, Memberships: memberships}
}

// ParseItem parses one "Program X, obor Y, ..., year, obligation" item.
// Every line strictly between the program and the year is a focus.
func ParseItem(item string) (Membership, error) {
	lines := normalize.SplitDescriptor(item)
	if len(lines) < 2 {
		return Membership{}, fmt.Errorf("%w: %q", ErrMalformedItem, item)
	}

	focuses := []string{}
	for i := 1; i < len(lines)-2; i++ {
		focuses = append(focuses, normalize.StripPrefixes(strings.TrimSpace(lines[i]), focusPrefixes...))
	}

	return Membership{
		ProgramName: normalize.StripPrefixes(strings.TrimSpace(lines[0]), Marker),
		Focuses:     focuses,
		Year:        strings.TrimSpace(lines[len(lines)-2]),
		Obligation:  ClassifyObligation(lines[len(lines)-1]),
	}, nil
}
