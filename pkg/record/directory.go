package record

import (
	"slices"

	"schgen/pkg/membership"
)

// Directory accumulates the programs referenced by every course of a run.
// It is not safe for concurrent use; feed it from a single goroutine.
type Directory struct {
	order   []string
	focuses map[string][]string
}

// NewDirectory returns an empty accumulator.
func NewDirectory() *Directory {
	return &Directory{focuses: make(map[string][]string)}
}

// Add folds one course's memberships into the directory. Programs and
// focuses keep the order in which they were first seen.
func (d *Directory) Add(memberships []membership.Membership) {
	for _, m := range memberships {
		known, ok := d.focuses[m.ProgramName]
		if !ok {
			d.order = append(d.order, m.ProgramName)
			known = []string{}
		}
		for _, focus := range m.Focuses {
			if !slices.Contains(known, focus) {
				known = append(known, focus)
			}
		}
		d.focuses[m.ProgramName] = known
	}
}

// Len is the number of distinct programs seen so far.
func (d *Directory) Len() int {
	return len(d.order)
}

// Programs projects the accumulated state into directory records.
func (d *Directory) Programs() []Program {
	programs := make([]Program, 0, len(d.order))
	for _, name := range d.order {
		focuses := make([]string, len(d.focuses[name]))
		copy(focuses, d.focuses[name])
		programs = append(programs, Program{
			Name:    name,
			Focuses: focuses,
			Type:    membership.Classify(name),
		})
	}
	return programs
}
