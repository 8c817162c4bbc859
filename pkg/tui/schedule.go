package tui

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"schgen/pkg/exporter"
	"schgen/pkg/membership"
	"schgen/pkg/record"

	"github.com/charmbracelet/huh"
)

// runScheduleTUI runs the interactive flow for selecting a program's courses and exporting a timetable
func (s *session) runScheduleTUI() error {
	fmt.Println(accentStyle.Render("Welcome to the schgen timetable exporter!"))

	res, err := s.catalogue()
	if err != nil {
		return err
	}

	query, err := s.selectQuery(sortedPrograms(res.Directory.Programs()))
	if err != nil {
		return err
	}
	courses := record.Filter(res.Courses, query)

	var courseOptions []huh.Option[string]
	for _, c := range courses {
		if len(c.Terms) == 0 {
			continue
		}
		// Mandatory courses of the chosen program start selected.
		opt := huh.NewOption(fmt.Sprintf("%s %s", c.Code, c.Name), c.Code).
			Selected(query.Program == "" || mandatoryIn(c, query.Program))
		courseOptions = append(courseOptions, opt)
	}

	if len(courseOptions) == 0 {
		fmt.Println(errorStyle.Render("No scheduled courses found for the selection!"))
		return nil
	}

	var selectedCodes []string
	var startText string
	outputFile := "schedule.ics"

	coursesForm := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select courses to export").
				Description("Space = toggle, Enter = confirm. Start typing to filter.").
				Options(courseOptions...).
				Value(&selectedCodes).
				Filterable(true).
				Height(12),

			huh.NewInput().
				Title("First day of the teaching period").
				Placeholder("YYYY-MM-DD").
				Value(&startText).
				Validate(func(v string) error {
					if _, err := time.Parse(time.DateOnly, v); err != nil {
						return fmt.Errorf("use the YYYY-MM-DD format")
					}
					return nil
				}),

			huh.NewInput().
				Title("Output file name").
				Value(&outputFile).
				Validate(func(v string) error {
					if v == "" {
						return fmt.Errorf("file name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := coursesForm.Run(); err != nil {
		return err
	}

	if !strings.HasSuffix(outputFile, ".ics") {
		outputFile += ".ics"
	}
	if !filepath.IsAbs(outputFile) && s.cfg.OutputDir != "" {
		outputFile = filepath.Join(s.cfg.OutputDir, outputFile)
	}
	start, err := time.Parse(time.DateOnly, startText)
	if err != nil {
		return err
	}

	selected := make(map[string]bool, len(selectedCodes))
	for _, code := range selectedCodes {
		selected[code] = true
	}
	var filteredCourses []record.Course
	for _, c := range courses {
		if selected[c.Code] {
			filteredCourses = append(filteredCourses, c)
		}
	}

	err = exporter.WriteFile(outputFile, func(w io.Writer) error {
		return exporter.GenerateICS(filteredCourses, exporter.CalendarOptions{SemesterStart: start}, w)
	})
	if err != nil {
		return fmt.Errorf("failed to generate ICS: %w", err)
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nSuccess! Exported %d courses to %s", len(filteredCourses), outputFile)))
	return nil
}

func mandatoryIn(c record.Course, program string) bool {
	for _, m := range c.Memberships {
		if m.ProgramName == program && m.Obligation.Kind == membership.Mandatory {
			return true
		}
	}
	return false
}
