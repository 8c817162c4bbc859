package tui

import (
	"fmt"
	"io"

	"schgen/pkg/exporter"
	"schgen/pkg/record"
)

func (s *session) runSubjectsTUI() error {
	res, err := s.catalogue()
	if err != nil {
		return err
	}

	query, err := s.selectQuery(sortedPrograms(res.Directory.Programs()))
	if err != nil {
		return err
	}
	courses := record.Filter(res.Courses, query)
	if len(courses) == 0 {
		fmt.Println(errorStyle.Render("No courses match the selection!"))
		return nil
	}

	outputFile, err := s.askOutputFile("Output file name", "subjects.json")
	if err != nil {
		return err
	}
	err = exporter.WriteFile(outputFile, func(w io.Writer) error {
		return exporter.WriteSubjects(w, s.encoder(), courses)
	})
	if err != nil {
		return fmt.Errorf("failed to write subjects: %w", err)
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nSuccess! Wrote %d subjects to %s", len(courses), outputFile)))
	return nil
}

func (s *session) runStudiumsTUI() error {
	res, err := s.catalogue()
	if err != nil {
		return err
	}
	programs := res.Directory.Programs()

	outputFile, err := s.askOutputFile("Output file name", "studiums.json")
	if err != nil {
		return err
	}
	err = exporter.WriteFile(outputFile, func(w io.Writer) error {
		return exporter.WriteStudiums(w, s.encoder(), programs)
	})
	if err != nil {
		return fmt.Errorf("failed to write studiums: %w", err)
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nSuccess! Wrote %d study programs to %s", len(programs), outputFile)))
	return nil
}
