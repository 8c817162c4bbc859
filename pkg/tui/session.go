package tui

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"

	"schgen/pkg/canon"
	"schgen/pkg/catalog"
	"schgen/pkg/config"
	"schgen/pkg/normalize"
	"schgen/pkg/record"

	"github.com/charmbracelet/huh"
)

// session carries one interactive run. The catalogue is read at most once.
type session struct {
	ctx    context.Context
	cfg    *config.AppConfig
	logger *slog.Logger
	result *catalog.Result
}

func newSession(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) *session {
	if cfg == nil {
		cfg = &config.AppConfig{}
		cfg.Normalize()
	}
	return &session{ctx: ctx, cfg: cfg, logger: logger}
}

func (s *session) encoder() canon.Encoder {
	return canon.Encoder{Strict: s.cfg.Strict}
}

func (s *session) catalogue() (*catalog.Result, error) {
	if s.result != nil {
		return s.result, nil
	}

	client, err := catalog.NewClient(s.cfg, s.logger)
	if err != nil {
		return nil, err
	}

	var res *catalog.Result
	err = Spin(s.ctx, "Reading the FIT course catalogue...", func(ctx context.Context) error {
		var runErr error
		res, runErr = catalog.Run(ctx, client, catalog.Options{
			ListPath: s.cfg.ListPath,
			Workers:  s.cfg.Workers,
			Logger:   s.logger,
		})
		return runErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read catalogue: %w", err)
	}
	if res == nil {
		return nil, fmt.Errorf("failed to read catalogue: no result")
	}
	if len(res.Skipped) > 0 {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Skipped %d unreadable course pages.", len(res.Skipped))))
	}
	s.result = res
	return res, nil
}

// selectQuery asks for a program and then narrows it by focus, year and
// semester. An empty program selects every course.
func (s *session) selectQuery(programs []record.Program) (record.Query, error) {
	var q record.Query

	programOptions := []huh.Option[string]{huh.NewOption("All courses", "")}
	for _, p := range programs {
		programOptions = append(programOptions, huh.NewOption(fmt.Sprintf("%s (%s)", p.Name, p.Type), p.Name))
	}

	var semester string
	programForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Select your study program").
				Description("Start typing to filter.").
				Options(programOptions...).
				Value(&q.Program).
				Filtering(true).
				Height(12),
			huh.NewSelect[string]().
				Title("Semester").
				Options(
					huh.NewOption("Both", ""),
					huh.NewOption("Winter", "winter"),
					huh.NewOption("Summer", "summer"),
				).
				Value(&semester),
		),
	).WithTheme(GetTheme())

	if err := programForm.Run(); err != nil {
		return q, err
	}
	switch semester {
	case "winter":
		q.Semester = normalize.SemesterWinter
	case "summer":
		q.Semester = normalize.SemesterSummer
	}
	if q.Program == "" {
		return q, nil
	}

	var program record.Program
	for _, p := range programs {
		if p.Name == q.Program {
			program = p
		}
	}

	yearOptions := []huh.Option[string]{huh.NewOption("Any year", "")}
	for _, y := range program.Type.Years() {
		yearOptions = append(yearOptions, huh.NewOption(y, y))
	}
	fields := []huh.Field{
		huh.NewSelect[string]().
			Title("Study year").
			Options(yearOptions...).
			Value(&q.Year),
	}
	if len(program.Focuses) > 0 {
		focusOptions := []huh.Option[string]{huh.NewOption("Any focus", "")}
		for _, f := range program.Focuses {
			focusOptions = append(focusOptions, huh.NewOption(f, f))
		}
		fields = append(fields, huh.NewSelect[string]().
			Title("Focus").
			Options(focusOptions...).
			Value(&q.Focus))
	}

	if err := huh.NewForm(huh.NewGroup(fields...)).WithTheme(GetTheme()).Run(); err != nil {
		return q, err
	}
	return q, nil
}

// sortedPrograms orders the directory by degree level and then by name.
func sortedPrograms(programs []record.Program) []record.Program {
	out := make([]record.Program, len(programs))
	copy(out, programs)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Type != out[j].Type {
			return out[i].Type < out[j].Type
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (s *session) askOutputFile(title, defaultName string) (string, error) {
	outputFile := defaultName
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Value(&outputFile).
				Validate(func(v string) error {
					if v == "" {
						return fmt.Errorf("file name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())
	if err := form.Run(); err != nil {
		return "", err
	}
	if !filepath.IsAbs(outputFile) && s.cfg.OutputDir != "" {
		outputFile = filepath.Join(s.cfg.OutputDir, outputFile)
	}
	return outputFile, nil
}

