package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"schgen/pkg/extract"
	"schgen/pkg/logging"
	"schgen/pkg/membership"
	"schgen/pkg/normalize"
	"schgen/pkg/record"
	"schgen/pkg/scraper"
)

// Fetcher retrieves the catalogue and its course pages.
type Fetcher interface {
	FetchCourseLinks(ctx context.Context, listPath string) ([]string, error)
	FetchAll(ctx context.Context, urls []string, workers int) []scraper.Page
}

// Options controls a catalogue run.
type Options struct {
	ListPath string
	Workers  int
	// FailFast aborts on the first page that cannot be read instead of
	// logging and skipping it.
	FailFast bool
	Logger   *slog.Logger
}

// Skipped names a course page left out of the result.
type Skipped struct {
	URL string
	Err error
}

// Result holds the courses in catalogue order and the program directory
// folded from their memberships.
type Result struct {
	Courses   []record.Course
	Directory *record.Directory
	Skipped   []Skipped
}

// Run fetches every course listed on the catalogue page.
func Run(ctx context.Context, f Fetcher, opts Options) (*Result, error) {
	urls, err := f.FetchCourseLinks(ctx, opts.ListPath)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch course list: %w", err)
	}
	return Collect(ctx, f, urls, opts)
}

// Collect fetches and extracts the given course pages. Pages are read in
// the order of urls regardless of the number of workers.
func Collect(ctx context.Context, f Fetcher, urls []string, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	logger = logger.With(logging.FieldComponent, "catalog")

	res := &Result{
		Courses:   make([]record.Course, 0, len(urls)),
		Directory: record.NewDirectory(),
	}

	pages := f.FetchAll(ctx, urls, opts.Workers)
	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		course, members, err := readPage(page)
		if err != nil {
			if opts.FailFast {
				return nil, fmt.Errorf("%s: %w", page.URL, err)
			}
			logger.Warn("skipping course page", logging.FieldURL, page.URL, "error", err)
			res.Skipped = append(res.Skipped, Skipped{URL: page.URL, Err: err})
			continue
		}

		switch members.Status {
		case membership.ParseError:
			logger.Warn("unreadable program list", logging.FieldURL, page.URL, logging.FieldCode, course.Code, "error", members.Err)
		case membership.NoSection:
			logger.Debug("no program list", logging.FieldURL, page.URL, logging.FieldCode, course.Code)
		}

		res.Courses = append(res.Courses, course)
		res.Directory.Add(members.List())
	}

	logger.Info("catalogue read",
		"courses", len(res.Courses),
		"programs", res.Directory.Len(),
		"skipped", len(res.Skipped),
	)
	return res, nil
}

func readPage(page scraper.Page) (record.Course, membership.Result, error) {
	if page.Err != nil {
		return record.Course{}, membership.Result{}, page.Err
	}
	if page.Doc == nil {
		return record.Course{}, membership.Result{}, errors.New("empty page")
	}
	return extract.Course(page.Doc)
}

// IsMalformed reports whether a skipped page failed on its content rather
// than on retrieval.
func (s Skipped) IsMalformed() bool {
	return errors.Is(s.Err, normalize.ErrMalformedField)
}
