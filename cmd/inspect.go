package cmd

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"schgen/pkg/canon"
	"schgen/pkg/catalog"
	"schgen/pkg/exporter"
	"schgen/pkg/membership"
	"schgen/pkg/record"
	"schgen/pkg/schedule"
	"schgen/pkg/tui"

	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <course-url>...",
	Short: "Show what schgen reads from individual course pages",
	Long: `Fetch the given course pages (absolute or relative to the base URL)
and print their terms and program memberships as tables, followed by the
subject entry each one contributes to the subjects document.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := rt.client()
		if err != nil {
			return err
		}
		opts := rt.catalogOptions()
		opts.FailFast = true

		var res *catalog.Result
		err = tui.Spin(cmd.Context(), "Fetching course pages...", func(ctx context.Context) error {
			var runErr error
			res, runErr = catalog.Collect(ctx, client, args, opts)
			return runErr
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for i, c := range res.Courses {
			if i > 0 {
				fmt.Fprintln(out)
			}
			if err := printCourse(out, rt.encoder(), c); err != nil {
				return err
			}
		}
		return nil
	},
}

func printCourse(w io.Writer, enc canon.Encoder, c record.Course) error {
	fmt.Fprintf(w, "%s  %s (%s semester)\n", c.Code, c.Name, c.Semester)

	if len(c.Terms) > 0 {
		rows := make([][]string, 0, len(c.Terms))
		for _, t := range c.Terms {
			rows = append(rows, []string{
				t.Kind,
				t.WeeklyPattern,
				schedule.ParseParity(t.WeeklyPattern).String(),
				t.Classroom,
				spanText(t.Slots),
				t.Teacher,
			})
		}
		fmt.Fprintln(w, renderTable(
			[]string{"Type", "Weeks", "Parity", "Room", "When", "Teacher"},
			rows, nil))
	}

	if len(c.Memberships) > 0 {
		rows := make([][]string, 0, len(c.Memberships))
		for _, m := range c.Memberships {
			ptype := membership.Classify(m.ProgramName)
			rows = append(rows, []string{
				m.ProgramName,
				strings.Join(m.Focuses, ", "),
				m.Year,
				m.Obligation.String(),
				strconv.Itoa(m.Obligation.Code()),
				fmt.Sprintf("%s, %d years", ptype, ptype.Length()),
			})
		}
		fmt.Fprintln(w, renderTable(
			[]string{"Program", "Focuses", "Year", "Obligation", "Code", "Program type"},
			rows, []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight}))
	}

	value := exporter.SubjectValue(c)
	if err := canon.Check(value); err != nil && !enc.Strict {
		fmt.Fprintf(w, "Escaped text:\n%v\n", err)
	}
	entry, err := enc.Marshal(value)
	if err != nil {
		return fmt.Errorf("course %s: %w", c.Code, err)
	}
	fmt.Fprintln(w, entry)
	return nil
}

func spanText(slots []int) string {
	spans := schedule.Spans(slots)
	if len(spans) == 0 {
		return "-"
	}
	parts := make([]string, len(spans))
	for i, s := range spans {
		parts[i] = s.String()
	}
	return strings.Join(parts, ", ")
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
