package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"schgen/pkg/exporter"
	"schgen/pkg/record"

	"github.com/spf13/cobra"
)

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Export the weekly schedule of selected courses to an ICS file",
	Long: `Read the course catalogue and export the schedule terms of the matching
courses as recurring iCalendar events. Odd and even week terms repeat
every other week.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		query, err := subjectQuery(cmd)
		if err != nil {
			return err
		}
		codes, _ := cmd.Flags().GetStringSlice("course")
		output, _ := cmd.Flags().GetString("output")
		weeks, _ := cmd.Flags().GetInt("weeks")
		startText, _ := cmd.Flags().GetString("start")

		start, err := time.Parse(time.DateOnly, startText)
		if err != nil {
			return fmt.Errorf("invalid --start date %q: %w", startText, err)
		}

		output = calendarOutput(output)

		res, err := rt.readCatalog(cmd.Context())
		if err != nil {
			return err
		}
		courses := selectCourses(record.Filter(res.Courses, query), codes)
		if len(courses) == 0 {
			return fmt.Errorf("no courses matched")
		}

		opts := exporter.CalendarOptions{SemesterStart: start, Weeks: weeks}
		err = rt.writeOutput(cmd.OutOrStdout(), output, func(w io.Writer) error {
			return exporter.GenerateICS(courses, opts, w)
		})
		if err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		if !isStdout(output) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Successfully exported %d courses to %s\n", len(courses), rt.outputPath(output))
		}
		return nil
	},
}

// calendarOutput adds the .ics extension to file names; "-" and "" stay stdout.
func calendarOutput(name string) string {
	if isStdout(name) || strings.HasSuffix(name, ".ics") {
		return name
	}
	return name + ".ics"
}

// selectCourses keeps the courses whose code is listed; no codes keeps all.
func selectCourses(courses []record.Course, codes []string) []record.Course {
	if len(codes) == 0 {
		return courses
	}
	wanted := make(map[string]bool, len(codes))
	for _, c := range codes {
		wanted[strings.ToUpper(strings.TrimSpace(c))] = true
	}
	var out []record.Course
	for _, c := range courses {
		if wanted[c.Code] {
			out = append(out, c)
		}
	}
	return out
}

func init() {
	rootCmd.AddCommand(calendarCmd)

	calendarCmd.Flags().StringP("output", "o", "schedule.ics", "Output file path")
	calendarCmd.Flags().StringSliceP("course", "c", nil, "Course codes to export (e.g. IZP,IDM)")
	calendarCmd.Flags().StringP("program", "p", "", "Only courses of this program (e.g. BIT)")
	calendarCmd.Flags().String("focus", "", "Only courses of this focus within --program")
	calendarCmd.Flags().String("year", "", "Only courses of this study year within --program")
	calendarCmd.Flags().String("semester", "", "Only winter or summer courses")
	calendarCmd.Flags().String("start", "", "First day of the teaching period (YYYY-MM-DD)")
	calendarCmd.Flags().Int("weeks", exporter.TeachingWeeks, "Number of teaching weeks")
	calendarCmd.MarkFlagRequired("start")
}
