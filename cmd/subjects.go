package cmd

import (
	"fmt"
	"io"

	"schgen/pkg/exporter"
	"schgen/pkg/normalize"
	"schgen/pkg/record"

	"github.com/spf13/cobra"
)

var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "Write every course as a subjects document",
	Long: `Read the whole course catalogue and write {"subjects":[...]}, one
subject per course in catalogue order. The filter flags narrow the list
to the courses of one program.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		query, err := subjectQuery(cmd)
		if err != nil {
			return err
		}
		output, _ := cmd.Flags().GetString("output")

		res, err := rt.readCatalog(cmd.Context())
		if err != nil {
			return err
		}
		courses := record.Filter(res.Courses, query)

		err = rt.writeOutput(cmd.OutOrStdout(), output, func(w io.Writer) error {
			return exporter.WriteSubjects(w, rt.encoder(), courses)
		})
		if err != nil {
			return fmt.Errorf("failed to write subjects: %w", err)
		}
		rt.logger.Info("subjects written", "subjects", len(courses), "skipped", len(res.Skipped))
		return nil
	},
}

func subjectQuery(cmd *cobra.Command) (record.Query, error) {
	var q record.Query
	q.Program, _ = cmd.Flags().GetString("program")
	q.Focus, _ = cmd.Flags().GetString("focus")
	q.Year, _ = cmd.Flags().GetString("year")

	semester, _ := cmd.Flags().GetString("semester")
	switch semester {
	case "":
	case "winter", "zimní":
		q.Semester = normalize.SemesterWinter
	case "summer", "letní":
		q.Semester = normalize.SemesterSummer
	default:
		return q, fmt.Errorf("unknown semester %q (use winter or summer)", semester)
	}

	if (q.Focus != "" || q.Year != "") && q.Program == "" {
		return q, fmt.Errorf("--focus and --year need --program")
	}
	return q, nil
}

func init() {
	rootCmd.AddCommand(subjectsCmd)

	subjectsCmd.Flags().StringP("output", "o", "", "Output file path (default stdout)")
	subjectsCmd.Flags().StringP("program", "p", "", "Only courses of this program (e.g. BIT)")
	subjectsCmd.Flags().String("focus", "", "Only courses of this focus within --program")
	subjectsCmd.Flags().String("year", "", `Only courses of this study year within --program (e.g. "1. ročník")`)
	subjectsCmd.Flags().String("semester", "", "Only winter or summer courses")
}
