package cmd

import (
	"fmt"
	"io"

	"schgen/pkg/exporter"

	"github.com/spf13/cobra"
)

var studiumsCmd = &cobra.Command{
	Use:   "studiums",
	Short: "Write the study programs referenced by the catalogue",
	Long: `Read the whole course catalogue and write {"studiums":[...]}: every
program named by a course, in the order first seen, with the union of its
focuses and its degree type.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		res, err := rt.readCatalog(cmd.Context())
		if err != nil {
			return err
		}
		programs := res.Directory.Programs()

		err = rt.writeOutput(cmd.OutOrStdout(), output, func(w io.Writer) error {
			return exporter.WriteStudiums(w, rt.encoder(), programs)
		})
		if err != nil {
			return fmt.Errorf("failed to write studiums: %w", err)
		}
		rt.logger.Info("studiums written", "studiums", len(programs), "skipped", len(res.Skipped))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(studiumsCmd)

	studiumsCmd.Flags().StringP("output", "o", "", "Output file path (default stdout)")
}
