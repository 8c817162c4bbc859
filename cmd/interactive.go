package cmd

import (
	"schgen/pkg/tui"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive TUI",
	Long:  `Launch the Text User Interface to pick a program, filter its courses, and write documents or calendars interactively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.RunTUI(cmd.Context(), rt.cfg, rt.logger)
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
