package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "schgen",
	Short: "A CLI and TUI for the FIT course catalogue",
	Long: `schgen walks the FIT course catalogue, reads every course page and
writes the subjects or the study programs as a single text document.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadRuntime,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("base-url", "", "Course catalogue base URL")
	flags.String("list-path", "", "Catalogue page listing the courses, relative to the base URL")
	flags.IntP("workers", "w", 0, "Course pages fetched in parallel")
	flags.Bool("strict", false, "Fail on text that would need escaping instead of escaping it")
	flags.Bool("no-cache", false, "Bypass the on-disk page cache")
	flags.Bool("fail-fast", false, "Stop at the first unreadable course page")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	flags.String("log-format", "", "Log format (console, json)")
}
