package cmd

import (
	"fmt"

	"schgen/pkg/config"
	"schgen/pkg/scraper"
	"schgen/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage schgen configuration",
	Long:  "View or edit your local configuration settings (~/.schgen.toml). Without a subcommand the interactive settings menu opens.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.RunConfigTUI()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		path, err := config.Path()
		if err != nil {
			return err
		}

		rows := make([][]string, 0, len(config.Keys))
		for _, key := range config.Keys {
			value, err := cfg.Get(key)
			if err != nil {
				return err
			}
			rows = append(rows, []string{key, value})
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Key", "Value"}, rows, nil))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:       "set <key> <value>",
	Short:     "Change one saved setting",
	Args:      cobra.ExactArgs(2),
	ValidArgs: config.Keys,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := cfg.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✅ %s saved as %q\n", args[0], args[1])
		return nil
	},
}

var configClearCacheCmd = &cobra.Command{
	Use:   "clear-cache",
	Short: "Delete every cached course page",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := scraper.NewCache(rt.cfg.CacheDir, rt.cfg.CacheDuration())
		if err != nil {
			return err
		}
		if err := cache.Clear(); err != nil {
			return fmt.Errorf("failed to clear cache: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "✅ Page cache cleared")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configSetCmd, configClearCacheCmd)
}
