package cmd

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"schgen/pkg/canon"
	"schgen/pkg/catalog"
	"schgen/pkg/config"
	"schgen/pkg/exporter"
	"schgen/pkg/logging"
	"schgen/pkg/scraper"
	"schgen/pkg/tui"

	"github.com/spf13/cobra"
)

// settings is the configuration of one invocation: the config file with
// command line flags applied on top.
type settings struct {
	cfg      *config.AppConfig
	failFast bool
	logger   *slog.Logger
}

var rt settings

func loadRuntime(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("base-url") {
		cfg.BaseURL, _ = flags.GetString("base-url")
	}
	if flags.Changed("list-path") {
		cfg.ListPath, _ = flags.GetString("list-path")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("strict") {
		cfg.Strict, _ = flags.GetBool("strict")
	}
	if flags.Changed("no-cache") {
		cfg.NoCache, _ = flags.GetBool("no-cache")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-format") {
		cfg.LogFormat, _ = flags.GetString("log-format")
	}
	cfg.Normalize()

	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		return err
	}
	failFast, _ := flags.GetBool("fail-fast")

	rt = settings{cfg: cfg, failFast: failFast, logger: logger}
	return nil
}

func (r settings) encoder() canon.Encoder {
	return canon.Encoder{Strict: r.cfg.Strict}
}

func (r settings) client() (*scraper.Client, error) {
	return catalog.NewClient(r.cfg, r.logger)
}

func (r settings) catalogOptions() catalog.Options {
	return catalog.Options{
		ListPath: r.cfg.ListPath,
		Workers:  r.cfg.Workers,
		FailFast: r.failFast,
		Logger:   r.logger,
	}
}

// readCatalog runs the whole catalogue, behind a spinner when attached to
// a terminal.
func (r settings) readCatalog(ctx context.Context) (*catalog.Result, error) {
	client, err := r.client()
	if err != nil {
		return nil, err
	}

	var res *catalog.Result
	err = tui.Spin(ctx, "Reading the course catalogue...", func(ctx context.Context) error {
		var runErr error
		res, runErr = catalog.Run(ctx, client, r.catalogOptions())
		return runErr
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// writeOutput renders a document to stdout, or to the named file placed
// under the configured output directory when the name is relative. Nothing
// is written unless render succeeds.
func (r settings) writeOutput(stdout io.Writer, name string, render func(w io.Writer) error) error {
	if isStdout(name) {
		var buf bytes.Buffer
		if err := render(&buf); err != nil {
			return err
		}
		_, err := stdout.Write(buf.Bytes())
		return err
	}
	return exporter.WriteFile(r.outputPath(name), render)
}

func (r settings) outputPath(name string) string {
	if !filepath.IsAbs(name) && r.cfg.OutputDir != "" {
		return filepath.Join(r.cfg.OutputDir, name)
	}
	return name
}

func isStdout(name string) bool {
	return name == "" || name == "-"
}
