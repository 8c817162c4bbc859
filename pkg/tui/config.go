package tui

import (
	"fmt"
	"strconv"
	"strings"

	"schgen/pkg/config"
	"schgen/pkg/scraper"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Catalogue Source", "source"),
						huh.NewOption("Set Fetching Options", "fetch"),
						huh.NewOption("Set Output Options", "output"),
						huh.NewOption("Clear Page Cache", "clear"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "theme":
			err = runSetThemeTUI(cfg)
		case "source":
			err = runSetSourceTUI(cfg)
		case "fetch":
			err = runSetFetchTUI(cfg)
		case "output":
			err = runSetOutputTUI(cfg)
		case "clear":
			err = runClearCache(cfg)
		case "view":
			path, _ := config.Path()
			fmt.Println(accentStyle.Render(fmt.Sprintf("\n--- Current Configuration (%s) ---", path)))
			for _, key := range config.Keys {
				value, _ := cfg.Get(key)
				if value == "" {
					value = "Not set"
				}
				fmt.Printf("%s: %s\n", key, value)
			}
			fmt.Println()
		}

		if err != nil {
			return err
		}
	}
}

func runSetSourceTUI(cfg *config.AppConfig) error {
	baseURL := cfg.BaseURL
	listPath := cfg.ListPath

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Course catalogue base URL").
				Placeholder(scraper.DefaultBaseURL).
				Value(&baseURL),
			huh.NewInput().
				Title("Course list page").
				Description("Relative to the base URL.").
				Placeholder(scraper.DefaultListPath).
				Value(&listPath),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.BaseURL = strings.TrimSpace(baseURL)
	cfg.ListPath = strings.TrimSpace(listPath)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Catalogue source saved.\n"))
	return nil
}

func validateCount(v string) error {
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return fmt.Errorf("must be a whole number")
	}
	return nil
}

func runSetFetchTUI(cfg *config.AppConfig) error {
	workers := strconv.Itoa(max(cfg.Workers, 1))
	cacheHours := strconv.Itoa(cfg.CacheHours)
	useCache := !cfg.NoCache

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Parallel page fetches").
				Value(&workers).
				Validate(validateCount),
			huh.NewConfirm().
				Title("Cache course pages on disk?").
				Value(&useCache),
			huh.NewInput().
				Title("Cache lifetime in hours").
				Description("0 keeps the default of 12 hours.").
				Value(&cacheHours).
				Validate(validateCount),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if err := cfg.Set("workers", workers); err != nil {
		return err
	}
	if err := cfg.Set("cache_hours", cacheHours); err != nil {
		return err
	}
	cfg.NoCache = !useCache
	cfg.Normalize()
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Fetching with %d workers.\n", cfg.Workers)))
	return nil
}

func runSetOutputTUI(cfg *config.AppConfig) error {
	strict := cfg.Strict
	outputDir := cfg.OutputDir
	logLevel := cfg.LogLevel
	if logLevel == "" {
		logLevel = "info"
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Refuse text that needs escaping?").
				Description("Strict mode fails instead of escaping quotes in scraped text.").
				Value(&strict),
			huh.NewInput().
				Title("Output directory").
				Description("Relative output file names are placed here.").
				Value(&outputDir),
			huh.NewSelect[string]().
				Title("Log level").
				Options(
					huh.NewOption("Debug", "debug"),
					huh.NewOption("Info", "info"),
					huh.NewOption("Warn", "warn"),
					huh.NewOption("Error", "error"),
				).
				Value(&logLevel),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Strict = strict
	cfg.OutputDir = strings.TrimSpace(outputDir)
	cfg.LogLevel = logLevel
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Output settings saved.\n"))
	return nil
}

func runClearCache(cfg *config.AppConfig) error {
	cache, err := scraper.NewCache(cfg.CacheDir, cfg.CacheDuration())
	if err != nil {
		return err
	}
	if err := cache.Clear(); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	fmt.Println(accentStyle.Render("\n✅ Page cache cleared.\n"))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color for schgen").
				Description("Select a curated Charm style or choose Custom to enter your own Hex.").
				Options(
					huh.NewOption(fmt.Sprintf("%s Default Purple", colorBlock("99")), "99"),
					huh.NewOption(fmt.Sprintf("%s Sakura Pink", colorBlock("205")), "205"),
					huh.NewOption(fmt.Sprintf("%s Ocean Blue", colorBlock("86")), "86"),
					huh.NewOption(fmt.Sprintf("%s Matrix Green", colorBlock("42")), "42"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Include the `#` symbol. Example: #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(func(str string) error {
						if len(str) != 7 || !strings.HasPrefix(str, "#") {
							return fmt.Errorf("must be a valid 6-character hex code starting with #")
						}
						return nil
					}),
			),
		).WithTheme(GetTheme())

		if err := hexForm.Run(); err != nil {
			return err
		}
		cfg.AccentColor = hexInput
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Beautiful! The theme color is now saved.\n"))
	return nil
}
