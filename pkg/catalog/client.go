package catalog

import (
	"log/slog"

	"schgen/pkg/config"
	"schgen/pkg/logging"
	"schgen/pkg/scraper"
)

// NewClient builds a scraper client from the user's settings. The page
// cache is skipped when NoCache is set.
func NewClient(cfg *config.AppConfig, logger *slog.Logger) (*scraper.Client, error) {
	var cache *scraper.Cache
	if !cfg.NoCache {
		var err error
		if cache, err = scraper.NewCache(cfg.CacheDir, cfg.CacheDuration()); err != nil {
			return nil, err
		}
	}
	if logger != nil {
		logger = logger.With(logging.FieldComponent, "scraper")
	}
	return scraper.NewClient(cfg.BaseURL, cache, logger)
}
