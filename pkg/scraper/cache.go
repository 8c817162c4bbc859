package scraper

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
)

// DefaultCacheDuration determines how long page data is kept before refreshing
const DefaultCacheDuration = 12 * time.Hour

// CacheEntry represents the disk data format
type CacheEntry struct {
	Timestamp time.Time `json:"timestamp"`
	URL       string    `json:"url"`
	Body      string    `json:"body"`
}

// Cache keeps fetched pages on disk. A nil *Cache never hits and never
// stores anything.
type Cache struct {
	dir string
	ttl time.Duration
}

// DefaultCacheDir returns ~/.schgen_cache.
func DefaultCacheDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".schgen_cache"), nil
}

// NewCache creates the cache directory if needed. An empty dir selects
// DefaultCacheDir and a zero ttl selects DefaultCacheDuration.
func NewCache(dir string, ttl time.Duration) (*Cache, error) {
	if dir == "" {
		var err error
		if dir, err = DefaultCacheDir(); err != nil {
			return nil, err
		}
	}
	if ttl <= 0 {
		ttl = DefaultCacheDuration
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("could not create cache directory: %w", err)
	}
	return &Cache{dir: dir, ttl: ttl}, nil
}

// cacheKey turns a URL into a safe file name, e.g.
// "https://www.fit.vut.cz/study/course/IZP/.cs" -> "www.fit.vut.cz_study_course_IZP_.cs".
func cacheKey(pageURL string) string {
	key := strings.TrimPrefix(strings.TrimPrefix(pageURL, "https://"), "http://")
	var b strings.Builder
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

func (c *Cache) path(pageURL string) string {
	return filepath.Join(c.dir, cacheKey(pageURL)+".json")
}

// Read checks if a valid, unexpired cache entry exists for this page
func (c *Cache) Read(pageURL string) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	path := c.path(pageURL)

	lock := flock.New(path + ".lock")
	if err := lock.RLock(); err != nil {
		return nil, false
	}
	defer lock.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false // File doesn't exist or can't be read
	}

	var entry CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}

	// Check expiration
	if time.Since(entry.Timestamp) > c.ttl || entry.URL != pageURL {
		return nil, false
	}

	return []byte(entry.Body), true
}

// Write saves the page to disk
func (c *Cache) Write(pageURL string, body []byte) error {
	if c == nil {
		return nil
	}
	path := c.path(pageURL)

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("could not lock cache entry: %w", err)
	}
	defer lock.Unlock()

	entry := CacheEntry{
		Timestamp: time.Now(),
		URL:       pageURL,
		Body:      string(body),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Clear removes every cached page.
func (c *Cache) Clear() error {
	if c == nil {
		return nil
	}
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return fmt.Errorf("could not list cache directory: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(c.dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}
