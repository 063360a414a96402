package vscode

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/renameio/v2"
)

const cacheFileName = "engine-cache.json"

// EngineCache holds the last resolved engine range.
type EngineCache struct {
	Engine        string    `json:"engine"`
	LatestVersion string    `json:"latest_version"`
	FeedURL       string    `json:"feed_url"`
	CheckedAt     time.Time `json:"checked_at"`
}

// LoadCache reads the engine cache from dir.
// Returns nil, nil if the cache file does not exist (first run).
func LoadCache(dir string) (*EngineCache, error) {
	path := filepath.Join(dir, cacheFileName)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading engine cache: %w", err)
	}

	var cache EngineCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, fmt.Errorf("parsing engine cache: %w", err)
	}
	return &cache, nil
}

// SaveCache writes the engine cache to dir.
func SaveCache(dir string, cache *EngineCache) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating cache directory: %w", err)
	}

	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling engine cache: %w", err)
	}

	path := filepath.Join(dir, cacheFileName)
	if err := renameio.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing engine cache: %w", err)
	}
	return nil
}

// IsCacheStale returns true if the cache is nil, empty, or older than maxAge.
func IsCacheStale(cache *EngineCache, maxAge time.Duration, now time.Time) bool {
	if cache == nil || cache.Engine == "" {
		return true
	}
	return now.Sub(cache.CheckedAt) > maxAge
}
