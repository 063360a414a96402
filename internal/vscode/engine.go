package vscode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/rs/zerolog"
	"github.com/vsext-labs/vsext/internal/log"
)

// DefaultReleaseFeed lists stable editor releases, newest first.
const DefaultReleaseFeed = "https://update.code.visualstudio.com/api/releases/stable"

// ErrNoReleases is returned when the feed answers with an empty list.
var ErrNoReleases = errors.New("release feed returned no versions")

// Release is one entry of the release feed (API version 2).
type Release struct {
	Version string `json:"version"`
}

// EngineResolver resolves the newest stable editor release into an engine
// range such as "^1.95.0".
type EngineResolver struct {
	feedURL    string
	httpClient *http.Client
	cacheDir   string
	cacheTTL   time.Duration
	now        func() time.Time
	logger     zerolog.Logger
}

// Option configures an EngineResolver.
type Option func(*EngineResolver)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(r *EngineResolver) {
		if c != nil {
			r.httpClient = c
		}
	}
}

// WithFeedURL overrides the release feed URL.
func WithFeedURL(url string) Option {
	return func(r *EngineResolver) {
		if url != "" {
			r.feedURL = url
		}
	}
}

// WithCache enables the on-disk cache in dir. A zero ttl disables it.
func WithCache(dir string, ttl time.Duration) Option {
	return func(r *EngineResolver) {
		r.cacheDir = dir
		r.cacheTTL = ttl
	}
}

// NewEngineResolver creates a resolver for the default release feed.
func NewEngineResolver(opts ...Option) *EngineResolver {
	r := &EngineResolver{
		feedURL:    DefaultReleaseFeed,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		now:        time.Now,
		logger:     log.WithComponent("vscode"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// LatestEngine returns the engine range for the newest stable release. A
// fresh cache entry is used without touching the network.
func (r *EngineResolver) LatestEngine(ctx context.Context) (string, error) {
	cacheOn := r.cacheDir != "" && r.cacheTTL > 0
	if cacheOn {
		cache, err := LoadCache(r.cacheDir)
		if err != nil {
			r.logger.Debug().Err(err).Msg("ignoring unreadable engine cache")
		} else if !IsCacheStale(cache, r.cacheTTL, r.now()) && cache.FeedURL == r.feedURL {
			return cache.Engine, nil
		}
	}

	latest, err := r.fetchLatest(ctx)
	if err != nil {
		return "", err
	}
	engine, err := EngineRange(latest)
	if err != nil {
		return "", err
	}

	if cacheOn {
		entry := &EngineCache{
			Engine:        engine,
			LatestVersion: latest,
			FeedURL:       r.feedURL,
			CheckedAt:     r.now(),
		}
		if err := SaveCache(r.cacheDir, entry); err != nil {
			r.logger.Debug().Err(err).Msg("saving engine cache failed")
		}
	}
	return engine, nil
}

func (r *EngineResolver) fetchLatest(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.feedURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-API-Version", "2")

	r.logger.Debug().Str(log.FieldURL, r.feedURL).Msg("fetching release feed")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching release feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("release feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}

	var releases []Release
	if err := json.Unmarshal(body, &releases); err != nil {
		return "", fmt.Errorf("parsing release feed: %w", err)
	}
	if len(releases) == 0 || releases[0].Version == "" {
		return "", ErrNoReleases
	}
	return releases[0].Version, nil
}

// EngineRange turns a release version into the caret range used in the
// engines.vscode field: "1.95.3" becomes "^1.95.0".
func EngineRange(version string) (string, error) {
	v, err := semver.StrictNewVersion(version)
	if err != nil {
		return "", fmt.Errorf("parsing release version %q: %w", version, err)
	}
	return fmt.Sprintf("^%d.%d.0", v.Major(), v.Minor()), nil
}

// SatisfiesEngine reports whether version falls inside the engine range.
func SatisfiesEngine(engine, version string) (bool, error) {
	c, err := semver.NewConstraint(engine)
	if err != nil {
		return false, fmt.Errorf("parsing engine %q: %w", engine, err)
	}
	v, err := semver.NewVersion(version)
	if err != nil {
		return false, fmt.Errorf("parsing version %q: %w", version, err)
	}
	return c.Check(v), nil
}
