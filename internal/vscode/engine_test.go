package vscode

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedServer(t *testing.T, status int, body string) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		if r.Header.Get("X-API-Version") != "2" {
			http.Error(w, "missing api version", http.StatusBadRequest)
			return
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestLatestEngine(t *testing.T) {
	srv, _ := feedServer(t, http.StatusOK, `[{"version":"1.95.3"},{"version":"1.95.2"}]`)

	r := NewEngineResolver(WithFeedURL(srv.URL), WithHTTPClient(srv.Client()))
	engine, err := r.LatestEngine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "^1.95.0", engine)
}

func TestLatestEngine_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, ""},
		{"not json", http.StatusOK, "<html>"},
		{"empty list", http.StatusOK, "[]"},
		{"bad version", http.StatusOK, `[{"version":"insiders"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := feedServer(t, tt.status, tt.body)
			r := NewEngineResolver(WithFeedURL(srv.URL), WithHTTPClient(srv.Client()))

			engine, err := r.LatestEngine(context.Background())
			assert.Error(t, err)
			assert.Empty(t, engine)
		})
	}
}

func TestLatestEngine_EmptyListSentinel(t *testing.T) {
	srv, _ := feedServer(t, http.StatusOK, "[]")
	r := NewEngineResolver(WithFeedURL(srv.URL), WithHTTPClient(srv.Client()))

	_, err := r.LatestEngine(context.Background())
	assert.True(t, errors.Is(err, ErrNoReleases))
}

func TestLatestEngine_UsesFreshCache(t *testing.T) {
	srv, hits := feedServer(t, http.StatusOK, `[{"version":"1.90.1"}]`)
	dir := t.TempDir()

	r := NewEngineResolver(WithFeedURL(srv.URL), WithHTTPClient(srv.Client()), WithCache(dir, time.Hour))

	first, err := r.LatestEngine(context.Background())
	require.NoError(t, err)
	second, err := r.LatestEngine(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "^1.90.0", first)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
}

func TestLatestEngine_StaleCacheRefetches(t *testing.T) {
	srv, hits := feedServer(t, http.StatusOK, `[{"version":"1.96.0"}]`)
	dir := t.TempDir()

	require.NoError(t, SaveCache(dir, &EngineCache{
		Engine:    "^1.80.0",
		FeedURL:   srv.URL,
		CheckedAt: time.Now().Add(-48 * time.Hour),
	}))

	r := NewEngineResolver(WithFeedURL(srv.URL), WithHTTPClient(srv.Client()), WithCache(dir, 24*time.Hour))
	engine, err := r.LatestEngine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "^1.96.0", engine)
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))

	cache, err := LoadCache(dir)
	require.NoError(t, err)
	assert.Equal(t, "^1.96.0", cache.Engine)
	assert.Equal(t, "1.96.0", cache.LatestVersion)
}

func TestLatestEngine_CacheForOtherFeedIgnored(t *testing.T) {
	srv, hits := feedServer(t, http.StatusOK, `[{"version":"1.96.0"}]`)
	dir := t.TempDir()

	require.NoError(t, SaveCache(dir, &EngineCache{
		Engine:    "^1.80.0",
		FeedURL:   "https://example.invalid/feed",
		CheckedAt: time.Now(),
	}))

	r := NewEngineResolver(WithFeedURL(srv.URL), WithHTTPClient(srv.Client()), WithCache(dir, 24*time.Hour))
	engine, err := r.LatestEngine(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "^1.96.0", engine)
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
}

func TestLatestEngine_ZeroTTLDisablesCache(t *testing.T) {
	srv, hits := feedServer(t, http.StatusOK, `[{"version":"1.96.0"}]`)
	dir := t.TempDir()

	r := NewEngineResolver(WithFeedURL(srv.URL), WithHTTPClient(srv.Client()), WithCache(dir, 0))
	for i := 0; i < 2; i++ {
		_, err := r.LatestEngine(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, int32(2), atomic.LoadInt32(hits))

	cache, err := LoadCache(dir)
	require.NoError(t, err)
	assert.Nil(t, cache)
}

func TestEngineRange(t *testing.T) {
	tests := []struct {
		version string
		want    string
		wantErr bool
	}{
		{"1.95.3", "^1.95.0", false},
		{"1.100.0", "^1.100.0", false},
		{"2.0.1", "^2.0.0", false},
		{"v1.2.3", "", true},
		{"1.95", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			got, err := EngineRange(tt.version)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSatisfiesEngine(t *testing.T) {
	ok, err := SatisfiesEngine("^1.54.0", "1.95.3")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = SatisfiesEngine("^1.96.0", "1.95.3")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = SatisfiesEngine("not a range", "1.0.0")
	assert.Error(t, err)
}
