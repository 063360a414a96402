package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/vsext-labs/vsext/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Recognized configuration keys.
const (
	KeyEngineURL      = "engine.url"
	KeyEngineFallback = "engine.fallback"
	KeyEngineCacheTTL = "engine.cache_ttl"
	KeyEditorCLI      = "editor.cli"
	KeyLogLevel       = "log.level"
)

// Defaults applied when a key is unset.
const (
	DefaultEngineURL      = "https://update.code.visualstudio.com/api/releases/stable"
	DefaultEngineFallback = "^1.54.0"
	DefaultEngineCacheTTL = 24 * time.Hour
	DefaultEditorCLI      = "code"
	DefaultLogLevel       = "warn"
)

// Dir returns the path to the config directory (~/.vsext/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.vsext/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// VSEXT_ENGINE_URL overrides engine.url, and so on.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyEngineURL, DefaultEngineURL)
	viper.SetDefault(KeyEngineFallback, DefaultEngineFallback)
	viper.SetDefault(KeyEngineCacheTTL, DefaultEngineCacheTTL.String())
	viper.SetDefault(KeyEditorCLI, DefaultEditorCLI)
	viper.SetDefault(KeyLogLevel, DefaultLogLevel)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Keys returns the recognized configuration keys in display order.
func Keys() []string {
	return []string{KeyEngineURL, KeyEngineFallback, KeyEngineCacheTTL, KeyEditorCLI, KeyLogLevel}
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// EngineURL returns the release feed queried for the latest editor version.
func EngineURL() string {
	return stringOr(KeyEngineURL, DefaultEngineURL)
}

// EngineFallback returns the engine range used when the lookup fails.
func EngineFallback() string {
	return stringOr(KeyEngineFallback, DefaultEngineFallback)
}

// EngineCacheTTL returns how long a resolved engine version stays cached.
// Unparseable values fall back to the default.
func EngineCacheTTL() time.Duration {
	raw := strings.TrimSpace(viper.GetString(KeyEngineCacheTTL))
	if raw == "" {
		return DefaultEngineCacheTTL
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d < 0 {
		return DefaultEngineCacheTTL
	}
	return d
}

// EditorCLI returns the editor binary used to list installed extensions.
func EditorCLI() string {
	return stringOr(KeyEditorCLI, DefaultEditorCLI)
}

// LogLevel returns the configured log level name.
func LogLevel() string {
	return stringOr(KeyLogLevel, DefaultLogLevel)
}

func stringOr(key, fallback string) string {
	if v := strings.TrimSpace(viper.GetString(key)); v != "" {
		return v
	}
	return fallback
}
