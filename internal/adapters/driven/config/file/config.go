package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/Drewrwhite/profile-data/internal/core/domain"
	"github.com/Drewrwhite/profile-data/internal/rules"
)

// EnrichConfig controls the batch metadata enrichment.
type EnrichConfig struct {
	// Enabled turns enrichment on for every run.
	Enabled bool `toml:"enabled"`

	// Tags is copied onto each record under the "tags" key.
	Tags map[string]any `toml:"tags"`
}

// WatchConfig controls the directory watch mode.
type WatchConfig struct {
	// EventsPerSecond caps how often newly dropped files trigger runs.
	EventsPerSecond float64 `toml:"events_per_second"`

	// Burst is the token bucket size for the trigger limiter.
	Burst int `toml:"burst"`
}

// Config is the profile-data configuration.
type Config struct {
	// Format is the input/output encoding: "auto", "array" or "jsonl".
	Format string `toml:"format"`

	// Datestamp inserts a UTC datestamp into derived output names.
	Datestamp bool `toml:"datestamp"`

	// Annotate attaches an "error" field to rejected records.
	Annotate bool `toml:"annotate"`

	// Enrich controls the batch metadata columns.
	Enrich EnrichConfig `toml:"enrich"`

	// Watch controls the directory watch mode.
	Watch WatchConfig `toml:"watch"`

	// Rules is the validation rule table.
	Rules rules.Table `toml:"rules"`
}

// Default returns the configuration used when no file exists:
// auto-detected input, array output, the legacy loader's profile
// schema and processing tags.
func Default() *Config {
	return &Config{
		Format: string(domain.FormatAuto),
		Enrich: EnrichConfig{
			Tags: map[string]any{
				"security_level":    "high",
				"allow_user_groups": []string{"admin"},
			},
		},
		Watch: WatchConfig{
			EventsPerSecond: 1,
			Burst:           3,
		},
		Rules: rules.DefaultTable(),
	}
}

// DefaultPath returns the conventional config location,
// ~/.profile-data/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".profile-data", "config.toml"), nil
}

// Load reads the configuration at path. A missing file yields the
// defaults; a present but invalid file is an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if !domain.Format(cfg.Format).Valid() {
		return nil, fmt.Errorf("%w: format %q", domain.ErrInvalidInput, cfg.Format)
	}
	return cfg, nil
}

// Save writes the configuration to path, creating the directory if
// needed. Used by the init command to emit a starter config.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	// Write with restricted permissions
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
