/*
Package config handles loading, saving, and validating utilsearch
configuration.

Configuration is stored in ~/.utilsearch.json:

	{
	  "catalogPath": "/path/to/catalog.json",
	  "prefsPath": "/path/to/prefs.db",
	  "ranking": {
	    "featuredBoost": 1.05,
	    "favoriteBoost": 1.04,
	    "recencyBoost": 0.03,
	    "maxRecent": 10,
	    "suggestionLimit": 10
	  }
	}

Every field is optional; zero values fall back to the engine defaults.
*/
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/utilsearch/utilsearch/internal/search"
)

// Config is the root configuration structure.
type Config struct {
	// CatalogPath points to a JSON catalog file. Empty means the built-in
	// catalog.
	CatalogPath string `json:"catalogPath,omitempty"`

	// PrefsPath is the SQLite preference database location. Empty means
	// the default under the home directory.
	PrefsPath string `json:"prefsPath,omitempty"`

	// Ranking overrides engine ranking parameters.
	Ranking *Ranking `json:"ranking,omitempty"`
}

// Ranking holds the tunable ranking parameters. Pointers distinguish "not
// set" from explicit zero.
type Ranking struct {
	FeaturedBoost   *float64 `json:"featuredBoost,omitempty"`
	FavoriteBoost   *float64 `json:"favoriteBoost,omitempty"`
	RecencyBoost    *float64 `json:"recencyBoost,omitempty"`
	MaxRecent       *int     `json:"maxRecent,omitempty"`
	SuggestionLimit *int     `json:"suggestionLimit,omitempty"`
}

// DefaultPath returns the path to ~/.utilsearch.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".utilsearch.json"), nil
}

// Load reads configuration from the default path. A missing file is not an
// error: defaults apply.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		if _, missing := err.(*NotFoundError); missing {
			return &Config{}, nil
		}
		return nil, err
	}
	return cfg, nil
}

// LoadFrom reads configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &InvalidError{Path: path, Message: err.Error()}
	}

	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the configuration to the specified path.
func Save(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) validate(path string) error {
	if c.Ranking == nil {
		return nil
	}
	r := c.Ranking
	for name, v := range map[string]*float64{
		"featuredBoost": r.FeaturedBoost,
		"favoriteBoost": r.FavoriteBoost,
	} {
		if v != nil && *v < 1 {
			return &InvalidError{
				Path:    path,
				Message: fmt.Sprintf("ranking.%s must be at least 1.0, got %v", name, *v),
				Hint:    "boosts are multipliers; values below 1 would demote instead of promote",
			}
		}
	}
	if r.RecencyBoost != nil && *r.RecencyBoost < 0 {
		return &InvalidError{
			Path:    path,
			Message: fmt.Sprintf("ranking.recencyBoost must not be negative, got %v", *r.RecencyBoost),
		}
	}
	if r.MaxRecent != nil && *r.MaxRecent < 0 {
		return &InvalidError{
			Path:    path,
			Message: fmt.Sprintf("ranking.maxRecent must not be negative, got %d", *r.MaxRecent),
		}
	}
	if r.SuggestionLimit != nil && *r.SuggestionLimit < 1 {
		return &InvalidError{
			Path:    path,
			Message: fmt.Sprintf("ranking.suggestionLimit must be at least 1, got %d", *r.SuggestionLimit),
		}
	}
	return nil
}

// EngineOptions merges the config's ranking overrides onto the engine
// defaults.
func (c *Config) EngineOptions() search.Options {
	opts := search.DefaultOptions()
	if c.Ranking == nil {
		return opts
	}
	r := c.Ranking
	if r.FeaturedBoost != nil {
		opts.FeaturedBoost = *r.FeaturedBoost
	}
	if r.FavoriteBoost != nil {
		opts.FavoriteBoost = *r.FavoriteBoost
	}
	if r.RecencyBoost != nil {
		opts.RecencyBoost = *r.RecencyBoost
	}
	if r.MaxRecent != nil {
		opts.MaxRecent = *r.MaxRecent
	}
	if r.SuggestionLimit != nil {
		opts.SuggestionLimit = *r.SuggestionLimit
	}
	return opts
}
