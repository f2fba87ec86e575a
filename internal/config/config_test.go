package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFromValid(t *testing.T) {
	path := writeConfig(t, `{
		"catalogPath": "/tmp/catalog.json",
		"ranking": {"featuredBoost": 1.2, "maxRecent": 5}
	}`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}
	if cfg.CatalogPath != "/tmp/catalog.json" {
		t.Errorf("CatalogPath = %q", cfg.CatalogPath)
	}

	opts := cfg.EngineOptions()
	if opts.FeaturedBoost != 1.2 {
		t.Errorf("FeaturedBoost = %v, want 1.2", opts.FeaturedBoost)
	}
	if opts.MaxRecent != 5 {
		t.Errorf("MaxRecent = %d, want 5", opts.MaxRecent)
	}
	// Unset fields keep their defaults.
	if opts.FavoriteBoost != 1.04 {
		t.Errorf("FavoriteBoost = %v, want default 1.04", opts.FavoriteBoost)
	}
	if opts.SuggestionLimit != 10 {
		t.Errorf("SuggestionLimit = %d, want default 10", opts.SuggestionLimit)
	}
}

func TestLoadFromMissing(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "nope.json"))
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("LoadFrom(missing) = %v, want NotFoundError", err)
	}
}

func TestLoadFromMalformed(t *testing.T) {
	path := writeConfig(t, "{not json")

	_, err := LoadFrom(path)
	var invalid *InvalidError
	if !errors.As(err, &invalid) {
		t.Fatalf("LoadFrom(malformed) = %v, want InvalidError", err)
	}
}

func TestLoadFromRejectsBadRanking(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "demoting boost",
			content: `{"ranking": {"featuredBoost": 0.5}}`,
			want:    "featuredBoost",
		},
		{
			name:    "negative recency",
			content: `{"ranking": {"recencyBoost": -0.1}}`,
			want:    "recencyBoost",
		},
		{
			name:    "negative max recent",
			content: `{"ranking": {"maxRecent": -1}}`,
			want:    "maxRecent",
		},
		{
			name:    "zero suggestion limit",
			content: `{"ranking": {"suggestionLimit": 0}}`,
			want:    "suggestionLimit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := LoadFrom(path)
			var invalid *InvalidError
			if !errors.As(err, &invalid) {
				t.Fatalf("LoadFrom() = %v, want InvalidError", err)
			}
			if !strings.Contains(invalid.Message, tt.want) {
				t.Errorf("message %q does not mention %s", invalid.Message, tt.want)
			}
		})
	}
}

func TestEngineOptionsDefaults(t *testing.T) {
	cfg := &Config{}
	opts := cfg.EngineOptions()
	if opts.FeaturedBoost != 1.05 || opts.MaxRecent != 10 {
		t.Errorf("EngineOptions() without ranking = %+v, want defaults", opts)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	boost := 1.1
	cfg := &Config{
		CatalogPath: "/tmp/catalog.json",
		Ranking:     &Ranking{FeaturedBoost: &boost},
	}

	path := filepath.Join(t.TempDir(), "nested", "config.json")
	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}
	if loaded.CatalogPath != cfg.CatalogPath {
		t.Errorf("CatalogPath = %q, want %q", loaded.CatalogPath, cfg.CatalogPath)
	}
	if loaded.Ranking == nil || loaded.Ranking.FeaturedBoost == nil || *loaded.Ranking.FeaturedBoost != 1.1 {
		t.Errorf("Ranking = %+v, want featuredBoost 1.1", loaded.Ranking)
	}
}
