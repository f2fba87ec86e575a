// Package cli implements the utilsearch cobra commands.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/utilsearch/utilsearch/internal/catalog"
	"github.com/utilsearch/utilsearch/internal/config"
	"github.com/utilsearch/utilsearch/internal/prefs"
	"github.com/utilsearch/utilsearch/internal/search"
)

// engineFlags are the shared flags every command that needs an engine
// accepts. Resolution order: flag, environment, config file, default.
type engineFlags struct {
	catalogPath string
	dbPath      string
	memory      bool
	bm25        bool
}

func addEngineFlags(cmd *cobra.Command, f *engineFlags) {
	cmd.Flags().StringVar(&f.catalogPath, "catalog", "", "path to a JSON catalog file (default: built-in catalog)")
	cmd.Flags().StringVar(&f.dbPath, "db", "", "path to the preference database (default: ~/.utilsearch/prefs.db)")
	cmd.Flags().BoolVar(&f.memory, "memory", false, "keep preferences in memory only (no persistence)")
	cmd.Flags().BoolVar(&f.bm25, "bm25", false, "use the BM25 full-text strategy instead of the heuristic matcher")
}

// buildEngine assembles an engine from flags, environment, and the config
// file. The returned cleanup closes the preference store.
func buildEngine(f *engineFlags) (*search.Engine, func(), error) {
	// .env is optional; real environment variables win over it.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	catalogPath := firstNonEmpty(f.catalogPath, os.Getenv("UTILSEARCH_CATALOG"), cfg.CatalogPath)
	tools := catalog.Builtin()
	if catalogPath != "" {
		tools, err = catalog.LoadFrom(catalogPath)
		if err != nil {
			return nil, nil, err
		}
	}

	opts := []search.EngineOption{
		search.WithOptions(cfg.EngineOptions()),
	}

	cleanup := func() {}
	if !f.memory {
		dbPath := firstNonEmpty(f.dbPath, os.Getenv("UTILSEARCH_DB"), cfg.PrefsPath)
		if dbPath == "" {
			dbPath, err = prefs.DefaultPath()
			if err != nil {
				return nil, nil, err
			}
		}
		store := prefs.NewSQLiteKV(dbPath)
		if err := store.Init(); err == nil {
			opts = append(opts, search.WithStore(store))
			cleanup = func() { store.Close() }
		}
		// On init failure the store disables itself and the engine keeps
		// the in-memory default; the warning is already logged.
	}

	if f.bm25 {
		opts = append(opts, search.WithStrategy(search.NewBM25Strategy(0)))
	}

	engine, err := search.New(tools, opts...)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to build engine: %w", err)
	}
	return engine, cleanup, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
