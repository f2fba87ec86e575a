/*
Package main is the entry point for the utilsearch CLI.

utilsearch is a typo-tolerant discovery engine for a catalog of browser
utility tools: fuzzy multi-signal matching, ranked results, typeahead
suggestions, and personalization (recents and favorites).

Usage:
  utilsearch [command]

Available Commands:
  search      Search the utility catalog
  suggest     Show typeahead suggestions for a partial query
  recent      List recently used tools
  favorite    List favorited tools
  categories  List catalog categories
  serve       Run the search HTTP API
  bench       Measure search latency
  version     Print version information

Examples:
  # Typo-tolerant search
  utilsearch search jsno

  # Run the HTTP API over a custom catalog
  utilsearch serve --catalog ./catalog.json --port 9000
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/utilsearch/utilsearch/internal/cli"
	"github.com/utilsearch/utilsearch/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "utilsearch",
		Short: "Typo-tolerant search for the utility tool catalog",
		Long: `utilsearch finds utility tools by name, keyword, category, or id,
tolerating typos and partial input.

Matching layers exact, word-index, n-gram, and edit-distance passes over an
in-memory index, then boosts recently used, favorited, and featured tools.
Preferences persist in a local SQLite database.`,
		Version: version.GetVersion(),
	}

	rootCmd.AddCommand(cli.NewSearchCmd())
	rootCmd.AddCommand(cli.NewSuggestCmd())
	rootCmd.AddCommand(cli.NewRecentCmd())
	rootCmd.AddCommand(cli.NewFavoriteCmd())
	rootCmd.AddCommand(cli.NewCategoriesCmd())
	rootCmd.AddCommand(cli.NewServeCmd())
	rootCmd.AddCommand(cli.NewBenchCmd())
	rootCmd.AddCommand(cli.NewVersionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
