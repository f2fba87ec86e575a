package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/utilsearch/utilsearch/internal/ui"
)

// NewSearchCmd creates the 'search' command.
func NewSearchCmd() *cobra.Command {
	var flags engineFlags
	var limit int
	var markUsed bool

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the utility catalog",
		Long: `Search the utility catalog by name, keyword, category, or id.

Matching is typo-tolerant: partial words, transposed characters, and
single-character mistakes still find the right tool. Recently used and
favorited tools rank higher.`,
		Example: `  # Find the JSON formatter, typos included
  utilsearch search json
  utilsearch search jsno

  # Multi-word queries match across name and description
  utilsearch search "convert units"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, cleanup, err := buildEngine(&flags)
			if err != nil {
				return err
			}
			defer cleanup()

			query := strings.Join(args, " ")
			results := engine.Search(query)
			if limit > 0 && len(results) > limit {
				results = results[:limit]
			}

			fmt.Print(ui.RenderResults(results))

			if markUsed && len(results) > 0 {
				engine.AddRecent(results[0].Tool.ID)
			}
			return nil
		},
	}

	addEngineFlags(cmd, &flags)
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "maximum number of results")
	cmd.Flags().BoolVar(&markUsed, "use", false, "record the top result as recently used")

	return cmd
}
