package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/utilsearch/utilsearch/internal/ui"
)

// NewSuggestCmd creates the 'suggest' command.
func NewSuggestCmd() *cobra.Command {
	var flags engineFlags

	cmd := &cobra.Command{
		Use:   "suggest <partial-query>",
		Short: "Show typeahead suggestions for a partial query",
		Long: `Show the typed suggestions (utilities, categories, keywords) the
engine would surface for an incremental query, the way a search dropdown
would as the user types.`,
		Example: `  utilsearch suggest js
  utilsearch suggest conv`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, cleanup, err := buildEngine(&flags)
			if err != nil {
				return err
			}
			defer cleanup()

			suggestions := engine.Suggestions(strings.Join(args, " "))
			fmt.Print(ui.RenderSuggestions(suggestions))
			return nil
		},
	}

	addEngineFlags(cmd, &flags)
	return cmd
}
