package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/utilsearch/utilsearch/internal/ui"
)

// NewFavoriteCmd creates the 'favorite' command and its toggle subcommand.
func NewFavoriteCmd() *cobra.Command {
	var flags engineFlags

	cmd := &cobra.Command{
		Use:     "favorite",
		Aliases: []string{"fav"},
		Short:   "List favorited tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, cleanup, err := buildEngine(&flags)
			if err != nil {
				return err
			}
			defer cleanup()

			fmt.Print(ui.RenderTools(engine.FavoriteTools()))
			return nil
		},
	}
	addEngineFlags(cmd, &flags)

	var toggleFlags engineFlags
	toggleCmd := &cobra.Command{
		Use:   "toggle <tool-id>",
		Short: "Favorite a tool, or unfavorite it if already favorited",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, cleanup, err := buildEngine(&toggleFlags)
			if err != nil {
				return err
			}
			defer cleanup()

			if engine.ToggleFavorite(args[0]) {
				fmt.Printf("Favorited %s\n", args[0])
			} else {
				fmt.Printf("Unfavorited %s\n", args[0])
			}
			return nil
		},
	}
	addEngineFlags(toggleCmd, &toggleFlags)
	cmd.AddCommand(toggleCmd)

	return cmd
}
