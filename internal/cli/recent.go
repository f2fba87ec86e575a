package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/utilsearch/utilsearch/internal/ui"
)

// NewRecentCmd creates the 'recent' command and its subcommands.
func NewRecentCmd() *cobra.Command {
	var flags engineFlags

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List recently used tools",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, cleanup, err := buildEngine(&flags)
			if err != nil {
				return err
			}
			defer cleanup()

			fmt.Print(ui.RenderTools(engine.RecentTools()))
			return nil
		},
	}
	addEngineFlags(cmd, &flags)

	var addFlags engineFlags
	addCmd := &cobra.Command{
		Use:   "add <tool-id>",
		Short: "Mark a tool as recently used",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, cleanup, err := buildEngine(&addFlags)
			if err != nil {
				return err
			}
			defer cleanup()

			engine.AddRecent(args[0])
			fmt.Printf("Marked %s as recently used\n", args[0])
			return nil
		},
	}
	addEngineFlags(addCmd, &addFlags)
	cmd.AddCommand(addCmd)

	var clearFlags engineFlags
	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear recently used tools and favorites",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, cleanup, err := buildEngine(&clearFlags)
			if err != nil {
				return err
			}
			defer cleanup()

			engine.ClearHistory()
			fmt.Println("History cleared")
			return nil
		},
	}
	addEngineFlags(clearCmd, &clearFlags)
	cmd.AddCommand(clearCmd)

	return cmd
}
