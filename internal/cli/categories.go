package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCategoriesCmd creates the 'categories' command.
func NewCategoriesCmd() *cobra.Command {
	var flags engineFlags

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List catalog categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, cleanup, err := buildEngine(&flags)
			if err != nil {
				return err
			}
			defer cleanup()

			for _, c := range engine.Categories() {
				fmt.Println(c)
			}
			return nil
		},
	}

	addEngineFlags(cmd, &flags)
	return cmd
}
