package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/utilsearch/utilsearch/internal/bench"
)

// NewBenchCmd creates the 'bench' command.
func NewBenchCmd() *cobra.Command {
	var flags engineFlags
	var iterations int

	cmd := &cobra.Command{
		Use:   "bench [query ...]",
		Short: "Measure search latency",
		Long: `Replay a query workload against the engine and report latency
percentiles. With no arguments a built-in workload of exact, partial, and
misspelled queries is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, cleanup, err := buildEngine(&flags)
			if err != nil {
				return err
			}
			defer cleanup()

			result := bench.Run(engine, args, iterations)
			fmt.Print(bench.Format(result))
			return nil
		},
	}

	addEngineFlags(cmd, &flags)
	cmd.Flags().IntVar(&iterations, "iterations", 100, "iterations per query")

	return cmd
}
