package cli

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/utilsearch/utilsearch/internal/server"
)

// NewServeCmd creates the 'serve' command for running the HTTP API.
func NewServeCmd() *cobra.Command {
	var flags engineFlags
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the search HTTP API",
		Long: `Start the JSON HTTP API that web hosts embed behind their search UI.

Endpoints:
  GET  /api/search?q=&limit=  ranked results
  GET  /api/suggest?q=        typeahead suggestions
  GET  /api/recent            recently used tools
  POST /api/recent            mark a tool as used
  GET  /api/favorites         favorited tools
  POST /api/favorites         toggle a favorite
  GET  /api/status            catalog size and categories`,
		Example: `  utilsearch serve
  utilsearch serve --port 9000 --catalog ./catalog.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, cleanup, err := buildEngine(&flags)
			if err != nil {
				return err
			}
			defer cleanup()

			if port == "" {
				port = os.Getenv("UTILSEARCH_PORT")
			}
			if port == "" {
				port = "8990"
			}

			srv := server.New(port, engine)

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			errChan := make(chan error, 1)
			go func() {
				log.Printf("Server listening on http://localhost:%s", port)
				errChan <- srv.ListenAndServe()
			}()

			select {
			case sig := <-sigChan:
				log.Printf("Received signal: %v, shutting down gracefully...", sig)

				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := srv.Shutdown(ctx); err != nil {
					return fmt.Errorf("server shutdown failed: %w", err)
				}
				log.Println("Shutdown complete")
				return nil

			case err := <-errChan:
				if err != nil && err != http.ErrServerClosed {
					return fmt.Errorf("server error: %w", err)
				}
				return nil
			}
		},
	}

	addEngineFlags(cmd, &flags)
	cmd.Flags().StringVar(&port, "port", "", "port to listen on (default 8990, or UTILSEARCH_PORT)")

	return cmd
}
