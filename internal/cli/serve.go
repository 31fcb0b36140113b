package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pathfinder/internal/server"
	"github.com/matzehuels/pathfinder/pkg/cache"
	"github.com/matzehuels/pathfinder/pkg/observability"
)

// serveCommand creates the HTTP front-end command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr        string
		ttl         time.Duration
		maxSessions int
		cacheSize   int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the visualizer over HTTP",
		Long: `Serve the visualizer over HTTP.

Clients create sessions, edit the grid, control the search and fetch frames
as SVG, PNG, text or JSON. Stop with Ctrl-C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = c.Config.Server.Addr
			}
			observability.SetHTTPHooks(newHTTPLogger(c.Logger))
			srv := server.New(c.Logger, server.Config{
				Addr:         addr,
				SessionTTL:   ttl,
				MaxSessions:  maxSessions,
				CacheEntries: cacheSize,
			})
			printInfo("Listening on %s", StyleHighlight.Render("http://"+addr))
			printNextStep("Create a session", "curl -X POST http://"+addr+"/api/sessions")
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().DurationVar(&ttl, "session-ttl", server.DefaultTTL, "idle time before a session expires")
	cmd.Flags().IntVar(&maxSessions, "max-sessions", server.DefaultMaxSessions, "maximum concurrent sessions")
	cmd.Flags().IntVar(&cacheSize, "cache-size", cache.DefaultMaxEntries, "search tree layouts kept in memory (-1 disables)")

	return cmd
}
