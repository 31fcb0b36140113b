// Package cli implements the pathfinder command-line interface.
//
// The CLI is built with cobra and logs through charmbracelet/log. Commands:
//   - run: interactive terminal visualizer (bubbletea)
//   - solve: headless search with optional frame export
//   - compare: every registered algorithm on one grid, as a table
//   - algorithms: list the registered algorithms
//   - serve: HTTP front-end
//   - config: show the effective configuration
//
// All commands accept --verbose (-v) for debug logging and --config to
// point at a TOML configuration file.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pathfinder/pkg/buildinfo"
	"github.com/matzehuels/pathfinder/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "pathfinder"

	// maxSolveSteps bounds headless runs. Every cell is closed at most once
	// per frontier, so this is never reached on a valid grid.
	maxSolveSteps = 4 * 100 * 100
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config

	configPath string
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The configuration file is read before any subcommand runs.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Pathfinder visualizes grid search algorithms step by step",
		Long:         `Pathfinder is an interactive grid pathfinding visualizer. Draw walls, place a source and a target, and watch A*, Dijkstra and bidirectional search explore the grid.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/pathfinder/config.toml)")

	root.AddCommand(c.runCommand())
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.compareCommand())
	root.AddCommand(c.algorithmsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the configuration file and applies its log level unless
// debug logging was already requested.
func (c *CLI) loadConfig() error {
	path := c.configPath
	if path == "" {
		p, err := configFile()
		if err != nil {
			c.Logger.Debug("no config directory", "error", err)
			return nil
		}
		path = p
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return err
	}
	c.Config = cfg
	c.configPath = path

	if cfg.LogLevel != "" && c.Logger.GetLevel() != LogDebug {
		level, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			c.Logger.Warn("ignoring log_level", "value", cfg.LogLevel, "error", err)
		} else {
			c.SetLogLevel(level)
		}
	}
	observability.SetSearchHooks(newSearchLogger(c.Logger))
	c.Logger.Debug("config loaded", "path", path)
	return nil
}
