package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pathfinder/pkg/engine"
	"github.com/matzehuels/pathfinder/pkg/observability"
)

// runOpts holds the command-line flags for the run command.
type runOpts struct {
	grid      gridOpts
	algorithm string // initial algorithm
	speed     int    // initial steps per second
	logFile   string // log destination while the UI owns the terminal
}

// runCommand creates the interactive visualizer command.
func (c *CLI) runCommand() *cobra.Command {
	var opts runOpts

	cmd := &cobra.Command{
		Use:   "run [grid-file]",
		Short: "Open the interactive visualizer",
		Long: `Open the interactive grid visualizer in the terminal.

Click or press x to toggle walls, drag the source (red) or target (green) to
move them, and press space to watch the selected algorithm search. Tab cycles
through the algorithms.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("algorithm") {
				opts.algorithm = c.Config.Algorithm
			}
			if !cmd.Flags().Changed("speed") {
				opts.speed = c.Config.Speed
			}
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return c.runUI(cmd, path, opts)
		},
	}

	addGridFlags(cmd, &opts.grid)
	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", "", "initial algorithm key or name")
	cmd.Flags().IntVar(&opts.speed, "speed", engine.DefaultSpeed, "steps per second (0-100, 0 pauses)")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write logs to this file while the UI runs")

	return cmd
}

func (c *CLI) runUI(cmd *cobra.Command, path string, opts runOpts) error {
	g, err := c.buildGrid(cmd, path, opts.grid)
	if err != nil {
		return err
	}
	e := engine.New(g)
	if err := e.Select(opts.algorithm); err != nil {
		return err
	}
	if err := e.SetSpeed(opts.speed); err != nil {
		return err
	}

	// The UI owns the terminal; logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	// Hook loggers are derived copies and keep their writer, so they are
	// registered again for each output.
	c.Logger.SetOutput(logOut)
	observability.SetSearchHooks(newSearchLogger(c.Logger))
	defer func() {
		c.Logger.SetOutput(os.Stderr)
		observability.SetSearchHooks(newSearchLogger(c.Logger))
	}()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	model, onStep := newGridModel(ctx, e, opts.grid.seed)
	driver := engine.NewDriver(e, onStep)
	go driver.Run(ctx)

	p := tea.NewProgram(model.withDriver(driver),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("run ui: %w", err)
	}
	c.Logger.Debug("ui closed", "iterations", e.Iterations())
	return nil
}
