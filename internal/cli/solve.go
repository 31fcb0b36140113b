package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pathfinder/pkg/engine"
	"github.com/matzehuels/pathfinder/pkg/errors"
	"github.com/matzehuels/pathfinder/pkg/render"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	grid      gridOpts
	algorithm string   // registry key or name
	formats   []string // export formats: svg, png, dot, json, txt
	output    string   // output file (single format) or base path; "-" for stdout
	cellSize  int      // pixels per cell for svg and png
	noLinks   bool     // hide parent links in svg and png
	pathLimit int      // coordinates printed before the path is elided
}

// solveCommand creates the solve command: a headless run of one algorithm
// with optional export of the final frame.
func (c *CLI) solveCommand() *cobra.Command {
	var formatsStr string
	opts := solveOpts{cellSize: render.DefaultCellSize, pathLimit: 12}

	cmd := &cobra.Command{
		Use:   "solve [grid-file]",
		Short: "Run one algorithm to completion and report the path",
		Long: `Run one algorithm on a grid without the interactive UI.

The grid comes from a TOML preset or ASCII map file, or is an empty grid
sized by --width/--height. The final frame can be exported with --format.`,
		Example: `  pathfinder solve maze.toml -a dijkstra
  pathfinder solve --maze --seed 7 -f svg,png -o maze
  pathfinder solve room.map -f txt -o -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if formatsStr != "" {
				opts.formats = parseFormats(formatsStr)
			}
			if err := errors.ValidateFormats(opts.formats); err != nil {
				return err
			}
			if !cmd.Flags().Changed("algorithm") {
				opts.algorithm = c.Config.Algorithm
			}
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return c.runSolve(cmd, path, opts)
		},
	}

	addGridFlags(cmd, &opts.grid)
	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", "", "algorithm key or name (see 'pathfinder algorithms')")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "export format(s): svg, png, dot, json, txt (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format), base path (multiple), or - for stdout")
	cmd.Flags().IntVar(&opts.cellSize, "cell-size", opts.cellSize, "pixels per cell for svg and png")
	cmd.Flags().BoolVar(&opts.noLinks, "no-links", false, "hide parent links in svg and png")

	return cmd
}

func (c *CLI) runSolve(cmd *cobra.Command, path string, opts solveOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	g, err := c.buildGrid(cmd, path, opts.grid)
	if err != nil {
		return err
	}
	e := engine.New(g)
	if err := e.Select(opts.algorithm); err != nil {
		return err
	}
	logger.Debug("grid ready", "size", sizeString(g.Width(), g.Height()), "walls", g.WallCount(), "algorithm", e.Algorithm().Name)

	spinner := newSpinner(ctx, "Solving with "+e.Algorithm().Name+"...")
	spinner.Start()
	err = solve(ctx, e, maxSolveSteps, func(iterations int) {
		spinner.SetMessage(fmt.Sprintf("Solving with %s... %d steps", e.Algorithm().Name, iterations))
	})
	spinner.Stop()
	if err != nil {
		return err
	}

	snap := e.Snapshot()
	printSnapshotSummary(snap, opts.pathLimit)

	if len(opts.formats) == 0 {
		return nil
	}
	return writeFrames(ctx, snap, opts)
}

// solve starts e and steps it until done. progress, if set, is called every
// 256 iterations.
func solve(ctx context.Context, e *engine.Engine, maxSteps int, progress func(int)) error {
	if err := e.Start(); err != nil {
		return err
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		done, err := e.Step()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		n := e.Iterations()
		if n >= maxSteps {
			return errors.New(errors.ErrCodeInternal, "no result after %d steps", n)
		}
		if progress != nil && n%256 == 0 {
			progress(n)
		}
	}
}

func printSnapshotSummary(s engine.Snapshot, pathLimit int) {
	if !s.Found {
		printWarning("No path from %s to %s", s.Source, s.Target)
		printKeyValue("algorithm", s.Algorithm)
		printKeyValue("steps", fmt.Sprint(s.Iterations))
		printKeyValue("visited", fmt.Sprint(len(s.Closed)))
		return
	}
	printSuccess("Path found from %s to %s", s.Source, s.Target)
	printKeyValue("algorithm", s.Algorithm)
	printKeyValue("cost", formatCost(s.Cost))
	printKeyValue("length", fmt.Sprint(len(s.Paths[0])))
	printKeyValue("steps", fmt.Sprint(s.Iterations))
	printKeyValue("visited", fmt.Sprint(len(s.Closed)))
	printKeyValue("elapsed", s.Elapsed.String())
	printKeyValue("path", formatPath(s.Paths[0], pathLimit))
}

// parseFormats parses the --format flag into a slice of output formats.
func parseFormats(s string) []string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// writeFrames renders snap in each requested format. A single format goes
// to --output verbatim; several formats share --output as base path.
func writeFrames(ctx context.Context, snap engine.Snapshot, opts solveOpts) error {
	prog := newProgress(loggerFromContext(ctx))
	renderOpts := []render.Option{render.WithCellSize(opts.cellSize), render.WithLinks(!opts.noLinks)}
	for _, format := range opts.formats {
		data, err := render.Render(snap, format, renderOpts...)
		if err != nil {
			return fmt.Errorf("render %s: %w", format, err)
		}
		if opts.output == "-" {
			if _, err := os.Stdout.Write(data); err != nil {
				return err
			}
			continue
		}
		path := outputPath(opts.output, format, len(opts.formats) > 1)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	prog.done(fmt.Sprintf("Exported %d frame(s)", len(opts.formats)))
	return nil
}

// outputPath returns the file for one format. Without an explicit output
// the base name is "pathfinder".
func outputPath(output, format string, multi bool) string {
	if output == "" {
		return appName + "." + format
	}
	if multi {
		return strings.TrimSuffix(output, "."+format) + "." + format
	}
	return output
}
