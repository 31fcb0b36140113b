package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pathfinder/pkg/errors"
	"github.com/matzehuels/pathfinder/pkg/grid"
)

// gridOpts holds the flags that describe the starting grid.
type gridOpts struct {
	width   int     // grid width when no file is given
	height  int     // grid height when no file is given
	source  string  // "x,y" override for the source cell
	target  string  // "x,y" override for the target cell
	density float64 // random wall density in [0, 1]
	maze    bool    // carve a maze instead of scattering walls
	seed    uint64  // generator seed
}

func addGridFlags(cmd *cobra.Command, o *gridOpts) {
	cmd.Flags().IntVar(&o.width, "width", grid.DefaultWidth, "grid width when no file is given")
	cmd.Flags().IntVar(&o.height, "height", grid.DefaultHeight, "grid height when no file is given")
	cmd.Flags().StringVar(&o.source, "source", "", "source cell as x,y")
	cmd.Flags().StringVar(&o.target, "target", "", "target cell as x,y")
	cmd.Flags().Float64Var(&o.density, "walls", 0, "scatter random walls with this density (0-1)")
	cmd.Flags().BoolVar(&o.maze, "maze", false, "carve a maze from the source")
	cmd.Flags().Uint64Var(&o.seed, "seed", 42, "seed for --walls and --maze")
}

// buildGrid loads the grid file at path, or creates an empty grid sized by
// flags and config, then applies endpoint and generator flags. Files ending
// in .txt or .map are read as ASCII maps, anything else as TOML.
func (c *CLI) buildGrid(cmd *cobra.Command, path string, o gridOpts) (*grid.Grid, error) {
	g, err := c.baseGrid(cmd, path, o)
	if err != nil {
		return nil, err
	}

	if o.source != "" {
		at, err := parseCoord(o.source)
		if err != nil {
			return nil, err
		}
		g.RemoveWall(at)
		if err := g.SetSource(at); err != nil {
			return nil, err
		}
	}
	if o.target != "" {
		at, err := parseCoord(o.target)
		if err != nil {
			return nil, err
		}
		g.RemoveWall(at)
		if err := g.SetTarget(at); err != nil {
			return nil, err
		}
	}

	switch {
	case o.maze:
		grid.Maze(g, o.seed)
	case o.density > 0:
		if err := grid.ScatterWalls(g, o.density, o.seed); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (c *CLI) baseGrid(cmd *cobra.Command, path string, o gridOpts) (*grid.Grid, error) {
	if path == "" {
		w, h := c.Config.Width, c.Config.Height
		if cmd.Flags().Changed("width") {
			w = o.width
		}
		if cmd.Flags().Changed("height") {
			h = o.height
		}
		return grid.New(w, h)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".map":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidGridFile, err, "read %s", path)
		}
		g, err := grid.ParseASCII(string(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return g, nil
	default:
		return grid.LoadFile(path)
	}
}

// parseCoord parses "x,y".
func parseCoord(s string) (grid.Coord, error) {
	var c grid.Coord
	if _, err := fmt.Sscanf(strings.ReplaceAll(s, " ", ""), "%d,%d", &c.X, &c.Y); err != nil {
		return c, errors.Wrap(errors.ErrCodeInvalidInput, err, "coordinate %q (want x,y)", s)
	}
	return c, nil
}
