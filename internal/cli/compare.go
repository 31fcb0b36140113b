package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pathfinder/pkg/errors"
	"github.com/matzehuels/pathfinder/pkg/grid"
	"github.com/matzehuels/pathfinder/pkg/search"
)

// compareCommand creates the compare command, which runs every registered
// algorithm on the same grid.
func (c *CLI) compareCommand() *cobra.Command {
	var opts gridOpts

	cmd := &cobra.Command{
		Use:   "compare [grid-file]",
		Short: "Run every algorithm on one grid and compare the results",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			g, err := c.buildGrid(cmd, path, opts)
			if err != nil {
				return err
			}
			results, err := c.compare(cmd, g)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), compareTable(results))
			return nil
		},
	}

	addGridFlags(cmd, &opts)
	return cmd
}

// compare runs each algorithm of a fresh registry over g.
func (c *CLI) compare(cmd *cobra.Command, g *grid.Grid) ([]search.Result, error) {
	if g.Source() == g.Target() {
		return nil, errors.New(errors.ErrCodeSourceIsTarget, "Source cannot be the same as the target")
	}
	ctx := cmd.Context()
	reg := search.DefaultRegistry(g)
	spinner := newSpinner(ctx, "Comparing...")
	spinner.Start()

	results := make([]search.Result, 0, reg.Len())
	for _, entry := range reg.Entries() {
		spinner.SetMessage("Running " + entry.Name + "...")
		res, err := search.Run(ctx, entry.Algorithm, maxSolveSteps)
		if err != nil {
			spinner.Stop()
			return nil, fmt.Errorf("%s: %w", entry.Name, err)
		}
		results = append(results, res)
	}
	spinner.StopWithSuccess(fmt.Sprintf("Compared %d algorithms on a %s grid", len(results), sizeString(g.Width(), g.Height())))
	return results, nil
}

// compareTable renders results as a bordered table. The cheapest cost is
// highlighted.
func compareTable(results []search.Result) string {
	best := -1.0
	for _, r := range results {
		if r.Found && (best < 0 || r.Cost < best) {
			best = r.Cost
		}
	}

	rows := make([][]string, len(results))
	for i, r := range results {
		found, cost := "no", "-"
		if r.Found {
			found, cost = "yes", formatCost(r.Cost)
		}
		rows[i] = []string{r.Algorithm, found, cost, fmt.Sprint(len(r.Path)), fmt.Sprint(r.Steps), fmt.Sprint(r.Visited), r.Duration.Round(time.Microsecond).String()}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Algorithm", "Found", "Cost", "Length", "Steps", "Visited", "Time").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == -1 {
				return headerStyle.Padding(0, 1)
			}
			r := results[row]
			switch {
			case !r.Found:
				return base.Foreground(colorDim)
			case col == 2 && r.Cost-best < 1e-9:
				return base.Foreground(colorGreen).Bold(true)
			case col == 0:
				return base.Foreground(colorCyan)
			}
			return base
		})
	return t.Render()
}

// algorithmsCommand creates the algorithms command.
func (c *CLI) algorithmsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "algorithms",
		Short: "List the available search algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := search.DefaultRegistry(grid.Default())
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, StyleTitle.Render("Algorithms"))
			for _, e := range reg.Entries() {
				marker := "  "
				if e.Key == c.Config.Algorithm {
					marker = StyleHighlight.Render("▸ ")
				}
				fmt.Fprintf(out, "%s%-18s %s\n", marker, e.Key, StyleDim.Render(e.Name))
			}
			return nil
		},
	}
}
