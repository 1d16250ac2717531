package cli

import (
	"fmt"
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/clemenssielaff/ZodiacGraph/pkg/graph"
	"github.com/clemenssielaff/ZodiacGraph/pkg/io"
	"github.com/clemenssielaff/ZodiacGraph/pkg/layout"
)

// layoutOpts holds the command-line flags for the layout command.
type layoutOpts struct {
	stylePath string // optional style TOML file
	node      string // restrict output to one node by name
}

// layoutCommand creates the layout command, which runs the arrangement pass
// over a scene file and prints the resulting placement per node.
func (c *CLI) layoutCommand() *cobra.Command {
	var opts layoutOpts

	cmd := &cobra.Command{
		Use:   "layout [file]",
		Short: "Arrange plugs on node perimeters and show the placement",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.stylePath, "style", "s", "", "style TOML file (defaults to built-in style)")
	cmd.Flags().StringVarP(&opts.node, "node", "n", "", "only show the named node")

	return cmd
}

func (c *CLI) runLayout(input string, opts *layoutOpts) error {
	st, err := loadStyle(opts.stylePath)
	if err != nil {
		return err
	}

	scene, err := io.ImportJSON(input)
	if err != nil {
		return err
	}
	printStats(scene.NodeCount(), scene.EdgeCount())

	p := newProgress(c.Logger)
	layout.LayoutScene(scene, st)
	p.done(fmt.Sprintf("Arranged %d nodes", scene.NodeCount()))

	for _, n := range sortedNodes(scene) {
		if opts.node != "" && n.Name() != opts.node {
			continue
		}
		// Re-running the pass on a laid-out scene is stable, so this only
		// recovers the placement data for display.
		printPlacement(n, layout.Pass(n, st))
	}
	return nil
}

// printPlacement renders one node's placement as a table.
func printPlacement(n *graph.Node, res layout.Result) {
	fmt.Println()
	fmt.Println(StyleTitle.Render(n.Name()) + " " +
		StyleDim.Render(fmt.Sprintf("r=%.1f zones=%d", n.Radius(), res.ZoneCount)))

	if len(res.Placements) == 0 {
		fmt.Println(StyleDim.Render("  no plugs"))
		return
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	rows := make([][]string, len(res.Placements))
	for i, pl := range res.Placements {
		rows[i] = []string{
			pl.Plug.Name(),
			directionLabel(pl.Plug.Direction().String()),
			fmt.Sprintf("%d", pl.Plug.EdgeCount()),
			fmt.Sprintf("%d", pl.Zone),
			fmt.Sprintf("%6.1f°", pl.Angle*180/math.Pi),
			fmt.Sprintf("%5.1f°", pl.Sweep*180/math.Pi),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Plug", "Dir", "Edges", "Zone", "Angle", "Sweep").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle()
		})

	fmt.Println(t.Render())
}
