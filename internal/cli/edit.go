package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/clemenssielaff/ZodiacGraph/pkg/geom"
	"github.com/clemenssielaff/ZodiacGraph/pkg/graph"
	"github.com/clemenssielaff/ZodiacGraph/pkg/io"
	"github.com/clemenssielaff/ZodiacGraph/pkg/layout"
	"github.com/clemenssielaff/ZodiacGraph/pkg/style"
)

// moveStep is how far one keypress moves the selected node, in scene units.
const moveStep = 20.0

// editOpts holds the command-line flags for the edit command.
type editOpts struct {
	stylePath string
	output    string // save target; defaults to the input file
}

// editCommand creates the edit command, a terminal editor for moving nodes
// around a scene. Every move re-runs the layout pass so the placement shown
// always matches the geometry.
func (c *CLI) editCommand() *cobra.Command {
	var opts editOpts

	cmd := &cobra.Command{
		Use:   "edit [file]",
		Short: "Edit node positions interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEdit(args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.stylePath, "style", "s", "", "style TOML file (defaults to built-in style)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "save target (defaults to the input file)")

	return cmd
}

func (c *CLI) runEdit(input string, opts *editOpts) error {
	st, err := loadStyle(opts.stylePath)
	if err != nil {
		return err
	}

	scene, err := io.ImportJSON(input)
	if err != nil {
		return err
	}
	layout.LayoutScene(scene, st)

	savePath := opts.output
	if savePath == "" {
		savePath = input
	}

	m := newEditModel(scene, st, savePath)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return err
	}

	if fm, ok := final.(editModel); ok && fm.saved {
		printSuccess("Saved %s", savePath)
	}
	return nil
}

// editModel is the bubbletea model for the scene editor.
type editModel struct {
	scene    *graph.Scene
	style    style.Style
	savePath string

	nodes  []*graph.Node // name-sorted selection order
	cursor int
	saved  bool
	status string
}

func newEditModel(scene *graph.Scene, st style.Style, savePath string) editModel {
	return editModel{
		scene:    scene,
		style:    st,
		savePath: savePath,
		nodes:    sortedNodes(scene),
	}
}

func (m editModel) Init() tea.Cmd {
	return nil
}

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case "tab", "n":
		if len(m.nodes) > 0 {
			m.cursor = (m.cursor + 1) % len(m.nodes)
		}

	case "shift+tab", "p":
		if len(m.nodes) > 0 {
			m.cursor = (m.cursor + len(m.nodes) - 1) % len(m.nodes)
		}

	case "up", "k":
		m.moveSelected(geom.Vec2{Y: moveStep})
	case "down", "j":
		m.moveSelected(geom.Vec2{Y: -moveStep})
	case "left", "h":
		m.moveSelected(geom.Vec2{X: -moveStep})
	case "right", "l":
		m.moveSelected(geom.Vec2{X: moveStep})

	case "s":
		if err := io.ExportJSON(m.scene, m.savePath); err != nil {
			m.status = StyleWarning.Render(fmt.Sprintf("save failed: %v", err))
		} else {
			m.saved = true
			m.status = StyleSuccess.Render("saved " + m.savePath)
		}
	}
	return m, nil
}

// moveSelected displaces the selected node and re-arranges it together with
// every node it connects to, since their plugs point at the moved node.
func (m *editModel) moveSelected(delta geom.Vec2) {
	if len(m.nodes) == 0 {
		return
	}
	n := m.nodes[m.cursor]
	n.SetPos(n.Pos().Add(delta))

	layout.Pass(n, m.style)
	for _, p := range n.Plugs() {
		for _, other := range p.ConnectedPlugs() {
			layout.Pass(other.Node(), m.style)
		}
	}
	m.saved = false
	m.status = ""
}

func (m editModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Scene Editor"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓/←/→ move  tab next node  s save  q quit"))
	b.WriteString("\n\n")

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	rows := make([][]string, len(m.nodes))
	for i, n := range m.nodes {
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		rows[i] = []string{
			cursor,
			n.Name(),
			fmt.Sprintf("%.0f, %.0f", n.Pos().X, n.Pos().Y),
			fmt.Sprintf("%.1f", n.Radius()),
			fmt.Sprintf("%d", n.PlugCount()),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Node", "Position", "Radius", "Plugs").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row == m.cursor {
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n")

	b.WriteString(StyleDim.Render(fmt.Sprintf("  %d nodes · %d edges", m.scene.NodeCount(), m.scene.EdgeCount())))
	if m.status != "" {
		b.WriteString("  " + m.status)
	}
	b.WriteString("\n")

	return b.String()
}
