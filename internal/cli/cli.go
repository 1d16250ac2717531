// Package cli implements the zodiac command-line interface.
package cli

import (
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/clemenssielaff/ZodiacGraph/pkg/buildinfo"
	"github.com/clemenssielaff/ZodiacGraph/pkg/graph"
	"github.com/clemenssielaff/ZodiacGraph/pkg/style"
)

const (
	// appName is the application name used for display and completions.
	appName = "zodiac"

	// defaultAddr is the default listen address for the serve command.
	defaultAddr = ":8420"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
	}
}

// SetLogLevel updates the logger's level. With debug enabled the layout and
// render observability hooks start reporting through the logger too.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		installDebugHooks(c.Logger)
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Zodiac arranges and renders circular node graphs",
		Long:         `Zodiac is a tool for circular node graphs: nodes are rings whose plugs are placed on the perimeter by a zone arrangement pass, so that every plug points toward the nodes it connects to.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.editCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadStyle reads a style file when the flag is set and falls back to the
// built-in defaults otherwise.
func loadStyle(path string) (style.Style, error) {
	if path == "" {
		return style.Default(), nil
	}
	return style.Load(path)
}

// sortedNodes returns the scene's nodes ordered by name for stable output.
func sortedNodes(s *graph.Scene) []*graph.Node {
	nodes := s.Nodes()
	slices.SortFunc(nodes, func(a, b *graph.Node) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return nodes
}
