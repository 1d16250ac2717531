package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clemenssielaff/ZodiacGraph/pkg/graph"
	"github.com/clemenssielaff/ZodiacGraph/pkg/io"
	"github.com/clemenssielaff/ZodiacGraph/pkg/layout"
	"github.com/clemenssielaff/ZodiacGraph/pkg/render"
	"github.com/clemenssielaff/ZodiacGraph/pkg/render/nodelink"
	"github.com/clemenssielaff/ZodiacGraph/pkg/render/ringsvg"
	"github.com/clemenssielaff/ZodiacGraph/pkg/style"
)

const (
	vizRing     = "ring"     // circular perimeter view, faithful to scene positions
	vizNodelink = "nodelink" // schematic Graphviz diagram

	defaultPNGScale = 2.0 // 2x resolution for high-DPI displays
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string   // output file path (or base path for multiple outputs)
	vizTypes  []string // visualization types: "ring", "nodelink"
	formats   []string // output formats: "svg", "pdf", "png", "dot"
	detailed  bool     // label nodelink edges with plug names
	stylePath string   // optional style TOML file
}

// renderCommand creates the render command for generating visualizations.
func (c *CLI) renderCommand() *cobra.Command {
	var vizTypesStr, formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a scene to SVG, PDF, PNG or DOT",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.vizTypes = parseVizTypes(vizTypesStr)
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single type/format) or base path (multiple)")
	cmd.Flags().StringVarP(&vizTypesStr, "type", "t", "", "visualization type(s): ring (default), nodelink (comma-separated)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), pdf, png, dot (comma-separated)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "label edges with plug names (nodelink)")
	cmd.Flags().StringVarP(&opts.stylePath, "style", "s", "", "style TOML file (defaults to built-in style)")

	return cmd
}

// parseVizTypes parses the --type flag into a slice of visualization types.
// If empty, defaults to ["ring"].
func parseVizTypes(s string) []string {
	if s == "" {
		return []string{vizRing}
	}
	return strings.Split(s, ",")
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{"svg"}
	}
	return strings.Split(s, ",")
}

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{"svg": true, "pdf": true, "png": true, "dot": true}

func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return fmt.Errorf("invalid format: %s (must be 'svg', 'pdf', 'png', or 'dot')", f)
		}
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input. If output carries a
// known format extension, that extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func (c *CLI) runRender(input string, opts *renderOpts) error {
	st, err := loadStyle(opts.stylePath)
	if err != nil {
		return err
	}

	scene, err := io.ImportJSON(input)
	if err != nil {
		return err
	}
	c.Logger.Infof("Loaded scene: %d nodes, %d edges", scene.NodeCount(), scene.EdgeCount())

	layout.LayoutScene(scene, st)

	if len(opts.vizTypes) == 1 && len(opts.formats) == 1 {
		return c.renderSingle(scene, st, opts.vizTypes[0], opts.formats[0], input, opts)
	}
	return c.renderMultiple(scene, st, input, opts)
}

// renderSingle renders one type/format combination to a single output file.
// If opts.output is empty, the output path is derived from the input name.
func (c *CLI) renderSingle(scene *graph.Scene, st style.Style, vizType, format, input string, opts *renderOpts) error {
	data, err := c.renderScene(scene, st, vizType, format, opts)
	if err != nil {
		return err
	}

	outputPath := opts.output
	if outputPath == "" {
		outputPath = basePath("", input) + "." + format
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return err
	}

	c.Logger.Infof("Generated %s", outputPath)
	printFile(outputPath)
	return nil
}

// renderMultiple renders every requested type/format combination to separate
// files named base_type.format (or base.format for a single type).
func (c *CLI) renderMultiple(scene *graph.Scene, st style.Style, input string, opts *renderOpts) error {
	base := basePath(opts.output, input)

	for _, vizType := range opts.vizTypes {
		for _, format := range opts.formats {
			data, err := c.renderScene(scene, st, vizType, format, opts)
			if errors.Is(err, errSkipFormat) {
				c.Logger.Debugf("Skipping %s/%s (unsupported combination)", vizType, format)
				continue
			}
			if err != nil {
				return fmt.Errorf("%s/%s: %w", vizType, format, err)
			}

			var path string
			if len(opts.vizTypes) == 1 {
				path = fmt.Sprintf("%s.%s", base, format)
			} else {
				path = fmt.Sprintf("%s_%s.%s", base, vizType, format)
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return err
			}
			c.Logger.Infof("Generated %s", path)
			printFile(path)
		}
	}
	return nil
}

// errSkipFormat marks an unsupported format/visualization combination.
var errSkipFormat = fmt.Errorf("skip unsupported format")

// renderScene dispatches to the appropriate renderer.
func (c *CLI) renderScene(scene *graph.Scene, st style.Style, vizType, format string, opts *renderOpts) ([]byte, error) {
	switch vizType {
	case vizRing:
		return c.renderRing(scene, st, format)
	case vizNodelink:
		return c.renderNodeLink(scene, format, opts)
	default:
		return nil, fmt.Errorf("unknown visualization type: %s", vizType)
	}
}

// renderRing generates the circular perimeter view. DOT output only makes
// sense for the schematic nodelink diagram and is skipped here.
func (c *CLI) renderRing(scene *graph.Scene, st style.Style, format string) ([]byte, error) {
	svg := ringsvg.Render(scene, st)

	switch format {
	case "svg":
		return svg, nil
	case "pdf":
		return render.ToPDF(svg)
	case "png":
		return render.ToPNG(svg, defaultPNGScale)
	case "dot":
		return nil, errSkipFormat
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}

// renderNodeLink generates a node-link diagram using Graphviz.
func (c *CLI) renderNodeLink(scene *graph.Scene, format string, opts *renderOpts) ([]byte, error) {
	dot := nodelink.ToDOT(scene, nodelink.Options{Detailed: opts.detailed})

	switch format {
	case "dot":
		return []byte(dot), nil
	case "svg":
		return nodelink.RenderSVG(dot)
	case "pdf":
		return nodelink.RenderPDF(dot)
	case "png":
		return nodelink.RenderPNG(dot, defaultPNGScale)
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}
