// Package nodelink renders the logical connection graph as a traditional
// node-link diagram.
//
// The diagram ignores scene positions and ring placement entirely: Graphviz
// lays the nodes out on its own. It is the schematic complement to the
// faithful circular view in pkg/render/ringsvg, and is mostly useful to get
// an overview of large scenes.
//
// Convert a scene to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(scene, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// For PDF or PNG output pipe the SVG through render.ToPDF / render.ToPNG.
package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/clemenssielaff/ZodiacGraph/pkg/graph"
	"github.com/clemenssielaff/ZodiacGraph/pkg/observability"
	"github.com/clemenssielaff/ZodiacGraph/pkg/render"
)

// Options configures node-link diagram generation.
type Options struct {
	// Detailed labels edges with their source and target plug names.
	// When false, edges are drawn bare.
	Detailed bool
}

// ToDOT converts a scene's connection graph to Graphviz DOT format.
// Node names double as labels; nodes are emitted in name order so the
// output is deterministic.
func ToDOT(s *graph.Scene, opts Options) string {
	nodes := s.Nodes()
	slices.SortFunc(nodes, func(a, b *graph.Node) int {
		return strings.Compare(a.Name(), b.Name())
	})

	var buf bytes.Buffer
	buf.WriteString("digraph scene {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")

	for _, n := range nodes {
		fmt.Fprintf(&buf, "  %q;\n", n.Name())
	}

	buf.WriteString("\n")
	for _, n := range nodes {
		for _, p := range n.Plugs() {
			for _, e := range p.Edges() {
				if e.From() != p {
					continue
				}
				if opts.Detailed {
					fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n",
						e.From().Node().Name(), e.To().Node().Name(),
						e.From().Name()+" / "+e.To().Name())
				} else {
					fmt.Fprintf(&buf, "  %q -> %q;\n",
						e.From().Node().Name(), e.To().Node().Name())
				}
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	start := time.Now()
	observability.Render().OnRenderStart("nodelink", strings.Count(dot, ";"))

	svg, err := renderSVG(dot)
	observability.Render().OnRenderComplete("nodelink", len(svg), time.Since(start), err)
	return svg, err
}

// RenderPDF renders a DOT graph to PDF by converting the SVG output.
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph to PNG at the given scale factor.
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}

func renderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the Graphviz svg tag so the view box starts at
// the origin; some SVG consumers clip content otherwise.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
