// Package ringsvg renders a laid-out scene as an SVG document in the
// circular style of the interactive editor: nodes as perimeter rings with a
// core circle and label, plugs as arc segments at their assigned angle and
// sweep, and edges as cubic beziers leaving the rings along the plug
// normals.
//
// The renderer consumes placement state only (node positions and radii,
// plug normals and sweeps); it never triggers a layout pass itself. Run
// layout.LayoutScene first or the default plug shapes are drawn.
//
// Scene coordinates are y-up; SVG is y-down. The renderer flips the y axis
// when writing coordinates, so an "upper half" plug appears above the node
// label on screen.
package ringsvg

import (
	"bytes"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/clemenssielaff/ZodiacGraph/pkg/geom"
	"github.com/clemenssielaff/ZodiacGraph/pkg/graph"
	"github.com/clemenssielaff/ZodiacGraph/pkg/observability"
	"github.com/clemenssielaff/ZodiacGraph/pkg/style"
)

// margin keeps edges and plug arcs clear of the document border.
const margin = 60.0

// Render draws the scene as a standalone SVG document.
func Render(s *graph.Scene, st style.Style) []byte {
	start := time.Now()
	nodes := s.Nodes()
	observability.Render().OnRenderStart("ringsvg", len(nodes))

	slices.SortFunc(nodes, func(a, b *graph.Node) int {
		return strings.Compare(a.Name(), b.Name())
	})

	minX, minY, maxX, maxY := bounds(nodes)
	var buf bytes.Buffer
	fmt.Fprintf(&buf,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s">`+"\n",
		num(minX-margin), num(-maxY-margin),
		num(maxX-minX+2*margin), num(maxY-minY+2*margin))

	// Edges first so they pass under the rings.
	for _, n := range nodes {
		for _, p := range n.Plugs() {
			for _, e := range p.Edges() {
				if e.From() != p {
					continue
				}
				writeEdge(&buf, e, st)
			}
		}
	}
	for _, n := range nodes {
		writeNode(&buf, n, st)
	}

	buf.WriteString("</svg>\n")
	out := buf.Bytes()
	observability.Render().OnRenderComplete("ringsvg", len(out), time.Since(start), nil)
	return out
}

func writeNode(buf *bytes.Buffer, n *graph.Node, st style.Style) {
	pos := n.Pos()
	fmt.Fprintf(buf, `<g id=%q>`+"\n", "node-"+n.ID().String())

	// Perimeter ring.
	fmt.Fprintf(buf,
		`<circle cx="%s" cy="%s" r="%s" fill="none" stroke="%s" stroke-opacity="0.4" stroke-width="%s"/>`+"\n",
		num(pos.X), num(-pos.Y), num(n.Radius()), st.NodeLine, num(st.PlugWidth))

	for _, p := range n.Plugs() {
		writePlug(buf, p, st)
	}

	// Core circle and label on top.
	fmt.Fprintf(buf,
		`<circle cx="%s" cy="%s" r="%s" fill="%s" stroke="%s"/>`+"\n",
		num(pos.X), num(-pos.Y), num(st.CoreRadius), st.NodeFill, st.NodeLine)
	fmt.Fprintf(buf,
		`<text x="%s" y="%s" fill="%s" text-anchor="middle" dominant-baseline="central" font-size="%s">%s</text>`+"\n",
		num(pos.X), num(-pos.Y), st.LabelText, num(st.LabelHeight*0.6), escape(n.Name()))

	buf.WriteString("</g>\n")
}

// writePlug draws one plug as an arc band on the perimeter, swept around
// the plug's placement angle.
func writePlug(buf *bytes.Buffer, p *graph.Plug, st style.Style) {
	n := p.Node()
	angle := p.Normal().Angle()
	half := p.Sweep() / 2
	from := arcPoint(n.Pos(), n.Radius(), angle-half)
	to := arcPoint(n.Pos(), n.Radius(), angle+half)

	color := st.PlugOut
	if p.Direction() == graph.DirIn {
		color = st.PlugIn
	}

	// Increasing scene angle runs counter-clockwise on screen, so the
	// sweep flag stays 0.
	fmt.Fprintf(buf,
		`<path d="M %s %s A %s %s 0 0 0 %s %s" fill="none" stroke="%s" stroke-width="%s"/>`+"\n",
		num(from.X), num(-from.Y), num(n.Radius()), num(n.Radius()),
		num(to.X), num(-to.Y), color, num(st.PlugWidth))
}

// writeEdge draws a cubic bezier between the two plug positions. Control
// points sit along the plug normals, pushed out proportionally to the
// manhattan distance of the endpoints and capped for far-apart nodes.
func writeEdge(buf *bytes.Buffer, e *graph.Edge, st style.Style) {
	from, to := e.From().Pos(), e.To().Pos()

	diff := to.Sub(from)
	manhattan := math.Abs(diff.X) + math.Abs(diff.Y)
	ctrlDistance := math.Min(st.MaxCtrlDistance, manhattan*st.CtrlExpansion)

	c1 := from.Add(e.From().Normal().Scale(ctrlDistance))
	c2 := to.Add(e.To().Normal().Scale(ctrlDistance))

	fmt.Fprintf(buf,
		`<path d="M %s %s C %s %s, %s %s, %s %s" fill="none" stroke="%s" stroke-width="2"/>`+"\n",
		num(from.X), num(-from.Y), num(c1.X), num(-c1.Y),
		num(c2.X), num(-c2.Y), num(to.X), num(-to.Y), st.EdgeLine)
}

func arcPoint(center geom.Vec2, radius, angle float64) geom.Vec2 {
	return center.Add(geom.FromAngle(angle).Scale(radius))
}

// bounds returns the scene-space bounding box over all node rings.
func bounds(nodes []*graph.Node) (minX, minY, maxX, maxY float64) {
	if len(nodes) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, n := range nodes {
		r := n.Radius()
		minX = math.Min(minX, n.Pos().X-r)
		maxX = math.Max(maxX, n.Pos().X+r)
		minY = math.Min(minY, n.Pos().Y-r)
		maxY = math.Max(maxY, n.Pos().Y+r)
	}
	return minX, minY, maxX, maxY
}

// num formats a coordinate with enough precision for crisp output and
// stable golden tests.
func num(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
