// Package render provides visualization rendering for node graphs.
//
// # Overview
//
// This package contains the rendering pipeline that turns a laid-out scene
// into visual outputs. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - The circular ring visualization (in [ringsvg] subpackage)
//   - Node-link diagrams (in [nodelink] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). They are shared by both
// renderers.
//
//	svg := ringsvg.Render(scene, st)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Ring Visualization
//
// The [ringsvg] subpackage draws the scene the way the interactive editor
// does: nodes as circles, plugs as arc segments at their assigned perimeter
// angle, and edges as cubic beziers leaving along the plug normals.
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage renders the logical connection graph with
// Graphviz, ignoring scene positions. Useful as a schematic overview of
// large scenes.
//
//	dot := nodelink.ToDOT(scene, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// [ringsvg]: github.com/clemenssielaff/ZodiacGraph/pkg/render/ringsvg
// [nodelink]: github.com/clemenssielaff/ZodiacGraph/pkg/render/nodelink
package render
