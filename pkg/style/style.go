// Package style defines the tunable appearance and geometry parameters of
// the graph display.
//
// A [Style] is an immutable value threaded explicitly into layout and render
// calls. There is deliberately no process-wide mutable style state; the UI
// layer owns a single current style and passes it down, which keeps the
// layout core testable without a live GUI and free of single-viewport
// assumptions.
package style

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

var (
	// ErrInvalidStyle is returned by [Style.Validate] wrapped with the
	// offending field when a parameter is out of range.
	ErrInvalidStyle = errors.New("invalid style")
)

// Style bundles every tunable parameter of node and edge display.
// The zero value is not usable; start from [Default] and adjust.
type Style struct {
	// CoreRadius is the radius of a node's inner core circle.
	CoreRadius float64 `toml:"core_radius"`

	// MinRadius is the smallest perimeter radius a node may shrink to,
	// regardless of how few plugs it carries.
	MinRadius float64 `toml:"min_radius"`

	// PlugSweep is the arc length of a single plug on the perimeter.
	// The angular sweep of a plug is PlugSweep divided by the perimeter
	// radius.
	PlugSweep float64 `toml:"plug_sweep"`

	// PlugGap is the arc length of the gap between adjacent plug zones.
	PlugGap float64 `toml:"plug_gap"`

	// PlugWidth is the radial thickness of a drawn plug.
	PlugWidth float64 `toml:"plug_width"`

	// LabelHeight is the height of the node label box, which determines
	// the angular dead zone on the perimeter's horizontal axis.
	LabelHeight float64 `toml:"label_height"`

	// CtrlExpansion scales the distance of bezier control points along
	// the plug normal relative to the distance between the edge endpoints.
	CtrlExpansion float64 `toml:"ctrl_expansion"`

	// MaxCtrlDistance caps the bezier control point distance for far-apart
	// nodes.
	MaxCtrlDistance float64 `toml:"max_ctrl_distance"`

	// Colors used by the SVG renderer.
	NodeFill  string `toml:"node_fill"`
	NodeLine  string `toml:"node_line"`
	PlugIn    string `toml:"plug_in"`
	PlugOut   string `toml:"plug_out"`
	EdgeLine  string `toml:"edge_line"`
	LabelText string `toml:"label_text"`
}

// Default returns the stock style. The geometry values mirror the Qt
// desktop client so layouts stay visually comparable across ports.
func Default() Style {
	const coreRadius = 25.0
	return Style{
		CoreRadius:      coreRadius,
		MinRadius:       55,
		PlugSweep:       coreRadius * 1.3,
		PlugGap:         coreRadius * 1.3 / 4,
		PlugWidth:       12,
		LabelHeight:     24,
		CtrlExpansion:   0.4,
		MaxCtrlDistance: 150,
		NodeFill:        "#111b22",
		NodeLine:        "#cdcdcd",
		PlugIn:          "#728872",
		PlugOut:         "#887272",
		EdgeLine:        "#cc5d4e",
		LabelText:       "#ffffff",
	}
}

// Load reads a TOML style file and returns Default overridden by every key
// present in the file. The result is validated before it is returned.
func Load(path string) (Style, error) {
	s := Default()
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return Style{}, fmt.Errorf("decode style file: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Style{}, err
	}
	return s, nil
}

// Validate checks that all geometry parameters are positive and consistent.
func (s Style) Validate() error {
	checks := []struct {
		name string
		ok   bool
	}{
		{"core_radius", s.CoreRadius > 0},
		{"min_radius", s.MinRadius > 0},
		{"plug_sweep", s.PlugSweep > 0},
		{"plug_gap", s.PlugGap > 0},
		{"plug_width", s.PlugWidth > 0},
		{"label_height", s.LabelHeight > 0},
		{"ctrl_expansion", s.CtrlExpansion > 0},
		{"max_ctrl_distance", s.MaxCtrlDistance > 0},
		{"plug_width vs min_radius", s.PlugWidth*1.5 < s.MinRadius},
	}
	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("%w: %s", ErrInvalidStyle, c.name)
		}
	}
	return nil
}
