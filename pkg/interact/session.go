// Package interact tracks the transient state of one edge-drawing gesture.
//
// The Qt desktop client kept the plug being dragged and the currently
// highlighted drop target in process-wide statics, which tied the whole
// application to a single viewport. Here that state lives in an explicit
// [Session] value owned by whichever interaction handler needs one, so
// multiple views can drag independently and the logic is testable without
// a GUI.
package interact

import (
	"errors"

	"github.com/google/uuid"

	"github.com/clemenssielaff/ZodiacGraph/pkg/geom"
	"github.com/clemenssielaff/ZodiacGraph/pkg/graph"
)

var (
	// ErrDragActive is returned by [Session.StartDrag] when a drag is
	// already in progress on this session.
	ErrDragActive = errors.New("drag already in progress")

	// ErrNoDrag is returned by [Session.Drop] when no drag is in progress.
	ErrNoDrag = errors.New("no drag in progress")

	// ErrNoTarget is returned by [Session.Drop] when the drag ends without
	// a highlighted drop target.
	ErrNoTarget = errors.New("no drop target")
)

// Session is the per-gesture interaction state: the plug the user is
// dragging an edge from and the plug currently highlighted as drop target.
// A session belongs to one view and one scene; it is not safe for
// concurrent use.
type Session struct {
	id      uuid.UUID
	scene   *graph.Scene
	source  *graph.Plug
	hovered *graph.Plug
}

// NewSession creates an idle interaction session for the given scene.
func NewSession(scene *graph.Scene) *Session {
	return &Session{
		id:    uuid.New(),
		scene: scene,
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Dragging reports whether an edge drag is in progress.
func (s *Session) Dragging() bool { return s.source != nil }

// Source returns the plug the current drag started from, or nil.
func (s *Session) Source() *graph.Plug { return s.source }

// Hovered returns the currently highlighted drop target, or nil.
func (s *Session) Hovered() *graph.Plug { return s.hovered }

// StartDrag begins an edge drag from the given plug. Dragging from an
// incoming plug draws the edge in reverse; [Session.Drop] orients the final
// edge correctly either way. Returns ErrDragActive if a drag is already in
// progress.
func (s *Session) StartDrag(p *graph.Plug) error {
	if s.source != nil {
		return ErrDragActive
	}
	s.source = p
	return nil
}

// CanConnect reports whether dropping on target would create a legal edge:
// opposite directions, different nodes, the incoming side unoccupied and no
// duplicate of an existing edge.
func (s *Session) CanConnect(target *graph.Plug) bool {
	if s.source == nil || target == nil {
		return false
	}
	from, to := orient(s.source, target)
	if from == nil {
		return false
	}
	if from.Node() == to.Node() {
		return false
	}
	if to.EdgeCount() > 0 {
		return false
	}
	for _, other := range from.ConnectedPlugs() {
		if other == to {
			return false
		}
	}
	return true
}

// Hover highlights target as the drop candidate if connecting to it is
// legal, and clears the highlight otherwise. Passing nil always clears.
func (s *Session) Hover(target *graph.Plug) {
	if target != nil && s.CanConnect(target) {
		s.hovered = target
		return
	}
	s.hovered = nil
}

// Drop finishes the drag by connecting the source to the highlighted
// target. The session returns to idle regardless of the outcome. Returns
// ErrNoDrag if no drag is in progress and ErrNoTarget if nothing legal is
// highlighted.
func (s *Session) Drop() (*graph.Edge, error) {
	if s.source == nil {
		return nil, ErrNoDrag
	}
	source, hovered := s.source, s.hovered
	s.source = nil
	s.hovered = nil
	if hovered == nil {
		return nil, ErrNoTarget
	}
	from, to := orient(source, hovered)
	return s.scene.Connect(from, to)
}

// Cancel aborts the drag without creating an edge.
func (s *Session) Cancel() {
	s.source = nil
	s.hovered = nil
}

// ClosestPlug returns the scene's plug nearest to pos within maxDist, or
// nil if none qualifies. Interaction handlers use it to pick the drop
// candidate under the cursor.
func (s *Session) ClosestPlug(pos geom.Vec2, maxDist float64) *graph.Plug {
	var best *graph.Plug
	bestDist := maxDist
	for _, n := range s.scene.Nodes() {
		for _, p := range n.Plugs() {
			if d := p.Pos().Sub(pos).Length(); d <= bestDist {
				best = p
				bestDist = d
			}
		}
	}
	return best
}

// orient returns the (outgoing, incoming) pair for two plugs of opposite
// direction, or nils when the directions do not pair up.
func orient(a, b *graph.Plug) (from, to *graph.Plug) {
	switch {
	case a.Direction() == graph.DirOut && b.Direction() == graph.DirIn:
		return a, b
	case a.Direction() == graph.DirIn && b.Direction() == graph.DirOut:
		return b, a
	default:
		return nil, nil
	}
}
