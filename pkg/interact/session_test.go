package interact

import (
	"errors"
	"testing"

	"github.com/clemenssielaff/ZodiacGraph/pkg/geom"
	"github.com/clemenssielaff/ZodiacGraph/pkg/graph"
)

func dragScene(t *testing.T) (*graph.Scene, *graph.Plug, *graph.Plug) {
	t.Helper()
	s := graph.NewScene()
	a := s.CreateNode("a")
	b := s.CreateNode("b")
	out, err := a.CreatePlug("out", graph.DirOut)
	if err != nil {
		t.Fatal(err)
	}
	in, err := b.CreatePlug("in", graph.DirIn)
	if err != nil {
		t.Fatal(err)
	}
	return s, out, in
}

func TestDragAndDrop(t *testing.T) {
	s, out, in := dragScene(t)
	session := NewSession(s)

	if err := session.StartDrag(out); err != nil {
		t.Fatalf("StartDrag: %v", err)
	}
	if err := session.StartDrag(in); !errors.Is(err, ErrDragActive) {
		t.Errorf("second StartDrag: got %v, want ErrDragActive", err)
	}

	session.Hover(in)
	if session.Hovered() != in {
		t.Fatalf("Hovered() = %v, want the incoming plug", session.Hovered())
	}

	e, err := session.Drop()
	if err != nil {
		t.Fatalf("Drop: %v", err)
	}
	if e.From() != out || e.To() != in {
		t.Errorf("edge endpoints = (%s, %s), want (out, in)", e.From().Name(), e.To().Name())
	}
	if session.Dragging() {
		t.Error("session still dragging after drop")
	}
}

func TestReverseDrag(t *testing.T) {
	// Dragging from the incoming side still produces an out -> in edge.
	s, out, in := dragScene(t)
	session := NewSession(s)

	if err := session.StartDrag(in); err != nil {
		t.Fatalf("StartDrag: %v", err)
	}
	session.Hover(out)
	e, err := session.Drop()
	if err != nil {
		t.Fatalf("Drop: %v", err)
	}
	if e.From() != out || e.To() != in {
		t.Errorf("edge endpoints = (%s, %s), want (out, in)", e.From().Name(), e.To().Name())
	}
}

func TestHoverRejectsIllegalTargets(t *testing.T) {
	s, out, in := dragScene(t)

	// Occupy the incoming plug.
	if _, err := s.Connect(out, in); err != nil {
		t.Fatal(err)
	}

	other, err := s.CreateNode("c").CreatePlug("out2", graph.DirOut)
	if err != nil {
		t.Fatal(err)
	}

	session := NewSession(s)
	if err := session.StartDrag(other); err != nil {
		t.Fatal(err)
	}

	session.Hover(in) // occupied
	if session.Hovered() != nil {
		t.Error("occupied incoming plug accepted as drop target")
	}
	session.Hover(out) // same direction
	if session.Hovered() != nil {
		t.Error("outgoing plug accepted as drop target for outgoing source")
	}
	if _, err := session.Drop(); !errors.Is(err, ErrNoTarget) {
		t.Errorf("Drop without target: got %v, want ErrNoTarget", err)
	}
}

func TestCancel(t *testing.T) {
	s, out, in := dragScene(t)
	session := NewSession(s)
	if err := session.StartDrag(out); err != nil {
		t.Fatal(err)
	}
	session.Hover(in)
	session.Cancel()

	if session.Dragging() || session.Hovered() != nil {
		t.Error("Cancel left state behind")
	}
	if _, err := session.Drop(); !errors.Is(err, ErrNoDrag) {
		t.Errorf("Drop after Cancel: got %v, want ErrNoDrag", err)
	}
	if s.EdgeCount() != 0 {
		t.Errorf("Cancel created an edge: %d", s.EdgeCount())
	}
}

func TestClosestPlug(t *testing.T) {
	s, out, in := dragScene(t)
	out.Node().SetPos(geom.Vec2{X: 0, Y: 0})
	out.Node().SetRadius(10)
	in.Node().SetPos(geom.Vec2{X: 100, Y: 0})
	in.Node().SetRadius(10)
	// Default plug normals point at +x, so out sits at (10, 0) and in at
	// (110, 0).

	session := NewSession(s)
	if got := session.ClosestPlug(geom.Vec2{X: 20, Y: 0}, 50); got != out {
		t.Errorf("ClosestPlug near origin = %v, want out", got)
	}
	if got := session.ClosestPlug(geom.Vec2{X: 110, Y: 5}, 50); got != in {
		t.Errorf("ClosestPlug near (110, 5) = %v, want in", got)
	}
	if got := session.ClosestPlug(geom.Vec2{X: 0, Y: 1000}, 50); got != nil {
		t.Errorf("ClosestPlug far away = %v, want nil", got)
	}
}
