package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/clemenssielaff/ZodiacGraph/pkg/graph"
	"github.com/clemenssielaff/ZodiacGraph/pkg/layout"
	"github.com/clemenssielaff/ZodiacGraph/pkg/style"
)

func editScene(t *testing.T) *graph.Scene {
	t.Helper()
	s := graph.NewScene()
	a := s.CreateNode("alpha")
	b := s.CreateNode("beta")
	out, err := a.CreatePlug("out", graph.DirOut)
	if err != nil {
		t.Fatal(err)
	}
	in, err := b.CreatePlug("in", graph.DirIn)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Connect(out, in); err != nil {
		t.Fatal(err)
	}
	return s
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestEditMoveUpdatesPosition(t *testing.T) {
	st := style.Default()
	s := editScene(t)
	layout.LayoutScene(s, st)
	m := newEditModel(s, st, "unused.json")

	selected := m.nodes[m.cursor]
	before := selected.Pos()

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(editModel)

	after := selected.Pos()
	if after.X != before.X+moveStep || after.Y != before.Y {
		t.Errorf("position = %v, want x+%v from %v", after, moveStep, before)
	}
	if m.saved {
		t.Error("move should clear the saved flag")
	}
}

func TestEditTabCyclesSelection(t *testing.T) {
	st := style.Default()
	s := editScene(t)
	m := newEditModel(s, st, "unused.json")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(editModel)
	if m.cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.cursor)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(editModel)
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0 after wrap", m.cursor)
	}
}

func TestEditQuit(t *testing.T) {
	m := newEditModel(graph.NewScene(), style.Default(), "unused.json")

	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestEditSave(t *testing.T) {
	st := style.Default()
	s := editScene(t)
	path := t.TempDir() + "/scene.json"
	m := newEditModel(s, st, path)

	updated, _ := m.Update(key("s"))
	m = updated.(editModel)

	if !m.saved {
		t.Fatalf("save failed: %s", m.status)
	}
}

func TestEditViewListsNodes(t *testing.T) {
	st := style.Default()
	s := editScene(t)
	m := newEditModel(s, st, "unused.json")

	view := m.View()
	for _, want := range []string{"alpha", "beta", "Scene Editor"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
