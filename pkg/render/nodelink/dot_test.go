package nodelink

import (
	"strings"
	"testing"

	"github.com/clemenssielaff/ZodiacGraph/pkg/graph"
)

func demoScene(t *testing.T) *graph.Scene {
	t.Helper()
	s := graph.NewScene()
	a := s.CreateNode("alpha")
	b := s.CreateNode("beta")
	out, err := a.CreatePlug("result", graph.DirOut)
	if err != nil {
		t.Fatal(err)
	}
	in, err := b.CreatePlug("input", graph.DirIn)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Connect(out, in); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(demoScene(t), Options{})

	if !strings.HasPrefix(dot, "digraph scene {") {
		t.Errorf("missing digraph header: %.40s", dot)
	}
	for _, want := range []string{`"alpha";`, `"beta";`, `"alpha" -> "beta";`} {
		if !strings.Contains(dot, want) {
			t.Errorf("missing %q in:\n%s", want, dot)
		}
	}
	if strings.Contains(dot, "label=") {
		t.Error("plain output should not carry edge labels")
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(demoScene(t), Options{Detailed: true})

	if !strings.Contains(dot, `"alpha" -> "beta" [label="result / input"];`) {
		t.Errorf("missing labelled edge in:\n%s", dot)
	}
}

func TestToDOTDeterministic(t *testing.T) {
	s := demoScene(t)
	if ToDOT(s, Options{}) != ToDOT(s, Options{}) {
		t.Error("repeated exports differ")
	}
}

func TestToDOTEmptyScene(t *testing.T) {
	dot := ToDOT(graph.NewScene(), Options{})
	if !strings.HasPrefix(dot, "digraph scene {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("malformed export:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<?xml version="1.0"?>
<svg width="134pt" height="44pt" viewBox="0.00 0.00 133.54 44.00" xmlns="http://www.w3.org/2000/svg">
<g></g>
</svg>`)

	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 133.54 44.00"`) {
		t.Errorf("view box not normalized: %s", out)
	}
	if !strings.Contains(out, `width="134"`) || !strings.Contains(out, `height="44"`) {
		t.Errorf("dimensions not rewritten: %s", out)
	}
}

func TestNormalizeViewBoxNoMatch(t *testing.T) {
	in := []byte("<svg></svg>")
	if got := string(normalizeViewBox(in)); got != "<svg></svg>" {
		t.Errorf("unexpected rewrite: %s", got)
	}
}
