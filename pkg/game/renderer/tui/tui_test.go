package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gookit/color"

	"dungeongen/pkg/game/config"
	"dungeongen/pkg/game/generator"
	"dungeongen/pkg/game/locale"
	"dungeongen/pkg/game/renderer"
)

func TestStyleText_Plain(t *testing.T) {
	color.Enable = false
	defer func() { color.Enable = true }()

	r := New()
	r.Init()
	for _, style := range []renderer.TextStyle{renderer.StyleNormal, renderer.StyleWater, renderer.StyleHeading} {
		if got := r.StyleText("x", style); got != "x" {
			t.Errorf("StyleText(x, %v) = %q with colour disabled", style, got)
		}
	}
}

func TestRenderDungeon_Uncropped(t *testing.T) {
	color.Enable = false
	defer func() { color.Enable = true }()
	if err := locale.Load("en"); err != nil {
		t.Fatal(err)
	}

	s := config.Default()
	s.Rows, s.Cols = 16, 24
	s.Rooms.Count = 3
	s.Rooms.MaxSize = 5
	g, err := generator.New(s)
	if err != nil {
		t.Fatal(err)
	}

	r := New()
	r.Init()
	r.Crop = false

	var buf bytes.Buffer
	if err := r.RenderDungeon(&buf, g.GenerateSeed(4)); err != nil {
		t.Fatalf("RenderDungeon error = %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "cropped") {
		t.Error("uncropped render reports cropping")
	}
	if !strings.Contains(out, "Legend") || !strings.Contains(out, "Hallways:") {
		t.Errorf("render is missing the legend or summary:\n%s", out)
	}
}
