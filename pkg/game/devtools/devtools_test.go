package devtools

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/config"
	"dungeongen/pkg/game/generator"
	"dungeongen/pkg/game/locale"
)

func TestShowcase_Doorways(t *testing.T) {
	d := Showcase()

	tests := []struct {
		row, col int
		want     world.Wall
	}{
		{4, 14, world.DoorwayFull},
		{6, 14, world.DoorwayRight},
		{7, 14, world.DoorwayMiddle},
		{8, 14, world.DoorwayLeft},
	}
	for _, tt := range tests {
		tile := d.Grid.TileAt(tt.row, tt.col)
		if got := tile.Walls[world.West]; got != tt.want {
			t.Errorf("%d:%d west wall = %v, want %v", tt.row, tt.col, got, tt.want)
		}
	}
}

func TestShowcase_Stats(t *testing.T) {
	s := Showcase().Stats()
	want := generator.Stats{
		Rooms:        2,
		RoomTiles:    192,
		Hallways:     2,
		HallwayTiles: 40,
		Rivers:       1,
		WaterTiles:   8,
		BridgeTiles:  2,
	}
	if s != want {
		t.Errorf("Stats = %+v, want %+v", s, want)
	}
}

func TestDumpMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.txt")
	got, err := DumpMap(path, Showcase())
	if err != nil {
		t.Fatalf("DumpMap error = %v", err)
	}
	if got != path {
		t.Errorf("DumpMap path = %q, want %q", got, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	dump := string(data)

	row4 := " #" + strings.Repeat(".", 12) + "D" + strings.Repeat("h", 8) + "D" +
		strings.Repeat(".", 6) + "~" + strings.Repeat(".", 5) + "# "
	for _, want := range []string{
		"--- Metadata ---",
		"seed: 0",
		"grid_rows: 12",
		"rooms: 2",
		"bridge_tiles: 2",
		"--- Map ---",
		"\n" + row4 + "\n",
		"0: 2,2 8x12 center=6:8 tiles=96",
		"0 -> 1: path=10 carved=10",
		"4:14 -WFW",
	} {
		if !strings.Contains(dump, want) {
			t.Errorf("dump is missing %q", want)
		}
	}
}

func TestDumpMap_NoDungeon(t *testing.T) {
	if _, err := DumpMap(filepath.Join(t.TempDir(), "x"), nil); err == nil {
		t.Error("DumpMap(nil) succeeded")
	}
}

func TestSaveHTML(t *testing.T) {
	if err := locale.Load("en"); err != nil {
		t.Fatal(err)
	}
	s := config.Default()
	s.Rows, s.Cols = 20, 30
	s.Rooms.Count = 4
	s.Rooms.MaxSize = 6
	g, err := generator.New(s)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "dungeon.html")
	if _, err := SaveHTML(path, g.GenerateSeed(3)); err != nil {
		t.Fatalf("SaveHTML error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	page := string(data)

	if n := strings.Count(page, `<div class="map-row">`); n != 20 {
		t.Errorf("page has %d map rows, want 20", n)
	}
	for _, want := range []string{"Seed: 3", `<span class="floor">`, "Legend: ", "</html>"} {
		if !strings.Contains(page, want) {
			t.Errorf("page is missing %q", want)
		}
	}
}

func TestRenderHTML_Showcase(t *testing.T) {
	if err := locale.Load("en"); err != nil {
		t.Fatal(err)
	}
	page := RenderHTML(Showcase())
	for _, class := range []string{"doorway", "water", "bridge", "stone", "grass", "pebbles", "hallway", "wall"} {
		if !strings.Contains(page, `<span class="`+class+`">`) {
			t.Errorf("page has no %s cell", class)
		}
	}
}
