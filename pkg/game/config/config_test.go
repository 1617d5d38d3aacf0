package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dungeongen/pkg/engine/pathfind"
	"dungeongen/pkg/engine/world"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, want nil", err)
	}
}

func TestValidate_RejectsBadRanges(t *testing.T) {
	cases := []struct {
		name  string
		edit  func(s *Settings)
		field string
	}{
		{"negative rooms", func(s *Settings) { s.Rooms.Count = -1 }, "rooms.count"},
		{"room min > max", func(s *Settings) { s.Rooms.MinSize, s.Rooms.MaxSize = 8, 5 }, "rooms.size"},
		{"zero rows", func(s *Settings) { s.Rows = 0 }, "rows"},
		{"seed count min > max", func(s *Settings) { s.Environment.Types[2].SeedCountMin, s.Environment.Types[2].SeedCountMax = 3, 1 }, "environment.types[2].seedCount"},
		{"negative seed count", func(s *Settings) { s.Environment.Types[0].SeedCountMin = -1 }, "environment.types[0].seedCountMin"},
		{"bad probability", func(s *Settings) { s.Rivers.Probability = 1.5 }, "rivers.probability"},
		{"river min > max", func(s *Settings) { s.Rivers.MinSize, s.Rivers.MaxSize = 5, 2 }, "rivers.size"},
		{"negative weight", func(s *Settings) { s.Pathfinding.Weight = -0.5 }, "pathfinding.weight"},
		{"NaN weight", func(s *Settings) { s.Pathfinding.Weight = math.NaN() }, "pathfinding.weight"},
		{"zero cost", func(s *Settings) { s.Pathfinding.Costs.Room = 0 }, "pathfinding.costs.room"},
		{"NaN cost", func(s *Settings) { s.Pathfinding.Costs.Hallway = math.NaN() }, "pathfinding.costs.hallway"},
		{"unknown heuristic", func(s *Settings) { s.Pathfinding.Heuristic = "bfs" }, "pathfinding.heuristic"},
		{"unknown environment", func(s *Settings) { s.Environment.Types[0].Type = "Lava" }, "environment.types[0].type"},
		{"spread min > max", func(s *Settings) { s.Environment.Types[1].SpreadMin = 9 }, "environment.types[1].spread"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := Default()
			c.edit(&s)
			err := s.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("errors.Is(err, ErrInvalid) = false for %v", err)
			}
			var fe *FieldError
			if !errors.As(err, &fe) {
				t.Fatalf("error %v is not a *FieldError", err)
			}
			if !strings.Contains(err.Error(), c.field) {
				t.Errorf("error %q does not name field %q", err.Error(), c.field)
			}
		})
	}
}

func TestValidate_ReportsEveryFailure(t *testing.T) {
	s := Default()
	s.Rows = -1
	s.Decor.GrassProbability = 2
	err := s.Validate()
	if err == nil {
		t.Fatal("Validate() = nil")
	}
	for _, field := range []string{"rows", "decor.grassProbability"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q is missing %q", err.Error(), field)
		}
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	body := `{"seed": 7, "rows": 20, "rooms": {"count": 3, "minSize": 3, "maxSize": 5, "attempts": 10}}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.Seed != 7 || s.Rows != 20 || s.Rooms.Count != 3 {
		t.Errorf("Load() = seed %d rows %d rooms %d, want 7 20 3", s.Seed, s.Rows, s.Rooms.Count)
	}
	if s.Cols != Default().Cols {
		t.Errorf("Cols = %d, want default %d", s.Cols, Default().Cols)
	}
	if s.Rooms.Spacing != Default().Rooms.Spacing {
		t.Errorf("Rooms.Spacing = %d, want default %d", s.Rooms.Spacing, Default().Rooms.Spacing)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Load(missing) = nil error")
	}
	path := filepath.Join(t.TempDir(), "broken.json")
	os.WriteFile(path, []byte("{rows:"), 0o644)
	if _, err := Load(path); err == nil {
		t.Error("Load(broken) = nil error")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	want := Default()
	want.Seed = 99
	if err := Save(path, want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Seed != 99 || len(got.Environment.Types) != len(want.Environment.Types) {
		t.Errorf("round trip lost data: %+v", got)
	}
	if got.Environment.Types[1].SeedCountMin != want.Environment.Types[1].SeedCountMin ||
		got.Environment.Types[1].SeedCountMax != want.Environment.Types[1].SeedCountMax {
		t.Errorf("seed count range = %d..%d, want %d..%d",
			got.Environment.Types[1].SeedCountMin, got.Environment.Types[1].SeedCountMax,
			want.Environment.Types[1].SeedCountMin, want.Environment.Types[1].SeedCountMax)
	}
}

func TestPathSettingsOptions(t *testing.T) {
	p := PathSettings{Heuristic: "octile", Weight: 2, Costs: CostTable{Empty: 3, Room: 4, Hallway: 1}}
	opts := p.Options()
	if opts.Heuristic != pathfind.Octile || opts.Weight != 2 {
		t.Errorf("Options() = %+v", opts)
	}
	if opts.Costs[world.Room] != 4 || opts.Costs[world.Empty] != 3 {
		t.Errorf("Costs = %v", opts.Costs)
	}
}
