// Package config holds the generation settings, their defaults, JSON
// loading and validation. Settings are validated before generation starts.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"dungeongen/pkg/engine/pathfind"
	"dungeongen/pkg/engine/world"
)

// Settings is the full generation configuration
type Settings struct {
	Seed int64 `json:"seed"`
	Rows int   `json:"rows"`
	Cols int   `json:"cols"`

	Rooms       RoomSettings        `json:"rooms"`
	Environment EnvironmentSettings `json:"environment"`
	Decor       DecorSettings       `json:"decor"`
	Rivers      RiverSettings       `json:"rivers"`
	Pathfinding PathSettings        `json:"pathfinding"`
}

// RoomSettings controls room placement
type RoomSettings struct {
	Count    int `json:"count"`
	MinSize  int `json:"minSize"`
	MaxSize  int `json:"maxSize"`
	Attempts int `json:"attempts"`
	// Spacing is the number of empty tiles kept between rooms
	Spacing int `json:"spacing"`
}

// EnvironmentSettings controls environment seeding per room
type EnvironmentSettings struct {
	Types []EnvironmentType `json:"types"`
}

// EnvironmentType configures one seeded environment. SeedCountMin and
// SeedCountMax bound how many seed tiles of this type a room gets.
type EnvironmentType struct {
	Type              string  `json:"type"`
	SeedCountMin      int     `json:"seedCountMin"`
	SeedCountMax      int     `json:"seedCountMax"`
	Probability       float64 `json:"probability"`
	SpreadMin         int     `json:"spreadMin"`
	SpreadMax         int     `json:"spreadMax"`
	SpreadProbability float64 `json:"spreadProbability"`
}

// Environment returns the parsed environment type (Dirt if unknown)
func (e EnvironmentType) Environment() world.EnvironmentType {
	t, _ := world.ParseEnvironmentType(e.Type)
	return t
}

// DecorSettings holds per-decor probabilities
type DecorSettings struct {
	PebblesProbability float64 `json:"pebblesProbability"`
	GrassProbability   float64 `json:"grassProbability"`
}

// RiverSettings controls river carving
type RiverSettings struct {
	Probability float64 `json:"probability"`
	MaxCount    int     `json:"maxCount"`
	MinSize     int     `json:"minSize"`
	MaxSize     int     `json:"maxSize"`
}

// PathSettings controls hallway routing
type PathSettings struct {
	Heuristic string    `json:"heuristic"`
	Weight    float64   `json:"weight"`
	Costs     CostTable `json:"costs"`
}

// CostTable is the traversal cost per basic tile type
type CostTable struct {
	Empty   float64 `json:"empty"`
	Room    float64 `json:"room"`
	Hallway float64 `json:"hallway"`
}

// Options converts path settings into pathfinder options. Settings must be valid.
func (p PathSettings) Options() pathfind.Options {
	h, _ := pathfind.ParseHeuristic(p.Heuristic)
	return pathfind.Options{
		Heuristic: h,
		Weight:    p.Weight,
		Costs: pathfind.Costs{
			world.Empty:   p.Costs.Empty,
			world.Room:    p.Costs.Room,
			world.Hallway: p.Costs.Hallway,
		},
	}
}

// Default returns the stock settings
func Default() Settings {
	return Settings{
		Rows: 48,
		Cols: 72,
		Rooms: RoomSettings{
			Count:    14,
			MinSize:  4,
			MaxSize:  10,
			Attempts: 60,
			Spacing:  1,
		},
		Environment: EnvironmentSettings{
			Types: []EnvironmentType{
				{Type: "Stone", SeedCountMin: 0, SeedCountMax: 2, Probability: 0.6, SpreadMin: 1, SpreadMax: 4, SpreadProbability: 0.45},
				{Type: "Grass", SeedCountMin: 1, SeedCountMax: 2, Probability: 0.7, SpreadMin: 2, SpreadMax: 6, SpreadProbability: 0.55},
				{Type: "Water", SeedCountMin: 0, SeedCountMax: 1, Probability: 0.25, SpreadMin: 0, SpreadMax: 2, SpreadProbability: 0.3},
			},
		},
		Decor: DecorSettings{
			PebblesProbability: 0.08,
			GrassProbability:   0.3,
		},
		Rivers: RiverSettings{
			Probability: 0.02,
			MaxCount:    3,
			MinSize:     3,
			MaxSize:     6,
		},
		Pathfinding: PathSettings{
			Heuristic: pathfind.Euclidean.String(),
			Weight:    1,
			Costs: CostTable{
				Empty:   5,
				Room:    10,
				Hallway: 1,
			},
		},
	}
}

// Load reads settings from a JSON file. Fields missing from the file keep
// their default values.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read settings: %w", err)
	}

	if err := json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}

	return s, nil
}

// Save writes settings to a JSON file
func Save(path string, s Settings) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
