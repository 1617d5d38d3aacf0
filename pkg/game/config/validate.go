package config

import (
	"errors"
	"fmt"
	"math"

	"dungeongen/pkg/engine/pathfind"
	"dungeongen/pkg/engine/world"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid settings")

// FieldError describes one rejected setting
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalid
func (e *FieldError) Unwrap() error {
	return ErrInvalid
}

type validator struct {
	errs []error
}

func (v *validator) fail(field, format string, a ...any) {
	v.errs = append(v.errs, &FieldError{Field: field, Reason: fmt.Sprintf(format, a...)})
}

func (v *validator) positive(field string, n int) {
	if n <= 0 {
		v.fail(field, "must be positive, got %d", n)
	}
}

func (v *validator) nonNegative(field string, n int) {
	if n < 0 {
		v.fail(field, "must not be negative, got %d", n)
	}
}

func (v *validator) span(field string, lo, hi int) {
	if lo > hi {
		v.fail(field, "min %d is greater than max %d", lo, hi)
	}
}

func (v *validator) probability(field string, p float64) {
	if p < 0 || p > 1 || math.IsNaN(p) {
		v.fail(field, "must be within [0,1], got %v", p)
	}
}

// Validate checks every field and returns all failures joined, or nil
func (s Settings) Validate() error {
	v := &validator{}

	v.positive("rows", s.Rows)
	v.positive("cols", s.Cols)

	v.nonNegative("rooms.count", s.Rooms.Count)
	v.positive("rooms.minSize", s.Rooms.MinSize)
	v.positive("rooms.maxSize", s.Rooms.MaxSize)
	v.span("rooms.size", s.Rooms.MinSize, s.Rooms.MaxSize)
	v.positive("rooms.attempts", s.Rooms.Attempts)
	v.nonNegative("rooms.spacing", s.Rooms.Spacing)
	if s.Rooms.MaxSize > s.Rows || s.Rooms.MaxSize > s.Cols {
		v.fail("rooms.maxSize", "%d does not fit a %dx%d grid", s.Rooms.MaxSize, s.Rows, s.Cols)
	}

	for i, e := range s.Environment.Types {
		field := fmt.Sprintf("environment.types[%d]", i)
		if _, err := world.ParseEnvironmentType(e.Type); err != nil {
			v.fail(field+".type", "%v", err)
		}
		v.nonNegative(field+".seedCountMin", e.SeedCountMin)
		v.span(field+".seedCount", e.SeedCountMin, e.SeedCountMax)
		v.probability(field+".probability", e.Probability)
		v.probability(field+".spreadProbability", e.SpreadProbability)
		v.nonNegative(field+".spreadMin", e.SpreadMin)
		v.span(field+".spread", e.SpreadMin, e.SpreadMax)
	}

	v.probability("decor.pebblesProbability", s.Decor.PebblesProbability)
	v.probability("decor.grassProbability", s.Decor.GrassProbability)

	v.probability("rivers.probability", s.Rivers.Probability)
	v.nonNegative("rivers.maxCount", s.Rivers.MaxCount)
	v.positive("rivers.minSize", s.Rivers.MinSize)
	v.span("rivers.size", s.Rivers.MinSize, s.Rivers.MaxSize)

	if _, err := pathfind.ParseHeuristic(s.Pathfinding.Heuristic); err != nil {
		v.fail("pathfinding.heuristic", "%v", err)
	}
	if s.Pathfinding.Weight < 0 || math.IsNaN(s.Pathfinding.Weight) {
		v.fail("pathfinding.weight", "must not be negative, got %v", s.Pathfinding.Weight)
	}
	costs := []struct {
		name string
		cost float64
	}{
		{"empty", s.Pathfinding.Costs.Empty},
		{"room", s.Pathfinding.Costs.Room},
		{"hallway", s.Pathfinding.Costs.Hallway},
	}
	for _, c := range costs {
		if c.cost <= 0 || math.IsNaN(c.cost) {
			v.fail("pathfinding.costs."+c.name, "must be positive, got %v", c.cost)
		}
	}

	return errors.Join(v.errs...)
}
