package world

import (
	"math/rand"
	"time"
)

// RNG is the single random source shared by every stage of one generation
// run. Sharing one instance keeps a seed reproducible across stages.
type RNG struct {
	seed int64
	r    *rand.Rand
}

// NewRNG creates a random source. A seed of 0 picks a time based seed.
func NewRNG(seed int64) *RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RNG{
		seed: seed,
		r:    rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed the source was created with
func (g *RNG) Seed() int64 {
	return g.seed
}

// Float64 returns a number in [0,1)
func (g *RNG) Float64() float64 {
	return g.r.Float64()
}

// Intn returns a number in [0,n). Returns 0 when n <= 0.
func (g *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return g.r.Intn(n)
}

// IntRange returns a number in [min,maxExclusive). Returns min when the range is empty.
func (g *RNG) IntRange(min, maxExclusive int) int {
	if maxExclusive <= min {
		return min
	}
	return min + g.r.Intn(maxExclusive-min)
}

// Chance returns true with the given probability
func (g *RNG) Chance(probability float64) bool {
	return g.r.Float64() < probability
}
