// Package pathfind finds lowest-cost 4-directional paths over a tile grid.
// A Pathfinder owns one node per tile and reuses it across searches.
package pathfind

import (
	"math"

	"github.com/zyedidia/generic/heap"

	"dungeongen/pkg/engine/world"
)

// Costs is the price of entering a tile, indexed by its BasicType
type Costs [world.BasicTypeCount]float64

// DefaultCosts routes through empty ground and existing hallways, and
// keeps away from rooms
var DefaultCosts = Costs{
	world.Empty:   5,
	world.Room:    10,
	world.Hallway: 1,
}

// Options configures a Pathfinder
type Options struct {
	Heuristic Heuristic
	Weight    float64
	Costs     Costs
}

// DefaultOptions returns Euclidean search with unit weight and DefaultCosts
func DefaultOptions() Options {
	return Options{
		Heuristic: Euclidean,
		Weight:    1,
		Costs:     DefaultCosts,
	}
}

type node struct {
	given     float64
	heuristic float64
	parent    int
	closed    bool
}

func (n *node) total() float64 {
	return n.given + n.heuristic
}

// openEntry is a heap record; stale entries are skipped on pop
type openEntry struct {
	offset int
	total  float64
	h      float64
	seq    int
}

func lessEntry(a, b openEntry) bool {
	if a.total != b.total {
		return a.total < b.total
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}

// Pathfinder runs A* searches over a grid
type Pathfinder struct {
	grid  *world.Grid
	opts  Options
	nodes []node
	rows  int
	cols  int
}

// New creates a pathfinder sized to the grid
func New(grid *world.Grid, opts Options) *Pathfinder {
	p := &Pathfinder{grid: grid, opts: opts}
	p.Resize()
	return p
}

// Options returns the current search options
func (p *Pathfinder) Options() Options {
	return p.opts
}

// SetOptions replaces the search options for subsequent searches
func (p *Pathfinder) SetOptions(opts Options) {
	p.opts = opts
}

// Resize reallocates the node array only if the grid dimensions changed
func (p *Pathfinder) Resize() {
	rows, cols := p.grid.Rows(), p.grid.Cols()
	if rows == p.rows && cols == p.cols && p.nodes != nil {
		return
	}
	p.rows, p.cols = rows, cols
	p.nodes = make([]node, rows*cols)
}

func (p *Pathfinder) reset() {
	for i := range p.nodes {
		p.nodes[i] = node{
			given:     math.Inf(1),
			heuristic: 0,
			parent:    -1,
		}
	}
}

func (p *Pathfinder) estimate(from, goal world.Index) float64 {
	return p.opts.Heuristic.Distance(goal.Col-from.Col, goal.Row-from.Row) * p.opts.Weight
}

// FindPath returns the tile indices from start to goal inclusive.
// Returns nil, false when either end is off the grid or no path exists.
func (p *Pathfinder) FindPath(start, goal world.Index) ([]world.Index, bool) {
	if !p.grid.IsValidIndex(start) || !p.grid.IsValidIndex(goal) {
		return nil, false
	}
	p.Resize()
	p.reset()

	startOff := p.grid.Offset(start)
	goalOff := p.grid.Offset(goal)

	open := heap.New(lessEntry)
	seq := 0
	first := &p.nodes[startOff]
	first.given = 0
	first.heuristic = p.estimate(start, goal)
	open.Push(openEntry{offset: startOff, total: first.total(), h: first.heuristic, seq: seq})

	for open.Size() > 0 {
		entry, _ := open.Pop()
		current := &p.nodes[entry.offset]
		if current.closed || entry.total > current.total() {
			continue
		}
		current.closed = true

		if entry.offset == goalOff {
			return p.walkBack(goalOff), true
		}

		idx := p.grid.IndexAt(entry.offset)
		for _, dir := range world.AllDirections() {
			next := idx.Step(dir)
			if !p.grid.IsValidIndex(next) {
				continue
			}
			nextOff := p.grid.Offset(next)
			neighbor := &p.nodes[nextOff]
			if neighbor.closed {
				continue
			}

			given := current.given + p.opts.Costs[p.grid.TileType(next)]
			h := p.estimate(next, goal)
			if given+h >= neighbor.total() {
				continue
			}
			neighbor.given = given
			neighbor.heuristic = h
			neighbor.parent = entry.offset

			seq++
			open.Push(openEntry{offset: nextOff, total: given + h, h: h, seq: seq})
		}
	}
	return nil, false
}

// walkBack follows parent links from goal and returns the path start first
func (p *Pathfinder) walkBack(goalOff int) []world.Index {
	var path []world.Index
	for off := goalOff; off >= 0; off = p.nodes[off].parent {
		path = append(path, p.grid.IndexAt(off))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// PathCost sums the entry cost of every tile after the first
func (p *Pathfinder) PathCost(path []world.Index) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += p.opts.Costs[p.grid.TileType(path[i])]
	}
	return total
}
