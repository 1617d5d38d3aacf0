// Package mst reduces a triangulation's edges to a minimum spanning tree.
package mst

import (
	"github.com/zyedidia/generic/mapset"

	"dungeongen/pkg/engine/geom"
)

// Prim returns the minimum spanning tree over every vertex touched by edges,
// grown from one endpoint of edges[start]. Weights are the cached squared
// lengths. A disconnected graph yields the tree of start's component.
// Returns nil for empty input or an out-of-range start.
func Prim(edges []geom.Edge, start int) []geom.Edge {
	if start < 0 || start >= len(edges) {
		return nil
	}

	included := mapset.New[geom.Vertex]()
	excluded := mapset.New[geom.Vertex]()
	for _, e := range edges {
		excluded.Put(e.A)
		excluded.Put(e.B)
	}

	seed := edges[start].A
	included.Put(seed)
	excluded.Remove(seed)

	var tree []geom.Edge
	for excluded.Size() > 0 {
		best := -1
		for i, e := range edges {
			if included.Has(e.A) == included.Has(e.B) {
				continue
			}
			if best < 0 || e.DistSq < edges[best].DistSq {
				best = i
			}
		}
		if best < 0 {
			break
		}

		e := edges[best]
		next := e.B
		if included.Has(e.B) {
			next = e.A
		}
		included.Put(next)
		excluded.Remove(next)
		tree = append(tree, e)
	}
	return tree
}

// Weight sums the squared lengths of edges
func Weight(edges []geom.Edge) float64 {
	total := 0.0
	for _, e := range edges {
		total += e.DistSq
	}
	return total
}
