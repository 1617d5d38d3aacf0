// Package delaunay builds a Bowyer-Watson triangulation over room centres.
package delaunay

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"dungeongen/pkg/engine/geom"
)

const (
	// polygonEdgeTolSq is the squared XY tolerance for matching bad-polygon edges
	polygonEdgeTolSq = 0.01
	// superVertexTolSq is the squared distance under which a triangle
	// vertex is treated as one of the super triangle's vertices
	superVertexTolSq = 0.01
	// superScale multiplies the larger bounding box extent
	superScale = 2
)

// Triangulation is the result of Triangulate
type Triangulation struct {
	Triangles []*geom.Triangle
	Edges     []geom.Edge
}

// IsEmpty returns true when no triangle survived
func (t *Triangulation) IsEmpty() bool {
	return t == nil || len(t.Triangles) == 0
}

// Triangulate builds the Delaunay triangulation of points.
// Fewer than three points produce an empty triangulation.
func Triangulate(points []geom.Vertex) *Triangulation {
	result := &Triangulation{}
	if len(points) < 3 {
		return result
	}

	super := superTriangle(points)
	triangles := []*geom.Triangle{super}

	for _, p := range points {
		triangles = insert(triangles, p)
	}

	for _, t := range triangles {
		if _, ok := t.Circumcenter(); !ok {
			continue
		}
		if t.HasVertexNear(super.A, superVertexTolSq) ||
			t.HasVertexNear(super.B, superVertexTolSq) ||
			t.HasVertexNear(super.C, superVertexTolSq) {
			continue
		}
		result.Triangles = append(result.Triangles, t)
	}

	result.Edges = uniqueEdges(result.Triangles)
	return result
}

// superTriangle returns a triangle whose circumcircle covers every point
func superTriangle(points []geom.Vertex) *geom.Triangle {
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	delta := math.Max(maxX-minX, maxY-minY) * superScale
	if delta <= 0 {
		delta = 1
	}
	midX := (minX + maxX) / 2
	midY := (minY + maxY) / 2

	return geom.NewTriangle(
		geom.V2(midX-20*delta, midY-delta),
		geom.V2(midX, midY+20*delta),
		geom.V2(midX+20*delta, midY-delta),
	)
}

// insert adds p to the triangulation and returns the new triangle list
func insert(triangles []*geom.Triangle, p geom.Vertex) []*geom.Triangle {
	var polygon []geom.Edge
	for _, t := range triangles {
		if t.CircumcircleContains(p) {
			t.Marked = true
			e := t.Edges()
			polygon = append(polygon, e[0], e[1], e[2])
		}
	}

	kept := triangles[:0]
	for _, t := range triangles {
		if !t.Marked {
			kept = append(kept, t)
		}
	}

	for _, e := range boundary(polygon) {
		kept = append(kept, geom.NewTriangle(e.A, e.B, p))
	}
	return kept
}

// boundary drops every edge that appears more than once in the bad polygon
func boundary(polygon []geom.Edge) []geom.Edge {
	shared := make([]bool, len(polygon))
	for i := range polygon {
		for j := i + 1; j < len(polygon); j++ {
			if polygon[i].ApproxEqual(polygon[j], polygonEdgeTolSq) {
				shared[i] = true
				shared[j] = true
			}
		}
	}

	var out []geom.Edge
	for i, e := range polygon {
		if !shared[i] {
			out = append(out, e)
		}
	}
	return out
}

// uniqueEdges lists the triangles' edges once each, in first-seen order
func uniqueEdges(triangles []*geom.Triangle) []geom.Edge {
	seen := mapset.New[geom.EdgeKey]()
	var edges []geom.Edge
	for _, t := range triangles {
		for _, e := range t.Edges() {
			k := e.Key()
			if seen.Has(k) {
				continue
			}
			seen.Put(k)
			edges = append(edges, e)
		}
	}
	return edges
}
