// Package geom provides the immutable planar primitives used by the
// triangulator and the spanning tree builder.
package geom

import "math"

// approxScale is the multiple of machine epsilon used by ApproxEqual
const approxScale = 4

// Vertex is a point. Only X and Y take part in planar operations.
// Go equality on Vertex is exact and is what map keys use.
type Vertex struct {
	X, Y, Z float64
}

// V2 creates a planar vertex
func V2(x, y float64) Vertex {
	return Vertex{X: x, Y: y}
}

// DistSq returns the squared XY distance between two vertices
func (v Vertex) DistSq(o Vertex) float64 {
	dx := v.X - o.X
	dy := v.Y - o.Y
	return dx*dx + dy*dy
}

// ApproxEqual compares X and Y with a tolerance scaled by their magnitude
func (v Vertex) ApproxEqual(o Vertex) bool {
	return approxFloat(v.X, o.X) && approxFloat(v.Y, o.Y)
}

func approxFloat(a, b float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	eps := math.Nextafter(1, 2) - 1
	return math.Abs(a-b) <= eps*approxScale*scale
}

// less orders vertices lexicographically on X, Y, Z
func (v Vertex) less(o Vertex) bool {
	if v.X != o.X {
		return v.X < o.X
	}
	if v.Y != o.Y {
		return v.Y < o.Y
	}
	return v.Z < o.Z
}

// Tagged is a vertex carrying a payload, e.g. the room it was built from
type Tagged[T any] struct {
	Vertex
	Item T
}

// Tag attaches an item to a vertex
func Tag[T any](v Vertex, item T) Tagged[T] {
	return Tagged[T]{Vertex: v, Item: item}
}

// Vertices strips the payloads
func Vertices[T any](tagged []Tagged[T]) []Vertex {
	out := make([]Vertex, len(tagged))
	for i, t := range tagged {
		out[i] = t.Vertex
	}
	return out
}
