package geom

// Edge is an unordered pair of vertices. DistSq is fixed at construction.
type Edge struct {
	A, B   Vertex
	DistSq float64
}

// EdgeKey is an orientation-free comparable identity for an edge
type EdgeKey struct {
	Lo, Hi Vertex
}

// NewEdge creates an edge and caches its squared length
func NewEdge(a, b Vertex) Edge {
	return Edge{A: a, B: b, DistSq: a.DistSq(b)}
}

// Key returns the undirected identity of the edge
func (e Edge) Key() EdgeKey {
	if e.B.less(e.A) {
		return EdgeKey{Lo: e.B, Hi: e.A}
	}
	return EdgeKey{Lo: e.A, Hi: e.B}
}

// Equal is undirected exact equality: edge(A,B) == edge(B,A)
func (e Edge) Equal(o Edge) bool {
	return (e.A == o.A && e.B == o.B) || (e.A == o.B && e.B == o.A)
}

// ApproxEqual reports whether both endpoints match within tolSq (squared XY
// distance), in either orientation
func (e Edge) ApproxEqual(o Edge, tolSq float64) bool {
	if e.A.DistSq(o.A) < tolSq && e.B.DistSq(o.B) < tolSq {
		return true
	}
	return e.A.DistSq(o.B) < tolSq && e.B.DistSq(o.A) < tolSq
}

// Has returns true if v is one of the endpoints
func (e Edge) Has(v Vertex) bool {
	return e.A == v || e.B == v
}

// Other returns the endpoint that is not v
func (e Edge) Other(v Vertex) Vertex {
	if e.A == v {
		return e.B
	}
	return e.A
}
