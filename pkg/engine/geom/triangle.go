package geom

import "math"

// degenerateEps rejects circumcircles of (near) collinear triangles
const degenerateEps = 1e-12

// Triangle holds three vertices and its precomputed circumcircle.
// Marked is scratch state for the triangulator and not part of identity.
type Triangle struct {
	A, B, C Vertex
	Marked  bool

	center   Vertex
	radiusSq float64
	valid    bool
}

// NewTriangle creates a triangle and computes its circumcircle
func NewTriangle(a, b, c Vertex) *Triangle {
	t := &Triangle{A: a, B: b, C: c}
	t.center, t.radiusSq, t.valid = circumcircle(a, b, c)
	return t
}

// circumcircle returns the centre and squared radius; ok is false when the
// triangle is degenerate or the result is not finite.
func circumcircle(a, b, c Vertex) (center Vertex, radiusSq float64, ok bool) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) < degenerateEps {
		return Vertex{}, 0, false
	}

	a2 := a.X*a.X + a.Y*a.Y
	b2 := b.X*b.X + b.Y*b.Y
	c2 := c.X*c.X + c.Y*c.Y

	ux := (a2*(b.Y-c.Y) + b2*(c.Y-a.Y) + c2*(a.Y-b.Y)) / d
	uy := (a2*(c.X-b.X) + b2*(a.X-c.X) + c2*(b.X-a.X)) / d
	center = V2(ux, uy)
	radiusSq = center.DistSq(a)

	if !isFinite(ux) || !isFinite(uy) || !isFinite(radiusSq) {
		return Vertex{}, 0, false
	}
	return center, radiusSq, true
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Circumcenter returns the circumcircle centre; ok is false for degenerate triangles
func (t *Triangle) Circumcenter() (Vertex, bool) {
	return t.center, t.valid
}

// CircumradiusSq returns the squared circumradius (0 for degenerate triangles)
func (t *Triangle) CircumradiusSq() float64 {
	return t.radiusSq
}

// CircumcircleContains is the XY-only test of p against the circumcircle.
// Degenerate triangles contain nothing.
func (t *Triangle) CircumcircleContains(p Vertex) bool {
	if !t.valid {
		return false
	}
	return p.DistSq(t.center) < t.radiusSq
}

// SharesVertexWith reports whether the triangles have any vertex in common.
// It is not an identity comparison.
func (t *Triangle) SharesVertexWith(o *Triangle) bool {
	for _, v := range t.Vertices() {
		if v == o.A || v == o.B || v == o.C {
			return true
		}
	}
	return false
}

// HasVertexNear reports whether any vertex lies within tolSq (squared
// distance) of v
func (t *Triangle) HasVertexNear(v Vertex, tolSq float64) bool {
	return t.A.DistSq(v) < tolSq || t.B.DistSq(v) < tolSq || t.C.DistSq(v) < tolSq
}

// Vertices returns A, B, C
func (t *Triangle) Vertices() [3]Vertex {
	return [3]Vertex{t.A, t.B, t.C}
}

// Edges returns AB, BC, CA
func (t *Triangle) Edges() [3]Edge {
	return [3]Edge{NewEdge(t.A, t.B), NewEdge(t.B, t.C), NewEdge(t.C, t.A)}
}
