package geom

import (
	"math"
	"testing"
)

func TestEdgeUndirectedEquality(t *testing.T) {
	a, b := V2(1, 2), V2(4, 6)
	e1 := NewEdge(a, b)
	e2 := NewEdge(b, a)

	if !e1.Equal(e2) {
		t.Error("edge(A,B).Equal(edge(B,A)) = false, want true")
	}
	if e1.Key() != e2.Key() {
		t.Errorf("Key() differs by orientation: %v vs %v", e1.Key(), e2.Key())
	}
	if e1.DistSq != 25 {
		t.Errorf("DistSq = %v, want 25", e1.DistSq)
	}
	if e1.Equal(NewEdge(a, V2(4, 7))) {
		t.Error("different edges compared equal")
	}
}

func TestEdgeApproxEqual(t *testing.T) {
	e := NewEdge(V2(0, 0), V2(10, 0))
	near := NewEdge(V2(10.05, 0), V2(0, 0.05))
	far := NewEdge(V2(0, 0), V2(10.2, 0))

	if !e.ApproxEqual(near, 0.01) {
		t.Error("ApproxEqual(reversed near edge) = false, want true")
	}
	if e.ApproxEqual(far, 0.01) {
		t.Error("ApproxEqual(far edge) = true, want false")
	}
}

func TestVertexApproxEqual(t *testing.T) {
	v := V2(1e6, -3)
	if !v.ApproxEqual(V2(1e6+1e-10, -3)) {
		t.Error("ApproxEqual should absorb rounding at large magnitude")
	}
	if v.ApproxEqual(V2(1e6+1, -3)) {
		t.Error("ApproxEqual should reject a unit difference")
	}
	if !V2(0, 0).ApproxEqual(Vertex{Z: 5}) {
		t.Error("ApproxEqual must ignore Z")
	}
}

func TestTriangleCircumcircle(t *testing.T) {
	tri := NewTriangle(V2(0, 0), V2(2, 0), V2(0, 2))
	c, ok := tri.Circumcenter()
	if !ok {
		t.Fatal("right triangle reported degenerate")
	}
	if math.Abs(c.X-1) > 1e-12 || math.Abs(c.Y-1) > 1e-12 {
		t.Errorf("Circumcenter = %v, want (1,1)", c)
	}
	if !tri.CircumcircleContains(V2(1, 1)) {
		t.Error("centre not contained")
	}
	if tri.CircumcircleContains(V2(3, 3)) {
		t.Error("(3,3) should be outside")
	}
	if !tri.CircumcircleContains(Vertex{X: 1, Y: 1, Z: 1000}) {
		t.Error("containment must ignore Z")
	}
}

func TestTriangleDegenerateContainsNothing(t *testing.T) {
	tri := NewTriangle(V2(0, 0), V2(1, 1), V2(2, 2))
	if _, ok := tri.Circumcenter(); ok {
		t.Error("collinear triangle reported a circumcenter")
	}
	for _, p := range []Vertex{V2(1, 1), V2(0, 0), V2(100, -4)} {
		if tri.CircumcircleContains(p) {
			t.Errorf("degenerate triangle contains %v", p)
		}
	}
}

func TestTriangleSharesVertexWith(t *testing.T) {
	a := NewTriangle(V2(0, 0), V2(1, 0), V2(0, 1))
	b := NewTriangle(V2(1, 0), V2(5, 5), V2(6, 1))
	c := NewTriangle(V2(9, 9), V2(8, 9), V2(9, 8))

	if !a.SharesVertexWith(b) {
		t.Error("a and b share (1,0)")
	}
	if a.SharesVertexWith(c) {
		t.Error("a and c share nothing")
	}
	if !a.HasVertexNear(V2(0.05, 0), 0.01) {
		t.Error("HasVertexNear within tolerance = false")
	}
	if a.HasVertexNear(V2(0.5, 0.5), 0.01) {
		t.Error("HasVertexNear outside tolerance = true")
	}
}

func TestTagged(t *testing.T) {
	tagged := []Tagged[string]{Tag(V2(1, 2), "a"), Tag(V2(3, 4), "b")}
	vs := Vertices(tagged)
	if len(vs) != 2 || vs[1] != V2(3, 4) {
		t.Errorf("Vertices = %v", vs)
	}
	if tagged[0].Item != "a" || tagged[0].X != 1 {
		t.Errorf("tagged[0] = %+v", tagged[0])
	}
}
