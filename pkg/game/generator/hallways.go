package generator

import (
	"dungeongen/pkg/engine/delaunay"
	"dungeongen/pkg/engine/geom"
	"dungeongen/pkg/engine/mst"
	"dungeongen/pkg/engine/pathfind"
	"dungeongen/pkg/engine/world"
)

// Hallway is one carved connection between two rooms
type Hallway struct {
	From, To *Room
	Path     []world.Index

	// Carved counts the Empty tiles this hallway turned into Hallway tiles
	Carved int
}

// roomGraph maps room centres back to their rooms
type roomGraph struct {
	tagged   []geom.Tagged[*Room]
	byVertex map[geom.Vertex]*Room
}

func newRoomGraph(rooms []*Room) *roomGraph {
	g := &roomGraph{byVertex: make(map[geom.Vertex]*Room, len(rooms))}
	for _, r := range rooms {
		center := r.Center()
		// two rooms can't share a centre since they never overlap
		g.tagged = append(g.tagged, geom.Tag(center, r))
		g.byVertex[center] = r
	}
	return g
}

func (g *roomGraph) vertices() []geom.Vertex {
	return geom.Vertices(g.tagged)
}

func (g *roomGraph) room(v geom.Vertex) *Room {
	return g.byVertex[v]
}

// TriangulateRooms triangulates the room centres
func TriangulateRooms(rooms []*Room) *delaunay.Triangulation {
	return delaunay.Triangulate(newRoomGraph(rooms).vertices())
}

// CandidateEdges returns the edges the spanning tree is built from. Two
// rooms have no triangulation so they get a single direct edge.
func CandidateEdges(rooms []*Room, tri *delaunay.Triangulation) []geom.Edge {
	switch {
	case len(rooms) == 2:
		return []geom.Edge{geom.NewEdge(rooms[0].Center(), rooms[1].Center())}
	case tri.IsEmpty():
		return nil
	default:
		return tri.Edges
	}
}

// SpanningTree picks a random starting edge and reduces edges to an MST
func SpanningTree(edges []geom.Edge, rng *world.RNG) []geom.Edge {
	if len(edges) == 0 {
		return nil
	}
	return mst.Prim(edges, rng.Intn(len(edges)))
}

// CarveHallways routes a hallway along every tree edge. Edges whose rooms
// can't be resolved or whose path can't be found are counted as failed and
// skipped.
func CarveHallways(grid *world.Grid, pf *pathfind.Pathfinder, rooms []*Room, tree []geom.Edge) (hallways []Hallway, failed int) {
	graph := newRoomGraph(rooms)

	for _, e := range tree {
		from, to := graph.room(e.A), graph.room(e.B)
		if from == nil || to == nil {
			failed++
			continue
		}

		path, ok := pf.FindPath(from.CenterIndex(), to.CenterIndex())
		if !ok {
			failed++
			continue
		}

		hallways = append(hallways, Hallway{
			From:   from,
			To:     to,
			Path:   path,
			Carved: CarveHallway(grid, path),
		})
	}

	return hallways, failed
}

// CarveHallway turns every Empty tile on path into a Hallway tile.
// Room and existing Hallway tiles are left alone. Returns the number of
// tiles carved.
func CarveHallway(grid *world.Grid, path []world.Index) int {
	carved := 0
	for _, idx := range path {
		tile := grid.Claim(idx)
		if tile.SetBasicType(world.Hallway) {
			carved++
		}
	}
	return carved
}
