// Package dijkstra_test exercises the shortest-path engine: invalid-input
// errors, the triangle and isolated-vertex fixtures, the source==target
// case, symmetry on bidirectional graphs, and the triangle inequality.
package dijkstra_test

import (
	"testing"

	"github.com/campusnav/meetpoint/dijkstra"
	"github.com/campusnav/meetpoint/graph"
)

// addBoth inserts v—u and u—v with the same weight.
func addBoth(g *graph.Graph[int64, float64], u, v int64, w float64) {
	g.AddEdge(u, v, w)
	g.AddEdge(v, u, w)
}

// triangle builds vertices {1,2,3} with bidirectional edges
// (1,2,1.0), (2,3,1.0), (1,3,5.0).
func triangle() *graph.Graph[int64, float64] {
	g := graph.New[int64, float64]()
	for _, v := range []int64{1, 2, 3} {
		g.AddVertex(v)
	}
	addBoth(g, 1, 2, 1.0)
	addBoth(g, 2, 3, 1.0)
	addBoth(g, 1, 3, 5.0)

	return g
}

func TestShortestPath_NilGraph(t *testing.T) {
	_, err := dijkstra.ShortestPath[int64, float64](nil, 1, 2)
	if err != dijkstra.ErrNilGraph {
		t.Fatalf("expected ErrNilGraph, got %v", err)
	}
}

func TestShortestPath_UnknownEndpoints(t *testing.T) {
	g := graph.New[int64, float64]()
	g.AddVertex(1)

	if _, err := dijkstra.ShortestPath(g, 1, 2); err != dijkstra.ErrVertexNotFound {
		t.Fatalf("expected ErrVertexNotFound for unknown target, got %v", err)
	}
	if _, err := dijkstra.ShortestPath(g, 2, 1); err != dijkstra.ErrVertexNotFound {
		t.Fatalf("expected ErrVertexNotFound for unknown source, got %v", err)
	}
}

func TestShortestPath_Triangle(t *testing.T) {
	g := triangle()

	res, err := dijkstra.ShortestPath(g, 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Reached {
		t.Fatal("expected 3 to be reachable from 1")
	}
	if res.Distance != 2.0 {
		t.Errorf("distance = %v; want 2.0 (via 1→2→3, not the direct 5.0 edge)", res.Distance)
	}

	// Path runs target back to source, endpoints included.
	want := []int64{3, 2, 1}
	if len(res.Path) != len(want) {
		t.Fatalf("path = %v; want %v", res.Path, want)
	}
	for i := range want {
		if res.Path[i] != want[i] {
			t.Fatalf("path = %v; want %v", res.Path, want)
		}
	}
}

func TestShortestPath_IsolatedVertexUnreachable(t *testing.T) {
	g := triangle()
	g.AddVertex(9) // no edges

	res, err := dijkstra.ShortestPath(g, 1, 9)
	if err != nil {
		t.Fatal(err)
	}
	if res.Reached {
		t.Fatal("expected vertex 9 to be unreachable")
	}
	if res.Path != nil {
		t.Errorf("unreached result must carry no partial path, got %v", res.Path)
	}
	if res.Distance != 0 {
		t.Errorf("unreached result must carry zero distance, got %v", res.Distance)
	}
}

func TestShortestPath_SourceEqualsTarget(t *testing.T) {
	g := triangle()

	res, err := dijkstra.ShortestPath(g, 2, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Reached {
		t.Fatal("a vertex must reach itself")
	}
	if res.Distance != 0 {
		t.Errorf("distance = %v; want 0", res.Distance)
	}
	if len(res.Path) != 1 || res.Path[0] != 2 {
		t.Errorf("path = %v; want single-vertex path [2]", res.Path)
	}
}

func TestShortestPath_IsolatedSourceReachesOnlyItself(t *testing.T) {
	g := graph.New[int64, float64]()
	g.AddVertex(7)
	g.AddVertex(8)

	res, err := dijkstra.ShortestPath(g, 7, 7)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Reached || res.Distance != 0 {
		t.Errorf("edgeless vertex should trivially reach itself, got %+v", res)
	}

	res, err = dijkstra.ShortestPath(g, 7, 8)
	if err != nil {
		t.Fatal(err)
	}
	if res.Reached {
		t.Error("edgeless vertex must not reach any other vertex")
	}
}

func TestShortestPath_SymmetricOnBidirectionalGraph(t *testing.T) {
	// Every edge is mirrored, so distance(a,b) == distance(b,a) for all
	// reachable pairs.
	g := graph.New[int64, float64]()
	for v := int64(1); v <= 6; v++ {
		g.AddVertex(v)
	}
	addBoth(g, 1, 2, 0.7)
	addBoth(g, 2, 3, 1.3)
	addBoth(g, 3, 4, 0.2)
	addBoth(g, 1, 4, 2.9)
	addBoth(g, 4, 5, 1.1)
	addBoth(g, 2, 5, 0.6)
	addBoth(g, 5, 6, 0.4)

	verts := g.Vertices()
	for _, a := range verts {
		for _, b := range verts {
			ab, err := dijkstra.ShortestPath(g, a, b)
			if err != nil {
				t.Fatal(err)
			}
			ba, err := dijkstra.ShortestPath(g, b, a)
			if err != nil {
				t.Fatal(err)
			}
			if ab.Reached != ba.Reached {
				t.Fatalf("reachability(%d,%d) asymmetric", a, b)
			}
			if ab.Reached && ab.Distance != ba.Distance {
				t.Errorf("distance(%d,%d)=%v but distance(%d,%d)=%v", a, b, ab.Distance, b, a, ba.Distance)
			}
		}
	}
}

func TestShortestPath_TriangleInequality(t *testing.T) {
	g := graph.New[int64, float64]()
	for v := int64(1); v <= 5; v++ {
		g.AddVertex(v)
	}
	addBoth(g, 1, 2, 1.0)
	addBoth(g, 2, 3, 2.5)
	addBoth(g, 3, 4, 0.5)
	addBoth(g, 1, 4, 9.0)
	addBoth(g, 4, 5, 1.5)

	const eps = 1e-9
	verts := g.Vertices()
	for _, a := range verts {
		for _, b := range verts {
			for _, c := range verts {
				ac, _ := dijkstra.ShortestPath(g, a, c)
				ab, _ := dijkstra.ShortestPath(g, a, b)
				bc, _ := dijkstra.ShortestPath(g, b, c)
				if ac.Reached && ab.Reached && bc.Reached {
					if ac.Distance > ab.Distance+bc.Distance+eps {
						t.Errorf("d(%d,%d)=%v exceeds d(%d,%d)+d(%d,%d)=%v",
							a, c, ac.Distance, a, b, b, c, ab.Distance+bc.Distance)
					}
				}
			}
		}
	}
}

func TestShortestPath_DirectedEdgesAreOneWay(t *testing.T) {
	// Without the mirror edge there is no way back.
	g := graph.New[int64, float64]()
	g.AddVertex(1)
	g.AddVertex(2)
	g.AddEdge(1, 2, 1.0)

	res, err := dijkstra.ShortestPath(g, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	if res.Reached {
		t.Error("directed edge 1→2 must not be traversable from 2")
	}
}

func TestShortestPath_PrefersLaterCheaperRoute(t *testing.T) {
	// A longer chain that undercuts a heavy direct edge, to make sure stale
	// frontier entries are discarded rather than finalized.
	g := graph.New[int64, float64]()
	for v := int64(1); v <= 5; v++ {
		g.AddVertex(v)
	}
	addBoth(g, 1, 5, 10.0)
	addBoth(g, 1, 2, 1.0)
	addBoth(g, 2, 3, 1.0)
	addBoth(g, 3, 4, 1.0)
	addBoth(g, 4, 5, 1.0)

	res, err := dijkstra.ShortestPath(g, 1, 5)
	if err != nil {
		t.Fatal(err)
	}
	if res.Distance != 4.0 {
		t.Errorf("distance = %v; want 4.0 via the chain", res.Distance)
	}
	if len(res.Path) != 5 {
		t.Errorf("path = %v; want the full 5-vertex chain", res.Path)
	}
}
