package graph

import (
	"cmp"
	"slices"
	"sync"
)

// Weight is the set of edge-weight types a Graph accepts: signed integers
// and floats. Unsigned types are excluded so that weight arithmetic in the
// shortest-path engine cannot wrap around.
type Weight interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// edge is a single adjacency record: the target vertex and the edge weight.
type edge[K cmp.Ordered, W Weight] struct {
	to     K
	weight W
}

// Graph is a directed weighted graph over vertex keys K and weights W,
// backed by an adjacency list. The zero value is not usable; construct with
// New.
type Graph[K cmp.Ordered, W Weight] struct {
	mu sync.RWMutex

	order     []K               // vertex keys in insertion order
	adj       map[K][]edge[K, W] // one entry per distinct (from,to) pair
	edgeCount int
}

// New returns an empty Graph.
// Complexity: O(1)
func New[K cmp.Ordered, W Weight]() *Graph[K, W] {
	return &Graph[K, W]{
		adj: make(map[K][]edge[K, W]),
	}
}

// AddVertex inserts k into the graph. It reports true if k was newly
// inserted and false if k was already present, in which case the graph is
// unchanged.
// Complexity: O(1)
func (g *Graph[K, W]) AddVertex(k K) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.adj[k]; exists {
		return false
	}
	g.adj[k] = nil
	g.order = append(g.order, k)

	return true
}

// HasVertex reports whether k is a vertex of the graph.
// Complexity: O(1)
func (g *Graph[K, W]) HasVertex(k K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[k]

	return ok
}

// AddEdge inserts the directed edge from→to with the given weight and
// reports true. If either endpoint is not a vertex of the graph, nothing is
// inserted and AddEdge reports false.
//
// If the (from,to) edge already exists its weight is overwritten in place:
// the adjacency list does not grow and the edge count is unchanged. The
// count increments only on the first insertion of a given pair.
// Complexity: O(deg(from))
func (g *Graph[K, W]) AddEdge(from, to K, weight W) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adj[from]; !ok {
		return false
	}
	if _, ok := g.adj[to]; !ok {
		return false
	}

	rows := g.adj[from]
	for i := range rows {
		if rows[i].to == to {
			rows[i].weight = weight
			return true
		}
	}

	g.adj[from] = append(rows, edge[K, W]{to: to, weight: weight})
	g.edgeCount++

	return true
}

// Weight returns the weight of the from→to edge. The second result is false
// when either endpoint or the edge itself is absent, which distinguishes
// "not found" from a genuine zero weight. Weight never mutates the graph.
// Complexity: O(deg(from))
func (g *Graph[K, W]) Weight(from, to K) (W, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var zero W
	rows, ok := g.adj[from]
	if !ok {
		return zero, false
	}
	if _, ok = g.adj[to]; !ok {
		return zero, false
	}

	for i := range rows {
		if rows[i].to == to {
			return rows[i].weight, true
		}
	}

	return zero, false
}

// Neighbors returns every vertex reachable from v along one outgoing edge,
// deduplicated and in sorted key order. The order is stable across repeated
// calls on an unmodified graph. An unknown or isolated vertex yields an
// empty slice.
// Complexity: O(deg(v) log deg(v))
func (g *Graph[K, W]) Neighbors(v K) []K {
	g.mu.RLock()
	defer g.mu.RUnlock()

	rows := g.adj[v]
	if len(rows) == 0 {
		return nil
	}

	out := make([]K, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].to)
	}
	slices.Sort(out)

	return out
}

// Edge is an outgoing adjacency record as exposed to traversals: the target
// vertex and the edge weight.
type Edge[K cmp.Ordered, W Weight] struct {
	To     K
	Weight W
}

// OutEdges returns v's outgoing edges, one per distinct target, sorted by
// target key so traversal order is deterministic. An unknown or isolated
// vertex yields an empty slice.
// Complexity: O(deg(v) log deg(v))
func (g *Graph[K, W]) OutEdges(v K) []Edge[K, W] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	rows := g.adj[v]
	if len(rows) == 0 {
		return nil
	}

	out := make([]Edge[K, W], 0, len(rows))
	for i := range rows {
		out = append(out, Edge[K, W]{To: rows[i].to, Weight: rows[i].weight})
	}
	slices.SortFunc(out, func(a, b Edge[K, W]) int { return cmp.Compare(a.To, b.To) })

	return out
}

// Vertices returns all vertex keys in insertion order.
// Complexity: O(V)
func (g *Graph[K, W]) Vertices() []K {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]K, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1)
func (g *Graph[K, W]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns the number of distinct (from,to) edges.
// Complexity: O(1)
func (g *Graph[K, W]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
