package dijkstra

import (
	"cmp"
	"errors"

	"github.com/campusnav/meetpoint/graph"
)

// Sentinel errors returned by ShortestPath. Unreachability is not among
// them: it is reported through Result.Reached.
var (
	// ErrNilGraph indicates a nil graph was passed to ShortestPath.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates the source or target is not a vertex of
	// the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")
)

// Result is the outcome of one shortest-path search.
//
// When Reached is false the search exhausted the frontier without
// finalizing the target; Distance and Path are zero values and carry no
// partial information.
//
// When Reached is true, Distance is the minimum total weight from source to
// target and Path lists the vertices of one such path ordered from the
// target back to the source, both endpoints included. A source==target
// search yields Distance zero and a single-vertex path.
type Result[K cmp.Ordered, W graph.Weight] struct {
	Reached  bool
	Distance W
	Path     []K
}
