package campus

import (
	"github.com/campusnav/meetpoint/geo"
	"github.com/campusnav/meetpoint/graph"
)

// BuildGraph constructs the routing graph from the node coordinate table
// and the footway list: one vertex per node id, and for every consecutive
// node pair on a footway a bidirectional edge weighted by the geodesic
// distance between the two coordinates.
//
// Segment pairs that reference a node id missing from the table are
// skipped; a partially mapped footway degrades the network rather than
// failing the build.
//
// Complexity: linear in the node count plus the total number of footway
// segments; edge insertion scans an adjacency row, which stays short on
// real path networks.
func BuildGraph(nodes map[int64]geo.Coord, footways []Footway) *graph.Graph[int64, float64] {
	g := graph.New[int64, float64]()

	for id := range nodes {
		g.AddVertex(id)
	}

	for _, fw := range footways {
		for i := 0; i+1 < len(fw.Nodes); i++ {
			from, to := fw.Nodes[i], fw.Nodes[i+1]

			fromCoord, ok := nodes[from]
			if !ok {
				continue
			}
			toCoord, ok := nodes[to]
			if !ok {
				continue
			}

			w := geo.Distance(fromCoord, toCoord)
			g.AddEdge(from, to, w)
			g.AddEdge(to, from, w)
		}
	}

	return g
}

// NearestNode returns the id of the footway node closest to loc, scanning
// every node referenced by a footway. The second result is false when the
// footway list is empty or references no known nodes.
func NearestNode(nodes map[int64]geo.Coord, footways []Footway, loc geo.Coord) (int64, bool) {
	var (
		bestID   int64
		bestDist float64
		found    bool
	)

	for _, fw := range footways {
		for _, id := range fw.Nodes {
			coord, ok := nodes[id]
			if !ok {
				continue
			}
			d := geo.Distance(loc, coord)
			if !found || d < bestDist {
				bestID = id
				bestDist = d
				found = true
			}
		}
	}

	return bestID, found
}
