package meeting

import (
	"github.com/campusnav/meetpoint/campus"
	"github.com/campusnav/meetpoint/dijkstra"
	"github.com/campusnav/meetpoint/geo"
	"github.com/campusnav/meetpoint/graph"
)

// Resolve finds a building both starting points can walk to, preferring the
// building nearest the geographic midpoint of the two starts, and returns
// the shortest route from each start to it.
//
// Candidates that either side cannot reach are excluded by full name and
// the next-nearest building is tried. The loop terminates because the
// exclusion set grows by exactly one name per retry and the building set is
// finite; an excluded candidate is never revisited.
//
// Mutual reachability of the two starting points is verified once, up
// front; if they cannot reach each other no candidate can succeed and
// Resolve fails immediately with ErrStartsUnreachable.
func Resolve(g *graph.Graph[int64, float64], buildings []campus.Building, start1, start2 campus.Building) (Plan, error) {
	direct, err := dijkstra.ShortestPath(g, start1.Node, start2.Node)
	if err != nil {
		return Plan{}, err
	}
	if !direct.Reached {
		return Plan{}, ErrStartsUnreachable
	}

	mid := geo.Midpoint(start1.Loc, start2.Loc)
	excluded := make(map[string]struct{}, len(buildings))

	for {
		candidate, ok := nearestCandidate(buildings, mid, excluded)
		if !ok {
			return Plan{}, ErrNoDestination
		}

		res1, err := dijkstra.ShortestPath(g, start1.Node, candidate.Node)
		if err != nil {
			return Plan{}, err
		}
		res2, err := dijkstra.ShortestPath(g, start2.Node, candidate.Node)
		if err != nil {
			return Plan{}, err
		}

		if res1.Reached && res2.Reached {
			return Plan{
				Destination: candidate,
				From1:       Route{Distance: res1.Distance, Path: res1.Path},
				From2:       Route{Distance: res2.Distance, Path: res2.Path},
			}, nil
		}

		excluded[candidate.Name] = struct{}{}
	}
}

// nearestCandidate selects the building geographically closest to mid whose
// name is not excluded, by linear scan; ties keep the first minimal element
// in encounter order. The second result is false when no building
// qualifies.
func nearestCandidate(buildings []campus.Building, mid geo.Coord, excluded map[string]struct{}) (campus.Building, bool) {
	var (
		best     campus.Building
		bestDist float64
		found    bool
	)

	for _, b := range buildings {
		if _, skip := excluded[b.Name]; skip {
			continue
		}
		d := geo.Distance(mid, b.Loc)
		if !found || d < bestDist {
			best = b
			bestDist = d
			found = true
		}
	}

	return best, found
}
