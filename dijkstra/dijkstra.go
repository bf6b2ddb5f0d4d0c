package dijkstra

import (
	"cmp"
	"container/heap"

	"github.com/campusnav/meetpoint/graph"
)

// ShortestPath computes the minimum-total-weight path from source to target
// in g, or reports that the target is unreachable.
//
// The returned error is non-nil only for invalid input: a nil graph, or a
// source/target that is not a vertex of g. A well-formed search that simply
// finds no route returns Result{Reached: false} and a nil error, so callers
// can treat unreachability as a normal, retryable condition.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func ShortestPath[K cmp.Ordered, W graph.Weight](g *graph.Graph[K, W], source, target K) (Result[K, W], error) {
	if g == nil {
		return Result[K, W]{}, ErrNilGraph
	}
	if !g.HasVertex(source) || !g.HasVertex(target) {
		return Result[K, W]{}, ErrVertexNotFound
	}

	// dist holds finite tentative distances only; a key absent from dist is
	// at infinity. This avoids a sentinel value that could collide with real
	// weights.
	dist := map[K]W{source: 0}
	prev := make(map[K]K)
	visited := make(map[K]bool)

	pq := frontier[K, W]{{key: source, dist: 0}}
	heap.Init(&pq)

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(entry[K, W])
		u := item.key

		// Stale duplicate from an earlier relaxation; the vertex was already
		// finalized at a smaller distance.
		if visited[u] {
			continue
		}
		visited[u] = true

		// The popped distance is final, so once the target surfaces the
		// search is done.
		if u == target {
			break
		}

		du := dist[u]
		for _, e := range g.OutEdges(u) {
			alt := du + e.Weight
			if dv, seen := dist[e.To]; seen && alt >= dv {
				continue
			}
			dist[e.To] = alt
			prev[e.To] = u
			heap.Push(&pq, entry[K, W]{key: e.To, dist: alt})
		}
	}

	if !visited[target] {
		return Result[K, W]{}, nil
	}

	// Back-trace predecessor links from the target; the path is reported
	// target-first, source-last.
	path := []K{target}
	for at := target; at != source; {
		at = prev[at]
		path = append(path, at)
	}

	return Result[K, W]{
		Reached:  true,
		Distance: dist[target],
		Path:     path,
	}, nil
}

// entry is one frontier record: a vertex and the tentative distance it was
// pushed with. Lazy deletion means a vertex may appear multiple times with
// decreasing distances.
type entry[K cmp.Ordered, W graph.Weight] struct {
	key  K
	dist W
}

// frontier is a min-heap of entries ordered by distance.
type frontier[K cmp.Ordered, W graph.Weight] []entry[K, W]

func (f frontier[K, W]) Len() int { return len(f) }

func (f frontier[K, W]) Less(i, j int) bool { return f[i].dist < f[j].dist }

func (f frontier[K, W]) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier[K, W]) Push(x any) { *f = append(*f, x.(entry[K, W])) }

func (f *frontier[K, W]) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
