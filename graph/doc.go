// Package graph provides the in-memory weighted directed graph that backs
// the footpath network.
//
// The Graph G = (V,E) is adjacency-list based and generic over its vertex
// key K and edge weight W:
//
//   - K is any ordered, comparable key (the campus network uses int64 OSM
//     node ids; tests use small ints and strings).
//   - W is any signed integer or floating-point weight (the campus network
//     uses float64 geodesic miles).
//
// Behavior:
//
//   - Storage is directed. Callers that need bidirectional connectivity add
//     the mirror edge explicitly, which is exactly what the footpath builder
//     does for every consecutive segment pair.
//   - Edges may only connect vertices that already exist; AddEdge reports
//     false for an unknown endpoint and leaves the graph unchanged.
//   - Re-adding an existing (from,to) pair overwrites the weight in place;
//     the edge count never grows on overwrite.
//   - Neighbors returns each reachable vertex once, in sorted key order, so
//     traversal order is deterministic and reproducible across runs;
//     OutEdges returns the matching (target, weight) records in the same
//     order for traversals that need weights without per-edge lookups.
//   - Vertices enumerates in insertion order.
//
// Absent-vertex and absent-edge conditions are reported through bool/ok
// returns, never through panics or errors: the map loader is allowed to feed
// the builder segments that reference unknown node ids, and skipping them is
// the correct recovery.
//
// Weights are expected to be non-negative; that is a caller contract
// required by the shortest-path engine, not something the graph enforces.
//
// All methods are safe for concurrent use via an internal sync.RWMutex.
// In practice the graph is built once and read-only afterwards, so readers
// never contend.
package graph
