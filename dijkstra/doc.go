// Package dijkstra implements single-source, single-target shortest-path
// search over a weighted graph using Dijkstra's algorithm.
//
// ShortestPath expands vertices in order of increasing tentative distance
// from the source using a binary min-heap frontier with lazy deletion:
// relaxing an edge pushes a fresh heap entry, and stale duplicates are
// discarded when popped against the visited set. The search stops as soon
// as the target is popped (its distance is final at that point) or when the
// frontier is exhausted, which means every remaining vertex is unreachable.
//
// Unreachability is an expected outcome, not an error: the result carries a
// Reached flag and an unreached result carries no partial path. Errors are
// reserved for invalid input (nil graph, endpoints that are not vertices of
// the graph).
//
// Edge weights must be non-negative. That is a caller contract inherited
// from the graph package; violating it produces undefined shortest-path
// results.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with the binary-heap frontier.
//   - Each vertex is finalized at most once: V pops that do work.
//   - Each relaxation may push one entry: up to E pushes, so up to E
//     additional stale pops, each O(log V).
//   - Space: O(V + E) for the distance/predecessor maps and the frontier.
package dijkstra
