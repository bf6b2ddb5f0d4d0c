// Package meeting resolves a fair meeting point between two buildings on
// the footpath network.
//
// Resolve computes the geographic midpoint of the two starting buildings,
// picks the building nearest to that midpoint, and validates that both
// starting points can actually walk to it. A candidate one side cannot
// reach is excluded and the next-nearest building is tried, until a
// jointly reachable destination is found or the building set is exhausted.
//
// Two failures are terminal for a resolution session:
//
//   - ErrStartsUnreachable — the two starting points cannot reach each
//     other at all, so no meeting point can possibly exist. This is checked
//     once, before any candidate is tried, and not re-checked per
//     candidate.
//   - ErrNoDestination — every building has been excluded, or the building
//     list was empty to begin with.
//
// The exclusion set is owned by a single Resolve call and grows strictly
// on every retry, which bounds the loop by the size of the building set.
// Sessions are independent: nothing persists between calls except the
// graph, which is shared read-only.
package meeting
