package meeting

import (
	"errors"

	"github.com/campusnav/meetpoint/campus"
)

// Sentinel errors returned by Resolve. Both describe expected, user-facing
// outcomes of a resolution session, not programming faults.
var (
	// ErrStartsUnreachable indicates the two starting points cannot reach
	// each other on the footpath network.
	ErrStartsUnreachable = errors.New("meeting: start points cannot reach each other")

	// ErrNoDestination indicates every candidate building was excluded or
	// the building list is empty.
	ErrNoDestination = errors.New("meeting: no reachable destination building")
)

// Route is one walking route to the destination: the accumulated geodesic
// distance in miles and the node sequence ordered from the destination back
// to the starting point.
type Route struct {
	Distance float64
	Path     []int64
}

// Plan is a successful resolution: the chosen destination and the route
// from each starting building.
type Plan struct {
	Destination campus.Building
	From1       Route
	From2       Route
}
