package campus

import "github.com/campusnav/meetpoint/geo"

// Footway is one walking path: an ordered sequence of node ids. Each
// consecutive pair becomes a bidirectional graph edge.
type Footway struct {
	ID    int64
	Nodes []int64
}

// Building is a named destination on the map.
//
// Node is the id of the footway node nearest to the building's location.
// It is resolved once when the map is loaded and treated as immutable
// afterwards.
type Building struct {
	Name   string
	Abbrev string
	Loc    geo.Coord
	Node   int64
}
