// Package campus models the walkable footpath network of a mapped area:
// the node coordinate table, the footway segments that connect nodes, and
// the named buildings people navigate between.
//
// It turns loaded map data into the weighted graph the shortest-path engine
// consumes (BuildGraph), anchors arbitrary coordinates to the network
// (NearestNode), and resolves user-typed building queries
// (SearchBuildings).
package campus
