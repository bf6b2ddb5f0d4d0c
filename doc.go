// Package meetpoint finds a fair meeting point between two buildings on a
// mapped footpath network and the shortest walking route each person takes
// to get there.
//
// The pipeline:
//
//	osm/     — load an OpenStreetMap extract: nodes, footways, buildings
//	campus/  — model the footpath network, build the routing graph,
//	           anchor buildings to their nearest footway node
//	graph/   — generic weighted directed graph (adjacency list)
//	dijkstra — exact single-source → target shortest path
//	geo/     — haversine distance and spherical midpoint
//	meeting/ — pick the building nearest the midpoint of the two starts,
//	           validate both can reach it, fall back to the next-nearest
//	           when one cannot
//
// Front ends live under cmd/: an interactive console (cmd/meetpoint) and an
// HTTP API (cmd/meetpoint-server, package server).
package meetpoint
