// Command meetpoint-server serves the meeting-point resolver over HTTP.
package main

import (
	"flag"
	"log"

	"github.com/campusnav/meetpoint/campus"
	"github.com/campusnav/meetpoint/osm"
	"github.com/campusnav/meetpoint/server"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	mapFile := flag.String("map", "map.osm", "OSM map file")
	flag.Parse()

	log.Printf("loading map from %s", *mapFile)
	m, err := osm.Load(*mapFile)
	if err != nil {
		log.Fatalf("failed to load map: %v", err)
	}

	g := campus.BuildGraph(m.Nodes, m.Footways)
	log.Printf("footpath network ready: %d vertices, %d edges, %d buildings",
		g.VertexCount(), g.EdgeCount(), len(m.Buildings))

	srv := server.New(g, m.Buildings)

	log.Printf("meetpoint server listening on %s", *addr)
	if err := srv.Router().Run(*addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
