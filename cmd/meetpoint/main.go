// Command meetpoint is the interactive console front end: load a map,
// then repeatedly take two building queries and print the meeting point
// and both walking routes.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/campusnav/meetpoint/campus"
	"github.com/campusnav/meetpoint/meeting"
	"github.com/campusnav/meetpoint/osm"
)

func main() {
	defaultMap := flag.String("map", "map.osm", "default OSM map file")
	flag.Parse()

	in := bufio.NewScanner(os.Stdin)

	fmt.Println("** Navigating the campus open street map **")
	fmt.Println()
	fmt.Printf("Enter map filename (default %s)> ", *defaultMap)

	filename := *defaultMap
	if in.Scan() {
		if line := strings.TrimSpace(in.Text()); line != "" {
			filename = line
		}
	}

	m, err := osm.Load(filename)
	if err != nil {
		log.Fatalf("unable to load map: %v", err)
	}

	g := campus.BuildGraph(m.Nodes, m.Footways)

	fmt.Println()
	fmt.Printf("# of nodes: %d\n", len(m.Nodes))
	fmt.Printf("# of footways: %d\n", len(m.Footways))
	fmt.Printf("# of buildings: %d\n", len(m.Buildings))
	fmt.Printf("# of vertices: %d\n", g.VertexCount())
	fmt.Printf("# of edges: %d\n", g.EdgeCount())

	for {
		fmt.Println()
		fmt.Print("Enter person 1's building (partial name or abbreviation), or #> ")
		if !in.Scan() {
			break
		}
		query1 := strings.TrimSpace(in.Text())
		if query1 == "#" {
			break
		}

		fmt.Print("Enter person 2's building (partial name or abbreviation)> ")
		if !in.Scan() {
			break
		}
		query2 := strings.TrimSpace(in.Text())

		start1, ok := campus.SearchBuildings(m.Buildings, query1)
		if !ok {
			fmt.Println("Person 1's building not found")
			continue
		}
		start2, ok := campus.SearchBuildings(m.Buildings, query2)
		if !ok {
			fmt.Println("Person 2's building not found")
			continue
		}

		printBuilding("Person 1's point", start1)
		printBuilding("Person 2's point", start2)

		plan, err := meeting.Resolve(g, m.Buildings, start1, start2)
		switch {
		case errors.Is(err, meeting.ErrStartsUnreachable):
			fmt.Println("Sorry, destination unreachable")
			continue
		case errors.Is(err, meeting.ErrNoDestination):
			fmt.Println("Sorry, no destination building is reachable by both")
			continue
		case err != nil:
			log.Fatalf("routing failed: %v", err)
		}

		printBuilding("Destination building", plan.Destination)
		fmt.Println()
		printRoute("Person 1", plan.From1)
		printRoute("Person 2", plan.From2)
	}

	fmt.Println("** Done **")
}

func printBuilding(label string, b campus.Building) {
	fmt.Printf("%s:\n %s\n (%.8f, %.8f)\n", label, b.Name, b.Loc.Lat, b.Loc.Lon)
}

// printRoute prints the route start-to-destination, reversing the
// destination-first path the resolver returns.
func printRoute(who string, r meeting.Route) {
	fmt.Printf("%s's distance to dest: %.8f miles\n", who, r.Distance)
	fmt.Print("Path: ")
	for i := len(r.Path) - 1; i > 0; i-- {
		fmt.Printf("%d->", r.Path[i])
	}
	fmt.Printf("%d\n", r.Path[0])
}
