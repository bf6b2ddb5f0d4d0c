// Package osm loads an OpenStreetMap XML extract into the node, footway,
// and building records the routing core consumes.
//
// Only three features of the format are read: <node> elements (the
// coordinate table), <way> elements tagged highway=footway (the walking
// paths), and named <way>/<node> elements carrying a building tag (the
// destinations). Everything else in the extract is ignored.
package osm

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/campusnav/meetpoint/campus"
	"github.com/campusnav/meetpoint/geo"
)

// Map is a loaded extract: the coordinate table, the walking paths, and the
// buildings with their nearest footway node pre-resolved.
type Map struct {
	Nodes     map[int64]geo.Coord
	Footways  []campus.Footway
	Buildings []campus.Building
}

type xmlTag struct {
	K string `xml:"k,attr"`
	V string `xml:"v,attr"`
}

type xmlNode struct {
	ID   int64    `xml:"id,attr"`
	Lat  float64  `xml:"lat,attr"`
	Lon  float64  `xml:"lon,attr"`
	Tags []xmlTag `xml:"tag"`
}

type xmlRef struct {
	Ref int64 `xml:"ref,attr"`
}

type xmlWay struct {
	ID   int64    `xml:"id,attr"`
	Refs []xmlRef `xml:"nd"`
	Tags []xmlTag `xml:"tag"`
}

type xmlFile struct {
	XMLName xml.Name  `xml:"osm"`
	Nodes   []xmlNode `xml:"node"`
	Ways    []xmlWay  `xml:"way"`
}

// Load reads and parses the OSM file at path.
func Load(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("osm: open map: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes an OSM XML document from r.
//
// Buildings whose location cannot be determined, or that cannot be anchored
// to any footway node, are dropped rather than failing the load; a mapping
// defect in one building should not take down the whole map.
func Parse(r io.Reader) (*Map, error) {
	var doc xmlFile
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("osm: decode map: %w", err)
	}

	m := &Map{
		Nodes: make(map[int64]geo.Coord, len(doc.Nodes)),
	}

	for _, n := range doc.Nodes {
		m.Nodes[n.ID] = geo.Coord{Lat: n.Lat, Lon: n.Lon}
	}

	for _, w := range doc.Ways {
		if tagValue(w.Tags, "highway") != "footway" {
			continue
		}
		fw := campus.Footway{ID: w.ID, Nodes: make([]int64, 0, len(w.Refs))}
		for _, ref := range w.Refs {
			fw.Nodes = append(fw.Nodes, ref.Ref)
		}
		m.Footways = append(m.Footways, fw)
	}

	m.Buildings = append(m.Buildings, nodeBuildings(doc.Nodes)...)
	m.Buildings = append(m.Buildings, wayBuildings(doc.Ways, m.Nodes)...)

	// Anchor each building to its nearest footway node; buildings that
	// cannot be anchored are unusable as destinations.
	anchored := m.Buildings[:0]
	for _, b := range m.Buildings {
		node, ok := campus.NearestNode(m.Nodes, m.Footways, b.Loc)
		if !ok {
			continue
		}
		b.Node = node
		anchored = append(anchored, b)
	}
	m.Buildings = anchored

	return m, nil
}

func nodeBuildings(nodes []xmlNode) []campus.Building {
	var out []campus.Building
	for _, n := range nodes {
		name := tagValue(n.Tags, "name")
		if name == "" || tagValue(n.Tags, "building") == "" {
			continue
		}
		out = append(out, campus.Building{
			Name:   name,
			Abbrev: tagValue(n.Tags, "short_name"),
			Loc:    geo.Coord{Lat: n.Lat, Lon: n.Lon},
		})
	}

	return out
}

func wayBuildings(ways []xmlWay, nodes map[int64]geo.Coord) []campus.Building {
	var out []campus.Building
	for _, w := range ways {
		name := tagValue(w.Tags, "name")
		if name == "" || tagValue(w.Tags, "building") == "" {
			continue
		}

		// Way location is the centroid of its resolvable member nodes.
		var lat, lon float64
		var count int
		for _, ref := range w.Refs {
			c, ok := nodes[ref.Ref]
			if !ok {
				continue
			}
			lat += c.Lat
			lon += c.Lon
			count++
		}
		if count == 0 {
			continue
		}

		out = append(out, campus.Building{
			Name:   name,
			Abbrev: tagValue(w.Tags, "short_name"),
			Loc:    geo.Coord{Lat: lat / float64(count), Lon: lon / float64(count)},
		})
	}

	return out
}

func tagValue(tags []xmlTag, key string) string {
	for _, t := range tags {
		if t.K == key {
			return t.V
		}
	}

	return ""
}
