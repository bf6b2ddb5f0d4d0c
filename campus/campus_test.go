package campus_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campusnav/meetpoint/campus"
	"github.com/campusnav/meetpoint/geo"
)

// A tiny grid of nodes around a fixed origin. Steps of ~0.001 degrees keep
// the geodesic weights small but strictly positive.
func testNodes() map[int64]geo.Coord {
	return map[int64]geo.Coord{
		1: {Lat: 41.8700, Lon: -87.6500},
		2: {Lat: 41.8710, Lon: -87.6500},
		3: {Lat: 41.8720, Lon: -87.6500},
		4: {Lat: 41.8700, Lon: -87.6510},
	}
}

func TestBuildGraph_BidirectionalEdges(t *testing.T) {
	require := require.New(t)
	nodes := testNodes()
	footways := []campus.Footway{
		{ID: 100, Nodes: []int64{1, 2, 3}},
	}

	g := campus.BuildGraph(nodes, footways)

	require.Equal(len(nodes), g.VertexCount(), "every node becomes a vertex")
	require.Equal(4, g.EdgeCount(), "two segments, each mirrored")

	w12, ok := g.Weight(1, 2)
	require.True(ok)
	w21, ok := g.Weight(2, 1)
	require.True(ok)
	require.Equal(w12, w21, "mirror edge carries the same weight")
	require.Equal(geo.Distance(nodes[1], nodes[2]), w12)

	// Node 4 is on no footway: a vertex, but isolated.
	require.Empty(g.Neighbors(4))
}

func TestBuildGraph_SkipsUnknownNodeIDs(t *testing.T) {
	require := require.New(t)
	nodes := testNodes()
	footways := []campus.Footway{
		{ID: 100, Nodes: []int64{1, 999, 2}}, // 999 not in the table
	}

	g := campus.BuildGraph(nodes, footways)

	require.Equal(0, g.EdgeCount(), "segments touching unknown ids are skipped")
	require.False(g.HasVertex(999))
}

func TestNearestNode(t *testing.T) {
	require := require.New(t)
	nodes := testNodes()
	footways := []campus.Footway{{ID: 100, Nodes: []int64{1, 2, 3}}}

	// A point just north of node 3.
	id, ok := campus.NearestNode(nodes, footways, geo.Coord{Lat: 41.8721, Lon: -87.6500})
	require.True(ok)
	require.Equal(int64(3), id)

	// Node 4 is closest geographically but on no footway, so it never wins.
	id, ok = campus.NearestNode(nodes, footways, nodes[4])
	require.True(ok)
	require.NotEqual(int64(4), id)
}

func TestNearestNode_NoFootways(t *testing.T) {
	_, ok := campus.NearestNode(testNodes(), nil, geo.Coord{})
	require.False(t, ok)
}

func TestSearchBuildings_AbbrevBeforeFullName(t *testing.T) {
	require := require.New(t)
	buildings := []campus.Building{
		{Name: "Science and Engineering Offices", Abbrev: "SEO"},
		{Name: "Student Center East", Abbrev: "SCE"},
		{Name: "SEO Annex"}, // full name contains the query too
	}

	// Abbreviation pass wins even though a later full name also matches.
	b, ok := campus.SearchBuildings(buildings, "SEO")
	require.True(ok)
	require.Equal("Science and Engineering Offices", b.Name)

	// Full-name pass when no abbreviation matches.
	b, ok = campus.SearchBuildings(buildings, "Center East")
	require.True(ok)
	require.Equal("Student Center East", b.Name)

	_, ok = campus.SearchBuildings(buildings, "Stadium")
	require.False(ok)
}

func TestSearchBuildings_FirstMatchWins(t *testing.T) {
	buildings := []campus.Building{
		{Name: "North Hall"},
		{Name: "North Annex"},
	}

	b, ok := campus.SearchBuildings(buildings, "North")
	require.True(t, ok)
	require.Equal(t, "North Hall", b.Name)
}
