// Package server exposes the meeting-point resolver over HTTP.
//
// Endpoints:
//
//	POST /api/meet      {person1, person2} → destination + both routes
//	GET  /api/buildings → the building list
//	GET  /health        → liveness
//
// Failure reasons surface as structured JSON with the appropriate status:
// 404 for an unrecognized building query, 422 when no meeting point exists
// (starts mutually unreachable, or every candidate excluded).
package server

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/campusnav/meetpoint/campus"
	"github.com/campusnav/meetpoint/graph"
	"github.com/campusnav/meetpoint/meeting"
)

// Server holds the shared, read-only routing state: the footpath graph and
// the building list. Each request runs an independent resolution session.
type Server struct {
	graph     *graph.Graph[int64, float64]
	buildings []campus.Building
}

// New returns a Server routing over the given graph and buildings.
func New(g *graph.Graph[int64, float64], buildings []campus.Building) *Server {
	return &Server{graph: g, buildings: buildings}
}

// Router builds the gin engine with CORS enabled for all origins.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cfg.AllowHeaders = []string{"*"}
	r.Use(cors.New(cfg))

	r.POST("/api/meet", s.handleMeet)
	r.GET("/api/buildings", s.handleBuildings)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	return r
}

// MeetRequest names the two starting buildings by partial name or
// abbreviation, same as the console prompt.
type MeetRequest struct {
	Person1 string `json:"person1" binding:"required"`
	Person2 string `json:"person2" binding:"required"`
}

// RouteResponse is one resolved walking route: miles and the node sequence
// from the destination back to the start.
type RouteResponse struct {
	DistanceMiles float64 `json:"distanceMiles"`
	Path          []int64 `json:"path"`
}

// MeetResponse is a successful resolution.
type MeetResponse struct {
	Destination BuildingResponse `json:"destination"`
	From1       RouteResponse    `json:"from1"`
	From2       RouteResponse    `json:"from2"`
}

// BuildingResponse is the wire form of a building record.
type BuildingResponse struct {
	Name   string  `json:"name"`
	Abbrev string  `json:"abbrev,omitempty"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Node   int64   `json:"node"`
}

func buildingResponse(b campus.Building) BuildingResponse {
	return BuildingResponse{
		Name:   b.Name,
		Abbrev: b.Abbrev,
		Lat:    b.Loc.Lat,
		Lon:    b.Loc.Lon,
		Node:   b.Node,
	}
}

func (s *Server) handleMeet(c *gin.Context) {
	var req MeetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start1, ok := campus.SearchBuildings(s.buildings, req.Person1)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "person 1's building not found"})
		return
	}
	start2, ok := campus.SearchBuildings(s.buildings, req.Person2)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "person 2's building not found"})
		return
	}

	plan, err := meeting.Resolve(s.graph, s.buildings, start1, start2)
	switch {
	case errors.Is(err, meeting.ErrStartsUnreachable), errors.Is(err, meeting.ErrNoDestination):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	case err != nil:
		log.Printf("meet %q/%q: %v", req.Person1, req.Person2, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "routing failed"})
		return
	}

	c.JSON(http.StatusOK, MeetResponse{
		Destination: buildingResponse(plan.Destination),
		From1:       RouteResponse{DistanceMiles: plan.From1.Distance, Path: plan.From1.Path},
		From2:       RouteResponse{DistanceMiles: plan.From2.Distance, Path: plan.From2.Path},
	})
}

func (s *Server) handleBuildings(c *gin.Context) {
	out := make([]BuildingResponse, 0, len(s.buildings))
	for _, b := range s.buildings {
		out = append(out, buildingResponse(b))
	}

	c.JSON(http.StatusOK, gin.H{"buildings": out})
}
