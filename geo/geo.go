// Package geo provides the geodesic primitives the routing core relies on:
// great-circle distance in statute miles and the spherical midpoint between
// two coordinates.
package geo

import "math"

// earthRadiusMiles is the mean earth radius in statute miles.
const earthRadiusMiles = 3961.0

// Coord is a geographic coordinate in decimal degrees.
type Coord struct {
	Lat float64
	Lon float64
}

// Distance returns the great-circle distance between a and b in statute
// miles, using the haversine formula.
func Distance(a, b Coord) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMiles * c
}

// Midpoint returns the geographic midpoint of the great-circle segment from
// a to b.
func Midpoint(a, b Coord) Coord {
	lat1 := radians(a.Lat)
	lon1 := radians(a.Lon)
	lat2 := radians(b.Lat)
	dLon := radians(b.Lon - a.Lon)

	bx := math.Cos(lat2) * math.Cos(dLon)
	by := math.Cos(lat2) * math.Sin(dLon)

	midLat := math.Atan2(
		math.Sin(lat1)+math.Sin(lat2),
		math.Sqrt((math.Cos(lat1)+bx)*(math.Cos(lat1)+bx)+by*by),
	)
	midLon := lon1 + math.Atan2(by, math.Cos(lat1)+bx)

	return Coord{Lat: degrees(midLat), Lon: degrees(midLon)}
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
