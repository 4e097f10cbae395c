// Package geo provides great-circle distance and nearest-neighbor lookup
// over the city directory.
package geo

import (
	"math"

	"bunny-tracker/internal/cities"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// DistanceKm returns the great-circle distance in kilometers between two
// points given in decimal degrees.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := rad(lat2 - lat1)
	dLon := rad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rad(lat1))*math.Cos(rad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}

func rad(deg float64) float64 {
	return deg * math.Pi / 180
}

// NearestCity returns the directory city closest to the given point.
// Ties keep the earliest candidate, so the result is deterministic for a
// fixed directory order. The list must be non-empty; that is the caller's
// contract and an empty list panics.
func NearestCity(lat, lon float64, list []cities.City) cities.City {
	nearest := list[0]
	minDist := DistanceKm(lat, lon, list[0].Latitude, list[0].Longitude)
	for _, c := range list[1:] {
		d := DistanceKm(lat, lon, c.Latitude, c.Longitude)
		if d < minDist {
			minDist = d
			nearest = c
		}
	}
	return nearest
}
