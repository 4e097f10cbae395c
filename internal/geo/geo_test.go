package geo

import (
	"math"
	"testing"

	"bunny-tracker/internal/cities"
)

func TestDistanceKmZeroForSamePoint(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{40.7128, -74.006},
		{-33.8688, 151.2093},
		{89.9, 179.9},
	}
	for _, p := range points {
		if d := DistanceKm(p[0], p[1], p[0], p[1]); d != 0 {
			t.Errorf("DistanceKm(%v, %v, same) = %f, want 0", p[0], p[1], d)
		}
	}
}

func TestDistanceKmSymmetry(t *testing.T) {
	ab := DistanceKm(40.7128, -74.006, 51.5074, -0.1278)
	ba := DistanceKm(51.5074, -0.1278, 40.7128, -74.006)
	if math.Abs(ab-ba) > 1e-6 {
		t.Errorf("asymmetric: %f vs %f", ab, ba)
	}
}

func TestDistanceKmKnownPairs(t *testing.T) {
	cases := []struct {
		name               string
		lat1, lon1         float64
		lat2, lon2         float64
		minKm, maxKm       float64
	}{
		{"New York - Los Angeles", 40.7128, -74.006, 34.0522, -118.2437, 3900, 4000},
		{"New York - London", 40.7128, -74.006, 51.5074, -0.1278, 5500, 5600},
	}
	for _, c := range cases {
		d := DistanceKm(c.lat1, c.lon1, c.lat2, c.lon2)
		if d < c.minKm || d > c.maxKm {
			t.Errorf("%s: %f km, want within [%f, %f]", c.name, d, c.minKm, c.maxKm)
		}
	}
}

func TestNearestCitySingleElement(t *testing.T) {
	only := []cities.City{{ID: "x", Name: "Somewhere", Latitude: 10, Longitude: 10}}
	queries := [][2]float64{{0, 0}, {89, 0}, {-45, 170}}
	for _, q := range queries {
		if got := NearestCity(q[0], q[1], only); got.ID != "x" {
			t.Errorf("query %v: got %s, want the only city", q, got.ID)
		}
	}
}

func TestNearestCityExactMatch(t *testing.T) {
	dir := cities.Directory()
	for _, want := range []string{"Tokyo", "Auckland", "Los Angeles"} {
		c, ok := findByName(dir, want)
		if !ok {
			t.Fatalf("directory missing %s", want)
		}
		if got := NearestCity(c.Latitude, c.Longitude, dir); got.Name != want {
			t.Errorf("query at %s coordinates returned %s", want, got.Name)
		}
	}
}

func TestNearestCityTieKeepsFirst(t *testing.T) {
	list := []cities.City{
		{ID: "a", Latitude: 0, Longitude: 10},
		{ID: "b", Latitude: 0, Longitude: -10},
	}
	// Equidistant from both; the first candidate wins.
	if got := NearestCity(0, 0, list); got.ID != "a" {
		t.Errorf("tie returned %s, want a", got.ID)
	}
}

func TestNearestCityRealQuery(t *testing.T) {
	dir := cities.Directory()
	// Philadelphia is closer to New York than to anywhere else in the
	// directory.
	if got := NearestCity(39.9526, -75.1652, dir); got.Name != "New York City" {
		t.Errorf("Philadelphia resolved to %s", got.Name)
	}
}

func findByName(list []cities.City, name string) (cities.City, bool) {
	for _, c := range list {
		if c.Name == name {
			return c, true
		}
	}
	return cities.City{}, false
}
