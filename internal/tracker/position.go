package tracker

import (
	"time"

	"bunny-tracker/internal/cities"
	"bunny-tracker/internal/easter"
	"bunny-tracker/internal/geo"
)

// Position is one snapshot of the journey. Recomputed every tick and never
// persisted; a nil Position means it is not Easter anywhere right now.
type Position struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`

	CurrentCity cities.City `json:"currentCity"`
	NextCity    cities.City `json:"nextCity"`
	NearestCity cities.City `json:"nearestCity"`

	TotalCities   int `json:"totalCities"`
	VisitedCities int `json:"visitedCities"`

	CompletionPercentage float64 `json:"completionPercentage"`
	TransitionProgress   float64 `json:"transitionProgress"`

	BasketsDelivered int64 `json:"basketsDelivered"`
}

// InTransit reports whether the bunny is between two distinct cities.
func (p *Position) InTransit() bool {
	return p.CurrentCity.ID != p.NextCity.ID
}

// computePosition interpolates the journey state at now. The schedule must
// be non-empty and sorted by arrival; the window is the one the schedule
// was built for.
func computePosition(now time.Time, w easter.Window, schedule []ScheduleEntry, directory []cities.City) *Position {
	elapsed := now.Sub(w.Start)
	completion := clamp01(float64(elapsed) / float64(w.Duration()))

	var (
		idx, nextIdx int
		transition   float64
	)
	last := len(schedule) - 1
	switch {
	case now.Before(schedule[0].Arrival):
		// En route from the window start to the first city.
		idx, nextIdx = 0, 0
		toFirst := schedule[0].Arrival.Sub(w.Start)
		if toFirst <= 0 {
			transition = 1
		} else {
			transition = clamp01(float64(elapsed) / float64(toFirst))
		}
	case !now.Before(schedule[last].Arrival):
		idx, nextIdx = last, last
		transition = 1
	default:
		for i := 0; i < last; i++ {
			if !now.Before(schedule[i].Arrival) && now.Before(schedule[i+1].Arrival) {
				idx, nextIdx = i, i+1
				segment := schedule[i+1].Arrival.Sub(schedule[i].Arrival)
				if segment <= 0 {
					transition = 1
				} else {
					transition = clamp01(float64(now.Sub(schedule[i].Arrival)) / float64(segment))
				}
				break
			}
		}
	}

	current := schedule[idx].City
	next := schedule[nextIdx].City

	// Planar lerp of each coordinate. Deliberately not great-circle; a
	// segment crossing the antimeridian interpolates the long way around.
	lat, lon := current.Latitude, current.Longitude
	if idx != nextIdx {
		lat = current.Latitude + (next.Latitude-current.Latitude)*transition
		lon = current.Longitude + (next.Longitude-current.Longitude)*transition
	}

	return &Position{
		Latitude:             lat,
		Longitude:            lon,
		Timestamp:            now,
		CurrentCity:          current,
		NextCity:             next,
		NearestCity:          geo.NearestCity(lat, lon, directory),
		TotalCities:          len(directory),
		VisitedCities:        idx,
		CompletionPercentage: completion * 100,
		TransitionProgress:   transition,
		BasketsDelivered:     BasketsDelivered(completion * 100),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
