package tracker

import (
	"sort"
	"time"

	"bunny-tracker/internal/cities"
	"bunny-tracker/internal/easter"
)

// ScheduleEntry pairs a city with its ideal arrival instant for one Easter.
type ScheduleEntry struct {
	City    cities.City `json:"city"`
	Arrival time.Time   `json:"arrival"`
}

// IdealArrival returns the UTC instant of local midnight at the start of
// Easter Sunday in the city's zone. The stored offset is in the inverted
// convention (east negative), so adding it shifts midnight UTC backwards
// for eastern cities: Tokyo (UTC+9) is reached nine hours before midnight
// UTC.
func IdealArrival(c cities.City, easterDate time.Time) time.Time {
	y, m, d := easterDate.UTC().Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return midnight.Add(time.Duration(c.UTCOffsetMinutes) * time.Minute)
}

// BuildSchedule computes one entry per city and orders them by arrival.
// The sort is stable: cities sharing a zone keep their directory order.
func BuildSchedule(list []cities.City, easterDate time.Time) []ScheduleEntry {
	entries := make([]ScheduleEntry, 0, len(list))
	for _, c := range list {
		entries = append(entries, ScheduleEntry{City: c, Arrival: IdealArrival(c, easterDate)})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Arrival.Before(entries[j].Arrival)
	})
	return entries
}

// ArrivalTimeString formats the city's ideal arrival for display, using the
// Easter journey applicable to now: the one in progress, or else the next
// upcoming one.
func ArrivalTimeString(c cities.City, now time.Time) string {
	easterDate, _, ok := easter.Resolve(now)
	if !ok {
		easterDate = easter.Next(now)
	}
	return IdealArrival(c, easterDate).Format("Mon 15:04 MST")
}
