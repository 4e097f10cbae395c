package tracker

import (
	"testing"
	"time"

	"bunny-tracker/internal/cities"
	"bunny-tracker/internal/easter"
)

func city(id, name string, lat, lon float64, offset int) cities.City {
	return cities.City{ID: id, Name: name, Latitude: lat, Longitude: lon, UTCOffsetMinutes: offset}
}

func TestIdealArrival(t *testing.T) {
	easter2025 := easter.Sunday(2025) // April 20
	cases := []struct {
		name   string
		offset int
		want   time.Time
	}{
		{"Tokyo UTC+9", -540, time.Date(2025, time.April, 19, 15, 0, 0, 0, time.UTC)},
		{"London UTC+0", 0, time.Date(2025, time.April, 20, 0, 0, 0, 0, time.UTC)},
		{"Los Angeles UTC-8", 480, time.Date(2025, time.April, 20, 8, 0, 0, 0, time.UTC)},
		{"Mumbai UTC+5:30", -330, time.Date(2025, time.April, 19, 18, 30, 0, 0, time.UTC)},
		{"Kiritimati UTC+14", -840, time.Date(2025, time.April, 19, 10, 0, 0, 0, time.UTC)},
		{"Baker Island UTC-12", 720, time.Date(2025, time.April, 20, 12, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		got := IdealArrival(city("x", c.name, 0, 0, c.offset), easter2025)
		if !got.Equal(c.want) {
			t.Errorf("%s: arrival %s, want %s", c.name, got, c.want)
		}
	}
}

func TestIdealArrivalIsLocalMidnight(t *testing.T) {
	// Shifting the arrival instant into the city's zone must give 00:00 on
	// Easter Sunday.
	easterDate := easter.Sunday(2026)
	for _, c := range cities.Directory() {
		arrival := IdealArrival(c, easterDate)
		local := arrival.Add(-time.Duration(c.UTCOffsetMinutes) * time.Minute)
		if local.Hour() != 0 || local.Minute() != 0 {
			t.Errorf("%s: local arrival %02d:%02d, want midnight", c.Name, local.Hour(), local.Minute())
		}
		if !local.Truncate(24 * time.Hour).Equal(easterDate) {
			t.Errorf("%s: local arrival on %s, want Easter Sunday", c.Name, local.Format("2006-01-02"))
		}
	}
}

func TestBuildSchedule(t *testing.T) {
	dir := cities.Directory()
	easterDate := easter.Sunday(2025)
	schedule := BuildSchedule(dir, easterDate)

	if len(schedule) != len(dir) {
		t.Fatalf("schedule has %d entries, want %d", len(schedule), len(dir))
	}
	for i := 1; i < len(schedule); i++ {
		if schedule[i].Arrival.Before(schedule[i-1].Arrival) {
			t.Errorf("arrivals decrease at %s", schedule[i].City.Name)
		}
	}
	// Easternmost city is reached first, westernmost last.
	if schedule[0].City.Name != "Auckland" {
		t.Errorf("first stop = %s, want Auckland", schedule[0].City.Name)
	}
	if schedule[len(schedule)-1].City.Name != "Los Angeles" {
		t.Errorf("last stop = %s, want Los Angeles", schedule[len(schedule)-1].City.Name)
	}
}

func TestBuildScheduleWithinWindow(t *testing.T) {
	for _, year := range []int{2024, 2025, 2026, 2027} {
		easterDate := easter.Sunday(year)
		w := easter.GlobalWindow(easterDate)
		for _, e := range BuildSchedule(cities.Directory(), easterDate) {
			if !w.Contains(e.Arrival) {
				t.Errorf("%d: %s arrival %s outside window", year, e.City.Name, e.Arrival)
			}
		}
	}
}

func TestBuildScheduleStableTies(t *testing.T) {
	list := []cities.City{
		city("first", "First", 0, 0, -120),
		city("second", "Second", 10, 10, -120),
		city("third", "Third", 20, 20, -120),
	}
	schedule := BuildSchedule(list, easter.Sunday(2025))
	for i, want := range []string{"first", "second", "third"} {
		if schedule[i].City.ID != want {
			t.Errorf("entry %d = %s, want %s", i, schedule[i].City.ID, want)
		}
	}
}

func TestBuildScheduleSingleCity(t *testing.T) {
	schedule := BuildSchedule([]cities.City{city("only", "Only", 1, 2, -60)}, easter.Sunday(2025))
	if len(schedule) != 1 {
		t.Fatalf("got %d entries, want 1", len(schedule))
	}
}

func TestArrivalTimeString(t *testing.T) {
	london := city("3", "London", 51.5074, -0.1278, 0)
	now := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC)
	// Easter 2025 is April 20; London's local midnight is midnight UTC.
	if got, want := ArrivalTimeString(london, now), "Sun 00:00 UTC"; got != want {
		t.Errorf("ArrivalTimeString = %q, want %q", got, want)
	}

	tokyo := city("1", "Tokyo", 35.6762, 139.6503, -540)
	if got, want := ArrivalTimeString(tokyo, now), "Sat 15:00 UTC"; got != want {
		t.Errorf("ArrivalTimeString = %q, want %q", got, want)
	}
}
