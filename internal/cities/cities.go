// Package cities holds the city directory the journey visits.
package cities

import (
	"fmt"
	"log"
	"regexp"
	"sort"
	"strconv"
	"sync"
)

// City is one stop on the journey. Loaded once at startup and immutable
// afterwards.
type City struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Country    string  `json:"country"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Population int     `json:"population"`

	// UTCOffsetMinutes uses the inverted sign convention (as JavaScript's
	// getTimezoneOffset): negative means east of UTC, positive west.
	// Range -840 (UTC+14) to +720 (UTC-12). Schedule ordering depends on
	// this sign, so it must never be flipped.
	UTCOffsetMinutes int `json:"utcOffsetMinutes"`
}

// OffsetLabel renders the city's zone as UTC+HH[:MM] in the common
// (non-inverted) convention used for display.
func (c City) OffsetLabel() string {
	return FormatOffset(c.UTCOffsetMinutes)
}

// FormatOffset renders an inverted-convention offset-in-minutes as a
// UTC+HH[:MM] label.
func FormatOffset(offsetMinutes int) string {
	sign := "+"
	if offsetMinutes > 0 {
		sign = "-"
	}
	abs := offsetMinutes
	if abs < 0 {
		abs = -abs
	}
	h, m := abs/60, abs%60
	if m > 0 {
		return fmt.Sprintf("UTC%s%02d:%02d", sign, h, m)
	}
	return fmt.Sprintf("UTC%s%02d", sign, h)
}

var offsetRe = regexp.MustCompile(`^([+-])(\d{2}):?(\d{2})?$`)

// Offset bounds in the inverted convention.
const (
	MinOffsetMinutes = -14 * 60 // UTC+14
	MaxOffsetMinutes = 12 * 60  // UTC-12
)

// ParseOffset converts a zone string like "+09:00" or "-0530" (common
// convention, east positive) into inverted-convention minutes
// (east negative). Values outside the standard UTC+14..UTC-12 range are
// rejected.
func ParseOffset(s string) (int, error) {
	m := offsetRe.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("unparseable UTC offset %q", s)
	}
	h, _ := strconv.Atoi(m[2])
	mins := 0
	if m[3] != "" {
		mins, _ = strconv.Atoi(m[3])
	}
	common := h*60 + mins
	if m[1] == "-" {
		common = -common
	}
	inverted := -common
	if inverted < MinOffsetMinutes || inverted > MaxOffsetMinutes {
		return 0, fmt.Errorf("UTC offset %q out of range", s)
	}
	return inverted, nil
}

// ResolveOffset parses a zone string, falling back to UTC with a warning
// when the value cannot be parsed. A bad offset is a data problem, never a
// fatal one.
func ResolveOffset(cityID, s string) int {
	off, err := ParseOffset(s)
	if err != nil {
		log.Printf("city %s: %v, assuming UTC", cityID, err)
		return 0
	}
	return off
}

// rawCity is a directory row before its offset string is resolved.
type rawCity struct {
	id, name, country string
	lat, lon          float64
	population        int
	utcOffset         string
}

// The built-in directory. Standard (non-DST) offsets.
var rawDirectory = []rawCity{
	{"1", "Tokyo", "Japan", 35.6762, 139.6503, 37435191, "+09:00"},
	{"2", "New York City", "United States", 40.7128, -74.006, 18804000, "-05:00"},
	{"3", "London", "United Kingdom", 51.5074, -0.1278, 9046000, "+00:00"},
	{"4", "Paris", "France", 48.8566, 2.3522, 11017000, "+01:00"},
	{"5", "Sydney", "Australia", -33.8688, 151.2093, 5312000, "+10:00"},
	{"6", "Cairo", "Egypt", 30.0444, 31.2357, 20901000, "+02:00"},
	{"7", "Rio de Janeiro", "Brazil", -22.9068, -43.1729, 13458075, "-03:00"},
	{"8", "Moscow", "Russia", 55.7558, 37.6173, 12537954, "+03:00"},
	{"9", "Beijing", "China", 39.9042, 116.4074, 21540000, "+08:00"},
	{"10", "Mexico City", "Mexico", 19.4326, -99.1332, 21581000, "-06:00"},
	{"11", "Mumbai", "India", 19.076, 72.8777, 20411274, "+05:30"},
	{"12", "Cape Town", "South Africa", -33.9249, 18.4241, 4618731, "+02:00"},
	{"13", "Buenos Aires", "Argentina", -34.6037, -58.3816, 15057273, "-03:00"},
	{"14", "Berlin", "Germany", 52.52, 13.405, 3664088, "+01:00"},
	{"15", "Toronto", "Canada", 43.6532, -79.3832, 6255000, "-05:00"},
	{"16", "Bangkok", "Thailand", 13.7563, 100.5018, 10539000, "+07:00"},
	{"17", "Auckland", "New Zealand", -36.8509, 174.7645, 1657000, "+12:00"},
	{"18", "Istanbul", "Turkey", 41.0082, 28.9784, 15462000, "+03:00"},
	{"19", "Dubai", "United Arab Emirates", 25.2048, 55.2708, 3331000, "+04:00"},
	{"20", "Los Angeles", "United States", 34.0522, -118.2437, 12750807, "-08:00"},
}

var (
	buildOnce sync.Once
	builtDir  []City
)

// Directory returns the built-in city list, ordered east to west
// (ascending inverted offset, easternmost first). Cities sharing an offset
// keep their source order. The returned slice is shared; callers must not
// mutate it.
func Directory() []City {
	buildOnce.Do(func() {
		builtDir = Sorted(fromRaw(rawDirectory))
	})
	return builtDir
}

func fromRaw(rows []rawCity) []City {
	out := make([]City, 0, len(rows))
	for _, r := range rows {
		out = append(out, City{
			ID:               r.id,
			Name:             r.name,
			Country:          r.country,
			Latitude:         r.lat,
			Longitude:        r.lon,
			Population:       r.population,
			UTCOffsetMinutes: ResolveOffset(r.id, r.utcOffset),
		})
	}
	return out
}

// Sorted returns a copy of list ordered by ascending inverted offset, i.e.
// easternmost zones first. The sort is stable so equal offsets keep their
// input order.
func Sorted(list []City) []City {
	out := make([]City, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UTCOffsetMinutes < out[j].UTCOffsetMinutes
	})
	return out
}

// ByID finds a city in list by its identifier.
func ByID(list []City, id string) (City, bool) {
	for _, c := range list {
		if c.ID == id {
			return c, true
		}
	}
	return City{}, false
}
