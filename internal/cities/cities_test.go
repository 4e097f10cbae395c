package cities

import (
	"testing"
)

func TestParseOffset(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"+09:00", -540, false},
		{"-05:00", 300, false},
		{"+00:00", 0, false},
		{"+05:30", -330, false},
		{"-0800", 480, false},
		{"+14:00", -840, false},
		{"-12:00", 720, false},
		{"+15:00", 0, true}, // beyond UTC+14
		{"-13:00", 0, true}, // beyond UTC-12
		{"Asia/Tokyo", 0, true},
		{"", 0, true},
		{"9:00", 0, true},
	}
	for _, c := range cases {
		got, err := ParseOffset(c.in)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseOffset(%q): expected error, got %d", c.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseOffset(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseOffset(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestResolveOffsetFallsBackToUTC(t *testing.T) {
	if got := ResolveOffset("x", "Pacific/Auckland"); got != 0 {
		t.Errorf("fallback offset = %d, want 0", got)
	}
	if got := ResolveOffset("x", "+12:00"); got != -720 {
		t.Errorf("valid offset = %d, want -720", got)
	}
}

func TestFormatOffset(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{-540, "UTC+09"},
		{480, "UTC-08"},
		{0, "UTC+00"},
		{-330, "UTC+05:30"},
		{-840, "UTC+14"},
		{720, "UTC-12"},
	}
	for _, c := range cases {
		if got := FormatOffset(c.in); got != c.want {
			t.Errorf("FormatOffset(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDirectory(t *testing.T) {
	dir := Directory()
	if len(dir) != 20 {
		t.Fatalf("directory has %d cities, want 20", len(dir))
	}
	for i := 1; i < len(dir); i++ {
		if dir[i].UTCOffsetMinutes < dir[i-1].UTCOffsetMinutes {
			t.Errorf("directory not offset-ascending at %s", dir[i].Name)
		}
	}
	for _, c := range dir {
		if c.UTCOffsetMinutes < MinOffsetMinutes || c.UTCOffsetMinutes > MaxOffsetMinutes {
			t.Errorf("%s: offset %d out of range", c.Name, c.UTCOffsetMinutes)
		}
		if c.Latitude < -90 || c.Latitude > 90 || c.Longitude < -180 || c.Longitude > 180 {
			t.Errorf("%s: coordinates out of range", c.Name)
		}
	}
	// Easternmost city first, westernmost last.
	if dir[0].Name != "Auckland" {
		t.Errorf("first city = %s, want Auckland", dir[0].Name)
	}
	if dir[len(dir)-1].Name != "Los Angeles" {
		t.Errorf("last city = %s, want Los Angeles", dir[len(dir)-1].Name)
	}
}

func TestSortedStableTies(t *testing.T) {
	list := []City{
		{ID: "b", UTCOffsetMinutes: -60},
		{ID: "a", UTCOffsetMinutes: -120},
		{ID: "c", UTCOffsetMinutes: -60},
	}
	got := Sorted(list)
	if got[0].ID != "a" || got[1].ID != "b" || got[2].ID != "c" {
		t.Errorf("sort order: %s %s %s, want a b c", got[0].ID, got[1].ID, got[2].ID)
	}
	// Input untouched.
	if list[0].ID != "b" {
		t.Error("Sorted mutated its input")
	}
}

func TestByID(t *testing.T) {
	dir := Directory()
	c, ok := ByID(dir, "11")
	if !ok || c.Name != "Mumbai" {
		t.Errorf("ByID(11) = %v, %v", c.Name, ok)
	}
	if _, ok := ByID(dir, "999"); ok {
		t.Error("ByID(999) found a city")
	}
}
