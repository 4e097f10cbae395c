// Package easter computes the date of Easter Sunday and the worldwide
// observance window surrounding it.
package easter

import (
	"time"
)

// Standard timezone extremes. The day begins first in UTC+14 (Kiritimati)
// and ends last in UTC-12 (Baker Island).
const (
	easternmostOffsetHours = 14
	westernmostOffsetHours = 12
)

// Sunday calculates the date of Easter Sunday for a given Gregorian year
// using the anonymous computus algorithm (Meeus/Jones/Butcher).
// The result is midnight UTC of Easter Sunday.
func Sunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

// Window is the interval during which the given Easter Sunday is in
// progress somewhere on the globe: from local midnight in the easternmost
// timezone to local end-of-day in the westernmost one. Always 50 hours.
type Window struct {
	Start time.Time
	End   time.Time
}

// GlobalWindow computes the worldwide observance window for an Easter date.
// Both bounds derive purely from the UTC calendar date of easterDate; the
// host timezone never participates.
func GlobalWindow(easterDate time.Time) Window {
	y, m, d := easterDate.UTC().Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	endOfDay := time.Date(y, m, d, 23, 59, 59, 999_000_000, time.UTC)
	return Window{
		Start: midnight.Add(-easternmostOffsetHours * time.Hour),
		End:   endOfDay.Add(westernmostOffsetHours * time.Hour),
	}
}

// Contains reports whether t falls within the window, bounds inclusive.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// Duration returns the total span of the window.
func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Resolve finds the Easter date whose global window contains now.
// Around New Year the window in progress can belong to the previous or the
// next calendar year, so all three candidates are tried: current year
// first, then previous, then next. ok is false when none matches, meaning
// it is not Easter anywhere right now.
func Resolve(now time.Time) (easterDate time.Time, w Window, ok bool) {
	year := now.UTC().Year()
	for _, y := range [3]int{year, year - 1, year + 1} {
		d := Sunday(y)
		win := GlobalWindow(d)
		if win.Contains(now) {
			return d, win, true
		}
	}
	return time.Time{}, Window{}, false
}

// Next returns the Easter date of the journey that is upcoming or currently
// in progress as of now.
func Next(now time.Time) time.Time {
	year := now.UTC().Year()
	thisYear := Sunday(year)
	win := GlobalWindow(thisYear)
	if now.Before(win.Start) || win.Contains(now) {
		return thisYear
	}
	return Sunday(year + 1)
}
