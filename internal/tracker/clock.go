package tracker

import (
	"log"
	"sync"
	"time"
)

// Clock supplies "now" to the tick loop. A mock instant or mock date can be
// injected through configuration for deterministic runs; the override is
// logged once per process, with the once-state held here rather than in a
// package-level flag.
type Clock struct {
	mockInstant time.Time
	hasInstant  bool
	mockDate    time.Time
	hasDate     bool

	logInstantOnce sync.Once
	logDateOnce    sync.Once
}

// NewClock returns a real wall-clock.
func NewClock() *Clock { return &Clock{} }

// NewMockClock returns a clock pinned to the given instant.
func NewMockClock(instant time.Time) *Clock {
	return &Clock{mockInstant: instant.UTC(), hasInstant: true}
}

// NewMockDateClock returns a clock that reports the given calendar date
// combined with the real time of day.
func NewMockDateClock(date time.Time) *Clock {
	return &Clock{mockDate: date.UTC(), hasDate: true}
}

// Now returns the current instant in UTC, honoring any mock override.
func (c *Clock) Now() time.Time {
	if c.hasInstant {
		c.logInstantOnce.Do(func() {
			log.Printf("using mock time %s", c.mockInstant.Format(time.RFC3339))
		})
		return c.mockInstant
	}
	now := time.Now().UTC()
	if c.hasDate {
		c.logDateOnce.Do(func() {
			log.Printf("using mock date %s with real time of day", c.mockDate.Format("2006-01-02"))
		})
		y, m, d := c.mockDate.Date()
		return time.Date(y, m, d, now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), time.UTC)
	}
	return now
}
