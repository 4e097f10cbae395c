// Package tracker is the journey engine: it schedules city arrivals for a
// given Easter and interpolates the bunny's position between them.
package tracker

import (
	"sync"
	"time"

	"bunny-tracker/internal/cities"
	"bunny-tracker/internal/easter"
)

// Engine computes journey positions over a fixed city directory. The
// schedule for an Easter date is cached and rebuilt only when the resolved
// date changes (i.e. at a year boundary), which yields results identical
// to recomputing every tick.
type Engine struct {
	directory []cities.City

	mu             sync.Mutex
	cachedDate     time.Time
	cachedSchedule []ScheduleEntry
}

// New creates an engine over a non-empty, immutable city directory.
func New(directory []cities.City) *Engine {
	return &Engine{directory: directory}
}

// Directory returns the city list the engine schedules over.
func (e *Engine) Directory() []cities.City {
	return e.directory
}

// Position computes the journey snapshot at now, or nil when now falls
// outside the global Easter window of the current, previous and next year.
// Calls with the same instant produce identical snapshots.
func (e *Engine) Position(now time.Time) *Position {
	easterDate, window, ok := easter.Resolve(now)
	if !ok {
		return nil
	}
	return computePosition(now, window, e.scheduleFor(easterDate), e.directory)
}

// Schedule returns the ordered visit schedule for the Easter applicable to
// now (in progress, or else upcoming).
func (e *Engine) Schedule(now time.Time) []ScheduleEntry {
	easterDate, _, ok := easter.Resolve(now)
	if !ok {
		easterDate = easter.Next(now)
	}
	return e.scheduleFor(easterDate)
}

func (e *Engine) scheduleFor(easterDate time.Time) []ScheduleEntry {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !easterDate.Equal(e.cachedDate) {
		e.cachedSchedule = BuildSchedule(e.directory, easterDate)
		e.cachedDate = easterDate
	}
	return e.cachedSchedule
}
