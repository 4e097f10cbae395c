package tracker

import (
	"context"
	"log"
	"sync"
	"time"

	"bunny-tracker/internal/metrics"
)

// PositionPublisher broadcasts a computed snapshot to downstream consumers.
type PositionPublisher interface {
	PublishPosition(*Position) error
}

// Runner drives the engine: one goroutine, one ticker, one computation per
// tick. Ticks never overlap and each one is derived solely from the clock,
// so a failed tick needs no recovery beyond waiting for the next.
type Runner struct {
	engine   *Engine
	clock    *Clock
	pub      PositionPublisher // may be nil
	col      *metrics.Collector
	interval time.Duration

	mu     sync.RWMutex
	latest *Position
}

func NewRunner(engine *Engine, clock *Clock, pub PositionPublisher, col *metrics.Collector, interval time.Duration) *Runner {
	return &Runner{engine: engine, clock: clock, pub: pub, col: col, interval: interval}
}

// Latest returns the most recently computed snapshot, or nil while the
// journey is idle or before the first tick.
func (r *Runner) Latest() *Position {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.latest
}

// Run ticks until ctx is cancelled. The first computation happens
// immediately so consumers never wait a full interval for state.
func (r *Runner) Run(ctx context.Context) {
	r.tick()
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.tick()
		}
	}
}

func (r *Runner) tick() {
	start := time.Now()
	pos := r.engine.Position(r.clock.Now())

	r.mu.Lock()
	wasActive := r.latest != nil
	r.latest = pos
	r.mu.Unlock()

	if r.col != nil {
		r.col.TicksTotal.Inc()
		r.col.TickDuration.Observe(time.Since(start).Seconds())
	}
	if pos == nil {
		if wasActive {
			log.Printf("journey finished, going idle")
		}
		if r.col != nil {
			r.col.TicksNoJourney.Inc()
			r.col.JourneyActive.Set(0)
		}
		return
	}
	if !wasActive {
		log.Printf("journey active: %d cities, first stop %s", pos.TotalCities, pos.NextCity.Name)
	}
	if r.col != nil {
		r.col.JourneyActive.Set(1)
		r.col.CompletionPct.Set(pos.CompletionPercentage)
		r.col.CitiesVisited.Set(float64(pos.VisitedCities))
		r.col.BasketsDelivered.Set(float64(pos.BasketsDelivered))
	}
	if r.pub != nil {
		if err := r.pub.PublishPosition(pos); err != nil {
			log.Printf("publish error: %v", err)
		}
	}
}
