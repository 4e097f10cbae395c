package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"bunny-tracker/internal/api"
	"bunny-tracker/internal/cities"
	"bunny-tracker/internal/config"
	"bunny-tracker/internal/db"
	"bunny-tracker/internal/metrics"
	"bunny-tracker/internal/publisher"
	"bunny-tracker/internal/tracker"
)

func main() {
	// Load configuration from .env and environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	// Root context with cancellation on SIGINT/SIGTERM
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	directory := loadDirectory(ctx, cfg)
	log.Printf("city directory loaded: %d cities, %s first", len(directory), directory[0].Name)

	// Metrics setup
	var mcol *metrics.Collector
	if cfg.MetricsAddr != "" {
		mcol = metrics.NewCollector(cfg.PublishInterval)
		srv := mcol.Serve(cfg.MetricsAddr)
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	// NATS publisher, when configured
	var pub tracker.PositionPublisher
	if cfg.NATSURL != "" {
		np, err := publisher.NewNATSPublisher(cfg.NATSURL, cfg.SubjectPrefix, cfg.LogNATSSubjects, pubMetrics(mcol))
		if err != nil {
			log.Fatalf("nats error: %v", err)
		}
		defer np.Close()
		pub = np
	}

	clock := newClock(cfg)
	engine := tracker.New(directory)
	runner := tracker.NewRunner(engine, clock, pub, mcol, cfg.PublishInterval)
	go runner.Run(ctx)

	// HTTP surface for the browser UI
	handler := api.NewHandler(runner, directory, clock.Now)
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: api.Router(handler)}
	go func() {
		log.Printf("http listening on %s", cfg.HTTPAddr)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = httpSrv.Shutdown(shutdownCtx)
}

// loadDirectory prefers the Postgres directory when configured and falls
// back to the embedded one on any failure; a missing directory must never
// keep the tracker down.
func loadDirectory(ctx context.Context, cfg *config.Config) []cities.City {
	if cfg.DatabaseURL == "" {
		return cities.Directory()
	}
	sqlDB, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Printf("db open error: %v, using embedded city directory", err)
		return cities.Directory()
	}
	defer sqlDB.Close()
	if err := db.Ping(ctx, sqlDB); err != nil {
		log.Printf("db ping error: %v, using embedded city directory", err)
		return cities.Directory()
	}
	list, err := db.FetchCities(ctx, sqlDB)
	if err != nil {
		log.Printf("db fetch error: %v, using embedded city directory", err)
		return cities.Directory()
	}
	return list
}

func newClock(cfg *config.Config) *tracker.Clock {
	switch {
	case cfg.MockTime != nil:
		return tracker.NewMockClock(*cfg.MockTime)
	case cfg.MockDate != nil:
		return tracker.NewMockDateClock(*cfg.MockDate)
	default:
		return tracker.NewClock()
	}
}

// pubMetrics keeps the publisher decoupled from a nil collector.
func pubMetrics(c *metrics.Collector) publisher.Metrics {
	if c == nil {
		return nil
	}
	return c
}
