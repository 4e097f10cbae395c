package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL     string // empty: use the embedded city directory
	NATSURL         string // empty: NATS publishing disabled
	SubjectPrefix   string
	PublishInterval time.Duration
	HTTPAddr        string
	MetricsAddr     string // empty disables the metrics server
	LogNATSSubjects bool

	// Deterministic clock overrides for testing. MockTime pins the full
	// instant and wins over MockDate, which replaces only the calendar
	// date.
	MockTime *time.Time
	MockDate *time.Time
}

func Load() (*Config, error) {
	// Load .env into environment (ignore if missing)
	_ = godotenv.Load()

	cfg := &Config{}

	// Optional Postgres city directory: prefer DATABASE_URL / PG_DSN, else
	// build from PG* vars when PGDATABASE is set.
	dsn := firstNonEmpty(
		os.Getenv("DATABASE_URL"),
		os.Getenv("PG_DSN"),
	)
	if dsn == "" && os.Getenv("PGDATABASE") != "" {
		host := getenvDefault("PGHOST", "127.0.0.1")
		port := getenvDefault("PGPORT", "5432")
		user := getenvDefault("PGUSER", "postgres")
		pass := os.Getenv("PGPASSWORD")
		dbname := os.Getenv("PGDATABASE")
		sslmode := getenvDefault("PGSSLMODE", "disable")
		if pass != "" {
			dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", urlEscape(user), urlEscape(pass), host, port, dbname, sslmode)
		} else {
			dsn = fmt.Sprintf("postgres://%s@%s:%s/%s?sslmode=%s", urlEscape(user), host, port, dbname, sslmode)
		}
	}
	cfg.DatabaseURL = dsn

	cfg.NATSURL = os.Getenv("NATS_URL")
	cfg.SubjectPrefix = getenvDefault("NATS_SUBJECT_PREFIX", "bunny")

	// Tick/publish interval
	if v := os.Getenv("PUBLISH_INTERVAL_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil || ms <= 0 {
			return nil, fmt.Errorf("invalid PUBLISH_INTERVAL_MS: %q", v)
		}
		cfg.PublishInterval = time.Duration(ms) * time.Millisecond
	} else {
		cfg.PublishInterval = time.Second
	}

	cfg.HTTPAddr = getenvDefault("HTTP_ADDR", ":8080")

	// Metrics listen address (e.g., ":9102"). Empty disables the metrics server.
	cfg.MetricsAddr = os.Getenv("METRICS_ADDR")

	if v := os.Getenv("LOG_NATS_SUBJECTS"); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			cfg.LogNATSSubjects = true
		default:
			cfg.LogNATSSubjects = false
		}
	}

	// Clock overrides. Invalid values are warned about and dropped; the
	// real clock is never a fatal concern.
	if v := os.Getenv("MOCK_TIME"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			log.Printf("invalid MOCK_TIME %q, using real time: %v", v, err)
		} else {
			t = t.UTC()
			cfg.MockTime = &t
		}
	}
	if v := os.Getenv("MOCK_DATE"); v != "" && cfg.MockTime == nil {
		d, err := time.Parse("2006-01-02", v)
		if err != nil {
			log.Printf("invalid MOCK_DATE %q, using real date: %v", v, err)
		} else {
			d = d.UTC()
			cfg.MockDate = &d
		}
	}

	return cfg, nil
}

func getenvDefault(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func urlEscape(s string) string {
	// Minimal escape for DSN user/pass with special chars
	r := strings.NewReplacer("@", "%40", ":", "%3A", "/", "%2F", "?", "%3F", "#", "%23")
	return r.Replace(s)
}
