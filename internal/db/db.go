// Package db provides the optional Postgres-backed city directory.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"bunny-tracker/internal/cities"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)
	return db, nil
}

func Ping(ctx context.Context, db *sql.DB) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return db.PingContext(ctx)
}

// FetchCities loads the city directory. Offsets are stored as zone strings
// in the common convention ("+09:00"); rows with unparseable offsets fall
// back to UTC rather than failing the load. The result is ordered east to
// west, ready for presentation and scheduling.
func FetchCities(ctx context.Context, db *sql.DB) ([]cities.City, error) {
	q := `SELECT id, name, country, latitude, longitude, COALESCE(population, 0), utc_offset
          FROM cities ORDER BY id`
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query cities: %w", err)
	}
	defer rows.Close()

	var list []cities.City
	for rows.Next() {
		var c cities.City
		var offset string
		if err := rows.Scan(&c.ID, &c.Name, &c.Country, &c.Latitude, &c.Longitude, &c.Population, &offset); err != nil {
			return nil, err
		}
		c.UTCOffsetMinutes = cities.ResolveOffset(c.ID, offset)
		list = append(list, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("cities table is empty")
	}
	return cities.Sorted(list), nil
}
