// Package api exposes the journey state to the browser UI.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"bunny-tracker/internal/cities"
	"bunny-tracker/internal/easter"
	"bunny-tracker/internal/geo"
	"bunny-tracker/internal/tracker"
)

// PositionSource provides the latest computed journey snapshot.
type PositionSource interface {
	Latest() *tracker.Position
}

// NowFunc supplies the current instant, honoring any mock clock.
type NowFunc func() time.Time

// Handler serves the UI-facing endpoints.
type Handler struct {
	source    PositionSource
	directory []cities.City
	now       NowFunc
}

func NewHandler(source PositionSource, directory []cities.City, now NowFunc) *Handler {
	return &Handler{source: source, directory: directory, now: now}
}

// ErrorResponse is the JSON error response structure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// PositionResponse is the JSON response for GET /api/position. Position is
// omitted while the journey is idle; Active tells the UI to show the
// sleeping state.
type PositionResponse struct {
	Active   bool              `json:"active"`
	Position *tracker.Position `json:"position,omitempty"`
}

// GetPosition handles GET /api/position.
func (h *Handler) GetPosition(w http.ResponseWriter, r *http.Request) {
	pos := h.source.Latest()
	writeJSON(w, http.StatusOK, PositionResponse{Active: pos != nil, Position: pos})
}

// CitiesResponse is the JSON response for GET /api/cities.
type CitiesResponse struct {
	Cities []cities.City `json:"cities"`
	Count  int           `json:"count"`
}

// GetCities handles GET /api/cities. The list is ordered east to west, the
// order the journey visits them in.
func (h *Handler) GetCities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, CitiesResponse{Cities: h.directory, Count: len(h.directory)})
}

// NearestResponse is the JSON response for GET /api/nearest.
type NearestResponse struct {
	City        cities.City `json:"city"`
	DistanceKm  float64     `json:"distanceKm"`
	OffsetLabel string      `json:"offsetLabel"`
	ArrivalTime string      `json:"arrivalTime"`
}

// GetNearest handles GET /api/nearest?lat=&lon=. It resolves a viewer's
// geolocation to the nearest directory city and the bunny's estimated
// arrival there. Coordinates may arrive at any time relative to the
// journey; the answer never depends on journey state.
func (h *Handler) GetNearest(w http.ResponseWriter, r *http.Request) {
	lat, err1 := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, err2 := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if err1 != nil || err2 != nil || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "lat and lon query parameters must be valid coordinates"})
		return
	}
	c := geo.NearestCity(lat, lon, h.directory)
	writeJSON(w, http.StatusOK, NearestResponse{
		City:        c,
		DistanceKm:  geo.DistanceKm(lat, lon, c.Latitude, c.Longitude),
		OffsetLabel: c.OffsetLabel(),
		ArrivalTime: tracker.ArrivalTimeString(c, h.now()),
	})
}

// ArrivalResponse is the JSON response for GET /api/cities/{id}/arrival.
type ArrivalResponse struct {
	City        cities.City `json:"city"`
	ArrivalTime string      `json:"arrivalTime"`
	EasterDate  string      `json:"easterDate"`
}

// GetArrival handles GET /api/cities/{id}/arrival.
func (h *Handler) GetArrival(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	c, ok := cities.ByID(h.directory, id)
	if !ok {
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "unknown city id"})
		return
	}
	now := h.now()
	writeJSON(w, http.StatusOK, ArrivalResponse{
		City:        c,
		ArrivalTime: tracker.ArrivalTimeString(c, now),
		EasterDate:  easter.Next(now).Format("2006-01-02"),
	})
}

// NextEasterResponse is the JSON response for GET /api/next-easter.
type NextEasterResponse struct {
	Date        string    `json:"date"`
	WindowStart time.Time `json:"windowStart"`
	WindowEnd   time.Time `json:"windowEnd"`
}

// GetNextEaster handles GET /api/next-easter.
func (h *Handler) GetNextEaster(w http.ResponseWriter, r *http.Request) {
	d := easter.Next(h.now())
	win := easter.GlobalWindow(d)
	writeJSON(w, http.StatusOK, NextEasterResponse{
		Date:        d.Format("2006-01-02"),
		WindowStart: win.Start,
		WindowEnd:   win.End,
	})
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"cities":    len(h.directory),
		"timestamp": time.Now().UTC(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
