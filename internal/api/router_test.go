package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/parkit/parkit-backend-go/internal/config"
	"github.com/parkit/parkit-backend-go/internal/models"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	// Generous limits so tests never trip the rate limiter
	return SetupRouter(&config.Config{
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
	})
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doGet(t *testing.T, router *gin.Engine, path string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	router.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("GET %s: invalid JSON response: %v", path, err)
	}
	return w, env
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Errorf("GET /health = %d, want 200", w.Code)
	}
}

func TestListSpotsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w, env := doGet(t, router, "/api/v1/spots")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/v1/spots = %d, want 200", w.Code)
	}

	var spots []models.ParkingSpot
	if err := json.Unmarshal(env.Data, &spots); err != nil {
		t.Fatalf("decoding spots: %v", err)
	}
	if len(spots) != 20 {
		t.Errorf("got %d spots, want 20", len(spots))
	}

	// City filter
	_, env = doGet(t, router, "/api/v1/spots?city=Surat")
	if err := json.Unmarshal(env.Data, &spots); err != nil {
		t.Fatalf("decoding filtered spots: %v", err)
	}
	if len(spots) != 3 {
		t.Errorf("city filter returned %d spots, want 3", len(spots))
	}
}

func TestGetSpotEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w, env := doGet(t, router, "/api/v1/spots/p1")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/v1/spots/p1 = %d, want 200", w.Code)
	}
	var spot models.ParkingSpot
	if err := json.Unmarshal(env.Data, &spot); err != nil {
		t.Fatalf("decoding spot: %v", err)
	}
	if spot.ID != "p1" {
		t.Errorf("got spot %s, want p1", spot.ID)
	}

	w, _ = doGet(t, router, "/api/v1/spots/nope")
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown spot = %d, want 404", w.Code)
	}
}

func TestNearestEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w, env := doGet(t, router, "/api/v1/spots/nearest?lat=23.0225&lng=72.5714&limit=3")
	if w.Code != http.StatusOK {
		t.Fatalf("GET nearest = %d, want 200", w.Code)
	}

	var nearest []models.NearbySpot
	if err := json.Unmarshal(env.Data, &nearest); err != nil {
		t.Fatalf("decoding nearest: %v", err)
	}
	if len(nearest) != 3 {
		t.Fatalf("got %d nearest spots, want 3", len(nearest))
	}
	if nearest[0].City != "Ahmedabad" {
		t.Errorf("closest spot in %s, want Ahmedabad", nearest[0].City)
	}
	for i := 1; i < len(nearest); i++ {
		if nearest[i].DistanceKm < nearest[i-1].DistanceKm {
			t.Error("nearest results not sorted by distance")
		}
	}

	// Missing coordinates are rejected
	w, _ = doGet(t, router, "/api/v1/spots/nearest?lat=23.0225")
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing lng = %d, want 400", w.Code)
	}
}

func TestPredictionsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w, env := doGet(t, router, "/api/v1/predictions?hour=9&day=1")
	if w.Code != http.StatusOK {
		t.Fatalf("GET predictions = %d, want 200", w.Code)
	}

	var results []models.PredictionResult
	if err := json.Unmarshal(env.Data, &results); err != nil {
		t.Fatalf("decoding predictions: %v", err)
	}
	if len(results) != 20 {
		t.Fatalf("got %d predictions, want 20", len(results))
	}
	for _, result := range results {
		if result.Confidence < 0 || result.Confidence > 100 {
			t.Errorf("spot %s confidence %d outside [0,100]", result.Spot.ID, result.Confidence)
		}
		if len(result.Factors) != 8 {
			t.Errorf("spot %s has %d factors, want 8", result.Spot.ID, len(result.Factors))
		}
	}

	// Defaults to the wall clock when no moment is given
	w, _ = doGet(t, router, "/api/v1/predictions")
	if w.Code != http.StatusOK {
		t.Errorf("GET predictions without params = %d, want 200", w.Code)
	}

	// Out-of-range and malformed inputs are rejected at this boundary
	for _, path := range []string{
		"/api/v1/predictions?hour=24&day=1",
		"/api/v1/predictions?hour=9&day=7",
		"/api/v1/predictions?hour=abc&day=1",
		"/api/v1/predictions?hour=9",
	} {
		w, _ = doGet(t, router, path)
		if w.Code != http.StatusBadRequest {
			t.Errorf("GET %s = %d, want 400", path, w.Code)
		}
	}
}

func TestCurrentPredictionsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w, env := doGet(t, router, "/api/v1/predictions/current")
	if w.Code != http.StatusOK {
		t.Fatalf("GET predictions/current = %d, want 200", w.Code)
	}
	var results []models.PredictionResult
	if err := json.Unmarshal(env.Data, &results); err != nil {
		t.Fatalf("decoding predictions: %v", err)
	}
	if len(results) != 20 {
		t.Errorf("got %d predictions, want 20", len(results))
	}
}

func TestTrafficEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w, env := doGet(t, router, "/api/v1/traffic")
	if w.Code != http.StatusOK {
		t.Fatalf("GET traffic = %d, want 200", w.Code)
	}
	var snapshot models.TrafficSnapshot
	if err := json.Unmarshal(env.Data, &snapshot); err != nil {
		t.Fatalf("decoding snapshot: %v", err)
	}
	if snapshot.CurrentLevel == "" || snapshot.InferredLevel == "" {
		t.Error("traffic snapshot missing levels")
	}
}

func TestPlaceSearchEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w, env := doGet(t, router, "/api/v1/places/search?q=mall")
	if w.Code != http.StatusOK {
		t.Fatalf("GET places/search = %d, want 200", w.Code)
	}
	var places []models.SearchLocation
	if err := json.Unmarshal(env.Data, &places); err != nil {
		t.Fatalf("decoding places: %v", err)
	}
	if len(places) == 0 || len(places) > 4 {
		t.Errorf("got %d places, want between 1 and 4", len(places))
	}
}

func TestCitiesEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w, env := doGet(t, router, "/api/v1/cities")
	if w.Code != http.StatusOK {
		t.Fatalf("GET cities = %d, want 200", w.Code)
	}
	var cities []models.CitySummary
	if err := json.Unmarshal(env.Data, &cities); err != nil {
		t.Fatalf("decoding cities: %v", err)
	}
	if len(cities) == 0 {
		t.Error("no city summaries returned")
	}
}
