package service

import (
	"fmt"

	"github.com/parkit/parkit-backend-go/internal/catalog"
	"github.com/parkit/parkit-backend-go/internal/models"
	"github.com/parkit/parkit-backend-go/internal/spatial"
)

// DefaultNearestLimit is the number of nearby spots returned when the
// caller does not ask for a specific count. The dashboard map requests 8.
const DefaultNearestLimit = 5

// SpotService handles business logic for the parking catalog
type SpotService struct{}

// NewSpotService creates a new spot service
func NewSpotService() *SpotService {
	return &SpotService{}
}

// ListSpots returns the catalog, optionally filtered by city
func (s *SpotService) ListSpots(city string) []models.ParkingSpot {
	return catalog.SpotsByCity(city)
}

// GetSpot looks up a single spot by identifier
func (s *SpotService) GetSpot(id string) (models.ParkingSpot, error) {
	spot, ok := catalog.SpotByID(id)
	if !ok {
		return models.ParkingSpot{}, fmt.Errorf("parking spot %q not found", id)
	}
	return spot, nil
}

// Nearest returns the limit closest spots to a coordinate, each annotated
// with its distance and the estimated drive time under the current traffic
// level. A limit below one falls back to DefaultNearestLimit.
func (s *SpotService) Nearest(lat, lng float64, limit int) []models.NearbySpot {
	if limit < 1 {
		limit = DefaultNearestLimit
	}

	level := spatial.CurrentTrafficLevel()
	nearest := spatial.NearestSpots(catalog.Spots(), lat, lng, limit)

	result := make([]models.NearbySpot, 0, len(nearest))
	for _, sd := range nearest {
		result = append(result, models.NearbySpot{
			ParkingSpot:       sd.Spot,
			DistanceKm:        sd.DistanceKm,
			TravelTimeMinutes: spatial.TravelTimeMinutes(sd.DistanceKm, level),
		})
	}
	return result
}

// Cities summarizes catalog coverage per city
func (s *SpotService) Cities() []models.CitySummary {
	return catalog.Cities()
}
