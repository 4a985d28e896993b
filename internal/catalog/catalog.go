// Package catalog holds the static parking and place catalogs for Gujarat.
//
// Both catalogs are immutable process-wide constants: loaded once, shared by
// reference across all callers, safe for concurrent reads without locking.
package catalog

import (
	"sort"
	"strings"

	"github.com/parkit/parkit-backend-go/internal/models"
)

// maxSearchResults caps place search output for the autocomplete dropdown
const maxSearchResults = 4

// Spots returns the full parking catalog in catalog order
func Spots() []models.ParkingSpot {
	return parkingSpots
}

// SpotsByCity returns the parking spots in the given city (case-insensitive).
// An empty city returns the whole catalog.
func SpotsByCity(city string) []models.ParkingSpot {
	if city == "" {
		return parkingSpots
	}
	var result []models.ParkingSpot
	for _, spot := range parkingSpots {
		if strings.EqualFold(spot.City, city) {
			result = append(result, spot)
		}
	}
	return result
}

// SpotByID looks up a parking spot by its identifier
func SpotByID(id string) (models.ParkingSpot, bool) {
	for _, spot := range parkingSpots {
		if spot.ID == id {
			return spot, true
		}
	}
	return models.ParkingSpot{}, false
}

// Places returns the full searchable-place catalog
func Places() []models.SearchLocation {
	return searchLocations
}

// SearchPlaces matches places whose name, address, city, or type contains
// the query, case-insensitively. Queries shorter than two characters return
// nothing; results are capped at maxSearchResults for the dropdown.
func SearchPlaces(query string) []models.SearchLocation {
	q := strings.ToLower(strings.TrimSpace(query))
	if len(q) < 2 {
		return nil
	}

	var result []models.SearchLocation
	for _, loc := range searchLocations {
		if strings.Contains(strings.ToLower(loc.Name), q) ||
			strings.Contains(strings.ToLower(loc.Address), q) ||
			strings.Contains(strings.ToLower(loc.City), q) ||
			strings.Contains(strings.ToLower(string(loc.Type)), q) {
			result = append(result, loc)
			if len(result) == maxSearchResults {
				break
			}
		}
	}
	return result
}

// Cities summarizes catalog coverage per city, sorted by city name
func Cities() []models.CitySummary {
	byCity := make(map[string]*models.CitySummary)
	for _, spot := range parkingSpots {
		summary, ok := byCity[spot.City]
		if !ok {
			summary = &models.CitySummary{City: spot.City}
			byCity[spot.City] = summary
		}
		summary.SpotCount++
		summary.TotalSpaces += spot.TotalSpaces
		summary.AvailableSpaces += spot.AvailableSpaces
	}

	result := make([]models.CitySummary, 0, len(byCity))
	for _, summary := range byCity {
		result = append(result, *summary)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].City < result[j].City
	})
	return result
}
