package service

import (
	"github.com/parkit/parkit-backend-go/internal/catalog"
	"github.com/parkit/parkit-backend-go/internal/models"
)

// PlaceService handles business logic for searchable places
type PlaceService struct{}

// NewPlaceService creates a new place service
func NewPlaceService() *PlaceService {
	return &PlaceService{}
}

// Search matches places for the autocomplete dropdown. Queries shorter
// than two characters yield no results.
func (s *PlaceService) Search(query string) []models.SearchLocation {
	return catalog.SearchPlaces(query)
}
