package models

// SearchLocation is a named, searchable place used by the dashboard's
// destination search box. It is not consumed by the prediction engine.
type SearchLocation struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
	City    string    `json:"city"`
	Lat     float64   `json:"lat"`
	Lng     float64   `json:"lng"`
	Type    PlaceType `json:"type"`
}

// PlaceType classifies a searchable place
type PlaceType string

// PlaceType constants
const (
	PlaceLandmark   PlaceType = "landmark"
	PlaceMall       PlaceType = "mall"
	PlaceHospital   PlaceType = "hospital"
	PlaceStation    PlaceType = "station"
	PlaceAirport    PlaceType = "airport"
	PlaceTemple     PlaceType = "temple"
	PlaceUniversity PlaceType = "university"
	PlaceMarket     PlaceType = "market"
)
