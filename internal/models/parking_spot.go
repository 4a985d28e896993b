package models

// ParkingSpot represents one entry of the static parking catalog
type ParkingSpot struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`

	// Coordinates (WGS84 degrees, within Gujarat's bounding box)
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`

	// Capacity and pricing
	TotalSpaces     int     `json:"totalSpaces"`
	AvailableSpaces int     `json:"availableSpaces"`
	PricePerHour    float64 `json:"pricePerHour"`

	// Structure and amenities
	Type     ParkingType `json:"type"`
	Rating   float64     `json:"rating"`
	Features []string    `json:"features"`

	OpenHours     string `json:"openHours"`
	IsOpen24Hours bool   `json:"isOpen24Hours"`
}

// ParkingType classifies the physical structure of a parking location
type ParkingType string

// ParkingType constants
const (
	ParkingMultiLevel  ParkingType = "multi-level"
	ParkingOpen        ParkingType = "open"
	ParkingUnderground ParkingType = "underground"
	ParkingStreet      ParkingType = "street"
)

// TrafficLevel is a qualitative road-congestion classification
type TrafficLevel string

// TrafficLevel constants
const (
	TrafficLow      TrafficLevel = "low"
	TrafficModerate TrafficLevel = "moderate"
	TrafficHeavy    TrafficLevel = "heavy"
)

// NearbySpot is a catalog entry annotated with its distance from a query
// point and the estimated drive time under the current traffic level
type NearbySpot struct {
	ParkingSpot
	DistanceKm        float64 `json:"distanceKm"`
	TravelTimeMinutes int     `json:"travelTimeMinutes"`
}

// CitySummary aggregates catalog coverage for one city
type CitySummary struct {
	City            string `json:"city"`
	SpotCount       int    `json:"spotCount"`
	TotalSpaces     int    `json:"totalSpaces"`
	AvailableSpaces int    `json:"availableSpaces"`
}
