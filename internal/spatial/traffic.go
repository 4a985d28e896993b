package spatial

import (
	"math"
	"time"

	"github.com/parkit/parkit-backend-go/internal/models"
)

// City driving speeds in km/h per traffic level
var trafficSpeedKmh = map[models.TrafficLevel]float64{
	models.TrafficLow:      40,
	models.TrafficModerate: 25,
	models.TrafficHeavy:    15,
}

// TravelTimeMinutes estimates the drive time for a distance under the given
// traffic level, rounded to the nearest minute. Zero distance yields zero.
func TravelTimeMinutes(distanceKm float64, level models.TrafficLevel) int {
	speed, ok := trafficSpeedKmh[level]
	if !ok {
		speed = trafficSpeedKmh[models.TrafficModerate]
	}
	return int(math.Round(distanceKm / speed * 60))
}

// TrafficLevelForHour classifies congestion from the hour of day alone:
// heavy during rush hours, moderate during business hours and the early
// commute, low otherwise. This simple rule drives the dashboard's travel
// times and may disagree with the prediction engine's richer inference.
func TrafficLevelForHour(hour int) models.TrafficLevel {
	if (hour >= 8 && hour <= 10) || (hour >= 17 && hour <= 20) {
		return models.TrafficHeavy
	}
	if (hour >= 11 && hour <= 16) || (hour >= 6 && hour <= 7) {
		return models.TrafficModerate
	}
	return models.TrafficLow
}

// CurrentTrafficLevel classifies congestion for the current wall-clock hour
func CurrentTrafficLevel() models.TrafficLevel {
	return TrafficLevelForHour(time.Now().Hour())
}
