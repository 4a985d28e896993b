package prediction

import (
	"math"

	"github.com/parkit/parkit-backend-go/internal/models"
)

// Gujarat approximate bounding box and capacity ceiling used for
// normalization. Coordinates or capacities outside these ranges are not
// rejected: the normalized feature simply leaves [0,1].
const (
	latMin      = 20.0
	latMax      = 24.5
	lngMin      = 68.0
	lngMax      = 74.0
	maxCapacity = 600.0
)

// Ordinal preference score per structure type
var parkingTypeScore = map[models.ParkingType]float64{
	models.ParkingMultiLevel:  0.85,
	models.ParkingUnderground: 0.65,
	models.ParkingOpen:        0.40,
	models.ParkingStreet:      0.25,
}

// FeatureVector is the fixed 14-dimensional input to the scorer. Keeping a
// named struct rather than a map lets the dot product in Score line up with
// the weight set at compile time.
type FeatureVector struct {
	TimeOfDay           float64 // hour/24
	IsPeakHour          float64 // binary rush-hour indicator
	IsWeekend           float64 // binary Saturday/Sunday
	TrafficCondition    float64 // inferred traffic score [0,1]
	NearbyEvents        float64 // inferred event density [0,1]
	LatNormalized       float64 // latitude scaled to the Gujarat range
	LngNormalized       float64 // longitude scaled to the Gujarat range
	CapacityRatio       float64 // totalSpaces / 600
	IsOpen24h           float64 // binary
	ParkingTypeScore    float64 // ordinal: multi-level > underground > open > street
	DayOfWeekSin        float64 // cyclical encoding sin(2*pi*day/7)
	DayOfWeekCos        float64 // cyclical encoding cos(2*pi*day/7)
	TrafficTrend        float64 // hour-based traffic flow trend
	HistoricalOccupancy float64 // time-and-day based average occupancy
}

func isPeakHour(hour int) bool {
	return (hour >= 8 && hour <= 10) || (hour >= 17 && hour <= 20)
}

// trafficFlowTrend peaks at the rush hours and dips mid-day and overnight
func trafficFlowTrend(hour int) float64 {
	h := float64(hour)
	return math.Min(1, gaussian(h, 9, 2)+gaussian(h, 18, 2))
}

// ExtractFeatures builds the feature vector for one catalog location at one
// moment, given the already-inferred traffic and event scores. No feature
// is clamped here beyond what its formula implies.
func ExtractFeatures(spot models.ParkingSpot, in models.PredictionInput, trafficScore, eventDensity float64) FeatureVector {
	f := FeatureVector{
		TimeOfDay:           float64(in.Hour) / 24,
		TrafficCondition:    trafficScore,
		NearbyEvents:        eventDensity,
		LatNormalized:       (spot.Lat - latMin) / (latMax - latMin),
		LngNormalized:       (spot.Lng - lngMin) / (lngMax - lngMin),
		CapacityRatio:       float64(spot.TotalSpaces) / maxCapacity,
		ParkingTypeScore:    parkingTypeScore[spot.Type],
		DayOfWeekSin:        math.Sin(2 * math.Pi * float64(in.DayOfWeek) / 7),
		DayOfWeekCos:        math.Cos(2 * math.Pi * float64(in.DayOfWeek) / 7),
		TrafficTrend:        trafficFlowTrend(in.Hour),
		HistoricalOccupancy: HistoricalOccupancy(spot.Type, in.Hour, in.DayOfWeek, spot.IsOpen24Hours),
	}

	if isPeakHour(in.Hour) {
		f.IsPeakHour = 1
	}
	if isWeekend(in.DayOfWeek) {
		f.IsWeekend = 1
	}
	if spot.IsOpen24Hours {
		f.IsOpen24h = 1
	}

	return f
}
