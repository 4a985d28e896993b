package prediction

import (
	"math"

	"github.com/parkit/parkit-backend-go/internal/models"
)

// EventLevelForScore quantizes an event-density score: high above 0.5,
// moderate above 0.2, low otherwise. The dashboard uses the level to label
// the events factor; the engine reports only the enumerated value.
func EventLevelForScore(score float64) models.EventLevel {
	switch {
	case score > 0.5:
		return models.EventHigh
	case score > 0.2:
		return models.EventModerate
	default:
		return models.EventLow
	}
}

// BuildFactors decomposes the weighted sum for one feature vector into the
// eight named contribution buckets shown in the dashboard. Contributions
// are absolute values; the slice keeps insertion order and callers may
// re-sort by contribution for display.
func BuildFactors(f FeatureVector) []models.FactorBreakdown {
	timeImpact := models.ImpactPositive
	if f.IsPeakHour == 1 {
		timeImpact = models.ImpactNegative
	}

	trafficImpact := models.ImpactPositive
	switch {
	case f.TrafficCondition > 0.6:
		trafficImpact = models.ImpactNegative
	case f.TrafficCondition > 0.2:
		trafficImpact = models.ImpactNeutral
	}

	trendImpact := models.ImpactPositive
	if f.TrafficTrend > 0.5 {
		trendImpact = models.ImpactNegative
	}

	eventsImpact := models.ImpactPositive
	switch {
	case f.NearbyEvents > 0.5:
		eventsImpact = models.ImpactNegative
	case f.NearbyEvents > 0.1:
		eventsImpact = models.ImpactNeutral
	}

	weekendName := "Weekday"
	weekendImpact := models.ImpactNeutral
	if f.IsWeekend == 1 {
		weekendName = "Weekend"
		weekendImpact = models.ImpactPositive
	}

	occImpact := models.ImpactPositive
	switch {
	case f.HistoricalOccupancy > 0.6:
		occImpact = models.ImpactNegative
	case f.HistoricalOccupancy > 0.3:
		occImpact = models.ImpactNeutral
	}

	typeImpact := models.ImpactNeutral
	if f.ParkingTypeScore > 0.5 {
		typeImpact = models.ImpactPositive
	}

	return []models.FactorBreakdown{
		{
			Name:         "Time of Day",
			Impact:       timeImpact,
			Contribution: math.Abs(wTimeOfDay*f.TimeOfDay + wIsPeakHour*f.IsPeakHour),
		},
		{
			Name:         "Traffic",
			Impact:       trafficImpact,
			Contribution: math.Abs(wTrafficCondition * f.TrafficCondition),
		},
		{
			Name:         "Traffic Flow Trend",
			Impact:       trendImpact,
			Contribution: math.Abs(wTrafficTrend * f.TrafficTrend),
		},
		{
			Name:         "Events",
			Impact:       eventsImpact,
			Contribution: math.Abs(wNearbyEvents * f.NearbyEvents),
		},
		{
			Name:         weekendName,
			Impact:       weekendImpact,
			Contribution: math.Abs(wIsWeekend * f.IsWeekend),
		},
		{
			Name:         "Historical Occupancy",
			Impact:       occImpact,
			Contribution: math.Abs(wHistoricalOccupancy * f.HistoricalOccupancy),
		},
		{
			Name:         "Geographic Location",
			Impact:       models.ImpactNeutral,
			Contribution: math.Abs(wLatNormalized*f.LatNormalized + wLngNormalized*f.LngNormalized),
		},
		{
			Name:         "Parking Type & Capacity",
			Impact:       typeImpact,
			Contribution: math.Abs(wParkingTypeScore*f.ParkingTypeScore + wCapacityRatio*f.CapacityRatio),
		},
	}
}
