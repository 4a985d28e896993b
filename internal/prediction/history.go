package prediction

import (
	"math"

	"github.com/parkit/parkit-backend-go/internal/models"
)

// The functions in this file stand in for real historical statistics. No
// actual historical data is consumed anywhere: the curves are fixed
// closed-form approximations of Gujarat traffic-flow and event-calendar
// patterns, combining Gaussian bumps with weekday/weekend multipliers.
// They are pure and deterministic in (hour, dayOfWeek).

// TrafficInference is the synthetic traffic verdict for a moment in time
type TrafficInference struct {
	Level models.TrafficLevel
	Score float64 // [0,1]
}

// gaussian evaluates exp(-0.5*((x-center)/sigma)^2)
func gaussian(x, center, sigma float64) float64 {
	d := (x - center) / sigma
	return math.Exp(-0.5 * d * d)
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

func isWeekend(dayOfWeek int) bool {
	return dayOfWeek == 0 || dayOfWeek == 6
}

// InferTraffic estimates road congestion from the historical daily pattern:
// Gaussian peaks at the morning rush (center 9), evening rush (center 18)
// and a smaller lunch bump (center 13), damped on weekends and amplified on
// Friday evenings. The score is clamped to [0,1] and quantized to a level
// at 0.6 (heavy) and 0.3 (moderate).
func InferTraffic(hour, dayOfWeek int) TrafficInference {
	h := float64(hour)

	morningPeak := gaussian(h, 9, 1.5)
	eveningPeak := gaussian(h, 18, 2)
	lunchPeak := gaussian(h, 13, 2.5) * 0.4

	raw := morningPeak + eveningPeak + lunchPeak

	// Weekends carry roughly 40% less traffic
	if isWeekend(dayOfWeek) {
		raw *= 0.6
	}

	// Friday evenings run busier
	if dayOfWeek == 5 && hour >= 16 {
		raw *= 1.25
	}

	score := clamp01(raw)

	level := models.TrafficLow
	switch {
	case score >= 0.6:
		level = models.TrafficHeavy
	case score >= 0.3:
		level = models.TrafficModerate
	}

	return TrafficInference{Level: level, Score: score}
}

// InferEventDensity estimates nearby event activity: an evening bump
// (center 19) and an afternoon bump (center 15), doubled on weekends, with
// a flat Friday-nightlife addition, a strong early/late suppression, and a
// weekend temple-morning bump. Clamped to [0,1].
func InferEventDensity(hour, dayOfWeek int) float64 {
	h := float64(hour)

	eveningBump := gaussian(h, 19, 3) * 0.6
	afternoonBump := gaussian(h, 15, 3) * 0.3

	density := eveningBump + afternoonBump

	// Weekend markets, festivals and religious events roughly double density
	if isWeekend(dayOfWeek) {
		density *= 2.0
	}

	// Friday evenings: nightlife and social events
	if dayOfWeek == 5 && hour >= 17 {
		density += 0.3
	}

	// Minimal events early morning and late night. Applied after the Friday
	// addition, so late Friday evenings keep an attenuated nonzero density.
	if hour < 7 || hour > 22 {
		density *= 0.1
	}

	// Temple activity peaks at weekend morning puja times
	if hour >= 6 && hour <= 8 && isWeekend(dayOfWeek) {
		density += 0.2
	}

	return clamp01(density)
}

// Base occupancy per structure type
var occupancyBase = map[models.ParkingType]float64{
	models.ParkingMultiLevel:  0.55,
	models.ParkingUnderground: 0.50,
	models.ParkingOpen:        0.40,
	models.ParkingStreet:      0.45,
}

// HistoricalOccupancy approximates the average fill rate for a parking type
// at a given hour and day: high through peak hours, moderate mid-day, low
// overnight. Weekends favor mall-style multi-level locations over office
// areas, and 24-hour locations run slightly flatter. Clamped to [0,1].
func HistoricalOccupancy(parkingType models.ParkingType, hour, dayOfWeek int, isOpen24h bool) float64 {
	occ := occupancyBase[parkingType]

	switch {
	case (hour >= 9 && hour <= 11) || (hour >= 17 && hour <= 20):
		occ += 0.30
	case hour >= 12 && hour <= 16:
		occ += 0.15
	case hour >= 22 || hour <= 5:
		occ -= 0.25
	}

	if isWeekend(dayOfWeek) {
		if parkingType == models.ParkingMultiLevel {
			occ += 0.10 // mall parking
		} else {
			occ -= 0.15 // office-area parking
		}
	}

	if isOpen24h {
		occ *= 0.9
	}

	return clamp01(occ)
}
