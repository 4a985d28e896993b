package prediction

import "math"

// Pre-trained logistic-regression weights, one per feature plus a bias.
// The model is fixed: there is no training or persistence in this system.
const (
	wBias                = 0.65
	wTimeOfDay           = -1.1
	wIsPeakHour          = -2.4
	wIsWeekend           = 0.9
	wTrafficCondition    = -1.9
	wNearbyEvents        = -2.2
	wLatNormalized       = 0.35
	wLngNormalized       = -0.15
	wCapacityRatio       = 1.6
	wIsOpen24h           = 0.55
	wParkingTypeScore    = 1.3
	wDayOfWeekSin        = 0.25
	wDayOfWeekCos        = 0.18
	wTrafficTrend        = -0.8
	wHistoricalOccupancy = -1.5
)

// Score computes the linear combination z = bias + sum(w_i * x_i)
func Score(f FeatureVector) float64 {
	return wBias +
		wTimeOfDay*f.TimeOfDay +
		wIsPeakHour*f.IsPeakHour +
		wIsWeekend*f.IsWeekend +
		wTrafficCondition*f.TrafficCondition +
		wNearbyEvents*f.NearbyEvents +
		wLatNormalized*f.LatNormalized +
		wLngNormalized*f.LngNormalized +
		wCapacityRatio*f.CapacityRatio +
		wIsOpen24h*f.IsOpen24h +
		wParkingTypeScore*f.ParkingTypeScore +
		wDayOfWeekSin*f.DayOfWeekSin +
		wDayOfWeekCos*f.DayOfWeekCos +
		wTrafficTrend*f.TrafficTrend +
		wHistoricalOccupancy*f.HistoricalOccupancy
}

// Sigmoid maps z to (0,1): 1 / (1 + e^(-z)). Strictly increasing in z.
func Sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// Confidence converts a linear score to the 0-100 availability confidence.
// Rounding is half-away-from-zero (math.Round), so confidence is a
// non-decreasing function of z and always within [0,100].
func Confidence(z float64) int {
	return int(math.Round(Sigmoid(z) * 100))
}
