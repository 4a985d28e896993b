package prediction

import (
	"math"
	"reflect"
	"testing"

	"github.com/parkit/parkit-backend-go/internal/catalog"
	"github.com/parkit/parkit-backend-go/internal/models"
)

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestSigmoid(t *testing.T) {
	if got := Sigmoid(0); !almostEqual(got, 0.5, 1e-12) {
		t.Errorf("Sigmoid(0) = %v, want 0.5", got)
	}

	// Strictly increasing in z
	zs := []float64{-8, -3, -1, -0.25, 0, 0.25, 1, 3, 8}
	for i := 1; i < len(zs); i++ {
		lo, hi := Sigmoid(zs[i-1]), Sigmoid(zs[i])
		if hi <= lo {
			t.Errorf("Sigmoid not strictly increasing: Sigmoid(%v)=%v, Sigmoid(%v)=%v",
				zs[i-1], lo, zs[i], hi)
		}
	}
}

func TestConfidence(t *testing.T) {
	// Non-decreasing in z and bounded after rounding
	prev := -1
	for z := -10.0; z <= 10.0; z += 0.05 {
		c := Confidence(z)
		if c < 0 || c > 100 {
			t.Fatalf("Confidence(%v) = %d, want within [0,100]", z, c)
		}
		if c < prev {
			t.Fatalf("Confidence not monotonic at z=%v: %d after %d", z, c, prev)
		}
		prev = c
	}

	if got := Confidence(0); got != 50 {
		t.Errorf("Confidence(0) = %d, want 50", got)
	}
}

func TestPredictConfidenceBounds(t *testing.T) {
	spots := catalog.Spots()
	for hour := 0; hour < 24; hour++ {
		for day := 0; day < 7; day++ {
			in := models.PredictionInput{Hour: hour, DayOfWeek: day}
			for _, result := range Predict(spots, in) {
				if result.Confidence < 0 || result.Confidence > 100 {
					t.Fatalf("Predict(%+v): spot %s confidence %d outside [0,100]",
						in, result.Spot.ID, result.Confidence)
				}
			}
		}
	}
}

func TestPredictIsDeterministic(t *testing.T) {
	in := models.PredictionInput{Hour: 9, DayOfWeek: 1}
	first := Predict(catalog.Spots(), in)
	second := Predict(catalog.Spots(), in)

	if !reflect.DeepEqual(first, second) {
		t.Error("Predict returned different results for identical input")
	}
}

func TestPredictReturnsCatalogOrder(t *testing.T) {
	spots := catalog.Spots()
	results := Predict(spots, models.PredictionInput{Hour: 12, DayOfWeek: 3})

	if len(results) != len(spots) {
		t.Fatalf("Predict returned %d results, want %d", len(results), len(spots))
	}
	for i, result := range results {
		if result.Spot.ID != spots[i].ID {
			t.Errorf("result %d is spot %s, want catalog order %s", i, result.Spot.ID, spots[i].ID)
		}
	}
}

// Monday 9 AM sits on the morning traffic peak, so every location should
// score lower than it does at 3 AM the same day.
func TestPeakHourLowersConfidence(t *testing.T) {
	spots := catalog.Spots()

	peak := Predict(spots, models.PredictionInput{Hour: 9, DayOfWeek: 1})
	if peak[0].TrafficLevel != models.TrafficHeavy {
		t.Fatalf("Monday 9 AM inferred traffic %s, want heavy", peak[0].TrafficLevel)
	}

	night := Predict(spots, models.PredictionInput{Hour: 3, DayOfWeek: 1})
	for i := range spots {
		if peak[i].Confidence >= night[i].Confidence {
			t.Errorf("spot %s: peak confidence %d not below 3 AM confidence %d",
				spots[i].ID, peak[i].Confidence, night[i].Confidence)
		}
	}
}

// Saturday 3 AM: traffic at its floor, events attenuated by the night
// multiplier, confidence trending high.
func TestQuietNightConfidence(t *testing.T) {
	results := Predict(catalog.Spots(), models.PredictionInput{Hour: 3, DayOfWeek: 6})

	if results[0].TrafficLevel != models.TrafficLow {
		t.Errorf("Saturday 3 AM inferred traffic %s, want low", results[0].TrafficLevel)
	}
	if results[0].EventScore > 0.05 {
		t.Errorf("Saturday 3 AM event score %v, want near floor", results[0].EventScore)
	}
	for _, result := range results {
		if result.Confidence < 50 {
			t.Errorf("spot %s: Saturday 3 AM confidence %d unexpectedly low",
				result.Spot.ID, result.Confidence)
		}
	}
}

func TestExtractFeatures(t *testing.T) {
	spot := models.ParkingSpot{
		ID:            "t1",
		Lat:           22.25,         // (22.25-20)/4.5 = 0.5
		Lng:           71.0,          // (71-68)/6 = 0.5
		TotalSpaces:   300,           // 300/600 = 0.5
		Type:          models.ParkingMultiLevel,
		IsOpen24Hours: false,
	}
	in := models.PredictionInput{Hour: 9, DayOfWeek: 1}

	f := ExtractFeatures(spot, in, 0.7, 0.3)

	want := FeatureVector{
		TimeOfDay:           9.0 / 24,
		IsPeakHour:          1,
		IsWeekend:           0,
		TrafficCondition:    0.7,
		NearbyEvents:        0.3,
		LatNormalized:       0.5,
		LngNormalized:       0.5,
		CapacityRatio:       0.5,
		IsOpen24h:           0,
		ParkingTypeScore:    0.85,
		DayOfWeekSin:        math.Sin(2 * math.Pi / 7),
		DayOfWeekCos:        math.Cos(2 * math.Pi / 7),
		TrafficTrend:        1, // rush-hour Gaussians sum past the cap at hour 9
		HistoricalOccupancy: 0.85,
	}

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"TimeOfDay", f.TimeOfDay, want.TimeOfDay},
		{"IsPeakHour", f.IsPeakHour, want.IsPeakHour},
		{"IsWeekend", f.IsWeekend, want.IsWeekend},
		{"TrafficCondition", f.TrafficCondition, want.TrafficCondition},
		{"NearbyEvents", f.NearbyEvents, want.NearbyEvents},
		{"LatNormalized", f.LatNormalized, want.LatNormalized},
		{"LngNormalized", f.LngNormalized, want.LngNormalized},
		{"CapacityRatio", f.CapacityRatio, want.CapacityRatio},
		{"IsOpen24h", f.IsOpen24h, want.IsOpen24h},
		{"ParkingTypeScore", f.ParkingTypeScore, want.ParkingTypeScore},
		{"DayOfWeekSin", f.DayOfWeekSin, want.DayOfWeekSin},
		{"DayOfWeekCos", f.DayOfWeekCos, want.DayOfWeekCos},
		{"TrafficTrend", f.TrafficTrend, want.TrafficTrend},
		{"HistoricalOccupancy", f.HistoricalOccupancy, want.HistoricalOccupancy},
	}
	for _, c := range checks {
		if !almostEqual(c.got, c.want, 1e-9) {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

// Features outside the Gujarat bounding box or above the capacity ceiling
// must pass through unclamped.
func TestExtractFeaturesDoesNotClamp(t *testing.T) {
	spot := models.ParkingSpot{
		Lat:         19.0, // south of the box
		Lng:         75.0, // east of the box
		TotalSpaces: 900,  // above the 600 ceiling
		Type:        models.ParkingOpen,
	}

	f := ExtractFeatures(spot, models.PredictionInput{Hour: 12, DayOfWeek: 3}, 0.5, 0.5)

	if f.LatNormalized >= 0 {
		t.Errorf("LatNormalized = %v, want negative for out-of-box latitude", f.LatNormalized)
	}
	if f.LngNormalized <= 1 {
		t.Errorf("LngNormalized = %v, want above 1 for out-of-box longitude", f.LngNormalized)
	}
	if !almostEqual(f.CapacityRatio, 1.5, 1e-9) {
		t.Errorf("CapacityRatio = %v, want 1.5", f.CapacityRatio)
	}
}

func TestScoreMatchesWeights(t *testing.T) {
	f := FeatureVector{
		TimeOfDay:           0.5,
		IsPeakHour:          1,
		IsWeekend:           0,
		TrafficCondition:    0.8,
		NearbyEvents:        0.4,
		LatNormalized:       0.6,
		LngNormalized:       0.4,
		CapacityRatio:       0.75,
		IsOpen24h:           1,
		ParkingTypeScore:    0.65,
		DayOfWeekSin:        0.78,
		DayOfWeekCos:        -0.22,
		TrafficTrend:        0.9,
		HistoricalOccupancy: 0.7,
	}

	want := 0.65 +
		-1.1*0.5 + -2.4*1 + 0.9*0 + -1.9*0.8 + -2.2*0.4 +
		0.35*0.6 + -0.15*0.4 + 1.6*0.75 + 0.55*1 + 1.3*0.65 +
		0.25*0.78 + 0.18*-0.22 + -0.8*0.9 + -1.5*0.7

	if got := Score(f); !almostEqual(got, want, 1e-12) {
		t.Errorf("Score = %v, want %v", got, want)
	}
}
