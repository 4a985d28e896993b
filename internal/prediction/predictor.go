// Package prediction implements the availability-prediction engine: a
// logistic-regression scorer over a fixed 14-feature vector, fed by
// synthetic historical traffic and event-density curves.
//
// Every function here is a pure, terminating computation over its inputs
// and the static catalog. Out-of-range hours or days are not validated;
// they silently produce mathematically defined results (see the HTTP
// boundary for validation).
package prediction

import (
	"time"

	"github.com/parkit/parkit-backend-go/internal/models"
)

// Predict scores every catalog location for one moment in time. Results
// are in catalog order, one per location, each carrying the confidence,
// the factor breakdown, and the inferred traffic and event verdicts shared
// across the batch.
func Predict(spots []models.ParkingSpot, in models.PredictionInput) []models.PredictionResult {
	traffic := InferTraffic(in.Hour, in.DayOfWeek)
	eventDensity := InferEventDensity(in.Hour, in.DayOfWeek)

	results := make([]models.PredictionResult, 0, len(spots))
	for _, spot := range spots {
		f := ExtractFeatures(spot, in, traffic.Score, eventDensity)
		z := Score(f)

		results = append(results, models.PredictionResult{
			Spot:         spot,
			Confidence:   Confidence(z),
			Factors:      BuildFactors(f),
			TrafficLevel: traffic.Level,
			EventLevel:   EventLevelForScore(eventDensity),
			EventScore:   eventDensity,
		})
	}
	return results
}

// InputFromTime derives the prediction input for a point in time.
// time.Weekday numbers Sunday as 0, matching the engine's convention.
func InputFromTime(t time.Time) models.PredictionInput {
	return models.PredictionInput{
		Hour:      t.Hour(),
		DayOfWeek: int(t.Weekday()),
	}
}

// DefaultInput reads the wall clock
func DefaultInput() models.PredictionInput {
	return InputFromTime(time.Now())
}
