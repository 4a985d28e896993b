package service

import (
	"fmt"

	"github.com/parkit/parkit-backend-go/internal/catalog"
	"github.com/parkit/parkit-backend-go/internal/models"
	"github.com/parkit/parkit-backend-go/internal/prediction"
	"github.com/parkit/parkit-backend-go/internal/spatial"
)

// PredictionService handles business logic for availability predictions
type PredictionService struct {
	spots []models.ParkingSpot
}

// NewPredictionService creates a new prediction service over the catalog
func NewPredictionService() *PredictionService {
	return &PredictionService{
		spots: catalog.Spots(),
	}
}

// PredictFor scores every catalog location for the given hour and day.
// The engine itself accepts any integers; this boundary rejects values
// outside the documented ranges so callers get a clear error instead of a
// semantically meaningless result.
func (s *PredictionService) PredictFor(hour, dayOfWeek int) ([]models.PredictionResult, error) {
	if hour < 0 || hour > 23 {
		return nil, fmt.Errorf("hour must be between 0 and 23, got %d", hour)
	}
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return nil, fmt.Errorf("dayOfWeek must be between 0 and 6, got %d", dayOfWeek)
	}

	in := models.PredictionInput{Hour: hour, DayOfWeek: dayOfWeek}
	return prediction.Predict(s.spots, in), nil
}

// PredictCurrent scores every catalog location for the current wall clock
func (s *PredictionService) PredictCurrent() []models.PredictionResult {
	return prediction.Predict(s.spots, prediction.DefaultInput())
}

// CurrentConditions reports the wall-clock traffic picture: the simple
// hour-rule level next to the engine's inferred traffic and event scores
func (s *PredictionService) CurrentConditions() models.TrafficSnapshot {
	in := prediction.DefaultInput()
	traffic := prediction.InferTraffic(in.Hour, in.DayOfWeek)
	eventScore := prediction.InferEventDensity(in.Hour, in.DayOfWeek)

	return models.TrafficSnapshot{
		Input:         in,
		CurrentLevel:  spatial.TrafficLevelForHour(in.Hour),
		InferredLevel: traffic.Level,
		TrafficScore:  traffic.Score,
		EventLevel:    prediction.EventLevelForScore(eventScore),
		EventScore:    eventScore,
	}
}
