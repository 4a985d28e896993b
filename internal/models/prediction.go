package models

// PredictionInput identifies the moment a prediction is computed for.
// It is constructed fresh per call, either from the wall clock or from a
// user selection, and is immutable once passed to the engine.
type PredictionInput struct {
	Hour      int `json:"hour"`      // 0-23
	DayOfWeek int `json:"dayOfWeek"` // 0-6, 0 = Sunday
}

// Impact classifies how a factor moved the availability score
type Impact string

// Impact constants
const (
	ImpactPositive Impact = "positive"
	ImpactNegative Impact = "negative"
	ImpactNeutral  Impact = "neutral"
)

// EventLevel is a qualitative classification of inferred event density
type EventLevel string

// EventLevel constants
const (
	EventHigh     EventLevel = "high"
	EventModerate EventLevel = "moderate"
	EventLow      EventLevel = "low"
)

// FactorBreakdown is one named bucket of the scoring formula, reported for
// explainability. Contribution is the absolute weighted term (or sum of
// closely related terms); it is never negative.
type FactorBreakdown struct {
	Name         string  `json:"name"`
	Impact       Impact  `json:"impact"`
	Contribution float64 `json:"contribution"`
}

// TrafficSnapshot reports current wall-clock conditions: the simple
// hour-rule traffic level used for travel times alongside the engine's
// inferred traffic and event scores for the same moment. The two traffic
// classifications are allowed to disagree.
type TrafficSnapshot struct {
	Input         PredictionInput `json:"input"`
	CurrentLevel  TrafficLevel    `json:"currentLevel"`
	InferredLevel TrafficLevel    `json:"inferredLevel"`
	TrafficScore  float64         `json:"trafficScore"`
	EventLevel    EventLevel      `json:"eventLevel"`
	EventScore    float64         `json:"eventScore"`
}

// PredictionResult is the engine's verdict for a single catalog location.
// Factors are in insertion order; consumers may re-sort by contribution
// for display.
type PredictionResult struct {
	Spot         ParkingSpot       `json:"spot"`
	Confidence   int               `json:"confidence"` // 0-100
	Factors      []FactorBreakdown `json:"factors"`
	TrafficLevel TrafficLevel      `json:"trafficLevel"`
	EventLevel   EventLevel        `json:"eventLevel"`
	EventScore   float64           `json:"eventScore"`
}
