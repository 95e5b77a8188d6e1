package domain

type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

type OverrideEffect string

const (
	EffectSurge    OverrideEffect = "surge"
	EffectDiscount OverrideEffect = "discount"
)

// DetectedOverride is one auto-detected contextual price adjustment. Factors
// above 1.0 surge, below 1.0 discount; the detector multiplies all fired
// factors together and saturates the product.
type DetectedOverride struct {
	Name       string         `json:"name"`
	Factor     float64        `json:"factor"`
	Reason     string         `json:"reason"`
	Confidence Confidence     `json:"confidence"`
	Effect     OverrideEffect `json:"effect"`
}
