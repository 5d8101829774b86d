package elp

// Thresholds are the truncation limits for longitude, latitude (arc seconds)
// and distance (km). A term is kept only if its amplitude is strictly larger.
type Thresholds [3]float64

// NewThresholds derives the thresholds from a precision, capped at MaxPrecision.
// A zero precision keeps every non-zero term and a negative one keeps every term.
func NewThresholds(precision float64) Thresholds {
	if precision > MaxPrecision {
		precision = MaxPrecision
	}
	return Thresholds{precision * RAD, precision * RAD, precision * ATH}
}
