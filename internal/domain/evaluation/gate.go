package evaluation

// NutritiveGateThreshold is the stage-9 percentage below which the nutritive
// swallowing assessment becomes available.
const NutritiveGateThreshold = 21.0

// NutritiveEnabled reports whether the non-nutritive score opens the nutritive
// path. Exactly 21.0 keeps it closed.
func NutritiveEnabled(score float64) bool {
	return score < NutritiveGateThreshold
}

// GateDecision is the professional's routing choice on the stage-9 result
// screen.
type GateDecision string

const (
	// GateProceedNutritive enters the nutritive assessment. Only valid while
	// NutritiveEnabled holds for the recorded score.
	GateProceedNutritive GateDecision = "nutritive"
	// GateSkipToConclusions continues directly to the conclusions stage.
	GateSkipToConclusions GateDecision = "conclusions"
)
