package types

// Severity and latency share the same closed integer scale.
const (
	ScaleMin      = 1
	ScaleMax      = 10
	ScaleMidpoint = 5

	// MaxMagnitude is the largest possible severity+latency sum for one category
	MaxMagnitude = ScaleMax * 2
)

// ClampScale forces a value onto the [ScaleMin, ScaleMax] interval
func ClampScale(v int) int {
	if v < ScaleMin {
		return ScaleMin
	}
	if v > ScaleMax {
		return ScaleMax
	}
	return v
}
