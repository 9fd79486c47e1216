package helpers

import "math"

func Percentage(part int, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

func Clamp(value float64, min float64, max float64) float64 {
	return math.Min(max, math.Max(min, value))
}

// Saturation grows from 0 towards 1 as x increases: 1 - e^(-rate*x)
func Saturation(x float64, rate float64) float64 {
	return 1 - math.Exp(-rate*x)
}
