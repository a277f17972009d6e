package raycast

import "math"

// Real is the single floating point type used by all geometry and shading.
type Real = float64

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

func clamp01(x Real) Real {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func degToRad(d Real) Real { return d * math.Pi / 180 }
