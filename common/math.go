package common

// ErrorMargin is the tolerance used by geometry edge tests so that exact
// boundary coincidence does not flicker between ticks.
const ErrorMargin = 0.1

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Sign returns -1 for negative values and 1 otherwise, zero included.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
