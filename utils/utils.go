package utils

import (
	"math"
)

func Deg(rads float64) float64 {
	return rads / (math.Pi / 180)
}

func Rad(degrees float64) float64 {
	return (math.Pi / 180) * degrees
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Sign returns -1 for odd i and +1 for even i, which is how alternating legs
// flip their offsets.
func Sign(i int) float64 {
	if i%2 == 0 {
		return 1
	}
	return -1
}
