package util

import (
	"math/rand"

	"github.com/fogleman/ease"
)

// RandRange returns a random integer in [min, max], both ends inclusive.
func RandRange(rng *rand.Rand, min int, max int) int {
	if max <= min {
		return min
	}
	return rng.Intn(max-min+1) + min
}

// GenerateRamp builds a look-up table of length entries that eases from 0 to 1.
// The first entry is 0 and the last entry is 1.
func GenerateRamp(length int) []float64 {
	if length <= 0 {
		return nil
	}
	lut := make([]float64, length)
	if length == 1 {
		lut[0] = 1
		return lut
	}
	increment := 1.0 / float64(length-1)
	for i := 0; i < length; i++ {
		lut[i] = ease.InOutQuad(float64(i) * increment)
	}
	return lut
}
