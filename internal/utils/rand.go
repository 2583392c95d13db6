// Package utils holds small helpers shared by the simulation services.
package utils

import "math/rand"

// RandomFloat is the default randomness source injected into services that
// apply variance, for example song quality and weekly streaming plays.
// Returns a value in [0.0, 1.0).
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // gameplay variance, not security critical
}
