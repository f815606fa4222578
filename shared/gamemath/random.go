package gamemath

import "math/rand"

// Choose picks one option as a pure function of seed.
func Choose[T any](seed int64, options []T) T {
	var zero T
	if len(options) == 0 {
		return zero
	}
	r := rand.New(rand.NewSource(seed))
	return options[r.Intn(len(options))]
}
