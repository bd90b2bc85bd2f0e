package drill

import "math/rand/v2"

// Shuffle returns a uniformly random permutation of items as a new slice.
// The input is left untouched. A nil rng uses the package-level source.
func Shuffle[T any](items []T, rng *rand.Rand) []T {
	out := make([]T, len(items))
	copy(out, items)

	intN := rand.IntN
	if rng != nil {
		intN = rng.IntN
	}
	for i := len(out) - 1; i > 0; i-- {
		j := intN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Pick returns the first n items, optionally after shuffling. n <= 0 or n
// beyond the input length selects everything.
func Pick[T any](items []T, n int, shuffle bool, rng *rand.Rand) []T {
	var out []T
	if shuffle {
		out = Shuffle(items, rng)
	} else {
		out = append([]T(nil), items...)
	}
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
