package arrivals

import "math/rand/v2"

// Picker returns a uniformly random index in [0, n). n is always > 0.
type Picker func(n int) int

// NewRandomPicker returns a Picker backed by math/rand/v2. A zero seed uses
// the runtime-seeded global source; any other seed gives a reproducible
// sequence.
func NewRandomPicker(seed uint64) Picker {
	if seed == 0 {
		return rand.IntN
	}
	r := rand.New(rand.NewPCG(seed, seed))
	return r.IntN
}
