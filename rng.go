package cellmesh

import "math/rand"

// NewThreadRNGs derives n per-worker random sources from a single
// seed. Mixing uses the splitmix64 constant and finalizer so nearby
// seeds produce uncorrelated streams.
func NewThreadRNGs(seed uint64, n int) []*rand.Rand {
	rngs := make([]*rand.Rand, n)
	state := seed
	for i := 0; i < n; i++ {
		state += 0x9E3779B97F4A7C15
		rngs[i] = rand.New(rand.NewSource(int64(splitmix64(state))))
	}
	return rngs
}

func splitmix64(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xBF58476D1CE4E5B9
	x ^= x >> 27
	x *= 0x94D049BB133111EB
	x ^= x >> 31
	return x
}
