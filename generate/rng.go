// Seed policy shared by the generators and the CLI.
//
//   - Determinism: same seed ⇒ identical mazes across runs and platforms.
//   - No hidden sources: nothing here reads the clock or the global rand.
//   - math/rand.Rand is NOT goroutine-safe; give each worker its own stream.

package generate

import "math/rand"

// DefaultSeed is used when callers pass seed==0 or no source at all.
const DefaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// seed==0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed,
// so that repeated trials get decorrelated but reproducible streams.
// SplitMix64 finalizer (Vigna 2014).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
