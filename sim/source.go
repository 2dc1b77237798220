package sim

import "math/rand/v2"

// Source yields standard-normal deviates (mean 0, variance 1). The engine
// scales each draw by its own standard deviation and return multiplier, so a
// Source carries no simulation parameters of its own.
//
// *rand.Rand satisfies Source directly.
type Source interface {
	NormFloat64() float64
}

// NewSource returns the production source: a PCG generator with random seeds.
func NewSource() Source {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}
