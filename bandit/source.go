package bandit

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Source is the randomness a trajectory consumes. Implementations need not
// be safe for concurrent use; every trajectory owns its own Source.
type Source interface {
	// Float64 returns a uniform draw from [0,1).
	Float64() float64
	// Beta returns one draw from Beta(alpha, beta). Both parameters are
	// positive when called from this package.
	Beta(alpha, beta float64) float64
}

// RandSource is the default Source, a seeded PCG stream.
type RandSource struct {
	pcg *rand.PCG
	rng *rand.Rand
}

// NewSource returns a RandSource whose sequence is fully determined by seed.
func NewSource(seed uint64) *RandSource {
	pcg := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	return &RandSource{pcg: pcg, rng: rand.New(pcg)}
}

func (s *RandSource) Float64() float64 {
	return s.rng.Float64()
}

func (s *RandSource) Beta(alpha, beta float64) float64 {
	return distuv.Beta{Alpha: alpha, Beta: beta, Src: s.pcg}.Rand()
}
