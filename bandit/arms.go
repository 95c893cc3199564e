package bandit

import (
	"math"

	"github.com/m-mizutani/goerr/v2"
)

// Arms holds the hidden success probability of every arm, indexed 0..n-1.
// Only the reward evaluator and reporting code read it; decision rules see
// the State alone.
type Arms []float64

// Validate rejects an empty arm set and any probability outside [0,1].
func (a Arms) Validate() error {
	if len(a) == 0 {
		return goerr.Wrap(ErrEmptyArmSet, "no arms given")
	}
	for i, p := range a {
		if err := checkProbability(p); err != nil {
			return goerr.Wrap(err, "bad arm", goerr.V("arm", i))
		}
	}
	return nil
}

// Best returns the index of the arm with the highest true probability,
// lowest index on ties. It is the oracle's choice and must not feed a policy.
func (a Arms) Best() int {
	best := 0
	for i, p := range a {
		if p > a[best] {
			best = i
		}
	}
	return best
}

func checkProbability(p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return goerr.Wrap(ErrInvalidProbability, "probability must be in [0,1]", goerr.V("probability", p))
	}
	return nil
}
