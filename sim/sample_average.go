package sim

import (
	"github.com/Volodymyr-Myronenko/Multi-armed-bandit/bandit"
	"github.com/m-mizutani/goerr/v2"
)

// SampleAverage estimates each arm's success rate from the pseudo-counts of
// a state: Alpha-1 successes and Beta-1 failures on top of the uniform prior.
type SampleAverage struct {
	State   *bandit.State
	Initial float64
}

// Count is the number of times arm was played.
func (e SampleAverage) Count(arm int) int {
	return int(e.State.Alpha[arm] + e.State.Beta[arm] - 2)
}

// Estimate returns the observed success rate, or Initial for an arm never
// played.
func (e SampleAverage) Estimate(arm int) float64 {
	n := e.State.Alpha[arm] + e.State.Beta[arm] - 2
	if n <= 0 {
		return e.Initial
	}
	return (e.State.Alpha[arm] - 1) / n
}

// Argmax returns the arm with the highest estimate, lowest index on ties.
func (e SampleAverage) Argmax() (int, error) {
	if e.State == nil || e.State.Len() == 0 {
		return 0, goerr.Wrap(bandit.ErrEmptyArmSet, "nothing to estimate")
	}

	best := 0
	bestValue := e.Estimate(0)
	for arm := 1; arm < e.State.Len(); arm++ {
		if v := e.Estimate(arm); v > bestValue {
			best = arm
			bestValue = v
		}
	}
	return best, nil
}
