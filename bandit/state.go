package bandit

import (
	"math"
	"slices"

	"github.com/m-mizutani/goerr/v2"
)

// State is the belief of the bandit: one Beta(Alpha[i], Beta[i]) posterior
// per arm and the cumulative regret. It is owned by a single trajectory and
// mutated in place, once per round.
type State struct {
	Alpha  []float64
	Beta   []float64
	Regret int
}

// Round is the outcome of one decision round.
type Round struct {
	Arm    int
	Reward int
	Regret int
}

// New returns the Beta(1,1) prior for every arm with zero regret. Only the
// number of arms is taken from arms, but the probabilities are validated.
func New(arms Arms) (*State, error) {
	if err := arms.Validate(); err != nil {
		return nil, err
	}
	return newState(len(arms)), nil
}

// NewWithArms is New for callers that only know the arm count.
func NewWithArms(n int) (*State, error) {
	if n < 1 {
		return nil, goerr.Wrap(ErrEmptyArmSet, "arm count must be positive", goerr.V("n", n))
	}
	return newState(n), nil
}

func newState(n int) *State {
	s := &State{
		Alpha: make([]float64, n),
		Beta:  make([]float64, n),
	}
	for i := range n {
		s.Alpha[i] = 1
		s.Beta[i] = 1
	}
	return s
}

// Len returns the number of arms.
func (s *State) Len() int {
	return len(s.Alpha)
}

// Clone returns a deep copy.
func (s *State) Clone() *State {
	return &State{
		Alpha:  slices.Clone(s.Alpha),
		Beta:   slices.Clone(s.Beta),
		Regret: s.Regret,
	}
}

// Means returns the posterior mean Alpha/(Alpha+Beta) of every arm.
func (s *State) Means() []float64 {
	theta := make([]float64, len(s.Alpha))
	for i := range s.Alpha {
		theta[i] = s.Alpha[i] / (s.Alpha[i] + s.Beta[i])
	}
	return theta
}

// Validate checks that the state can be sampled from: matching lengths, at
// least one arm, and strictly positive finite parameters. It matters only
// when a caller has edited Alpha or Beta directly.
func (s *State) Validate() error {
	if len(s.Alpha) == 0 {
		return goerr.Wrap(ErrEmptyArmSet, "state has no arms")
	}
	if len(s.Alpha) != len(s.Beta) {
		return goerr.Wrap(ErrArmCountMismatch, "alpha and beta differ in length",
			goerr.V("alpha", len(s.Alpha)), goerr.V("beta", len(s.Beta)))
	}
	for i := range s.Alpha {
		if !validParameter(s.Alpha[i]) || !validParameter(s.Beta[i]) {
			return goerr.Wrap(ErrDistributionParameter, "alpha and beta must be positive",
				goerr.V("arm", i), goerr.V("alpha", s.Alpha[i]), goerr.V("beta", s.Beta[i]))
		}
	}
	return nil
}

func validParameter(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func (s *State) checkOutcome(reward, arm int) error {
	if len(s.Alpha) != len(s.Beta) {
		return goerr.Wrap(ErrArmCountMismatch, "alpha and beta differ in length",
			goerr.V("alpha", len(s.Alpha)), goerr.V("beta", len(s.Beta)))
	}
	if arm < 0 || arm >= len(s.Alpha) {
		return goerr.Wrap(ErrIndexOutOfRange, "no such arm", goerr.V("arm", arm), goerr.V("n", len(s.Alpha)))
	}
	if reward != 0 && reward != 1 {
		return goerr.Wrap(ErrInvalidReward, "reward must be 0 or 1", goerr.V("reward", reward))
	}
	return nil
}
