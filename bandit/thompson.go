package bandit

import (
	"math"

	"github.com/m-mizutani/goerr/v2"
)

// Sampler picks arms by Thompson Sampling: one draw from every arm's
// posterior, highest draw wins.
type Sampler struct {
	src Source
}

func NewSampler(src Source) *Sampler {
	return &Sampler{src: src}
}

// Choose draws s_i ~ Beta(Alpha[i], Beta[i]) for every arm in index order and
// returns the argmax. Ties go to the lowest index.
func (s *Sampler) Choose(st *State) (int, error) {
	if err := st.Validate(); err != nil {
		return 0, err
	}

	chosen := 0
	best := math.Inf(-1)
	for i := range st.Alpha {
		v := s.src.Beta(st.Alpha[i], st.Beta[i])
		if v > best {
			best = v
			chosen = i
		}
	}
	return chosen, nil
}

// Step runs one full round: choose an arm, play it, update the posterior
// and the regret. All inputs are checked before anything is drawn or
// mutated, so a rejected call leaves st as it was.
func (s *Sampler) Step(arms Arms, st *State) (Round, error) {
	if err := checkEnvironment(arms, st); err != nil {
		return Round{}, err
	}

	arm, err := s.Choose(st)
	if err != nil {
		return Round{}, err
	}
	return Pull(s.src, arms, st, arm)
}

// Pull plays arm, whichever policy chose it, and applies the same posterior
// and regret updates as Step.
func Pull(src Source, arms Arms, st *State, arm int) (Round, error) {
	if err := checkEnvironment(arms, st); err != nil {
		return Round{}, err
	}
	if arm < 0 || arm >= len(arms) {
		return Round{}, goerr.Wrap(ErrIndexOutOfRange, "no such arm", goerr.V("arm", arm), goerr.V("n", len(arms)))
	}

	reward, err := Evaluate(src, arms[arm])
	if err != nil {
		return Round{}, err
	}
	if err := st.UpdatePrior(reward, arm); err != nil {
		return Round{}, err
	}
	if err := st.UpdateRegret(reward, arm); err != nil {
		return Round{}, err
	}

	return Round{Arm: arm, Reward: reward, Regret: st.Regret}, nil
}

func checkEnvironment(arms Arms, st *State) error {
	if err := arms.Validate(); err != nil {
		return err
	}
	if err := st.Validate(); err != nil {
		return err
	}
	if len(arms) != st.Len() {
		return goerr.Wrap(ErrArmCountMismatch, "state and arms differ in length",
			goerr.V("arms", len(arms)), goerr.V("state", st.Len()))
	}
	return nil
}
