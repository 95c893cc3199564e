package bandit

import "gonum.org/v1/gonum/floats"

// UpdateRegret charges one point of regret when the round failed and the
// chosen arm's posterior mean is strictly below the best posterior mean.
// Means are taken from the state as it is now, so callers run it after
// UpdatePrior and the failure just observed already counts against arm.
//
// This is a heuristic count of "failed while looking sub-optimal" rounds.
// It is not the textbook expected regret, which sums p* - p[arm] over rounds
// and needs the true probabilities.
func (s *State) UpdateRegret(reward, arm int) error {
	if err := s.checkOutcome(reward, arm); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}
	if reward == 1 {
		return nil
	}

	theta := s.Means()
	if theta[arm] < floats.Max(theta) {
		s.Regret++
	}
	return nil
}
