package bandit

// UpdatePrior applies the Beta-Bernoulli conjugate update to arm: a success
// adds one to Alpha[arm], a failure adds one to Beta[arm]. Other arms are
// not touched. After k successes and m failures an arm's posterior is
// Beta(1+k, 1+m).
func (s *State) UpdatePrior(reward, arm int) error {
	if err := s.checkOutcome(reward, arm); err != nil {
		return err
	}
	s.Alpha[arm] += float64(reward)
	s.Beta[arm] += float64(1 - reward)
	return nil
}
