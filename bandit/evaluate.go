package bandit

// Evaluate plays an arm whose true success probability is trueProb and
// returns 1 on success, 0 on failure. The draw u is uniform on [0,1) and the
// comparison is u <= trueProb, so trueProb == 1 always succeeds and
// trueProb == 0 succeeds only when u is exactly 0.
//
// An out-of-range probability is rejected before any draw is consumed.
func Evaluate(src Source, trueProb float64) (int, error) {
	if err := checkProbability(trueProb); err != nil {
		return 0, err
	}
	if src.Float64() <= trueProb {
		return 1, nil
	}
	return 0, nil
}
