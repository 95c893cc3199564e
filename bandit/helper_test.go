package bandit_test

// scriptedSource replays fixed draws so a round can be asserted exactly.
type scriptedSource struct {
	uniforms []float64
	betas    []float64
	calls    int
}

func (s *scriptedSource) Float64() float64 {
	s.calls++
	v := s.uniforms[0]
	s.uniforms = s.uniforms[1:]
	return v
}

func (s *scriptedSource) Beta(_, _ float64) float64 {
	s.calls++
	v := s.betas[0]
	s.betas = s.betas[1:]
	return v
}
