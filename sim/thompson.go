package sim

import "github.com/Volodymyr-Myronenko/Multi-armed-bandit/bandit"

// ThompsonPolicy selects arms with bandit.Sampler.
type ThompsonPolicy struct {
	sampler *bandit.Sampler
}

func NewThompsonPolicy(src bandit.Source) *ThompsonPolicy {
	return &ThompsonPolicy{sampler: bandit.NewSampler(src)}
}

func (p *ThompsonPolicy) Name() string {
	return "thompson"
}

func (p *ThompsonPolicy) Select(st *bandit.State) (int, error) {
	return p.sampler.Choose(st)
}
