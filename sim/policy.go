package sim

import (
	"github.com/Volodymyr-Myronenko/Multi-armed-bandit/bandit"
	"github.com/m-mizutani/goerr/v2"
)

// Policy picks the next arm from the current belief state. It must not
// modify the state; the loop applies the round's outcome.
type Policy interface {
	Name() string

	Select(st *bandit.State) (int, error)
}

// Learner is implemented by policies that keep their own statistics on top
// of the shared state. The loop calls Learn after every round.
type Learner interface {
	Learn(arm, reward int)
}

type Kind string

const (
	KindThompson      Kind = "thompson"
	KindGreedy        Kind = "greedy"
	KindEpsilonGreedy Kind = "e-greedy"
	KindGradient      Kind = "gradient"
)

// Spec describes a policy and its parameters. Fields that do not apply to
// Kind are ignored.
type Spec struct {
	Kind     Kind    `yaml:"kind"`
	Epsilon  float64 `yaml:"epsilon"`
	StepSize float64 `yaml:"step_size"`
	Baseline bool    `yaml:"baseline"`
	Initial  float64 `yaml:"initial"`
}

// Factory returns a fresh policy drawing from src. Repeated runs call it
// once per run so no statistics leak between trajectories.
type Factory func(src bandit.Source) Policy

func NewFactory(spec Spec) (Factory, error) {
	switch spec.Kind {
	case KindThompson:
		return func(src bandit.Source) Policy {
			return NewThompsonPolicy(src)
		}, nil

	case KindGreedy:
		return func(_ bandit.Source) Policy {
			return Greedy{InitialEstimate: spec.Initial}
		}, nil

	case KindEpsilonGreedy:
		if spec.Epsilon < 0 || spec.Epsilon > 1 {
			return nil, goerr.Wrap(ErrInvalidPolicy, "epsilon must be in [0,1]", goerr.V("epsilon", spec.Epsilon))
		}
		return func(src bandit.Source) Policy {
			return GreedyEpsilon{Epsilon: spec.Epsilon, InitialEstimate: spec.Initial, Src: src}
		}, nil

	case KindGradient:
		if spec.StepSize <= 0 {
			return nil, goerr.Wrap(ErrInvalidPolicy, "step size must be positive", goerr.V("step_size", spec.StepSize))
		}
		return func(src bandit.Source) Policy {
			return &GradientBandit{StepSize: spec.StepSize, UseBaseline: spec.Baseline, Src: src}
		}, nil

	default:
		return nil, goerr.Wrap(ErrUnknownPolicy, "no such policy", goerr.V("kind", spec.Kind))
	}
}
