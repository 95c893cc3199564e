package config

import (
	"errors"
	"os"

	"github.com/Volodymyr-Myronenko/Multi-armed-bandit/bandit"
	"github.com/Volodymyr-Myronenko/Multi-armed-bandit/sim"
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid experiment config")

// Experiment is one comparison of policies on a fixed set of arms.
type Experiment struct {
	Arms     bandit.Arms `yaml:"arms"`
	Rounds   int         `yaml:"rounds"`
	Runs     int         `yaml:"runs"`
	Seed     uint64      `yaml:"seed"`
	Policies []sim.Spec  `yaml:"policies"`
	Chart    string      `yaml:"chart"`
}

// Default is the experiment used when no file is given.
func Default() Experiment {
	return Experiment{
		Arms:   bandit.Arms{0.2, 0.3, 0.8},
		Rounds: 1000,
		Runs:   200,
		Seed:   1,
		Policies: []sim.Spec{
			{Kind: sim.KindThompson},
			{Kind: sim.KindGreedy},
			{Kind: sim.KindEpsilonGreedy, Epsilon: 0.1},
			{Kind: sim.KindGradient, StepSize: 0.1, Baseline: true},
		},
		Chart: "charts/bandit.html",
	}
}

// Load reads path over the defaults. Keys missing from the file keep their
// default values; a policies list in the file replaces the default list.
// An empty path returns the defaults.
func Load(path string) (Experiment, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, goerr.Wrap(err, "failed to read config file", goerr.V("path", path))
	}

	var file Experiment
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return cfg, goerr.Wrap(err, "failed to parse config file", goerr.V("path", path))
	}
	cfg.merge(file)

	return cfg, nil
}

func (c *Experiment) merge(o Experiment) {
	if o.Arms != nil {
		c.Arms = o.Arms
	}
	if o.Rounds != 0 {
		c.Rounds = o.Rounds
	}
	if o.Runs != 0 {
		c.Runs = o.Runs
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
	if o.Policies != nil {
		c.Policies = o.Policies
	}
	if o.Chart != "" {
		c.Chart = o.Chart
	}
}

func (c Experiment) Validate() error {
	if err := c.Arms.Validate(); err != nil {
		return goerr.Wrap(errors.Join(ErrInvalidConfig, err), "bad arms")
	}
	if c.Rounds < 1 {
		return goerr.Wrap(ErrInvalidConfig, "rounds must be positive", goerr.V("rounds", c.Rounds))
	}
	if c.Runs < 1 {
		return goerr.Wrap(ErrInvalidConfig, "runs must be positive", goerr.V("runs", c.Runs))
	}
	if len(c.Policies) == 0 {
		return goerr.Wrap(ErrInvalidConfig, "at least one policy is required")
	}
	for i, spec := range c.Policies {
		if _, err := sim.NewFactory(spec); err != nil {
			return goerr.Wrap(errors.Join(ErrInvalidConfig, err), "bad policy", goerr.V("index", i))
		}
	}
	return nil
}

// Factories builds one factory per configured policy, in order.
func (c Experiment) Factories() ([]sim.Factory, error) {
	factories := make([]sim.Factory, 0, len(c.Policies))
	for _, spec := range c.Policies {
		f, err := sim.NewFactory(spec)
		if err != nil {
			return nil, err
		}
		factories = append(factories, f)
	}
	return factories, nil
}
