package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Volodymyr-Myronenko/Multi-armed-bandit/bandit"
	"github.com/Volodymyr-Myronenko/Multi-armed-bandit/config"
	"github.com/Volodymyr-Myronenko/Multi-armed-bandit/sim"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "bandit",
		Usage: "Bernoulli multi-armed bandit simulator",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Sources: cli.EnvVars("BANDIT_LOG_LEVEL"),
				Usage:   "Log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:    "log-format",
				Value:   "text",
				Sources: cli.EnvVars("BANDIT_LOG_FORMAT"),
				Usage:   "Log format (text, json)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logger, err := newLogger(stderr(cmd), cmd.String("log-level"), cmd.String("log-format"))
			if err != nil {
				return ctx, err
			}
			return ctxlog.With(ctx, logger), nil
		},
		Commands: []*cli.Command{
			runCommand(),
			compareCommand(),
		},
	}
}

func runCommand() *cli.Command {
	defaults := config.Default()

	return &cli.Command{
		Name:  "run",
		Usage: "Play one Thompson Sampling trajectory and print the final beliefs",
		Flags: []cli.Flag{
			&cli.FloatSliceFlag{
				Name:    "arms",
				Value:   defaults.Arms,
				Sources: cli.EnvVars("BANDIT_ARMS"),
				Usage:   "True success probability of every arm",
			},
			&cli.IntFlag{
				Name:    "rounds",
				Value:   defaults.Rounds,
				Sources: cli.EnvVars("BANDIT_ROUNDS"),
				Usage:   "Number of rounds",
			},
			&cli.Uint64Flag{
				Name:    "seed",
				Value:   defaults.Seed,
				Sources: cli.EnvVars("BANDIT_SEED"),
				Usage:   "Random seed",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Print every round",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			arms := bandit.Arms(cmd.FloatSlice("arms"))
			rounds := cmd.Int("rounds")
			if rounds < 1 {
				return goerr.Wrap(sim.ErrInvalidRun, "rounds must be positive", goerr.V("rounds", rounds))
			}

			st, err := bandit.New(arms)
			if err != nil {
				return err
			}

			w := stdout(cmd)
			sampler := bandit.NewSampler(bandit.NewSource(cmd.Uint64("seed")))
			for t := range rounds {
				if err := ctx.Err(); err != nil {
					return goerr.Wrap(err, "run interrupted", goerr.V("round", t))
				}
				round, err := sampler.Step(arms, st)
				if err != nil {
					return goerr.Wrap(err, "step failed", goerr.V("round", t))
				}
				if cmd.Bool("verbose") {
					fmt.Fprintf(w, "round %6d: arm %d reward %d regret %d\n", t+1, round.Arm, round.Reward, round.Regret)
				}
			}

			ctxlog.From(ctx).Info("trajectory finished", "rounds", rounds, "regret", st.Regret)
			printRunSummary(w, arms, st)
			return nil
		},
	}
}

func compareCommand() *cli.Command {
	return &cli.Command{
		Name:  "compare",
		Usage: "Average many independent runs of each policy and chart the curves",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Sources: cli.EnvVars("BANDIT_CONFIG"),
				Usage:   "Experiment YAML file",
			},
			&cli.FloatSliceFlag{
				Name:    "arms",
				Sources: cli.EnvVars("BANDIT_ARMS"),
				Usage:   "True success probability of every arm (overrides config)",
			},
			&cli.IntFlag{
				Name:    "rounds",
				Sources: cli.EnvVars("BANDIT_ROUNDS"),
				Usage:   "Rounds per run (overrides config)",
			},
			&cli.IntFlag{
				Name:    "runs",
				Sources: cli.EnvVars("BANDIT_RUNS"),
				Usage:   "Independent runs per policy (overrides config)",
			},
			&cli.Uint64Flag{
				Name:    "seed",
				Sources: cli.EnvVars("BANDIT_SEED"),
				Usage:   "Seed of the first run (overrides config)",
			},
			&cli.StringFlag{
				Name:    "chart",
				Sources: cli.EnvVars("BANDIT_CHART"),
				Usage:   "Output HTML file (overrides config)",
			},
			&cli.StringFlag{
				Name:    "serve",
				Sources: cli.EnvVars("BANDIT_SERVE"),
				Usage:   "Serve the chart directory on this address after the run, e.g. localhost:8089",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return err
			}
			if cmd.IsSet("arms") {
				cfg.Arms = cmd.FloatSlice("arms")
			}
			if cmd.IsSet("rounds") {
				cfg.Rounds = cmd.Int("rounds")
			}
			if cmd.IsSet("runs") {
				cfg.Runs = cmd.Int("runs")
			}
			if cmd.IsSet("seed") {
				cfg.Seed = cmd.Uint64("seed")
			}
			if cmd.IsSet("chart") {
				cfg.Chart = cmd.String("chart")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			results, err := compare(ctx, cfg)
			if err != nil {
				return err
			}
			printComparison(stdout(cmd), cfg, results)

			if err := sim.WriteChart(cfg.Chart, results...); err != nil {
				return err
			}
			ctxlog.From(ctx).Info("chart written", "path", cfg.Chart)

			if addr := cmd.String("serve"); addr != "" {
				return serveCharts(ctx, addr, filepath.Dir(cfg.Chart))
			}
			return nil
		},
	}
}

func compare(ctx context.Context, cfg config.Experiment) ([]*sim.PolicyAverage, error) {
	factories, err := cfg.Factories()
	if err != nil {
		return nil, err
	}

	results := make([]*sim.PolicyAverage, 0, len(factories))
	for i, f := range factories {
		res, err := sim.RunPolicyRepeatedly(ctx, cfg.Arms, f, cfg.Runs, cfg.Rounds, cfg.Seed)
		if err != nil {
			return nil, goerr.Wrap(err, "policy failed", goerr.V("policy", cfg.Policies[i].Kind))
		}
		results = append(results, res)
	}
	return results, nil
}

func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func stderr(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}
