package sim

import (
	"context"

	"github.com/Volodymyr-Myronenko/Multi-armed-bandit/bandit"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Loop plays rounds rounds against arms. Every round the agent's policy
// selects an arm, bandit.Pull applies the outcome to st, and a Learner
// policy is told the reward. The context is only checked between rounds.
func Loop(ctx context.Context, arms bandit.Arms, agent *Agent, st *bandit.State, src bandit.Source, rounds int) error {
	logger := ctxlog.From(ctx).With("agent", agent.ID.String(), "policy", agent.Policy.Name())

	for t := range rounds {
		if err := ctx.Err(); err != nil {
			return goerr.Wrap(err, "loop interrupted", goerr.V("round", t))
		}

		arm, err := agent.Policy.Select(st)
		if err != nil {
			return goerr.Wrap(err, "failed to select arm", goerr.V("round", t))
		}

		round, err := bandit.Pull(src, arms, st, arm)
		if err != nil {
			return goerr.Wrap(err, "failed to pull arm", goerr.V("round", t), goerr.V("arm", arm))
		}

		if learner, ok := agent.Policy.(Learner); ok {
			learner.Learn(round.Arm, round.Reward)
		}

		agent.Step(round)
		logger.Debug("round played",
			"round", t,
			"arm", round.Arm,
			"reward", round.Reward,
			"regret", round.Regret,
		)
	}

	return nil
}
