package sim

import (
	"context"
	"math"

	"github.com/Volodymyr-Myronenko/Multi-armed-bandit/bandit"
	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Trajectory is one run of a policy, with per-round series derived from the
// agent's history.
type Trajectory struct {
	AgentID uuid.UUID
	Policy  string
	Rounds  []bandit.Round
	Final   *bandit.State

	Reward []float64
	// Regret is the state's heuristic regret after each round.
	Regret []float64
	// PseudoRegret is the textbook cumulative sum of p* - p[arm]. It is
	// reported next to Regret and never feeds back into the state.
	PseudoRegret []float64
	// BestArm is 1 for rounds where an arm with the highest true
	// probability was played.
	BestArm []float64
}

// PolicyAverage is the per-round mean of many independent trajectories.
type PolicyAverage struct {
	Policy string
	Runs   int

	Reward       []float64
	Regret       []float64
	PseudoRegret []float64
	BestArmShare []float64

	FinalRegretMean   float64
	FinalRegretStdDev float64
}

// Single run with a given policy and source.
func RunPolicy(ctx context.Context, arms bandit.Arms, policy Policy, src bandit.Source, rounds int) (*Trajectory, error) {
	if rounds < 1 {
		return nil, goerr.Wrap(ErrInvalidRun, "rounds must be positive", goerr.V("rounds", rounds))
	}

	st, err := bandit.New(arms)
	if err != nil {
		return nil, err
	}

	agent := NewAgent(policy)
	agent.History = make([]bandit.Round, 0, rounds)
	if err := Loop(ctx, arms, agent, st, src, rounds); err != nil {
		return nil, err
	}

	tr := &Trajectory{
		AgentID:      agent.ID,
		Policy:       policy.Name(),
		Rounds:       agent.History,
		Final:        st,
		Reward:       make([]float64, len(agent.History)),
		Regret:       make([]float64, len(agent.History)),
		PseudoRegret: make([]float64, len(agent.History)),
		BestArm:      make([]float64, len(agent.History)),
	}

	best := floats.Max(arms)
	gap := 0.0
	for t, r := range agent.History {
		gap += best - arms[r.Arm]
		tr.Reward[t] = float64(r.Reward)
		tr.Regret[t] = float64(r.Regret)
		tr.PseudoRegret[t] = gap
		if arms[r.Arm] == best {
			tr.BestArm[t] = 1
		}
	}

	return tr, nil
}

// RunPolicyRepeatedly plays runs independent trajectories one after another.
// Run i gets a fresh state, a fresh policy from newPolicy and
// bandit.NewSource(seed+i).
func RunPolicyRepeatedly(ctx context.Context, arms bandit.Arms, newPolicy Factory, runs, rounds int, seed uint64) (*PolicyAverage, error) {
	if runs < 1 {
		return nil, goerr.Wrap(ErrInvalidRun, "runs must be positive", goerr.V("runs", runs))
	}
	if rounds < 1 {
		return nil, goerr.Wrap(ErrInvalidRun, "rounds must be positive", goerr.V("rounds", rounds))
	}

	avg := &PolicyAverage{
		Runs:         runs,
		Reward:       make([]float64, rounds),
		Regret:       make([]float64, rounds),
		PseudoRegret: make([]float64, rounds),
		BestArmShare: make([]float64, rounds),
	}
	finals := make([]float64, 0, runs)

	for i := range runs {
		src := bandit.NewSource(seed + uint64(i))
		tr, err := RunPolicy(ctx, arms, newPolicy(src), src, rounds)
		if err != nil {
			return nil, goerr.Wrap(err, "run failed", goerr.V("run", i), goerr.V("seed", seed+uint64(i)))
		}

		avg.Policy = tr.Policy
		floats.Add(avg.Reward, tr.Reward)
		floats.Add(avg.Regret, tr.Regret)
		floats.Add(avg.PseudoRegret, tr.PseudoRegret)
		floats.Add(avg.BestArmShare, tr.BestArm)
		finals = append(finals, float64(tr.Final.Regret))
	}

	scale := 1 / float64(runs)
	floats.Scale(scale, avg.Reward)
	floats.Scale(scale, avg.Regret)
	floats.Scale(scale, avg.PseudoRegret)
	floats.Scale(scale, avg.BestArmShare)

	avg.FinalRegretMean, avg.FinalRegretStdDev = stat.MeanStdDev(finals, nil)
	if math.IsNaN(avg.FinalRegretStdDev) {
		avg.FinalRegretStdDev = 0
	}

	ctxlog.From(ctx).Info("policy evaluated",
		"policy", avg.Policy,
		"runs", runs,
		"rounds", rounds,
		"final_regret_mean", avg.FinalRegretMean,
		"final_regret_stddev", avg.FinalRegretStdDev,
	)
	return avg, nil
}
