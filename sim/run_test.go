package sim_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Volodymyr-Myronenko/Multi-armed-bandit/bandit"
	"github.com/Volodymyr-Myronenko/Multi-armed-bandit/sim"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/gt"
)

func testContext() context.Context {
	logger := slog.New(slog.DiscardHandler)
	if os.Getenv("BANDIT_TEST_LOG") == "1" {
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return ctxlog.With(context.Background(), logger)
}

func TestRunPolicy(t *testing.T) {
	ctx := testContext()
	arms := bandit.Arms{0.2, 0.3, 0.8}
	src := bandit.NewSource(8)

	tr := gt.R1(sim.RunPolicy(ctx, arms, sim.NewThompsonPolicy(src), src, 2000)).NoError(t)
	gt.Equal(t, 2000, len(tr.Rounds))
	gt.Equal(t, 2000, len(tr.Regret))
	gt.Equal(t, "thompson", tr.Policy)
	gt.Equal(t, float64(tr.Final.Regret), tr.Regret[len(tr.Regret)-1])

	var pulls float64
	for i := range arms {
		pulls += tr.Final.Alpha[i] + tr.Final.Beta[i] - 2
	}
	gt.Equal(t, 2000.0, pulls)

	for i := 1; i < len(tr.PseudoRegret); i++ {
		gt.True(t, tr.PseudoRegret[i] >= tr.PseudoRegret[i-1])
		gt.True(t, tr.Regret[i] >= tr.Regret[i-1])
	}

	tail := 0.0
	for _, v := range tr.BestArm[1500:] {
		tail += v
	}
	gt.N(t, tail).Greater(250)
}

func TestRunPolicyErrors(t *testing.T) {
	ctx := testContext()
	src := bandit.NewSource(1)

	_, err := sim.RunPolicy(ctx, bandit.Arms{0.5}, sim.Greedy{}, src, 0)
	gt.True(t, errors.Is(err, sim.ErrInvalidRun))

	_, err = sim.RunPolicy(ctx, bandit.Arms{}, sim.Greedy{}, src, 10)
	gt.True(t, errors.Is(err, bandit.ErrEmptyArmSet))

	_, err = sim.RunPolicy(ctx, bandit.Arms{0.5, -1}, sim.Greedy{}, src, 10)
	gt.True(t, errors.Is(err, bandit.ErrInvalidProbability))
}

func TestLoopCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(testContext())
	cancel()

	arms := bandit.Arms{0.5, 0.5}
	st := gt.R1(bandit.New(arms)).NoError(t)
	agent := sim.NewAgent(sim.Greedy{})

	err := sim.Loop(ctx, arms, agent, st, bandit.NewSource(1), 10)
	gt.True(t, errors.Is(err, context.Canceled))
	gt.Equal(t, 0, len(agent.History))
}

func TestLoopCallsLearner(t *testing.T) {
	arms := bandit.Arms{1, 0}
	st := gt.R1(bandit.New(arms)).NoError(t)
	src := bandit.NewSource(4)
	g := &sim.GradientBandit{StepSize: 0.2, Src: src}
	agent := sim.NewAgent(g)

	gt.NoError(t, sim.Loop(testContext(), arms, agent, st, src, 200))
	gt.Equal(t, 200, len(agent.History))
	// arm 0 always pays, arm 1 never does
	gt.True(t, g.Preferences[0] > g.Preferences[1])
}

func TestRunPolicyRepeatedly(t *testing.T) {
	ctx := testContext()
	arms := bandit.Arms{0.2, 0.3, 0.8}

	thompson := gt.R1(sim.NewFactory(sim.Spec{Kind: sim.KindThompson})).NoError(t)
	greedy := gt.R1(sim.NewFactory(sim.Spec{Kind: sim.KindGreedy})).NoError(t)

	ts := gt.R1(sim.RunPolicyRepeatedly(ctx, arms, thompson, 30, 500, 100)).NoError(t)
	gr := gt.R1(sim.RunPolicyRepeatedly(ctx, arms, greedy, 30, 500, 100)).NoError(t)

	gt.Equal(t, "thompson", ts.Policy)
	gt.Equal(t, 30, ts.Runs)
	gt.Equal(t, 500, len(ts.Regret))
	gt.True(t, math.Abs(ts.Regret[499]-ts.FinalRegretMean) < 1e-9)
	gt.True(t, ts.FinalRegretStdDev >= 0)

	for _, share := range ts.BestArmShare {
		gt.True(t, share >= 0 && share <= 1)
	}

	gt.True(t, ts.PseudoRegret[499] < gr.PseudoRegret[499])

	t.Run("same seed same result", func(t *testing.T) {
		again := gt.R1(sim.RunPolicyRepeatedly(ctx, arms, thompson, 30, 500, 100)).NoError(t)
		gt.Equal(t, ts.Regret, again.Regret)
		gt.Equal(t, ts.BestArmShare, again.BestArmShare)
	})

	t.Run("single run has zero spread", func(t *testing.T) {
		one := gt.R1(sim.RunPolicyRepeatedly(ctx, arms, thompson, 1, 50, 3)).NoError(t)
		gt.Equal(t, 0.0, one.FinalRegretStdDev)
	})

	t.Run("invalid runs", func(t *testing.T) {
		_, err := sim.RunPolicyRepeatedly(ctx, arms, thompson, 0, 50, 3)
		gt.True(t, errors.Is(err, sim.ErrInvalidRun))
		_, err = sim.RunPolicyRepeatedly(ctx, arms, thompson, 2, 0, 3)
		gt.True(t, errors.Is(err, sim.ErrInvalidRun))
	})
}

func TestPlot(t *testing.T) {
	ctx := testContext()
	arms := bandit.Arms{0.4, 0.6}

	var results []*sim.PolicyAverage
	for _, spec := range []sim.Spec{
		{Kind: sim.KindThompson},
		{Kind: sim.KindEpsilonGreedy, Epsilon: 0.1},
	} {
		f := gt.R1(sim.NewFactory(spec)).NoError(t)
		results = append(results, gt.R1(sim.RunPolicyRepeatedly(ctx, arms, f, 3, 20, 1)).NoError(t))
	}

	var buf bytes.Buffer
	gt.NoError(t, sim.Plot(&buf, results...))
	gt.True(t, strings.Contains(buf.String(), "thompson"))
	gt.True(t, strings.Contains(buf.String(), "e-greedy-0.1"))

	gt.Error(t, sim.Plot(&buf))

	path := filepath.Join(t.TempDir(), "charts", "bandit.html")
	gt.NoError(t, sim.WriteChart(path, results...))
	info := gt.R1(os.Stat(path)).NoError(t)
	gt.True(t, info.Size() > 0)
}

type failingCloser struct {
	bytes.Buffer
	closed bool
}

func (f *failingCloser) Close() error {
	f.closed = true
	return errors.New("disk full")
}

func TestWriteChartReportsCloseError(t *testing.T) {
	ctx := testContext()
	f := gt.R1(sim.NewFactory(sim.Spec{Kind: sim.KindThompson})).NoError(t)
	avg := gt.R1(sim.RunPolicyRepeatedly(ctx, bandit.Arms{0.4, 0.6}, f, 2, 10, 1)).NoError(t)

	w := &failingCloser{}
	err := sim.WriteChartTo(w, avg)
	gt.Error(t, err)
	gt.True(t, strings.Contains(err.Error(), "disk full"))
	gt.True(t, w.closed)
	gt.True(t, w.Len() > 0)

	t.Run("plot error wins", func(t *testing.T) {
		w := &failingCloser{}
		err := sim.WriteChartTo(w)
		gt.Error(t, err)
		gt.False(t, strings.Contains(err.Error(), "disk full"))
		gt.True(t, w.closed)
	})
}
