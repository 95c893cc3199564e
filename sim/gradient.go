package sim

import (
	"fmt"
	"math"

	"github.com/Volodymyr-Myronenko/Multi-armed-bandit/bandit"
)

// baselineRate is the weight of the newest reward in the baseline average.
const baselineRate = 0.1

// GradientBandit keeps a preference per arm and plays softmax(preferences).
// It ignores the Beta state except for its size.
type GradientBandit struct {
	StepSize      float64
	UseBaseline   bool
	Src           bandit.Source
	Preferences   []float64
	AverageReward float64
}

func (g *GradientBandit) Name() string {
	return fmt.Sprintf("gradient (α=%.2f, baseline=%v)", g.StepSize, g.UseBaseline)
}

func (g *GradientBandit) Select(st *bandit.State) (int, error) {
	if g.Preferences == nil {
		g.Preferences = make([]float64, st.Len())
	}
	return choose(softmaxStable(g.Preferences), g.Src.Float64()), nil
}

func (g *GradientBandit) Learn(arm, reward int) {
	pi := softmaxStable(g.Preferences)

	baseline := 0.0
	if g.UseBaseline {
		g.AverageReward += baselineRate * (float64(reward) - g.AverageReward)
		baseline = g.AverageReward
	}

	adv := float64(reward) - baseline
	for a := range g.Preferences {
		if a == arm {
			g.Preferences[a] += g.StepSize * adv * (1 - pi[a])
		} else {
			g.Preferences[a] -= g.StepSize * adv * pi[a]
		}
	}
}

// softmaxStable subtracts the largest preference before exponentiating.
func softmaxStable(prefs []float64) []float64 {
	maxH := math.Inf(-1)
	for _, h := range prefs {
		if h > maxH {
			maxH = h
		}
	}

	sum := 0.0
	pi := make([]float64, len(prefs))
	for a, h := range prefs {
		pi[a] = math.Exp(h - maxH)
		sum += pi[a]
	}
	for a := range pi {
		pi[a] /= sum
	}
	return pi
}
