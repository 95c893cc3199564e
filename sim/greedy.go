package sim

import (
	"fmt"

	"github.com/Volodymyr-Myronenko/Multi-armed-bandit/bandit"
)

type Greedy struct {
	InitialEstimate float64
}

func (g Greedy) Name() string {
	return "greedy"
}

func (g Greedy) Select(st *bandit.State) (int, error) {
	return SampleAverage{State: st, Initial: g.InitialEstimate}.Argmax()
}

type GreedyEpsilon struct {
	Epsilon         float64
	InitialEstimate float64
	Src             bandit.Source
}

func (g GreedyEpsilon) Name() string {
	return fmt.Sprintf("e-greedy-%g", g.Epsilon)
}

// Select plays the greedy arm with probability 1-Epsilon+Epsilon/n and every
// other arm with probability Epsilon/n.
func (g GreedyEpsilon) Select(st *bandit.State) (int, error) {
	maxArm, err := SampleAverage{State: st, Initial: g.InitialEstimate}.Argmax()
	if err != nil {
		return 0, err
	}

	n := st.Len()
	pdf := make([]float64, n)
	for arm := range pdf {
		pdf[arm] = g.Epsilon / float64(n)
	}
	pdf[maxArm] += 1 - g.Epsilon

	return choose(pdf, g.Src.Float64()), nil
}

// choose returns the first index whose cumulative probability exceeds u.
func choose(pdf []float64, u float64) int {
	cumulative := 0.0
	for i, p := range pdf {
		cumulative += p
		if u < cumulative {
			return i
		}
	}
	return len(pdf) - 1
}
