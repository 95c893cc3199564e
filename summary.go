package main

import (
	"fmt"
	"io"

	"github.com/Volodymyr-Myronenko/Multi-armed-bandit/bandit"
	"github.com/Volodymyr-Myronenko/Multi-armed-bandit/config"
	"github.com/Volodymyr-Myronenko/Multi-armed-bandit/sim"
	"github.com/logrusorgru/aurora"
)

func printRunSummary(w io.Writer, arms bandit.Arms, st *bandit.State) {
	best := arms.Best()
	means := st.Means()
	estimator := sim.SampleAverage{State: st}

	fmt.Fprintln(w, aurora.Bold(fmt.Sprintf("%-5s %-8s %-8s %-8s", "arm", "true p", "pulls", "mean")))
	for i := range arms {
		row := fmt.Sprintf("%-5d %-8.3f %-8d %-8.3f", i, arms[i], estimator.Count(i), means[i])
		if i == best {
			fmt.Fprintln(w, aurora.Green(row))
		} else {
			fmt.Fprintln(w, aurora.Blue(row))
		}
	}
	fmt.Fprintln(w, aurora.Yellow(fmt.Sprintf("final regret: %d", st.Regret)))
}

func printComparison(w io.Writer, cfg config.Experiment, results []*sim.PolicyAverage) {
	fmt.Fprintf(w, "arms %v, %d runs of %d rounds, seed %d\n", cfg.Arms, cfg.Runs, cfg.Rounds, cfg.Seed)
	fmt.Fprintln(w, aurora.Bold(fmt.Sprintf("%-36s %-18s %-14s %-10s", "policy", "regret (mean±sd)", "pseudo-regret", "best arm")))

	winner := 0
	for i, r := range results {
		if last(r.PseudoRegret) < last(results[winner].PseudoRegret) {
			winner = i
		}
	}

	for i, r := range results {
		row := fmt.Sprintf("%-36s %-18s %-14.2f %-10.3f",
			r.Policy,
			fmt.Sprintf("%.2f±%.2f", r.FinalRegretMean, r.FinalRegretStdDev),
			last(r.PseudoRegret),
			tailMean(r.BestArmShare),
		)
		if i == winner {
			fmt.Fprintln(w, aurora.Green(row))
		} else {
			fmt.Fprintln(w, aurora.White(row))
		}
	}
}

func last(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	return v[len(v)-1]
}

// tailMean averages the last tenth of v.
func tailMean(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	n := max(len(v)/10, 1)
	sum := 0.0
	for _, x := range v[len(v)-n:] {
		sum += x
	}
	return sum / float64(n)
}
