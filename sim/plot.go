package sim

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/m-mizutani/goerr/v2"
)

// Plot renders one page with a line chart per averaged series. Every policy
// is one line.
func Plot(w io.Writer, results ...*PolicyAverage) error {
	if len(results) == 0 {
		return goerr.New("no results to plot")
	}

	numSteps := len(results[0].Regret)
	var steps []string
	for i := 0; i < numSteps; i++ {
		steps = append(steps, fmt.Sprintf("%d", i+1))
	}

	page := components.NewPage()
	page.AddCharts(
		lineChart("cumulative regret", "failed rounds on an arm whose posterior mean was below the best", steps, results,
			func(r *PolicyAverage) []float64 { return r.Regret }),
		lineChart("pseudo-regret", "sum of p* - p[arm]", steps, results,
			func(r *PolicyAverage) []float64 { return r.PseudoRegret }),
		lineChart("best arm share", "fraction of runs playing an optimal arm", steps, results,
			func(r *PolicyAverage) []float64 { return r.BestArmShare }),
		lineChart("average reward", "", steps, results,
			func(r *PolicyAverage) []float64 { return r.Reward }),
	)

	if err := page.Render(w); err != nil {
		return goerr.Wrap(err, "failed to render chart page")
	}
	return nil
}

func lineChart(title, subtitle string, steps []string, results []*PolicyAverage, series func(*PolicyAverage) []float64) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	line = line.SetXAxis(steps)
	for _, r := range results {
		values := series(r)
		items := make([]opts.LineData, 0, len(values))
		for _, v := range values {
			items = append(items, opts.LineData{Value: v})
		}
		line.AddSeries(r.Policy, items)
	}
	return line
}

// WriteChart renders the page to path, creating parent directories.
func WriteChart(path string, results ...*PolicyAverage) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return goerr.Wrap(err, "failed to create chart directory", goerr.V("path", path))
	}

	f, err := os.Create(path)
	if err != nil {
		return goerr.Wrap(err, "failed to create chart file", goerr.V("path", path))
	}
	return writeChart(f, results...)
}

func writeChart(w io.WriteCloser, results ...*PolicyAverage) (err error) {
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = goerr.Wrap(cerr, "failed to close chart file")
		}
	}()
	return Plot(w, results...)
}
