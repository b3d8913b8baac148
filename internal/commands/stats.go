package commands

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/urfave/cli/v3"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Summary сводная статистика по выборке.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	Median float64
	Min    float64
	Max    float64
}

// Summarize считает статистику по непустой выборке.
func Summarize(values []float64) Summary {
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	mean, std := stat.MeanStdDev(sorted, nil)
	return Summary{
		Count:  len(sorted),
		Mean:   mean,
		StdDev: std,
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Min:    floats.Min(sorted),
		Max:    floats.Max(sorted),
	}
}

func statsAction(w io.Writer) cli.ActionFunc {
	return func(_ context.Context, cmd *cli.Command) error {
		r, err := rangeFromFlags(cmd)
		if err != nil {
			return err
		}
		count, err := countFromFlags(cmd)
		if err != nil {
			return err
		}

		s := Summarize(r.TakeMany(count))
		_, err = fmt.Fprintf(w, "count: %d\nmean: %.6g\nstddev: %.6g\nmedian: %.6g\nmin: %.6g\nmax: %.6g\n",
			s.Count, s.Mean, s.StdDev, s.Median, s.Min, s.Max)
		return err
	}
}

func histAction(w io.Writer) cli.ActionFunc {
	return func(_ context.Context, cmd *cli.Command) error {
		r, err := rangeFromFlags(cmd)
		if err != nil {
			return err
		}
		count, err := countFromFlags(cmd)
		if err != nil {
			return err
		}
		bins := cmd.Int("bins")
		if bins < 1 {
			return fmt.Errorf("bins must be positive, got %d", bins)
		}

		out := cmd.String("out")
		if err = saveHistogram(r.TakeMany(count), bins, fmt.Sprintf("Range [%g, %g]", r.Min(), r.Max()), out); err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "histogram of %d values written to %s\n", count, out)
		return err
	}
}

// saveHistogram строит гистограмму значений и сохраняет ее в файл, формат по расширению.
func saveHistogram(values []float64, bins int, title, file string) error {
	h, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Value"
	p.Y.Label.Text = "Count"
	p.Add(h)
	return p.Save(20*vg.Centimeter, 10*vg.Centimeter, file)
}
