// Package commands описывает команды утилиты rangerand.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/maynagashev/go-rangerand/pkg/random"
)

const (
	defaultStatsCount = 10_000
	defaultBins       = 20
	defaultServer     = "http://localhost:8080"
)

var errCount = errors.New("count must be positive")

// New возвращает корневую команду, весь вывод идет в w.
func New(w io.Writer) *cli.Command {
	return &cli.Command{
		Name:                   "rangerand",
		Usage:                  "Random values from numeric ranges",
		UseShortOptionHandling: true,
		Writer:                 w,
		Commands: []*cli.Command{
			{
				Name:   "sample",
				Usage:  "Draw values from a range, one per line",
				Flags:  append(rangeFlags(), countFlag(1)),
				Action: sampleAction(w),
			},
			{
				Name:   "describe",
				Usage:  "Print the serialized range with its center and half width",
				Flags:  rangeFlags(),
				Action: describeAction(w),
			},
			{
				Name:   "stats",
				Usage:  "Draw values and print summary statistics",
				Flags:  append(rangeFlags(), countFlag(defaultStatsCount)),
				Action: statsAction(w),
			},
			{
				Name:  "hist",
				Usage: "Draw values and save a histogram as an image",
				Flags: append(rangeFlags(),
					countFlag(defaultStatsCount),
					&cli.IntFlag{Name: "bins", Aliases: []string{"b"}, Usage: "Histogram bins", Value: defaultBins},
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "Output file (png, svg, pdf)", Value: "hist.png"},
				),
				Action: histAction(w),
			},
			{
				Name:      "choice",
				Usage:     "Print one of the arguments",
				ArgsUsage: "<item> [item...]",
				Action:    choiceAction(w),
			},
			{
				Name:      "shuffle",
				Usage:     "Print the arguments in random order",
				ArgsUsage: "[item...]",
				Action:    shuffleAction(w),
			},
			{
				Name:  "remote",
				Usage: "Draw values through the HTTP service",
				Flags: append(rangeFlags(),
					countFlag(1),
					&cli.StringFlag{
						Name:    "server",
						Usage:   "Service base URL",
						Value:   defaultServer,
						Sources: cli.EnvVars("RANGERAND_SERVER"),
					},
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "Stored range name"},
				),
				Action: remoteAction(w),
			},
		},
	}
}

func rangeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "range", Aliases: []string{"r"}, Usage: `Serialized range, e.g. '{"min": 1, "max": 6, "step": 1}'`},
		&cli.FloatFlag{Name: "min", Usage: "Lower bound", Value: 0},
		&cli.FloatFlag{Name: "max", Usage: "Upper bound", Value: 1},
		&cli.FloatFlag{Name: "center", Usage: "Range center, used with --delta"},
		&cli.FloatFlag{Name: "delta", Usage: "Distance from the center to the bounds"},
		&cli.FloatFlag{Name: "step", Aliases: []string{"s"}, Usage: "Lattice step, 0 for continuous values"},
		&cli.BoolFlag{Name: "strict", Usage: "Round values to the step's decimal places"},
		&cli.IntFlag{Name: "seed", Usage: "Seed for a reproducible sequence"},
		&cli.BoolFlag{Name: "crypto", Usage: "Use the operating system's secure random source"},
	}
}

func countFlag(value int) cli.Flag {
	return &cli.IntFlag{Name: "count", Aliases: []string{"c"}, Usage: "Number of values", Value: value}
}

// rangeFromFlags собирает диапазон из флагов: --range, затем --center/--delta, затем --min/--max.
func rangeFromFlags(cmd *cli.Command) (random.Range, error) {
	var (
		r   random.Range
		err error
	)

	opts := []random.Option{
		random.WithStep(cmd.Float("step")),
		random.WithStrictPrecision(cmd.Bool("strict")),
	}

	switch {
	case cmd.IsSet("range"):
		if r, err = random.Parse(cmd.String("range")); err != nil {
			return random.Range{}, err
		}
	case cmd.IsSet("center") || cmd.IsSet("delta"):
		r = random.FromCenter(cmd.Float("center"), cmd.Float("delta"), opts...)
	default:
		r = random.New(cmd.Float("min"), cmd.Float("max"), opts...)
	}

	switch {
	case cmd.IsSet("seed"):
		r = r.WithSource(random.NewSeededSource(uint64(cmd.Int("seed")))) //nolint:gosec // зерно может быть любым
	case cmd.Bool("crypto"):
		r = r.WithSource(random.NewCryptoSource())
	}
	return r, nil
}

func countFromFlags(cmd *cli.Command) (int, error) {
	count := cmd.Int("count")
	if count < 1 {
		return 0, fmt.Errorf("%w, got %d", errCount, count)
	}
	return count, nil
}

func sampleAction(w io.Writer) cli.ActionFunc {
	return func(_ context.Context, cmd *cli.Command) error {
		r, err := rangeFromFlags(cmd)
		if err != nil {
			return err
		}
		count, err := countFromFlags(cmd)
		if err != nil {
			return err
		}
		return writeValues(w, r.TakeMany(count))
	}
}

func describeAction(w io.Writer) cli.ActionFunc {
	return func(_ context.Context, cmd *cli.Command) error {
		r, err := rangeFromFlags(cmd)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\ncenter: %s\nhalf width: %s\ndiscrete: %t\n",
			r, formatFloat(r.Center()), formatFloat(r.HalfWidth()), r.Discrete())
		return err
	}
}

func writeValues(w io.Writer, values []float64) error {
	for _, v := range values {
		if _, err := fmt.Fprintln(w, formatFloat(v)); err != nil {
			return err
		}
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
