package commands

import (
	"context"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/maynagashev/go-rangerand/internal/client"
)

// remoteAction генерирует значения на сервере. С --name и явно заданным диапазоном
// диапазон сначала сохраняется под этим именем.
func remoteAction(w io.Writer) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		count, err := countFromFlags(cmd)
		if err != nil {
			return err
		}
		c := client.New(cmd.String("server"))

		name := cmd.String("name")
		if name == "" {
			r, rangeErr := rangeFromFlags(cmd)
			if rangeErr != nil {
				return rangeErr
			}
			values, sampleErr := c.Sample(ctx, r, count)
			if sampleErr != nil {
				return sampleErr
			}
			return writeValues(w, values)
		}

		if rangeGiven(cmd) {
			r, rangeErr := rangeFromFlags(cmd)
			if rangeErr != nil {
				return rangeErr
			}
			if err = c.PutRange(ctx, name, r); err != nil {
				return err
			}
		}

		values, err := c.SampleNamed(ctx, name, count)
		if err != nil {
			return err
		}
		return writeValues(w, values)
	}
}

func rangeGiven(cmd *cli.Command) bool {
	for _, name := range []string{"range", "min", "max", "center", "delta", "step", "strict"} {
		if cmd.IsSet(name) {
			return true
		}
	}
	return false
}
